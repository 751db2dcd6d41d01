package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [DEVICE [PERIPHERAL]]",
	Short: "List loaded devices, their peripherals and registers",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		for _, name := range registry.Names() {
			dev, err := registry.Get(name)
			if err != nil {
				return err
			}
			fmt.Printf("%s (%d peripherals)\n", name, len(dev.Peripherals))
		}
		return nil
	}

	dev, err := registry.Get(args[0])
	if err != nil {
		return err
	}

	if len(args) == 1 {
		for _, p := range dev.Peripherals {
			fmt.Printf("%-20s @ 0x%08x (%d registers)\n", p.Name, p.Base, len(p.Block.Regs))
		}
		return nil
	}

	registers, err := registry.Registers(args[0], args[1])
	if err != nil {
		return err
	}
	for i := range registers {
		r := &registers[i]
		fmt.Printf("%-20s @ 0x%08x size %d", r.Name, r.Addr, r.Size)
		if r.Description != "" {
			fmt.Printf("  %s", r.Description)
		}
		fmt.Println()
	}
	return nil
}
