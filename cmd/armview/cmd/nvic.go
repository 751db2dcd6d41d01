package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceCortex/pkg/cortexm"
)

var (
	nvicCount int
	nvicVTOR  string
)

var nvicCmd = &cobra.Command{
	Use:   "nvic",
	Short: "Dump interrupt state",
	Long: `Resolve the NVIC and system handler state into one row per exception
line: priority, enabled/pending/active flags, the vector table entry
and, when an ELF image is given, the handler function name.

By default only enabled lines are shown; --all includes the rest.`,
	RunE: runNVIC,
}

func init() {
	rootCmd.AddCommand(nvicCmd)

	nvicCmd.Flags().IntVarP(&nvicCount, "count", "N", 0,
		"number of external interrupt lines (default: derived from ICTR)")
	nvicCmd.Flags().StringVarP(&nvicVTOR, "vtor", "V", "",
		"alternative vector table address (overrides VTOR)")
}

func runNVIC(cmd *cobra.Command, args []string) error {
	mr, closer, err := openTarget()
	if err != nil {
		return err
	}
	defer closer()

	sym, err := loadSymbols()
	if err != nil {
		return err
	}

	opts := cortexm.NVICOptions{All: showAll, Count: nvicCount}
	if nvicVTOR != "" {
		base, err := strconv.ParseUint(nvicVTOR, 0, 32)
		if err != nil {
			return fmt.Errorf("bad --vtor address %q: %w", nvicVTOR, err)
		}
		opts.VectorBase = uint32(base)
		opts.HaveBase = true
	}

	lines, err := cortexm.ResolveInterrupts(mr, sym, opts)
	if err != nil {
		return err
	}
	cortexm.FormatInterrupts(os.Stdout, lines, showAll)
	return nil
}
