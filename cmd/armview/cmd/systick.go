package cmd

import (
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceCortex/pkg/cortexm"
)

var systickCmd = &cobra.Command{
	Use:   "systick",
	Short: "Dump the SysTick timer block",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBlockDump(cortexm.SysTickBlock())
	},
}

func init() {
	rootCmd.AddCommand(systickCmd)
}
