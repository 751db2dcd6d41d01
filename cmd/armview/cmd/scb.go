package cmd

import (
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceCortex/pkg/cortexm"
)

var scbCmd = &cobra.Command{
	Use:   "scb",
	Short: "Dump the System Control Block",
	Long: `Dump the ARM Cortex-M System Control Block, including the auxiliary
control registers specific to the detected core.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBlockDump(cortexm.SCBBlock(), cortexm.AuxBlock())
	},
}

func init() {
	rootCmd.AddCommand(scbCmd)
}
