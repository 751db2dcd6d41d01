package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceCortex/pkg/cortexm"
)

var fpuCmd = &cobra.Command{
	Use:   "fpu",
	Short: "Dump the floating-point extension registers",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("SCB FP registers:")
		return runBlockDump(cortexm.FPUBlock())
	},
}

func init() {
	rootCmd.AddCommand(fpuCmd)
}
