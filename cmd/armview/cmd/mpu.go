package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceCortex/pkg/cortexm"
)

var mpuCmd = &cobra.Command{
	Use:   "mpu",
	Short: "Dump the memory protection unit",
	Long: `Dump MPU control state, MAIR attribute sets and the configured regions.
Per-region state requires an adapter that can read the banked RBAR/RLAR
registers without touching the target's region select register; when the
adapter cannot, only the control block and attributes are shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mr, closer, err := openTarget()
		if err != nil {
			return err
		}
		defer closer()

		detected := detectModel(mr)

		// Region banks are only readable through adapters that expose them.
		rr, _ := mr.(cortexm.RegionReader)
		if rr == nil && verbose {
			fmt.Fprintln(os.Stderr, "adapter cannot read region banks, skipping per-region dump")
		}
		fmt.Println("SCB MPU registers:")
		return cortexm.FormatMPU(os.Stdout, mr, rr, detected, reportOptions())
	},
}

func init() {
	rootCmd.AddCommand(mpuCmd)
}
