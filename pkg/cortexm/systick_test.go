package cortexm

import (
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceCortex/pkg/regs"
	"github.com/OpenTraceLab/OpenTraceCortex/pkg/target"
)

func TestSysTickCalibDecode(t *testing.T) {
	sim := target.NewSimTarget()
	sim.SetWord(0xE000E01C, 0xc0000000)

	st := SysTickBlock()
	calib, ok := st.Register("SYST_CALIB")
	if !ok {
		t.Fatal("SysTick catalog has no SYST_CALIB")
	}

	var buf strings.Builder
	regs.FormatRegister(&buf, calib, sim, M4, regs.Options{}, false)
	out := buf.String()

	// NOREF (bit 31) and SKEW (bit 30) both decode to 1; TENMS stays zero
	// and is suppressed.
	for _, want := range []string{
		"SYST_CALIB = c0000000",
		"c....... 1 NOREF",
		"c....... 1 SKEW",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SYST_CALIB dump missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "TENMS") {
		t.Errorf("zero TENMS rendered:\n%s", out)
	}
}
