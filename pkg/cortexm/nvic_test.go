package cortexm

import (
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceCortex/pkg/target"
)

type fakeSymbols map[uint32]string

func (f fakeSymbols) Resolve(addr uint32) (string, bool) {
	name, ok := f[addr]
	return name, ok
}

// nvicSim builds a target with 32 external lines, SysTick running, IRQ 5
// enabled and pending, and a vector table at 0x20000000.
func nvicSim() *target.SimTarget {
	sim := target.NewSimTarget()
	sim.SetWord(ictrAddr, 0) // 32*(0+1) = 32 lines
	sim.SetWord(vtorAddr, 0x20000000)
	sim.SetWord(systCSRAddr, 0x1)       // SysTick ENABLE
	sim.SetWord(shcsrAddr, 1<<11|1<<18) // SYSTICKACT, USGFAULTENA
	sim.SetWord(shprAddr+8, 0x40<<24)   // SHPR3: PRI_15 (SysTick) = 0x40
	sim.SetWord(shprAddr, 0x30<<16)     // SHPR1: PRI_6 (UsageFault) = 0x30

	sim.SetWord(iserAddr, 1<<5)
	sim.SetWord(isprAddr, 1<<5)
	sim.SetWord(iprAddr+4, 0x80<<8) // IPR1 byte 1: IRQ 5 priority

	sim.SetWord(0x20000000+4*(16-15), 0x08000101) // Reset vector, Thumb bit set
	sim.SetWord(0x20000000+4*(16-1), 0x08000201)  // SysTick vector
	sim.SetWord(0x20000000+4*(16+5), 0x08000301)  // IRQ 5 vector
	return sim
}

func TestResolveInterrupts(t *testing.T) {
	sim := nvicSim()
	sym := fakeSymbols{
		0x08000100: "Reset_Handler",
		0x08000200: "SysTick_Handler",
		0x08000300: "UARTE0_IRQHandler",
	}

	lines, err := ResolveInterrupts(sim, sym, NVICOptions{})
	if err != nil {
		t.Fatalf("ResolveInterrupts: %v", err)
	}
	if len(lines) != 15+32 {
		t.Fatalf("line count = %d, want 47", len(lines))
	}

	byIRQ := make(map[int]InterruptLine, len(lines))
	for _, l := range lines {
		byIRQ[l.IRQn] = l
	}

	reset := byIRQ[-15]
	if !reset.Enabled || reset.Name != "Reset" || reset.Prio != 0 {
		t.Errorf("Reset line = %+v", reset)
	}
	if reset.Handler != 0x08000101 {
		t.Errorf("Reset handler = 0x%08x, want raw Thumb address", reset.Handler)
	}
	if reset.HandlerName != "Reset_Handler" {
		t.Errorf("Reset handler name = %q", reset.HandlerName)
	}

	usage := byIRQ[-10]
	if !usage.Enabled || usage.Name != "UsageFault" || usage.Prio != 0x30 {
		t.Errorf("UsageFault line = %+v", usage)
	}

	systick := byIRQ[-1]
	if !systick.Enabled || !systick.Active || systick.Pending {
		t.Errorf("SysTick state = %+v", systick)
	}
	if systick.Prio != 0x40 {
		t.Errorf("SysTick prio = 0x%x, want 0x40", systick.Prio)
	}
	if systick.HandlerName != "SysTick_Handler" {
		t.Errorf("SysTick handler name = %q", systick.HandlerName)
	}

	irq5 := byIRQ[5]
	if !irq5.Enabled || !irq5.Pending || irq5.Active {
		t.Errorf("IRQ5 state = %+v", irq5)
	}
	if irq5.Prio != 0x80 {
		t.Errorf("IRQ5 prio = 0x%x, want 0x80", irq5.Prio)
	}
	if irq5.HandlerName != "UARTE0_IRQHandler" {
		t.Errorf("IRQ5 handler name = %q", irq5.HandlerName)
	}

	// MemManage is disabled (SHCSR bit 16 clear) but still resolved.
	mem := byIRQ[-12]
	if mem.Enabled || mem.Name != "MemManage" {
		t.Errorf("MemManage line = %+v", mem)
	}
}

func TestResolveInterruptsOverrides(t *testing.T) {
	sim := nvicSim()
	sim.SetWord(0x00000000+4*(16+1), 0x1001) // vector table at 0, IRQ 1

	lines, err := ResolveInterrupts(sim, nil, NVICOptions{
		Count:      8,
		VectorBase: 0,
		HaveBase:   true,
	})
	if err != nil {
		t.Fatalf("ResolveInterrupts: %v", err)
	}
	if len(lines) != 15+8 {
		t.Fatalf("line count = %d, want 23", len(lines))
	}
	var irq1 InterruptLine
	for _, l := range lines {
		if l.IRQn == 1 {
			irq1 = l
		}
	}
	if irq1.Handler != 0x1001 {
		t.Errorf("IRQ1 handler = 0x%08x, want vector from override base", irq1.Handler)
	}
}

func TestIRQCount(t *testing.T) {
	sim := target.NewSimTarget()
	sim.SetWord(ictrAddr, 3)
	n, err := IRQCount(sim)
	if err != nil {
		t.Fatalf("IRQCount: %v", err)
	}
	if n != 128 {
		t.Fatalf("IRQCount = %d, want 128", n)
	}

	// The architectural cap applies.
	sim.SetWord(ictrAddr, 0xF)
	n, err = IRQCount(sim)
	if err != nil {
		t.Fatalf("IRQCount: %v", err)
	}
	if n != 496 {
		t.Fatalf("IRQCount = %d, want 496", n)
	}
}

func TestFormatInterrupts(t *testing.T) {
	lines := []InterruptLine{
		{IRQn: -15, Name: "Reset", Enabled: true, Handler: 0x08000101, HandlerName: "Reset_Handler"},
		{IRQn: -1, Name: "SysTick", Enabled: true, Active: true, Prio: 0x40, Handler: 0x08000201, HandlerName: "SysTick_Handler"},
		{IRQn: 2, Enabled: false, Handler: 0},
		{IRQn: 5, Enabled: true, Pending: true, Prio: 0x80, Handler: 0x08000301, HandlerName: "UARTE0_IRQHandler"},
	}

	var buf strings.Builder
	FormatInterrupts(&buf, lines, false)

	want := "IRQn Prio          Handler\n" +
		" -15    0 en          08000101 Reset      Reset_Handler\n" +
		"  -1   40 en      act 08000201 SysTick    SysTick_Handler\n" +
		"   5   80 en pend     08000301 UARTE0_IRQHandler\n"
	if got := buf.String(); got != want {
		t.Fatalf("output:\n%q\nwant:\n%q", got, want)
	}

	// --all adds the disabled line.
	buf.Reset()
	FormatInterrupts(&buf, lines, true)
	if !strings.Contains(buf.String(), "\n   2    0") {
		t.Fatalf("all-mode output missing disabled line:\n%s", buf.String())
	}
}
