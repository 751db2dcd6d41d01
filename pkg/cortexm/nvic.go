package cortexm

import (
	"fmt"
	"io"

	"github.com/OpenTraceLab/OpenTraceCortex/pkg/regs"
)

// NVIC and system exception state addresses.
//
// https://developer.arm.com/documentation/dui0552/a/cortex-m3-peripherals/nested-vectored-interrupt-controller
const (
	ictrAddr    = 0xE000E004
	systCSRAddr = 0xE000E010
	vtorAddr    = 0xE000ED08
	shprAddr    = 0xE000ED18
	shcsrAddr   = 0xE000ED24
	iserAddr    = 0xE000E100
	isprAddr    = 0xE000E200
	iabrAddr    = 0xE000E300
	iprAddr     = 0xE000E400
)

// maxIRQLines is the architectural limit on external interrupt lines.
const maxIRQLines = 496

// SymbolResolver maps a code address to the function containing it.
type SymbolResolver interface {
	Resolve(addr uint32) (string, bool)
}

// InterruptLine is the resolved state of one exception or interrupt line.
// IRQn runs from -15 (Reset) through the external interrupt count; the
// exception number is IRQn+16.
type InterruptLine struct {
	IRQn        int
	Name        string // fixed name for core exceptions, empty for IRQs
	Prio        uint8
	Enabled     bool
	Pending     bool
	Active      bool
	Handler     uint32 // raw vector table entry, Thumb bit included
	HandlerName string
}

// NVICOptions controls interrupt resolution.
type NVICOptions struct {
	// All includes disabled lines.
	All bool
	// Count overrides the external line count otherwise derived from ICTR.
	Count int
	// VectorBase overrides VTOR as the vector table base when HaveBase is
	// set. A zero base is a valid override.
	VectorBase uint32
	HaveBase   bool
}

// stateBit locates one enabled/pending/active flag: either a fixed value
// (exceptions that are permanently enabled, or state the core does not
// expose) or a bit in SHCSR or SYST_CSR.
type stateBit struct {
	fixed bool
	value bool
	reg   int // 0 = SHCSR, 1 = SYST_CSR
	bit   uint
}

func fix(v bool) stateBit      { return stateBit{fixed: true, value: v} }
func shcsrBit(b uint) stateBit { return stateBit{reg: 0, bit: b} }
func systBit(b uint) stateBit  { return stateBit{reg: 1, bit: b} }

func (s stateBit) get(status [2]uint32) bool {
	if s.fixed {
		return s.value
	}
	return status[s.reg]&(1<<s.bit) != 0
}

// coreExceptions covers IRQn -15..-1. Unnamed entries are reserved
// exception numbers.
var coreExceptions = [15]struct {
	enabled, active, pending stateBit
	name                     string
}{
	{fix(true), fix(false), fix(false), "Reset"},
	{fix(true), fix(false), fix(false), "NMI"},
	{fix(true), fix(false), fix(false), "HardFault"},
	{shcsrBit(16), shcsrBit(0), shcsrBit(13), "MemManage"},
	{shcsrBit(17), shcsrBit(1), shcsrBit(14), "BusFault"},
	{shcsrBit(18), shcsrBit(3), shcsrBit(12), "UsageFault"},
	{fix(false), fix(false), fix(false), ""},
	{fix(false), fix(false), fix(false), ""},
	{fix(false), fix(false), fix(false), ""},
	{fix(false), fix(false), fix(false), ""},
	{fix(true), shcsrBit(7), shcsrBit(15), "SVC"},
	{fix(false), shcsrBit(8), fix(false), "DebugMon"},
	{fix(false), fix(false), fix(false), ""},
	{fix(true), shcsrBit(10), fix(false), "PendSV"},
	{systBit(0), shcsrBit(11), fix(false), "SysTick"},
}

func readWords(mr regs.MemoryReader, base uint32, n int) ([]uint32, error) {
	out := make([]uint32, n)
	for i := range out {
		w, err := mr.ReadMem(base+4*uint32(i), 4)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

func irqBit(words []uint32, irq int) bool {
	return words[irq/32]&(1<<(irq%32)) != 0
}

// IRQCount derives the number of external interrupt lines from ICTR.
func IRQCount(mr regs.MemoryReader) (int, error) {
	ictr, err := mr.ReadMem(ictrAddr, 4)
	if err != nil {
		return 0, fmt.Errorf("cortexm: read ICTR: %w", err)
	}
	n := 32 * (int(ictr&0xF) + 1)
	if n > maxIRQLines {
		n = maxIRQLines
	}
	return n, nil
}

// ResolveInterrupts reads the NVIC, system handler and vector table state and
// returns one line per exception, IRQn -15 up to the external line count.
// A nil sym leaves handler names empty.
func ResolveInterrupts(mr regs.MemoryReader, sym SymbolResolver, opts NVICOptions) ([]InterruptLine, error) {
	count := opts.Count
	if count <= 0 {
		var err error
		count, err = IRQCount(mr)
		if err != nil {
			return nil, err
		}
	}

	base := opts.VectorBase
	if !opts.HaveBase {
		v, err := mr.ReadMem(vtorAddr, 4)
		if err != nil {
			return nil, fmt.Errorf("cortexm: read VTOR: %w", err)
		}
		base = v
	}

	shpr, err := readWords(mr, shprAddr, 3)
	if err != nil {
		return nil, fmt.Errorf("cortexm: read SHPR: %w", err)
	}
	var status [2]uint32
	if status[0], err = mr.ReadMem(shcsrAddr, 4); err != nil {
		return nil, fmt.Errorf("cortexm: read SHCSR: %w", err)
	}
	if status[1], err = mr.ReadMem(systCSRAddr, 4); err != nil {
		return nil, fmt.Errorf("cortexm: read SYST_CSR: %w", err)
	}

	words := (count + 31) / 32
	iser, err := readWords(mr, iserAddr, words)
	if err != nil {
		return nil, fmt.Errorf("cortexm: read NVIC_ISER: %w", err)
	}
	ispr, err := readWords(mr, isprAddr, words)
	if err != nil {
		return nil, fmt.Errorf("cortexm: read NVIC_ISPR: %w", err)
	}
	iabr, err := readWords(mr, iabrAddr, words)
	if err != nil {
		return nil, fmt.Errorf("cortexm: read NVIC_IABR: %w", err)
	}
	ipr, err := readWords(mr, iprAddr, (count+3)/4)
	if err != nil {
		return nil, fmt.Errorf("cortexm: read NVIC_IPR: %w", err)
	}

	var lines []InterruptLine
	for irq := -15; irq < count; irq++ {
		addr, err := mr.ReadMem(base+4*uint32(irq+16), 4)
		if err != nil {
			return nil, fmt.Errorf("cortexm: read vector %d: %w", irq, err)
		}

		l := InterruptLine{IRQn: irq, Handler: addr}
		if sym != nil {
			// Vector entries carry the Thumb bit; strip it for lookup only.
			if name, ok := sym.Resolve(addr &^ 1); ok {
				l.HandlerName = name
			}
		}

		if irq < 0 {
			ce := coreExceptions[irq+15]
			l.Name = ce.name
			l.Enabled = ce.enabled.get(status)
			l.Active = ce.active.get(status)
			l.Pending = ce.pending.get(status)
			// Reset, NMI and HardFault have fixed priorities.
			if irq >= -12 {
				l.Prio = uint8(shpr[(irq+12)/4] >> (8 * ((irq + 12) % 4)))
			}
		} else {
			l.Enabled = irqBit(iser, irq)
			l.Pending = irqBit(ispr, irq)
			l.Active = irqBit(iabr, irq)
			l.Prio = uint8(ipr[irq/4] >> (8 * (irq % 4)))
		}
		lines = append(lines, l)
	}
	return lines, nil
}

// FormatInterrupts writes the interrupt report: enabled lines only, or every
// line when all is set.
func FormatInterrupts(w io.Writer, lines []InterruptLine, all bool) {
	fmt.Fprintln(w, "IRQn Prio          Handler")
	for _, l := range lines {
		if !l.Enabled && !all {
			continue
		}
		en, pend, act := "  ", "    ", "   "
		if l.Enabled {
			en = "en"
		}
		if l.Pending {
			pend = "pend"
		}
		if l.Active {
			act = "act"
		}
		name := l.Name
		if l.IRQn < 0 {
			// Core exception names pad to a fixed width so handler names align.
			name = fmt.Sprintf("%-11s", name)
		}
		fmt.Fprintf(w, "%4d %4x %s %s %s %08x %s%s\n",
			l.IRQn, l.Prio, en, pend, act, l.Handler, name, l.HandlerName)
	}
}
