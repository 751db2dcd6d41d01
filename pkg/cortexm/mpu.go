package cortexm

import (
	"fmt"
	"io"

	"github.com/OpenTraceLab/OpenTraceCortex/pkg/regs"
)

// MPU register addresses.
const (
	mpuTypeAddr = 0xE000ED90
	mpuMAIR0    = 0xE000EDC0
	mpuMAIR1    = 0xE000EDC4
)

// RegionReader yields the base and limit registers of one MPU region. The
// hardware banks RBAR/RLAR behind MPU_RNR; selecting the bank is the
// implementation's concern, so readers that refuse to touch the target's
// select register simply do not provide this capability.
type RegionReader interface {
	ReadRegion(index int) (rbar, rlar uint32, err error)
}

// MPUBlock is the MPU control catalog.
func MPUBlock() regs.Block {
	return regs.Block{Name: "MPU", Regs: []regs.Register{
		regs.R("MPU_TYPE", "MPU Type Register", mpuTypeAddr, 4,
			regs.F("DREGION", 8, 8,
				"Number of MPU regions that are supported by the MPU in selected security state"),
			regs.F("SEPARATE", 0, 1,
				"Indicates support for separate instruction data address regions. ARMv8-M only supports unified MPU regions and therefore this bit is set to 0."),
		),
		regs.R("MPU_CTRL", "MPU Control Register", 0xE000ED94, 4,
			regs.F("PRIVDEFENA", 2, 1,
				"Privileged background region enable, 1 enable background, 0 clear"),
			regs.F("HFNMIENA", 1, 1,
				"MPU Enable for HardFault and NMI (Non-Maskable Interrupt)"),
			regs.F("ENABLE", 0, 1,
				"Enable control"),
		),
	}}
}

// RBARRegister is the banked region base address register (ARMv8-M layout).
func RBARRegister() regs.Register {
	return regs.R("MPU_RBAR", "MPU Region Base Address Register", 0xE000ED9C, 4,
		regs.F("BASE", 5, 27, "Starting address of MPU region address"),
		regs.FE("SH", 3, 2, []regs.EnumValue{
			regs.E(0b00, false, "Non-shareable", ""),
			regs.E(0b01, false, "Outer shareable", ""),
			regs.E(0b10, false, "Inner Shareable", ""),
		}, "Shareability for Normal memory"),
		regs.FE("AP", 1, 2, []regs.EnumValue{
			regs.E(0b00, false, "read/write by privileged code only", ""),
			regs.E(0b01, false, "read/write by any privilege level", ""),
			regs.E(0b10, false, "Read only by privileged code only", ""),
			regs.E(0b11, false, "Read only by any privilege level", ""),
		}, "Access permissions"),
		regs.FE("XN", 0, 1, []regs.EnumValue{
			regs.E(0b1, false, "Disallow program execution in this region", ""),
			regs.E(0b0, false, "Allow program execution in this region", ""),
		}, "eXecute Never attribute"),
	)
}

// RLARRegister is the banked region limit register (ARMv8-M layout).
func RLARRegister() regs.Register {
	return regs.R("MPU_RLAR", "MPU Region Base Limit Register", 0xE000EDA0, 4,
		regs.F("LIMIT", 5, 27, "Ending address (upper inclusive limit) of MPU region address"),
		regs.FE("PXN", 4, 1, []regs.EnumValue{
			regs.E(0b1, false, "Execution from a privileged mode is not permitted", ""),
			regs.E(0b0, false, "Execution only permitted if read permitted", ""),
		}, "Privileged execute-never"),
		regs.F("AttrIndx", 1, 3,
			"Attribute Index. Select memory attributes from attribute sets in MPU_MAIR0 and MPU_MAIR1"),
		regs.FE("EN", 0, 1, []regs.EnumValue{
			regs.E(0b0, false, "disable", ""),
			regs.E(0b1, false, "Region enable", ""),
		}, "Region enable"),
	)
}

// Region is one decoded MPU region.
type Region struct {
	Index   int
	RBAR    uint32
	RLAR    uint32
	Start   uint32 // RBAR.BASE, byte address
	Limit   uint32 // RLAR.LIMIT, upper inclusive byte address
	Enabled bool
}

// RegionCount reads MPU_TYPE and reports how many regions the MPU implements.
func RegionCount(mr regs.MemoryReader) (int, error) {
	t, err := mr.ReadMem(mpuTypeAddr, 4)
	if err != nil {
		return 0, fmt.Errorf("cortexm: read MPU_TYPE: %w", err)
	}
	return int((t >> 8) & 0xFF), nil
}

// ProbeRegions reads every implemented region through rr. Disabled regions
// are included; callers elide them when rendering.
func ProbeRegions(mr regs.MemoryReader, rr RegionReader) ([]Region, error) {
	count, err := RegionCount(mr)
	if err != nil {
		return nil, err
	}
	out := make([]Region, 0, count)
	for i := 0; i < count; i++ {
		rbar, rlar, err := rr.ReadRegion(i)
		if err != nil {
			return out, fmt.Errorf("cortexm: read MPU region %d: %w", i, err)
		}
		out = append(out, Region{
			Index:   i,
			RBAR:    rbar,
			RLAR:    rlar,
			Start:   rbar &^ 0x1F,
			Limit:   rlar &^ 0x1F,
			Enabled: rlar&1 != 0,
		})
	}
	return out, nil
}

var mairNormal = map[uint32]string{
	0b0001: "Write-Through transient, Write allocation",
	0b0010: "Write-Through transient, Read allocation",
	0b0011: "Write-Through transient, Read/Write allocation",
	0b0100: "Non-cacheable",
	0b0101: "Write-Back Transient, Write allocation",
	0b0110: "Write-Back Transient, Read allocation",
	0b0111: "Write-Back Transient, Read/Write allocation",
	0b1001: "Write-Through Non-transient, Write allocation",
	0b1010: "Write-Through Non-transient, Read allocation",
	0b1011: "Write-Through Non-transient, Read/Write allocation",
	0b1101: "Write-Back Non-transient, Write allocation",
	0b1110: "Write-Back Non-transient, Read allocation",
	0b1111: "Write-Back Non-transient, Read/Write allocation",
}

var mairDevice = map[uint32]string{
	0b00: "nGnRnE",
	0b01: "nGnRE",
	0b10: "nGRE",
	0b11: "GRE",
}

// MAIRAttrText decodes one 8-bit MAIR attribute into human-readable lines.
func MAIRAttrText(attr uint32) []string {
	outer := (attr >> 4) & 0xF
	inner := attr & 0xF

	if outer == 0 {
		return []string{fmt.Sprintf("Device memory, %s", mairDevice[(inner>>2)&0b11])}
	}

	var lines []string
	if s, ok := mairNormal[outer]; ok {
		lines = append(lines, fmt.Sprintf("Normal memory, Outer %s", s))
	}
	if s, ok := mairNormal[inner]; ok {
		lines = append(lines, fmt.Sprintf("Normal memory, Inner %s", s))
	}
	return lines
}

// FormatMPU renders the MPU control block, the MAIR attribute sets, and every
// enabled region (all regions under opts.All). When rr is nil the per-region
// dump is skipped, since the reader cannot select region banks.
func FormatMPU(w io.Writer, mr regs.MemoryReader, rr RegionReader, detected regs.ModelSet, opts regs.Options) error {
	mpu := MPUBlock()
	regs.FormatBlock(w, &mpu, mr, detected, opts)

	fmt.Fprintln(w, "MPU MAIR attributes:")
	for half, addr := range []uint32{mpuMAIR0, mpuMAIR1} {
		word, err := mr.ReadMem(addr, 4)
		if err != nil {
			return fmt.Errorf("cortexm: read MPU_MAIR%d: %w", half, err)
		}
		for i := 0; i < 4; i++ {
			attr := (word >> (8 * i)) & 0xFF
			fmt.Fprintf(w, "ATTR %d = 0x%02x\n", 4*half+i, attr)
			for _, line := range MAIRAttrText(attr) {
				fmt.Fprintf(w, "    %s\n", line)
			}
		}
	}

	if rr == nil {
		return nil
	}
	regions, err := ProbeRegions(mr, rr)
	if err != nil {
		return err
	}
	rbar, rlar := RBARRegister(), RLARRegister()
	for _, reg := range regions {
		if !reg.Enabled && !opts.All {
			continue
		}
		fmt.Fprintf(w, "region %d: 0x%08x .. 0x%08x\n", reg.Index, reg.Start, reg.Limit)
		regs.FormatRegisterValue(w, &rbar, reg.RBAR, detected, opts, true)
		regs.FormatRegisterValue(w, &rlar, reg.RLAR, detected, opts, true)
	}
	return nil
}
