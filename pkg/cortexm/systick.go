package cortexm

import "github.com/OpenTraceLab/OpenTraceCortex/pkg/regs"

// SysTickBlock is the system timer catalog.
//
// https://developer.arm.com/documentation/dui0552/a/cortex-m3-peripherals/system-timer--systick
func SysTickBlock() regs.Block {
	return regs.Block{Name: "SysTick", Regs: []regs.Register{
		regs.R("SYST_CSR", "SysTick Control and Status Register", 0xE000E010, 4,
			regs.F("COUNTFLAG", 16, 1, ""),
			regs.F("CLKSOURCE", 2, 1, ""),
			regs.F("TICKINT", 1, 1, ""),
			regs.F("ENABLE", 0, 1, ""),
		),
		regs.R("SYST_RVR", "SysTick Reload Value Register", 0xE000E014, 4,
			regs.F("RELOAD", 0, 24, ""),
		),
		regs.R("SYST_CVR", "SysTick Current Value Register", 0xE000E018, 4,
			regs.F("CURRENT", 0, 24, ""),
		),
		regs.R("SYST_CALIB", "SysTick Calibration Value Register", 0xE000E01C, 4,
			regs.F("NOREF", 31, 1, ""),
			regs.F("SKEW", 30, 1, ""),
			regs.F("TENMS", 0, 25, ""),
		),
	}}
}
