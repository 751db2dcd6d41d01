package cortexm

import "github.com/OpenTraceLab/OpenTraceCortex/pkg/regs"

var fpuSupported = []regs.EnumValue{
	regs.E(0b0000, true, "Not supported", ""),
	regs.E(0b0001, false, "Supported", ""),
}

// FPUBlock covers the SCB registers for the floating-point extension.
func FPUBlock() regs.Block {
	return regs.Block{Name: "FPU", Regs: []regs.Register{
		regs.R("FPCCR", "Floating Point Context Control Register", 0xE000EF34, 4,
			regs.F("ASPEN", 31, 1,
				"When this bit is set to 1, execution of a floating-point instruction sets the CONTROL.FPCA bit to 1"),
			regs.F("LSPEN", 30, 1,
				"Enables lazy context save of FP state"),
			regs.F("MONRDY", 8, 1,
				"Indicates whether the software executing when the processor allocated the FP stack frame was able to set the DebugMonitor exception to pending"),
			regs.F("BFRDY", 6, 1,
				"Indicates whether the software executing when the processor allocated the FP stack frame was able to set the BusFault exception to pending"),
			regs.F("MMRDY", 5, 1,
				"Indicates whether the software executing when the processor allocated the FP stack frame was able to set the MemManage exception to pending"),
			regs.F("HFRDY", 4, 1,
				"Indicates whether the software executing when the processor allocated the FP stack frame was able to set the HardFault exception to pending"),
			regs.F("THREAD", 3, 1,
				"Indicates the processor mode when it allocated the FP stack frame"),
			regs.F("USER", 1, 1,
				"Indicates the privilege level of the software executing when the processor allocated the FP stack frame"),
			regs.F("LSPACT", 0, 1,
				"Indicates whether Lazy preservation of the FP state is active"),
		),
		regs.R("FPCAR", "Floating Point Context Address Register", 0xE000EF38, 4,
			regs.F("FPCAR", 2, 28,
				"The location of the unpopulated floating-point register space allocated on an exception stack frame."),
		),
		regs.R("FPDSCR", "Floating Point Default Status Control Register", 0xE000EF3C, 4,
			regs.F("AHP", 26, 1, "Default value for FPSCR.AHP"),
			regs.F("DN", 25, 1, "Default value for FPSCR.DN"),
			regs.F("FZ", 24, 1, "Default value for FPSCR.FZ"),
			regs.F("RMode", 22, 2, "Default value for FPSCR.RMode"),
		),
		regs.R("MVFR0", "Media and FP Feature Register 0", 0xE000EF40, 4,
			regs.FE("FP rounding modes", 28, 4, []regs.EnumValue{
				regs.E(0b0000, true, "Not supported", ""),
				regs.E(0b0001, true, "All rounding modes supported.", ""),
			}, "Indicates the rounding modes supported by the FP floating-point hardware."),
			regs.FE("Short vectors", 24, 4, fpuSupported, ""),
			regs.FE("Square root", 20, 4, fpuSupported, ""),
			regs.FE("Divide", 16, 4, fpuSupported, ""),
			regs.FE("FP exception trapping", 12, 4, []regs.EnumValue{
				regs.E(0b0000, true, "Not supported", ""),
			}, ""),
			regs.FE("Double-precision", 8, 4, []regs.EnumValue{
				regs.E(0b0000, true, "Not supported", ""),
				regs.E(0b0010, false, "Supported", ""),
			}, ""),
			regs.FE("Single-precision", 4, 4, []regs.EnumValue{
				regs.E(0b0000, true, "Not supported", ""),
				regs.E(0b0010, false, "Supported.",
					"FP adds an instruction to load a single-precision floating-point constant, and conversions between single-precision and fixed-point values."),
			}, "Indicates the hardware support for FP single-precision operations."),
			regs.FE("A_SIMD registers", 0, 4, []regs.EnumValue{
				regs.E(0b0000, true, "Not supported", ""),
				regs.E(0b0001, false, "Supported, 16 x 64-bit registers.", ""),
			}, ""),
		),
		regs.R("MVFR1", "Media and FP Feature Register 1", 0xE000EF44, 4,
			regs.FE("FP fused MAC", 28, 4, fpuSupported, ""),
			regs.FE("FP HPFP", 24, 4, []regs.EnumValue{
				regs.E(0b0000, true, "Not supported", ""),
				regs.E(0b0001, false, "Supported half-single",
					"Supports conversion between half-precision and single-precision."),
				regs.E(0b0010, false, "Supported half-single-double",
					"Supports conversion between half-precision and single-precision, and also supports conversion between half-precision and double-precision."),
			}, "Floating Point half-precision and double-precision. Indicates whether the FP extension implements half-precision and double-precision floating-point conversion instructions."),
			regs.FE("D_NaN mode", 4, 4, []regs.EnumValue{
				regs.E(0b0000, true, "Not supported", ""),
				regs.E(0b0001, false, "Hardware supports propagation of NaN values.", ""),
			}, "Indicates whether the FP hardware implementation supports only the Default NaN mode."),
			regs.FE("FtZ mode", 0, 4, []regs.EnumValue{
				regs.E(0b0000, true, "Not supported", ""),
				regs.E(0b0001, false, "Hardware supports full denormalized number arithmetic.", ""),
			}, "Indicates whether the FP hardware implementation supports only the Flush-to-zero mode of operation."),
		),
		regs.R("MVFR2", "Media and FP Feature Register 2", 0xE000EF48, 4,
			regs.FE("VFP_Misc", 4, 4, []regs.EnumValue{
				regs.E(0b0000, true, "No support for miscellaneous features.", ""),
				regs.E(0b0100, false, "Support for miscellaneous features.",
					"Support for floating-point selection, floating-point conversion to integer with direct rounding modes, floating-point round to integral floating-point, and floating-point maximum number and minimum number."),
			}, "Indicates the hardware support for FP miscellaneous features"),
		),
	}}
}
