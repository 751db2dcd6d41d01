package cortexm

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceCortex/pkg/regs"
)

// Implementations:
//
// ARMv6-M
// M0:  https://developer.arm.com/documentation/dui0497/a/cortex-m0-peripherals/system-control-block
// M0+: https://developer.arm.com/documentation/dui0662/b/Cortex-M0--Peripherals/System-Control-Block
// M1:  https://developer.arm.com/documentation/ddi0413/d/system-control/about-system-control
//
// ARMv7-M
// M3:  https://developer.arm.com/documentation/dui0552/a/cortex-m3-peripherals/system-control-block
// M4:  https://developer.arm.com/documentation/100166/0001/System-Control/System-control-registers
// M7:  https://developer.arm.com/documentation/dui0646/c/Cortex-M7-Peripherals/System-control-block
//
// ARMv8-M
// M23: https://developer.arm.com/documentation/dui1095/a/Cortex-M23-Peripherals/System-Control-Space
// M33: https://developer.arm.com/documentation/100235/0004/the-cortex-m33-peripherals/system-control-block

var enumEnDis = []regs.EnumValue{
	regs.E(0, true, "Normal operation", ""),
	regs.E(1, false, "Disabled", ""),
}

var cpacrAccess = []regs.EnumValue{
	regs.E(0b00, true, "Access denied", "Any attempted access generates a NOCP UsageFault."),
	regs.E(0b01, false, "Privileged access only.", "An unprivileged access generates a NOCP UsageFault."),
	regs.E(0b10, false, "Reserved.", ""),
	regs.E(0b11, false, "Full access.", ""),
}

func cpacrField(name string, low uint, cp int) regs.Field {
	return regs.FE(name, low, 2, cpacrAccess, fmt.Sprintf("Access privileges for coprocessor %d", cp))
}

// SCBBlock is the System Control Block catalog.
func SCBBlock() regs.Block {
	return regs.Block{Name: "SCB", Regs: []regs.Register{
		regs.R("REVIDR", "Revision ID Register", 0xE000ECFC, 4,
			regs.F("imp. defined", 0, 32, ""),
		).On(V8),
		regs.R("CPUID", "CPUID Base Register", 0xE000ED00, 4,
			regs.FE("Implementer", 24, 8, []regs.EnumValue{
				regs.E(0x41, true, "ARM", ""),
			}, "Implementer code assigned by Arm"),
			regs.FM("Variant", 20, 4, func(n uint32) string {
				return fmt.Sprintf("Revision: r%dpX", n)
			}, "").Shown(),
			regs.FE("Architecture", 16, 4, []regs.EnumValue{
				{Value: 0xc, Label: "ARMv6-M", Models: V6},
				{Value: 0xf, Label: "ARMv7-M", Models: V7},
				{Value: 0xc, Label: "ARMv8-M without main extension", Models: V8},
				{Value: 0xf, Label: "ARMv8-M with main extension", Models: V8},
			}, ""),
			regs.FE("PartNo", 4, 12, []regs.EnumValue{
				regs.E(0xc20, false, "Cortex-M0", ""),
				regs.E(0xc60, false, "Cortex-M0+", ""),
				regs.E(0xc21, false, "Cortex-M1", ""),
				regs.E(0xc23, false, "Cortex-M3", ""),
				regs.E(0xc24, false, "Cortex-M4", ""),
				regs.E(0xc27, false, "Cortex-M7", ""),
				regs.E(0xd20, false, "Cortex-M23", ""),
				regs.E(0xd21, false, "Cortex-M33", ""),
			}, ""),
			regs.FM("Revision", 0, 4, func(n uint32) string {
				return fmt.Sprintf("Patch: rXp%d", n)
			}, "").Shown(),
		),
		regs.R("ICSR", "Interrupt Control and State Register", 0xE000ED04, 4,
			regs.F("NMIPENDSET", 31, 1, ""),
			regs.F("PENDSVSET", 28, 1, ""),
			regs.F("PENDSTSET", 26, 1, ""),
			regs.F("STTNS", 24, 1,
				"SysTick Targets Non-secure. Controls whether in a single SysTick implementation, the SysTick is Secure or Non-secure.").On(V8),
			regs.F("ISRPREEMPT", 23, 1,
				"Indicates whether a pending exception will be serviced on exit from debug halt state"),
			regs.F("ISRPENDING", 22, 1,
				"Indicates whether an external interrupt, generated by the NVIC, is pending"),
			regs.F("VECTPENDING", 12, 6,
				"The exception number of the highest priority pending and enabled interrupt"),
			regs.F("RETTOBASE", 11, 1,
				"In Handler mode, indicates whether there is an active exception other than the exception indicated by the current value of the IPSR").On(V7|V8),
			regs.F("VECTACTIVE", 0, 8, ""),
		),
		regs.R("VTOR", "Vector Table Offset Register", 0xE000ED08, 4,
			regs.F("TBLOFF", 7, 25, "Bits[31:7] of the vector table address"),
		),
		regs.R("AIRCR", "Application Interrupt and Reset Control Register", 0xE000ED0C, 4,
			regs.FE("VECTKEYSTAT", 16, 16, []regs.EnumValue{
				regs.E(0x05fa, false, "Register writes must write 0x05FA to this field, otherwise the write is ignored", ""),
				regs.E(0xfa05, true, "On reads, returns 0xFA05", ""),
			}, ""),
			regs.FE("ENDIANNESS", 15, 1, []regs.EnumValue{
				regs.E(0, false, "Little Endian", ""),
				regs.E(1, false, "Big Endian", ""),
			}, ""),
			regs.FE("PRIS", 14, 1, []regs.EnumValue{
				regs.E(0, true, "Sec and Non-sec are identical", "Priority ranges of Secure and Non-secure exceptions are identical."),
				regs.E(1, false, "Non-sec are de-prioritized", "Non-secure exceptions are de-prioritized."),
			}, "Prioritize Secure exceptions. The value of this bit defines whether Secure exception priority boosting is enabled.").On(V8),
			regs.FE("BFHFNMINS", 13, 1, []regs.EnumValue{
				regs.E(0, true, "BusFault, HardFault, and NMI are Secure.", ""),
				regs.E(1, false, "BusFault and NMI are Non-secure", "BusFault and NMI are Non-secure and exceptions can target Non-secure HardFault."),
			}, "BusFault, HardFault, and NMI Non-secure enable.").On(V8),
			regs.F("PRIGROUP", 8, 3, "Priority grouping, indicates the binary point position.").On(V7|V8),
			regs.FE("IESB", 5, 1, []regs.EnumValue{
				regs.E(0, true, "No Implicit ESB.", ""),
				regs.E(1, false, "Implicit ESB are enabled.", ""),
			}, "Implicit ESB Enable. This bit indicates and allows modification of whether an implicit Error Synchronization Barriers occurs around lazy Floating-point state preservation, and on every exception entry and return.").On(V8),
			regs.FE("DIT", 4, 1, []regs.EnumValue{
				regs.E(0, true, "no statement about the timing", "The architecture makes no statement about the timing properties of any instructions."),
				regs.E(1, false, "load/store timing is data independent", "The architecture requires that the timing of every load and store instruction is insensitive to the value of the data being loaded or stored."),
			}, "Data Independent Timing. This bit indicates and allows modification of whether for the selected Security state data independent timing operations are guaranteed to be timing invariant with respect to the data values being operated on.").On(V8),
			regs.FE("SYSRESETREQS", 3, 1, []regs.EnumValue{
				regs.E(0, true, "SYSRESETREQ available to both Security states", ""),
				regs.E(1, false, "SYSRESETREQ only available to Secure state", ""),
			}, "System reset request Secure only.").On(V8),
			regs.F("SYSRESETREQ", 2, 1, "System Reset Request"),
		),
		regs.R("SCR", "System Control Register", 0xE000ED10, 4,
			regs.F("SEVONPEND", 4, 1,
				"Determines whether an interrupt transition from inactive state to pending state is a wakeup event"),
			regs.F("SLEEPDEEPS", 3, 1,
				"Sleep deep secure. This field controls whether the SLEEPDEEP bit is only accessible from the Secure state.").On(V8),
			regs.F("SLEEPDEEP", 2, 1,
				"Provides a qualifying hint indicating that waking from sleep might take longer"),
			regs.F("SLEEPONEXIT", 1, 1,
				"Determines whether, on an exit from an ISR that returns to the base level of execution priority, the processor enters a sleep state"),
		),
		regs.R("CCR", "Configuration and Control Register", 0xE000ED14, 4,
			regs.F("TRD", 20, 1, "Thread reentrancy disabled.").On(V8),
			regs.F("LOB", 19, 1, "Loop and branch info cache enable.").On(V8),
			regs.F("BP", 18, 1, "Branch prediction enable bit.").On(V7|V8),
			regs.F("IC", 17, 1, "Instruction cache enable bit.").On(V7|V8),
			regs.F("DC", 16, 1, "Cache enable bit.").On(V7|V8),
			regs.F("STKOFHFNMIGN", 10, 1, "Stack overflow in HardFault and NMI ignore.").On(V8),
			regs.FE("STKALIGN", 9, 1, []regs.EnumValue{
				regs.E(0, true, "4 bytes SP alignment", "Guaranteed SP alignment is 4-byte, no SP adjustment is performend."),
				regs.E(1, false, "8 byte SP alignment", "8-byte alignment guaranteed, SP adjusted if necessary."),
			}, "Determines whether the exception entry sequence guarantees 8-byte stack frame alignment").On(V6|V7),
			regs.FE("BFHFNMIGN", 8, 1, []regs.EnumValue{
				regs.E(0, true, "Precise data access fault causes a lockup", ""),
				regs.E(1, false, "Handler ignores the fault.", ""),
			}, "Determines the effect of precise data access faults on handlers running at priority -1 or priority -2").On(V7|V8),
			regs.F("DIV_0_TRP", 4, 1, "Controls the trap on divide by 0").On(V7|V8),
			regs.F("UNALIGN_TRP", 3, 1,
				"Controls the trapping of unaligned word or halfword accesses").On(V6|V7|V8),
			regs.F("USERSETMPEND", 1, 1,
				"Controls whether unprivileged software can access the STIR").On(V7|V8),
			regs.F("NONBASETHRDENA", 0, 1,
				"Controls whether the processor can enter Thread mode with exceptions active").On(V7),
		),
		regs.R("SHPR1", "System Handler Priority Register 1", 0xE000ED18, 4,
			regs.F("PRI_4 - MemManage", 0, 8, "Priority of system handler 4, MemManage."),
			regs.F("PRI_5 - BusFault", 8, 8, "Priority of system handler 5, BusFault."),
			regs.F("PRI_6 - UsageFault", 16, 8, "Priority of system handler 6, UsageFault."),
			regs.F("PRI_7", 24, 8, "Reserved for priority of system handler 7").On(V6|V7),
			regs.F("PRI_7 - SecureFault", 24, 8, "Priority of system handler 7, SecureFault.").On(V8),
		).On(V7),
		regs.R("SHPR2", "System Handler Priority Register 2", 0xE000ED1C, 4,
			regs.F("PRI_8", 0, 8, "Reserved for priority of system handler 8."),
			regs.F("PRI_9", 8, 8, "Reserved for priority of system handler 9."),
			regs.F("PRI_10", 16, 8, "Reserved for priority of system handler 10."),
			regs.F("PRI_11 - SVCall", 24, 8, "Priority of system handler 11, SVCall."),
		),
		regs.R("SHPR3", "System Handler Priority Register 3", 0xE000ED20, 4,
			regs.F("PRI_12", 0, 8, "Reserved for priority of system handler 12.").On(V6),
			regs.F("PRI_12 - DebugMonitor", 0, 8, "Priority of system handler 12, DebugMonitor.").On(V7|V8),
			regs.F("PRI_13", 8, 8, "Reserved for priority of system handler 13."),
			regs.F("PRI_14 - PendSV", 16, 8, "Priority of system handler 14, PendSV."),
			regs.F("PRI_15 - SysTick", 24, 8, "Priority of system handler 15, SysTick."),
		),
		regs.R("SHCSR", "System Handler Control and State Register", 0xE000ED24, 4,
			regs.F("HARDFAULTPENDED", 21, 1, "Indicates if HardFault is pending.").On(V8),
			regs.F("SECUREFAULTPENDED", 20, 1, "Indicates if SecureFault is pending.").On(V8),
			regs.F("SECUREFAULTENA", 19, 1, "Indicates if SecureFault is enabled.").On(V8),
			regs.F("USGFAULTENA", 18, 1, "Indicates if UsageFault is enabled."),
			regs.F("BUSFAULTENA", 17, 1, "Indicates if BusFault is enabled."),
			regs.F("MEMFAULTENA", 16, 1, "Indicates if MemFault is enabled."),
			regs.F("SVCALLPENDED", 15, 1, "Indicates if SVCall is pending."),
			regs.F("BUSFAULTPENDED", 14, 1, "Indicates if BusFault is pending"),
			regs.F("MEMFAULTPENDED", 13, 1, "Indicates if MemFault is pending"),
			regs.F("USGFAULTPENDED", 12, 1, "Indicates if UsageFault is pending"),
			regs.F("SYSTICKACT", 11, 1, "Indicates if SysTick is active"),
			regs.F("PENDSVACT", 10, 1, "Indicates if PendSV is active"),
			regs.F("MONITORACT", 8, 1, "Indicates if Monitor is active"),
			regs.F("SVCALLACT", 7, 1, "Indicates if SVCall is active"),
			regs.F("NMIACT", 5, 1, "Indicates if NMI exception is active").On(V8),
			regs.F("SECUREFAULTACT", 4, 1, "Indicates if SecureFault is active").On(V8),
			regs.F("USGFAULTACT", 3, 1, "Indicates if UsageFault is active"),
			regs.F("HARDFAULTACT", 2, 1, "Indicates if HardFault is active").On(V8),
			regs.F("BUSFAULTACT", 1, 1, "Indicates if BusFault is active"),
			regs.F("MEMFAULTACT", 0, 1, "Indicates if MemFault is active"),
		).On(V7 | V8),
		regs.R("CFSR", "Configurable Fault Status Register", 0xE000ED28, 4,
			regs.F("MMFSR", 0, 8, "MemManage Fault Status Register").AsSub(),
			regs.F("MMARVALID", 7, 1, "Indicates if MMFAR has valid contents."),
			regs.F("MLSPERR", 5, 1, "Indicates if a MemManage fault occurred during FP lazy state preservation."),
			regs.F("MSTKERR", 4, 1, "Indicates if a derived MemManage fault occurred on exception entry."),
			regs.F("MUNSTKERR", 3, 1, "Indicates if a derived MemManage fault occurred on exception return."),
			regs.F("DACCVIOL", 1, 1, "Data access violation. The MMFAR shows the data address that the load or store tried to access."),
			regs.F("IACCVIOL", 0, 1, "MPU or Execute Never (XN) default memory map access violation on an instruction fetch has occurred."),
			regs.F("BFSR", 8, 8, "BusFault Status Register").AsSub(),
			regs.F("BFARVALID", 7+8, 1, "Indicates if BFAR has valid contents."),
			regs.F("LSPERR", 5+8, 1, "Indicates if a bus fault occurred during FP lazy state preservation."),
			regs.F("STKERR", 4+8, 1, "Indicates if a derived bus fault has occurred on exception entry."),
			regs.F("UNSTKERR", 3+8, 1, "Indicates if a derived bus fault has occurred on exception return."),
			regs.F("IMPRECISERR", 2+8, 1, "Indicates if imprecise data access error has occurred."),
			regs.F("PRECISERR", 1+8, 1, "Indicates if a precise data access error has occurred, and the processor has written the faulting address to the BFAR."),
			regs.F("IBUSERR", 0+8, 1, "Indicates if a bus fault on an instruction prefetch has occurred. The fault is signaled only if the instruction is issued."),
			regs.F("UFSR", 16, 16, "UsageFault Status Register").AsSub(),
			regs.F("DIVBYZERO", 9+16, 1, "Indicates if divide by zero error has occurred."),
			regs.F("UNALIGNED", 8+16, 1, "Indicates if unaligned access error has occurred."),
			regs.F("STKOF", 4+16, 1, "Indicates if a stack overflow has occurred.").On(V8),
			regs.F("NOCP", 3+16, 1, "Indicates if a coprocessor access error has occurred. This shows that the coprocessor is disabled or not present."),
			regs.F("INVPC", 2+16, 1, "Indicates if an integrity check error has occurred on EXC_RETURN."),
			regs.F("INVSTATE", 1+16, 1, "Indicates if instruction executed with invalid EPSR.T or EPSR.IT field."),
			regs.F("UNDEFINSTR", 0+16, 1, "Indicates if the processor has attempted to execute an undefined instruction."),
		).On(V7 | V8),
		regs.R("HFSR", "HardFault Status Register", 0xE000ED2C, 4,
			regs.F("DEBUGEVT", 31, 1, "Indicates when a Debug event has occurred."),
			regs.F("FORCED", 30, 1, "Indicates that a fault with configurable priority has been escalated to a HardFault exception."),
			regs.F("VECTTBL", 1, 1, "Indicates when a fault has occurred because of a vector table read error on exception processing."),
		).On(V7 | V8),
		regs.R("DFSR", "Debug Fault Status Register", 0xE000ED30, 4,
			regs.FE("PMU", 5, 1, []regs.EnumValue{
				regs.E(0, true, "PMU event has not occurred.", ""),
				regs.E(1, false, "PMU event has occurred.", ""),
			}, "PMU event. Sticky flag indicating whether a PMU counter overflow event has occurred.").On(V8),
			regs.FE("EXTERNAL", 4, 1, []regs.EnumValue{
				regs.E(0, true, "No external debug request debug event", ""),
				regs.E(1, false, "External debug request debug event", ""),
			}, "Indicates a debug event generated because of the assertion of an external debug request"),
			regs.FE("VCATCH", 3, 1, []regs.EnumValue{
				regs.E(0, true, "No Vector catch triggered", ""),
				regs.E(1, false, "Vector catch triggered", ""),
			}, "Indicates triggering of a Vector catch"),
			regs.FE("DWTTRAP", 2, 1, []regs.EnumValue{
				regs.E(0, true, "No debug events generated by the DWT", ""),
				regs.E(1, false, "At least one debug event generated by the DWT", ""),
			}, "Indicates a debug event generated by the DWT"),
			regs.FE("BKPT", 1, 1, []regs.EnumValue{
				regs.E(0, true, "No breakpoint debug event", ""),
				regs.E(1, false, "At least one breakpoint debug event", ""),
			}, "Indicates a debug event generated by BKPT instruction execution or a breakpoint match in FPB"),
			regs.FE("HALTED", 0, 1, []regs.EnumValue{
				regs.E(0, true, "No halt request debug event", ""),
				regs.E(1, false, "Halt request debug event", ""),
			}, "Indicates a debug event generated by either C_HALT, C_STEP or DEMCR.MON_STEP"),
		),
		regs.R("MMFAR", "MemManage Fault Address Register", 0xE000ED34, 4).On(V7 | V8),
		regs.R("BFAR", "BusFault Address Register", 0xE000ED38, 4).On(V7 | V8),
		regs.R("AFSR", "Auxiliary Fault Status Register", 0xE000ED3C, 4,
			regs.F("IMPDEF", 0, 32, "Implemention defined"),
		),
		regs.R("CPACR", "Coprocessor Access Control Register", 0xE000ED88, 4,
			cpacrField("CP0", 0, 0),
			cpacrField("CP1", 2, 1),
			cpacrField("CP2", 4, 2),
			cpacrField("CP3", 6, 3),
			cpacrField("CP4", 8, 4),
			cpacrField("CP5", 10, 5),
			cpacrField("CP6", 12, 6),
			cpacrField("CP7", 14, 7),
			cpacrField("CP10 - FPU", 20, 10),
			cpacrField("CP11 - FPU", 22, 11),
		).On(V7 | V8),
	}}
}

func m7IssueEnum() []regs.EnumValue {
	return []regs.EnumValue{
		regs.E(0, true, "Normal operation", ""),
		regs.E(1, false, "might not be issued in channel 1.", ""),
	}
}

func m7DualIssueEnum() []regs.EnumValue {
	return []regs.EnumValue{
		regs.E(0, true, "Normal operation", ""),
		regs.E(1, false, "Dual issue disabled", "Nothing can be dual-issued when this instruction type is in channel 0."),
	}
}

// AuxBlock covers the interrupt controller type register and the
// implementation-defined auxiliary control registers.
func AuxBlock() regs.Block {
	return regs.Block{Name: "AUX", Regs: []regs.Register{
		regs.R("ICTR", "Interrupt Controller Type Register", 0xE000E004, 4,
			regs.FM("INTLINESNUM", 0, 4, func(v uint32) string {
				n := 32 * (v + 1)
				if n > 496 {
					n = 496
				}
				return fmt.Sprintf("%d vectors", n)
			}, "The total number of interrupt lines supported, as 32*(1+N)"),
		),
		regs.R("ACTLR - M1", "Auxiliary Control Register - Cortex M1", 0xE000E008, 4,
			regs.F("ITCMUAEN", 4, 1, "Instruction TCM Upper Alias Enable."),
			regs.F("ITCMLAEN", 3, 1, "Instruction TCM Lower Alias Enable."),
		).On(M1),
		regs.R("ACTLR - M3", "Auxiliary Control Register - Cortex M3", 0xE000E008, 4,
			regs.F("DISFOLD", 2, 1, ""),
			regs.F("DISDEFWBUF", 1, 1, ""),
			regs.F("DISMCYCINT", 0, 1, ""),
		).On(M3),
		regs.R("ACTLR - M4", "Auxiliary Control Register - Cortex M4", 0xE000E008, 4,
			regs.F("DISOOFP", 9, 1, ""),
			regs.F("DISFPCA", 8, 1, ""),
			regs.F("DISFOLD", 2, 1, ""),
			regs.F("DISDEFWBUF", 1, 1, ""),
			regs.F("DISMCYCINT", 0, 1, ""),
		).On(M4),
		regs.R("ACTLR - M7", "Auxiliary Control Register - Cortex M7", 0xE000E008, 4,
			regs.F("DISFPUISSOPT", 28, 1, ""),
			regs.F("DISCRITAXIRUW", 27, 1, ""),
			regs.F("DISDYNADD", 26, 1, ""),
			regs.F("DISISSCH1", 21, 5, "").Shown(),
			regs.FE("    VFP", 25, 1, m7IssueEnum(), "VFP"),
			regs.FE("    MAC and MUL", 24, 1, m7IssueEnum(), "Integer MAC and MUL"),
			regs.FE("    Loads to PC", 23, 1, m7IssueEnum(), "Loads to PC"),
			regs.FE("    Indirect branches", 22, 1, m7IssueEnum(), "Indirect branches, but not loads to PC"),
			regs.FE("    Direct branches", 21, 1, m7IssueEnum(), "Direct branches"),
			regs.F("DISDI", 16, 5, "").Shown(),
			regs.FE("    VFP", 20, 1, m7DualIssueEnum(), "VFP"),
			regs.FE("    Integer MAC and MUL", 19, 1, m7DualIssueEnum(), "Integer MAC and MUL"),
			regs.FE("    Loads to PC", 18, 1, m7DualIssueEnum(), "Loads to PC"),
			regs.FE("    Indirect branches", 17, 1, m7DualIssueEnum(), "Indirect branches, but not loads to PC"),
			regs.FE("    Direct branches", 16, 1, enumEnDis, "Direct branches"),
			regs.F("DISCRITAXIRUR", 15, 1, ""),
			regs.F("DISBTACALLOC", 14, 1, ""),
			regs.F("DISBTACREAD", 13, 1, ""),
			regs.F("DISITMATBFLUSH", 12, 1, ""),
			regs.F("DISRAMODE", 11, 1, ""),
			regs.F("FPEXCODIS", 10, 1, ""),
			regs.F("DISFOLD", 2, 1, ""),
		).On(M7),
		regs.R("ACTLR - M33", "Auxiliary Control Register - Cortex M33", 0xE000E008, 4,
			regs.F("EXTEXCLALL", 29, 1, ""),
			regs.F("DISITMATBFLUSH", 12, 1, ""),
			regs.F("FPEXCODIS", 10, 1, ""),
			regs.F("DISOOFP", 9, 1, ""),
			regs.F("DISFOLD", 2, 1, ""),
		).On(M33),
		regs.R("ABFSR - M7", "Auxiliary Bus Fault Status - Cortex M7", 0xE000EFA8, 4,
			regs.FE("    AXIMTYPE", 8, 2, []regs.EnumValue{
				regs.E(0, true, "OKAY", ""),
				regs.E(1, false, "EXOKAY", ""),
				regs.E(2, false, "SLVERR", ""),
				regs.E(3, false, "DECERR", ""),
			}, "Indicates the type of fault on the AXIM interface"),
			regs.F("EPPB", 4, 1, "Asynchronous fault on EPPB interface"),
			regs.F("AXIM", 3, 1, "Asynchronous fault on AXIM interface"),
			regs.F("AHBP", 2, 1, "Asynchronous fault on AHBP interface"),
			regs.F("DTCM", 1, 1, "Asynchronous fault on DTCM interface"),
			regs.F("ITCM", 0, 1, "Asynchronous fault on ITCM interface"),
		).On(M7),
	}}
}
