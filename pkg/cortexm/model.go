// Package cortexm holds the built-in register catalogs for the ARM Cortex-M
// system control space (SCB, SysTick, FPU extension, MPU) and the NVIC
// interrupt state resolver.
//
// Architecture reference manuals:
//
//	ARMv6-M https://developer.arm.com/documentation/ddi0419/latest/
//	ARMv7-M https://developer.arm.com/documentation/ddi0403/latest/
//	ARMv8-M https://developer.arm.com/documentation/ddi0553/latest/
package cortexm

import (
	"github.com/OpenTraceLab/OpenTraceCortex/pkg/regs"
)

// Model tags, one bit per implemented core. A field or register carrying the
// zero ModelSet applies to every model.
const (
	M0 regs.ModelSet = 1 << iota
	M0Plus
	M1
	M3
	M4
	M7
	M23
	M33
)

// Architecture groupings.
const (
	V6 = M0 | M0Plus | M1
	V7 = M3 | M4 | M7
	V8 = M23 | M33
)

// CPUIDAddr is the CPUID Base Register, fixed by the architecture.
const CPUIDAddr = 0xE000ED00

// ModelName returns the marketing name for a single-model set.
func ModelName(m regs.ModelSet) string {
	switch m {
	case M0:
		return "M0"
	case M0Plus:
		return "M0+"
	case M1:
		return "M1"
	case M3:
		return "M3"
	case M4:
		return "M4"
	case M7:
		return "M7"
	case M23:
		return "M23"
	case M33:
		return "M33"
	}
	return "XX"
}

// ArchName returns the architecture name for a detected model.
func ArchName(m regs.ModelSet) string {
	switch {
	case m&V6 != 0:
		return "v6"
	case m&V7 != 0:
		return "v7"
	case m&V8 != 0:
		return "v8"
	}
	return "XX"
}

// cpuidModels maps CPUID & 0xff00fff0 (implementer + part number + constant)
// to the core model.
var cpuidModels = map[uint32]regs.ModelSet{
	0x4100c200: M0,
	0x4100c600: M0Plus,
	0x4100c210: M1,
	0x4100c230: M3,
	0x4100c240: M4,
	0x4100c270: M7,
	0x4100d200: M23,
	0x4100d210: M33,
}

// DetectModel reads CPUID from the live target and maps it to a model plus
// its architecture bits. An unrecognized part yields the zero set, which
// enables only architecture-common fields.
func DetectModel(mr regs.MemoryReader) (regs.ModelSet, error) {
	cpuid, err := mr.ReadMem(CPUIDAddr, 4)
	if err != nil {
		return 0, err
	}
	return ModelFromCPUID(cpuid), nil
}

// ModelFromCPUID maps a raw CPUID value to the detected model set.
func ModelFromCPUID(cpuid uint32) regs.ModelSet {
	return cpuidModels[cpuid&0xff00fff0]
}
