// Package target provides memory-read access to live ARM Cortex-M targets:
// a CMSIS-DAP debug probe over USB, and an in-memory simulator for tests and
// offline inspection of memory dumps. All access is read-only; nothing in
// this package writes to target memory.
package target

import "fmt"

// MemoryAccessError reports a failed target memory read. Register state is
// undefined on a fault, so reads are never retried.
type MemoryAccessError struct {
	Addr  uint32
	Size  int
	Cause error
}

func (e *MemoryAccessError) Error() string {
	return fmt.Sprintf("target: read %d bytes @ 0x%08X: %v", e.Size, e.Addr, e.Cause)
}

func (e *MemoryAccessError) Unwrap() error {
	return e.Cause
}

func validSize(size int) bool {
	switch size {
	case 1, 2, 4:
		return true
	}
	return false
}
