package regs

import "fmt"

// BitRange describes a contiguous bit span within a register word. Bits are
// 0-indexed from the LSB and the range is inclusive on both ends.
type BitRange struct {
	Low  uint
	High uint
}

// InvalidRangeError reports a malformed bit range. It only occurs when a
// catalog is assembled from untrusted input; the built-in catalogs are
// validated by their tests.
type InvalidRangeError struct {
	Low   uint
	High  uint
	Width uint
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("regs: invalid bit range [%d:%d] in %d-bit register", e.High, e.Low, e.Width)
}

// NewBitRange validates low <= high < width and returns the range.
func NewBitRange(low, high, width uint) (BitRange, error) {
	if low > high || high >= width {
		return BitRange{}, &InvalidRangeError{Low: low, High: high, Width: width}
	}
	return BitRange{Low: low, High: high}, nil
}

// Len returns the number of bits covered by the range.
func (b BitRange) Len() uint {
	return b.High - b.Low + 1
}

// Mask returns the positioned mask covering the range.
func (b BitRange) Mask() uint32 {
	return (1<<b.Len() - 1) << b.Low
}

// Extract shifts the range down to bit 0 and masks it.
func (b BitRange) Extract(word uint32) uint32 {
	return (word >> b.Low) & (1<<b.Len() - 1)
}

// Insert places value into the range within word. It exists for width and
// shift bookkeeping only; nothing here ever writes to a target.
func (b BitRange) Insert(word, value uint32) uint32 {
	return (word &^ b.Mask()) | ((value << b.Low) & b.Mask())
}
