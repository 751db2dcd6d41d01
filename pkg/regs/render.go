package regs

// Rendering primitives shared by the format engine. A "base" here is the
// number of bits per output digit: 1 for binary, 4 for hex.

const digits = "0123456789abcdef"

// baseConvert renders val as a zero-padded string of bits/base digits.
func baseConvert(val uint64, base, bits uint) string {
	numDigits := (bits + base - 1) / base
	mask := uint64(1)<<base - 1

	out := make([]byte, numDigits)
	for i := int(numDigits) - 1; i >= 0; i-- {
		out[i] = digits[val&mask]
		val >>= base
	}
	return string(out)
}

// maskedConvert renders the bit span [off, off+length) of val within a
// bits-wide word, with '.' placeholders for every digit entirely outside the
// span. Digits that overlap the span keep their value.
func maskedConvert(val uint32, bits, off, length, base uint) string {
	mask := (uint64(1)<<length - 1) << off
	v := uint64(val) & mask

	valStr := baseConvert(v, base, bits)
	maskStr := baseConvert(mask, base, bits)

	out := []byte(valStr)
	for i := range out {
		if maskStr[i] == '0' {
			out[i] = '.'
		}
	}
	return string(out)
}

// hexPad renders val zero-padded to the number of hex digits needed for a
// length-bit value.
func hexPad(val uint32, length uint) string {
	return baseConvert(uint64(val), 4, length)
}
