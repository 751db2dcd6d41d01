package regs

import "testing"

func TestBaseConvert(t *testing.T) {
	tests := []struct {
		val        uint64
		base, bits uint
		want       string
	}{
		{0x410fc241, 4, 32, "410fc241"},
		{0, 4, 32, "00000000"},
		{0x5, 1, 8, "00000101"},
		{0x1, 4, 1, "1"},
		{0xc24, 4, 12, "c24"},
		{0x3, 1, 2, "11"},
	}
	for _, tt := range tests {
		if got := baseConvert(tt.val, tt.base, tt.bits); got != tt.want {
			t.Errorf("baseConvert(0x%x, %d, %d) = %q, want %q", tt.val, tt.base, tt.bits, got, tt.want)
		}
	}
}

func TestMaskedConvert(t *testing.T) {
	tests := []struct {
		val               uint32
		bits, off, length uint
		base              uint
		want              string
	}{
		// Hex digits fully outside the span become dots.
		{0x410fc241, 32, 24, 8, 4, "41......"},
		{0x410fc241, 32, 4, 12, 4, "....c24."},
		{0x410fc241, 32, 0, 1, 4, ".......1"},
		// A zero value inside the span still shows its digits.
		{0x00000000, 32, 4, 12, 4, "....000."},
		// Binary never shares digits between fields.
		{0xb5, 8, 4, 2, 1, "..11...."},
		{0xb5, 8, 0, 1, 1, ".......1"},
	}
	for _, tt := range tests {
		got := maskedConvert(tt.val, tt.bits, tt.off, tt.length, tt.base)
		if got != tt.want {
			t.Errorf("maskedConvert(0x%x, %d, %d, %d, %d) = %q, want %q",
				tt.val, tt.bits, tt.off, tt.length, tt.base, got, tt.want)
		}
	}
}

func TestHexPad(t *testing.T) {
	if got := hexPad(0x1, 1); got != "1" {
		t.Errorf("hexPad(1, 1) = %q", got)
	}
	if got := hexPad(0xc24, 12); got != "c24" {
		t.Errorf("hexPad(0xc24, 12) = %q", got)
	}
	if got := hexPad(0x0, 8); got != "00" {
		t.Errorf("hexPad(0, 8) = %q", got)
	}
}
