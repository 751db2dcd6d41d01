package regs

import (
	"errors"
	"strings"
	"testing"
)

// mapReader is a word-granular fake target.
type mapReader map[uint32]uint32

func (m mapReader) ReadMem(addr uint32, size int) (uint32, error) {
	v, ok := m[addr]
	if !ok {
		return 0, nil
	}
	switch size {
	case 1:
		return v & 0xFF, nil
	case 2:
		return v & 0xFFFF, nil
	}
	return v, nil
}

type failReader struct{}

func (failReader) ReadMem(addr uint32, size int) (uint32, error) {
	return 0, errors.New("bus fault")
}

func testRegister() Register {
	return R("CTRL", "Control register", 0x1000, 4,
		F("EN", 0, 1, "Enable"),
		FE("MODE", 4, 2, []EnumValue{
			E(0, true, "Idle", "Nothing happening"),
			E(2, false, "Fast", "Full speed"),
		}, "Operating mode"),
	)
}

func TestFormatRegisterRows(t *testing.T) {
	reg := testRegister()
	mr := mapReader{0x1000: 0x21}

	var buf strings.Builder
	FormatRegister(&buf, &reg, mr, 0, Options{}, false)

	want := "CTRL       = 00000021\n" +
		"             .......1 1 EN\n" +
		"             ......2. 2 MODE - Fast\n"
	if got := buf.String(); got != want {
		t.Fatalf("output:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatRegisterSuppressesZero(t *testing.T) {
	reg := testRegister()
	mr := mapReader{}

	var buf strings.Builder
	FormatRegister(&buf, &reg, mr, 0, Options{}, false)
	if got := buf.String(); got != "" {
		t.Fatalf("zero register rendered: %q", got)
	}

	// Explicitly requested registers always render.
	buf.Reset()
	FormatRegister(&buf, &reg, mr, 0, Options{}, true)
	if !strings.HasPrefix(buf.String(), "CTRL       = 00000000\n") {
		t.Fatalf("explicit zero register: %q", buf.String())
	}
	// ... but default fields stay hidden.
	if strings.Contains(buf.String(), "MODE") {
		t.Fatalf("default field rendered: %q", buf.String())
	}
}

func TestFormatRegisterAll(t *testing.T) {
	reg := testRegister()
	mr := mapReader{}

	var buf strings.Builder
	FormatRegister(&buf, &reg, mr, 0, Options{All: true}, false)
	out := buf.String()
	for _, want := range []string{"CTRL", "EN", "MODE - Idle"} {
		if !strings.Contains(out, want) {
			t.Errorf("all-mode output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatRegisterDescr(t *testing.T) {
	reg := testRegister()
	mr := mapReader{0x1000: 0x21}

	var buf strings.Builder
	FormatRegister(&buf, &reg, mr, 0, Options{Descr: true}, false)
	out := buf.String()
	if !strings.Contains(out, "// Control register") {
		t.Errorf("missing register description:\n%s", out)
	}
	if !strings.Contains(out, "// Enable") {
		t.Errorf("missing field description:\n%s", out)
	}
	// The matched enum's description wins over the field's.
	if !strings.Contains(out, "// Full speed") {
		t.Errorf("missing enum description:\n%s", out)
	}
}

func TestFormatRegisterBinary(t *testing.T) {
	reg := R("FLAGS", "", 0x2000, 1,
		F("B0", 0, 1, ""),
	)
	mr := mapReader{0x2000: 0xb5}

	var buf strings.Builder
	FormatRegister(&buf, &reg, mr, 0, Options{Binary: true}, false)

	// The position indicator switches to binary; the extracted value stays hex.
	want := "FLAGS      = 10110101\n" +
		"             .......1 1 B0\n"
	if got := buf.String(); got != want {
		t.Fatalf("output:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatRegisterReadError(t *testing.T) {
	reg := testRegister()

	var buf strings.Builder
	FormatRegister(&buf, &reg, failReader{}, 0, Options{}, false)
	out := buf.String()
	if !strings.Contains(out, "<inaccessible: ") || !strings.Contains(out, "bus fault") {
		t.Fatalf("read error row: %q", out)
	}
}

func TestFormatSubField(t *testing.T) {
	reg := R("CFSR", "", 0x3000, 4,
		F("MMFSR", 0, 8, "").AsSub(),
		F("IACCVIOL", 0, 1, ""),
		F("UFSR", 16, 16, "").AsSub(),
	)
	mr := mapReader{0x3000: 0x00010001}

	var buf strings.Builder
	FormatRegister(&buf, &reg, mr, 0, Options{}, false)

	want := "CFSR       = 00010001\n" +
		"MMFSR      = 01\n" +
		"             .......1 1 IACCVIOL\n" +
		"UFSR       = 0001\n"
	if got := buf.String(); got != want {
		t.Fatalf("output:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatBlockModelFilter(t *testing.T) {
	const (
		modelA ModelSet = 1 << 0
		modelB ModelSet = 1 << 1
	)
	b := Block{Name: "T", Regs: []Register{
		R("COMMON", "", 0x100, 4, F("X", 0, 1, "")).On(0),
		R("ONLY_B", "", 0x104, 4, F("Y", 0, 1, "")).On(modelB),
	}}
	mr := mapReader{0x100: 1, 0x104: 1}

	var buf strings.Builder
	FormatBlock(&buf, &b, mr, modelA, Options{})
	if strings.Contains(buf.String(), "ONLY_B") {
		t.Fatalf("model-filtered register rendered:\n%s", buf.String())
	}

	// Force renders everything.
	buf.Reset()
	FormatBlock(&buf, &b, mr, modelA, Options{Force: true})
	if !strings.Contains(buf.String(), "ONLY_B") {
		t.Fatalf("forced output missing register:\n%s", buf.String())
	}
}

func TestFormatFieldModelFilter(t *testing.T) {
	const modelB ModelSet = 1 << 1
	reg := R("REG", "", 0x100, 4,
		F("TAGGED", 0, 1, "").On(modelB),
	)
	mr := mapReader{0x100: 1}

	var buf strings.Builder
	FormatRegister(&buf, &reg, mr, 0, Options{}, false)
	if strings.Contains(buf.String(), "TAGGED") {
		t.Fatalf("tagged field rendered for unknown model:\n%s", buf.String())
	}
}
