package regs

import "testing"

func TestFieldDecodeFirstMatchWins(t *testing.T) {
	// Overlapping values are allowed; declaration order decides.
	f := FE("MODE", 0, 4, []EnumValue{
		E(0x1, false, "first", ""),
		E(0x1, false, "shadowed", ""),
		E(0x2, false, "two", ""),
	}, "")

	res := f.Decode(0x1, 0, false)
	if res.Enum == nil || res.Enum.Label != "first" {
		t.Fatalf("Decode(0x1) enum = %+v, want first", res.Enum)
	}
	res = f.Decode(0x2, 0, false)
	if res.Enum == nil || res.Enum.Label != "two" {
		t.Fatalf("Decode(0x2) enum = %+v, want two", res.Enum)
	}
	res = f.Decode(0x7, 0, false)
	if res.Enum != nil {
		t.Fatalf("Decode(0x7) enum = %+v, want nil", res.Enum)
	}
	if res.Value != 0x7 {
		t.Fatalf("Decode(0x7) value = 0x%x", res.Value)
	}
}

func TestFieldDecodeModelFilter(t *testing.T) {
	const (
		modelA ModelSet = 1 << 0
		modelB ModelSet = 1 << 1
	)
	f := FE("Architecture", 0, 4, []EnumValue{
		{Value: 0xc, Label: "for A", Models: modelA},
		{Value: 0xc, Label: "for B", Models: modelB},
	}, "")

	res := f.Decode(0xc, modelB, false)
	if res.Enum == nil || res.Enum.Label != "for B" {
		t.Fatalf("detected B: enum = %+v", res.Enum)
	}

	// Unknown model only matches untagged enums.
	res = f.Decode(0xc, 0, false)
	if res.Enum != nil {
		t.Fatalf("unknown model: enum = %+v, want nil", res.Enum)
	}

	// Force ignores tags; first declared wins.
	res = f.Decode(0xc, 0, true)
	if res.Enum == nil || res.Enum.Label != "for A" {
		t.Fatalf("forced: enum = %+v", res.Enum)
	}
}

func TestModelSetApplies(t *testing.T) {
	const (
		modelA ModelSet = 1 << 0
		modelB ModelSet = 1 << 1
	)
	tests := []struct {
		tag, detected ModelSet
		want          bool
	}{
		{0, 0, true}, // untagged applies everywhere
		{0, modelA, true},
		{modelA, modelA, true},
		{modelA, modelB, false},
		{modelA | modelB, modelB, true},
		{modelA, 0, false}, // unknown model disables tagged items
	}
	for _, tt := range tests {
		if got := tt.tag.Applies(tt.detected); got != tt.want {
			t.Errorf("ModelSet(%b).Applies(%b) = %v, want %v", tt.tag, tt.detected, got, tt.want)
		}
	}
}

func TestFieldText(t *testing.T) {
	fm := FM("Revision", 0, 4, func(n uint32) string {
		return "rXp" + string(rune('0'+n))
	}, "")
	res := fm.Decode(0x2, 0, false)
	if got := fm.Text(res); got != "rXp2" {
		t.Fatalf("mapped text = %q", got)
	}

	plain := F("EN", 0, 1, "")
	res = plain.Decode(0x1, 0, false)
	if got := plain.Text(res); got != "" {
		t.Fatalf("plain text = %q, want empty", got)
	}
}
