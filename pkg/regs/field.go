package regs

// ModelSet is a bitmask of silicon model tags. The concrete bits are assigned
// by the catalog owner (see pkg/cortexm); the zero value means "applies to
// every model", mirroring an absent version tag in a chip description.
type ModelSet uint32

// Applies reports whether an item tagged with m is valid for the detected
// model set. An unknown model (detected == 0) only enables untagged items.
func (m ModelSet) Applies(detected ModelSet) bool {
	return m == 0 || m&detected != 0
}

// EnumValue is one enumerated mapping of a raw field value to a label.
// Default marks the "nothing interesting" state that the formatter suppresses
// unless all-fields display is requested.
type EnumValue struct {
	Value       uint32
	Default     bool
	Label       string
	Description string
	Models      ModelSet
}

// Field is a named bit range within a register, optionally with enumerated
// values or a computed text mapping.
type Field struct {
	Name        string
	Range       BitRange
	Description string

	// Enums is searched linearly in declaration order; the first match wins.
	// Overlapping values are allowed and used deliberately as fallbacks at
	// the end of the list.
	Enums []EnumValue

	// Map renders a computed text for the extracted value, for fields whose
	// meaning is arithmetic rather than enumerated (e.g. CPUID revisions).
	Map func(uint32) string

	// Always forces the field row to be shown even when it decodes to zero
	// or to its default enum value.
	Always bool

	// Sub renders the field as its own top-level row with a narrow value,
	// used for byte-wide status registers aliased into a parent register.
	Sub bool

	Models ModelSet
}

// FieldResult is the outcome of decoding one field from a raw register value.
type FieldResult struct {
	Value uint32
	Enum  *EnumValue // nil when no enumerated value matched
}

// Decode extracts the field from raw and resolves its enumerated value, if
// any. Enum entries tagged for other models are skipped.
func (f *Field) Decode(raw uint32, detected ModelSet, force bool) FieldResult {
	v := f.Range.Extract(raw)
	res := FieldResult{Value: v}
	for i := range f.Enums {
		e := &f.Enums[i]
		if !force && !e.Models.Applies(detected) {
			continue
		}
		if e.Value == v {
			res.Enum = e
			break
		}
	}
	return res
}

// Text returns the human-readable rendering of the decoded value: the enum
// label, the mapped text, or "" when only the raw value is known.
func (f *Field) Text(res FieldResult) string {
	if res.Enum != nil {
		return res.Enum.Label
	}
	if f.Map != nil {
		return f.Map(res.Value)
	}
	return ""
}

// Catalog construction helpers. The built-in catalogs are declared as plain
// data with these; ranges are panics-on-misuse because a bad built-in range
// is a programming error caught by the catalog tests.

func mustBits(low, length uint) BitRange {
	r, err := NewBitRange(low, low+length-1, 32)
	if err != nil {
		panic(err)
	}
	return r
}

// F declares a plain bit field.
func F(name string, low, length uint, descr string) Field {
	return Field{Name: name, Range: mustBits(low, length), Description: descr}
}

// FE declares a field with enumerated values.
func FE(name string, low, length uint, enums []EnumValue, descr string) Field {
	return Field{Name: name, Range: mustBits(low, length), Enums: enums, Description: descr}
}

// FM declares a field with a computed text mapping.
func FM(name string, low, length uint, m func(uint32) string, descr string) Field {
	return Field{Name: name, Range: mustBits(low, length), Map: m, Description: descr}
}

// E declares one enumerated value.
func E(value uint32, def bool, label, descr string) EnumValue {
	return EnumValue{Value: value, Default: def, Label: label, Description: descr}
}

// On restricts the field to the given models.
func (f Field) On(m ModelSet) Field {
	f.Models = m
	return f
}

// Shown marks the field as always shown.
func (f Field) Shown() Field {
	f.Always = true
	return f
}

// AsSub marks the field as an aliased sub-register row.
func (f Field) AsSub() Field {
	f.Sub = true
	f.Always = true
	return f
}
