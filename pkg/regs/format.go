package regs

import (
	"fmt"
	"io"
)

// Options controls report rendering. Formatting is a pure function of the
// raw register values and these options.
type Options struct {
	// Descr appends register/field descriptions as inline comments.
	Descr bool
	// All includes fields and registers that decode to their default or
	// all-zero value.
	All bool
	// Binary renders bit-position indicators as full-width binary strings
	// instead of hex.
	Binary bool
	// Force ignores model filtering and renders every defined field.
	Force bool
}

func (o Options) base() uint {
	if o.Binary {
		return 1
	}
	return 4
}

const nameColumn = 10

// FormatBlock reads every applicable register of the block and writes one
// report row per register plus indented rows for its decoded fields. A failed
// read aborts only that register's row; the remaining registers are still
// attempted.
func FormatBlock(w io.Writer, b *Block, mr MemoryReader, detected ModelSet, opts Options) {
	regs := b.Regs
	if !opts.Force {
		regs = b.Applicable(detected)
	}
	for i := range regs {
		FormatRegister(w, &regs[i], mr, detected, opts, false)
	}
}

// FormatRegister reads one register and renders it. When explicit is true the
// register was named directly by the user and is never suppressed.
func FormatRegister(w io.Writer, r *Register, mr MemoryReader, detected ModelSet, opts Options, explicit bool) {
	raw, err := r.Read(mr)
	if err != nil {
		fmt.Fprintf(w, "%-*s = <inaccessible: %v>\n", nameColumn, r.Name, err)
		return
	}
	FormatRegisterValue(w, r, raw, detected, opts, explicit)
}

// FormatRegisterValue renders a register from an already-read raw value.
func FormatRegisterValue(w io.Writer, r *Register, raw uint32, detected ModelSet, opts Options, explicit bool) {
	if raw == 0 && !opts.All && !explicit {
		return
	}

	line := fmt.Sprintf("%-*s = %s", nameColumn, r.Name, baseConvert(uint64(raw), opts.base(), r.Bits()))
	if opts.Descr && r.Description != "" {
		line += " // " + r.Description
	}
	fmt.Fprintln(w, line)

	for i := range r.Fields {
		f := &r.Fields[i]
		if !opts.Force && !f.Models.Applies(detected) {
			continue
		}
		formatField(w, f, raw, r.Bits(), detected, opts)
	}
}

func formatField(w io.Writer, f *Field, raw uint32, bits uint, detected ModelSet, opts Options) {
	res := f.Decode(raw, detected, opts.Force)

	suppressed := res.Value == 0 || (res.Enum != nil && res.Enum.Default)
	if suppressed && !f.Always && !opts.All {
		return
	}

	length := f.Range.Len()
	valStr := hexPad(res.Value, length)

	var line string
	if f.Sub {
		// Aliased sub-register: its own top-level row with a narrow value.
		line = fmt.Sprintf("%-*s = %s", nameColumn, f.Name, valStr)
	} else {
		indicator := maskedConvert(raw, bits, f.Range.Low, length, opts.base())
		line = fmt.Sprintf("%*s%s %s %s", nameColumn+3, "", indicator, valStr, f.Name)
		if text := f.Text(res); text != "" {
			line += " - " + text
		}
	}

	if opts.Descr {
		descr := f.Description
		if res.Enum != nil && res.Enum.Description != "" {
			descr = res.Enum.Description
		}
		if descr != "" {
			line += " // " + descr
		}
	}
	fmt.Fprintln(w, line)
}
