package target

import (
	"debug/elf"
	"fmt"
	"sort"
)

// ELFSymbols resolves code addresses against the symbol table of an ELF
// image, for joining interrupt vector entries with handler names.
type ELFSymbols struct {
	syms []elfSym // sorted by Value
}

type elfSym struct {
	Name  string
	Value uint32
	Size  uint32
}

// NewELFSymbols loads the function symbols from path.
func NewELFSymbols(path string) (*ELFSymbols, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("target: open ELF: %w", err)
	}
	defer f.Close()

	raw, err := f.Symbols()
	if err != nil {
		return nil, fmt.Errorf("target: read symbols: %w", err)
	}

	var syms []elfSym
	for _, s := range raw {
		if elf.ST_TYPE(s.Info) != elf.STT_FUNC || s.Name == "" {
			continue
		}
		syms = append(syms, elfSym{
			Name: s.Name,
			// Function symbols on Thumb targets carry the mode bit.
			Value: uint32(s.Value) &^ 1,
			Size:  uint32(s.Size),
		})
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i].Value < syms[j].Value })

	return &ELFSymbols{syms: syms}, nil
}

// Resolve returns the name of the function containing addr. It never guesses:
// when no symbol covers the address it reports false.
func (e *ELFSymbols) Resolve(addr uint32) (string, bool) {
	i := sort.Search(len(e.syms), func(i int) bool { return e.syms[i].Value > addr })
	if i == 0 {
		return "", false
	}
	s := e.syms[i-1]
	if s.Size > 0 && addr >= s.Value+s.Size {
		return "", false
	}
	return s.Name, true
}
