package device

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/participle/v2"

	"github.com/OpenTraceLab/OpenTraceCortex/pkg/regs"
)

// RegmapParser parses the compact register-map descriptor format.
type RegmapParser struct {
	parser *participle.Parser[regmapFile]
}

// NewRegmapParser builds the descriptor grammar.
func NewRegmapParser() (*RegmapParser, error) {
	parser, err := participle.Build[regmapFile](
		participle.Lexer(regmapLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.Unquote("String"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("device: build regmap parser: %w", err)
	}
	return &RegmapParser{parser: parser}, nil
}

// ParseString parses descriptor text and assembles the devices it declares.
func (p *RegmapParser) ParseString(input string) ([]*Device, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("device: parse regmap: %w", err)
	}
	return assembleRegmap(file)
}

// ParseFile parses one descriptor file.
func (p *RegmapParser) ParseFile(path string) ([]*Device, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}
	devs, err := p.ParseString(string(data))
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}
	return devs, nil
}

// LoadRegmap is the one-shot convenience wrapper around NewRegmapParser and
// ParseFile.
func LoadRegmap(path string) ([]*Device, error) {
	p, err := NewRegmapParser()
	if err != nil {
		return nil, err
	}
	return p.ParseFile(path)
}

func parseNum(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	return uint32(v), err
}

func assembleRegmap(file *regmapFile) ([]*Device, error) {
	var out []*Device
	for _, rd := range file.Devices {
		dev := &Device{Name: rd.Name, Description: rd.Description}
		for _, rp := range rd.Peripherals {
			base, err := parseNum(rp.Base)
			if err != nil {
				return nil, fmt.Errorf("device: %s/%s: bad base address %q", rd.Name, rp.Name, rp.Base)
			}
			p := &Peripheral{Name: rp.Name, Base: base, Block: regs.Block{Name: rp.Name}}
			for _, rr := range rp.Registers {
				reg, err := assembleRegmapRegister(rr, base)
				if err != nil {
					return nil, fmt.Errorf("device: %s/%s: %w", rd.Name, rp.Name, err)
				}
				p.Block.Regs = append(p.Block.Regs, reg)
			}
			dev.Peripherals = append(dev.Peripherals, p)
		}
		out = append(out, dev)
	}
	return out, nil
}

func assembleRegmapRegister(rr *regmapRegister, base uint32) (regs.Register, error) {
	offset, err := parseNum(rr.Offset)
	if err != nil {
		return regs.Register{}, fmt.Errorf("register %s: bad offset %q", rr.Name, rr.Offset)
	}
	size := 4
	if rr.Size != "" {
		v, err := parseNum(rr.Size)
		if err != nil || (v != 1 && v != 2 && v != 4) {
			return regs.Register{}, fmt.Errorf("register %s: bad size %q", rr.Name, rr.Size)
		}
		size = int(v)
	}

	reg := regs.Register{
		Name:        rr.Name,
		Description: rr.Description,
		Addr:        base + offset,
		Size:        size,
	}
	for _, rf := range rr.Fields {
		f, err := assembleRegmapField(rf, uint(size)*8)
		if err != nil {
			return regs.Register{}, fmt.Errorf("register %s: %w", rr.Name, err)
		}
		reg.Fields = append(reg.Fields, f)
	}
	return reg, nil
}

func assembleRegmapField(rf *regmapField, regBits uint) (regs.Field, error) {
	high, err := parseNum(rf.High)
	if err != nil {
		return regs.Field{}, fmt.Errorf("field %s: bad bit %q", rf.Name, rf.High)
	}
	low := high
	if rf.Low != nil {
		v, err := parseNum(*rf.Low)
		if err != nil {
			return regs.Field{}, fmt.Errorf("field %s: bad bit %q", rf.Name, *rf.Low)
		}
		low = v
	}
	rng, err := regs.NewBitRange(uint(low), uint(high), regBits)
	if err != nil {
		return regs.Field{}, fmt.Errorf("field %s: %w", rf.Name, err)
	}

	f := regs.Field{Name: rf.Name, Range: rng, Description: rf.Description}
	for _, re := range rf.Enums {
		v, err := parseNum(re.Value)
		if err != nil {
			return regs.Field{}, fmt.Errorf("field %s: bad enum value %q", rf.Name, re.Value)
		}
		f.Enums = append(f.Enums, regs.EnumValue{
			Value:       v,
			Default:     re.Default,
			Label:       re.Label,
			Description: re.Description,
		})
	}
	return f, nil
}
