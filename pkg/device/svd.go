package device

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceCortex/pkg/regs"
)

// svdUint accepts the numeric spellings CMSIS-SVD allows: decimal, 0x hex,
// and # binary.
type svdUint uint32

func (u *svdUint) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	v, err := parseSVDNum(s)
	*u = svdUint(v)
	return err
}

func parseSVDNum(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "#"); ok {
		// Binary form; enumerated values may use x as don't-care bits.
		rest = strings.Map(func(r rune) rune {
			if r == 'x' || r == 'X' {
				return '0'
			}
			return r
		}, rest)
		v, err := strconv.ParseUint(rest, 2, 32)
		return uint32(v), err
	}
	v, err := strconv.ParseUint(s, 0, 32)
	return uint32(v), err
}

type svdDevice struct {
	Name        string           `xml:"name"`
	Description string           `xml:"description"`
	Size        *svdUint         `xml:"size"`
	Peripherals []*svdPeripheral `xml:"peripherals>peripheral"`
}

type svdPeripheral struct {
	DerivedFrom string         `xml:"derivedFrom,attr"`
	Name        string         `xml:"name"`
	Description string         `xml:"description"`
	BaseAddress svdUint        `xml:"baseAddress"`
	Size        *svdUint       `xml:"size"`
	Registers   []*svdRegister `xml:"registers>register"`
}

type svdRegister struct {
	Name          string     `xml:"name"`
	Description   string     `xml:"description"`
	AddressOffset svdUint    `xml:"addressOffset"`
	Size          *svdUint   `xml:"size"` // bits
	Fields        []svdField `xml:"fields>field"`
}

type svdField struct {
	Name        string `xml:"name"`
	Description string `xml:"description"`

	// The SVD schema allows three spellings for the bit span.
	BitOffset *svdUint `xml:"bitOffset"`
	BitWidth  *svdUint `xml:"bitWidth"`
	LSB       *svdUint `xml:"lsb"`
	MSB       *svdUint `xml:"msb"`
	BitRange  string   `xml:"bitRange"` // "[msb:lsb]"

	Enums []svdEnum `xml:"enumeratedValues>enumeratedValue"`
}

type svdEnum struct {
	Name        string `xml:"name"`
	Description string `xml:"description"`
	Value       string `xml:"value"`
	IsDefault   bool   `xml:"isDefault"`
}

// LoadSVD parses a CMSIS-SVD file and assembles it into a Device.
func LoadSVD(path string) (*Device, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}
	dev, err := ParseSVD(data)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}
	return dev, nil
}

// ParseSVD assembles a Device from raw SVD XML.
func ParseSVD(data []byte) (*Device, error) {
	var sd svdDevice
	if err := xml.Unmarshal(data, &sd); err != nil {
		return nil, fmt.Errorf("parse SVD: %w", err)
	}
	if sd.Name == "" {
		return nil, fmt.Errorf("SVD device has no name")
	}

	defSize := uint32(32)
	if sd.Size != nil {
		defSize = uint32(*sd.Size)
	}

	byName := make(map[string]*svdPeripheral, len(sd.Peripherals))
	for _, sp := range sd.Peripherals {
		byName[sp.Name] = sp
	}

	dev := &Device{Name: sd.Name, Description: sd.Description}
	for _, sp := range sd.Peripherals {
		regsSrc, err := resolveDerived(sp, byName)
		if err != nil {
			return nil, err
		}

		p := &Peripheral{
			Name: sp.Name,
			Base: uint32(sp.BaseAddress),
		}
		p.Block = regs.Block{Name: sp.Name}
		for _, sr := range regsSrc.Registers {
			reg, err := assembleSVDRegister(sr, p.Base, defSize)
			if err != nil {
				return nil, fmt.Errorf("peripheral %s: %w", sp.Name, err)
			}
			p.Block.Regs = append(p.Block.Regs, reg)
		}
		dev.Peripherals = append(dev.Peripherals, p)
	}
	return dev, nil
}

// resolveDerived follows derivedFrom references until a peripheral that
// carries its own registers. Chains are legal in SVD; cycles are not.
func resolveDerived(sp *svdPeripheral, byName map[string]*svdPeripheral) (*svdPeripheral, error) {
	seen := map[string]bool{sp.Name: true}
	src := sp
	for src.DerivedFrom != "" && len(src.Registers) == 0 {
		parent, ok := byName[src.DerivedFrom]
		if !ok {
			return nil, fmt.Errorf("peripheral %s derivedFrom unknown %s", sp.Name, src.DerivedFrom)
		}
		if seen[parent.Name] {
			return nil, fmt.Errorf("peripheral %s: derivedFrom cycle through %s", sp.Name, parent.Name)
		}
		seen[parent.Name] = true
		src = parent
	}
	return src, nil
}

func assembleSVDRegister(sr *svdRegister, base, defSize uint32) (regs.Register, error) {
	bits := defSize
	if sr.Size != nil {
		bits = uint32(*sr.Size)
	}
	switch bits {
	case 8, 16, 32:
	default:
		return regs.Register{}, fmt.Errorf("register %s: unsupported size %d bits", sr.Name, bits)
	}

	reg := regs.Register{
		Name:        sr.Name,
		Description: sr.Description,
		Addr:        base + uint32(sr.AddressOffset),
		Size:        int(bits / 8),
	}
	for i := range sr.Fields {
		f, err := assembleSVDField(&sr.Fields[i], bits)
		if err != nil {
			return regs.Register{}, fmt.Errorf("register %s: %w", sr.Name, err)
		}
		reg.Fields = append(reg.Fields, f)
	}
	return reg, nil
}

func assembleSVDField(sf *svdField, regBits uint32) (regs.Field, error) {
	lsb, msb, err := svdFieldSpan(sf)
	if err != nil {
		return regs.Field{}, fmt.Errorf("field %s: %w", sf.Name, err)
	}
	rng, err := regs.NewBitRange(lsb, msb, uint(regBits))
	if err != nil {
		return regs.Field{}, fmt.Errorf("field %s: %w", sf.Name, err)
	}

	f := regs.Field{
		Name:        sf.Name,
		Range:       rng,
		Description: sf.Description,
	}
	for _, se := range sf.Enums {
		if se.Value == "" && !se.IsDefault {
			continue
		}
		var v uint32
		if se.Value != "" {
			v, err = parseSVDNum(se.Value)
			if err != nil {
				return regs.Field{}, fmt.Errorf("field %s: enum %s: %w", sf.Name, se.Name, err)
			}
		}
		f.Enums = append(f.Enums, regs.EnumValue{
			Value:       v,
			Default:     se.IsDefault,
			Label:       se.Name,
			Description: se.Description,
		})
	}
	return f, nil
}

func svdFieldSpan(sf *svdField) (lsb, msb uint, err error) {
	switch {
	case sf.BitOffset != nil:
		width := uint(1)
		if sf.BitWidth != nil {
			width = uint(*sf.BitWidth)
		}
		if width == 0 {
			return 0, 0, fmt.Errorf("zero bitWidth")
		}
		return uint(*sf.BitOffset), uint(*sf.BitOffset) + width - 1, nil
	case sf.LSB != nil && sf.MSB != nil:
		return uint(*sf.LSB), uint(*sf.MSB), nil
	case sf.BitRange != "":
		s := strings.TrimSpace(sf.BitRange)
		s = strings.TrimPrefix(s, "[")
		s = strings.TrimSuffix(s, "]")
		hi, lo, ok := strings.Cut(s, ":")
		if !ok {
			return 0, 0, fmt.Errorf("malformed bitRange %q", sf.BitRange)
		}
		m, err := strconv.ParseUint(strings.TrimSpace(hi), 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("malformed bitRange %q", sf.BitRange)
		}
		l, err := strconv.ParseUint(strings.TrimSpace(lo), 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("malformed bitRange %q", sf.BitRange)
		}
		return uint(l), uint(m), nil
	}
	return 0, 0, fmt.Errorf("no bit span given")
}
