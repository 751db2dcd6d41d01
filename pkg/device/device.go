// Package device holds the descriptor-driven register model: devices
// assembled from SVD or regmap files, and the registry the CLI resolves
// them from. Register offsets are converted to absolute addresses during
// assembly so lookups hand back ready-to-read catalogs.
package device

import (
	"strings"

	"github.com/OpenTraceLab/OpenTraceCortex/pkg/regs"
)

// Device is one assembled chip descriptor.
type Device struct {
	Name        string
	Description string
	Peripherals []*Peripheral
}

// Peripheral is one register block at a base address. Block carries the
// registers with absolute addresses.
type Peripheral struct {
	Name  string
	Base  uint32
	Block regs.Block
}

// Peripheral finds a peripheral by name, case-insensitively.
func (d *Device) Peripheral(name string) (*Peripheral, error) {
	for _, p := range d.Peripherals {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return nil, &NotFoundError{Kind: "peripheral", Name: name}
}

// Register finds a register by name within the peripheral,
// case-insensitively.
func (p *Peripheral) Register(name string) (*regs.Register, error) {
	if r, ok := p.Block.Register(name); ok {
		return r, nil
	}
	for i := range p.Block.Regs {
		if strings.EqualFold(p.Block.Regs[i].Name, name) {
			return &p.Block.Regs[i], nil
		}
	}
	return nil, &NotFoundError{Kind: "register", Name: name}
}
