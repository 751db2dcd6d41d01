package device

import (
	"sync"

	"github.com/OpenTraceLab/OpenTraceCortex/pkg/regs"
)

// Registry holds loaded devices under caller-chosen names. Loading the same
// name again replaces the device atomically; readers observe either the old
// or the new descriptor, never a mix. Names keep first-insertion order.
type Registry struct {
	mu      sync.RWMutex
	devices map[string]*Device
	order   []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{devices: make(map[string]*Device)}
}

// Load registers dev under name, replacing any previous descriptor. The key
// is the caller's short name, not the descriptor's internal one, so the same
// descriptor may be loaded under several names.
func (r *Registry) Load(name string, dev *Device) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.devices[name]; !ok {
		r.order = append(r.order, name)
	}
	r.devices[name] = dev
}

// Get returns the named device.
func (r *Registry) Get(name string) (*Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	dev, ok := r.devices[name]
	if !ok {
		return nil, &NotFoundError{Kind: "device", Name: name}
	}
	return dev, nil
}

// Names lists the loaded devices in load order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Peripherals lists the peripherals of the named device.
func (r *Registry) Peripherals(device string) ([]*Peripheral, error) {
	dev, err := r.Get(device)
	if err != nil {
		return nil, err
	}
	return dev.Peripherals, nil
}

// Registers lists the registers of one peripheral of the named device.
func (r *Registry) Registers(device, peripheral string) ([]regs.Register, error) {
	dev, err := r.Get(device)
	if err != nil {
		return nil, err
	}
	p, err := dev.Peripheral(peripheral)
	if err != nil {
		return nil, err
	}
	return p.Block.Regs, nil
}
