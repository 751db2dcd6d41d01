package regs

// MemoryReader is the capability used to snapshot raw register values from a
// live target. Implementations must perform a single aligned read of the
// requested size (1, 2 or 4 bytes) and fail rather than guess when the target
// is unreadable.
type MemoryReader interface {
	ReadMem(addr uint32, size int) (uint32, error)
}

// Register is a named, addressed, fixed-width memory location with an ordered
// list of fields. Catalogs are assembled once and never mutated afterwards.
type Register struct {
	Name        string
	Description string
	Addr        uint32
	Size        int // bytes: 1, 2 or 4
	Fields      []Field
	Models      ModelSet
}

// Bits returns the register width in bits.
func (r *Register) Bits() uint {
	return uint(r.Size) * 8
}

// Read performs the single aligned read backing this register. Register
// state is undefined on a fault, so errors surface unchanged.
func (r *Register) Read(mr MemoryReader) (uint32, error) {
	return mr.ReadMem(r.Addr, r.Size)
}

// Block is a named, ordered collection of registers describing one hardware
// unit (SCB, SysTick, a vendor peripheral, ...).
type Block struct {
	Name string
	Regs []Register
}

// Applicable filters the block's registers by the detected model, preserving
// declaration order.
func (b *Block) Applicable(detected ModelSet) []Register {
	out := make([]Register, 0, len(b.Regs))
	for _, reg := range b.Regs {
		if reg.Models.Applies(detected) {
			out = append(out, reg)
		}
	}
	return out
}

// Register returns the named register, or false when the block does not
// define it.
func (b *Block) Register(name string) (*Register, bool) {
	for i := range b.Regs {
		if b.Regs[i].Name == name {
			return &b.Regs[i], true
		}
	}
	return nil, false
}

// R declares a register for a built-in catalog.
func R(name string, descr string, addr uint32, size int, fields ...Field) Register {
	return Register{Name: name, Description: descr, Addr: addr, Size: size, Fields: fields}
}

// On restricts the register to the given models.
func (r Register) On(m ModelSet) Register {
	r.Models = m
	return r
}
