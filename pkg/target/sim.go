package target

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadHook lets tests emulate target-specific read behavior, overriding the
// backing memory for selected addresses.
type ReadHook func(addr uint32, size int) (uint32, bool, error)

// SimTarget is an in-memory target useful for unit tests and for inspecting
// memory dumps without hardware. Memory is sparse; reading an address that
// was never set yields zero.
type SimTarget struct {
	OnRead ReadHook

	mem     map[uint32]byte
	regions map[int][2]uint32

	reads int
}

// NewSimTarget creates an empty simulated target.
func NewSimTarget() *SimTarget {
	return &SimTarget{
		mem:     make(map[uint32]byte),
		regions: make(map[int][2]uint32),
	}
}

// SetWord stores a little-endian 32-bit value.
func (s *SimTarget) SetWord(addr, value uint32) {
	for i := 0; i < 4; i++ {
		s.mem[addr+uint32(i)] = byte(value >> (8 * i))
	}
}

// SetRegion stores the RBAR/RLAR pair for one MPU region index.
func (s *SimTarget) SetRegion(index int, rbar, rlar uint32) {
	s.regions[index] = [2]uint32{rbar, rlar}
}

// Reads reports how many memory reads have been issued, for tests asserting
// that values are snapshotted fresh per invocation.
func (s *SimTarget) Reads() int {
	return s.reads
}

// ReadMem implements the memory-read capability.
func (s *SimTarget) ReadMem(addr uint32, size int) (uint32, error) {
	if !validSize(size) {
		return 0, &MemoryAccessError{Addr: addr, Size: size, Cause: errors.New("unsupported width")}
	}
	s.reads++

	if s.OnRead != nil {
		v, ok, err := s.OnRead(addr, size)
		if err != nil {
			return 0, &MemoryAccessError{Addr: addr, Size: size, Cause: err}
		}
		if ok {
			return v, nil
		}
	}

	var v uint32
	for i := 0; i < size; i++ {
		v |= uint32(s.mem[addr+uint32(i)]) << (8 * i)
	}
	return v, nil
}

// ReadRegion implements MPU region access for the simulator. Region
// selection on real silicon is banked behind MPU_RNR; the simulator keeps
// the per-index values directly.
func (s *SimTarget) ReadRegion(index int) (rbar, rlar uint32, err error) {
	pair, ok := s.regions[index]
	if !ok {
		return 0, 0, nil
	}
	return pair[0], pair[1], nil
}

// LoadDump populates memory from a dump file of "address = value" word
// entries, one per line. '#' starts a comment. Both numbers accept 0x
// prefixes.
func (s *SimTarget) LoadDump(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("target: open dump: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		addrStr, valStr, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("target: dump %s:%d: missing '='", path, lineNo)
		}
		addr, err := parseUint32(addrStr)
		if err != nil {
			return fmt.Errorf("target: dump %s:%d: bad address: %w", path, lineNo, err)
		}
		val, err := parseUint32(valStr)
		if err != nil {
			return fmt.Errorf("target: dump %s:%d: bad value: %w", path, lineNo, err)
		}
		s.SetWord(addr, val)
	}
	return sc.Err()
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	return uint32(v), err
}
