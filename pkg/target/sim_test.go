package target

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSimTargetReadSizes(t *testing.T) {
	sim := NewSimTarget()
	sim.SetWord(0x1000, 0x44332211)

	tests := []struct {
		addr uint32
		size int
		want uint32
	}{
		{0x1000, 4, 0x44332211},
		{0x1000, 2, 0x2211},
		{0x1002, 2, 0x4433},
		{0x1000, 1, 0x11},
		{0x1003, 1, 0x44},
		{0x2000, 4, 0}, // unset memory reads as zero
	}
	for _, tt := range tests {
		got, err := sim.ReadMem(tt.addr, tt.size)
		if err != nil {
			t.Fatalf("ReadMem(0x%x, %d): %v", tt.addr, tt.size, err)
		}
		if got != tt.want {
			t.Errorf("ReadMem(0x%x, %d) = 0x%x, want 0x%x", tt.addr, tt.size, got, tt.want)
		}
	}

	if _, err := sim.ReadMem(0x1000, 3); err == nil {
		t.Error("ReadMem size 3: expected error")
	}
}

func TestSimTargetOnRead(t *testing.T) {
	sim := NewSimTarget()
	sim.SetWord(0x1000, 0xAAAA5555)

	sim.OnRead = func(addr uint32, size int) (uint32, bool, error) {
		if addr == 0x1000 {
			return 0x12345678, true, nil
		}
		if addr == 0x2000 {
			return 0, false, errors.New("bus hang")
		}
		return 0, false, nil
	}

	got, err := sim.ReadMem(0x1000, 4)
	if err != nil {
		t.Fatalf("ReadMem: %v", err)
	}
	if got != 0x12345678 {
		t.Errorf("hook override = 0x%x", got)
	}

	_, err = sim.ReadMem(0x2000, 4)
	var mae *MemoryAccessError
	if !errors.As(err, &mae) {
		t.Fatalf("hook error = %v, want MemoryAccessError", err)
	}
	if mae.Addr != 0x2000 || mae.Size != 4 {
		t.Errorf("MemoryAccessError = %+v", mae)
	}

	if sim.Reads() != 2 {
		t.Errorf("Reads = %d, want 2", sim.Reads())
	}
}

func TestSimTargetLoadDump(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dump.txt")
	content := `# CPUID and friends
0xE000ED00 = 0x410fc241
0xE000ED04 = 0x00000803  # ICSR
57344 = 17
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	sim := NewSimTarget()
	if err := sim.LoadDump(path); err != nil {
		t.Fatalf("LoadDump: %v", err)
	}

	for _, tt := range []struct {
		addr uint32
		want uint32
	}{
		{0xE000ED00, 0x410fc241},
		{0xE000ED04, 0x803},
		{57344, 17},
	} {
		got, err := sim.ReadMem(tt.addr, 4)
		if err != nil {
			t.Fatalf("ReadMem: %v", err)
		}
		if got != tt.want {
			t.Errorf("ReadMem(0x%x) = 0x%x, want 0x%x", tt.addr, got, tt.want)
		}
	}
}

func TestSimTargetLoadDumpErrors(t *testing.T) {
	dir := t.TempDir()

	bad := []string{
		"0x1000 0x22\n",     // missing '='
		"zzz = 0x22\n",      // bad address
		"0x1000 = banana\n", // bad value
	}
	for i, content := range bad {
		path := filepath.Join(dir, "bad")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		sim := NewSimTarget()
		if err := sim.LoadDump(path); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}

func TestSimTargetRegions(t *testing.T) {
	sim := NewSimTarget()
	sim.SetRegion(0, 0x20000002, 0x2000FFE1)

	rbar, rlar, err := sim.ReadRegion(0)
	if err != nil {
		t.Fatalf("ReadRegion: %v", err)
	}
	if rbar != 0x20000002 || rlar != 0x2000FFE1 {
		t.Errorf("region 0 = 0x%08x / 0x%08x", rbar, rlar)
	}

	// Unset regions read as zero, like unset memory.
	rbar, rlar, err = sim.ReadRegion(7)
	if err != nil || rbar != 0 || rlar != 0 {
		t.Errorf("unset region = 0x%08x / 0x%08x, %v", rbar, rlar, err)
	}
}
