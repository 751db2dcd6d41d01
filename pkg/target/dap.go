package target

import (
	"fmt"
	"sync"
)

// SWD-DP register addresses.
const (
	dpIDCODE   = 0x0
	dpCtrlStat = 0x4
	dpSelect   = 0x8
	dpRDBUFF   = 0xC
)

// MEM-AP register addresses (bank 0).
const (
	apCSW = 0x0
	apTAR = 0x4
	apDRW = 0xC
)

// CTRL/STAT power-up requests.
const (
	ctrlCDBGPWRUPREQ = 1 << 28
	ctrlCSYSPWRUPREQ = 1 << 30
	ctrlCDBGPWRUPACK = 1 << 29
	ctrlCSYSPWRUPACK = 1 << 31
)

// MEM-AP CSW: master debug + hprot defaults, address increment off, size in
// bits [2:0] (0 byte, 1 halfword, 2 word).
const cswBase = 0x23000000

// ProbeInfo describes an attached CMSIS-DAP probe.
type ProbeInfo struct {
	Vendor   string
	Product  string
	Serial   string
	Firmware string
}

// DAPProbe reads target memory through a CMSIS-DAP debug probe over SWD.
// Beyond the debug-port plumbing required to address a read, the probe never
// writes to the target.
type DAPProbe struct {
	transport *usbTransport
	proto     dapProtocol

	info    ProbeInfo
	cswSize int // size currently programmed into CSW, -1 when unknown

	mu sync.Mutex
}

// Known CMSIS-DAP VID/PID pairs, tried in order by OpenDAPProbe when no
// explicit pair is given.
var knownDAPProbes = []struct {
	VID, PID    uint16
	Description string
}{
	{0x2E8A, 0x000C, "Raspberry Pi CMSIS-DAP"},
	{0x0D28, 0x0204, "DAPLink CMSIS-DAP"},
	{0x1366, 0x0101, "SEGGER J-Link CMSIS-DAP"},
}

// OpenDAPProbe opens the first known probe, connects over SWD and powers up
// the debug domain.
func OpenDAPProbe() (*DAPProbe, error) {
	var lastErr error
	for _, k := range knownDAPProbes {
		p, err := OpenDAPProbeVIDPID(k.VID, k.PID)
		if err == nil {
			return p, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("target: no CMSIS-DAP probe found: %w", lastErr)
}

// OpenDAPProbeVIDPID opens a specific probe.
func OpenDAPProbeVIDPID(vid, pid uint16) (*DAPProbe, error) {
	transport, err := openUSBTransport(vid, pid)
	if err != nil {
		return nil, err
	}

	p := &DAPProbe{transport: transport, cswSize: -1}

	if err := p.queryInfo(); err != nil {
		transport.Close()
		return nil, fmt.Errorf("target: query probe info: %w", err)
	}
	if err := p.connect(); err != nil {
		transport.Close()
		return nil, fmt.Errorf("target: connect SWD: %w", err)
	}
	return p, nil
}

// Info returns the probe identification strings.
func (p *DAPProbe) Info() ProbeInfo {
	return p.info
}

func (p *DAPProbe) queryInfo() error {
	read := func(id byte) (string, error) {
		resp, err := p.transport.WriteRead(p.proto.encodeInfo(id))
		if err != nil {
			return "", err
		}
		return p.proto.decodeInfo(resp)
	}

	vendor, err := read(infoVendorID)
	if err != nil {
		return err
	}
	product, _ := read(infoProductID)
	serial, _ := read(infoSerialNum)
	firmware, _ := read(infoFirmwareVer)

	p.info = ProbeInfo{Vendor: vendor, Product: product, Serial: serial, Firmware: firmware}
	return nil
}

// connect selects SWD, issues the line-reset / JTAG-to-SWD switch sequence
// and powers up the debug domain.
func (p *DAPProbe) connect() error {
	resp, err := p.transport.WriteRead(p.proto.encodeConnect(portSWD))
	if err != nil {
		return err
	}
	port, err := p.proto.decodeConnect(resp)
	if err != nil {
		return err
	}
	if port != portSWD {
		return fmt.Errorf("target: probe connected port %d, want SWD", port)
	}

	resp, err = p.transport.WriteRead(p.proto.encodeSetClock(1_000_000))
	if err != nil {
		return err
	}
	if err := p.proto.decodeStatus(cmdSWJClock, resp); err != nil {
		return err
	}

	// >50 clocks with SWDIO high, the 16-bit JTAG-to-SWD select sequence,
	// >50 more high clocks, then idle low clocks before the first header.
	seq := []byte{
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0x9E, 0xE7,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0x00,
	}
	resp, err = p.transport.WriteRead(p.proto.encodeSWJSequence(len(seq)*8, seq))
	if err != nil {
		return err
	}
	if err := p.proto.decodeStatus(cmdSWJSequence, resp); err != nil {
		return err
	}

	resp, err = p.transport.WriteRead(p.proto.encodeTransferConfigure(0, 64, 0))
	if err != nil {
		return err
	}
	if err := p.proto.decodeStatus(cmdTransferConfigure, resp); err != nil {
		return err
	}

	// Reading IDCODE is mandatory after the switch sequence.
	if _, err := p.transfer([]transferReq{dpRead(dpIDCODE)}); err != nil {
		return fmt.Errorf("target: read DPIDR: %w", err)
	}

	reqs := []transferReq{
		dpWrite(dpCtrlStat, ctrlCDBGPWRUPREQ|ctrlCSYSPWRUPREQ),
		dpRead(dpCtrlStat),
	}
	data, err := p.transfer(reqs)
	if err != nil {
		return fmt.Errorf("target: debug power-up: %w", err)
	}
	const acks = ctrlCDBGPWRUPACK | ctrlCSYSPWRUPACK
	if data[0]&acks != acks {
		return fmt.Errorf("target: debug domain did not power up (CTRL/STAT 0x%08X)", data[0])
	}

	// Select MEM-AP 0, bank 0.
	if _, err := p.transfer([]transferReq{dpWrite(dpSelect, 0)}); err != nil {
		return fmt.Errorf("target: select MEM-AP: %w", err)
	}
	return nil
}

func (p *DAPProbe) transfer(reqs []transferReq) ([]uint32, error) {
	resp, err := p.transport.WriteRead(p.proto.encodeTransfer(reqs))
	if err != nil {
		return nil, err
	}
	return p.proto.decodeTransfer(resp, reqs)
}

// ReadMem implements the memory-read capability through the MEM-AP: program
// CSW with the access size, set TAR, read DRW. Sub-word reads extract the
// addressed byte lane from the DRW word.
func (p *DAPProbe) ReadMem(addr uint32, size int) (uint32, error) {
	if !validSize(size) {
		return 0, &MemoryAccessError{Addr: addr, Size: size, Cause: fmt.Errorf("unsupported width")}
	}
	if addr%uint32(size) != 0 {
		return 0, &MemoryAccessError{Addr: addr, Size: size, Cause: fmt.Errorf("unaligned access")}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var cswSize uint32
	switch size {
	case 1:
		cswSize = 0
	case 2:
		cswSize = 1
	case 4:
		cswSize = 2
	}

	var reqs []transferReq
	if p.cswSize != size {
		reqs = append(reqs, apWrite(apCSW, cswBase|cswSize))
	}
	reqs = append(reqs, apWrite(apTAR, addr), apRead(apDRW))

	data, err := p.transfer(reqs)
	if err != nil {
		p.cswSize = -1
		return 0, &MemoryAccessError{Addr: addr, Size: size, Cause: err}
	}
	p.cswSize = size

	word := data[len(data)-1]
	// Byte lanes: a sub-word result appears at the byte offset of the address
	// within its containing word.
	lane := addr % 4
	switch size {
	case 1:
		return (word >> (8 * lane)) & 0xFF, nil
	case 2:
		return (word >> (8 * lane)) & 0xFFFF, nil
	default:
		return word, nil
	}
}

// Close disconnects from the probe and releases the USB device.
func (p *DAPProbe) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.transport == nil {
		return nil
	}
	p.transport.WriteRead(p.proto.encodeDisconnect())
	err := p.transport.Close()
	p.transport = nil
	return err
}
