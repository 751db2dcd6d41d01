package target

import (
	"encoding/binary"
	"fmt"
)

// CMSIS-DAP command IDs used by the probe.
const (
	cmdInfo              = 0x00
	cmdConnect           = 0x02
	cmdDisconnect        = 0x03
	cmdTransferConfigure = 0x04
	cmdTransfer          = 0x05
	cmdSWJClock          = 0x11
	cmdSWJSequence       = 0x12
)

// DAP_Info IDs.
const (
	infoVendorID    = 0x01
	infoProductID   = 0x02
	infoSerialNum   = 0x03
	infoFirmwareVer = 0x04
)

// Connection ports.
const (
	portSWD = 1
)

// Status codes.
const (
	statusOK = 0x00
)

// DAP_Transfer request bits.
const (
	xferAPnDP = 0x01 // 1 = access port, 0 = debug port
	xferRnW   = 0x02 // 1 = read
	xferA2    = 0x04
	xferA3    = 0x08
)

// DAP_Transfer ACK values (low 3 bits of the response byte).
const (
	ackOK    = 0x01
	ackWait  = 0x02
	ackFault = 0x04
)

// dapProtocol encodes and decodes CMSIS-DAP command packets.
type dapProtocol struct{}

func (dapProtocol) encodeInfo(infoID byte) []byte {
	return []byte{cmdInfo, infoID}
}

func (dapProtocol) decodeInfo(resp []byte) (string, error) {
	if len(resp) < 2 {
		return "", fmt.Errorf("target: info response too short")
	}
	if resp[0] != cmdInfo {
		return "", fmt.Errorf("target: invalid command ID: 0x%02X", resp[0])
	}
	length := int(resp[1])
	if len(resp) < 2+length {
		return "", fmt.Errorf("target: incomplete info string")
	}
	s := resp[2 : 2+length]
	// Probes commonly NUL-terminate the string within the counted bytes.
	if length > 0 && s[length-1] == 0 {
		s = s[:length-1]
	}
	return string(s), nil
}

func (dapProtocol) encodeConnect(port byte) []byte {
	return []byte{cmdConnect, port}
}

func (dapProtocol) decodeConnect(resp []byte) (byte, error) {
	if len(resp) < 2 {
		return 0, fmt.Errorf("target: connect response too short")
	}
	if resp[0] != cmdConnect {
		return 0, fmt.Errorf("target: invalid command ID")
	}
	if resp[1] == 0 {
		return 0, fmt.Errorf("target: connection failed")
	}
	return resp[1], nil
}

func (dapProtocol) encodeDisconnect() []byte {
	return []byte{cmdDisconnect}
}

func (dapProtocol) encodeSetClock(hz uint32) []byte {
	cmd := make([]byte, 5)
	cmd[0] = cmdSWJClock
	binary.LittleEndian.PutUint32(cmd[1:], hz)
	return cmd
}

func (dapProtocol) decodeStatus(cmdID byte, resp []byte) error {
	if len(resp) < 2 {
		return fmt.Errorf("target: response too short")
	}
	if resp[0] != cmdID {
		return fmt.Errorf("target: invalid command ID: 0x%02X", resp[0])
	}
	if resp[1] != statusOK {
		return fmt.Errorf("target: command 0x%02X failed", cmdID)
	}
	return nil
}

// encodeSWJSequence builds a DAP_SWJ_Sequence command clocking out bits
// LSB-first from data.
func (dapProtocol) encodeSWJSequence(bits int, data []byte) []byte {
	cmd := make([]byte, 2+len(data))
	cmd[0] = cmdSWJSequence
	cmd[1] = byte(bits)
	copy(cmd[2:], data)
	return cmd
}

func (dapProtocol) encodeTransferConfigure(idleCycles byte, waitRetry, matchRetry uint16) []byte {
	cmd := make([]byte, 6)
	cmd[0] = cmdTransferConfigure
	cmd[1] = idleCycles
	binary.LittleEndian.PutUint16(cmd[2:], waitRetry)
	binary.LittleEndian.PutUint16(cmd[4:], matchRetry)
	return cmd
}

// transferReq is one DAP_Transfer request: a register access on the debug or
// access port, optionally carrying write data.
type transferReq struct {
	req  byte
	data uint32 // write data; unused for reads
}

func dpRead(addr byte) transferReq { return transferReq{req: xferRnW | regAddrBits(addr)} }
func apRead(addr byte) transferReq { return transferReq{req: xferAPnDP | xferRnW | regAddrBits(addr)} }
func dpWrite(addr byte, v uint32) transferReq {
	return transferReq{req: regAddrBits(addr), data: v}
}
func apWrite(addr byte, v uint32) transferReq {
	return transferReq{req: xferAPnDP | regAddrBits(addr), data: v}
}

func regAddrBits(addr byte) byte {
	var b byte
	if addr&0x4 != 0 {
		b |= xferA2
	}
	if addr&0x8 != 0 {
		b |= xferA3
	}
	return b
}

func (dapProtocol) encodeTransfer(reqs []transferReq) []byte {
	size := 3
	for _, r := range reqs {
		size++
		if r.req&xferRnW == 0 {
			size += 4
		}
	}
	cmd := make([]byte, size)
	cmd[0] = cmdTransfer
	cmd[1] = 0 // DAP index (JTAG chains only; ignored for SWD)
	cmd[2] = byte(len(reqs))

	off := 3
	for _, r := range reqs {
		cmd[off] = r.req
		off++
		if r.req&xferRnW == 0 {
			binary.LittleEndian.PutUint32(cmd[off:], r.data)
			off += 4
		}
	}
	return cmd
}

// decodeTransfer parses a DAP_Transfer response and returns the read data
// words in request order.
func (dapProtocol) decodeTransfer(resp []byte, reqs []transferReq) ([]uint32, error) {
	if len(resp) < 3 {
		return nil, fmt.Errorf("target: transfer response too short")
	}
	if resp[0] != cmdTransfer {
		return nil, fmt.Errorf("target: invalid command ID: 0x%02X", resp[0])
	}
	count := int(resp[1])
	ack := resp[2] & 0x07
	if ack != ackOK {
		switch ack {
		case ackWait:
			return nil, fmt.Errorf("target: transfer %d/%d: WAIT", count, len(reqs))
		case ackFault:
			return nil, fmt.Errorf("target: transfer %d/%d: FAULT", count, len(reqs))
		default:
			return nil, fmt.Errorf("target: transfer %d/%d: no response (ack 0x%X)", count, len(reqs), ack)
		}
	}
	if count != len(reqs) {
		return nil, fmt.Errorf("target: transfer executed %d of %d requests", count, len(reqs))
	}

	var out []uint32
	off := 3
	for _, r := range reqs {
		if r.req&xferRnW == 0 {
			continue
		}
		if off+4 > len(resp) {
			return nil, fmt.Errorf("target: incomplete transfer data")
		}
		out = append(out, binary.LittleEndian.Uint32(resp[off:]))
		off += 4
	}
	return out, nil
}
