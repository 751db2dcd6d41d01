package target

import (
	"fmt"
	"time"

	"github.com/google/gousb"
)

const (
	// Default packet size for CMSIS-DAP v1/v2
	defaultPacketSize = 64
	defaultTimeout    = 5 * time.Second
)

// usbTransport handles packet-level USB communication with a CMSIS-DAP probe.
type usbTransport struct {
	ctx  *gousb.Context
	dev  *gousb.Device
	intf *gousb.Interface

	epOut *gousb.OutEndpoint
	epIn  *gousb.InEndpoint

	packetSize int
	timeout    time.Duration
}

// openUSBTransport opens the probe with the given VID/PID and claims its
// vendor interface.
func openUSBTransport(vid, pid uint16) (*usbTransport, error) {
	ctx := gousb.NewContext()

	dev, err := ctx.OpenDeviceWithVIDPID(gousb.ID(vid), gousb.ID(pid))
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("target: USB open: %w", err)
	}
	if dev == nil {
		ctx.Close()
		return nil, fmt.Errorf("target: probe not found (VID:0x%04X PID:0x%04X)", vid, pid)
	}

	// Important on Linux; not supported everywhere, so failure is not fatal.
	_ = dev.SetAutoDetach(true)

	t := &usbTransport{
		ctx:        ctx,
		dev:        dev,
		packetSize: defaultPacketSize,
		timeout:    defaultTimeout,
	}

	if err := t.claimInterface(); err != nil {
		dev.Close()
		ctx.Close()
		return nil, err
	}
	return t, nil
}

// claimInterface finds and claims the CMSIS-DAP vendor interface.
func (t *usbTransport) claimInterface() error {
	cfg, err := t.dev.Config(1)
	if err != nil {
		return fmt.Errorf("target: USB config: %w", err)
	}

	// CMSIS-DAP uses the vendor-specific class; fall back to interface 0.
	vendorIntfNum := -1
	for _, intf := range cfg.Desc.Interfaces {
		if len(intf.AltSettings) > 0 && intf.AltSettings[0].Class == gousb.ClassVendorSpec {
			vendorIntfNum = intf.Number
			break
		}
	}
	if vendorIntfNum == -1 {
		vendorIntfNum = 0
	}

	intf, err := cfg.Interface(vendorIntfNum, 0)
	if err != nil {
		return fmt.Errorf("target: claim interface %d: %w", vendorIntfNum, err)
	}
	t.intf = intf

	if err := t.findEndpoints(); err != nil {
		intf.Close()
		return err
	}
	return nil
}

// findEndpoints discovers the bulk IN and OUT endpoints.
func (t *usbTransport) findEndpoints() error {
	setting := t.intf.Setting

	var outAddr, inAddr int
	for _, ep := range setting.Endpoints {
		if ep.TransferType != gousb.TransferTypeBulk {
			continue
		}
		switch ep.Direction {
		case gousb.EndpointDirectionOut:
			if outAddr == 0 {
				outAddr = ep.Number
			}
		case gousb.EndpointDirectionIn:
			if inAddr == 0 {
				inAddr = ep.Number
				t.packetSize = ep.MaxPacketSize
			}
		}
	}
	if outAddr == 0 {
		return fmt.Errorf("target: bulk OUT endpoint not found")
	}
	if inAddr == 0 {
		return fmt.Errorf("target: bulk IN endpoint not found")
	}

	epOut, err := t.intf.OutEndpoint(outAddr)
	if err != nil {
		return fmt.Errorf("target: open OUT endpoint: %w", err)
	}
	t.epOut = epOut

	epIn, err := t.intf.InEndpoint(inAddr)
	if err != nil {
		return fmt.Errorf("target: open IN endpoint: %w", err)
	}
	t.epIn = epIn

	return nil
}

// WriteRead performs one command/response transaction. CMSIS-DAP packets are
// fixed size, so commands are padded on write.
func (t *usbTransport) WriteRead(cmd []byte) ([]byte, error) {
	packet := make([]byte, t.packetSize)
	copy(packet, cmd)
	if _, err := t.epOut.Write(packet); err != nil {
		return nil, fmt.Errorf("target: USB write: %w", err)
	}

	resp := make([]byte, t.packetSize)
	n, err := t.epIn.Read(resp)
	if err != nil {
		return nil, fmt.Errorf("target: USB read: %w", err)
	}
	return resp[:n], nil
}

// Close releases USB resources.
func (t *usbTransport) Close() error {
	if t.intf != nil {
		t.intf.Close()
		t.intf = nil
	}
	if t.dev != nil {
		t.dev.Close()
		t.dev = nil
	}
	if t.ctx != nil {
		t.ctx.Close()
		t.ctx = nil
	}
	return nil
}
