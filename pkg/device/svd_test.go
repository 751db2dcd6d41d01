package device

import (
	"testing"
)

const sampleSVD = `<?xml version="1.0" encoding="utf-8"?>
<device>
  <name>TESTCHIP</name>
  <description>Test device</description>
  <size>32</size>
  <peripherals>
    <peripheral>
      <name>UART0</name>
      <baseAddress>0x40002000</baseAddress>
      <registers>
        <register>
          <name>INTEN</name>
          <description>Interrupt enable</description>
          <addressOffset>0x300</addressOffset>
          <fields>
            <field>
              <name>ENDRX</name>
              <description>RX done</description>
              <bitOffset>4</bitOffset>
              <bitWidth>1</bitWidth>
              <enumeratedValues>
                <enumeratedValue>
                  <name>Disabled</name>
                  <value>0</value>
                  <isDefault>true</isDefault>
                </enumeratedValue>
                <enumeratedValue>
                  <name>Enabled</name>
                  <value>0x1</value>
                </enumeratedValue>
              </enumeratedValues>
            </field>
            <field>
              <name>RXDRDY</name>
              <lsb>0</lsb>
              <msb>0</msb>
            </field>
            <field>
              <name>AMOUNT</name>
              <bitRange>[15:8]</bitRange>
            </field>
          </fields>
        </register>
        <register>
          <name>STATUS</name>
          <addressOffset>0x460</addressOffset>
          <size>16</size>
        </register>
      </registers>
    </peripheral>
    <peripheral derivedFrom="UART0">
      <name>UART1</name>
      <baseAddress>0x40003000</baseAddress>
    </peripheral>
  </peripherals>
</device>
`

func TestParseSVD(t *testing.T) {
	dev, err := ParseSVD([]byte(sampleSVD))
	if err != nil {
		t.Fatalf("ParseSVD: %v", err)
	}
	if dev.Name != "TESTCHIP" {
		t.Fatalf("name = %q", dev.Name)
	}
	if len(dev.Peripherals) != 2 {
		t.Fatalf("peripherals = %d, want 2", len(dev.Peripherals))
	}

	uart0, err := dev.Peripheral("UART0")
	if err != nil {
		t.Fatalf("Peripheral: %v", err)
	}
	inten, err := uart0.Register("INTEN")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if inten.Addr != 0x40002300 || inten.Size != 4 {
		t.Fatalf("INTEN = addr 0x%08x size %d", inten.Addr, inten.Size)
	}
	if len(inten.Fields) != 3 {
		t.Fatalf("INTEN fields = %d", len(inten.Fields))
	}

	endrx := inten.Fields[0]
	if endrx.Range.Low != 4 || endrx.Range.High != 4 {
		t.Fatalf("ENDRX range = %+v", endrx.Range)
	}
	if len(endrx.Enums) != 2 || !endrx.Enums[0].Default || endrx.Enums[1].Value != 1 {
		t.Fatalf("ENDRX enums = %+v", endrx.Enums)
	}

	// All three bit-span spellings land on the same representation.
	amount := inten.Fields[2]
	if amount.Range.Low != 8 || amount.Range.High != 15 {
		t.Fatalf("AMOUNT range = %+v", amount.Range)
	}

	status, err := uart0.Register("STATUS")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if status.Size != 2 {
		t.Fatalf("STATUS size = %d, want 2 (16 bits)", status.Size)
	}

	// derivedFrom peripherals inherit registers at their own base.
	uart1, err := dev.Peripheral("UART1")
	if err != nil {
		t.Fatalf("Peripheral: %v", err)
	}
	inten1, err := uart1.Register("INTEN")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if inten1.Addr != 0x40003300 {
		t.Fatalf("derived INTEN addr = 0x%08x", inten1.Addr)
	}
}

func TestParseSVDDerivedChain(t *testing.T) {
	const src = `<device><name>X</name><peripherals>
		<peripheral>
			<name>UART0</name><baseAddress>0x40002000</baseAddress>
			<registers><register><name>INTEN</name><addressOffset>0x300</addressOffset></register></registers>
		</peripheral>
		<peripheral derivedFrom="UART0"><name>UART1</name><baseAddress>0x40003000</baseAddress></peripheral>
		<peripheral derivedFrom="UART1"><name>UART2</name><baseAddress>0x40004000</baseAddress></peripheral>
	</peripherals></device>`

	dev, err := ParseSVD([]byte(src))
	if err != nil {
		t.Fatalf("ParseSVD: %v", err)
	}
	uart2, err := dev.Peripheral("UART2")
	if err != nil {
		t.Fatalf("Peripheral: %v", err)
	}
	inten, err := uart2.Register("INTEN")
	if err != nil {
		t.Fatalf("chained derivedFrom lost registers: %v", err)
	}
	if inten.Addr != 0x40004300 {
		t.Fatalf("chained INTEN addr = 0x%08x", inten.Addr)
	}

	const cyclic = `<device><name>X</name><peripherals>
		<peripheral derivedFrom="B"><name>A</name><baseAddress>0x1000</baseAddress></peripheral>
		<peripheral derivedFrom="A"><name>B</name><baseAddress>0x2000</baseAddress></peripheral>
	</peripherals></device>`
	if _, err := ParseSVD([]byte(cyclic)); err == nil {
		t.Error("derivedFrom cycle: expected error")
	}
}

func TestParseSVDErrors(t *testing.T) {
	bad := []string{
		`<device></device>`, // no name
		`<device><name>X</name><peripherals><peripheral>
			<name>P</name><baseAddress>0x1000</baseAddress>
			<registers><register><name>R</name><addressOffset>0</addressOffset>
			<fields><field><name>F</name></field></fields>
			</register></registers>
		</peripheral></peripherals></device>`, // field without bit span
		`<device><name>X</name><peripherals>
			<peripheral derivedFrom="GHOST"><name>P</name><baseAddress>0x1000</baseAddress></peripheral>
		</peripherals></device>`, // unknown derivedFrom
	}
	for i, src := range bad {
		if _, err := ParseSVD([]byte(src)); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}

func TestParseSVDNum(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"42", 42},
		{"0x40002000", 0x40002000},
		{"#0110", 6},
		{"#01x0", 4}, // don't-care bits read as zero
	}
	for _, tt := range tests {
		got, err := parseSVDNum(tt.in)
		if err != nil {
			t.Errorf("parseSVDNum(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseSVDNum(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
