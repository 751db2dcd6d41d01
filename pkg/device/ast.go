package device

// regmapFile is the parse tree of one descriptor file. A file may declare
// several devices.
//
//	device NRF52 {
//	  peripheral UARTE0 @ 0x40002000 {
//	    register INTEN @ 0x300 size 4 "Interrupt enable" {
//	      field ENDRX [4] "RX done" { 0 = Disabled (default); 1 = Enabled }
//	      field RXDRDY [0:0]
//	    }
//	  }
//	}
type regmapFile struct {
	Devices []*regmapDevice `parser:"@@*"`
}

type regmapDevice struct {
	Name        string          `parser:"'device' @Ident"`
	Description string          `parser:"@String?"`
	Peripherals []*regmapPeriph `parser:"'{' @@* '}'"`
}

type regmapPeriph struct {
	Name      string            `parser:"'peripheral' @Ident"`
	Base      string            `parser:"'@' @Number"`
	Registers []*regmapRegister `parser:"'{' @@* '}'"`
}

type regmapRegister struct {
	Name        string         `parser:"'register' @Ident"`
	Offset      string         `parser:"'@' @Number"`
	Size        string         `parser:"('size' @Number)?"`
	Description string         `parser:"@String?"`
	Fields      []*regmapField `parser:"('{' @@* '}')?"`
}

type regmapField struct {
	Name        string        `parser:"'field' @Ident"`
	High        string        `parser:"'[' @Number"`
	Low         *string       `parser:"(':' @Number)? ']'"`
	Description string        `parser:"@String?"`
	Enums       []*regmapEnum `parser:"('{' @@ (';' @@)* ';'? '}')?"`
}

type regmapEnum struct {
	Value       string `parser:"@Number '='"`
	Label       string `parser:"@(String | Ident)"`
	Description string `parser:"@String?"`
	Default     bool   `parser:"( '(' @'default' ')' )?"`
}
