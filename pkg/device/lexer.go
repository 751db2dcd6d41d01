package device

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// regmapLexer defines the token structure of the compact register-map
// descriptor format.
var regmapLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},

	// String literals for descriptions and labels
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},

	// Numbers: hex or decimal
	{Name: "Number", Pattern: `0[xX][0-9a-fA-F]+|\d+`},

	// Identifiers (keywords are matched literally by the grammar)
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},

	// Punctuation
	{Name: "Punct", Pattern: `[@{}\[\]:=;()]`},
})
