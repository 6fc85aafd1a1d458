package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var TagsLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments (doc comments must come first, '///' also matches '//')
		{Name: "DocComment", Pattern: `///[^\n]*`},
		{Name: "Comment", Pattern: `//[^\n]*`},

		// String literals with escapes
		{Name: "String", Pattern: `"(\\.|[^"\\])*"`},

		// Identifiers
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},

		// Integer literals (seen inside data expressions)
		{Name: "Number", Pattern: `[0-9]+`},

		// Punctuation, one token per character
		{Name: "Punct", Pattern: `[{}()\[\]:,=.+*/-]`},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	},
})
