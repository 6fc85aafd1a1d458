package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tagset/internal/parser"
)

func TestCollectSemanticTokens(t *testing.T) {
	source := `/// Binary operators.
Operator { fixity: Fixity } =
    Eq "==" "eq"
    Add "+" { Left(6) }`

	decl, parseErrors, scanErrors := parser.ParseSource("test.tags", source)
	require.Empty(t, scanErrors)
	require.Empty(t, parseErrors)

	tokens := collectSemanticTokens(decl)
	require.NotEmpty(t, tokens)

	// Source order: doc, type name, field name, field type, then variants.
	assert.Equal(t, tokenTypeComment, tokens[0].TokenType)
	assert.Equal(t, tokenTypeType, tokens[1].TokenType)
	assert.Equal(t, uint32(1), tokens[1].Line)
	assert.Equal(t, uint32(0), tokens[1].StartChar)
	assert.Equal(t, uint32(len("Operator")), tokens[1].Length)

	assert.Equal(t, tokenTypeProperty, tokens[2].TokenType)
	assert.Equal(t, tokenTypeType, tokens[3].TokenType)

	assert.Equal(t, tokenTypeEnumMember, tokens[4].TokenType)
	assert.Equal(t, tokenTypeString, tokens[5].TokenType)
	assert.Equal(t, tokenTypeString, tokens[6].TokenType)

	last := tokens[len(tokens)-1]
	assert.Equal(t, tokenTypeMacro, last.TokenType, "data expression highlights as one span")

	// Sorted by position, as the wire encoding requires.
	for i := 1; i < len(tokens); i++ {
		prev, cur := tokens[i-1], tokens[i]
		ordered := cur.Line > prev.Line || (cur.Line == prev.Line && cur.StartChar >= prev.StartChar)
		assert.True(t, ordered, "token %d out of order", i)
	}
}

func TestCollectSemanticTokensNilDecl(t *testing.T) {
	assert.Nil(t, collectSemanticTokens(nil))
}

func TestEncodeSemanticTokens(t *testing.T) {
	tokens := []SemanticToken{
		{Line: 0, StartChar: 0, Length: 8, TokenType: tokenTypeType},
		{Line: 0, StartChar: 10, Length: 2, TokenType: tokenTypeEnumMember},
		{Line: 2, StartChar: 4, Length: 3, TokenType: tokenTypeString},
	}

	data := EncodeSemanticTokens(tokens)
	want := []uint32{
		0, 0, 8, tokenTypeType, 0,
		0, 10, 2, tokenTypeEnumMember, 0, // same line: start is a delta
		2, 4, 3, tokenTypeString, 0, // new line: start is absolute
	}
	assert.Equal(t, want, data)
}

func TestLegendMatchesTokenConstants(t *testing.T) {
	assert.Equal(t, "type", SemanticTokenTypes[tokenTypeType])
	assert.Equal(t, "enumMember", SemanticTokenTypes[tokenTypeEnumMember])
	assert.Equal(t, "property", SemanticTokenTypes[tokenTypeProperty])
	assert.Equal(t, "string", SemanticTokenTypes[tokenTypeString])
	assert.Equal(t, "comment", SemanticTokenTypes[tokenTypeComment])
	assert.Equal(t, "macro", SemanticTokenTypes[tokenTypeMacro])
}
