// SPDX-License-Identifier: Apache-2.0
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinimalDecl(t *testing.T) {
	source := `Bool =
    True "true"
    False "false"`

	decl, parseErrors, scanErrors := ParseSource("test.tags", source)
	assert.Empty(t, scanErrors, "Should have no scan errors")
	assert.Empty(t, parseErrors, "Should have no parse errors")
	require.NotNil(t, decl, "Declaration should be parsed")

	assert.Equal(t, "Bool", decl.Name.Value)
	assert.Nil(t, decl.Doc, "Should have no doc comment")
	assert.Nil(t, decl.Field, "Should have no data field")
	require.Len(t, decl.Variants, 2)

	assert.Equal(t, "True", decl.Variants[0].Name.Value)
	assert.Equal(t, "true", decl.Variants[0].Primary.Value)
	assert.Empty(t, decl.Variants[0].Alternates)
	assert.Nil(t, decl.Variants[0].Data)

	assert.Equal(t, "False", decl.Variants[1].Name.Value)
	assert.Equal(t, "false", decl.Variants[1].Primary.Value)
}

func TestParseFullDecl(t *testing.T) {
	source := `/// Binary operators.
/// Second doc line.
Operator { fixity: Fixity } =
    /// Equality.
    Eq "==" "eq"
    Add "+" "plus" { Left(6) }`

	decl, parseErrors, scanErrors := ParseSource("test.tags", source)
	assert.Empty(t, scanErrors, "Should have no scan errors")
	assert.Empty(t, parseErrors, "Should have no parse errors")
	require.NotNil(t, decl, "Declaration should be parsed")

	assert.Equal(t, "Operator", decl.Name.Value)
	require.NotNil(t, decl.Doc)
	assert.Equal(t, []string{" Binary operators.", " Second doc line."}, decl.Doc.Lines,
		"Doc text after the marker is kept verbatim")

	require.NotNil(t, decl.Field)
	assert.Equal(t, "fixity", decl.Field.Name.Value)
	assert.Equal(t, "Fixity", decl.Field.Type.String())

	require.Len(t, decl.Variants, 2)

	eq := decl.Variants[0]
	require.NotNil(t, eq.Doc)
	assert.Equal(t, []string{" Equality."}, eq.Doc.Lines)
	assert.Equal(t, "==", eq.Primary.Value)
	require.Len(t, eq.Alternates, 1)
	assert.Equal(t, "eq", eq.Alternates[0].Value)
	assert.Nil(t, eq.Data)

	add := decl.Variants[1]
	assert.Equal(t, "+", add.Primary.Value)
	require.NotNil(t, add.Data)
	assert.Equal(t, "Left(6)", add.Data.Text, "Data expression is the raw text between braces, trimmed")
}

func TestParseQualifiedFieldType(t *testing.T) {
	source := `Operator { fixity: ops.Fixity } =
    Eq "=="`

	decl, parseErrors, _ := ParseSource("test.tags", source)
	assert.Empty(t, parseErrors, "Should have no parse errors")
	require.NotNil(t, decl)
	require.NotNil(t, decl.Field)
	assert.Equal(t, "ops.Fixity", decl.Field.Type.String())
}

func TestParseNestedDataExpr(t *testing.T) {
	source := `Color { rgb: RGB } =
    Red "red" { RGB{R: 255} }`

	decl, parseErrors, _ := ParseSource("test.tags", source)
	assert.Empty(t, parseErrors, "Should have no parse errors")
	require.NotNil(t, decl)
	require.Len(t, decl.Variants, 1)
	require.NotNil(t, decl.Variants[0].Data)
	assert.Equal(t, "RGB{R: 255}", decl.Variants[0].Data.Text,
		"Nested braces inside a data expression stay balanced")
}

func TestParsePlainCommentsIgnored(t *testing.T) {
	source := `// license header, not a doc comment
Bool =
    // implementation note
    True "true"`

	decl, parseErrors, _ := ParseSource("test.tags", source)
	assert.Empty(t, parseErrors, "Should have no parse errors")
	require.NotNil(t, decl)
	assert.Nil(t, decl.Doc, "Plain comments never attach as docs")
	require.Len(t, decl.Variants, 1)
	assert.Nil(t, decl.Variants[0].Doc)
}

func TestParseMissingPrimaryLiteral(t *testing.T) {
	source := `Color =
    Red
    Green "green"
    Blue "blue"`

	decl, parseErrors, _ := ParseSource("test.tags", source)
	require.NotEmpty(t, parseErrors, "A variant without a string literal is an error")
	assert.Contains(t, parseErrors[0].Message, "needs a primary string literal")
	assert.Contains(t, parseErrors[0].Message, "Red")

	// Recovery resumes at the next plausible variant start.
	require.NotNil(t, decl)
	require.Len(t, decl.Variants, 1)
	assert.Equal(t, "Blue", decl.Variants[0].Name.Value)
}

func TestParseMissingEquals(t *testing.T) {
	source := `Bool
    True "true"`

	_, parseErrors, _ := ParseSource("test.tags", source)
	require.NotEmpty(t, parseErrors)
	assert.Equal(t, "expected '=' after declaration header", parseErrors[0].Message)
}

func TestParseUnterminatedDataExpr(t *testing.T) {
	source := `Operator { fixity: Fixity } =
    Add "+" { Left(6)`

	_, parseErrors, _ := ParseSource("test.tags", source)
	require.NotEmpty(t, parseErrors)
	assert.Equal(t, "unterminated data expression: missing '}'", parseErrors[0].Message)
	assert.Equal(t, 2, parseErrors[0].Position.Line, "Error points at the opening brace")
}

func TestParseEmptyDeclaration(t *testing.T) {
	source := `Bool =`

	decl, parseErrors, _ := ParseSource("test.tags", source)
	assert.Nil(t, decl, "A declaration without variants is rejected")
	require.NotEmpty(t, parseErrors)
	assert.Equal(t, "declaration must have at least one variant", parseErrors[0].Message)
}

func TestParsePositions(t *testing.T) {
	source := `Operator =
    Eq "=="`

	decl, parseErrors, _ := ParseSource("test.tags", source)
	assert.Empty(t, parseErrors)
	require.NotNil(t, decl)

	assert.Equal(t, "test.tags", decl.Name.Pos.Filename)
	assert.Equal(t, 1, decl.Name.Pos.Line)
	assert.Equal(t, 1, decl.Name.Pos.Column)

	eq := decl.Variants[0]
	assert.Equal(t, 2, eq.Name.Pos.Line)
	assert.Equal(t, 5, eq.Name.Pos.Column)
	assert.Equal(t, 8, eq.Primary.Pos.Column)
	assert.Equal(t, 12, eq.Primary.EndPos.Column, "End position covers the closing quote")
}
