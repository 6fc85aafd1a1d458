package lsp

import "tagset/internal/ast"

// Semantic token type indexes. These must line up with the legend the
// server advertises in SemanticTokenTypes.
const (
	tokenTypeType uint32 = iota
	tokenTypeEnumMember
	tokenTypeProperty
	tokenTypeString
	tokenTypeComment
	tokenTypeMacro
)

// The legend advertised to clients; indexes above point into this slice.
var SemanticTokenTypes = []string{
	"type",
	"enumMember",
	"property",
	"string",
	"comment",
	"macro",
}

// No modifiers are reported for .tags files yet.
var SemanticTokenModifiers = []string{
	"declaration",
	"readonly",
}

// SemanticToken is one decoded entry before LSP delta encoding.
type SemanticToken struct {
	Line           uint32 // 0-based
	StartChar      uint32 // 0-based
	Length         uint32
	TokenType      uint32
	TokenModifiers uint32
}

// collectSemanticTokens walks a declaration in source order, which keeps
// the result sorted the way the LSP delta encoding requires.
func collectSemanticTokens(decl *ast.Decl) []SemanticToken {
	if decl == nil {
		return nil
	}

	var tokens []SemanticToken

	tokens = append(tokens, docTokens(decl.Doc)...)
	tokens = append(tokens, identToken(decl.Name, tokenTypeType))

	if decl.Field != nil {
		tokens = append(tokens, identToken(decl.Field.Name, tokenTypeProperty))
		for _, part := range decl.Field.Type.Parts {
			tokens = append(tokens, identToken(part, tokenTypeType))
		}
	}

	for _, v := range decl.Variants {
		tokens = append(tokens, docTokens(v.Doc)...)
		tokens = append(tokens, identToken(v.Name, tokenTypeEnumMember))
		for _, lit := range v.Literals() {
			tokens = append(tokens, spanToken(lit.Pos, lit.EndPos, tokenTypeString))
		}
		if v.Data != nil {
			tokens = append(tokens, spanToken(v.Data.Pos, v.Data.EndPos, tokenTypeMacro))
		}
	}

	return tokens
}

func identToken(ident ast.Ident, tokenType uint32) SemanticToken {
	return SemanticToken{
		Line:      uint32(ident.Pos.Line - 1),
		StartChar: uint32(ident.Pos.Column - 1),
		Length:    uint32(len(ident.Value)),
		TokenType: tokenType,
	}
}

// spanToken covers a node by its offsets. Multi-line spans get clamped to
// their first line, which is close enough for highlighting.
func spanToken(pos, end ast.Position, tokenType uint32) SemanticToken {
	length := end.Offset - pos.Offset
	if length <= 0 {
		length = 1
	}
	return SemanticToken{
		Line:      uint32(pos.Line - 1),
		StartChar: uint32(pos.Column - 1),
		Length:    uint32(length),
		TokenType: tokenType,
	}
}

// docTokens emits one comment token per captured doc line. Lines in a block
// are consecutive in the source, so each one sits on its own line below the
// block's start.
func docTokens(doc *ast.DocComment) []SemanticToken {
	if doc == nil {
		return nil
	}
	var tokens []SemanticToken
	for i, line := range doc.Lines {
		tokens = append(tokens, SemanticToken{
			Line:      uint32(doc.Pos.Line - 1 + i),
			StartChar: uint32(doc.Pos.Column - 1),
			Length:    uint32(len(line) + 3), // include the '///' marker
			TokenType: tokenTypeComment,
		})
	}
	return tokens
}

// EncodeSemanticTokens packs tokens into the LSP wire format, using the
// protocol's delta-line, delta-start compression.
func EncodeSemanticTokens(tokens []SemanticToken) []uint32 {
	var data []uint32
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, token.TokenType, token.TokenModifiers)

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}
