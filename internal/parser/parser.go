package parser

import (
	"fmt"
	"strings"

	"tagset/internal/ast"
)

type Parser struct {
	filename string
	source   string
	tokens   []Token
	current  int
	errors   []ParseError
}

type ParseError struct {
	Message  string
	Position Position
}

// NewParser prepares a parser over a scanned token stream. Plain comments
// carry no meaning in a declaration, so they are dropped up front; doc
// comments stay because they attach to the following name.
func NewParser(filename, source string, tokens []Token) *Parser {
	kept := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type == COMMENT {
			continue
		}
		kept = append(kept, tok)
	}
	return &Parser{filename: filename, source: source, tokens: kept}
}

// ParseDecl parses one complete tag-set declaration:
//
//	[TypeDoc] Name ['{' FieldName ':' TypeRef '}'] '=' VariantDecl+
func (p *Parser) ParseDecl() *ast.Decl {
	doc := p.parseDocComment()

	name, ok := p.consumeIdent("expected declaration name")
	if !ok {
		return nil
	}

	decl := &ast.Decl{
		Pos:  name.Pos,
		Doc:  doc,
		Name: name,
	}
	if doc != nil {
		decl.Pos = doc.Pos
	}

	if p.check(LEFT_BRACE) {
		decl.Field = p.parseDataField()
	}

	p.consume(EQUAL, "expected '=' after declaration header")

	for !p.isAtEnd() {
		variant := p.parseVariant()
		if variant == nil {
			p.synchronize()
			continue
		}
		decl.Variants = append(decl.Variants, variant)
	}

	if len(decl.Variants) == 0 {
		p.errorAtCurrent("declaration must have at least one variant")
		return nil
	}

	decl.EndPos = decl.Variants[len(decl.Variants)-1].EndPos
	return decl
}

// parseDocComment collects a run of consecutive '///' lines. The text after
// the marker is kept verbatim; it is forwarded, never interpreted.
func (p *Parser) parseDocComment() *ast.DocComment {
	if !p.check(DOC_COMMENT) {
		return nil
	}

	doc := &ast.DocComment{Pos: p.makePos(p.peek())}
	for p.check(DOC_COMMENT) {
		tok := p.advance()
		doc.Lines = append(doc.Lines, strings.TrimPrefix(tok.Lexeme, "///"))
		doc.EndPos = p.makeEndPos(tok)
	}
	return doc
}

// parseDataField parses the optional '{ name: Type }' between the
// declaration name and '='.
func (p *Parser) parseDataField() *ast.DataField {
	open := p.consume(LEFT_BRACE, "expected '{' to start data field")

	name, ok := p.consumeIdent("expected data field name")
	if !ok {
		return nil
	}
	p.consume(COLON, "expected ':' after data field name")

	typ, ok := p.parseTypeRef()
	if !ok {
		return nil
	}

	end := p.consume(RIGHT_BRACE, "expected '}' to close data field")
	return &ast.DataField{
		Pos:    p.makePos(open),
		EndPos: p.makeEndPos(end),
		Name:   name,
		Type:   typ,
	}
}

// parseTypeRef parses a possibly-qualified type name like Fixity or token.Fixity
func (p *Parser) parseTypeRef() (ast.TypeRef, bool) {
	first, ok := p.consumeIdent("expected data type name")
	if !ok {
		return ast.TypeRef{}, false
	}

	ref := ast.TypeRef{Pos: first.Pos, EndPos: first.EndPos, Parts: []ast.Ident{first}}
	for p.match(DOT) {
		part, ok := p.consumeIdent("expected identifier after '.' in type name")
		if !ok {
			return ref, false
		}
		ref.Parts = append(ref.Parts, part)
		ref.EndPos = part.EndPos
	}
	return ref, true
}

// parseVariant parses '[VariantDoc] Name StringLiteral+ [{ Expr }]'.
// The first literal is the canonical spelling; everything after it up to
// the next variant name or data block is an alternate.
func (p *Parser) parseVariant() *ast.Variant {
	doc := p.parseDocComment()

	name, ok := p.consumeIdent("expected variant name")
	if !ok {
		return nil
	}

	variant := &ast.Variant{Pos: name.Pos, Doc: doc, Name: name}
	if doc != nil {
		variant.Pos = doc.Pos
	}

	primary := p.consume(STRING, fmt.Sprintf("variant '%s' needs a primary string literal", name.Value))
	if primary.Type == ILLEGAL {
		return nil
	}
	variant.Primary = p.makeStringLit(primary)
	variant.EndPos = variant.Primary.EndPos

	for p.check(STRING) {
		alt := p.makeStringLit(p.advance())
		variant.Alternates = append(variant.Alternates, alt)
		variant.EndPos = alt.EndPos
	}

	if p.check(LEFT_BRACE) {
		variant.Data = p.parseDataExpr()
		if variant.Data == nil {
			return nil
		}
		variant.EndPos = variant.Data.EndPos
	}

	return variant
}

// parseDataExpr captures the raw text of a balanced-brace data block.
// The content is opaque to the generator: it is sliced straight out of the
// source and forwarded without any checking.
func (p *Parser) parseDataExpr() *ast.DataExpr {
	open := p.consume(LEFT_BRACE, "expected '{' to start data expression")

	depth := 1
	var closing Token
	for {
		if p.isAtEnd() {
			p.errors = append(p.errors, ParseError{
				Message:  "unterminated data expression: missing '}'",
				Position: open.Position,
			})
			return nil
		}
		tok := p.advance()
		switch tok.Type {
		case LEFT_BRACE:
			depth++
		case RIGHT_BRACE:
			depth--
		}
		if depth == 0 {
			closing = tok
			break
		}
	}

	raw := p.source[open.Position.Offset+1 : closing.Position.Offset]
	return &ast.DataExpr{
		Pos:    p.makePos(open),
		EndPos: p.makeEndPos(closing),
		Text:   strings.TrimSpace(raw),
	}
}
