package parser

import "tagset/internal/ast"

func ParseSource(path string, source string) (*ast.Decl, []ParseError, []ScanError) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()

	parser := NewParser(path, source, tokens)
	decl := parser.ParseDecl()

	return decl, parser.errors, scanner.errors
}
