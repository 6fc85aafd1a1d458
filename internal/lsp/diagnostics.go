package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"tagset/internal/diag"
	"tagset/internal/parser"
)

// ConvertScanErrors transforms scanner errors into LSP diagnostics for IDE
// display: invalid characters, unterminated strings, bad escapes.
func ConvertScanErrors(scanErrors []parser.ScanError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, scanErr := range scanErrors {
		length := scanErr.Length
		if length <= 0 {
			length = 1
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    makeRange(scanErr.Position.Line, scanErr.Position.Column, length),
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("tagset-scanner"),
			Message:  scanErr.Message,
		})
	}

	return diagnostics
}

// ConvertParseErrors transforms parser errors into LSP diagnostics: missing
// primary literals, unterminated data blocks, malformed headers.
func ConvertParseErrors(parseErrors []parser.ParseError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, parseErr := range parseErrors {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    makeRange(parseErr.Position.Line, parseErr.Position.Column, 1),
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("tagset-parser"),
			Message:  parseErr.Message,
		})
	}

	return diagnostics
}

// ConvertDiagnostics transforms model-validation diagnostics: duplicate
// variant names, literal collisions, data expressions without a field.
func ConvertDiagnostics(diags []diag.Diagnostic) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, d := range diags {
		severity := protocol.DiagnosticSeverityError
		if d.Level == diag.Warning {
			severity = protocol.DiagnosticSeverityWarning
		}
		code := d.Code
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    makeRange(d.Position.Line, d.Position.Column, d.Length),
			Severity: ptrSeverity(severity),
			Source:   ptrString("tagset"),
			Code:     &protocol.IntegerOrString{Value: code},
			Message:  d.Message,
		})
	}

	return diagnostics
}

// makeRange builds a single-line LSP range from 1-based source coordinates.
func makeRange(line, column, length int) protocol.Range {
	if length <= 0 {
		length = 1
	}
	return protocol.Range{
		Start: protocol.Position{
			Line:      uint32(line - 1),
			Character: uint32(column - 1),
		},
		End: protocol.Position{
			Line:      uint32(line - 1),
			Character: uint32(column - 1 + length),
		},
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
