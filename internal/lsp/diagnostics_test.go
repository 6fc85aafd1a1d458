package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"tagset/internal/ast"
	"tagset/internal/diag"
	"tagset/internal/parser"
)

func TestConvertScanErrors(t *testing.T) {
	scanErrors := []parser.ScanError{
		{
			Message:  "Unterminated string.",
			Position: parser.Position{Line: 3, Column: 5, Offset: 20},
			Length:   4,
		},
	}

	diagnostics := ConvertScanErrors(scanErrors)
	require.Len(t, diagnostics, 1)

	d := diagnostics[0]
	assert.Equal(t, "Unterminated string.", d.Message)
	assert.Equal(t, "tagset-scanner", *d.Source)
	assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
	assert.Equal(t, uint32(2), d.Range.Start.Line, "LSP lines are 0-based")
	assert.Equal(t, uint32(4), d.Range.Start.Character)
	assert.Equal(t, uint32(8), d.Range.End.Character)
}

func TestConvertParseErrors(t *testing.T) {
	parseErrors := []parser.ParseError{
		{
			Message:  "expected '=' after declaration header",
			Position: parser.Position{Line: 1, Column: 9},
		},
	}

	diagnostics := ConvertParseErrors(parseErrors)
	require.Len(t, diagnostics, 1)
	assert.Equal(t, "tagset-parser", *diagnostics[0].Source)
	assert.Equal(t, uint32(0), diagnostics[0].Range.Start.Line)
	assert.Equal(t, uint32(8), diagnostics[0].Range.Start.Character)
}

func TestConvertDiagnostics(t *testing.T) {
	diags := []diag.Diagnostic{
		diag.New(diag.ErrDuplicateVariant, "variant 'Red' is declared twice",
			ast.Position{Line: 3, Column: 5}).
			WithLength(3).
			Build(),
	}

	diagnostics := ConvertDiagnostics(diags)
	require.Len(t, diagnostics, 1)

	d := diagnostics[0]
	assert.Equal(t, "tagset", *d.Source)
	require.NotNil(t, d.Code)
	assert.Equal(t, diag.ErrDuplicateVariant, d.Code.Value)
	assert.Equal(t, uint32(2), d.Range.Start.Line)
	assert.Equal(t, uint32(4), d.Range.Start.Character)
	assert.Equal(t, uint32(7), d.Range.End.Character)
}

func TestMakeRangeClampsLength(t *testing.T) {
	r := makeRange(1, 1, 0)
	assert.Equal(t, uint32(1), r.End.Character-r.Start.Character,
		"zero-length spans widen to one character")
}
