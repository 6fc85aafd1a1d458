package lsp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func writeTempTags(t *testing.T, content string) (path string, uri string) {
	t.Helper()
	path = filepath.Join(t.TempDir(), "test.tags")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path, "file://" + path
}

func TestUpdateDeclValidFile(t *testing.T) {
	path, uri := writeTempTags(t, `Operator =
    Eq "==" "eq"
    Add "+"`)

	h := NewTagsHandler()
	diagnostics, err := h.updateDecl(uri)
	require.NoError(t, err)
	assert.Empty(t, diagnostics)

	h.mu.RLock()
	decl := h.decls[path]
	h.mu.RUnlock()
	require.NotNil(t, decl)
	assert.Equal(t, "Operator", decl.Name.Value)
	assert.Len(t, decl.Variants, 2)
}

func TestUpdateDeclReportsValidation(t *testing.T) {
	_, uri := writeTempTags(t, `Color =
    Red "red"
    Red "crimson"`)

	h := NewTagsHandler()
	diagnostics, err := h.updateDecl(uri)
	require.NoError(t, err)
	require.Len(t, diagnostics, 1)
	assert.Equal(t, "tagset", *diagnostics[0].Source)
	assert.Contains(t, diagnostics[0].Message, "declared twice")
}

func TestUpdateDeclKeepsBrokenFileUsable(t *testing.T) {
	// Syntax errors still cache whatever parsed, so highlighting and
	// completion keep working while the user types.
	path, uri := writeTempTags(t, `Color =
    Red`)

	h := NewTagsHandler()
	diagnostics, err := h.updateDecl(uri)
	require.NoError(t, err)
	assert.NotEmpty(t, diagnostics)
	assert.Equal(t, "tagset-parser", *diagnostics[0].Source)

	h.mu.RLock()
	_, cached := h.decls[path]
	h.mu.RUnlock()
	assert.True(t, cached, "even a nil declaration is cached to avoid re-reading")
}

func TestCompletionListsVariants(t *testing.T) {
	_, uri := writeTempTags(t, `Operator =
    Eq "=="
    Add "+" "plus"`)

	h := NewTagsHandler()
	_, err := h.updateDecl(uri)
	require.NoError(t, err)

	result, err := h.TextDocumentCompletion(nil, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		},
	})
	require.NoError(t, err)

	list, ok := result.(*protocol.CompletionList)
	require.True(t, ok)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "Eq", list.Items[0].Label)
	assert.Equal(t, "==", *list.Items[0].Detail)
	assert.Equal(t, "Add", list.Items[1].Label)
	assert.Equal(t, protocol.CompletionItemKindEnumMember, *list.Items[1].Kind)
}

func TestCompletionUnknownFile(t *testing.T) {
	h := NewTagsHandler()
	result, err := h.TextDocumentCompletion(nil, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///nowhere/missing.tags"},
		},
	})
	require.NoError(t, err)

	list, ok := result.(*protocol.CompletionList)
	require.True(t, ok)
	assert.Empty(t, list.Items, "no cached declaration means no suggestions, not an error")
}

func TestUriToPath(t *testing.T) {
	path, err := uriToPath("file:///home/user/ops.tags")
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/home/user/ops.tags"), path)
}
