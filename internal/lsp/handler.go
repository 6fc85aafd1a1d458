package lsp

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"tagset/internal/ast"
	"tagset/internal/model"
	"tagset/internal/parser"
)

// TagsHandler implements the LSP server handlers for .tags files
type TagsHandler struct {
	mu      sync.RWMutex
	content map[string]string
	decls   map[string]*ast.Decl
}

// NewTagsHandler creates and returns a new TagsHandler instance
func NewTagsHandler() *TagsHandler {
	return &TagsHandler{
		content: make(map[string]string),
		decls:   make(map[string]*ast.Decl),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *TagsHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities
func (h *TagsHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("tagset LSP initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *TagsHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("tagset LSP shutdown")
	return nil
}

// SetTrace handles trace level changes; the server keeps its own logging
func (h *TagsHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *TagsHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateDecl(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to refresh declaration: %w", err)
	}
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)

	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *TagsHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.decls, path)

	return nil
}

// TextDocumentDidChange handles file change notifications from the editor
func (h *TagsHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateDecl(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to refresh declaration: %w", err)
	}
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)

	return nil
}

// TextDocumentCompletion offers the variant names of the current
// declaration, which is what gets referenced while editing data blocks.
func (h *TagsHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (interface{}, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.RLock()
	decl := h.decls[path]
	h.mu.RUnlock()

	items := []protocol.CompletionItem{}
	if decl != nil {
		kind := protocol.CompletionItemKindEnumMember
		for _, v := range decl.Variants {
			name := v.Name.Value
			detail := v.Primary.Value
			items = append(items, protocol.CompletionItem{
				Label:  name,
				Kind:   &kind,
				Detail: &detail,
			})
		}
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *TagsHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	decl, err := h.getOrUpdateDecl(ctx, path, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	tokens := collectSemanticTokens(decl)

	return &protocol.SemanticTokens{
		Data: EncodeSemanticTokens(tokens),
	}, nil
}

func (h *TagsHandler) getOrUpdateDecl(ctx *glsp.Context, path string, rawURI protocol.DocumentUri) (*ast.Decl, error) {
	h.mu.RLock()
	decl, ok := h.decls[path]
	h.mu.RUnlock()

	if !ok {
		diagnostics, err := h.updateDecl(rawURI)
		if err != nil {
			return nil, err
		}

		h.mu.RLock()
		decl = h.decls[path]
		h.mu.RUnlock()

		sendDiagnosticNotification(ctx, rawURI, diagnostics)
	}

	return decl, nil
}

// updateDecl re-reads a document, reparses and revalidates it, and returns
// every diagnostic the pipeline produced. The declaration is cached even
// when diagnostics exist, so highlighting keeps working on broken files.
func (h *TagsHandler) updateDecl(rawURI protocol.DocumentUri) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	decl, parseErrors, scanErrors := parser.ParseSource(path, string(content))

	diagnostics := []protocol.Diagnostic{}
	diagnostics = append(diagnostics, ConvertScanErrors(scanErrors)...)
	diagnostics = append(diagnostics, ConvertParseErrors(parseErrors)...)

	if decl != nil && len(diagnostics) == 0 {
		_, validationDiags := model.Build(decl)
		diagnostics = append(diagnostics, ConvertDiagnostics(validationDiags)...)
	}

	h.mu.Lock()
	h.content[path] = string(content)
	h.decls[path] = decl
	h.mu.Unlock()

	return diagnostics, nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	// Normalize to platform-specific separators
	return filepath.FromSlash(path), nil
}

// sendDiagnosticNotification always publishes, including the empty list:
// that is how a client learns previous diagnostics were fixed.
func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}
