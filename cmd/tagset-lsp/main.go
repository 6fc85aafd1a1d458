// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"tagset/internal/lsp"
)

const lsName = "tagset" // Name identifier for the language server

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	tagsHandler := lsp.NewTagsHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     tagsHandler.Initialize,
		Initialized:                    tagsHandler.Initialized,
		Shutdown:                       tagsHandler.Shutdown,
		SetTrace:                       tagsHandler.SetTrace,
		TextDocumentDidOpen:            tagsHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           tagsHandler.TextDocumentDidClose,
		TextDocumentDidChange:          tagsHandler.TextDocumentDidChange,
		TextDocumentCompletion:         tagsHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: tagsHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Printf("Starting tagset LSP server %s...", version)

	// Serve over standard input/output, the transport editors expect
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting tagset LSP server:", err)
		os.Exit(1)
	}
}
