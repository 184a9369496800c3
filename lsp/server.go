package lsp

import (
	"sync"

	"github.com/npillmayer/cnl/library"
	"github.com/npillmayer/cnl/predict"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "cnl"

// Server is a language server for one tactic library.
type Server struct {
	MaxIter int // iterations for predictions
	lib     *library.Library
	handler protocol.Handler
	server  *server.Server
	version string
	mu      sync.Mutex
	docs    map[protocol.DocumentUri]*Document
}

// NewServer creates a language server for documents written with lib.
func NewServer(lib *library.Library, version string) *Server {
	ls := &Server{
		lib:     lib,
		version: version,
		MaxIter: predict.DefaultMaxIterations,
		docs:    make(map[protocol.DocumentUri]*Document),
	}
	ls.handler = protocol.Handler{
		Initialize:             ls.initialize,
		Initialized:            ls.initialized,
		Shutdown:               ls.shutdown,
		SetTrace:               ls.setTrace,
		TextDocumentDidOpen:    ls.textDocumentDidOpen,
		TextDocumentDidChange:  ls.textDocumentDidChange,
		TextDocumentDidClose:   ls.textDocumentDidClose,
		TextDocumentCompletion: ls.textDocumentCompletion,
		TextDocumentHover:      ls.textDocumentHover,
	}
	ls.server = server.NewServer(&ls.handler, lsName, false)
	return ls
}

// RunStdio serves requests on stdin/stdout until the client disconnects.
func (ls *Server) RunStdio() error {
	tracer().Infof("language server for %v", ls.lib)
	return ls.server.RunStdio()
}

// Document returns the current state of an open document.
func (ls *Server) Document(uri protocol.DocumentUri) (*Document, bool) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	d, ok := ls.docs[uri]
	return d, ok
}

// Update parses a new version of a document and returns its diagnostics.
func (ls *Server) Update(uri protocol.DocumentUri, version protocol.Integer, text string) []protocol.Diagnostic {
	d := NewDocument(ls.lib, uri, version, text)
	ls.mu.Lock()
	ls.docs[uri] = d
	ls.mu.Unlock()
	return d.Diagnostics()
}

// Close forgets a document.
func (ls *Server) Close(uri protocol.DocumentUri) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	delete(ls.docs, uri)
}

// Complete predicts continuations at a position of a document.
func (ls *Server) Complete(uri protocol.DocumentUri, pos protocol.Position) []protocol.CompletionItem {
	d, ok := ls.Document(uri)
	if !ok {
		return nil
	}
	return d.Completions(ls.lib, pos, ls.MaxIter)
}

// Hover describes the chunks at a position of a document.
func (ls *Server) Hover(uri protocol.DocumentUri, pos protocol.Position) (*protocol.Hover, bool) {
	d, ok := ls.Document(uri)
	if !ok {
		return nil, false
	}
	return d.Hover(pos)
}

func (ls *Server) publish(ctx *glsp.Context, uri protocol.DocumentUri, version protocol.Integer,
	diagnostics []protocol.Diagnostic) {
	//
	v := protocol.UInteger(version)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Version:     &v,
		Diagnostics: diagnostics,
	})
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKind(protocol.TextDocumentSyncKindFull),
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{" ", "."},
	}
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := params.TextDocument
	ls.publish(ctx, doc.URI, doc.Version, ls.Update(doc.URI, doc.Version, doc.Text))
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	whole, ok := change.(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		tracer().Errorf("incremental change for %s ignored", params.TextDocument.URI)
		return nil
	}
	uri, version := params.TextDocument.URI, params.TextDocument.Version
	ls.publish(ctx, uri, version, ls.Update(uri, version, whole.Text))
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.Close(params.TextDocument.URI)
	return nil
}

func (ls *Server) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	items := ls.Complete(params.TextDocument.URI, params.Position)
	if len(items) == 0 {
		return nil, nil
	}
	return items, nil
}

func (ls *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	h, _ := ls.Hover(params.TextDocument.URI, params.Position)
	return h, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
