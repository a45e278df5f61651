// Package langserver exposes Slate's completion engine over the Language
// Server Protocol: completion requests return snippet-rendered proposals,
// and a workspace command applies an accepted proposal server-side through
// the transactional apply path.
package langserver

import (
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/teranos/slate/analysis"
	"github.com/teranos/slate/completion"
	"github.com/teranos/slate/document"
	"github.com/teranos/slate/errors"
	"github.com/teranos/slate/internal/util"
)

const (
	// maxDocumentsPerClient limits document cache size to prevent memory
	// exhaustion from a buggy or malicious client
	maxDocumentsPerClient = 100

	// ApplyCommand is the workspace command applying a proposal server-side
	ApplyCommand = "slate.apply"
)

// ProposalSource is the completion-search collaborator. It yields resolved
// proposals for a request position; discovery and ranking happen behind it.
type ProposalSource interface {
	ProposalsAt(uri, content string, offset int) []*completion.Proposal
}

// Handler implements the LSP protocol handlers for Slate.
type Handler struct {
	source  ProposalSource
	applier *completion.Applier
	logger  *zap.SugaredLogger
	limiter *rate.Limiter

	mu        sync.RWMutex
	documents map[string]*document.Text
	// proposals from the latest completion request per URI, addressed by
	// index from the apply command
	proposals map[string][]*completion.Proposal
}

// NewHandler creates a protocol handler backed by the given proposal source.
// completionsPerSecond bounds how fast a single client can request
// completions; zero or negative disables the limit.
func NewHandler(source ProposalSource, applier *completion.Applier, completionsPerSecond float64, logger *zap.SugaredLogger) *Handler {
	var limiter *rate.Limiter
	if completionsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(completionsPerSecond), 1)
	}
	return &Handler{
		source:    source,
		applier:   applier,
		logger:    logger,
		limiter:   limiter,
		documents: make(map[string]*document.Text),
		proposals: make(map[string][]*completion.Proposal),
	}
}

// Protocol returns the glsp protocol handler table for this handler
func (h *Handler) Protocol() *protocol.Handler {
	return &protocol.Handler{
		Initialize:              h.Initialize,
		Initialized:             h.Initialized,
		Shutdown:                h.Shutdown,
		TextDocumentDidOpen:     h.TextDocumentDidOpen,
		TextDocumentDidChange:   h.TextDocumentDidChange,
		TextDocumentDidClose:    h.TextDocumentDidClose,
		TextDocumentCompletion:  h.TextDocumentCompletion,
		WorkspaceExecuteCommand: h.WorkspaceExecuteCommand,
	}
}

// Initialize handles the LSP initialize request
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	h.logger.Infow("LSP client initializing",
		"client", params.ClientInfo,
	)

	syncKind := protocol.TextDocumentSyncKindFull
	capabilities := protocol.ServerCapabilities{
		CompletionProvider: &protocol.CompletionOptions{
			TriggerCharacters: []string{"."},
		},
		ExecuteCommandProvider: &protocol.ExecuteCommandOptions{
			Commands: []string{ApplyCommand},
		},
		TextDocumentSync: &protocol.TextDocumentSyncOptions{
			OpenClose: util.Ptr(true),
			Change:    &syncKind,
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    "Slate Language Server",
			Version: util.Ptr("0.1.0"),
		},
	}, nil
}

// Initialized is called after the client receives InitializeResult
func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	h.logger.Infow("LSP client initialized successfully")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *Handler) Shutdown(ctx *glsp.Context) error {
	h.logger.Infow("LSP client shutting down")
	return nil
}

// TextDocumentDidOpen handles document open notifications
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	uri := string(params.TextDocument.URI)

	if _, exists := h.documents[uri]; !exists {
		if len(h.documents) >= maxDocumentsPerClient {
			h.logger.Warnw("Document cache limit reached, rejecting new document",
				"uri", uri,
				"current_count", len(h.documents),
				"max_allowed", maxDocumentsPerClient,
			)
			return errors.Wrapf(errors.ErrDocumentLimit, "%d documents open", len(h.documents))
		}
	}

	h.documents[uri] = document.NewText(params.TextDocument.Text)

	h.logger.Debugw("Document opened",
		"uri", uri,
		"length", len(params.TextDocument.Text),
		"total_documents", len(h.documents),
	)
	return nil
}

// TextDocumentDidChange handles document change notifications
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	uri := string(params.TextDocument.URI)

	// Changes only apply to documents the client opened; accepting unknown
	// URIs here would grow the cache past its DidOpen limit
	if _, exists := h.documents[uri]; !exists {
		h.logger.Warnw("Change for unopened document ignored", "uri", uri)
		return nil
	}

	// Full document sync, just replace content
	for _, change := range params.ContentChanges {
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			h.documents[uri] = document.NewText(textChange.Text)
		}
	}

	// A changed document invalidates any proposals computed against it
	delete(h.proposals, uri)

	h.logger.Debugw("Document changed",
		"uri", uri,
		"changes", len(params.ContentChanges),
	)
	return nil
}

// TextDocumentDidClose handles document close notifications
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	uri := string(params.TextDocument.URI)
	delete(h.documents, uri)
	delete(h.proposals, uri)

	h.logger.Debugw("Document closed", "uri", uri)
	return nil
}

// TextDocumentCompletion returns snippet-rendered completion items at the
// request position
func (h *Handler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (result any, err error) {
	// Panic recovery: a broken proposal must not take the session down
	defer func() {
		if r := recover(); r != nil {
			h.logger.Errorw("Panic in completion handler",
				"panic", r,
				"uri", params.TextDocument.URI,
			)
			result = []protocol.CompletionItem{}
			err = nil
		}
	}()

	if h.limiter != nil && !h.limiter.Allow() {
		h.logger.Warnw("Completion request rate limited",
			"uri", params.TextDocument.URI,
		)
		return []protocol.CompletionItem{}, nil
	}

	uri := string(params.TextDocument.URI)

	h.mu.RLock()
	buf := h.documents[uri]
	h.mu.RUnlock()

	if buf == nil {
		return []protocol.CompletionItem{}, nil
	}

	content := buf.String()
	offset := OffsetAt(content, params.Position)

	proposals := h.source.ProposalsAt(uri, content, offset)

	items := make([]protocol.CompletionItem, len(proposals))
	for i, p := range proposals {
		items[i] = Item(p, content, offset)
	}

	h.mu.Lock()
	h.proposals[uri] = proposals
	h.mu.Unlock()

	h.logger.Infow("LSP completion", "uri", uri, "count", len(items))
	return items, nil
}

// applyOutcome is the JSON payload the apply command answers with.
type applyOutcome struct {
	Applied    bool   `json:"applied"`
	Caret      int    `json:"caret"`
	LinkedMode bool   `json:"linked_mode"`
	Content    string `json:"content"`
}

// WorkspaceExecuteCommand dispatches Slate's workspace commands. The apply
// command expects arguments [uri, proposalIndex, caretOffset, overwrite] and
// applies the indexed proposal from the URI's latest completion request.
func (h *Handler) WorkspaceExecuteCommand(ctx *glsp.Context, params *protocol.ExecuteCommandParams) (any, error) {
	if params.Command != ApplyCommand {
		return nil, errors.Wrapf(errors.ErrInvalidRequest, "unknown command %q", params.Command)
	}
	if len(params.Arguments) != 4 {
		return nil, errors.Wrapf(errors.ErrInvalidRequest, "%s expects 4 arguments, got %d", ApplyCommand, len(params.Arguments))
	}

	uri, okURI := params.Arguments[0].(string)
	index, okIndex := asInt(params.Arguments[1])
	caret, okCaret := asInt(params.Arguments[2])
	overwrite, okOverwrite := params.Arguments[3].(bool)
	if !okURI || !okIndex || !okCaret || !okOverwrite {
		return nil, errors.Wrapf(errors.ErrInvalidRequest, "malformed %s arguments", ApplyCommand)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	buf := h.documents[uri]
	candidates := h.proposals[uri]
	if buf == nil || index < 0 || index >= len(candidates) {
		return nil, errors.Wrapf(errors.ErrInvalidRequest, "no proposal %d for %s", index, uri)
	}
	p := candidates[index]

	unit := analysis.SourceUnit(uri, buf.String(), h.logger)
	res, err := h.applier.Apply(p, buf, unit, caret, overwrite)
	if err != nil {
		h.logger.Errorw("Proposal apply failed",
			"uri", uri,
			"completion", p.Completion,
			"error", err,
		)
		return nil, err
	}
	if res == nil {
		// Unit unavailable: defined as a silent no-op
		return applyOutcome{Applied: false, Content: buf.String()}, nil
	}

	// The buffer changed under the applied proposals
	delete(h.proposals, uri)

	return applyOutcome{
		Applied:    true,
		Caret:      res.Caret,
		LinkedMode: res.LinkedMode,
		Content:    buf.String(),
	}, nil
}

// asInt accepts the number representations JSON decoding may hand us
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}
