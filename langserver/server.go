package langserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	glspserver "github.com/tliron/glsp/server"
	"go.uber.org/zap"
)

const serverName = "Slate Language Server"

// Server runs the Slate language server over stdio or WebSocket.
type Server struct {
	handler *Handler
	logger  *zap.SugaredLogger
	debug   bool
}

// NewServer creates a server around the given protocol handler
func NewServer(handler *Handler, debug bool, logger *zap.SugaredLogger) *Server {
	return &Server{
		handler: handler,
		logger:  logger,
		debug:   debug,
	}
}

// RunStdio serves LSP over stdin/stdout. Blocks until the session ends.
func (s *Server) RunStdio() error {
	s.logger.Infow("Serving LSP over stdio")
	srv := glspserver.NewServer(s.handler.Protocol(), serverName, s.debug)
	return srv.RunStdio()
}

// ListenAndServe serves LSP over WebSocket at /lsp on addr. Blocks.
func (s *Server) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/lsp", s.HandleWebSocket)

	s.logger.Infow("Serving LSP over WebSocket", "addr", addr, "path", "/lsp")
	return http.ListenAndServe(addr, mux)
}

var upgrader = websocket.Upgrader{
	// Editor clients send no Origin; browser pages must come from this host
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host
	},
}

// HandleWebSocket upgrades HTTP to WebSocket and serves the LSP protocol on
// the connection until it closes.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	session := uuid.New().String()
	s.logger.Infow("LSP WebSocket connection request",
		"remote", r.RemoteAddr,
		"session", session,
	)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Errorw("Failed to upgrade WebSocket",
			"error", err,
			"session", session,
		)
		return
	}

	srv := glspserver.NewServer(s.handler.Protocol(), serverName, s.debug)

	// Blocks until the connection closes
	srv.ServeWebSocket(conn)

	s.logger.Infow("LSP WebSocket connection closed",
		"remote", r.RemoteAddr,
		"session", session,
	)
}
