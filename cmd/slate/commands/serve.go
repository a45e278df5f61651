package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/slate/analysis"
	"github.com/teranos/slate/completion"
	"github.com/teranos/slate/config"
	"github.com/teranos/slate/document"
	"github.com/teranos/slate/errors"
	"github.com/teranos/slate/langserver"
	"github.com/teranos/slate/logger"
)

// ServeCmd starts the Slate language server
var ServeCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"server"},
	Short:   "Start the Slate language server",
	Long: `Launch the Slate language server over stdio or a websocket.

The stdio transport is what editors launch directly; the websocket
transport serves browser-based clients on the configured address.`,
	RunE: runServe,
}

var (
	serveTransport string
	serveAddr      string
	serveDebug     bool
)

var loadedConfig *config.Config

// SetConfig hands the loaded configuration to the commands. Called by the
// root command before any command runs.
func SetConfig(cfg *config.Config) {
	loadedConfig = cfg
}

func init() {
	ServeCmd.Flags().StringVar(&serveTransport, "transport", "", `Transport to serve on: "stdio" or "websocket" (overrides config)`)
	ServeCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address for the websocket transport (overrides config)")
	ServeCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable protocol-level debug output")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadedConfig
	if cfg == nil {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load configuration")
		}
	}

	transport := cfg.Server.Transport
	if serveTransport != "" {
		transport = serveTransport
	}
	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}
	debug := cfg.Server.Debug || serveDebug

	log := logger.Logger
	applier := completion.NewApplier(document.Editor{}, analysis.Organizer{}, log)
	source := &langserver.LexicalSource{MaxProposals: cfg.Completion.MaxProposals}
	handler := langserver.NewHandler(source, applier, cfg.Completion.RequestsPerSecond, log)
	srv := langserver.NewServer(handler, debug, log)

	switch transport {
	case "stdio":
		// No log line here: stdio belongs to the protocol and clients
		// launch us silently
		return srv.RunStdio()
	case "websocket":
		log.Infow("Starting websocket language server", "addr", addr)
		return srv.ListenAndServe(addr)
	default:
		return errors.Newf("unknown transport %q (want \"stdio\" or \"websocket\")", transport)
	}
}
