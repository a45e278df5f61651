package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/teranos/slate/cmd/slate/commands"
	"github.com/teranos/slate/config"
	"github.com/teranos/slate/logger"
)

var rootCmd = &cobra.Command{
	Use:   "slate",
	Short: "Slate - code completion language server",
	Long: `Slate - a language server focused on code completion.

Slate renders completion insertions, computes linked-edit regions for
parameter names, and applies accepted completions atomically together
with any import they require.

Available commands:
  serve   - Start the language server (stdio or websocket)
  version - Show version information

Examples:
  slate serve                        # Serve LSP over stdio
  slate serve --transport websocket  # Serve LSP over a websocket
  slate version --json               # Build info as JSON`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		commands.SetConfig(cfg)

		if err := logger.Initialize(verbosity, cfg.Log.JSON); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")

	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
