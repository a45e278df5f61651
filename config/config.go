// Package config provides Slate configuration loading via Viper.
// Precedence (lowest to highest): defaults < user config < project config
// < SLATE_* environment variables.
package config

// Config is the root Slate configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Completion CompletionConfig `mapstructure:"completion"`
}

// ServerConfig controls how the language server is exposed
type ServerConfig struct {
	// Transport is "stdio" or "websocket"
	Transport string `mapstructure:"transport"`
	// Addr is the listen address for the websocket transport
	Addr string `mapstructure:"addr"`
	// Debug enables protocol-level debug output
	Debug bool `mapstructure:"debug"`
}

// LogConfig controls logger output
type LogConfig struct {
	// JSON switches to structured JSON output
	JSON bool `mapstructure:"json"`
}

// CompletionConfig tunes the completion engine
type CompletionConfig struct {
	// MaxProposals caps how many proposals a single request returns
	MaxProposals int `mapstructure:"max_proposals"`
	// OverwriteByDefault makes accepted completions replace the identifier
	// at the caret instead of inserting before it
	OverwriteByDefault bool `mapstructure:"overwrite_by_default"`
	// RequestsPerSecond rate-limits completion requests per client;
	// zero disables the limit
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
}
