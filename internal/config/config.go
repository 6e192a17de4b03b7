// Package config handles runtime configuration for usermanager: defaults,
// an optional JSON or YAML file overlay, and command-line flags.
package config

const (
	ModeDemo = "demo"
	ModeREPL = "repl"

	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

// Config holds runtime settings.
//
// Fields:
//   - Mode: "demo" runs the scripted scenario, "repl" starts an interactive session.
//   - Storage: registry backend, "memory" or "sqlite" (in-process, not persisted).
//   - LogLevel / LogFormat: slog level and handler ("text" or "json").
//   - LogFile: optional path of a rotated log file; logs always go to stderr too.
type Config struct {
	Mode      string
	Storage   string
	LogLevel  string
	LogFormat string
	LogFile   string
}

// LoadDefaults populates Config with the values used when nothing is configured.
func (c *Config) LoadDefaults() {
	c.Mode = ModeDemo
	c.Storage = StorageMemory
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.LogFile = ""
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional config file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
