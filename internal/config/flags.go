package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/usermanager/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-m string   mode: demo or repl
//	-s string   storage backend: memory or sqlite
//	-l string   log level
//	-f string   log format: text or json
//	-o string   log file
//
// Only these flags are parsed; -c / -config is handled by parseFile.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-m", "-s", "-l", "-f", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Mode, "m", config.Mode, "mode (demo or repl)")
	fs.StringVar(&config.Storage, "s", config.Storage, "storage backend (memory or sqlite)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format (text or json)")
	fs.StringVar(&config.LogFile, "o", config.LogFile, "log file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
