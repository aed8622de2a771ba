// Package config handles application configuration and setup
package config

import (
	"os"
	"strconv"

	"github.com/retroenv/chip8disasm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Environment variables read by FromEnvironment.
const (
	EnvDebug = "CHIP8DISASM_DEBUG"
	EnvQuiet = "CHIP8DISASM_QUIET"
)

// LookupFunc returns the value of an environment variable and whether it is set,
// matching the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// CreateLogger creates a logger with appropriate settings. Log records are
// written to stderr, stdout is reserved for the listing.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Output = os.Stderr
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// FromEnvironment reads the behavior flags from the environment. The output
// of the program is the disassembly itself, so quiet mode is enabled unless
// it is explicitly disabled. Values that can not be parsed as boolean keep
// the default.
func FromEnvironment(lookup LookupFunc) options.Flags {
	return options.Flags{
		Debug: readBool(lookup, EnvDebug, false),
		Quiet: readBool(lookup, EnvQuiet, true),
	}
}

func readBool(lookup LookupFunc, key string, def bool) bool {
	value, ok := lookup(key)
	if !ok || value == "" {
		return def
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return def
	}
	return b
}
