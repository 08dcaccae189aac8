package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arloliu/go-secs-item/codec"
	"github.com/arloliu/go-secs-item/logger"
)

// EnvLogLevel overrides the log level of the configuration file.
const EnvLogLevel = "SECS2TOOL_LOG_LEVEL"

// Config holds the settings shared by all subcommands.
type Config struct {
	LogLevel     logger.Level
	ASCIIQuote   rune
	StrictASCII  bool
	MaxListDepth int
}

type fileConfig struct {
	LogLevel     string `toml:"log_level"`
	ASCIIQuote   string `toml:"ascii_quote"`
	StrictASCII  bool   `toml:"strict_ascii"`
	MaxListDepth int    `toml:"max_list_depth"`
}

// DefaultConfig returns the settings used without a configuration file.
func DefaultConfig() Config {
	return Config{
		LogLevel:     logger.WarnLevel,
		ASCIIQuote:   '"',
		MaxListDepth: codec.DefaultMaxListDepth,
	}
}

// LoadConfig reads a TOML configuration file over the defaults and applies the
// environment overrides. An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		var raw fileConfig
		meta, err := toml.DecodeFile(path, &raw)
		if err != nil {
			return Config{}, fmt.Errorf("load secs2tool config: %w", err)
		}

		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("load secs2tool config: unknown key %q", undecoded[0].String())
		}

		if meta.IsDefined("log_level") {
			level, err := logger.ParseLevel(raw.LogLevel)
			if err != nil {
				return Config{}, fmt.Errorf("parse log_level: %w", err)
			}
			cfg.LogLevel = level
		}

		if meta.IsDefined("ascii_quote") {
			quote := strings.TrimSpace(raw.ASCIIQuote)
			if quote != `"` && quote != "'" {
				return Config{}, fmt.Errorf("parse ascii_quote: must be a single or double quote, got %q", raw.ASCIIQuote)
			}
			cfg.ASCIIQuote = rune(quote[0])
		}

		if meta.IsDefined("strict_ascii") {
			cfg.StrictASCII = raw.StrictASCII
		}

		if meta.IsDefined("max_list_depth") {
			if raw.MaxListDepth < 1 {
				return Config{}, fmt.Errorf("parse max_list_depth: must be positive, got %d", raw.MaxListDepth)
			}
			cfg.MaxListDepth = raw.MaxListDepth
		}
	}

	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		level, err := logger.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}
