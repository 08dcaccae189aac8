package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/arloliu/go-secs-item/codec"
	"github.com/arloliu/go-secs-item/logger"
	"github.com/arloliu/go-secs-item/sml"
)

// MainConfig holds the global options and the state shared with subcommands.
type MainConfig struct {
	ConfigFile string `cli:"name=config desc='TOML configuration file'"`

	Main *cli.Command

	cfg    Config
	stats  *codec.Metrics
	loaded bool
}

// MainCommand returns the root command.
func MainCommand() *cli.Command {
	cfg := &MainConfig{cfg: DefaultConfig()}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Main, "secs2tool").
		WithSynopsis("secs2tool [--config file] command [opts] [args]").
		WithDescription("secs2tool converts SECS-II items between wire bytes (hex) and SML.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return secs2toolMain(cfg, cc, args)
		}).
		WithSubs(
			DecodeCommand(cfg),
			EncodeCommand(cfg),
			InspectCommand(cfg),
		)
}

func secs2toolMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}

	if err := cfg.load(); err != nil {
		return err
	}

	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}

	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	if err != nil {
		logger.Error("command failed", "command", args[0], "error", err)
	}

	return err
}

// load reads the configuration once, installs the stderr logger as the default
// logger and creates the decode metrics.
func (cfg *MainConfig) load() error {
	if cfg.loaded {
		return nil
	}

	c, err := LoadConfig(cfg.ConfigFile)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}

	cfg.cfg = c
	logger.SetDefault(logger.NewSlogWithWriter(os.Stderr, c.LogLevel, false))
	cfg.stats = codec.NewMetrics()
	cfg.loaded = true

	return nil
}

func (cfg *MainConfig) decoder() *codec.Decoder {
	return codec.NewDecoder(
		codec.WithMaxListDepth(cfg.cfg.MaxListDepth),
		codec.WithMetrics(cfg.stats),
	)
}

func (cfg *MainConfig) formatter() *sml.Formatter {
	return sml.NewFormatter(
		sml.WithQuote(cfg.cfg.ASCIIQuote),
		sml.WithStrict(cfg.cfg.StrictASCII),
	)
}

func (cfg *MainConfig) parser() *sml.Parser {
	return sml.NewParser().WithStrictMode(cfg.cfg.StrictASCII)
}

// logStats writes the decode counters at debug level.
func (cfg *MainConfig) logStats() {
	snap := cfg.stats.Snapshot()
	kv := make([]any, 0, len(snap.Items)*2)
	for f, n := range snap.Items {
		if n > 0 {
			kv = append(kv, f.String(), n)
		}
	}
	for kind, n := range snap.Errors {
		kv = append(kv, "error_"+kind, n)
	}
	logger.Debug("decode stats", kv...)
}
