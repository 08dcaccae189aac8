package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/arloliu/go-secs-item/codec"
	"github.com/arloliu/go-secs-item/internal/util"
)

type encodeConfig struct {
	*cli.Command
	main *MainConfig
}

// EncodeCommand returns the encode subcommand.
func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &encodeConfig{main: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "encode").
		WithSynopsis("encode [sml] - encode an SML item to hex bytes, read from stdin without args").
		WithRun(cfg.run)
}

func (cfg *encodeConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.main.load(); err != nil {
		return err
	}

	text, err := readInput(cc.In, args)
	if err != nil {
		return err
	}

	item, err := cfg.main.parser().Parse(text)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cc.Out, util.EncodeHex(codec.Encode(item)))

	return err
}
