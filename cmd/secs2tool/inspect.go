package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/arloliu/go-secs-item/internal/util"
	"github.com/arloliu/go-secs-item/secs2"
)

type inspectConfig struct {
	*cli.Command
	main *MainConfig
}

// InspectCommand returns the inspect subcommand.
func InspectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &inspectConfig{main: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "inspect").
		WithSynopsis("inspect [hex...] - print the header of every node of the decoded items").
		WithRun(cfg.run)
}

func (cfg *inspectConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.main.load(); err != nil {
		return err
	}

	data, err := readHexInput(cc.In, args)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}

	defer cfg.main.logStats()

	return decodeItems(cc.Out, cfg.main.decoder(), data, func(w io.Writer, item secs2.Item) error {
		return inspectItem(w, item, 0)
	})
}

var (
	headerColor  = color.New(color.FgCyan).SprintFunc()
	formatColor  = color.New(color.FgYellow, color.Bold).SprintFunc()
	payloadColor = color.New(color.Faint).SprintFunc()
)

// inspectItem writes one line per node: depth, header bytes, format, count and,
// for value items, the payload bytes.
func inspectItem(w io.Writer, item secs2.Item, depth int) error {
	raw := item.RawBytes()
	headerLen := 1 + int(raw[0]&0x03)

	line := fmt.Sprintf("%s%d %s %s[%d]",
		strings.Repeat("  ", depth), depth,
		headerColor(util.EncodeHex(raw[:headerLen])),
		formatColor(item.Format().String()),
		item.Count())
	if len(raw) > headerLen {
		line += " " + payloadColor(util.EncodeHex(raw[headerLen:]))
	}

	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}

	if list, ok := item.(*secs2.ListItem); ok {
		for _, child := range list.Items() {
			if err := inspectItem(w, child, depth+1); err != nil {
				return err
			}
		}
	}

	return nil
}
