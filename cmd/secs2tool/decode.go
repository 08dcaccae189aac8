package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/arloliu/go-secs-item/codec"
	"github.com/arloliu/go-secs-item/internal/util"
	"github.com/arloliu/go-secs-item/secs2"
)

type decodeConfig struct {
	*cli.Command
	main *MainConfig
	YAML bool `cli:"name=yaml aliases=y desc='print the item tree as YAML'"`
}

// DecodeCommand returns the decode subcommand.
func DecodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &decodeConfig{main: mainCfg}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "decode").
		WithSynopsis("decode [--yaml] [hex...] - decode items from hex bytes, read from stdin without args").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *decodeConfig) run(cc *cli.Context, args []string) error {
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
		if cfg.YAML {
			return writeYAML(w, item)
		}
		_, err := fmt.Fprintln(w, cfg.main.formatter().Format(item))
		return err
	})
}

// decodeItems decodes consecutive items from data and passes each to emit.
// Items after the first are separated by a "---" line.
func decodeItems(w io.Writer, dec *codec.Decoder, data []byte, emit func(io.Writer, secs2.Item) error) error {
	for offset, i := 0, 0; offset < len(data); i++ {
		item, n, err := dec.Decode(data[offset:])
		if err != nil {
			return fmt.Errorf("item %d at offset %d: %w", i, offset, err)
		}

		if i > 0 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
		if err := emit(w, item); err != nil {
			return err
		}

		offset += n
	}

	return nil
}

// yamlNode is the YAML view of an item.
type yamlNode struct {
	Format string     `yaml:"format"`
	Count  int        `yaml:"count"`
	Value  any        `yaml:"value,omitempty"`
	Items  []yamlNode `yaml:"items,omitempty"`
}

func toYAMLNode(item secs2.Item) yamlNode {
	node := yamlNode{Format: item.Format().String(), Count: item.Count()}

	switch v := item.(type) {
	case *secs2.ListItem:
		node.Items = make([]yamlNode, 0, v.Count())
		for _, child := range v.Items() {
			node.Items = append(node.Items, toYAMLNode(child))
		}
	case *secs2.TextItem:
		node.Value = v.Text()
	case *secs2.ArrayItem[byte]:
		if item.Format() == secs2.FormatBinary {
			node.Value = util.EncodeHex(v.Values())
		} else {
			values := make([]uint, len(v.Values()))
			for i, b := range v.Values() {
				values[i] = uint(b)
			}
			node.Value = values
		}
	default:
		if !item.IsEmpty() {
			node.Value = arrayValues(item)
		}
	}

	return node
}

func arrayValues(item secs2.Item) any {
	switch v := item.(type) {
	case *secs2.ArrayItem[bool]:
		return v.Values()
	case *secs2.ArrayItem[int8]:
		return v.Values()
	case *secs2.ArrayItem[int16]:
		return v.Values()
	case *secs2.ArrayItem[int32]:
		return v.Values()
	case *secs2.ArrayItem[int64]:
		return v.Values()
	case *secs2.ArrayItem[uint16]:
		return v.Values()
	case *secs2.ArrayItem[uint32]:
		return v.Values()
	case *secs2.ArrayItem[uint64]:
		return v.Values()
	case *secs2.ArrayItem[float32]:
		return v.Values()
	case *secs2.ArrayItem[float64]:
		return v.Values()
	}

	return nil
}

func writeYAML(w io.Writer, item secs2.Item) error {
	out, err := yaml.Marshal(toYAMLNode(item))
	if err != nil {
		return fmt.Errorf("error encoding yaml: %w", err)
	}
	_, err = w.Write(out)

	return err
}

