package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/signadot/go-hepmc2/event"
	"github.com/signadot/go-hepmc2/format"
	"github.com/signadot/go-hepmc2/stream"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.OutFormat == format.HepMC2Format {
		return pipe(cfg.MainConfig, cc.Out, cc.In, args, -1, nil)
	}
	return dumpModel(cfg.MainConfig, cfg.OutFormat, cc.Out, cc.In, args)
}

// dumpModel writes the events of the inputs as JSON lines or as a stream
// of YAML documents.
func dumpModel(cfg *MainConfig, f format.Format, out io.Writer, stdin io.Reader, args []string) error {
	enc := json.NewEncoder(out)
	n := 0
	return eachInput(cfg, stdin, args, func(name string, r *stream.Reader) error {
		return eachEvent(cfg, r, name, func(ev *event.Event) error {
			defer func() { n++ }()
			switch f {
			case format.JSONFormat:
				if err := enc.Encode(ev); err != nil {
					return fmt.Errorf("%s: event %d: %w", name, ev.Number, err)
				}
				return nil
			case format.YAMLFormat:
				d, err := yaml.Marshal(ev)
				if err != nil {
					return fmt.Errorf("%s: event %d: %w", name, ev.Number, err)
				}
				if n > 0 {
					if _, err := io.WriteString(out, "---\n"); err != nil {
						return err
					}
				}
				_, err = out.Write(d)
				return err
			default:
				return fmt.Errorf("%w: %s", format.ErrBadFormat, f)
			}
		})
	})
}
