package main

import (
	"fmt"

	"github.com/sx-format/sx"
	"github.com/sx-format/sx/ir"

	"github.com/scott-cotton/cli"
)

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: at most one of -j, -y", cli.ErrUsage)
	}
	ctx := ir.NewContext()
	first := true
	for _, arg := range argsOrStdin(args) {
		objs, err := getObjs(ctx, cc, arg, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		for _, o := range objs {
			var d []byte
			if cfg.J {
				d, err = sx.ToJSON(o)
			} else {
				d, err = sx.ToYAML(o)
			}
			if err != nil {
				return fmt.Errorf("error exporting %s: %w", arg, err)
			}
			if !first && !cfg.J {
				if _, err := cc.Out.Write([]byte("---\n")); err != nil {
					return err
				}
			}
			first = false
			if _, err := cc.Out.Write(d); err != nil {
				return err
			}
			if cfg.J {
				if _, err := cc.Out.Write([]byte("\n")); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
