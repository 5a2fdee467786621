package main

import (
	"fmt"

	"github.com/sx-format/sx/encode"
	"github.com/sx-format/sx/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	ctx := ir.NewContext()
	for _, arg := range argsOrStdin(args) {
		objs, err := getObjs(ctx, cc, arg, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		for _, o := range objs {
			if err := encode.Encode(o, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				return fmt.Errorf("error encoding output: %w", err)
			}
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
		ctx.Reset()
	}
	return nil
}
