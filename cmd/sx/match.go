package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sx-format/sx"
	"github.com/sx-format/sx/encode"
	"github.com/sx-format/sx/ir"
	"github.com/sx-format/sx/parse"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a pattern", cli.ErrUsage)
	}
	ctx := ir.NewContext()
	pat, err := getPattern(cfg, ctx, args[0])
	if err != nil {
		return err
	}
	matched := false
	caps := make([]*ir.Object, pat.NumCaptures())
	for _, arg := range argsOrStdin(args[1:]) {
		objs, err := getObjs(ctx, cc, arg, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		for _, o := range objs {
			if !pat.MatchInto(o, caps) {
				continue
			}
			matched = true
			for i, c := range caps {
				fmt.Fprintf(cc.Out, "%d: ", i)
				if err := encode.Encode(c, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
					return fmt.Errorf("error encoding output: %w", err)
				}
				if _, err := cc.Out.Write([]byte("\n")); err != nil {
					return err
				}
			}
		}
	}
	if !matched {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func getPattern(cfg *MatchConfig, ctx *ir.Context, arg string) (*sx.Pattern, error) {
	var (
		skel *ir.Object
		err  error
	)
	if cfg.S {
		skel, err = parse.String(ctx, arg, cfg.parseOpts()...)
	} else {
		f, ferr := os.Open(arg)
		if ferr != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, ferr)
		}
		defer f.Close()
		skel, err = parse.Parse(ctx, bufio.NewReader(f), cfg.parseOpts()...)
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing pattern: %w", err)
	}
	return sx.Compile(ctx, skel)
}
