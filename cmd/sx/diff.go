package main

import (
	"fmt"
	"strings"

	"github.com/sx-format/sx/encode"
	"github.com/sx-format/sx/ir"

	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	ctx := ir.NewContext()
	a, err := canonical(ctx, cc, cfg, args[0])
	if err != nil {
		return err
	}
	b, err := canonical(ctx, cc, cfg, args[1])
	if err != nil {
		return err
	}
	if a == b {
		return nil
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(a, b, true)
	fmt.Fprint(cc.Out, diffCfg.DiffPrettyText(diffs))
	return cli.ExitCodeErr(1)
}

// canonical renders every expression in the file in the writer's own
// concrete syntax, so formatting differences vanish from the diff.
func canonical(ctx *ir.Context, cc *cli.Context, cfg *DiffConfig, path string) (string, error) {
	objs, err := getObjs(ctx, cc, path, cfg.parseOpts()...)
	if err != nil {
		return "", fmt.Errorf("error decoding %s: %w", path, err)
	}
	var sb strings.Builder
	for _, o := range objs {
		sb.WriteString(encode.MustString(o))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
