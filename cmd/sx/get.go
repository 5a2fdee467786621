package main

import (
	"fmt"

	"github.com/sx-format/sx"
	"github.com/sx-format/sx/encode"
	"github.com/sx-format/sx/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a field name", cli.ErrUsage)
	}
	name := args[0]
	found := false
	ctx := ir.NewContext()
	for _, arg := range argsOrStdin(args[1:]) {
		objs, err := getObjs(ctx, cc, arg, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		for _, o := range objs {
			vals, ok := sx.NewReader(o).List(name)
			if !ok {
				continue
			}
			found = true
			for v := vals; v.Type().IsCons(); v = v.Cdr() {
				if err := encode.Encode(v.Car(), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
					return fmt.Errorf("error encoding output: %w", err)
				}
				if _, err := cc.Out.Write([]byte("\n")); err != nil {
					return err
				}
			}
		}
	}
	if !found {
		return cli.ExitCodeErr(1)
	}
	return nil
}
