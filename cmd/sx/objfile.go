package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/sx-format/sx/ir"
	"github.com/sx-format/sx/parse"

	"github.com/scott-cotton/cli"
)

// getObjs reads every top-level expression in path, "-" meaning the
// command's input.
func getObjs(ctx *ir.Context, cc *cli.Context, path string, opts ...parse.ParseOption) ([]*ir.Object, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	var res []*ir.Object
	p := parse.NewParser(ctx, bufio.NewReader(r), opts...)
	for {
		o, err := p.Next()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, fmt.Errorf("error parsing %q: %w", path, err)
		}
		res = append(res, o)
	}
}

func argsOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
