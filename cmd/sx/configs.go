package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sx-format/sx/encode"
	"github.com/sx-format/sx/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	Depth int

	Main *cli.Command
}

func (cfg *MainConfig) depthOpt(cc *cli.Context, a string) (any, error) {
	n, err := strconv.Atoi(a)
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("%w: invalid depth %q", cli.ErrUsage, a)
	}
	cfg.Depth = n
	return n, nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.Depth > 0 {
		return []parse.ParseOption{parse.MaxDepth(cfg.Depth)}
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	f, ok := w.(*os.File)
	if ok && isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type MatchConfig struct {
	*MainConfig

	S bool `cli:"name=s desc='pattern argument is literal text, not a file'"`

	Match *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type ExportConfig struct {
	*MainConfig

	J bool `cli:"name=j aliases=json desc='export JSON'"`
	Y bool `cli:"name=y aliases=yaml desc='export YAML (default)'"`

	Export *cli.Command
}
