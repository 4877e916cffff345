package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/toxml/encode"
	"github.com/signadot/toxml/format"
	"github.com/signadot/toxml/parse"
	"github.com/signadot/toxml/transform"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	J bool `cli:"name=j aliases=json desc='read json'"`
	Y bool `cli:"name=y aliases=yaml desc='read yaml'"`

	InFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return cfg.fileParseOpts("")
}

// fileParseOpts is parseOpts for input read from file, whose extension
// decides the format unless one was given.
func (cfg *MainConfig) fileParseOpts(file string) []parse.ParseOption {
	fmat := format.FromSuffix(filepath.Ext(file))
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return []parse.ParseOption{
		parse.ParseFormat(fmat),
	}
}

// colorOn reports whether output to w should be coloured: -color when
// given, otherwise whether w is a terminal.
func (cfg *MainConfig) colorOn(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			if opt.Value != nil {
				return false
			}
			break
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type RenderConfig struct {
	*MainConfig

	Indent        int  `cli:"name=indent desc='indent with n spaces'"`
	Tab           bool `cli:"name=tab desc='indent with tabs'"`
	ExpandEmpty   bool `cli:"name=expand-empty desc='write empty records as <x></x>'"`
	EmptyFragment bool `cli:"name=empty-fragment desc='treat the empty key as the fragment key #'"`

	Pipeline *transform.Pipeline

	Render *cli.Command
}

func (cfg *RenderConfig) validate() error {
	if cfg.Tab && cfg.Indent != 0 {
		return fmt.Errorf("%w: at most one of -indent -tab", cli.ErrUsage)
	}
	if cfg.Indent < 0 {
		return fmt.Errorf("%w: negative indent %d", cli.ErrUsage, cfg.Indent)
	}
	return nil
}

// xmlOpts gives the encoding options without colours.
func (cfg *RenderConfig) xmlOpts() []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Indent(cfg.Indent),
		encode.ExpandEmpty(cfg.ExpandEmpty),
		encode.EmptyKeyFragment(cfg.EmptyFragment),
	}
	if cfg.Tab {
		res = append(res, encode.IndentString("\t"))
	}
	if cfg.Pipeline != nil {
		if tr := cfg.Pipeline.Transform(); tr != nil {
			res = append(res, encode.WithTransform(tr))
		}
	}
	return res
}

func (cfg *RenderConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := cfg.xmlOpts()
	if cfg.colorOn(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func exprOpt(add func(string) error) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		if err := add(v); err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		return v, nil
	})
}

type CheckConfig struct {
	*RenderConfig

	Check *cli.Command
}
