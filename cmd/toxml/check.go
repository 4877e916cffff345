package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/toxml/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires an expected xml file", cli.ErrUsage)
	}
	want, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read %q: %w", args[0], err)
	}
	got := &bytes.Buffer{}
	opts := cfg.xmlOpts()
	if len(args) == 1 {
		err = renderReader(cfg.RenderConfig, got, cc.In, opts)
	} else {
		err = renderFiles(cfg.RenderConfig, got, args[1:], opts)
	}
	if err != nil {
		return err
	}
	differs, err := checkDiff(cc.Out, string(want), got.String(), cfg.colorOn(cc.Out))
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkDiff writes the differences between want and got to w, reporting
// whether there were any.
func checkDiff(w io.Writer, want, got string, colors bool) (bool, error) {
	d := libdiff.Lines(want, got)
	if !d.Changed() {
		return false, nil
	}
	var colorFunc func(libdiff.Op, string) string
	if colors {
		colorFunc = diffColor
	}
	if err := d.Write(w, colorFunc); err != nil {
		return true, fmt.Errorf("error writing diff: %w", err)
	}
	return true, nil
}

func diffColor(op libdiff.Op, s string) string {
	switch op {
	case libdiff.Delete:
		return color.RedString("%s", s)
	case libdiff.Insert:
		return color.GreenString("%s", s)
	}
	return s
}
