package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

// toxmlMain checks the global options and hands the rest of args to the
// named sub command. Output opened with -o is closed before returning and
// a failure to close is reported.
func toxmlMain(cfg *MainConfig, cc *cli.Context, args []string) (err error) {
	defer func() {
		err = errors.Join(err, cfg.closeOut())
	}()
	args, err = cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		code := sub.Exit(cc, err)
		if cErr := cfg.closeOut(); cErr != nil {
			fmt.Fprintln(os.Stderr, cErr)
		}
		os.Exit(code)
	}
	return err
}

// validate rejects more than one input format among -j, -y and -I.
func (cfg *MainConfig) validate() error {
	n := 0
	for _, given := range []bool{cfg.J, cfg.Y, cfg.InFormat != nil} {
		if given {
			n++
		}
	}
	if n > 1 {
		return fmt.Errorf("%w: at most one of -j -y -I", cli.ErrUsage)
	}
	return nil
}

// openOut is the -o option: "-" keeps stdout, anything else is created or
// truncated and becomes the output of cc.
func (cfg *MainConfig) openOut(cc *cli.Context, path string) (any, error) {
	cfg.Out = path
	if path == "-" {
		return path, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return path, nil
}

// closeOut closes the -o file once.
func (cfg *MainConfig) closeOut() error {
	if cfg.CloseOut == nil {
		return nil
	}
	closeFn := cfg.CloseOut
	cfg.CloseOut = nil
	if err := closeFn(); err != nil {
		return fmt.Errorf("closing %s: %w", cfg.Out, err)
	}
	return nil
}
