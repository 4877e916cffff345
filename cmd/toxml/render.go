package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/toxml/encode"
	"github.com/signadot/toxml/parse"

	"github.com/scott-cotton/cli"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	if len(args) == 0 {
		return renderReader(cfg, cc.Out, cc.In, opts)
	}
	return renderFiles(cfg, cc.Out, args, opts)
}

func renderFiles(cfg *RenderConfig, w io.Writer, files []string, opts []encode.EncodeOption) error {
	for _, file := range files {
		if err := renderFile(cfg, w, file, opts); err != nil {
			return err
		}
	}
	return nil
}

func renderFile(cfg *RenderConfig, w io.Writer, file string, opts []encode.EncodeOption) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := renderInput(cfg, w, f, cfg.fileParseOpts(file), opts); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func renderReader(cfg *RenderConfig, w io.Writer, r io.Reader, opts []encode.EncodeOption) error {
	return renderInput(cfg, w, r, cfg.parseOpts(), opts)
}

// renderInput renders each document read from r, one per line.
func renderInput(cfg *RenderConfig, w io.Writer, r io.Reader, pOpts []parse.ParseOption, opts []encode.EncodeOption) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	docs, err := parse.ParseDocuments(in, pOpts...)
	if err != nil {
		return fmt.Errorf("error decoding: %w", err)
	}
	for i, doc := range docs {
		if err := encode.Encode(doc, w, opts...); err != nil {
			return fmt.Errorf("error encoding document %d: %w", i, err)
		}
		if _, err := w.Write([]byte("\n")); err != nil {
			return fmt.Errorf("error writing document %d: %w", i, err)
		}
		if cfg.Pipeline != nil {
			if err := cfg.Pipeline.Err(); err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
		}
	}
	return nil
}
