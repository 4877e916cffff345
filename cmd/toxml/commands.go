package main

import (
	"github.com/scott-cotton/cli"

	"github.com/signadot/toxml/transform"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.openOut, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y (default: detect)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "toxml").
		WithSynopsis("toxml [opts] command [opts]").
		WithDescription("toxml renders JSON and YAML documents as XML.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return toxmlMain(cfg, cc, args)
		}).
		WithSubs(
			RenderCommand(cfg),
			CheckCommand(cfg))
}

func newRenderConfig(mainCfg *MainConfig) (*RenderConfig, []*cli.Opt) {
	cfg := &RenderConfig{MainConfig: mainCfg, Pipeline: &transform.Pipeline{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "drop",
			Description: "drop entries for which the expression is true",
			Type:        cli.NamedFuncOpt(exprOpt(cfg.Pipeline.Drop), "(expr)"),
		},
		&cli.Opt{
			Name:        "map",
			Description: "replace scalar values by the result of the expression",
			Type:        cli.NamedFuncOpt(exprOpt(cfg.Pipeline.Map), "(expr)"),
		})
	return cfg, opts
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg, opts := newRenderConfig(mainCfg)
	cmd := cli.NewCommand("render").
		WithAliases("r").
		WithOpts(opts...).
		WithSynopsis("render [-indent n | -tab] [-drop expr] [-map expr] [files]").
		WithDescription("render object files as xml").
		WithRun(func(cc *cli.Context, args []string) error {
			return render(cfg, cc, args)
		})
	cfg.Render = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	rCfg, opts := newRenderConfig(mainCfg)
	cfg := &CheckConfig{RenderConfig: rCfg}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithOpts(opts...).
		WithSynopsis("check [render opts] <expected.xml> [files]").
		WithDescription("render object files and compare the result with an xml file").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}
