package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "doctree").
		WithSynopsis("doctree [opts] command [opts]").
		WithDescription("doctree is a tool for working with document trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dtMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			TextCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			FilterCommand(cfg),
			MatchCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view document trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func TextCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TextConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("text").
		WithAliases("t").
		WithSynopsis("text [files]").
		WithDescription("print aggregated text content of document trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return text(cfg, cc, args)
		})
	cfg.Text = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <file> <file>").
		WithDescription("line diff of two document trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return diffTrees(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch -p <patchfile> [files]").
		WithDescription("apply an RFC 6902 JSON patch to document trees").
		WithOpts(&cli.Opt{
			Name:        "p",
			Description: "patch file (JSON patch)",
			Type: cli.NamedFuncOpt(cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
				cfg.PatchFile = v
				return v, nil
			}), "(filepath)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchTrees(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("filter").
		WithAliases("f").
		WithSynopsis("filter -t <type> [-t <type>]... [files]").
		WithDescription("remove nodes of the given types from document trees").
		WithOpts(&cli.Opt{
			Name:        "t",
			Description: "node type to remove",
			Type: cli.NamedFuncOpt(cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
				cfg.Types = append(cfg.Types, v)
				return v, nil
			}), "(type)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return filterTrees(cfg, cc, args)
		})
	cfg.Filter = cmd
	return cmd
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("match").
		WithAliases("m").
		WithSynopsis("match -p <patternfile> [files]").
		WithDescription("match a pattern tree against document trees").
		WithOpts(&cli.Opt{
			Name:        "p",
			Description: "pattern file (document tree)",
			Type: cli.NamedFuncOpt(cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
				cfg.PatternFile = v
				return v, nil
			}), "(filepath)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return matchTrees(cfg, cc, args)
		})
	cfg.Match = cmd
	return cmd
}
