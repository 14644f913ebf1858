package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/scott-cotton/cli"

	doctree "github.com/doctree-format/go-doctree"
	"github.com/doctree-format/go-doctree/encode"
	"github.com/doctree-format/go-doctree/ir"
	"github.com/doctree-format/go-doctree/parse"
	"github.com/doctree-format/go-doctree/rules"
	"github.com/doctree-format/go-doctree/transform"
)

func dtMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
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
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// loadTree reads a document from a file (or stdin for "-") and wraps it
// for traversal. Both interchange forms are accepted: a JSON object is a
// single-rooted tree, a JSON array a sequence-form document.
func loadTree(file string) (*transform.Transformer, error) {
	var r io.Reader = os.Stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	trimmed := bytes.TrimLeft(in, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		entries, err := parse.ParseEntries(in)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", file, err)
		}
		return transform.NewEntries(entries), nil
	}
	root, err := parse.Parse(in)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return transform.New(root), nil
}

func orStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func (cfg *MainConfig) write(w io.Writer, root *ir.Node) error {
	if cfg.J {
		return encode.EncodeJSON(root, w)
	}
	return encode.Encode(root, w, cfg.encOpts(w)...)
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range orStdin(args) {
		t, err := loadTree(file)
		if err != nil {
			return err
		}
		if err := cfg.write(cc.Out, t.Root()); err != nil {
			return err
		}
	}
	return nil
}

func text(cfg *TextConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Text.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range orStdin(args) {
		t, err := loadTree(file)
		if err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, t.Root().TextContent())
	}
	return nil
}

func diffTrees(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two files", cli.ErrUsage)
	}
	a, err := loadTree(args[0])
	if err != nil {
		return err
	}
	b, err := loadTree(args[1])
	if err != nil {
		return err
	}
	_, err = io.WriteString(cc.Out, doctree.Diff(a.Root(), b.Root()))
	return err
}

func patchTrees(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.PatchFile == "" {
		return fmt.Errorf("%w: patch requires -p", cli.ErrUsage)
	}
	p, err := os.ReadFile(cfg.PatchFile)
	if err != nil {
		return err
	}
	for _, file := range orStdin(args) {
		t, err := loadTree(file)
		if err != nil {
			return err
		}
		out, err := doctree.Patch(t.Root(), p)
		if err != nil {
			return fmt.Errorf("patching %s: %w", file, err)
		}
		if err := cfg.write(cc.Out, out); err != nil {
			return err
		}
	}
	return nil
}

func filterTrees(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(cfg.Types) == 0 {
		return fmt.Errorf("%w: filter requires at least one -t", cli.ErrUsage)
	}
	rs := make([]*rules.Rule, len(cfg.Types))
	for i, typ := range cfg.Types {
		rs[i] = rules.New("type == "+strconv.Quote(typ), rules.Remove())
	}
	for _, file := range orStdin(args) {
		t, err := loadTree(file)
		if err != nil {
			return err
		}
		if err := rules.Apply(t, rs...); err != nil {
			return fmt.Errorf("filtering %s: %w", file, err)
		}
		if err := cfg.write(cc.Out, t.Root()); err != nil {
			return err
		}
	}
	return nil
}

func matchTrees(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.PatternFile == "" {
		return fmt.Errorf("%w: match requires -p", cli.ErrUsage)
	}
	p, err := os.ReadFile(cfg.PatternFile)
	if err != nil {
		return err
	}
	pattern, err := parse.Parse(p)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", cfg.PatternFile, err)
	}
	for _, file := range orStdin(args) {
		t, err := loadTree(file)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s: %v\n", file, doctree.Match(t.Root(), pattern))
	}
	return nil
}
