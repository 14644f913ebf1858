// Package rules runs expression-selected rewrite rules over a document
// tree in a single transform pass.
//
// A Rule pairs a selector, written in expr-lang
// (https://github.com/expr-lang/expr), with an action. Selectors evaluate
// against the node being visited; the environment exposes:
//
//	type      string   the node's discriminator
//	id        string   the node's id
//	text      string   aggregated text content of the node's subtree
//	ancestors []string ancestor types, root first
//	depth     int      number of ancestors
//	path      string   $-path of the node's position
//
// For example:
//
//	rules.Apply(t,
//	    rules.New(`type == "comment"`, rules.Remove()),
//	    rules.New(`type == "em" && "list" in ancestors`, rules.Rename("strong")),
//	)
package rules

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/doctree-format/go-doctree/debug"
	"github.com/doctree-format/go-doctree/ir"
	"github.com/doctree-format/go-doctree/transform"
)

// Action is what a rule does to a selected node, through the usual
// traversal state facade.
type Action func(n *ir.Node, st *transform.State) error

type Rule struct {
	When string
	Do   Action

	prog *vm.Program
}

func New(when string, do Action) *Rule {
	return &Rule{When: when, Do: do}
}

// Compile compiles the rule's selector. Apply compiles uncompiled rules
// itself; calling Compile directly just surfaces selector errors early.
func (r *Rule) Compile() error {
	if r.prog != nil {
		return nil
	}
	// "type" is also an expr builtin; the env key wins here
	prog, err := expr.Compile(r.When,
		expr.Env(selectorEnv(nil)),
		expr.AsBool(),
		expr.DisableBuiltin("type"))
	if err != nil {
		return fmt.Errorf("compile rule %q: %w", r.When, err)
	}
	r.prog = prog
	return nil
}

func selectorEnv(st *transform.State) map[string]any {
	env := map[string]any{
		"type":      "",
		"id":        "",
		"text":      "",
		"ancestors": []string{},
		"depth":     0,
		"path":      "",
	}
	if st == nil {
		return env
	}
	anc := st.AncestorTypes()
	env["type"] = st.NodeType()
	env["id"] = st.Node().ID
	env["text"] = st.TextContent()
	env["ancestors"] = anc
	env["depth"] = len(anc)
	env["path"] = st.Path()
	return env
}

// Apply traverses t once, evaluating every rule's selector at every node
// in post-order and running the actions of the rules that match, in the
// order given. Rules selected for one node all see the facade of that
// node; if an earlier action replaces the node, later actions still
// target its former position (last structural change wins).
func Apply(t *transform.Transformer, rs ...*Rule) error {
	for _, r := range rs {
		if err := r.Compile(); err != nil {
			return err
		}
	}
	return t.Traverse(func(n *ir.Node, st *transform.State) error {
		env := selectorEnv(st)
		for _, r := range rs {
			out, err := expr.Run(r.prog, env)
			if err != nil {
				return fmt.Errorf("rule %q at %s: %w", r.When, st.Path(), err)
			}
			if !out.(bool) {
				continue
			}
			if debug.Rules() {
				debug.Logf("rule %q fires at %s\n", r.When, st.Path())
			}
			if r.Do == nil {
				continue
			}
			if err := r.Do(n, st); err != nil {
				return err
			}
		}
		return nil
	})
}

// Remove deletes the selected node.
func Remove() Action {
	return func(_ *ir.Node, st *transform.State) error {
		return st.Replace()
	}
}

// Rename rewrites the selected node's type.
func Rename(typ string) Action {
	return func(n *ir.Node, _ *transform.State) error {
		n.Type = typ
		return nil
	}
}

// Unwrap replaces the selected node with its children, in document order.
func Unwrap() Action {
	return func(n *ir.Node, st *transform.State) error {
		return st.Replace(n.Children()...)
	}
}
