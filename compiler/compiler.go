// Package compiler lowers an Alang AST into a canonical MFA.
package compiler

import (
	"github.com/go-alang/alang/alphabet"
	"github.com/go-alang/alang/automaton"
	"github.com/go-alang/alang/ops"
	"github.com/go-alang/alang/syntax"
)

// Compile parses input as an Alang expression and lowers it to a
// canonical MFA relative to ctxAlphabet, which is unioned into the
// result as its universe. It returns the parsed AST alongside the
// compiled automaton so callers can inspect both without re-parsing.
func Compile(input string, ctxAlphabet *alphabet.Alphabet, cfg Config) (*syntax.Node, *automaton.MFA, error) {
	node, err := syntax.Parse(input)
	if err != nil {
		return nil, nil, err
	}
	m, err := CompileNode(node, ctxAlphabet, cfg)
	if err != nil {
		return nil, nil, err
	}
	return node, m, nil
}

// CompileNode lowers an already-parsed AST to a canonical MFA, following
// spec §4.7's table: a bottom-up walk producing an NFA per node, with
// Intersection, Difference, and Complement routing through determinized
// (and, where needed, minimized) intermediate automata because their
// operations are only defined over DFAs/MFAs.
func CompileNode(node *syntax.Node, ctxAlphabet *alphabet.Alphabet, cfg Config) (*automaton.MFA, error) {
	n, err := lower(node, ctxAlphabet, cfg)
	if err != nil {
		return nil, err
	}
	d, err := ops.Determinize(n, cfg.workLimit())
	if err != nil {
		return nil, err
	}
	return ops.Minimize(d, cfg.workLimit())
}

func lower(node *syntax.Node, ctxAlphabet *alphabet.Alphabet, cfg Config) (*automaton.NFA, error) {
	switch node.Kind {
	case syntax.NodeSymbol:
		return lowerSymbol(node.Text, ctxAlphabet), nil

	case syntax.NodeWildcard:
		return ops.Wildcard(ctxAlphabet.Clone()), nil

	case syntax.NodeEmptyLang:
		return automaton.NewNFA(ctxAlphabet.Clone()), nil

	case syntax.NodeUnion:
		a, b, err := lowerPair(node, ctxAlphabet, cfg)
		if err != nil {
			return nil, err
		}
		return ops.Union(a, b)

	case syntax.NodeConcatenation:
		a, b, err := lowerPair(node, ctxAlphabet, cfg)
		if err != nil {
			return nil, err
		}
		return ops.Concat(a, b)

	case syntax.NodeIntersection:
		aDFA, bDFA, err := lowerDeterminizedPair(node, ctxAlphabet, cfg)
		if err != nil {
			return nil, err
		}
		m, err := ops.Intersect(aDFA, bDFA)
		if err != nil {
			return nil, err
		}
		return automaton.FromDFA(m.ToDFA(), false), nil

	case syntax.NodeDifference:
		aDFA, bDFA, err := lowerDeterminizedPair(node, ctxAlphabet, cfg)
		if err != nil {
			return nil, err
		}
		m, err := ops.Difference(aDFA, bDFA, cfg.workLimit())
		if err != nil {
			return nil, err
		}
		return automaton.FromDFA(m.ToDFA(), false), nil

	case syntax.NodeOption:
		x, err := lower(node.Left, ctxAlphabet, cfg)
		if err != nil {
			return nil, err
		}
		ops.OptionInPlace(x)
		return x, nil

	case syntax.NodeKleeneStar:
		x, err := lower(node.Left, ctxAlphabet, cfg)
		if err != nil {
			return nil, err
		}
		ops.KleeneStarInPlace(x)
		return x, nil

	case syntax.NodeKleenePlus:
		x, err := lower(node.Left, ctxAlphabet, cfg)
		if err != nil {
			return nil, err
		}
		ops.KleenePlusInPlace(x)
		return x, nil

	case syntax.NodeComplement:
		x, err := lower(node.Left, ctxAlphabet, cfg)
		if err != nil {
			return nil, err
		}
		d, err := ops.Determinize(x, cfg.workLimit())
		if err != nil {
			return nil, err
		}
		m, err := ops.Minimize(d, cfg.workLimit())
		if err != nil {
			return nil, err
		}
		comp := ops.Complement(m)
		return automaton.FromDFA(comp.ToDFA(), false), nil

	default:
		panic("compiler: unhandled AST node kind " + node.Kind.String())
	}
}

// lowerSymbol builds the two-state NFA for a single symbol, inserting it
// into a clone of the context alphabet so sibling leaves never share the
// same alphabet instance (binary operations reject aliased operands, and
// union-with mutates its operand's alphabet in place).
func lowerSymbol(text string, ctxAlphabet *alphabet.Alphabet) *automaton.NFA {
	alpha := ctxAlphabet.Clone()
	idx := alpha.GetOrAdd(text)
	n := automaton.NewNFA(alpha)
	n.AddTransition(0, idx, 1)
	n.SetInitial(0)
	n.SetFinal(1)
	return n
}

func lowerPair(node *syntax.Node, ctxAlphabet *alphabet.Alphabet, cfg Config) (*automaton.NFA, *automaton.NFA, error) {
	a, err := lower(node.Left, ctxAlphabet, cfg)
	if err != nil {
		return nil, nil, err
	}
	b, err := lower(node.Right, ctxAlphabet, cfg)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func lowerDeterminizedPair(node *syntax.Node, ctxAlphabet *alphabet.Alphabet, cfg Config) (*automaton.DFA, *automaton.DFA, error) {
	a, b, err := lowerPair(node, ctxAlphabet, cfg)
	if err != nil {
		return nil, nil, err
	}
	aDFA, err := ops.Determinize(a, cfg.workLimit())
	if err != nil {
		return nil, nil, err
	}
	bDFA, err := ops.Determinize(b, cfg.workLimit())
	if err != nil {
		return nil, nil, err
	}
	return aDFA, bDFA, nil
}
