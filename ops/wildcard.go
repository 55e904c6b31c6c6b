package ops

import (
	"github.com/go-alang/alang/alphabet"
	"github.com/go-alang/alang/automaton"
)

// Wildcard builds the one-state NFA for '.' relative to ctxAlphabet: a
// single state, both initial and final, with a self-loop on every symbol
// of ctxAlphabet.
//
// If ctxAlphabet is empty, the result is the empty-language NFA — there
// is no symbol left for the wildcard to range over. Compiling a Wildcard
// AST node against an empty context alphabet is almost always an
// authoring mistake; callers should treat it as one rather than silently
// accept an automaton that can never match anything (spec §9).
func Wildcard(ctxAlphabet *alphabet.Alphabet) *automaton.NFA {
	n := automaton.NewNFA(ctxAlphabet.Clone())
	if ctxAlphabet.Count() == 0 {
		return n
	}

	s := n.NewState()
	n.SetInitial(s)
	n.SetFinal(s)
	ctxAlphabet.IterSymbols(func(i alphabet.Index, _ string) bool {
		n.AddTransition(s, i, s)
		return true
	})
	return n
}
