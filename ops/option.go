package ops

import "github.com/go-alang/alang/automaton"

// OptionInPlace rewrites n to accept L(n) ∪ {ε}. If n already accepts
// the empty string, it is left unchanged. If n is the empty language, it
// is also left unchanged — the empty language stays the empty language
// under option, preserving identity rather than growing it into an
// epsilon-accepting automaton (spec's chosen resolution of the Option
// ambiguity; see DESIGN.md). Otherwise a fresh state, both initial and
// final, is added alongside n's existing initial and final states.
func OptionInPlace(n *automaton.NFA) {
	if n.AcceptsEpsilon() {
		return
	}
	if n.IsEmptyLanguage() {
		return
	}
	s := n.NewState()
	n.SetInitial(s)
	n.SetFinal(s)
}

// Option returns a new NFA recognizing L(n)?, leaving n unmodified.
func Option(n *automaton.NFA) *automaton.NFA {
	c := n.Clone()
	OptionInPlace(c)
	return c
}
