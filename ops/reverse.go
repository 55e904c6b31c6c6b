package ops

import "github.com/go-alang/alang/automaton"

// Reverse builds the NFA recognizing the reverse of L(d): every
// transition is swapped, d's final states become the new initial states,
// and d's initial state becomes the sole new final state.
func Reverse(d *automaton.DFA) *automaton.NFA {
	return automaton.FromDFA(d, true)
}
