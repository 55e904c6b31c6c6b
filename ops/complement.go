package ops

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/go-alang/alang/alphabet"
	"github.com/go-alang/alang/automaton"
)

// Complement returns the MFA recognizing every string over m's alphabet
// that m does not accept. It totalizes m (adding a single trap state
// reached by every missing (state, symbol) pair, self-looping on every
// symbol) and flips the final/non-final status of every original state.
// The alphabet of m defines the universe complement is taken against.
func Complement(m *automaton.MFA) *automaton.MFA {
	alpha := m.Alphabet
	symCount := alpha.Count()
	n := m.States()
	trap := automaton.State(n)

	result := automaton.NewDFA(alpha.Clone())

	if n == 0 {
		// complement(empty language) = every string, including the empty
		// string: a single accepting state looping on every symbol.
		result.SetInitial(0)
		result.SetFinal(0)
		for sym := 0; sym < symCount; sym++ {
			result.SetTransition(0, alphabet.Index(sym), 0)
		}
		return automaton.NewMFAFromDFA(result)
	}

	result.SetInitial(m.Initial())
	for s := automaton.State(0); s < automaton.State(n); s++ {
		if !m.IsFinal(s) {
			result.SetFinal(s)
		}
	}
	result.SetFinal(trap) // the trap was never final in the original

	present := make([]*bitset.BitSet, n+1)
	for i := range present {
		present[i] = bitset.New(uint(symCount))
	}
	m.ForEachTransition(func(t automaton.Transition) {
		result.SetTransition(t.From, t.Symbol, t.To)
		present[t.From].Set(uint(t.Symbol))
	})

	for s := automaton.State(0); s < automaton.State(n); s++ {
		for sym := 0; sym < symCount; sym++ {
			if !present[s].Test(uint(sym)) {
				result.SetTransition(s, alphabet.Index(sym), trap)
			}
		}
	}
	for sym := 0; sym < symCount; sym++ {
		result.SetTransition(trap, alphabet.Index(sym), trap)
	}

	return automaton.NewMFAFromDFA(result)
}
