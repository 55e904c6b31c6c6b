package ops

import "github.com/go-alang/alang/automaton"

// UnionInPlace merges b into a: a's alphabet absorbs b's via
// union-with, b's states are offset past a's current maximum, and every
// transition, epsilon transition, initial state, and final state of b is
// copied into a at the offset position. When b is the empty-language NFA
// this is a no-op on a's states (only the alphabet may grow), matching
// "union with ∅ is identity".
func UnionInPlace(a, b *automaton.NFA) error {
	if a == b {
		return automaton.ErrAliasedOperands
	}

	remap := a.Alphabet.UnionWith(b.Alphabet)
	offset := automaton.State(0)
	if a.MaxState() != automaton.InvalidState {
		offset = a.MaxState() + 1
	}

	b.ForEachTransition(func(t automaton.Transition) {
		a.AddTransition(offset+t.From, remap[t.Symbol], offset+t.To)
	})
	b.ForEachEpsilon(func(t automaton.EpsilonTransition) {
		a.AddEpsilon(offset+t.From, offset+t.To)
	})
	for _, s := range b.Initials().Sorted() {
		a.SetInitial(offset + s)
	}
	for _, s := range b.Finals().Sorted() {
		a.SetFinal(offset + s)
	}
	return nil
}

// Union returns a new NFA recognizing L(a) ∪ L(b), leaving both operands
// unmodified.
func Union(a, b *automaton.NFA) (*automaton.NFA, error) {
	if a == b {
		return nil, automaton.ErrAliasedOperands
	}
	c := a.Clone()
	if err := UnionInPlace(c, b); err != nil {
		return nil, err
	}
	return c, nil
}
