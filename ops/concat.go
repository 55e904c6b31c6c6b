package ops

import "github.com/go-alang/alang/automaton"

// ConcatInPlace appends b after a: a's alphabet absorbs b's, b's states
// are offset past a's current maximum and copied in, an epsilon
// transition links every one of a's current final states to each of b's
// offset initial states, and a's final set is replaced by b's offset
// final set. If b is the empty language, a's final set is simply
// cleared: there is no way to complete the concatenation through an
// empty-language right operand, so the result recognizes no strings.
func ConcatInPlace(a, b *automaton.NFA) error {
	if a == b {
		return automaton.ErrAliasedOperands
	}

	remap := a.Alphabet.UnionWith(b.Alphabet)

	if b.IsEmptyLanguage() {
		a.ClearFinals()
		return nil
	}

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

	aFinals := a.Finals().Sorted()
	bInitials := b.Initials().Sorted()
	for _, f := range aFinals {
		for _, bi := range bInitials {
			a.AddEpsilon(f, offset+bi)
		}
	}

	a.ClearFinals()
	for _, bf := range b.Finals().Sorted() {
		a.SetFinal(offset + bf)
	}
	return nil
}

// Concat returns a new NFA recognizing L(a) · L(b), leaving both operands
// unmodified.
func Concat(a, b *automaton.NFA) (*automaton.NFA, error) {
	if a == b {
		return nil, automaton.ErrAliasedOperands
	}
	c := a.Clone()
	if err := ConcatInPlace(c, b); err != nil {
		return nil, err
	}
	return c, nil
}
