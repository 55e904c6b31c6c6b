package ops

import "github.com/go-alang/alang/automaton"

// Overlaps reports whether L(a) and L(b) share at least one string.
func Overlaps(a, b *automaton.DFA) (bool, error) {
	inter, err := Intersect(a, b)
	if err != nil {
		return false, err
	}
	return !inter.IsEmptyLanguage(), nil
}

// Equivalent reports whether a and b recognize the same language. Both
// operands are minimized before comparison, since NewMFAFromDFA alone
// only prunes dead and unreachable states; it does not merge equivalent
// states, so two DFAs with different state counts for the same language
// would otherwise compare unequal.
func Equivalent(a, b *automaton.DFA, workLimit int) (bool, error) {
	ma, err := Minimize(a, workLimit)
	if err != nil {
		return false, err
	}
	mb, err := Minimize(b, workLimit)
	if err != nil {
		return false, err
	}
	return ma.LanguageEquals(mb), nil
}
