package ops

import "github.com/go-alang/alang/automaton"

// KleeneStarInPlace rewrites n to accept L(n)*: a fresh state becomes the
// sole initial and sole final state, with epsilon transitions to every
// former initial state and from every former final state back to it.
func KleeneStarInPlace(n *automaton.NFA) {
	s := n.NewState()
	for _, i := range n.Initials().Sorted() {
		n.AddEpsilon(s, i)
	}
	n.ClearInitials()
	n.SetInitial(s)

	for _, f := range n.Finals().Sorted() {
		n.AddEpsilon(f, s)
	}
	n.ClearFinals()
	n.SetFinal(s)
}

// KleeneStar returns a new NFA recognizing L(n)*, leaving n unmodified.
func KleeneStar(n *automaton.NFA) *automaton.NFA {
	c := n.Clone()
	KleeneStarInPlace(c)
	return c
}

// KleenePlusInPlace rewrites n to accept L(n)+: as KleeneStarInPlace, but
// the fresh state is only made the sole initial state — the original
// final states are kept, so the empty string is not accepted unless n
// already accepted it.
func KleenePlusInPlace(n *automaton.NFA) {
	s := n.NewState()
	for _, i := range n.Initials().Sorted() {
		n.AddEpsilon(s, i)
	}
	n.ClearInitials()
	n.SetInitial(s)

	for _, f := range n.Finals().Sorted() {
		n.AddEpsilon(f, s)
	}
}

// KleenePlus returns a new NFA recognizing L(n)+, leaving n unmodified.
func KleenePlus(n *automaton.NFA) *automaton.NFA {
	c := n.Clone()
	KleenePlusInPlace(c)
	return c
}
