package ops

import (
	"github.com/go-alang/alang/alphabet"
	"github.com/go-alang/alang/automaton"
)

// packPair encodes a pair of 32-bit state ids into a single 64-bit key
// for the product construction's work queue and visited map.
func packPair(a, b automaton.State) uint64 {
	return uint64(uint32(a))<<32 | uint64(uint32(b))
}

type productPair struct {
	a, b automaton.State
}

// Intersect computes the product construction of a and b, aligning
// symbols by their string form rather than raw index so the operands may
// use different (even disjoint) alphabets. The result is a's alphabet;
// a transition is only taken when both a's symbol name and b's
// transition for that name exist. The result is canonicalized to an MFA.
//
// If either operand has no initial state, the result is the empty MFA
// over a's alphabet.
func Intersect(a, b *automaton.DFA) (*automaton.MFA, error) {
	if a == b {
		return nil, automaton.ErrAliasedOperands
	}
	if a.Initial() == automaton.InvalidState || b.Initial() == automaton.InvalidState {
		return automaton.NewMFAFromDFA(automaton.NewDFA(a.Alphabet.Clone())), nil
	}

	result := automaton.NewDFA(a.Alphabet.Clone())

	stateOf := map[uint64]automaton.State{packPair(a.Initial(), b.Initial()): 0}
	result.SetInitial(0)
	if a.Finals().Contains(a.Initial()) && b.Finals().Contains(b.Initial()) {
		result.SetFinal(0)
	}

	queue := []productPair{{a.Initial(), b.Initial()}}
	next := automaton.State(1)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curID := stateOf[packPair(cur.a, cur.b)]

		for _, sym := range a.AvailableSymbols(cur.a) {
			name := a.Alphabet.MustSymbolAt(sym)
			bSym := b.Alphabet.IndexOf(name)
			if bSym == alphabet.Invalid {
				continue
			}
			toB := b.Transition(cur.b, bSym)
			if toB == automaton.InvalidState {
				continue
			}
			toA := a.Transition(cur.a, sym)

			key := packPair(toA, toB)
			to, ok := stateOf[key]
			if !ok {
				to = next
				next++
				stateOf[key] = to
				if a.Finals().Contains(toA) && b.Finals().Contains(toB) {
					result.SetFinal(to)
				}
				queue = append(queue, productPair{toA, toB})
			}
			result.SetTransition(curID, sym, to)
		}
	}

	return automaton.NewMFAFromDFA(result), nil
}

// Difference computes L(minuend) \ L(subtrahend) as
// L(minuend) ∩ L(complement(subtrahend)). If subtrahend is the empty
// language, minuend is returned unchanged (A - ∅ ≡ A).
func Difference(minuend, subtrahend *automaton.DFA, workLimit int) (*automaton.MFA, error) {
	if minuend == subtrahend {
		return nil, automaton.ErrAliasedOperands
	}
	if subtrahend.IsEmptyLanguage() {
		return automaton.NewMFAFromDFA(minuend), nil
	}

	// The complement is taken over both alphabets, so minuend symbols the
	// subtrahend never mentions are not dropped by the intersection.
	sub := subtrahend.Clone()
	sub.Alphabet.UnionWith(minuend.Alphabet)
	subMFA, err := Minimize(sub, workLimit)
	if err != nil {
		return nil, err
	}
	comp := Complement(subMFA)
	return Intersect(minuend, comp.ToDFA())
}
