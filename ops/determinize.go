// Package ops implements the operations engine: determinization,
// Brzozowski minimization, complement, the boolean operations, the
// NFA-level Kleene/option/concatenation constructions, reversal,
// equivalence, and wildcard expansion.
package ops

import (
	"github.com/go-alang/alang/automaton"
)

// DefaultWorkLimit bounds the number of (state-set, symbol) pairs subset
// construction will expand before giving up, guarding against runaway
// determinization on pathological inputs.
const DefaultWorkLimit = 10000

// subsetWork pairs a frozen epsilon-closed state set with the DFA state
// it has been assigned.
type subsetWork struct {
	set automaton.IntSet
	id  automaton.State
}

// Determinize runs subset construction over n, producing an equivalent
// DFA. workLimit caps the number of (state-set, symbol) expansions;
// exceeding it returns an *automaton.DomainError of kind
// WorkLimitExceeded rather than continuing indefinitely.
func Determinize(n *automaton.NFA, workLimit int) (*automaton.DFA, error) {
	d := automaton.NewDFA(n.Alphabet.Clone())
	if len(n.Initials()) == 0 {
		return d, nil
	}

	initial := n.Initials().Clone()
	n.EpsilonClosure(initial)
	frozen := initial.Freeze()

	d.SetInitial(0)
	if frozen.IntersectsStateSet(n.Finals()) {
		d.SetFinal(0)
	}

	stateOf := map[string]automaton.State{frozen.Key(): 0}
	queue := []subsetWork{{set: frozen, id: 0}}
	nextState := automaton.State(1)
	spent := 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		members := automaton.NewStateSet(cur.set.Items()...)
		for sym := range n.AvailableSymbols(members) {
			spent++
			if spent > workLimit {
				return nil, &automaton.DomainError{
					Kind:    automaton.WorkLimitExceeded,
					Message: "determinize: exceeded configured work limit",
				}
			}

			succ := n.ReachableStates(members, sym)
			if len(succ) == 0 {
				continue
			}
			succFrozen := succ.Freeze()

			to, ok := stateOf[succFrozen.Key()]
			if !ok {
				to = nextState
				nextState++
				stateOf[succFrozen.Key()] = to
				if succFrozen.IntersectsStateSet(n.Finals()) {
					d.SetFinal(to)
				}
				queue = append(queue, subsetWork{set: succFrozen, id: to})
			}
			d.SetTransition(cur.id, sym, to)
		}
	}

	return d, nil
}
