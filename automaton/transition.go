// Package automaton provides the three tiered automaton representations
// (NFA, DFA, MFA) that share a common transition and state-set model.
package automaton

import (
	"fmt"
	"sort"

	"github.com/go-alang/alang/alphabet"
)

// State identifies a state within one automaton. States are plain
// non-negative integers; there is no separate object identity beyond the
// context of the automaton that owns them.
type State int32

// InvalidState is the sentinel returned where no state applies.
const InvalidState State = -1

// Transition is a symbolic (from, symbol, to) edge. Transitions are
// totally ordered by (From, Symbol, To).
type Transition struct {
	From   State
	Symbol alphabet.Index
	To     State
}

// Reversed returns the transition with From and To swapped.
func (t Transition) Reversed() Transition {
	return Transition{From: t.To, Symbol: t.Symbol, To: t.From}
}

// Less reports whether t sorts before other under the canonical
// (From, Symbol, To) order.
func (t Transition) Less(other Transition) bool {
	if t.From != other.From {
		return t.From < other.From
	}
	if t.Symbol != other.Symbol {
		return t.Symbol < other.Symbol
	}
	return t.To < other.To
}

func (t Transition) String() string {
	return fmt.Sprintf("%d->%d #%d", t.From, t.To, t.Symbol)
}

// SortTransitions sorts ts in place by the canonical (From, Symbol, To)
// order.
func SortTransitions(ts []Transition) {
	sort.Slice(ts, func(i, j int) bool { return ts[i].Less(ts[j]) })
}

// EpsilonTransition is a symbol-less (from, to) edge. Totally ordered by
// (From, To). The label "ε" used when printing epsilon transitions is
// output-only: it is never a member of any Alphabet.
type EpsilonTransition struct {
	From State
	To   State
}

// Reversed returns the epsilon transition with From and To swapped.
func (t EpsilonTransition) Reversed() EpsilonTransition {
	return EpsilonTransition{From: t.To, To: t.From}
}

// Less reports whether t sorts before other under the canonical
// (From, To) order.
func (t EpsilonTransition) Less(other EpsilonTransition) bool {
	if t.From != other.From {
		return t.From < other.From
	}
	return t.To < other.To
}

func (t EpsilonTransition) String() string {
	return fmt.Sprintf("%d->%d ε", t.From, t.To)
}

// SortEpsilonTransitions sorts ts in place by the canonical (From, To)
// order.
func SortEpsilonTransitions(ts []EpsilonTransition) {
	sort.Slice(ts, func(i, j int) bool { return ts[i].Less(ts[j]) })
}
