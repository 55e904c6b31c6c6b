package automaton

import (
	"sort"

	"github.com/go-alang/alang/alphabet"
)

// NFA is a mutable non-deterministic finite automaton: it may have
// multiple initial states, epsilon transitions, and more than one
// outgoing transition per (state, symbol). It is the universal
// intermediate form used throughout the operations engine.
type NFA struct {
	Alphabet    *alphabet.Alphabet
	transitions []Transition        // sorted by (From, Symbol, To)
	epsilon     []EpsilonTransition // sorted by (From, To)
	initials    StateSet
	finals      StateSet
	maxState    State // InvalidState iff no state has ever been referenced
}

// NewNFA returns an empty NFA over alpha.
func NewNFA(alpha *alphabet.Alphabet) *NFA {
	if alpha == nil {
		alpha = alphabet.New()
	}
	return &NFA{
		Alphabet: alpha,
		initials: NewStateSet(),
		finals:   NewStateSet(),
		maxState: InvalidState,
	}
}

// Clone returns a deep, independent copy of n, including its own copy of
// the alphabet.
func (n *NFA) Clone() *NFA {
	c := &NFA{
		Alphabet:    n.Alphabet.Clone(),
		transitions: append([]Transition(nil), n.transitions...),
		epsilon:     append([]EpsilonTransition(nil), n.epsilon...),
		initials:    n.initials.Clone(),
		finals:      n.finals.Clone(),
		maxState:    n.maxState,
	}
	return c
}

// FromDFA builds an NFA from a deterministic automaton d. If reversed is
// true, every transition is swapped and the roles of initial/final states
// are exchanged (d's finals become the new initials, d's initial becomes
// the sole new final).
func FromDFA(d *DFA, reversed bool) *NFA {
	n := NewNFA(d.Alphabet.Clone())
	if d.initial == InvalidState {
		return n
	}

	d.ForEachTransition(func(t Transition) {
		if reversed {
			n.AddTransition(t.To, t.Symbol, t.From)
		} else {
			n.AddTransition(t.From, t.Symbol, t.To)
		}
	})

	if reversed {
		for f := range d.finals {
			n.SetInitial(f)
		}
		n.SetFinal(d.initial)
	} else {
		n.SetInitial(d.initial)
		for f := range d.finals {
			n.SetFinal(f)
		}
	}
	return n
}

// FromSequences builds an NFA that is the union of one linear, epsilon-free
// chain per sequence. Each sequence's symbols are inserted into alpha as
// needed. A sequence of length zero produces a fresh initial state that is
// also final (it accepts the empty string).
func FromSequences(alpha *alphabet.Alphabet, sequences [][]string) *NFA {
	n := NewNFA(alpha)
	for _, seq := range sequences {
		n.AddSequence(seq)
	}
	return n
}

// track extends the automaton's max-state upper bound to cover s.
func (n *NFA) track(s State) {
	if s > n.maxState {
		n.maxState = s
	}
}

// AddTransition inserts the symbolic transition (from, symbol, to),
// extending the automaton's max-state bound and keeping the
// transition list sorted. A duplicate transition is a no-op.
func (n *NFA) AddTransition(from State, symbol alphabet.Index, to State) {
	n.track(from)
	n.track(to)
	t := Transition{From: from, Symbol: symbol, To: to}
	i := sort.Search(len(n.transitions), func(i int) bool { return !n.transitions[i].Less(t) })
	if i < len(n.transitions) && n.transitions[i] == t {
		return
	}
	n.transitions = append(n.transitions, Transition{})
	copy(n.transitions[i+1:], n.transitions[i:])
	n.transitions[i] = t
}

// AddTransitions bulk-inserts ts.
func (n *NFA) AddTransitions(ts []Transition) {
	for _, t := range ts {
		n.AddTransition(t.From, t.Symbol, t.To)
	}
}

// AddEpsilon inserts the epsilon transition (from, to).
func (n *NFA) AddEpsilon(from, to State) {
	n.track(from)
	n.track(to)
	t := EpsilonTransition{From: from, To: to}
	i := sort.Search(len(n.epsilon), func(i int) bool { return !n.epsilon[i].Less(t) })
	if i < len(n.epsilon) && n.epsilon[i] == t {
		return
	}
	n.epsilon = append(n.epsilon, EpsilonTransition{})
	copy(n.epsilon[i+1:], n.epsilon[i:])
	n.epsilon[i] = t
}

// AddSequence adds a new linear, epsilon-free chain of transitions from a
// fresh initial state to a fresh final state, spelling out symbols (added
// to the alphabet as needed). The new initial and final states are added
// to the automaton's initial/final sets respectively. A nil or empty
// sequence adds a single state that is both initial and final.
func (n *NFA) AddSequence(symbols []string) {
	start := n.freshState()
	n.SetInitial(start)

	cur := start
	for _, sym := range symbols {
		idx := n.Alphabet.GetOrAdd(sym)
		next := n.freshState()
		n.AddTransition(cur, idx, next)
		cur = next
	}
	n.SetFinal(cur)
}

// NewState allocates and returns a fresh state id, one past the current
// maximum. The new state is not marked initial or final and has no
// transitions; it exists purely as a handle for callers (such as the
// operations engine's Kleene/option constructions) that need to wire up
// a brand-new state themselves.
func (n *NFA) NewState() State {
	return n.freshState()
}

// freshState allocates a new state id one past the current max.
func (n *NFA) freshState() State {
	if n.maxState == InvalidState {
		n.maxState = 0
		return 0
	}
	n.maxState++
	return n.maxState
}

// ClearInitials removes every initial state.
func (n *NFA) ClearInitials() { n.initials = NewStateSet() }

// ClearFinals removes every final state.
func (n *NFA) ClearFinals() { n.finals = NewStateSet() }

// SetInitial marks s as an initial state.
func (n *NFA) SetInitial(s State) {
	n.track(s)
	n.initials.Add(s)
}

// UnsetInitial removes s from the initial set.
func (n *NFA) UnsetInitial(s State) { delete(n.initials, s) }

// SetFinal marks s as a final state.
func (n *NFA) SetFinal(s State) {
	n.track(s)
	n.finals.Add(s)
}

// UnsetFinal removes s from the final set.
func (n *NFA) UnsetFinal(s State) { delete(n.finals, s) }

// Initials returns the set of initial states. The returned set must not
// be mutated.
func (n *NFA) Initials() StateSet { return n.initials }

// Finals returns the set of final states. The returned set must not be
// mutated.
func (n *NFA) Finals() StateSet { return n.finals }

// MaxState returns the automaton's upper bound on state ids, or
// InvalidState if no state has ever been referenced.
func (n *NFA) MaxState() State { return n.maxState }

// States returns the number of states the automaton spans (0 for the
// empty automaton).
func (n *NFA) States() int {
	if n.maxState == InvalidState {
		return 0
	}
	return int(n.maxState) + 1
}

// TransitionsFrom returns every symbolic transition originating at state,
// in (Symbol, To) order.
func (n *NFA) TransitionsFrom(state State) []Transition {
	lo := sort.Search(len(n.transitions), func(i int) bool { return n.transitions[i].From >= state })
	hi := sort.Search(len(n.transitions), func(i int) bool { return n.transitions[i].From > state })
	return n.transitions[lo:hi]
}

// TransitionsFromSymbol returns every transition originating at state on
// the given symbol, in ascending To order.
func (n *NFA) TransitionsFromSymbol(state State, symbol alphabet.Index) []Transition {
	from := n.TransitionsFrom(state)
	lo := sort.Search(len(from), func(i int) bool { return from[i].Symbol >= symbol })
	hi := sort.Search(len(from), func(i int) bool { return from[i].Symbol > symbol })
	return from[lo:hi]
}

// EpsilonSuccessors returns the one-step epsilon successors of state.
func (n *NFA) EpsilonSuccessors(state State) []State {
	lo := sort.Search(len(n.epsilon), func(i int) bool { return n.epsilon[i].From >= state })
	hi := sort.Search(len(n.epsilon), func(i int) bool { return n.epsilon[i].From > state })
	out := make([]State, hi-lo)
	for i, t := range n.epsilon[lo:hi] {
		out[i] = t.To
	}
	return out
}

// AvailableSymbols returns the set of symbols with an outgoing transition
// from any state in states.
func (n *NFA) AvailableSymbols(states StateSet) map[alphabet.Index]struct{} {
	symbols := make(map[alphabet.Index]struct{})
	for s := range states {
		for _, t := range n.TransitionsFrom(s) {
			symbols[t.Symbol] = struct{}{}
		}
	}
	return symbols
}

// EpsilonClosure extends states in place to its epsilon-closure: a
// fixed-point work-list search over epsilon transitions. Self-loops
// terminate naturally because the set guards against re-insertion.
func (n *NFA) EpsilonClosure(states StateSet) {
	queue := states.Sorted()
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, succ := range n.EpsilonSuccessors(s) {
			if states.Add(succ) {
				queue = append(queue, succ)
			}
		}
	}
}

// ReachableStates computes δ̂(from, symbol): the set of states reachable
// by (1) closing from under epsilon, (2) taking one step on symbol,
// (3) closing the result under epsilon again. from is not mutated.
func (n *NFA) ReachableStates(from StateSet, symbol alphabet.Index) StateSet {
	closed := from.Clone()
	n.EpsilonClosure(closed)

	next := NewStateSet()
	for s := range closed {
		for _, t := range n.TransitionsFromSymbol(s, symbol) {
			next.Add(t.To)
		}
	}
	n.EpsilonClosure(next)
	return next
}

// AcceptsEpsilon reports whether the epsilon-closure of the initial set
// intersects the final set, i.e. whether the automaton accepts the empty
// string.
func (n *NFA) AcceptsEpsilon() bool {
	closed := n.initials.Clone()
	n.EpsilonClosure(closed)
	return closed.Intersects(n.finals)
}

// IsEmptyLanguage reports whether the automaton accepts no strings at
// all. The max-state sentinel shortcut is valid because every
// construction that produces a non-empty language records at least one
// state.
func (n *NFA) IsEmptyLanguage() bool {
	if n.maxState == InvalidState {
		return true
	}
	if len(n.initials) == 0 || len(n.finals) == 0 {
		return true
	}

	seen := NewStateSet()
	queue := n.initials.Sorted()
	for _, s := range queue {
		seen.Add(s)
	}
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		closure := NewStateSet(s)
		n.EpsilonClosure(closure)
		if closure.Intersects(n.finals) {
			return false
		}

		for _, t := range n.TransitionsFrom(s) {
			if seen.Add(t.To) {
				queue = append(queue, t.To)
			}
		}
	}
	return true
}

// ForEachTransition calls fn for every symbolic transition in (From,
// Symbol, To) order.
func (n *NFA) ForEachTransition(fn func(Transition)) {
	for _, t := range n.transitions {
		fn(t)
	}
}

// ForEachEpsilon calls fn for every epsilon transition in (From, To)
// order.
func (n *NFA) ForEachEpsilon(fn func(EpsilonTransition)) {
	for _, t := range n.epsilon {
		fn(t)
	}
}
