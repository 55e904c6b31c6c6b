package automaton

import (
	"sort"

	"github.com/go-alang/alang/alphabet"
)

// packKey packs a (state, symbol) pair into a single map key, as spec §3
// describes for the DFA's transition table.
func packKey(state State, symbol alphabet.Index) uint64 {
	return uint64(uint32(state))<<32 | uint64(uint32(symbol))
}

// DFA is a mutable deterministic finite automaton: a single initial
// state, at most one outgoing transition per (state, symbol), and no
// epsilon transitions.
type DFA struct {
	Alphabet *alphabet.Alphabet
	table    map[uint64]State // packed (state, symbol) -> successor
	initial  State
	finals   StateSet
	maxState State
}

// NewDFA returns an empty DFA over alpha.
func NewDFA(alpha *alphabet.Alphabet) *DFA {
	if alpha == nil {
		alpha = alphabet.New()
	}
	return &DFA{
		Alphabet: alpha,
		table:    make(map[uint64]State),
		initial:  InvalidState,
		finals:   NewStateSet(),
		maxState: InvalidState,
	}
}

// Clone returns a deep, independent copy of d.
func (d *DFA) Clone() *DFA {
	c := &DFA{
		Alphabet: d.Alphabet.Clone(),
		table:    make(map[uint64]State, len(d.table)),
		initial:  d.initial,
		finals:   d.finals.Clone(),
		maxState: d.maxState,
	}
	for k, v := range d.table {
		c.table[k] = v
	}
	return c
}

func (d *DFA) track(s State) {
	if s > d.maxState {
		d.maxState = s
	}
}

// SetTransition records (or replaces) the successor for (state, symbol).
// The map keyed by (state, symbol) enforces single-valuedness, so this
// call simply overwrites any prior successor, matching "add-or-replace"
// semantics.
func (d *DFA) SetTransition(state State, symbol alphabet.Index, to State) {
	d.track(state)
	d.track(to)
	d.table[packKey(state, symbol)] = to
}

// Transition returns the successor of (state, symbol), or InvalidState if
// none is recorded.
func (d *DFA) Transition(state State, symbol alphabet.Index) State {
	if to, ok := d.table[packKey(state, symbol)]; ok {
		return to
	}
	return InvalidState
}

// SetInitial sets the automaton's single initial state.
func (d *DFA) SetInitial(s State) {
	d.track(s)
	d.initial = s
}

// Initial returns the automaton's initial state, or InvalidState if none
// has been set.
func (d *DFA) Initial() State { return d.initial }

// SetFinal marks s as a final state.
func (d *DFA) SetFinal(s State) {
	d.track(s)
	d.finals.Add(s)
}

// UnsetFinal removes s from the final set.
func (d *DFA) UnsetFinal(s State) { delete(d.finals, s) }

// Finals returns the set of final states. The returned set must not be
// mutated.
func (d *DFA) Finals() StateSet { return d.finals }

// MaxState returns the automaton's upper bound on state ids.
func (d *DFA) MaxState() State { return d.maxState }

// States returns the number of states the automaton spans.
func (d *DFA) States() int {
	if d.maxState == InvalidState {
		return 0
	}
	return int(d.maxState) + 1
}

// IsEmptyLanguage reports whether the automaton accepts no strings.
func (d *DFA) IsEmptyLanguage() bool {
	if d.initial == InvalidState {
		return true
	}
	seen := NewStateSet(d.initial)
	queue := []State{d.initial}
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if d.finals.Contains(s) {
			return false
		}
		for _, t := range d.transitionsFrom(s) {
			if seen.Add(t.To) {
				queue = append(queue, t.To)
			}
		}
	}
	return true
}

// transitionsFrom returns every transition from state, sorted by symbol.
// This is O(|table|) and intended for algorithms that already iterate the
// whole automaton (canonicalization, reversal); hot per-symbol lookups
// should use Transition instead.
func (d *DFA) transitionsFrom(state State) []Transition {
	var out []Transition
	for k, to := range d.table {
		s := State(int32(k >> 32))
		if s != state {
			continue
		}
		sym := alphabet.Index(int32(k))
		out = append(out, Transition{From: s, Symbol: sym, To: to})
	}
	SortTransitions(out)
	return out
}

// ForEachTransition calls fn once per transition, in ascending (From,
// Symbol, To) order.
func (d *DFA) ForEachTransition(fn func(Transition)) {
	ts := make([]Transition, 0, len(d.table))
	for k, to := range d.table {
		s := State(int32(k >> 32))
		sym := alphabet.Index(int32(k))
		ts = append(ts, Transition{From: s, Symbol: sym, To: to})
	}
	SortTransitions(ts)
	for _, t := range ts {
		fn(t)
	}
}

// AvailableSymbols returns the symbols with an outgoing transition from
// state, in ascending order.
func (d *DFA) AvailableSymbols(state State) []alphabet.Index {
	var syms []alphabet.Index
	for k := range d.table {
		if State(int32(k>>32)) == state {
			syms = append(syms, alphabet.Index(int32(k)))
		}
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}
