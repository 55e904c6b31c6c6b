package automaton

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/go-alang/alang/alphabet"
)

// MFA is an immutable, canonical minimal finite automaton. Its numbering
// and transition order are entirely determined by the canonical-form
// rules (spec §4.4): states are numbered by breadth-first traversal from
// the initial state, visiting outgoing transitions in ascending (symbol,
// destination) order; there are no unreachable or dead states; and
// transitions are stored in ascending (From, Symbol, To) order. Because
// every step of construction is deterministic, compiling the same
// language twice over the same alphabet always yields byte-identical
// canonical strings.
type MFA struct {
	Alphabet    *alphabet.Alphabet
	transitions []Transition // sorted, canonical order
	finals      []State      // sorted
	stateCount  int
	table       map[uint64]State // packed (state,symbol) -> successor, for StatePath
}

// EmptyMFA returns the canonical empty-language MFA over alpha.
func EmptyMFA(alpha *alphabet.Alphabet) *MFA {
	if alpha == nil {
		alpha = alphabet.New()
	}
	return &MFA{Alphabet: alpha, table: map[uint64]State{}}
}

// NewMFAFromDFA canonicalizes d into an MFA: it prunes dead states
// (states that cannot reach a final state) and unreachable states, then
// renumbers the survivors by BFS from the initial state, breaking ties
// between outgoing transitions by ascending (symbol index, existing
// destination state id) — the frozen tie-break rule of spec §9.
//
// d is expected to already be minimal (the result of Brzozowski
// minimization); NewMFAFromDFA only removes unreachable/dead states and
// renumbers, it does not merge equivalent states.
func NewMFAFromDFA(d *DFA) *MFA {
	alpha := d.Alphabet.Clone()
	if d.Initial() == InvalidState {
		return EmptyMFA(alpha)
	}

	n := d.States()
	coReachable := liveToFinal(d, n)
	if !coReachable.Test(uint(d.Initial())) {
		return EmptyMFA(alpha)
	}

	renum := map[State]State{d.Initial(): 0}
	order := []State{d.Initial()}
	queue := []State{d.Initial()}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		var outs []Transition
		for _, sym := range d.AvailableSymbols(s) {
			to := d.Transition(s, sym)
			if to == InvalidState || !coReachable.Test(uint(to)) {
				continue
			}
			outs = append(outs, Transition{From: s, Symbol: sym, To: to})
		}
		sort.Slice(outs, func(i, j int) bool {
			if outs[i].Symbol != outs[j].Symbol {
				return outs[i].Symbol < outs[j].Symbol
			}
			return outs[i].To < outs[j].To
		})

		for _, t := range outs {
			if _, ok := renum[t.To]; !ok {
				renum[t.To] = State(len(order))
				order = append(order, t.To)
				queue = append(queue, t.To)
			}
		}
	}

	var transitions []Transition
	table := make(map[uint64]State)
	for oldState, newState := range renum {
		for _, sym := range d.AvailableSymbols(oldState) {
			to := d.Transition(oldState, sym)
			newTo, ok := renum[to]
			if !ok {
				continue // target is dead/unreachable, excluded from the MFA
			}
			transitions = append(transitions, Transition{From: newState, Symbol: sym, To: newTo})
			table[packKey(newState, sym)] = newTo
		}
	}
	SortTransitions(transitions)

	var finals []State
	for oldState, newState := range renum {
		if d.Finals().Contains(oldState) {
			finals = append(finals, newState)
		}
	}
	sort.Slice(finals, func(i, j int) bool { return finals[i] < finals[j] })

	return &MFA{
		Alphabet:    alpha,
		transitions: transitions,
		finals:      finals,
		stateCount:  len(order),
		table:       table,
	}
}

// liveToFinal returns the bitset of states that can reach some final
// state of d, computed by a backward search from the final set over the
// reversed transition relation (spec §2's domain-stack wiring: see
// DESIGN.md for the bits-and-blooms/bitset grounding).
func liveToFinal(d *DFA, n int) *bitset.BitSet {
	live := bitset.New(uint(n))
	reverse := make(map[State][]State)
	d.ForEachTransition(func(t Transition) {
		reverse[t.To] = append(reverse[t.To], t.From)
	})

	var queue []State
	for f := range d.Finals() {
		if !live.Test(uint(f)) {
			live.Set(uint(f))
			queue = append(queue, f)
		}
	}
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, p := range reverse[s] {
			if !live.Test(uint(p)) {
				live.Set(uint(p))
				queue = append(queue, p)
			}
		}
	}
	return live
}

// Initial returns the automaton's initial state (always 0 for a
// non-empty language), or InvalidState if the language is empty.
func (m *MFA) Initial() State {
	if m.stateCount == 0 {
		return InvalidState
	}
	return 0
}

// States returns the number of states in the canonical automaton.
func (m *MFA) States() int { return m.stateCount }

// Finals returns the sorted slice of final states. The returned slice
// must not be mutated.
func (m *MFA) Finals() []State { return m.finals }

// IsFinal reports whether s is a final state.
func (m *MFA) IsFinal(s State) bool {
	i := sort.Search(len(m.finals), func(i int) bool { return m.finals[i] >= s })
	return i < len(m.finals) && m.finals[i] == s
}

// IsEmptyLanguage reports whether the automaton accepts no strings.
func (m *MFA) IsEmptyLanguage() bool { return m.stateCount == 0 }

// ForEachTransition calls fn once per transition, in canonical order.
func (m *MFA) ForEachTransition(fn func(Transition)) {
	for _, t := range m.transitions {
		fn(t)
	}
}

// Transition returns the successor of (state, symbol), or InvalidState if
// none exists.
func (m *MFA) Transition(state State, symbol alphabet.Index) State {
	if to, ok := m.table[packKey(state, symbol)]; ok {
		return to
	}
	return InvalidState
}

// StatePath deterministically executes symbols from the initial state,
// returning the sequence of states visited (including the initial state
// as path[0]). It stops and reports failure (ok == false) on the first
// symbol with no outgoing transition — either because the symbol is
// unknown to the alphabet or because the current state has no transition
// for it.
func (m *MFA) StatePath(symbols []string) (path []State, ok bool) {
	if m.stateCount == 0 {
		return nil, false
	}
	state := m.Initial()
	path = append(path, state)
	for _, sym := range symbols {
		idx := m.Alphabet.IndexOf(sym)
		if idx == alphabet.Invalid {
			return path, false
		}
		next := m.Transition(state, idx)
		if next == InvalidState {
			return path, false
		}
		state = next
		path = append(path, state)
	}
	return path, true
}

// Accepts reports whether the automaton accepts the sequence symbols.
func (m *MFA) Accepts(symbols []string) bool {
	path, ok := m.StatePath(symbols)
	if !ok {
		return false
	}
	return m.IsFinal(path[len(path)-1])
}

// LanguageEquals reports whether m and other recognize the same
// language: equal alphabets after projection onto the symbols actually
// used, equal canonical transition order, and equal final-state sets.
// In practice this reduces to comparing canonical strings, since the
// canonical string already encodes transitions by symbol name (the
// alphabet projection) rather than raw index.
func (m *MFA) LanguageEquals(other *MFA) bool {
	return m.CanonicalString() == other.CanonicalString()
}

// CanonicalString renders the canonical testing form described in
// spec §6:
//
//	S#=<n>, F#=<k>: [<finals>], T#=<m>: [<transitions>]
//
// with the F# and T# segments printed bare (no colon or brackets) when
// their count is zero. The empty automaton prints "S#=0, F#=0, T#=0".
func (m *MFA) CanonicalString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "S#=%d, ", m.stateCount)

	if len(m.finals) == 0 {
		b.WriteString("F#=0, ")
	} else {
		parts := make([]string, len(m.finals))
		for i, f := range m.finals {
			parts[i] = fmt.Sprintf("%d", f)
		}
		fmt.Fprintf(&b, "F#=%d: [%s], ", len(m.finals), strings.Join(parts, ", "))
	}

	if len(m.transitions) == 0 {
		b.WriteString("T#=0")
	} else {
		parts := make([]string, len(m.transitions))
		for i, t := range m.transitions {
			parts[i] = fmt.Sprintf("%d->%d %s", t.From, t.To, m.Alphabet.MustSymbolAt(t.Symbol))
		}
		fmt.Fprintf(&b, "T#=%d: [%s]", len(m.transitions), strings.Join(parts, ", "))
	}

	return b.String()
}

// ToDFA returns a DFA spanning the same states, transitions, initial, and
// final states as m. Useful for feeding an MFA back through determinize
// or minimize (e.g. to verify minimization stability).
func (m *MFA) ToDFA() *DFA {
	d := NewDFA(m.Alphabet.Clone())
	if m.Initial() == InvalidState {
		return d
	}
	d.SetInitial(m.Initial())
	for _, f := range m.finals {
		d.SetFinal(f)
	}
	m.ForEachTransition(func(t Transition) {
		d.SetTransition(t.From, t.Symbol, t.To)
	})
	return d
}

func (m *MFA) String() string { return m.CanonicalString() }
