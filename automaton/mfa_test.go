package automaton

import (
	"testing"

	"github.com/go-alang/alang/alphabet"
)

func TestMFACanonicalStringSingleSymbol(t *testing.T) {
	alpha := alphabet.FromSymbols("a")
	a := alpha.IndexOf("a")
	d := NewDFA(alpha)
	d.SetTransition(0, a, 1)
	d.SetInitial(0)
	d.SetFinal(1)

	m := NewMFAFromDFA(d)
	want := "S#=2, F#=1: [1], T#=1: [0->1 a]"
	if got := m.CanonicalString(); got != want {
		t.Errorf("CanonicalString() = %q, want %q", got, want)
	}
}

func TestMFACanonicalStringEmpty(t *testing.T) {
	m := NewMFAFromDFA(NewDFA(alphabet.New()))
	want := "S#=0, F#=0, T#=0"
	if got := m.CanonicalString(); got != want {
		t.Errorf("CanonicalString() = %q, want %q", got, want)
	}
	if !m.IsEmptyLanguage() {
		t.Error("IsEmptyLanguage() = false, want true")
	}
}

func TestMFACanonicalStringAcceptsEmptyStringOnly(t *testing.T) {
	d := NewDFA(alphabet.New())
	d.SetInitial(0)
	d.SetFinal(0)

	m := NewMFAFromDFA(d)
	want := "S#=1, F#=1: [0], T#=0"
	if got := m.CanonicalString(); got != want {
		t.Errorf("CanonicalString() = %q, want %q", got, want)
	}
}

func TestMFAPrunesDeadAndUnreachableStates(t *testing.T) {
	alpha := alphabet.FromSymbols("a", "b")
	a, b := alpha.IndexOf("a"), alpha.IndexOf("b")
	d := NewDFA(alpha)
	d.SetTransition(0, a, 1) // reachable, co-reachable
	d.SetTransition(1, b, 2) // dead: 2 cannot reach a final
	d.SetTransition(3, a, 1) // unreachable from 0
	d.SetInitial(0)
	d.SetFinal(1)

	m := NewMFAFromDFA(d)
	if m.States() != 2 {
		t.Fatalf("States() = %d, want 2 (states 2 and 3 should be pruned)", m.States())
	}
	want := "S#=2, F#=1: [1], T#=1: [0->1 a]"
	if got := m.CanonicalString(); got != want {
		t.Errorf("CanonicalString() = %q, want %q", got, want)
	}
}

func TestMFAInitialNotCoReachableIsEmptyLanguage(t *testing.T) {
	alpha := alphabet.FromSymbols("a")
	a := alpha.IndexOf("a")
	d := NewDFA(alpha)
	d.SetTransition(0, a, 1)
	d.SetInitial(0)
	d.SetFinal(2) // unreachable final: initial cannot reach any final state

	m := NewMFAFromDFA(d)
	if !m.IsEmptyLanguage() {
		t.Error("IsEmptyLanguage() = false, want true")
	}
}

func TestMFAStatePathAndAccepts(t *testing.T) {
	alpha := alphabet.FromSymbols("a", "b")
	a, b := alpha.IndexOf("a"), alpha.IndexOf("b")
	d := NewDFA(alpha)
	d.SetTransition(0, a, 1)
	d.SetTransition(1, b, 2)
	d.SetInitial(0)
	d.SetFinal(2)

	m := NewMFAFromDFA(d)

	if !m.Accepts([]string{"a", "b"}) {
		t.Error("Accepts([a b]) = false, want true")
	}
	if m.Accepts([]string{"a"}) {
		t.Error("Accepts([a]) = true, want false")
	}
	if m.Accepts([]string{"a", "c"}) {
		t.Error("Accepts([a c]) = true, want false for unknown symbol")
	}

	path, ok := m.StatePath([]string{"a", "b"})
	if !ok || len(path) != 3 {
		t.Fatalf("StatePath([a b]) = %v, %v, want a 3-state path", path, ok)
	}
}

func TestMFALanguageEquals(t *testing.T) {
	build := func() *MFA {
		alpha := alphabet.FromSymbols("a")
		a := alpha.IndexOf("a")
		d := NewDFA(alpha)
		d.SetTransition(0, a, 1)
		d.SetInitial(0)
		d.SetFinal(1)
		return NewMFAFromDFA(d)
	}

	m1, m2 := build(), build()
	if !m1.LanguageEquals(m2) {
		t.Error("LanguageEquals() = false for two MFAs built the same way")
	}

	other := NewMFAFromDFA(NewDFA(alphabet.New()))
	if m1.LanguageEquals(other) {
		t.Error("LanguageEquals() = true, want false for different languages")
	}
}

func TestMFATieBreakOrdersBySymbolThenDestination(t *testing.T) {
	// Regression for the frozen canonical numbering rule (ascending
	// symbol index, then ascending existing destination id): from state
	// 0, the "b" edge targets the lower-numbered old state, but "a" must
	// still be discovered first because symbol order outranks
	// destination order.
	alpha := alphabet.FromSymbols("a", "b")
	a, b := alpha.IndexOf("a"), alpha.IndexOf("b")
	d := NewDFA(alpha)
	d.SetTransition(0, b, 1)
	d.SetTransition(0, a, 2)
	d.SetInitial(0)
	d.SetFinal(1)
	d.SetFinal(2)

	m := NewMFAFromDFA(d)
	// "a" (lower symbol index) must be renumbered to state 1 (discovered
	// first), "b" to state 2, regardless of their original DFA ids.
	want := "S#=3, F#=2: [1, 2], T#=2: [0->1 a, 0->2 b]"
	if got := m.CanonicalString(); got != want {
		t.Errorf("CanonicalString() = %q, want %q", got, want)
	}
}
