package automaton

import (
	"testing"

	"github.com/go-alang/alang/alphabet"
)

func TestDFASetAndGetTransition(t *testing.T) {
	alpha := alphabet.FromSymbols("a")
	d := NewDFA(alpha)
	a := alpha.IndexOf("a")
	d.SetTransition(0, a, 1)

	if got := d.Transition(0, a); got != 1 {
		t.Errorf("Transition(0, a) = %d, want 1", got)
	}
	if got := d.Transition(1, a); got != InvalidState {
		t.Errorf("Transition(1, a) = %d, want InvalidState", got)
	}
}

func TestDFASetTransitionOverwrites(t *testing.T) {
	alpha := alphabet.FromSymbols("a")
	d := NewDFA(alpha)
	a := alpha.IndexOf("a")
	d.SetTransition(0, a, 1)
	d.SetTransition(0, a, 2)

	if got := d.Transition(0, a); got != 2 {
		t.Errorf("Transition(0, a) = %d, want 2 after overwrite", got)
	}
}

func TestDFAIsEmptyLanguage(t *testing.T) {
	tests := []struct {
		name  string
		build func() *DFA
		want  bool
	}{
		{"no initial", func() *DFA { return NewDFA(alphabet.New()) }, true},
		{
			"initial is final",
			func() *DFA {
				d := NewDFA(alphabet.New())
				d.SetInitial(0)
				d.SetFinal(0)
				return d
			},
			false,
		},
		{
			"final unreachable",
			func() *DFA {
				d := NewDFA(alphabet.New())
				d.SetInitial(0)
				d.SetFinal(1)
				return d
			},
			true,
		},
		{
			"final reachable",
			func() *DFA {
				alpha := alphabet.FromSymbols("a")
				d := NewDFA(alpha)
				d.SetTransition(0, alpha.IndexOf("a"), 1)
				d.SetInitial(0)
				d.SetFinal(1)
				return d
			},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.build().IsEmptyLanguage(); got != tt.want {
				t.Errorf("IsEmptyLanguage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDFAAvailableSymbols(t *testing.T) {
	alpha := alphabet.FromSymbols("a", "b")
	d := NewDFA(alpha)
	a, b := alpha.IndexOf("a"), alpha.IndexOf("b")
	d.SetTransition(0, b, 1)
	d.SetTransition(0, a, 2)

	got := d.AvailableSymbols(0)
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("AvailableSymbols(0) = %v, want [%d, %d]", got, a, b)
	}
}

func TestDFAForEachTransitionOrder(t *testing.T) {
	alpha := alphabet.FromSymbols("a", "b")
	d := NewDFA(alpha)
	a, b := alpha.IndexOf("a"), alpha.IndexOf("b")
	d.SetTransition(1, a, 2)
	d.SetTransition(0, b, 1)
	d.SetTransition(0, a, 1)

	var got []Transition
	d.ForEachTransition(func(t Transition) { got = append(got, t) })

	want := []Transition{{0, a, 1}, {0, b, 1}, {1, a, 2}}
	if len(got) != len(want) {
		t.Fatalf("ForEachTransition() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ForEachTransition() = %v, want %v", got, want)
		}
	}
}

func TestDFAClone(t *testing.T) {
	alpha := alphabet.FromSymbols("a")
	d := NewDFA(alpha)
	d.SetTransition(0, alpha.IndexOf("a"), 1)
	d.SetInitial(0)
	d.SetFinal(1)

	c := d.Clone()
	c.SetTransition(1, alpha.IndexOf("a"), 2)

	if got := d.Transition(1, alpha.IndexOf("a")); got != InvalidState {
		t.Error("mutating clone affected original DFA")
	}
}

func TestDFAStates(t *testing.T) {
	d := NewDFA(alphabet.New())
	if d.States() != 0 {
		t.Errorf("States() = %d, want 0 for empty DFA", d.States())
	}
	d.SetInitial(3)
	if d.States() != 4 {
		t.Errorf("States() = %d, want 4", d.States())
	}
}
