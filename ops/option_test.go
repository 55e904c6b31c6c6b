package ops

import (
	"testing"

	"github.com/go-alang/alang/alphabet"
	"github.com/go-alang/alang/automaton"
)

func TestOptionAddsEpsilonAcceptance(t *testing.T) {
	n := singleSymbolNFA("a")
	OptionInPlace(n)
	m := mfaOf(t, n)

	if !m.Accepts(nil) {
		t.Error("A? should accept ε")
	}
	if !m.Accepts([]string{"a"}) {
		t.Error("A? should still accept everything A accepts")
	}
}

func TestOptionOnAlreadyEpsilonAcceptingIsNoop(t *testing.T) {
	n := singleSymbolNFA("a")
	OptionInPlace(n) // now accepts ε
	before := mfaOf(t, n).CanonicalString()

	OptionInPlace(n)
	after := mfaOf(t, n).CanonicalString()

	if before != after {
		t.Errorf("Option on an already-ε-accepting automaton changed the language: %q -> %q", before, after)
	}
}

func TestOptionOfEmptyLanguageStaysEmpty(t *testing.T) {
	// ()? stays the empty language (S#=0, F#=0, T#=0); it does not
	// become the ε-accepting S#=1, F#=1: [0], T#=0.
	n := automaton.NewNFA(alphabet.New())
	OptionInPlace(n)

	if !n.IsEmptyLanguage() {
		t.Error("Option on the empty language should leave it empty (spec's chosen resolution)")
	}
}

func TestOptionOfOptionIsOption(t *testing.T) {
	// (A?)? ≡ A?
	n1 := singleSymbolNFA("a")
	OptionInPlace(n1)
	once := mfaOf(t, n1)

	n2 := singleSymbolNFA("a")
	OptionInPlace(n2)
	OptionInPlace(n2)
	twice := mfaOf(t, n2)

	if !once.LanguageEquals(twice) {
		t.Errorf("(A?)? = %q, want A? = %q", twice.CanonicalString(), once.CanonicalString())
	}
}
