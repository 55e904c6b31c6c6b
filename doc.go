// Package alang implements Alang, a regex-like domain-specific language
// for describing finite-state automata over symbolic (string) alphabets,
// together with a set-algebraic operations engine.
//
// Alang expressions combine symbols with union (|), difference (-),
// intersection (&), concatenation (juxtaposition), option (?), Kleene
// star (*), Kleene plus (+), and complement (~), plus a wildcard (.) and
// an empty-language literal (()). Every expression compiles, relative to
// a caller-supplied context alphabet, to a canonical minimal finite
// automaton (MFA): deterministic, minimal, with no unreachable or dead
// states and a frozen state-numbering scheme, so that equal languages
// compile to byte-identical canonical string forms.
//
// Basic usage:
//
//	ctx := alphabet.FromSymbols("a", "b", "c")
//	expr, err := alang.Compile("(a|b)c*", ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if expr.Accepts([]string{"a", "c", "c"}) {
//	    fmt.Println("matched!")
//	}
//
// The three automaton tiers (NFA, DFA, MFA), the operations engine, and
// the Alang parser are also exported directly for callers that need to
// build or manipulate automata without going through Alang source text:
// see the automaton, ops, and syntax packages.
package alang
