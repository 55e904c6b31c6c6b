package alphabet

import "testing"

func TestGetOrAdd(t *testing.T) {
	tests := []struct {
		name    string
		inserts []string
		want    map[string]Index
	}{
		{"empty", nil, map[string]Index{}},
		{"single", []string{"a"}, map[string]Index{"a": 0}},
		{"dedup", []string{"a", "b", "a"}, map[string]Index{"a": 0, "b": 1}},
		{"order", []string{"x", "y", "z"}, map[string]Index{"x": 0, "y": 1, "z": 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New()
			for _, s := range tt.inserts {
				a.GetOrAdd(s)
			}
			if a.Count() != len(tt.want) {
				t.Fatalf("Count() = %d, want %d", a.Count(), len(tt.want))
			}
			for s, want := range tt.want {
				if got := a.IndexOf(s); got != want {
					t.Errorf("IndexOf(%q) = %d, want %d", s, got, want)
				}
			}
		})
	}
}

func TestIndexOfMissing(t *testing.T) {
	a := FromSymbols("a", "b")
	if got := a.IndexOf("c"); got != Invalid {
		t.Errorf("IndexOf(missing) = %d, want Invalid", got)
	}
}

func TestSymbolAtOutOfRange(t *testing.T) {
	a := FromSymbols("a")
	if _, err := a.SymbolAt(5); err == nil {
		t.Fatal("expected error for out-of-range index")
	}
	if _, err := a.SymbolAt(-1); err == nil {
		t.Fatal("expected error for negative index")
	}
	s, err := a.SymbolAt(0)
	if err != nil || s != "a" {
		t.Fatalf("SymbolAt(0) = %q, %v, want \"a\", nil", s, err)
	}
}

func TestUnionWith(t *testing.T) {
	a := FromSymbols("a", "b")
	other := FromSymbols("b", "c")

	remap := a.UnionWith(other)

	if a.Count() != 3 {
		t.Fatalf("a.Count() = %d, want 3", a.Count())
	}
	if got := remap[0]; got != a.IndexOf("b") {
		t.Errorf("remap[0] = %d, want %d", got, a.IndexOf("b"))
	}
	if got := remap[1]; got != a.IndexOf("c") {
		t.Errorf("remap[1] = %d, want %d", got, a.IndexOf("c"))
	}
	// a's own symbols keep their original index.
	if a.IndexOf("a") != 0 || a.IndexOf("b") != 1 {
		t.Errorf("union mutated pre-existing indices: a=%d b=%d", a.IndexOf("a"), a.IndexOf("b"))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := FromSymbols("a", "b")
	c := a.Clone()
	c.GetOrAdd("c")

	if a.Contains("c") {
		t.Error("mutating clone affected original")
	}
	if !c.Contains("a") || !c.Contains("b") || !c.Contains("c") {
		t.Error("clone missing symbols from original")
	}
}

func TestIterSymbolsOrderAndEarlyStop(t *testing.T) {
	a := FromSymbols("a", "b", "c")

	var seen []string
	a.IterSymbols(func(i Index, s string) bool {
		seen = append(seen, s)
		return true
	})
	want := []string{"a", "b", "c"}
	for i, s := range want {
		if seen[i] != s {
			t.Fatalf("seen = %v, want %v", seen, want)
		}
	}

	var count int
	a.IterSymbols(func(i Index, s string) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("early stop: count = %d, want 1", count)
	}
}
