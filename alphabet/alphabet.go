// Package alphabet provides the bidirectional mapping between symbol
// strings and the dense integer indices used throughout the automaton
// packages.
package alphabet

import (
	"fmt"
	"strings"
)

// Index identifies a symbol within an Alphabet.
type Index int32

// Invalid is the sentinel returned when a symbol is not present in an
// Alphabet.
const Invalid Index = -1

// Alphabet is an ordered, append-only mapping between symbol strings and
// dense indices. Indices are consecutive starting at 0 and, once assigned,
// are stable for the lifetime of any automaton built against this
// Alphabet.
type Alphabet struct {
	symbols []string
	index   map[string]Index
}

// New creates an empty Alphabet.
func New() *Alphabet {
	return &Alphabet{
		index: make(map[string]Index),
	}
}

// FromSymbols creates an Alphabet seeded with the given symbols, in order,
// skipping duplicates.
func FromSymbols(symbols ...string) *Alphabet {
	a := New()
	a.AddAll(symbols)
	return a
}

// Clone returns an independent copy of a. Mutating the clone never affects
// a, and vice versa.
func (a *Alphabet) Clone() *Alphabet {
	c := &Alphabet{
		symbols: make([]string, len(a.symbols)),
		index:   make(map[string]Index, len(a.index)),
	}
	copy(c.symbols, a.symbols)
	for s, i := range a.index {
		c.index[s] = i
	}
	return c
}

// Count returns the number of symbols in the alphabet.
func (a *Alphabet) Count() int {
	return len(a.symbols)
}

// IndexOf returns the index of symbol, or Invalid if it is not present.
func (a *Alphabet) IndexOf(symbol string) Index {
	if i, ok := a.index[symbol]; ok {
		return i
	}
	return Invalid
}

// Contains reports whether symbol is present in the alphabet.
func (a *Alphabet) Contains(symbol string) bool {
	return a.IndexOf(symbol) != Invalid
}

// SymbolAt returns the symbol at index i, or an *OutOfRangeError if i is
// not currently assigned.
func (a *Alphabet) SymbolAt(i Index) (string, error) {
	if i < 0 || int(i) >= len(a.symbols) {
		return "", &OutOfRangeError{Index: i, Count: len(a.symbols)}
	}
	return a.symbols[i], nil
}

// MustSymbolAt is like SymbolAt but panics on an invalid index. Intended
// for callers that have already validated the index (e.g. transition
// iteration over an automaton's own alphabet).
func (a *Alphabet) MustSymbolAt(i Index) string {
	s, err := a.SymbolAt(i)
	if err != nil {
		panic(err)
	}
	return s
}

// GetOrAdd returns the index of symbol, inserting it at the next
// consecutive index if it is not already present.
func (a *Alphabet) GetOrAdd(symbol string) Index {
	if i, ok := a.index[symbol]; ok {
		return i
	}
	i := Index(len(a.symbols))
	a.symbols = append(a.symbols, symbol)
	a.index[symbol] = i
	return i
}

// AddAll inserts every symbol of symbols not already present, in order.
func (a *Alphabet) AddAll(symbols []string) {
	for _, s := range symbols {
		a.GetOrAdd(s)
	}
}

// UnionWith inserts every symbol of other into a and returns a dense remap
// such that remap[otherIndex] gives the corresponding index in a. The remap
// slice has length other.Count() and is safe to use as a direct array
// lookup.
//
// UnionWith is append-only: symbols already present in a keep their index.
func (a *Alphabet) UnionWith(other *Alphabet) []Index {
	remap := make([]Index, len(other.symbols))
	for i, s := range other.symbols {
		remap[i] = a.GetOrAdd(s)
	}
	return remap
}

// IterSymbols calls fn for every symbol in ascending index order, stopping
// early if fn returns false.
func (a *Alphabet) IterSymbols(fn func(i Index, symbol string) bool) {
	for i, s := range a.symbols {
		if !fn(Index(i), s) {
			return
		}
	}
}

// String renders the debug expansion "i: s" for each symbol, one per line.
func (a *Alphabet) String() string {
	var b strings.Builder
	for i, s := range a.symbols {
		fmt.Fprintf(&b, "%d: %s\n", i, s)
	}
	return b.String()
}

// GoString renders a as a Go source literal, for %#v formatting during
// debugging.
func (a *Alphabet) GoString() string {
	var b strings.Builder
	b.WriteString("alphabet.FromSymbols(")
	for i, s := range a.symbols {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", s)
	}
	b.WriteString(")")
	return b.String()
}

// OutOfRangeError reports an access to an Alphabet using an index that is
// not currently assigned.
type OutOfRangeError struct {
	Index Index
	Count int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("alphabet: index %d out of range [0,%d)", e.Index, e.Count)
}
