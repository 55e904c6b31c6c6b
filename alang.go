package alang

import (
	"github.com/go-alang/alang/alphabet"
	"github.com/go-alang/alang/automaton"
	"github.com/go-alang/alang/compiler"
	"github.com/go-alang/alang/syntax"
)

// Expression is a compiled Alang expression: its source pattern, the
// parsed AST, and the canonical MFA that recognizes its language.
//
// An Expression is immutable and safe for concurrent use by multiple
// goroutines.
type Expression struct {
	pattern string
	ast     *syntax.Node
	mfa     *automaton.MFA
}

// Compile parses pattern as Alang source and compiles it to a canonical
// automaton relative to ctxAlphabet, using DefaultConfig. ctxAlphabet is
// unioned into the result as its universe; it is not mutated.
//
// Example:
//
//	ctx := alphabet.FromSymbols("a", "b")
//	expr, err := alang.Compile("a|b", ctx)
func Compile(pattern string, ctxAlphabet *alphabet.Alphabet) (*Expression, error) {
	return CompileWithConfig(pattern, ctxAlphabet, DefaultConfig())
}

// MustCompile is like Compile but panics if pattern fails to parse or
// compile. Intended for expressions known to be valid, such as those
// embedded as constants.
//
// Example:
//
//	var greeting = alang.MustCompile("hello|hi", alphabet.FromSymbols("hello", "hi"))
func MustCompile(pattern string, ctxAlphabet *alphabet.Alphabet) *Expression {
	expr, err := Compile(pattern, ctxAlphabet)
	if err != nil {
		panic("alang: Compile(" + pattern + "): " + err.Error())
	}
	return expr
}

// CompileWithConfig compiles pattern with an explicit Config, allowing
// the subset-construction work limit to be tuned for pathological
// expressions.
//
// Example:
//
//	cfg := alang.DefaultConfig()
//	cfg.WorkLimit = 100000
//	expr, err := alang.CompileWithConfig("(a|b|c)*", ctx, cfg)
func CompileWithConfig(pattern string, ctxAlphabet *alphabet.Alphabet, cfg Config) (*Expression, error) {
	node, m, err := compiler.Compile(pattern, ctxAlphabet, cfg)
	if err != nil {
		return nil, err
	}
	return &Expression{pattern: pattern, ast: node, mfa: m}, nil
}

// Config tunes the compiler; see compiler.Config.
type Config = compiler.Config

// DefaultConfig returns the Config used when callers do not supply one.
func DefaultConfig() Config {
	return compiler.DefaultConfig()
}

// Accepts reports whether the expression's language contains symbols, a
// sequence of symbol names from the context alphabet.
//
// Example:
//
//	if expr.Accepts([]string{"a", "b"}) {
//	    println("matched!")
//	}
func (e *Expression) Accepts(symbols []string) bool {
	return e.mfa.Accepts(symbols)
}

// String returns the original Alang source pattern.
func (e *Expression) String() string {
	return e.pattern
}

// AST returns the parsed Alang abstract syntax tree.
func (e *Expression) AST() *syntax.Node {
	return e.ast
}

// Automaton returns the compiled canonical MFA.
func (e *Expression) Automaton() *automaton.MFA {
	return e.mfa
}

// CanonicalString returns the compiled automaton's canonical testing
// form (spec §6), suitable for snapshot-based tests.
func (e *Expression) CanonicalString() string {
	return e.mfa.CanonicalString()
}
