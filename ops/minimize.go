package ops

import "github.com/go-alang/alang/automaton"

// Minimize runs Brzozowski minimization on d: reverse, determinize,
// reverse, determinize. The result is canonicalized into an MFA, which
// also prunes any unreachable or dead states left over from the
// reversals.
func Minimize(d *automaton.DFA, workLimit int) (*automaton.MFA, error) {
	step1, err := Determinize(automaton.FromDFA(d, true), workLimit)
	if err != nil {
		return nil, err
	}
	step2, err := Determinize(automaton.FromDFA(step1, true), workLimit)
	if err != nil {
		return nil, err
	}
	return automaton.NewMFAFromDFA(step2), nil
}

// MinimizeMFA re-minimizes an already-canonical MFA. Testable property:
// MinimizeMFA(MinimizeMFA(m)) produces the same canonical string as
// MinimizeMFA(m) — minimization is idempotent.
func MinimizeMFA(m *automaton.MFA, workLimit int) (*automaton.MFA, error) {
	return Minimize(m.ToDFA(), workLimit)
}
