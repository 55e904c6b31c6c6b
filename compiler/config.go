package compiler

import "github.com/go-alang/alang/ops"

// Config holds the compiler's runtime tunables. There is no external
// config-file surface: the only knob is a guard against runaway
// determinization on pathological Alang expressions.
type Config struct {
	// WorkLimit bounds the number of (state-set, symbol) expansions
	// made by any single determinization performed while lowering
	// an expression. Zero means DefaultConfig's value.
	WorkLimit int
}

// DefaultConfig returns the Config used when callers do not supply one.
func DefaultConfig() Config {
	return Config{WorkLimit: ops.DefaultWorkLimit}
}

func (c Config) workLimit() int {
	if c.WorkLimit <= 0 {
		return ops.DefaultWorkLimit
	}
	return c.WorkLimit
}
