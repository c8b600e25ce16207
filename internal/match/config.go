package match

import (
	"time"

	"zugzwang/internal/chessrules"
)

// MaxSearchDepth bounds recursive move-selection search so a misbehaving
// movement program (one that always requests deeper search) cannot grow
// the call stack without limit.
const MaxSearchDepth = 30

// DefaultTurnBudget is the hard wall-clock ceiling on a single turn,
// including however deep its recursive search goes.
const DefaultTurnBudget = 1000 * time.Millisecond

type Config struct {
	Adapter        chessrules.Adapter
	TurnBudget     time.Duration
	MaxSearchDepth int
}

func (c Config) withDefaults() Config {
	if c.TurnBudget <= 0 {
		c.TurnBudget = DefaultTurnBudget
	}
	if c.MaxSearchDepth <= 0 {
		c.MaxSearchDepth = MaxSearchDepth
	}
	return c
}
