package model

// TurnOutputs carries the six running totals a movement program may read:
// the first, previous, and current iteration's pre- and post-move board
// scan totals. "Iteration" here means one step of the per-turn procedure,
// whether that step is a real turn or a hypothetical look-ahead recursion.
type TurnOutputs struct {
	FirstPre, FirstPost int
	PrevPre, PrevPost   int
	ThisPre, ThisPost   int
}

// TurnContext is everything a tree evaluation needs beyond the square it is
// being evaluated at: whose turn it conceptually is, the position being
// scored, the agent whose memory and programs are in play, how deep the
// current search chain has gone, and the running totals gathered so far.
type TurnContext struct {
	Agent   *Agent
	Board   BoardView
	Color   Color
	Depth   int
	Outputs TurnOutputs
}
