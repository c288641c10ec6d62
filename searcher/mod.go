package searcher

// Hyperparameters for MCTS

// CSquared is the squared exploration constant (C = sqrt(2)).
const CSquared = 2.0

// Playout outcomes, scored from the perspective of the side to move at the
// start of the playout.
const (
	Win  = 1.0
	Draw = 0.0
	Loss = -Win
)
