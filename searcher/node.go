package searcher

import (
	"math"

	"gambit/game"
)

// node is the only mutable entity of the search. Children are owned by their
// parent, so the whole tree is released as soon as the search that built it
// returns. moves and children are parallel: moves[i] leads to children[i];
// together with unexplored they always cover the full legal-move set of the
// node's state, with no overlap.
type node struct {
	state      game.State
	unexplored []game.Move
	moves      []game.Move
	children   []*node
	rewards    float64
	visits     int
	terminal   bool
}

func newNode(state game.State) *node {
	n := &node{state: state}
	n.terminal = state.Status() != game.Ongoing
	if !n.terminal {
		n.unexplored = state.LegalMoves()
	}
	return n
}

// expandable reports whether the node still has a legal move without a child.
func (n *node) expandable() bool {
	return !n.terminal && len(n.unexplored) > 0
}

// expand materializes one unexplored move as a new child and returns it.
// Moves are taken from the back of the list; the order is not load-bearing
// since every child gets visited before any sibling is revisited.
func (n *node) expand() *node {
	last := len(n.unexplored) - 1
	move := n.unexplored[last]
	n.unexplored = n.unexplored[:last]

	child := newNode(n.state.Play(move))
	n.moves = append(n.moves, move)
	n.children = append(n.children, child)
	return child
}

// selectChild returns the child with the max UCB1 score, first one winning
// ties. Only called on fully expanded nodes with at least one child.
func (n *node) selectChild() *node {
	parentVisits := n.visits
	if parentVisits < 1 { // Prevent ln(0)
		parentVisits = 1
	}
	normalizer := CSquared * math.Log(float64(parentVisits))

	best := n.children[0]
	bestScore := math.Inf(-1)
	for _, child := range n.children {
		score := ucb1(child.rewards, child.visits, normalizer)
		if score == math.Inf(1) {
			return child
		}
		if score > bestScore {
			best = child
			bestScore = score
		}
	}
	return best
}

// bestMove picks the robust child: the move whose subtree got the most
// visits, not the best mean, since visit counts are the statistically stabler
// signal. First child wins ties.
func (n *node) bestMove() game.Move {
	bestIndex := 0
	maxVisits := n.children[0].visits
	for i, child := range n.children[1:] {
		if child.visits > maxVisits {
			maxVisits = child.visits
			bestIndex = i + 1
		}
	}
	return n.moves[bestIndex]
}

func ucb1(rewards float64, visits int, c2LnN float64) float64 {
	// Prioritize unexplored nodes
	if visits == 0 {
		return math.Inf(1)
	}

	return rewards/float64(visits) + math.Sqrt(c2LnN/float64(visits))
}
