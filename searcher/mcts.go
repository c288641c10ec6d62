package searcher

import (
	"time"

	"gambit/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	// DefaultSimulations is the per-move iteration budget.
	DefaultSimulations = 1000
	// DefaultMaxPlayoutDepth caps random playouts, in plies. A playout cut
	// off at this depth scores as a draw.
	DefaultMaxPlayoutDepth = 96
)

type Option func(m *MCTS)

// WithSimulations sets the iteration budget. Non-positive values are clamped
// to a single iteration at search time.
func WithSimulations(simulations int) Option {
	return func(m *MCTS) {
		m.simulations = simulations
	}
}

func WithMaxPlayoutDepth(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.maxDepth = depth
		}
	}
}

// WithRand injects the playout random source; searches sharing inputs and a
// seed then choose identical moves.
func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// MCTS chooses moves by Monte Carlo tree search: a fresh tree is grown per
// decision with uniform-random playouts, then discarded. The search is fully
// synchronous; one FindMove call runs the whole budget before returning.
type MCTS struct {
	simulations int
	maxDepth    int
	rng         *rand.Rand
	root        *node
	stats       SearchStats
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		simulations: DefaultSimulations,
		maxDepth:    DefaultMaxPlayoutDepth,
		rng:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove returns the engine's move for state, or false when the position
// has no legal moves. A single legal move is returned immediately without
// searching.
func (m *MCTS) FindMove(state game.State) (game.Move, bool) {
	moves := state.LegalMoves()
	switch len(moves) {
	case 0:
		return nil, false
	case 1:
		return moves[0], true
	}

	simulations := m.simulations
	if simulations < 1 {
		simulations = 1
	}

	m.stats = SearchStats{}
	start := time.Now()
	m.root = newNode(state)
	for i := 0; i < simulations; i++ {
		m.simulate(m.root)
		m.stats.Simulations++
	}
	m.stats.Elapsed = time.Since(start)

	if len(m.root.children) == 0 {
		// Budget spent without expanding anything; fall back to a legal move
		// rather than failing.
		log.Warn().Msg("search expanded no children, falling back to first legal move")
		return moves[0], true
	}
	return m.root.bestMove(), true
}

// Stats returns counters for the most recent FindMove search.
func (m *MCTS) Stats() SearchStats {
	return m.stats
}

// simulate runs one selection-expansion-playout-backup iteration.
func (m *MCTS) simulate(root *node) {
	// Selection: descend by max UCB1 until a node that is terminal, still
	// expandable, or childless. The path records every node visited.
	path := []*node{root}
	current := root
	for !current.terminal && len(current.unexplored) == 0 && len(current.children) > 0 {
		current = current.selectChild()
		path = append(path, current)
	}

	// Expansion
	if current.expandable() {
		current = current.expand()
		path = append(path, current)
	}

	// Playout
	outcome := m.rollout(current.state)

	// Backup: the outcome is added as-is to every node on the path, with no
	// sign flip between plies.
	for _, n := range path {
		n.visits++
		n.rewards += outcome
	}
}

// rollout plays uniform-random legal moves from state until the game ends or
// the depth cap is hit, and scores the result for the side to move at state:
// +1 when that side delivers mate, -1 when it is mated, 0 for stalemate or a
// cut-off playout.
func (m *MCTS) rollout(state game.State) float64 {
	mover := state.Turn()
	for depth := 0; depth < m.maxDepth; depth++ {
		if state.Status() != game.Ongoing {
			break
		}
		moves := state.LegalMoves()
		if len(moves) == 0 {
			break
		}
		state = state.Play(moves[m.rng.Intn(len(moves))])
	}

	switch state.Status() {
	case game.Checkmate:
		m.stats.FullPlayouts++
		if state.Turn() == mover { // mover ended up mated
			return Loss
		}
		return Win
	case game.Stalemate:
		m.stats.FullPlayouts++
		return Draw
	default: // Depth cap reached with the game still going
		return Draw
	}
}
