package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Fool's mate final position: white to move and checkmated.
const foolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 3"

// Black to move with no legal moves and no check.
const stalemateFEN = "k7/8/1Q6/8/8/8/8/7K b - - 0 1"

func TestNewGame(t *testing.T) {
	state := NewGame()

	require.Equal(t, White, state.Turn())
	require.Equal(t, Ongoing, state.Status())
	require.Len(t, state.LegalMoves(), 20)
	require.Equal(t, startFEN, state.FEN())
}

func TestFromFEN(t *testing.T) {
	t.Run("valid FEN round-trips", func(t *testing.T) {
		state, err := FromFEN(foolsMateFEN)

		require.NoError(t, err)
		require.Equal(t, foolsMateFEN, state.FEN())
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := FromFEN("not a position")

		require.Error(t, err)
	})
}

func TestStatus(t *testing.T) {
	t.Run("checkmate", func(t *testing.T) {
		state, err := FromFEN(foolsMateFEN)
		require.NoError(t, err)

		require.Equal(t, Checkmate, state.Status())
		require.Equal(t, White, state.Turn(), "the mated side is to move")
		require.Empty(t, state.LegalMoves())
	})

	t.Run("stalemate", func(t *testing.T) {
		state, err := FromFEN(stalemateFEN)
		require.NoError(t, err)

		require.Equal(t, Stalemate, state.Status())
		require.Empty(t, state.LegalMoves())
	})
}

func TestPlay(t *testing.T) {
	state := NewGame()
	move, err := state.ParseMove("e2e4")
	require.NoError(t, err)

	next := state.Play(move)

	require.Equal(t, Black, next.Turn())
	require.Equal(t, Ongoing, next.Status())
	// The original state is untouched.
	require.Equal(t, White, state.Turn())
	require.Equal(t, startFEN, state.FEN())
}

func TestParseMove(t *testing.T) {
	t.Run("legal move parses to its UCI form", func(t *testing.T) {
		move, err := NewGame().ParseMove("g1f3")

		require.NoError(t, err)
		require.Equal(t, "g1f3", move.String())
	})

	t.Run("malformed text is rejected", func(t *testing.T) {
		_, err := NewGame().ParseMove("e9x9")

		require.Error(t, err)
	})

	t.Run("well-formed but illegal move is rejected", func(t *testing.T) {
		_, err := NewGame().ParseMove("e2e5")

		require.Error(t, err)
	})

	t.Run("promotion move carries its piece choice", func(t *testing.T) {
		state, err := FromFEN("7k/4P3/8/8/8/8/8/K7 w - - 0 1")
		require.NoError(t, err)

		move, err := state.ParseMove("e7e8q")

		require.NoError(t, err)
		require.Equal(t, "e7e8q", move.String())
	})
}

func TestColor(t *testing.T) {
	require.Equal(t, Black, White.Other())
	require.Equal(t, White, Black.Other())
	require.Equal(t, "white", White.String())
	require.Equal(t, "black", Black.String())
}
