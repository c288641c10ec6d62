package game

// The contract the searcher needs from a game: it never looks inside a
// position, it only asks for legal moves, plays them, and checks whether the
// game is over.

type Color int

const (
	White Color = iota
	Black
)

func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

// Move identifies one legal transition between positions. Moves render as UCI
// text (e2e4, e7e8q) so they round-trip through the CLI.
type Move interface {
	String() string
}

// State should be immutable - Play always returns a new copy.
type State interface {
	Turn() Color
	LegalMoves() []Move
	Play(Move) State
	Status() Status
}
