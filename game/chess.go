package game

import (
	"fmt"

	"github.com/notnil/chess"
)

// ChessState adapts a notnil/chess position to the State interface. It is a
// value type: Play returns a fresh ChessState and never touches the receiver.
type ChessState struct {
	pos *chess.Position
}

func NewGame() ChessState {
	return ChessState{pos: chess.NewGame().Position()}
}

func FromFEN(fen string) (ChessState, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return ChessState{}, fmt.Errorf("invalid FEN %q: %w", fen, err)
	}
	return ChessState{pos: chess.NewGame(opt).Position()}, nil
}

func (s ChessState) Turn() Color {
	if s.pos.Turn() == chess.White {
		return White
	}
	return Black
}

func (s ChessState) LegalMoves() []Move {
	valid := s.pos.ValidMoves()
	moves := make([]Move, len(valid))
	for i, m := range valid {
		moves[i] = m
	}
	return moves
}

func (s ChessState) Play(move Move) State {
	return ChessState{pos: s.pos.Update(move.(*chess.Move))}
}

func (s ChessState) Status() Status {
	switch s.pos.Status() {
	case chess.Checkmate:
		return Checkmate
	case chess.Stalemate:
		return Stalemate
	default:
		return Ongoing
	}
}

// FEN returns the position in Forsyth-Edwards notation.
func (s ChessState) FEN() string {
	return s.pos.String()
}

// ParseMove decodes UCI move text (e2e4, e7e8q) and checks it is legal in the
// current position.
func (s ChessState) ParseMove(text string) (Move, error) {
	move, err := chess.UCINotation{}.Decode(s.pos, text)
	if err != nil {
		return nil, fmt.Errorf("invalid UCI move %q: %w", text, err)
	}
	for _, legal := range s.pos.ValidMoves() {
		if legal.String() == move.String() {
			return legal, nil
		}
	}
	return nil, fmt.Errorf("illegal move %q in current position", text)
}
