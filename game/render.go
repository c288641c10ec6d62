package game

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// Two renderings of the same board: a plain ASCII one for dumb terminals and
// an ANSI-colored one with Unicode glyphs.

const (
	bgLight = "\x1b[48;5;250m"
	bgDark  = "\x1b[48;5;236m"
	reset   = "\x1b[0m"
)

var asciiPieces = map[chess.PieceType]byte{
	chess.Pawn:   'p',
	chess.Knight: 'n',
	chess.Bishop: 'b',
	chess.Rook:   'r',
	chess.Queen:  'q',
	chess.King:   'k',
}

var unicodePieces = map[chess.Piece]rune{
	chess.WhiteKing:   '♔',
	chess.WhiteQueen:  '♕',
	chess.WhiteRook:   '♖',
	chess.WhiteBishop: '♗',
	chess.WhiteKnight: '♘',
	chess.WhitePawn:   '♙',
	chess.BlackKing:   '♚',
	chess.BlackQueen:  '♛',
	chess.BlackRook:   '♜',
	chess.BlackBishop: '♝',
	chess.BlackKnight: '♞',
	chess.BlackPawn:   '♟',
}

// ASCIIBoard renders the position with letter pieces, uppercase for white,
// dots for empty squares, framed by file and rank labels.
func (s ChessState) ASCIIBoard() string {
	var b strings.Builder
	b.WriteString("  a b c d e f g h\n")
	board := s.pos.Board()
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&b, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			piece := board.Piece(chess.Square(rank*8 + file))
			if piece == chess.NoPiece {
				b.WriteByte('.')
			} else {
				ch := asciiPieces[piece.Type()]
				if piece.Color() == chess.White {
					ch -= 'a' - 'A'
				}
				b.WriteByte(ch)
			}
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d\n", rank+1)
	}
	b.WriteString("  a b c d e f g h\n")
	return b.String()
}

// PrettyBoard renders the position with alternating colored square
// backgrounds and Unicode piece glyphs, three characters per cell.
func (s ChessState) PrettyBoard() string {
	var b strings.Builder
	b.WriteString("    a  b  c  d  e  f  g  h\n")
	board := s.pos.Board()
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&b, " %d ", rank+1)
		for file := 0; file < 8; file++ {
			if (rank+file)%2 == 0 {
				b.WriteString(bgDark)
			} else {
				b.WriteString(bgLight)
			}
			cell := ' '
			if piece := board.Piece(chess.Square(rank*8 + file)); piece != chess.NoPiece {
				cell = unicodePieces[piece]
			}
			b.WriteByte(' ')
			b.WriteRune(cell)
			b.WriteByte(' ')
			b.WriteString(reset)
		}
		fmt.Fprintf(&b, " %d\n", rank+1)
	}
	b.WriteString("    a  b  c  d  e  f  g  h\n")
	return b.String()
}

// Board returns the renderer selected by pretty.
func (s ChessState) Board(pretty bool) string {
	if pretty {
		return s.PrettyBoard()
	}
	return s.ASCIIBoard()
}
