package move

import (
	"fmt"

	"github.com/fathompawn/chesscore/pkg/castling"
	"github.com/fathompawn/chesscore/pkg/piece"
	"github.com/fathompawn/chesscore/pkg/square"
)

type Move struct {
	From    square.Square
	To      square.Square
	Capture square.Square

	FromPiece     piece.Piece
	ToPiece       piece.Piece
	CapturedPiece piece.Piece

	HalfMoves       int
	CastlingRights  castling.Rights
	EnPassantSquare square.Square
}

func (m Move) String() string {
	str := fmt.Sprintf("%s%s", m.From, m.To)
	if m.IsPromotion() {
		str += m.ToPiece.Type().String()
	}
	return str
}

// CastlingRightUpdates returns the castling rights that this move
// revokes: movement of a rook or king, or a capture landing on a
// rook's home square, each cost the affected side that right.
func (m Move) CastlingRightUpdates() castling.Rights {
	return castling.RightUpdates[m.From] | castling.RightUpdates[m.To]
}

func (m Move) IsReversible() bool {
	return !m.IsCapture() && m.FromPiece.Type() != piece.Pawn
}

func (m Move) IsCastle() bool {
	switch m.FromPiece {
	case piece.WhiteKing:
		return m.From == square.E1 && (m.To == square.G1 || m.To == square.C1)
	case piece.BlackKing:
		return m.From == square.E8 && (m.To == square.G8 || m.To == square.C8)
	default:
		return false
	}
}

func (m Move) IsCapture() bool {
	return m.CapturedPiece != piece.NoPiece
}

func (m Move) IsEnPassant() bool {
	return m.FromPiece.Type() == piece.Pawn && m.To == m.EnPassantSquare
}

func (m Move) IsPromotion() bool {
	return m.FromPiece != m.ToPiece
}

func (m Move) IsDoublePawnPush() bool {
	if m.FromPiece.Type() != piece.Pawn {
		return false
	}

	fromRank := m.From.Rank()
	toRank := m.To.Rank()

	switch {
	case fromRank == square.Rank2 && toRank == square.Rank4,
		fromRank == square.Rank7 && toRank == square.Rank5:
		return true
	default:
		return false
	}
}
