package castling

import (
	"github.com/fathompawn/chesscore/pkg/bitboard"
	"github.com/fathompawn/chesscore/pkg/square"
)

// Right identifies a single castling right (as opposed to Rights, which
// is a set of them). The four constants below are also valid Rights
// values with exactly one bit set.
type Right = Rights

// KingFrom and KingTo give the king's start and destination square for
// each individual castling right.
var KingFrom = [...]square.Square{
	WhiteKingside:  square.E1,
	WhiteQueenside: square.E1,
	BlackKingside:  square.E8,
	BlackQueenside: square.E8,
}

var KingTo = [...]square.Square{
	WhiteKingside:  square.G1,
	WhiteQueenside: square.C1,
	BlackKingside:  square.G8,
	BlackQueenside: square.C8,
}

// RookFrom and RookTo give the castling rook's start and destination
// square for each individual castling right.
var RookFrom = [...]square.Square{
	WhiteKingside:  square.H1,
	WhiteQueenside: square.A1,
	BlackKingside:  square.H8,
	BlackQueenside: square.A8,
}

var RookTo = [...]square.Square{
	WhiteKingside:  square.F1,
	WhiteQueenside: square.D1,
	BlackKingside:  square.F8,
	BlackQueenside: square.D8,
}

// EmptyMask holds, for each individual castling right, the set of
// squares that must be vacant for the move to be legal: every square
// strictly between the king and the rook, inclusive of squares the
// rook passes through that the king does not (e.g. b1 on the white
// queenside).
var EmptyMask = [...]bitboard.Board{
	WhiteKingside:  bitboard.F1G1,
	WhiteQueenside: bitboard.B1C1D1,
	BlackKingside:  bitboard.F8G8,
	BlackQueenside: bitboard.B8C8D8,
}

// SafeMask holds, for each individual castling right, the set of
// squares that must not be controlled by the opponent: only the
// squares the king itself travels across and lands on. This is
// strictly narrower than EmptyMask on the queenside, where the rook
// passes through b1/b8 but the king never does.
var SafeMask = [...]bitboard.Board{
	WhiteKingside:  bitboard.F1G1,
	WhiteQueenside: bitboard.C1D1,
	BlackKingside:  bitboard.F8G8,
	BlackQueenside: bitboard.C8D8,
}

// RightByKingTo maps a king's castling destination square back to the
// Right that was exercised, so MakeMove/UnmakeMove can look up the
// matching rook move without re-deriving it from the move's color.
var RightByKingTo = map[square.Square]Rights{
	square.G1: WhiteKingside,
	square.C1: WhiteQueenside,
	square.G8: BlackKingside,
	square.C8: BlackQueenside,
}

// RightUpdates maps every square on the board to the castling rights
// that are lost when a piece leaves from, or a capture lands on, that
// square. Indexing it by both the source and destination square of a
// move and OR-ing the results gives the full set of rights that move
// revokes: king and rook departures revoke their own rights, and a
// capture landing on a corner revokes that corner's rook's right even
// if the rook itself never got to move.
var RightUpdates [square.N]Rights

func init() {
	RightUpdates[square.E1] = White
	RightUpdates[square.H1] = WhiteKingside
	RightUpdates[square.A1] = WhiteQueenside
	RightUpdates[square.E8] = Black
	RightUpdates[square.H8] = BlackKingside
	RightUpdates[square.A8] = BlackQueenside
}
