package attacks

import (
	"github.com/fathompawn/chesscore/pkg/bitboard"
	"github.com/fathompawn/chesscore/pkg/square"
)

func Queen(s square.Square, friends, occ bitboard.Board) bitboard.Board {
	return Rook(s, friends, occ) | Bishop(s, friends, occ)
}
