package board_test

import (
	"testing"

	"github.com/fathompawn/chesscore/pkg/board"
	"github.com/fathompawn/chesscore/pkg/move"
	"github.com/fathompawn/chesscore/pkg/square"
)

// TestCastlingLegal checks that both white castling moves are offered
// when the squares between king and rook are empty and uncontrolled.
func TestCastlingLegal(t *testing.T) {
	const fen = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	b := board.New(fen)

	moves := b.GenerateMoves()
	if !hasMove(moves, square.E1, square.G1) {
		t.Error("missing legal kingside castle e1g1")
	}
	if !hasMove(moves, square.E1, square.C1) {
		t.Error("missing legal queenside castle e1c1")
	}
}

// TestCastlingBlockedBySafeMask checks that castling through an
// attacked square is illegal even when every square is empty.
func TestCastlingBlockedBySafeMask(t *testing.T) {
	// black rook on f8 controls f1, the kingside castle's transit square
	const fen = "5rk1/8/8/8/8/8/8/R3K2R w KQ - 0 1"
	b := board.New(fen)

	moves := b.GenerateMoves()
	if hasMove(moves, square.E1, square.G1) {
		t.Error("kingside castle through an attacked square should be illegal")
	}
	if !hasMove(moves, square.E1, square.C1) {
		t.Error("queenside castle should remain legal")
	}
}

// TestCastlingBlockedWhileInCheck checks that a king already in check
// may never castle, even though its SafeMask only covers squares beyond
// its own.
func TestCastlingBlockedWhileInCheck(t *testing.T) {
	const fen = "4r2k/8/8/8/8/8/8/R3K2R w KQ - 0 1"
	b := board.New(fen)

	moves := b.GenerateMoves()
	if hasMove(moves, square.E1, square.G1) || hasMove(moves, square.E1, square.C1) {
		t.Error("king in check must not be allowed to castle")
	}
}

func hasMove(moves []move.Move, from, to square.Square) bool {
	for _, m := range moves {
		if m.From == from && m.To == to {
			return true
		}
	}
	return false
}
