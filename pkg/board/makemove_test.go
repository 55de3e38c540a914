package board_test

import (
	"testing"

	"github.com/fathompawn/chesscore/pkg/board"
)

// TestMakeUnmakeRoundTrip plays every legal move to depth 3 from the
// initial position and immediately unmakes it, checking that the FEN
// and zobrist hash are restored exactly, per spec's round-trip
// guarantee.
func TestMakeUnmakeRoundTrip(t *testing.T) {
	b := board.New(startFEN)
	walkRoundTrip(t, b, 3)
}

func walkRoundTrip(t *testing.T, b *board.Board, depth int) {
	t.Helper()
	if depth == 0 {
		return
	}

	beforeFEN := b.FEN()
	beforeHash := b.Hash

	for _, m := range b.GenerateMoves() {
		b.MakeMove(m)

		if !b.IsInCheck(b.SideToMove.Other()) {
			walkRoundTrip(t, b, depth-1)
		}

		b.UnmakeMove()

		if got := b.FEN(); got != beforeFEN {
			t.Fatalf("after %s: fen = %q, want %q", m, got, beforeFEN)
		}
		if b.Hash != beforeHash {
			t.Fatalf("after %s: hash = %X, want %X", m, b.Hash, beforeHash)
		}
	}
}
