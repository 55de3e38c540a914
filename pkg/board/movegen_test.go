package board_test

import (
	"testing"

	"github.com/fathompawn/chesscore/pkg/board"
	"github.com/fathompawn/chesscore/pkg/move"
	"github.com/fathompawn/chesscore/pkg/piece"
	"github.com/fathompawn/chesscore/pkg/square"
)

// TestInitialMoveCount checks that the initial position has exactly the
// 16 pawn moves and 4 knight moves, none of them promotions.
func TestInitialMoveCount(t *testing.T) {
	b := board.New(startFEN)
	moves := b.GenerateMoves()

	if len(moves) != 20 {
		t.Fatalf("got %d moves, want 20", len(moves))
	}

	for _, m := range moves {
		if m.IsPromotion() {
			t.Errorf("unexpected promotion move %s in initial position", m)
		}
	}
}

// TestDoubleCheckKingOnly verifies that under double check, the only
// legal moves are king moves.
func TestDoubleCheckKingOnly(t *testing.T) {
	// white king on e1 checked at once by the rook on e8 and the knight
	// on f3; built directly as a double check position.
	const fen = "4r2k/8/8/8/8/5n2/8/4K3 w - - 0 1"

	b := board.New(fen)
	moves := b.GenerateMoves()

	if b.CheckN != 2 {
		t.Fatalf("CheckN = %d, want 2", b.CheckN)
	}

	if len(moves) == 0 {
		t.Fatal("expected at least one legal king move")
	}

	for _, m := range moves {
		if m.FromPiece.Type() != piece.King {
			t.Errorf("move %s is not a king move under double check", m)
		}
	}
}

// TestEnPassantClearsOnNonCapture checks that en-passant availability is
// cleared after any move that doesn't capture it, per spec scenario 4.
func TestEnPassantClearsOnNonCapture(t *testing.T) {
	b := board.New(startFEN)

	moves := b.GenerateMoves()
	m := findMove(t, moves, square.E2, square.E4)
	b.MakeMove(m)

	if b.EnPassantTarget != square.E3 {
		t.Fatalf("en passant target = %s, want e3", b.EnPassantTarget)
	}

	moves = b.GenerateMoves()
	m = findMove(t, moves, square.B8, square.C6)
	b.MakeMove(m)

	if b.EnPassantTarget != square.None {
		t.Fatalf("en passant target = %s, want cleared", b.EnPassantTarget)
	}
}

// TestHorizontalPinEnPassant reproduces spec scenario 5: a pawn may not
// capture en passant if doing so would expose its own king to a rook on
// the same rank.
func TestHorizontalPinEnPassant(t *testing.T) {
	// rank 5, left to right: black rook a5, empty b5, white pawn c5,
	// black pawn d7 about to double-push to d5, white king e5. Capturing
	// en passant removes both the c5 and d5 pawns from the rank at once,
	// opening a clear rook-to-king line neither pawn was individually
	// pinned against.
	const setupFEN = "8/3p4/8/r1P1K3/8/8/8/7k b - - 0 1"
	b := board.New(setupFEN)

	moves := b.GenerateMoves()
	m := findMove(t, moves, square.D7, square.D5)
	b.MakeMove(m)

	if b.EnPassantTarget != square.D6 {
		t.Fatalf("en passant target = %s, want d6", b.EnPassantTarget)
	}

	moves = b.GenerateMoves()
	for _, m := range moves {
		if m.From == square.C5 && m.To == square.D6 {
			t.Fatalf("pinned en-passant capture c5xd6 should not be legal")
		}
	}
}

func findMove(t *testing.T, moves []move.Move, from, to square.Square) move.Move {
	t.Helper()
	for _, m := range moves {
		if m.From == from && m.To == to {
			return m
		}
	}
	t.Fatalf("no move %s->%s in move list", from, to)
	return move.Move{}
}
