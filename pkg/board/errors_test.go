package board_test

import (
	"errors"
	"testing"

	"github.com/fathompawn/chesscore/pkg/board"
	"github.com/fathompawn/chesscore/pkg/piece"
	"github.com/fathompawn/chesscore/pkg/square"
)

func TestFindMoveIllegal(t *testing.T) {
	b := board.New(startFEN)

	if _, err := b.FindMove(square.E2, square.E5, piece.NoType); !errors.Is(err, board.ErrIllegalMove) {
		t.Errorf("FindMove(e2e5) error = %v, want ErrIllegalMove", err)
	}
}

func TestFindMoveRequiresPromotion(t *testing.T) {
	const fen = "8/4P3/8/8/8/8/k7/6K1 w - - 0 1"
	b := board.New(fen)

	if !b.IsPromoting(square.E7, square.E8) {
		t.Fatal("e7e8 should require a promotion choice")
	}

	if _, err := b.FindMove(square.E7, square.E8, piece.NoType); !errors.Is(err, board.ErrPromotionRequired) {
		t.Errorf("FindMove(e7e8, NoType) error = %v, want ErrPromotionRequired", err)
	}

	m, err := b.FindMove(square.E7, square.E8, piece.Queen)
	if err != nil {
		t.Fatalf("FindMove(e7e8, Queen) returned error: %v", err)
	}
	if m.ToPiece.Type() != piece.Queen {
		t.Errorf("got promotion to %s, want queen", m.ToPiece.Type())
	}
}

func TestUnmakeRejectsMismatchedToken(t *testing.T) {
	b := board.New(startFEN)

	moves := b.GenerateMoves()
	m := findMove(t, moves, square.E2, square.E4)
	other := findMove(t, moves, square.D2, square.D4)

	b.MakeMove(m)

	if err := b.Unmake(other); !errors.Is(err, board.ErrInvalidUndo) {
		t.Errorf("Unmake(wrong move) error = %v, want ErrInvalidUndo", err)
	}

	if err := b.Unmake(m); err != nil {
		t.Errorf("Unmake(correct move) returned error: %v", err)
	}

	if got := b.FEN(); got != startFEN {
		t.Errorf("after Unmake: fen = %q, want %q", got, startFEN)
	}
}

func TestUnmakeRejectsEmptyHistory(t *testing.T) {
	b := board.New(startFEN)
	moves := b.GenerateMoves()
	m := findMove(t, moves, square.E2, square.E4)

	if err := b.Unmake(m); !errors.Is(err, board.ErrInvalidUndo) {
		t.Errorf("Unmake on empty history error = %v, want ErrInvalidUndo", err)
	}
}

func TestGetMovesOfFriendlyPiece(t *testing.T) {
	b := board.New(startFEN)

	dest, ok := b.GetMoves(square.E2)
	if !ok {
		t.Fatal("GetMoves(e2) = false, want a friendly pawn there")
	}
	if !dest.IsSet(square.E3) || !dest.IsSet(square.E4) {
		t.Errorf("GetMoves(e2) = %v, want e3 and e4 set", dest)
	}
}

func TestGetMovesOfEmptyOrEnemySquare(t *testing.T) {
	b := board.New(startFEN)

	if _, ok := b.GetMoves(square.E4); ok {
		t.Error("GetMoves(e4) = true, want false on an empty square")
	}
	if _, ok := b.GetMoves(square.E7); ok {
		t.Error("GetMoves(e7) = true, want false on an enemy piece")
	}
}

func TestIsEnemyControlled(t *testing.T) {
	const fen = "4k3/8/8/8/4r3/8/8/4K3 w - - 0 1"
	b := board.New(fen)

	if !b.IsEnemyControlled(square.E1) {
		t.Error("IsEnemyControlled(e1) = false, want true: attacked by the rook on e4")
	}
	if b.IsEnemyControlled(square.A1) {
		t.Error("IsEnemyControlled(a1) = true, want false")
	}
}
