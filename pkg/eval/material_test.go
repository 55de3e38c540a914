package eval_test

import (
	"testing"

	"github.com/fathompawn/chesscore/pkg/board"
	"github.com/fathompawn/chesscore/pkg/eval"
	"github.com/fathompawn/chesscore/pkg/piece"
	"github.com/fathompawn/chesscore/pkg/square"
)

func TestMaterialBalanced(t *testing.T) {
	const fen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	b := board.New(fen)

	if got := eval.Material(b); got != 0 {
		t.Errorf("Material(initial) = %d, want 0", got)
	}
}

func TestMaterialUpWhenUpAPawn(t *testing.T) {
	const fen = "rnbqkbnr/ppppppp1/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	b := board.New(fen)

	if got := eval.Material(b); got != eval.Values[piece.Pawn] {
		t.Errorf("Material(up a pawn) = %d, want %d", got, eval.Values[piece.Pawn])
	}
}

func TestOfMoveRanksCaptureAboveQuietMove(t *testing.T) {
	const fen = "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1"
	b := board.New(fen)

	moves := b.GenerateMoves()

	var captureScore, quietScore eval.Eval
	var sawCapture, sawQuiet bool

	for _, m := range moves {
		switch {
		case m.IsCapture():
			captureScore = eval.OfMove(b, m)
			sawCapture = true
		case m.From == square.E1:
			quietScore = eval.OfMove(b, m)
			sawQuiet = true
		}
	}

	if !sawCapture {
		t.Fatal("expected exd5 to be a legal capture")
	}
	if !sawQuiet {
		t.Fatal("expected a quiet king move to be legal")
	}
	if captureScore <= quietScore {
		t.Errorf("capture score %d should outrank quiet score %d", captureScore, quietScore)
	}
}
