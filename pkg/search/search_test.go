package search_test

import (
	"testing"

	"github.com/fathompawn/chesscore/pkg/board"
	"github.com/fathompawn/chesscore/pkg/eval"
	"github.com/fathompawn/chesscore/pkg/search"
	"github.com/fathompawn/chesscore/pkg/square"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// TestSearchPicksALegalRootMove checks that a shallow search from the
// initial position returns one of its 20 legal moves, leaves the board
// unmodified, and reports a roughly material-balanced score.
func TestSearchPicksALegalRootMove(t *testing.T) {
	b := board.New(startFEN)
	beforeFEN := b.FEN()

	ctx := search.NewContext(b)
	best, score, err := ctx.Search(3)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	legal := false
	for _, m := range b.GenerateMoves() {
		if m == best {
			legal = true
			break
		}
	}
	if !legal {
		t.Errorf("Search returned %s, which is not a legal root move", best)
	}

	if b.FEN() != beforeFEN {
		t.Errorf("Search left the board mutated: got %q, want %q", b.FEN(), beforeFEN)
	}

	if score <= -200 || score >= 200 {
		t.Errorf("Search(3) from the initial position scored %s, want roughly balanced", score)
	}

	if ctx.Nodes() == 0 {
		t.Error("Nodes() = 0 after a search, want at least the root moves visited")
	}
}

// TestSearchFindsMateInOne checks that Search finds a forced mate and
// scores it as a win, on the textbook back-rank mate position.
func TestSearchFindsMateInOne(t *testing.T) {
	const fen = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"
	b := board.New(fen)

	ctx := search.NewContext(b)
	best, score, err := ctx.Search(2)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	if best.From != square.A1 || best.To != square.A8 {
		t.Errorf("Search(2) = %s, want a1a8 (back-rank mate)", best)
	}

	if score <= eval.WinInMaxPly {
		t.Errorf("Search(2) scored %s, want a mate score", score)
	}
}

// TestSearchReturnsTerminalEvalWhenNoMoves checks stalemate is scored
// as a draw rather than a loss.
func TestSearchReturnsTerminalEvalWhenNoMoves(t *testing.T) {
	const fen = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	b := board.New(fen)

	if len(b.GenerateMoves()) != 0 {
		t.Fatal("test position is not actually stalemate")
	}

	ctx := search.NewContext(b)
	_, score, err := ctx.Search(2)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	if score != eval.Draw {
		t.Errorf("Search on stalemate scored %s, want %s", score, eval.Draw)
	}
}
