package board_test

import (
	"fmt"
	"testing"

	"github.com/fathompawn/chesscore/pkg/board"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// TestPerftInitial checks the standard depth 1-5 leaf counts from the
// initial position, the canonical correctness test for a legal move
// generator.
func TestPerftInitial(t *testing.T) {
	tests := []struct {
		depth int
		nodes int
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
		{5, 4865609},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("depth%d", test.depth), func(t *testing.T) {
			if got := board.Perft(startFEN, test.depth); got != test.nodes {
				t.Errorf("perft(%d) = %d, want %d", test.depth, got, test.nodes)
			}
		})
	}
}

// TestPerftKiwipete exercises castling, en passant, and promotions more
// densely than the initial position.
func TestPerftKiwipete(t *testing.T) {
	const fen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	tests := []struct {
		depth int
		nodes int
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("depth%d", test.depth), func(t *testing.T) {
			if got := board.Perft(fen, test.depth); got != test.nodes {
				t.Errorf("perft(%d) = %d, want %d", test.depth, got, test.nodes)
			}
		})
	}
}
