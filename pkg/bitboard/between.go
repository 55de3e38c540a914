package bitboard

import "github.com/fathompawn/chesscore/pkg/square"

// Between contains bitboards which have the path between two squares set.
// The definition of path is only valid for squares which lie on the same
// file, rank, diagonal, or anti-diagonal. For all other square
// combinations the path is Empty.
var Between [square.N][square.N]Board

// initBetween populates Between. Called from useful.go's init after
// Squares has been filled in, since the path computation below probes
// Squares for each pair of squares.
func initBetween() {
	for s1 := square.A8; s1 <= square.H1; s1++ {
		for s2 := square.A8; s2 <= square.H1; s2++ {
			sqs := Squares[s1] | Squares[s2]
			var mask Board

			switch {
			case s1.File() == s2.File():
				mask = Files[s1.File()]
			case s1.Rank() == s2.Rank():
				mask = Ranks[s1.Rank()]
			case s1.Diagonal() == s2.Diagonal():
				mask = Diagonals[s1.Diagonal()]
			case s1.AntiDiagonal() == s2.AntiDiagonal():
				mask = AntiDiagonals[s1.AntiDiagonal()]
			default:
				// s1 and s2 share no line, so the path between them is Empty.
				continue
			}

			Between[s1][s2] = Hyperbola(s1, sqs, mask) & Hyperbola(s2, sqs, mask)
		}
	}
}
