// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package eval

import (
	"github.com/fathompawn/chesscore/pkg/board"
	"github.com/fathompawn/chesscore/pkg/move"
	"github.com/fathompawn/chesscore/pkg/piece"
)

// Values holds the fixed material value of each piece type; the king's
// value is never consulted since it can't be captured in legal play.
var Values = [piece.NType]Eval{
	piece.NoType: 0,
	piece.Pawn:   100,
	piece.Knight: 300,
	piece.Bishop: 320,
	piece.Rook:   500,
	piece.Queen:  900,
	piece.King:   0,
}

// Material returns the material balance of b from the perspective of
// the side to move: the sum of its own piece values minus its
// opponent's.
func Material(b *board.Board) Eval {
	us := b.SideToMove
	them := us.Other()

	var score Eval
	for t := piece.Pawn; t <= piece.Queen; t++ {
		count := (b.PieceBBs[t] & b.ColorBBs[us]).Count()
		enemyCount := (b.PieceBBs[t] & b.ColorBBs[them]).Count()
		score += Values[t] * Eval(count-enemyCount)
	}

	return score
}

// OfMove scores a pseudo-legal move for move ordering: captures are
// valued by the standard MVV-LVA formula, promotions add the value of
// the promoted piece, and moving a piece onto a square the opponent
// already controls is penalized as a likely recapture.
func OfMove(b *board.Board, m move.Move) Eval {
	var score Eval

	if m.IsCapture() {
		score += 10*Values[m.CapturedPiece.Type()] - Values[m.FromPiece.Type()]
	}

	if m.IsPromotion() {
		score += Values[m.ToPiece.Type()]
	}

	if b.SeenByEnemy.IsSet(m.To) {
		score -= Values[m.FromPiece.Type()]
	}

	return score
}
