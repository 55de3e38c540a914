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

package attacks

import (
	"github.com/fathompawn/chesscore/pkg/bitboard"
	"github.com/fathompawn/chesscore/pkg/castling"
	"github.com/fathompawn/chesscore/pkg/square"
)

// kingAttacksFrom generates an attack bitboard containing all the
// possible squares a king can move to from the given square.
func kingAttacksFrom(from square.Square) bitboard.Board {
	b := board{origin: from}

	// set all possible attack squares
	b.addAttack(1, 0)   // E
	b.addAttack(1, 1)   // SE
	b.addAttack(0, 1)   // S
	b.addAttack(-1, 0)  // W
	b.addAttack(0, -1)  // N
	b.addAttack(1, -1)  // NE
	b.addAttack(-1, 1)  // SW
	b.addAttack(-1, -1) // NW

	return b.board
}

// KingAttacks returns the precalculated attack bitboard of a king
// standing on s, with no friends/castling masking applied.
func KingAttacks(s square.Square) bitboard.Board {
	return kingAttacks[s]
}

// King acts as a wrapper method for the precalculated attack bitboards of
// a king from every position on the chessboard, plus the king's two
// possible castling destinations when legal. occupied is the full board
// occupancy and controlled is the set of squares attacked by the enemy;
// a castling right only adds its destination square when its EmptyMask is
// clear of pieces and its SafeMask is clear of enemy control. A king
// already standing on an attacked square (in check) may never castle,
// regardless of what SafeMask says about the squares beyond it.
func King(s square.Square, friends, occupied, controlled bitboard.Board, cr castling.Rights) bitboard.Board {
	base := kingAttacks[s] &^ friends

	if controlled.IsSet(s) {
		return base
	}

	var rights [2]castling.Rights
	switch s {
	case square.E1:
		rights = [2]castling.Rights{castling.WhiteKingside, castling.WhiteQueenside}
	case square.E8:
		rights = [2]castling.Rights{castling.BlackKingside, castling.BlackQueenside}
	default:
		return base
	}

	for _, r := range rights {
		if cr&r == 0 {
			continue
		}
		if occupied&castling.EmptyMask[r] != 0 {
			continue
		}
		if controlled&castling.SafeMask[r] != 0 {
			continue
		}
		base.Set(castling.KingTo[r])
	}

	return base
}
