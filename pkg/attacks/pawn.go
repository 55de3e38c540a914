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
	"github.com/fathompawn/chesscore/pkg/piece"
	"github.com/fathompawn/chesscore/pkg/square"
)

func whitePawnAttacksFrom(s square.Square) bitboard.Board {
	b := board{origin: s}

	b.addAttack(1, -1)  // right
	b.addAttack(-1, -1) // left

	return b.board
}

func blackPawnAttacksFrom(s square.Square) bitboard.Board {
	b := board{origin: s}

	b.addAttack(1, 1)  // right
	b.addAttack(-1, 1) // left

	return b.board
}

// PawnAttacks returns the squares a pawn of color c standing on s
// attacks. Used both for generating a pawn's own captures and, run from
// a king's square with the king's own color, for finding which enemy
// pawn squares would check it.
func PawnAttacks(s square.Square, c piece.Color) bitboard.Board {
	switch c {
	case piece.White:
		return whitePawnAttacks[s]
	case piece.Black:
		return blackPawnAttacks[s]
	default:
		panic("attacks: invalid pawn color")
	}
}

// PawnPush shifts every pawn in the given set one square towards the
// opponent's back rank.
func PawnPush(pawns bitboard.Board, c piece.Color) bitboard.Board {
	switch c {
	case piece.White:
		return pawns.North()
	case piece.Black:
		return pawns.South()
	default:
		panic("attacks: invalid pawn color")
	}
}

// PawnsLeft and PawnsRight shift every pawn in the given set one square
// diagonally towards the opponent's back rank, giving the full set of
// squares attacked by that set of pawns in one direction.
func PawnsLeft(pawns bitboard.Board, c piece.Color) bitboard.Board {
	switch c {
	case piece.White:
		return pawns.North().West()
	case piece.Black:
		return pawns.South().West()
	default:
		panic("attacks: invalid pawn color")
	}
}

func PawnsRight(pawns bitboard.Board, c piece.Color) bitboard.Board {
	switch c {
	case piece.White:
		return pawns.North().East()
	case piece.Black:
		return pawns.South().East()
	default:
		panic("attacks: invalid pawn color")
	}
}
