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

package board

import (
	"errors"

	"github.com/fathompawn/chesscore/pkg/bitboard"
	"github.com/fathompawn/chesscore/pkg/move"
	"github.com/fathompawn/chesscore/pkg/piece"
	"github.com/fathompawn/chesscore/pkg/square"
)

// Sentinel errors returned by the board-mutating half of the external
// interface. They are checked with errors.Is; neither leaves the board
// modified.
var (
	// ErrIllegalMove is returned when (from, to, promotion) names no move
	// in the current legal move set.
	ErrIllegalMove = errors.New("board: illegal move")

	// ErrPromotionRequired is returned when (from, to) matches a pawn
	// reaching the back rank but no promotion piece type was given.
	ErrPromotionRequired = errors.New("board: promotion piece required")

	// ErrInvalidUndo is returned by Unmake when the move passed to it
	// doesn't match the top of this board's own history, e.g. a token
	// carried over from a different board or played twice.
	ErrInvalidUndo = errors.New("board: undo token does not match move history")
)

// Unmake is the validating counterpart to MakeMove: it checks that m is
// indeed the last move played on b before popping it with UnmakeMove,
// so a caller can't accidentally unwind a different board's history.
func (b *Board) Unmake(m move.Move) error {
	if b.Plys == 0 || b.History[b.Plys-1].Move != m {
		return ErrInvalidUndo
	}

	b.UnmakeMove()
	return nil
}

// IsPromoting reports whether a move from 'from' to 'to' would require a
// promotion choice, i.e. whether clicking this pair in a UI should open
// a promotion prompt.
func (b *Board) IsPromoting(from, to square.Square) bool {
	p := b.Position[from]
	if p.Type() != piece.Pawn {
		return false
	}

	rank := to.Rank()
	return rank == square.Rank8 || rank == square.Rank1
}

// FindMove looks up the legal move from 'from' to 'to', disambiguated by
// promotion when IsPromoting(from, to) is true. It neither mutates the
// board nor plays the move; callers pass the result to MakeMove.
func (b *Board) FindMove(from, to square.Square, promotion piece.Type) (move.Move, error) {
	requiresPromotion := b.IsPromoting(from, to)

	for _, m := range b.GenerateMoves() {
		if m.From != from || m.To != to {
			continue
		}

		if !requiresPromotion {
			return m, nil
		}

		if promotion == piece.NoType {
			return move.Move{}, ErrPromotionRequired
		}

		if m.ToPiece.Type() == promotion {
			return m, nil
		}
	}

	return move.Move{}, ErrIllegalMove
}

// IsEnemyControlled reports whether s is attacked by any piece of the
// color not to move, regardless of what, if anything, occupies s.
func (b *Board) IsEnemyControlled(s square.Square) bool {
	return b.IsAttacked(s, b.SideToMove.Other())
}

// GetMoves returns the destination mask for the friendly piece standing
// on s, recalculating the full legal move set to get it. The second
// return value is false, with an empty mask, when s holds no piece of
// the side to move.
func (b *Board) GetMoves(s square.Square) (bitboard.Board, bool) {
	p := b.Position[s]
	if p == piece.NoPiece || p.Color() != b.SideToMove {
		return bitboard.Empty, false
	}

	var dest bitboard.Board
	for _, m := range b.GenerateMoves() {
		if m.From == s {
			dest.Set(m.To)
		}
	}

	return dest, true
}
