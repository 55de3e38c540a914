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
	"github.com/fathompawn/chesscore/pkg/castling"
	"github.com/fathompawn/chesscore/pkg/move"
	"github.com/fathompawn/chesscore/pkg/piece"
	"github.com/fathompawn/chesscore/pkg/square"
	"github.com/fathompawn/chesscore/pkg/zobrist"
)

// MakeMove plays m, which must be one returned by GenerateMoves for the
// current position. It records everything UnmakeMove needs to restore
// the position in History[Plys], then advances Plys.
func (b *Board) MakeMove(m move.Move) {
	b.History[b.Plys] = Undo{
		Move:            m,
		CastlingRights:  b.CastlingRights,
		CapturedPiece:   piece.NoPiece,
		EnPassantTarget: b.EnPassantTarget,
		DrawClock:       b.DrawClock,
		Hash:            b.Hash,
	}

	if m.IsReversible() {
		b.DrawClock++
	} else {
		b.DrawClock = 0
	}

	if b.EnPassantTarget != square.None {
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
	}
	b.EnPassantTarget = square.None

	switch {
	case m.IsDoublePawnPush():
		target := m.From
		if b.SideToMove == piece.White {
			target -= 8
		} else {
			target += 8
		}

		b.EnPassantTarget = target
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]

	case m.IsCastle():
		right, ok := castling.RightByKingTo[m.To]
		if !ok {
			panic("board: castle move to unknown square")
		}
		b.ClearSquare(castling.RookFrom[right])
		b.FillSquare(castling.RookTo[right], piece.New(piece.Rook, b.SideToMove))
	}

	if m.IsCapture() {
		b.History[b.Plys].CapturedPiece = b.Position[m.Capture]
		b.ClearSquare(m.Capture)
	}

	b.ClearSquare(m.From)
	b.FillSquare(m.To, m.ToPiece)

	b.Hash ^= zobrist.Castling[b.CastlingRights]
	b.CastlingRights &^= m.CastlingRightUpdates()
	b.Hash ^= zobrist.Castling[b.CastlingRights]

	b.Plys++

	if b.SideToMove = b.SideToMove.Other(); b.SideToMove == piece.White {
		b.FullMoves++
	}
	b.Hash ^= zobrist.SideToMove
}

// UnmakeMove undoes the last move played by MakeMove, restoring the
// board to the position before it. It must be called in the reverse
// order MakeMove was, since it pops History by Plys.
func (b *Board) UnmakeMove() {
	if b.SideToMove = b.SideToMove.Other(); b.SideToMove == piece.Black {
		b.FullMoves--
	}
	b.Plys--

	undo := b.History[b.Plys]
	m := undo.Move

	b.EnPassantTarget = undo.EnPassantTarget
	b.DrawClock = undo.DrawClock
	b.CastlingRights = undo.CastlingRights

	b.ClearSquare(m.To)
	b.FillSquare(m.From, m.FromPiece)

	switch {
	case m.IsCastle():
		right, ok := castling.RightByKingTo[m.To]
		if !ok {
			panic("board: castle move to unknown square")
		}
		b.ClearSquare(castling.RookTo[right])
		b.FillSquare(castling.RookFrom[right], piece.New(piece.Rook, b.SideToMove))

	case m.IsCapture():
		b.FillSquare(m.Capture, undo.CapturedPiece)
	}

	b.Hash = undo.Hash
}
