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
	"github.com/fathompawn/chesscore/pkg/attacks"
	"github.com/fathompawn/chesscore/pkg/bitboard"
	"github.com/fathompawn/chesscore/pkg/move"
	"github.com/fathompawn/chesscore/pkg/piece"
	"github.com/fathompawn/chesscore/pkg/square"
)

// newMove builds a Move from a board still in its pre-move state; from
// and to are always populated, while capture defaults to to unless the
// caller overrides it (en passant, where the captured pawn isn't on the
// destination square).
func (b *Board) newMove(from, to square.Square, toPiece piece.Piece) move.Move {
	return move.Move{
		From:            from,
		To:              to,
		Capture:         to,
		FromPiece:       b.Position[from],
		ToPiece:         toPiece,
		CapturedPiece:   b.Position[to],
		HalfMoves:       b.DrawClock,
		CastlingRights:  b.CastlingRights,
		EnPassantSquare: b.EnPassantTarget,
	}
}

// GenerateMoves returns every legal move for the side to move. It first
// refreshes the check-mask, pin-masks, and enemy seen-squares, which the
// rest of generation relies on.
func (b *Board) GenerateMoves() []move.Move {
	b.CalculateCheckmask()
	b.CalculatePinmask()
	b.SeenByEnemy = b.SeenSquares(b.SideToMove.Other())

	moves := make([]move.Move, 0, 40)

	us := b.SideToMove
	friends := b.ColorBBs[us]
	b.Friends = friends
	b.Enemies = b.ColorBBs[us.Other()]

	occ := b.Occupied()
	target := ^friends & b.CheckMask

	kingSq := b.Kings[us]
	for toBB := attacks.King(kingSq, friends, occ, b.SeenByEnemy, b.CastlingRights) &^ b.SeenByEnemy; toBB != bitboard.Empty; {
		to := toBB.Pop()
		moves = append(moves, b.newMove(kingSq, to, piece.New(piece.King, us)))
	}

	// under double check only the king can move
	if b.CheckN == 2 {
		return moves
	}

	for pType := piece.Knight; pType <= piece.Queen; pType++ {
		p := piece.New(pType, us)
		for fromBB := b.PieceBBs[pType] & friends; fromBB != bitboard.Empty; {
			from := fromBB.Pop()

			for toBB := b.MovesOf(pType, from) & target; toBB != bitboard.Empty; {
				to := toBB.Pop()
				moves = append(moves, b.newMove(from, to, p))
			}
		}
	}

	b.genPawnMoves(&moves)

	return moves
}

// MovesOf returns the pseudo-pin-legal destination squares of the piece
// of the given type standing on s: castling and double check are
// handled by the callers above, so this only needs to account for pins.
func (b *Board) MovesOf(p piece.Type, s square.Square) bitboard.Board {
	switch p {
	case piece.Knight:
		return b.knightMoves(s)
	case piece.Bishop:
		return b.bishopMoves(s)
	case piece.Rook:
		return b.rookMoves(s)
	case piece.Queen:
		return b.queenMoves(s)
	default:
		panic("board: bad piece type for MovesOf")
	}
}

// knightMoves returns Empty for a pinned knight: a pinned knight can
// never move without exposing the king, regardless of pin direction.
func (b *Board) knightMoves(s square.Square) bitboard.Board {
	if b.PinnedD.IsSet(s) || b.PinnedHV.IsSet(s) {
		return bitboard.Empty
	}
	return attacks.Knight(s, bitboard.Empty)
}

func (b *Board) bishopMoves(s square.Square) bitboard.Board {
	occ := b.Occupied()

	switch {
	case b.PinnedHV.IsSet(s):
		return bitboard.Empty
	case b.PinnedD.IsSet(s):
		return attacks.Bishop(s, bitboard.Empty, occ) & b.PinnedD
	default:
		return attacks.Bishop(s, bitboard.Empty, occ)
	}
}

func (b *Board) rookMoves(s square.Square) bitboard.Board {
	occ := b.Occupied()

	switch {
	case b.PinnedD.IsSet(s):
		return bitboard.Empty
	case b.PinnedHV.IsSet(s):
		return attacks.Rook(s, bitboard.Empty, occ) & b.PinnedHV
	default:
		return attacks.Rook(s, bitboard.Empty, occ)
	}
}

func (b *Board) queenMoves(s square.Square) bitboard.Board {
	return b.bishopMoves(s) | b.rookMoves(s)
}

// genPawnMoves appends every legal pawn move (pushes, captures,
// en passant, promotions) to moveList. Pawns are treated separately
// from the other pieces since their pin behaviour depends on the
// direction of travel: a pawn pinned along its file can still push, and
// one pinned diagonally can still capture along the pin.
func (b *Board) genPawnMoves(moveList *[]move.Move) {
	us := b.SideToMove
	them := us.Other()

	occ := b.Occupied()
	enemies := b.Enemies

	var down square.Square
	var promotionRank, enPassantRank, doublePushRank bitboard.Board

	switch us {
	case piece.White:
		down = 8
		promotionRank = bitboard.Rank8
		enPassantRank = bitboard.Rank5
		doublePushRank = bitboard.Rank3
	case piece.Black:
		down = -8
		promotionRank = bitboard.Rank1
		enPassantRank = bitboard.Rank4
		doublePushRank = bitboard.Rank6
	}

	p := piece.New(piece.Pawn, us)

	pushTarget := b.CheckMask &^ occ
	captureTarget := enemies & b.CheckMask

	pawns := b.Pawns(us)

	pawnsThatAttack := pawns &^ b.PinnedHV

	unpinnedAttackers := pawnsThatAttack &^ b.PinnedD
	pinnedAttackers := pawnsThatAttack & b.PinnedD

	attacksL := attacks.PawnsLeft(unpinnedAttackers, us) & captureTarget
	attacksL |= attacks.PawnsLeft(pinnedAttackers, us) & captureTarget & b.PinnedD

	attacksR := attacks.PawnsRight(unpinnedAttackers, us) & captureTarget
	attacksR |= attacks.PawnsRight(pinnedAttackers, us) & captureTarget & b.PinnedD

	simpleL := attacksL &^ promotionRank
	simpleR := attacksR &^ promotionRank

	for simpleL != bitboard.Empty {
		to := simpleL.Pop()
		from := to + down + 1
		*moveList = append(*moveList, b.newMove(from, to, p))
	}

	for simpleR != bitboard.Empty {
		to := simpleR.Pop()
		from := to + down - 1
		*moveList = append(*moveList, b.newMove(from, to, p))
	}

	promoL := attacksL & promotionRank
	promoR := attacksR & promotionRank

	for promoL != bitboard.Empty {
		to := promoL.Pop()
		from := to + down + 1
		b.addPromotions(moveList, from, to, us)
	}

	for promoR != bitboard.Empty {
		to := promoR.Pop()
		from := to + down - 1
		b.addPromotions(moveList, from, to, us)
	}

	pawnsThatPush := pawns &^ b.PinnedD

	unpinnedPushers := pawnsThatPush &^ b.PinnedHV
	pinnedPushers := pawnsThatPush & b.PinnedHV

	singleUnpinned := attacks.PawnPush(unpinnedPushers, us)
	singlePinned := attacks.PawnPush(pinnedPushers, us) & b.PinnedHV

	single := (singlePinned | singleUnpinned) &^ occ

	double := attacks.PawnPush(single&doublePushRank, us) & pushTarget

	single &= pushTarget

	simplePush := single &^ promotionRank

	for simplePush != bitboard.Empty {
		to := simplePush.Pop()
		from := to + down
		*moveList = append(*moveList, b.newMove(from, to, p))
	}

	for double != bitboard.Empty {
		to := double.Pop()
		from := to + down + down
		*moveList = append(*moveList, b.newMove(from, to, p))
	}

	promoPush := single & promotionRank

	for promoPush != bitboard.Empty {
		to := promoPush.Pop()
		from := to + down
		b.addPromotions(moveList, from, to, us)
	}

	if b.EnPassantTarget == square.None {
		return
	}

	epTarget := b.EnPassantTarget
	epPawn := epTarget + down

	epMask := bitboard.Squares[epTarget] | bitboard.Squares[epPawn]
	if b.CheckMask&epMask == bitboard.Empty {
		return
	}

	kingSq := b.Kings[us]
	kingOnEpRank := bitboard.Squares[kingSq] & enPassantRank

	enemyRooksQueens := (b.Rooks(them) | b.Queens(them)) & enPassantRank
	possiblePin := kingOnEpRank != bitboard.Empty && enemyRooksQueens != bitboard.Empty

	for fromBB := attacks.PawnAttacks(epTarget, them) & pawnsThatAttack; fromBB != bitboard.Empty; {
		from := fromBB.Pop()

		if b.PinnedD.IsSet(from) && !b.PinnedD.IsSet(epTarget) {
			continue
		}

		// horizontal pin through both the capturing pawn and the captured
		// pawn: removing both from the rank can expose the king to a rook
		// or queen that neither pawn was individually pinned against.
		pawnsMask := bitboard.Squares[from] | bitboard.Squares[epPawn]
		if possiblePin && attacks.Rook(kingSq, bitboard.Empty, occ&^pawnsMask)&enemyRooksQueens != bitboard.Empty {
			continue
		}

		m := b.newMove(from, epTarget, p)
		m.Capture = epPawn
		m.CapturedPiece = b.Position[epPawn]
		*moveList = append(*moveList, m)
	}
}

// addPromotions appends one move per promotion piece type for a pawn
// moving from 'from' to 'to', reusing the capture bookkeeping of
// newMove but substituting the promoted piece as ToPiece.
func (b *Board) addPromotions(moveList *[]move.Move, from, to square.Square, c piece.Color) {
	for _, t := range piece.Promotions {
		m := b.newMove(from, to, piece.New(t, c))
		*moveList = append(*moveList, m)
	}
}
