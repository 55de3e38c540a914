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

// Package board implements a complete chess board along with legal move
// generation, reversible make/undo, and other related utilities.
package board

import (
	"fmt"

	"github.com/fathompawn/chesscore/pkg/attacks"
	"github.com/fathompawn/chesscore/pkg/bitboard"
	"github.com/fathompawn/chesscore/pkg/castling"
	"github.com/fathompawn/chesscore/pkg/mailbox"
	"github.com/fathompawn/chesscore/pkg/move"
	"github.com/fathompawn/chesscore/pkg/piece"
	"github.com/fathompawn/chesscore/pkg/square"
	"github.com/fathompawn/chesscore/pkg/zobrist"
)

// MaxPlys bounds how many half-moves a single game can play through this
// core; History is sized to it so make/undo never needs to grow a slice
// mid-search.
const MaxPlys = 1024

// GameState reports whether a position is ongoing or has ended, and if
// it has ended, how.
type GameState int

const (
	InProgress GameState = iota
	WhiteWon
	BlackWon
	Draw
)

func (s GameState) String() string {
	switch s {
	case WhiteWon:
		return "1-0"
	case BlackWon:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Board represents the state of a chessboard at a given position. It
// holds two representations: an 8x8 mailbox for O(1) piece lookup by
// square, and a set of bitboards for the bitwise calculations move
// generation relies on.
//
// Fields below the game history are utility data recalculated by
// GenerateMoves every ply; they are cached on Board rather than threaded
// through function arguments because move generation, check detection,
// and search all need them together.
type Board struct {
	// main position data
	Hash     zobrist.Key
	Position mailbox.Board
	PieceBBs [piece.NType]bitboard.Board
	ColorBBs [piece.NColor]bitboard.Board

	SideToMove      piece.Color
	EnPassantTarget square.Square
	CastlingRights  castling.Rights

	Kings [piece.NColor]square.Square

	// move counters
	Plys      int
	FullMoves int
	DrawClock int

	// game history, used by UnmakeMove to restore irreversible state
	History [MaxPlys]Undo

	// move generation scratch space, recalculated at the start of every
	// GenerateMoves call
	Friends bitboard.Board
	Enemies bitboard.Board

	CheckN    int
	CheckMask bitboard.Board

	PinnedD  bitboard.Board // pinned along a diagonal/anti-diagonal
	PinnedHV bitboard.Board // pinned along a file/rank

	SeenByEnemy bitboard.Board
}

// Undo holds the irreversible position data needed to roll a Board back
// to the state before a given move was made. Rather than snapshotting
// the whole board, UnmakeMove replays the move in reverse using just
// this record plus the move itself.
type Undo struct {
	Move            move.Move
	CastlingRights  castling.Rights
	CapturedPiece   piece.Piece
	EnPassantTarget square.Square
	DrawClock       int
	Hash            zobrist.Key
}

// String converts a Board into a human readable string: the mailbox
// board, its FEN, and its zobrist key. This is for debugging only; it is
// not used anywhere on the move generation or search hot path.
func (b Board) String() string {
	return fmt.Sprintf("%s\nFen: %s\nKey: %X\n", b.Position, b.FEN(), b.Hash)
}

// Occupied returns a bitboard of every occupied square.
func (b *Board) Occupied() bitboard.Board {
	return b.ColorBBs[piece.White] | b.ColorBBs[piece.Black]
}

// ClearSquare removes the piece occupying the given square and updates
// every dependent piece of position state (bitboards, mailbox, hash).
func (b *Board) ClearSquare(s square.Square) {
	p := b.Position[s]

	b.ColorBBs[p.Color()].Unset(s)
	b.PieceBBs[p.Type()].Unset(s)
	b.Position[s] = piece.NoPiece
	b.Hash ^= zobrist.PieceSquare[p][s]
}

// FillSquare places p on s. Callers must ensure s is currently empty;
// filling an occupied square corrupts the incremental bitboards/hash.
func (b *Board) FillSquare(s square.Square, p piece.Piece) {
	c := p.Color()
	t := p.Type()

	b.ColorBBs[c].Set(s)

	if t == piece.King {
		b.Kings[c] = s
	}

	b.PieceBBs[t].Set(s)
	b.Position[s] = p
	b.Hash ^= zobrist.PieceSquare[p][s]
}

func (b *Board) IsPiece(s square.Square) bool {
	return b.Position[s] != piece.NoPiece
}

func (b *Board) GetPiece(s square.Square) piece.Piece {
	return b.Position[s]
}

// IsInCheck reports whether the king of the given color is attacked.
func (b *Board) IsInCheck(c piece.Color) bool {
	return b.IsAttacked(b.Kings[c], c.Other())
}

// IsAttacked reports whether s is attacked by any piece of the given
// color, regardless of whether a friendly piece already occupies s.
func (b *Board) IsAttacked(s square.Square, them piece.Color) bool {
	occ := b.Occupied()

	if attacks.PawnAttacks(s, them.Other())&b.Pawns(them) != bitboard.Empty {
		return true
	}

	if attacks.Knight(s, bitboard.Empty)&b.Knights(them) != bitboard.Empty {
		return true
	}

	if attacks.KingAttacks(s)&b.King(them) != bitboard.Empty {
		return true
	}

	queens := b.Queens(them)

	if attacks.Bishop(s, bitboard.Empty, occ)&(b.Bishops(them)|queens) != bitboard.Empty {
		return true
	}

	return attacks.Rook(s, bitboard.Empty, occ)&(b.Rooks(them)|queens) != bitboard.Empty
}

func (b *Board) Pawns(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Pawn] & b.ColorBBs[c]
}

func (b *Board) Knights(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Knight] & b.ColorBBs[c]
}

func (b *Board) Bishops(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Bishop] & b.ColorBBs[c]
}

func (b *Board) Rooks(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Rook] & b.ColorBBs[c]
}

func (b *Board) Queens(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.Queen] & b.ColorBBs[c]
}

func (b *Board) King(c piece.Color) bitboard.Board {
	return b.PieceBBs[piece.King] & b.ColorBBs[c]
}

// CalculateCheckmask calculates the check-mask of the current position
// along with the number of checkers.
//
// A checker is an enemy piece directly checking the king; there can be
// at most two (double check). The check-mask is the set of squares a
// friendly piece can move to that blocks every check: the checking
// piece's square and, for a slider, every square between it and the
// king. Under double check only the king can move, so GenerateMoves
// does not use the mask then; it is Universe when the king isn't in
// check (every move is check-mask legal).
func (b *Board) CalculateCheckmask() {
	occ := b.Occupied()

	us := b.SideToMove
	them := us.Other()

	b.CheckN = 0
	b.CheckMask = bitboard.Empty

	kingSq := b.Kings[us]

	pawns := b.Pawns(them) & attacks.PawnAttacks(kingSq, us)
	knights := b.Knights(them) & attacks.Knight(kingSq, bitboard.Empty)
	bishops := (b.Bishops(them) | b.Queens(them)) & attacks.Bishop(kingSq, bitboard.Empty, occ)
	rooks := (b.Rooks(them) | b.Queens(them)) & attacks.Rook(kingSq, bitboard.Empty, occ)

	// a pawn and a knight can't check the king simultaneously: neither is
	// a sliding piece, so there's no discovered attack to combine with one
	switch {
	case pawns != bitboard.Empty:
		b.CheckMask |= pawns
		b.CheckN++
	case knights != bitboard.Empty:
		b.CheckMask |= knights
		b.CheckN++
	}

	if bishops != bitboard.Empty {
		if bishops.Count() > 1 {
			// double check from two bishops/queens; leave the mask empty
			b.CheckN += 2
		} else {
			bishopSq := bishops.FirstOne()
			b.CheckMask |= bitboard.Between[kingSq][bishopSq] | bitboard.Squares[bishopSq]
			b.CheckN++
		}
	}

	if b.CheckN < 2 && rooks != bitboard.Empty {
		if b.CheckN == 0 && rooks.Count() > 1 {
			// double check from two rooks/queens; leave the mask empty
			b.CheckN += 2
		} else {
			rookSq := rooks.FirstOne()
			b.CheckMask |= bitboard.Between[kingSq][rookSq] | bitboard.Squares[rookSq]
			b.CheckN++
		}
	}

	if b.CheckN == 0 {
		b.CheckMask = bitboard.Universe
	}
}

// CalculatePinmask calculates the diagonal and horizontal/vertical
// pin-masks: the set of squares along a ray from the king to an enemy
// slider that pins exactly one friendly piece. A pinned piece may only
// move along its own pin-mask.
func (b *Board) CalculatePinmask() {
	us := b.SideToMove
	them := us.Other()

	kingSq := b.Kings[us]

	friends := b.ColorBBs[us]
	enemies := b.ColorBBs[them]

	b.PinnedD = bitboard.Empty
	b.PinnedHV = bitboard.Empty

	// king-as-rook trick: blockers are enemies only, so the ray passes
	// through friendly pieces to find sliders that would attack the king
	// if those friendly pieces were removed one at a time
	for rooks := (b.Rooks(them) | b.Queens(them)) & attacks.Rook(kingSq, bitboard.Empty, enemies); rooks != bitboard.Empty; {
		rook := rooks.Pop()
		possiblePin := bitboard.Between[kingSq][rook] | bitboard.Squares[rook]

		if (possiblePin & friends).Count() == 1 {
			b.PinnedHV |= possiblePin
		}
	}

	for bishops := (b.Bishops(them) | b.Queens(them)) & attacks.Bishop(kingSq, bitboard.Empty, enemies); bishops != bitboard.Empty; {
		bishop := bishops.Pop()
		possiblePin := bitboard.Between[kingSq][bishop] | bitboard.Squares[bishop]

		if (possiblePin & friends).Count() == 1 {
			b.PinnedD |= possiblePin
		}
	}
}

// SeenSquares returns every square attacked by pieces of the given
// color. The enemy king is excluded as a sliding-ray blocker: it has to
// move off the ray when checked, so a square only "behind" it is still
// controlled and the king must not be allowed to step there either.
func (b *Board) SeenSquares(by piece.Color) bitboard.Board {
	pawns := b.Pawns(by)
	knights := b.Knights(by)
	bishops := b.Bishops(by)
	rooks := b.Rooks(by)
	queens := b.Queens(by)
	kingSq := b.Kings[by]

	blockers := b.Occupied() &^ b.King(by.Other())

	seen := attacks.PawnsLeft(pawns, by) | attacks.PawnsRight(pawns, by)

	for knights != bitboard.Empty {
		from := knights.Pop()
		seen |= attacks.Knight(from, bitboard.Empty)
	}

	for bishops != bitboard.Empty {
		from := bishops.Pop()
		seen |= attacks.Bishop(from, bitboard.Empty, blockers)
	}

	for rooks != bitboard.Empty {
		from := rooks.Pop()
		seen |= attacks.Rook(from, bitboard.Empty, blockers)
	}

	for queens != bitboard.Empty {
		from := queens.Pop()
		seen |= attacks.Queen(from, bitboard.Empty, blockers)
	}

	seen |= attacks.KingAttacks(kingSq)

	return seen
}

// Result reports the outcome of the current position for the side to
// move. It must only be called once GenerateMoves has run (or on an
// empty move list from it), since it relies on CheckN being current.
// A side with no legal moves and an attacker on its king has lost; the
// win is awarded to the opponent, never to the side to move itself.
func (b *Board) Result(legalMoves int) GameState {
	if legalMoves > 0 {
		return InProgress
	}

	if b.CheckN == 0 {
		return Draw // stalemate
	}

	if b.SideToMove == piece.White {
		return BlackWon
	}
	return WhiteWon
}
