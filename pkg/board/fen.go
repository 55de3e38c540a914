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
	"strconv"
	"strings"

	"github.com/fathompawn/chesscore/pkg/castling"
	"github.com/fathompawn/chesscore/pkg/piece"
	"github.com/fathompawn/chesscore/pkg/square"
	"github.com/fathompawn/chesscore/pkg/zobrist"
)

// New creates a *Board from the given fen string.
// https://www.chessprogramming.org/Forsyth-Edwards_Notation
func New(fen string) *Board {
	var b Board

	parts := strings.Split(fen, " ")

	b.SideToMove = piece.NewColor(parts[1])
	if b.SideToMove == piece.Black {
		b.Hash ^= zobrist.SideToMove
	}

	ranks := strings.Split(parts[0], "/")
	for rankID, rankData := range ranks {
		fileID := square.FileA
		for _, id := range rankData {
			s := square.From(fileID, square.Rank(rankID))

			if id >= '1' && id <= '8' {
				skip := square.File(id - '0')
				fileID += skip
				continue
			}

			p := piece.NewFromString(string(id))
			b.FillSquare(s, p)
			fileID++
		}
	}

	b.CastlingRights = castling.NewRights(parts[2])
	b.Hash ^= zobrist.Castling[b.CastlingRights]

	b.EnPassantTarget = square.New(parts[3])
	if b.EnPassantTarget != square.None {
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
	}

	b.DrawClock, _ = strconv.Atoi(parts[4])
	b.FullMoves, _ = strconv.Atoi(parts[5])

	return &b
}

// FEN returns the fen string of the current position.
func (b *Board) FEN() string {
	var s string
	s += b.Position.FEN() + " "
	s += b.SideToMove.String() + " "
	s += b.CastlingRights.String() + " "
	s += b.EnPassantTarget.String() + " "
	s += strconv.Itoa(b.DrawClock) + " "
	s += strconv.Itoa(b.FullMoves)
	return s
}
