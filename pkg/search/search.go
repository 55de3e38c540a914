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

// Package search implements a single-threaded negamax alpha-beta tree
// search over a board.Board, used to pick a best move at a fixed depth.
package search

import (
	"errors"
	"sort"

	"github.com/fathompawn/chesscore/internal/util"
	"github.com/fathompawn/chesscore/pkg/board"
	"github.com/fathompawn/chesscore/pkg/eval"
	"github.com/fathompawn/chesscore/pkg/move"
)

// ErrIllegalPosition is returned by Search when the position handed to
// it already has the side not to move in check, i.e. the king could be
// captured. Such a position can't arise from legal play and indicates
// caller error.
var ErrIllegalPosition = errors.New("search: position is illegal")

// MaxDepth bounds the search tree: Search clamps any deeper request to
// it. It is not a form of time management, which is out of scope for
// this core.
const MaxDepth = 64

// NewContext creates a Context searching from the given board. The
// board is not copied; Search mutates it via MakeMove/UnmakeMove and
// always leaves it restored to its original position on return.
func NewContext(b *board.Board) Context {
	return Context{Board: b}
}

// Context holds the board under search and running node-count stats.
// A Context may be reused across searches of the same board; start a
// new one for a different game.
type Context struct {
	Board *board.Board

	nodes int
}

// Nodes returns the number of nodes visited during the last Search call.
func (s *Context) Nodes() int {
	return s.nodes
}

// Search runs a fixed-depth negamax alpha-beta search and returns the
// best move found along with its evaluation. An empty move is returned
// alongside a terminal evaluation (checkmate or stalemate) if there is
// no legal move in the position.
func (s *Context) Search(depth int) (move.Move, eval.Eval, error) {
	if s.Board.IsInCheck(s.Board.SideToMove.Other()) {
		return move.Move{}, eval.Inf, ErrIllegalPosition
	}

	depth = util.Min(depth, MaxDepth)

	s.nodes = 0

	moves := s.Board.GenerateMoves()
	if len(moves) == 0 {
		return move.Move{}, s.terminalEval(0), nil
	}

	s.order(moves)

	alpha, beta := -eval.Inf, eval.Inf

	best := moves[0]
	bestEval := -eval.Inf

	for i, m := range moves {
		s.Board.MakeMove(m)
		childEval := -s.negamax(1, depth-1, -beta, -alpha)
		s.Board.UnmakeMove()

		if i == 0 || childEval > bestEval {
			bestEval = childEval
			best = m
		}

		if childEval > alpha {
			alpha = childEval
		}
	}

	return best, bestEval, nil
}

// negamax is the recursive alpha-beta search. alpha and beta are always
// expressed from the perspective of the side to move at this node, so
// every recursive call negates and swaps them, per the negamax
// formulation.
func (s *Context) negamax(plys, depth int, alpha, beta eval.Eval) eval.Eval {
	s.nodes++

	if depth <= 0 {
		return eval.Material(s.Board)
	}

	moves := s.Board.GenerateMoves()
	if len(moves) == 0 {
		return s.terminalEval(plys)
	}

	s.order(moves)

	for _, m := range moves {
		s.Board.MakeMove(m)
		result := -s.negamax(plys+1, depth-1, -beta, -alpha)
		s.Board.UnmakeMove()

		if result >= beta {
			return beta // fail-hard cutoff
		}
		if result > alpha {
			alpha = result
		}
	}

	return alpha
}

// terminalEval scores a position with no legal moves: checkmate for the
// side to move (the worst possible outcome, scaled by ply so shorter
// mates are preferred during search) or a stalemate draw.
func (s *Context) terminalEval(plys int) eval.Eval {
	if s.Board.CheckN > 0 {
		return eval.MatedIn(plys)
	}
	return eval.Draw
}

// order sorts moves best-guess-first so alpha-beta cuts off as much of
// the tree as possible; see eval.OfMove for the heuristic.
func (s *Context) order(moves []move.Move) {
	b := s.Board
	sort.SliceStable(moves, func(i, j int) bool {
		return eval.OfMove(b, moves[i]) > eval.OfMove(b, moves[j])
	})
}
