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

// Command mess plays a single game against itself from a starting
// position, printing each move and the search's evaluation of it.
package main

import (
	"flag"
	"fmt"

	"github.com/fathompawn/chesscore/pkg/board"
	"github.com/fathompawn/chesscore/pkg/search"
)

func main() {
	fen := flag.String("fen", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "starting position")
	depth := flag.Int("depth", 4, "search depth in plys")
	plys := flag.Int("plys", 40, "maximum number of plys to play before stopping")
	flag.Parse()

	b := board.New(*fen)
	fmt.Println(*fen)

	for i := 0; i < *plys; i++ {
		if len(b.GenerateMoves()) == 0 {
			if b.CheckN > 0 {
				fmt.Printf("%d. checkmate, %s to move loses\n", i+1, b.SideToMove)
			} else {
				fmt.Printf("%d. stalemate\n", i+1)
			}
			return
		}

		ctx := search.NewContext(b)
		best, eval, err := ctx.Search(*depth)
		if err != nil {
			fmt.Printf("mess: %v\n", err)
			return
		}

		b.MakeMove(best)
		fmt.Printf("%d. %s %s (%s, %d nodes)\n", i+1, b.SideToMove.Other(), best, eval, ctx.Nodes())
	}

	fmt.Println(b.FEN())
}
