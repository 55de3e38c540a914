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

// Command perft drives board.Perft over the standard suite of test
// positions, printing leaf-node counts per depth and optionally
// charting them.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"

	"github.com/fathompawn/chesscore/pkg/board"
)

// suite holds the standard perft positions, named and keyed by their
// known-correct node counts at each depth.
type position struct {
	name  string
	fen   string
	nodes []int
}

var suite = []position{
	{
		name:  "initial",
		fen:   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		nodes: []int{20, 400, 8902, 197281, 4865609},
	},
	{
		name:  "kiwipete",
		fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		nodes: []int{48, 2039, 97862},
	},
}

func main() {
	maxDepth := flag.Int("depth", 5, "maximum perft depth to run per position")
	chart := flag.String("chart", "", "if set, render an HTML bar chart of leaf-node counts to this path")
	flag.Parse()

	var series []opts.BarData
	var labels []string

	for _, pos := range suite {
		depth := len(pos.nodes)
		if depth > *maxDepth {
			depth = *maxDepth
		}

		fmt.Printf("perft: %s\n", pos.name)

		bar := progressbar.NewOptions(
			depth,
			progressbar.OptionSetElapsedTime(true),
			progressbar.OptionSetItsString("ply"),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionSetRenderBlankState(true),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
		)

		for d := 1; d <= depth; d++ {
			got := board.Perft(pos.fen, d)
			_ = bar.Add(1)

			want := pos.nodes[d-1]
			status := "ok"
			if got != want {
				status = "MISMATCH"
			}

			fmt.Printf("\n  depth %d: %d nodes (want %d) %s\n", d, got, want, status)
			series = append(series, opts.BarData{Value: got})
			labels = append(labels, fmt.Sprintf("%s d%d", pos.name, d))
		}

		_ = bar.Close()
	}

	if *chart == "" {
		return
	}

	bars := charts.NewBar()
	bars.SetXAxis(labels).AddSeries("leaf nodes", series)

	f, err := os.Create(*chart)
	if err != nil {
		fmt.Printf("perft: could not create chart file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := bars.Render(f); err != nil {
		fmt.Printf("perft: could not render chart: %v\n", err)
		os.Exit(1)
	}
}

