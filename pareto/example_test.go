// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pareto_test

import (
	"fmt"
	"log"

	"golang.org/x/paperbench/pareto"
)

func Example() {
	cloud := []pareto.Point{
		{0.9, 0.2},
		{0.5, 0.5},
		{0.2, 0.9},
		{0.4, 0.4},
		{0.1, 0.1},
	}
	front, err := pareto.Front(cloud)
	if err != nil {
		log.Fatal(err)
	}
	ranks, err := pareto.Ranks(cloud)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("front:", front)
	fmt.Println("ranks:", ranks)
	// Output:
	// front: [0 1 2]
	// ranks: [0 0 0 1 2]
}

func ExamplePeel() {
	chain := []pareto.Point{{1, 1}, {2, 2}, {3, 3}, {4, 4}}
	p, err := pareto.Peel(chain, 2)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(p.Ranks, p.Truncated)
	// Output:
	// [2 2 1 0] true
}

func ExampleHypervolume() {
	hv, err := pareto.Hypervolume([]pareto.Point{{0.5, 0.5, 0.5}})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%.3f\n", hv)
	// Output:
	// 0.125
}
