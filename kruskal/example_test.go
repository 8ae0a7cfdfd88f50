package kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/unionfind/kruskal"
)

// ExampleKruskal demonstrates Kruskal's algorithm on a pentagon:
// edges 0–1 (1), 1–2 (2), 2–3 (3), 3–4 (5), 0–4 (12).
// The MST drops the heaviest edge 0–4 and weighs 11.
func ExampleKruskal() {
	edges := []kruskal.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 4, Weight: 12},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 3},
		{From: 3, To: 4, Weight: 5},
	}

	mst, total, err := kruskal.Kruskal(5, edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Edges:", total)
	for _, e := range mst {
		fmt.Printf(" %d-%d", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 11, Edges: 0-1 1-2 2-3 3-4
}

// ExampleSpanningForest shows the forest of a graph with an isolated vertex.
func ExampleSpanningForest() {
	f, _ := kruskal.SpanningForest(3, []kruskal.Edge{{From: 0, To: 1, Weight: 2}})
	fmt.Println(f.Components, f.Weight, f.Sets)
	// Output: 2 2 [[0 1] [2]]
}
