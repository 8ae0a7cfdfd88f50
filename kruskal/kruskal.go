// Package kruskal provides Kruskal's minimum spanning tree algorithm
// on undirected weighted graphs whose vertices are the integers 0..n-1.
package kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/unionfind/disjointset"
)

// Kruskal computes the Minimum Spanning Tree of the graph with n vertices and the given edges.
//
// Error Conditions:
//   - ErrEmptyGraph       : n <= 0.
//   - ErrVertexOutOfRange : an endpoint is outside [0, n).
//   - ErrDisconnected     : n > 1 and the edges do not connect every vertex.
//
// A single vertex yields an empty tree with weight 0.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(n int, edges []Edge, opts ...Option) ([]Edge, int64, error) {
	if n <= 0 {
		return nil, 0, ErrEmptyGraph
	}
	forest, err := SpanningForest(n, edges, opts...)
	if err != nil {
		return nil, 0, err
	}
	if forest.Components > 1 {
		return nil, 0, fmt.Errorf("%w: %d components", ErrDisconnected, forest.Components)
	}

	return forest.Edges, forest.Weight, nil
}

// SpanningForest computes a minimum spanning forest, tolerating disconnected graphs.
//
// Steps:
//  1. Validate every endpoint against [0, n).
//  2. Copy the edges, skipping self-loops, and stable-sort them by ascending weight
//     so that equal weights keep their input order.
//  3. Scan the sorted edges; Union reports whether an edge joins two components,
//     in which case it is kept.
//  4. Stop early once n-1 edges are kept.
//
// n <= 0 yields an empty forest with zero components.
func SpanningForest(n int, edges []Edge, opts ...Option) (Forest, error) {
	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1. Validate endpoints up front; Union ignores out-of-range indices silently.
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return Forest{}, fmt.Errorf("%w: edge %d (%d-%d), n=%d", ErrVertexOutOfRange, i, e.From, e.To, n)
		}
	}

	// 2. Filter self-loops and sort.
	sorted := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		sorted = append(sorted, e)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 3. Greedy scan.
	ds := disjointset.New(n, cfg.SetOptions...)
	var (
		chosen []Edge
		total  int64
	)
	for _, e := range sorted {
		if !ds.Union(e.From, e.To) {
			continue // endpoints already connected: edge would close a cycle
		}
		chosen = append(chosen, e)
		total += e.Weight
		// 4. A spanning tree has exactly n-1 edges.
		if len(chosen) == n-1 {
			break
		}
	}
	if chosen == nil {
		chosen = []Edge{}
	}

	return Forest{
		Edges:      chosen,
		Weight:     total,
		Components: ds.Count(),
		Sets:       ds.Sets(),
	}, nil
}
