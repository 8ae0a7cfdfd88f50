// Package kruskal defines the edge and forest types, options and sentinel errors
// for minimum spanning tree computation over integer vertices.
package kruskal

import (
	"errors"

	"github.com/katalvlaran/unionfind/disjointset"
)

// ErrEmptyGraph indicates that the graph has no vertices, so no spanning tree exists.
var ErrEmptyGraph = errors.New("kruskal: graph has no vertices")

// ErrVertexOutOfRange indicates that an edge endpoint lies outside [0, n).
var ErrVertexOutOfRange = errors.New("kruskal: edge endpoint out of range")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("kruskal: graph is disconnected")

// Edge is an undirected weighted edge between vertices From and To.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// Forest is a minimum spanning forest: one minimum spanning tree per component.
//
// Fields:
//
//	Edges      — chosen edges in ascending weight order (stable on input order).
//	Weight     — sum of Edges' weights.
//	Components — number of trees in the forest; 1 means the graph is connected.
//	Sets       — vertex sets of each tree, as returned by DisjointSet.Sets.
type Forest struct {
	Edges      []Edge
	Weight     int64
	Components int
	Sets       [][]int
}

// Options configures the disjoint set used during the edge scan.
type Options struct {
	// SetOptions are forwarded to disjointset.New.
	SetOptions []disjointset.Option
}

// Option modifies Options.
type Option func(*Options)

// WithUnionBySize enables union-by-size balancing in the underlying disjoint set.
// The chosen edges are identical either way; only internal tree shape differs.
func WithUnionBySize() Option {
	return func(o *Options) {
		o.SetOptions = append(o.SetOptions, disjointset.WithUnionBySize())
	}
}
