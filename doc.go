// Package unionfind is a small toolkit built around a disjoint-set
// ("union-find") forest over the integers 0..n-1.
//
// Under the hood, everything is organized under a few subpackages:
//
//	disjointset/  — the DisjointSet itself: Union, Find (path compression), Connected, Count
//	connectivity/ — the classic dynamic-connectivity input ("n", then "p q" pairs) and its client
//	kruskal/      — minimum spanning tree / forest over integer vertices
//	gridgraph/    — islands of land cells on a 2D grid
//	cmd/unionfind — command-line front end (connect, grid, mst)
//
// Quick ASCII example:
//
//	0───1───2   3───4
//
// is the partition {0,1,2} {3,4}: Count() == 2, Connected(0, 2) == true.
//
//	go get github.com/katalvlaran/unionfind
package unionfind
