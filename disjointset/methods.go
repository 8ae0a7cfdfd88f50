package disjointset

import (
	"fmt"
	"sort"
	"strings"
)

// SizeOf returns the number of elements in the subset containing p.
// It panics like Find on an invalid index.
func (d *DisjointSet) SizeOf(p int) int {
	return d.size[d.Find(p)]
}

// Roots returns the current root of every subset in ascending order.
// Complexity: O(n).
func (d *DisjointSet) Roots() []int {
	roots := make([]int, 0, d.count)
	for i, p := range d.parent {
		if i == p {
			roots = append(roots, i)
		}
	}

	return roots
}

// Sets returns every subset as an ascending slice of elements.
// Subsets are ordered by their smallest element, so the output is deterministic.
//
// Complexity: O(n·α(n)) time, O(n) memory.
func (d *DisjointSet) Sets() [][]int {
	// slot maps a root to its position in out; filled in element order,
	// which yields both orderings for free.
	slot := make(map[int]int, d.count)
	out := make([][]int, 0, d.count)
	for i := range d.parent {
		root := d.find(i)
		k, ok := slot[root]
		if !ok {
			k = len(out)
			slot[root] = k
			out = append(out, make([]int, 0, d.size[root]))
		}
		out[k] = append(out[k], i)
	}

	return out
}

// Clone returns an independent deep copy, options included.
func (d *DisjointSet) Clone() *DisjointSet {
	c := &DisjointSet{
		parent: make([]int, len(d.parent)),
		size:   make([]int, len(d.size)),
		count:  d.count,
		bySize: d.bySize,
	}
	copy(c.parent, d.parent)
	copy(c.size, d.size)

	return c
}

// Reset puts every element back into its own singleton subset.
func (d *DisjointSet) Reset() {
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}
	d.count = len(d.parent)
}

// String formats the partition, largest subsets first, e.g.
//
//	DisjointSet(5, count=2)[[0 1 2] [3 4]]
func (d *DisjointSet) String() string {
	sets := d.Sets()
	sort.SliceStable(sets, func(i, j int) bool {
		return len(sets[i]) > len(sets[j])
	})

	var sb strings.Builder
	fmt.Fprintf(&sb, "DisjointSet(%d, count=%d)[", len(d.parent), d.count)
	for i, set := range sets {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, set)
	}
	sb.WriteByte(']')

	return sb.String()
}
