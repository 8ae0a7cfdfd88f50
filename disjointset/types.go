// Package disjointset defines the DisjointSet type, its construction options
// and the sentinel errors reported for invalid element indices.
package disjointset

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates that an element index lies outside [0, n).
// Find and Connected panic with an error wrapping it; the *Checked variants return it.
var ErrIndexOutOfRange = errors.New("disjointset: element index out of range")

// DisjointSet partitions the elements 0..n-1 into disjoint subsets.
//
// Fields:
//
//	parent — parent[i] is i's parent in the implicit forest; a root satisfies parent[r] == r.
//	size   — size[r] is the number of elements under root r (meaningless for non-roots).
//	count  — number of distinct subsets (roots) currently represented.
//
// A DisjointSet is not safe for concurrent use: Find compresses paths, so even
// read-only looking calls mutate state. Wrap it in a Locked to share it.
type DisjointSet struct {
	parent []int
	size   []int
	count  int

	// bySize enables union-by-size balancing; see WithUnionBySize.
	bySize bool
}

// Option configures a DisjointSet at construction time.
type Option func(*DisjointSet)

// WithUnionBySize attaches the smaller tree under the larger root on Union.
// On equal sizes the first argument's root stays the root.
// Balancing changes tree shape but never connectivity results.
func WithUnionBySize() Option {
	return func(d *DisjointSet) {
		d.bySize = true
	}
}

// outOfRange builds the error used for index violations.
func outOfRange(p, n int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, p, n)
}
