// Package disjointset provides a fixed-size disjoint-set (union-find) structure
// over the integer elements 0..n-1, with full path compression.
//
// What & Why
//
//   - A DisjointSet keeps a partition of n elements into non-overlapping subsets.
//     Subsets only ever merge, never split, so Count() is monotonically non-increasing.
//   - Typical uses: dynamic connectivity ("are p and q connected yet?"),
//     Kruskal's minimum spanning tree, counting islands on a grid, clustering.
//
// Operations
//
//   - New(n, opts...)      — n singletons, Count() == n. Negative n is clamped to 0.
//   - Union(p, q) bool     — merge; out-of-range p or q is a silent no-op.
//   - Find(p) int          — root of p's subset, compressing the path walked.
//   - Connected(p, q) bool — Find(p) == Find(q).
//   - Count() int          — number of subsets, O(1).
//
// Tie-break
//
// By default Union always attaches q's root under p's root, with no balancing.
// WithUnionBySize() attaches the smaller tree under the larger one instead;
// this can change which element is reported as root, but never the results
// of Connected or Count.
//
// Invalid indices
//
//   - Union ignores them and returns false.
//   - Find, Connected and SizeOf panic with an error wrapping ErrIndexOutOfRange,
//     the same contract as indexing a slice out of bounds.
//   - FindChecked and ConnectedChecked return the error instead.
//
// Concurrency
//
// DisjointSet is not goroutine-safe: Find mutates parent pointers. Use Locked
// (NewLocked) to share one structure between goroutines.
//
// Complexity
//
//   - Find/Union: amortized O(log n) with path compression alone,
//     O(α(n)) with WithUnionBySize.
//   - Memory: O(n).
package disjointset
