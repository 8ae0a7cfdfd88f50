package disjointset

// New creates a DisjointSet over the elements 0..n-1, each in its own singleton subset.
// A negative n is clamped to 0, producing an empty structure with Count() == 0.
//
// Complexity: O(n) time and memory.
func New(n int, opts ...Option) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		d.parent[i] = i
		d.size[i] = 1
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Len returns the universe size n fixed at construction.
func (d *DisjointSet) Len() int {
	return len(d.parent)
}

// Count returns the number of disjoint subsets. O(1), no side effects.
func (d *DisjointSet) Count() int {
	return d.count
}

// Contains reports whether p is a valid element index, i.e. 0 <= p < Len().
func (d *DisjointSet) Contains(p int) bool {
	return p >= 0 && p < len(d.parent)
}

// Find returns the root of the subset containing p.
//
// Every node visited on the way is re-pointed directly at the root
// (full path compression). Membership and Count are never changed.
//
// Find panics with an error wrapping ErrIndexOutOfRange if p is not a valid index.
// Use FindChecked to get the error instead.
//
// Complexity: amortized O(log n) without balancing, near O(1) with WithUnionBySize.
func (d *DisjointSet) Find(p int) int {
	if !d.Contains(p) {
		panic(outOfRange(p, len(d.parent)))
	}

	return d.find(p)
}

// FindChecked is Find returning ErrIndexOutOfRange instead of panicking.
func (d *DisjointSet) FindChecked(p int) (int, error) {
	if !d.Contains(p) {
		return -1, outOfRange(p, len(d.parent))
	}

	return d.find(p), nil
}

// find is the unchecked two-pass walk. p must be in range.
func (d *DisjointSet) find(p int) int {
	// 1. Walk up to the root.
	root := p
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// 2. Rewrite every node on the path to point at the root.
	for p != root {
		next := d.parent[p]
		d.parent[p] = root
		p = next
	}

	return root
}

// Union merges the subsets containing p and q and reports whether a merge happened.
//
// If p or q is outside [0, n) the call is silently ignored and returns false.
// If both already share a root nothing changes and false is returned.
// Otherwise q's root is attached under p's root (or the smaller tree under the
// larger one with WithUnionBySize) and Count drops by exactly one.
func (d *DisjointSet) Union(p, q int) bool {
	if !d.Contains(p) || !d.Contains(q) {
		return false
	}
	rootP, rootQ := d.find(p), d.find(q)
	if rootP == rootQ {
		return false
	}
	if d.bySize && d.size[rootP] < d.size[rootQ] {
		rootP, rootQ = rootQ, rootP
	}
	d.parent[rootQ] = rootP
	d.size[rootP] += d.size[rootQ]
	d.count--

	return true
}

// Connected reports whether p and q belong to the same subset.
// It panics like Find on invalid indices.
func (d *DisjointSet) Connected(p, q int) bool {
	return d.Find(p) == d.Find(q)
}

// ConnectedChecked is Connected returning ErrIndexOutOfRange instead of panicking.
func (d *DisjointSet) ConnectedChecked(p, q int) (bool, error) {
	rootP, err := d.FindChecked(p)
	if err != nil {
		return false, err
	}
	rootQ, err := d.FindChecked(q)
	if err != nil {
		return false, err
	}

	return rootP == rootQ, nil
}
