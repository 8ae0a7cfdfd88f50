package disjointset

import "sync"

// Locked serializes every operation on a DisjointSet behind one mutex.
//
// A plain sync.Mutex is used rather than an RWMutex: Find compresses paths,
// so there are no true read-only operations.
type Locked struct {
	mu sync.Mutex
	ds *DisjointSet
}

// NewLocked creates a goroutine-safe DisjointSet over 0..n-1.
func NewLocked(n int, opts ...Option) *Locked {
	return &Locked{ds: New(n, opts...)}
}

// Union merges the subsets of p and q. See DisjointSet.Union.
func (l *Locked) Union(p, q int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.ds.Union(p, q)
}

// Find returns p's root or ErrIndexOutOfRange. Locked never panics on bad indices.
func (l *Locked) Find(p int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.ds.FindChecked(p)
}

// Connected reports whether p and q share a subset, or ErrIndexOutOfRange.
func (l *Locked) Connected(p, q int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.ds.ConnectedChecked(p, q)
}

// Count returns the number of subsets.
func (l *Locked) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.ds.Count()
}

// Len returns the universe size.
func (l *Locked) Len() int {
	// parent is never resized, so no lock is needed.
	return l.ds.Len()
}

// Snapshot returns a deep copy taken under the lock, for inspection without holding it.
func (l *Locked) Snapshot() *DisjointSet {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.ds.Clone()
}
