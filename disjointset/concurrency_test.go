// Package disjointset_test verifies that Locked serializes concurrent access.
package disjointset_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/unionfind/disjointset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLocked_ConcurrentUnion links every element to its neighbor from many goroutines
// and expects a single subset in the end.
func TestLocked_ConcurrentUnion(t *testing.T) {
	const n = 500
	l := disjointset.NewLocked(n, disjointset.WithUnionBySize())

	var wg sync.WaitGroup
	wg.Add(n - 1)
	for i := 0; i < n-1; i++ {
		go func(i int) {
			defer wg.Done()
			l.Union(i, i+1)
			// Interleave reads with writes.
			_, err := l.Connected(0, i)
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, l.Count())
	ok, err := l.Connected(0, n-1)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestLocked_Errors checks that Locked reports bad indices as errors.
func TestLocked_Errors(t *testing.T) {
	l := disjointset.NewLocked(2)
	assert.Equal(t, 2, l.Len())
	assert.False(t, l.Union(0, 2))

	_, err := l.Find(2)
	assert.ErrorIs(t, err, disjointset.ErrIndexOutOfRange)
	_, err = l.Connected(-1, 0)
	assert.ErrorIs(t, err, disjointset.ErrIndexOutOfRange)

	require.True(t, l.Union(1, 0))
	root, err := l.Find(0)
	require.NoError(t, err)
	assert.Equal(t, 1, root)

	snap := l.Snapshot()
	l.Union(0, 1)
	assert.Equal(t, 1, snap.Count())
}
