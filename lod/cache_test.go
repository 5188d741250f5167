package lod_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/attrlod/aps"
	"github.com/katalvlaran/attrlod/lod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestNewCache_InvalidSize(t *testing.T) {
	_, err := lod.NewCache(0)
	assert.Error(t, err)
}

// TestCache_Ensure builds once per key and reuses afterwards.
func TestCache_Ensure(t *testing.T) {
	cs := &countingSearcher{inner: lod.KDSearcher{}}
	c, err := lod.NewCache(4, lod.WithSearcher(cs))
	require.NoError(t, err)

	cloud := randomCloud(t, 100, 32, 3)
	params := liftingParams()

	b, rebuilt, err := c.Ensure("slice-0", params, cloud.Len()-1, 0, cloud)
	require.NoError(t, err)
	assert.True(t, rebuilt)
	assert.True(t, b.Built())
	assert.Equal(t, 1, c.Len())

	// Same key, compatible parameters: no rebuild.
	other := params.Clone()
	other.Transform = aps.Predicting
	again, rebuilt, err := c.Ensure("slice-0", other, cloud.Len()-1, 0, cloud)
	require.NoError(t, err)
	assert.False(t, rebuilt)
	assert.Same(t, b, again)

	// A new key builds its own structure.
	_, rebuilt, err = c.Ensure("slice-1", params, cloud.Len()-1, 0, cloud)
	require.NoError(t, err)
	assert.True(t, rebuilt)
	assert.Equal(t, 2, cs.calls)
	assert.Equal(t, 2, c.Len())

	got, ok := c.Get("slice-1")
	require.True(t, ok)
	assert.True(t, got.Built())

	c.Remove("slice-1")
	_, ok = c.Get("slice-1")
	assert.False(t, ok)
}

// TestCache_Eviction drops the least recently used builder.
func TestCache_Eviction(t *testing.T) {
	c, err := lod.NewCache(1)
	require.NoError(t, err)
	cloud := lineCloud(t, 16)

	_, _, err = c.Ensure("a", liftingParams(), cloud.Len()-1, 0, cloud)
	require.NoError(t, err)
	_, _, err = c.Ensure("b", liftingParams(), cloud.Len()-1, 0, cloud)
	require.NoError(t, err)

	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)
}

// TestCache_EnsureError does not cache a builder whose first build failed.
func TestCache_EnsureError(t *testing.T) {
	c, err := lod.NewCache(2)
	require.NoError(t, err)
	cloud := lineCloud(t, 8)

	_, _, err = c.Ensure("bad", liftingParams(), cloud.Len(), 0, cloud)
	require.Error(t, err)
	assert.True(t, lod.IsFatal(err))
	assert.Equal(t, 0, c.Len())
}

// TestCache_ConcurrentDistinctKeys runs Ensure for distinct keys from
// several goroutines; run with -race.
func TestCache_ConcurrentDistinctKeys(t *testing.T) {
	const keys = 8
	c, err := lod.NewCache(keys)
	require.NoError(t, err)
	cloud := randomCloud(t, 300, 32, 21)

	var g errgroup.Group
	for i := 0; i < keys; i++ {
		key := fmt.Sprintf("frame-%d", i)
		g.Go(func() error {
			for round := 0; round < 3; round++ {
				params := liftingParams()
				if round == 1 {
					params.Transform = aps.Predicting
				}
				if _, _, err := c.Ensure(key, params, cloud.Len()-1, 0, cloud); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, keys, c.Len())
	ref := lod.NewBuilder()
	require.NoError(t, ref.Generate(liftingParams(), cloud.Len()-1, 0, cloud))
	for i := 0; i < keys; i++ {
		b, ok := c.Get(fmt.Sprintf("frame-%d", i))
		require.True(t, ok, "frame-%d", i)
		assert.Equal(t, ref.Structure(), b.Structure(), "frame-%d", i)
	}
}
