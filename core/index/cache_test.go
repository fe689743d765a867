package index

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"collection-manager/core/catalog"
	"collection-manager/core/catalog/catalogtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	loads atomic.Int32
	err   error
}

func (s *countingSource) Key() string { return "counting" }

func (s *countingSource) Load(ctx context.Context) (*catalog.Catalog, error) {
	s.loads.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return catalogtest.Catalog(), nil
}

func TestCache_GetOrBuild(t *testing.T) {
	ctx := context.Background()

	t.Run("ReusesFreshEntry", func(t *testing.T) {
		src := &countingSource{}
		c := NewCache(time.Minute)

		first, err := c.GetOrBuild(ctx, src)
		require.NoError(t, err)
		second, err := c.GetOrBuild(ctx, src)
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, int32(1), src.loads.Load())
	})

	t.Run("RebuildsAfterTTL", func(t *testing.T) {
		src := &countingSource{}
		c := NewCache(time.Minute)
		now := time.Now()
		c.now = func() time.Time { return now }

		_, err := c.GetOrBuild(ctx, src)
		require.NoError(t, err)

		now = now.Add(2 * time.Minute)
		_, err = c.GetOrBuild(ctx, src)
		require.NoError(t, err)
		assert.Equal(t, int32(2), src.loads.Load())
	})

	t.Run("ZeroTTLDisablesCaching", func(t *testing.T) {
		src := &countingSource{}
		c := NewCache(0)

		_, _ = c.GetOrBuild(ctx, src)
		_, _ = c.GetOrBuild(ctx, src)
		assert.Equal(t, int32(2), src.loads.Load())
	})

	t.Run("Invalidate", func(t *testing.T) {
		src := &countingSource{}
		c := NewCache(time.Hour)

		_, _ = c.GetOrBuild(ctx, src)
		c.Invalidate(src)
		_, _ = c.GetOrBuild(ctx, src)
		assert.Equal(t, int32(2), src.loads.Load())
	})

	t.Run("LoadError", func(t *testing.T) {
		src := &countingSource{err: errors.New("snapshot unavailable")}
		c := NewCache(time.Hour)

		idx, err := c.GetOrBuild(ctx, src)
		assert.Nil(t, idx)
		assert.ErrorContains(t, err, "snapshot unavailable")
	})

	t.Run("ConcurrentCallersGetAnIndex", func(t *testing.T) {
		src := &countingSource{}
		c := NewCache(time.Hour)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				idx, err := c.GetOrBuild(ctx, src)
				assert.NoError(t, err)
				assert.NotNil(t, idx)
			}()
		}
		wg.Wait()
		assert.GreaterOrEqual(t, src.loads.Load(), int32(1))
	})
}
