package index

import (
	"context"
	"testing"
	"time"

	"collection-manager/core/catalog/catalogtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic(t *testing.T) {
	idx := Build(catalogtest.Catalog())

	got, err := Static(idx).Index(context.Background())
	require.NoError(t, err)
	assert.Same(t, idx, got)
}

func TestCached(t *testing.T) {
	src := &countingSource{}
	p := Cached(NewCache(time.Hour), src)

	first, err := p.Index(context.Background())
	require.NoError(t, err)
	second, err := p.Index(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.True(t, first.Has(catalogtest.LightningBolt))
	assert.Equal(t, int32(1), src.loads.Load())
}
