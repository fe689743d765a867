package index

import (
	"context"

	"collection-manager/core/catalog"
)

// Provider hands out the index to use for one operation.
type Provider interface {
	Index(ctx context.Context) (*Index, error)
}

type staticProvider struct {
	idx *Index
}

// Static returns a provider that always returns idx.
func Static(idx *Index) Provider {
	return staticProvider{idx: idx}
}

func (p staticProvider) Index(context.Context) (*Index, error) {
	return p.idx, nil
}

type cachedProvider struct {
	cache *Cache
	src   catalog.Source
}

// Cached returns a provider serving src through cache, rebuilding when the entry expires.
func Cached(cache *Cache, src catalog.Source) Provider {
	return cachedProvider{cache: cache, src: src}
}

func (p cachedProvider) Index(ctx context.Context) (*Index, error) {
	return p.cache.GetOrBuild(ctx, p.src)
}
