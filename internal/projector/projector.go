package projector

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"insighthub/internal/model"
)

const (
	defaultCacheSize = 256
	defaultCacheTTL  = 10 * time.Minute
)

type cacheKey struct {
	revision uint64
	term     string
	sort     model.SortOption
}

// Projector memoizes Project results per catalog revision.
type Projector struct {
	cache *expirable.LRU[cacheKey, model.Catalog]
}

// New creates a Projector. Non-positive size or ttl fall back to defaults.
func New(size int, ttl time.Duration) *Projector {
	if size <= 0 {
		size = defaultCacheSize
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Projector{
		cache: expirable.NewLRU[cacheKey, model.Catalog](size, nil, ttl),
	}
}

// Project returns the view of c for term and sort. revision must identify c: two calls with
// the same revision are assumed to pass the same catalog.
func (p *Projector) Project(revision uint64, c model.Catalog, term string, sort model.SortOption) model.Catalog {
	key := cacheKey{revision: revision, term: strings.ToLower(term), sort: sort}

	if cached, ok := p.cache.Get(key); ok {
		return cached.Clone()
	}

	view := Project(c, term, sort)
	p.cache.Add(key, view.Clone())
	return view
}

// Len reports the number of cached views.
func (p *Projector) Len() int {
	return p.cache.Len()
}
