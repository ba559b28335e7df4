package directory

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/wichananm65/advocate-directory/internal/advocate"
)

// DefaultCacheSize is the number of (store, state) results an Engine keeps.
const DefaultCacheSize = 256

type cacheKey struct {
	generation uint64
	state      string
}

// Engine memoizes Filter by store generation and canonical state. Results are the
// same as calling Filter directly; slices returned by Filter are shared between
// callers and must not be modified.
type Engine struct {
	cache *lru.Cache[cacheKey, []advocate.Advocate]
}

func NewEngine(size int) (*Engine, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[cacheKey, []advocate.Advocate](size)
	if err != nil {
		return nil, err
	}
	return &Engine{cache: cache}, nil
}

func (e *Engine) Filter(store *Store, s FilterState) []advocate.Advocate {
	if store == nil {
		return Filter(nil, s)
	}
	key := cacheKey{generation: store.Generation(), state: s.Key()}
	if out, ok := e.cache.Get(key); ok {
		filterEvaluations.WithLabelValues("hit").Inc()
		return out
	}

	start := time.Now()
	out := Filter(store, s)
	filterDuration.Observe(time.Since(start).Seconds())
	filterEvaluations.WithLabelValues("miss").Inc()

	e.cache.Add(key, out)
	return out
}

// Purge drops every memoized result.
func (e *Engine) Purge() {
	e.cache.Purge()
}
