package density

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// NewCachedProvider memoizes the per-year densities of p. A non-positive
// expiration keeps entries for the lifetime of the provider.
func NewCachedProvider(p Provider, expiration time.Duration) Provider {
	if p == nil {
		return nil
	}

	cleanupInterval := expiration * 2
	if expiration <= 0 {
		expiration = cache.NoExpiration
		cleanupInterval = 0
	}

	return &cachedProvider{
		p:     p,
		cache: cache.New(expiration, cleanupInterval),
	}
}

type cachedProvider struct {
	p     Provider
	cache *cache.Cache
}

func (impl *cachedProvider) AboveGroundCarbonPerArea(year int) float64 {
	return impl.get("a:"+strconv.Itoa(year), year, impl.p.AboveGroundCarbonPerArea)
}

func (impl *cachedProvider) BelowGroundCarbonPerArea(year int) float64 {
	return impl.get("b:"+strconv.Itoa(year), year, impl.p.BelowGroundCarbonPerArea)
}

func (impl *cachedProvider) get(key string, year int, fn FNDensity) float64 {
	if i, ok := impl.cache.Get(key); ok {
		if d, ok := i.(float64); ok {
			return d
		}
	}

	d := fn(year)
	impl.cache.SetDefault(key, d)

	return d
}
