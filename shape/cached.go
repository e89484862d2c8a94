package shape

import (
	"math"

	"github.com/go-text/typesetting/language"

	"github.com/gogpu/textlayout/fonts"
	"github.com/gogpu/textlayout/internal/cache"
)

// DefaultCacheLimit is the entry limit used when NewCached gets limit <= 0.
const DefaultCacheLimit = 1024

// cacheKey includes every Input field that affects the result except
// MaxGlyphs, which is checked on the way out.
type cacheKey struct {
	font        *fonts.Font
	text        string
	sizeBits    uint64
	sideways    bool
	rtl         bool
	script      language.Script
	locale      string
	pairKerning bool
}

type cacheEntry struct {
	glyphs    Glyphs
	placement Placement
}

// Cached memoizes the results of another Shaper.
//
// Cached is safe for concurrent use when the inner shaper is.
type Cached struct {
	inner   Shaper
	entries *cache.Cache[cacheKey, cacheEntry]
}

// NewCached wraps inner with an LRU of at most limit shaped runs.
func NewCached(inner Shaper, limit int) *Cached {
	if limit <= 0 {
		limit = DefaultCacheLimit
	}
	return &Cached{
		inner:   inner,
		entries: cache.New[cacheKey, cacheEntry](limit),
	}
}

// Glyphs implements Shaper.
func (c *Cached) Glyphs(in Input) (Glyphs, error) {
	if in.Face == nil {
		return c.inner.Glyphs(in)
	}

	key := cacheKey{
		font:        in.Face.Font(),
		text:        string(in.Text),
		sizeBits:    math.Float64bits(in.Size),
		sideways:    in.Sideways,
		rtl:         in.RTL,
		script:      in.Script,
		locale:      in.Locale,
		pairKerning: in.PairKerning,
	}
	e, err := c.entries.GetOrCreate(key, func() (cacheEntry, error) {
		unbounded := in
		unbounded.MaxGlyphs = 0
		g, err := c.inner.Glyphs(unbounded)
		if err != nil {
			return cacheEntry{}, err
		}
		p, err := c.inner.Place(unbounded, g)
		if err != nil {
			return cacheEntry{}, err
		}
		return cacheEntry{glyphs: g, placement: p}, nil
	})
	if err != nil {
		return Glyphs{}, err
	}
	if err := checkBuffer(in, e.glyphs.Count()); err != nil {
		return Glyphs{}, err
	}

	out := Glyphs{
		Indices:    append([]uint32(nil), e.glyphs.Indices...),
		ClusterMap: append([]int(nil), e.glyphs.ClusterMap...),
		placement:  &e.placement,
	}
	return out, nil
}

// Place implements Shaper.
func (c *Cached) Place(in Input, g Glyphs) (Placement, error) {
	if g.placement == nil {
		return c.inner.Place(in, g)
	}
	return g.placement.clone(), nil
}

// CacheStats reports shaping cache usage.
type CacheStats = cache.Stats

// Stats returns the statistics of the underlying cache.
func (c *Cached) Stats() CacheStats {
	return c.entries.Stats()
}
