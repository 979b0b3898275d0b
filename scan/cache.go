package scan

import (
	"bytes"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/gernest/sift/cell"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache memoizes scan results keyed by (store generation, bounds, filter
// config). Any write advances the generation, so stale entries age out of
// the LRU instead of being served. Entries are copied in and out, so a
// caller editing its results cannot corrupt later hits.
type Cache struct {
	lru *lru.Cache[uint64, []Result]
}

func NewCache(entries int) (*Cache, error) {
	c, err := lru.New[uint64, []Result](entries)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: c}, nil
}

func (c *Cache) get(key uint64) ([]Result, bool) {
	if c == nil {
		return nil, false
	}
	res, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	return cloneResults(res), true
}

func (c *Cache) put(key uint64, res []Result) {
	if c == nil {
		return
	}
	c.lru.Add(key, cloneResults(res))
}

func cloneResults(res []Result) []Result {
	out := make([]Result, len(res))
	for i, r := range res {
		cells := make([]cell.Cell, len(r.Cells))
		for j, cl := range r.Cells {
			cells[j] = cl.Clone()
		}
		out[i] = Result{Row: bytes.Clone(r.Row), Cells: cells}
	}
	return out
}

// cacheKey hashes gen, the bounds and the filter's serialized config.
// Serialization captures configuration only, so a filter that already ran
// would alias the fresh entry; the caller skips the cache for those.
func cacheKey(gen uint64, req Request, filterConfig []byte) uint64 {
	h := xxhash.New()
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], gen)
	h.Write(b[:])
	h.Write(req.Start)
	h.Write([]byte{0})
	h.Write(req.Stop)
	h.Write([]byte{0})
	h.Write(filterConfig)
	return h.Sum64()
}
