package casper

import lru "github.com/hashicorp/golang-lru"

// defaultCommitteeCacheSize bounds how many per-index committees are kept
// in memory at once. Committees for indices at or before the current
// epoch boundary can be rebuilt deterministically from accepted
// proposals and the epoch's recorded threshold, so evicting them costs
// nothing but a recomputation on the next lookup.
const defaultCommitteeCacheSize = 8192

// committeeCache is an LRU-bounded view over the full committees map. A
// miss does not mean the index is invalid: the caller falls back to
// rebuildCommittees using accepted_proposals and thresholds, which are
// retained for every epoch in the valid query window.
type committeeCache struct {
	lru *lru.Cache
}

func newCommitteeCache(size int) *committeeCache {
	c, err := lru.New(size)
	if err != nil {
		invariantf("could not construct committee cache: %v", err)
	}
	return &committeeCache{lru: c}
}

func (c *committeeCache) put(index uint64, committee []SelectedAuthority) {
	c.lru.Add(index, committee)
}

func (c *committeeCache) putAll(committees map[uint64][]SelectedAuthority) {
	for index, committee := range committees {
		c.put(index, committee)
	}
}

func (c *committeeCache) get(index uint64) ([]SelectedAuthority, bool) {
	v, ok := c.lru.Get(index)
	if !ok {
		return nil, false
	}
	return v.([]SelectedAuthority), true
}
