// Package blockstore provides an in-memory implementation of the
// casper.BlockStore contract, standing in for the real block store
// (persistence, networking and structural validation are all out of
// scope for the authority rotation engine, see SPEC_FULL.md).
package blockstore

import (
	"sync"

	"github.com/chainlabs/authority-rotation/beacon-chain/casper"
)

// Memory is a simple, goroutine-safe append-only store of headers keyed
// by index, used by tests and by the replay CLI to feed the rotation
// engine without a real networked block store.
type Memory struct {
	mu      sync.RWMutex
	headers map[uint64]*casper.Header
	best    uint64
}

// NewMemory returns an empty in-memory block store.
func NewMemory() *Memory {
	return &Memory{headers: make(map[uint64]*casper.Header)}
}

// Insert adds a header to the store, advancing the best index if needed.
func (m *Memory) Insert(header *casper.Header) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.headers[header.Index] = header
	if header.Index > m.best {
		m.best = header.Index
	}
}

// BestBlockIndex implements casper.BlockStore.
func (m *Memory) BestBlockIndex() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.best
}

// GetHeaderByIndex implements casper.BlockStore.
func (m *Memory) GetHeaderByIndex(index uint64) (*casper.Header, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.headers[index]
	return h, ok
}
