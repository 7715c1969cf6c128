package store

import (
	"sync"

	"github.com/google/btree"
)

// PriceTick is one recorded price observation for an asset.
type PriceTick struct {
	AssetAddress string
	Price        int64
	Source       string // "initial" or "update"
	At           int64  // unix seconds
	seq          uint64 // insertion order, separates ticks within one second
}

// tickLess orders ticks by time ascending, then insertion order. Min() is
// the oldest tick.
func tickLess(a, b PriceTick) bool {
	if a.At != b.At {
		return a.At < b.At
	}
	return a.seq < b.seq
}

// HistoryStore keeps one time-ordered price tick series per asset, backed
// by B-trees so window queries are range scans.
type HistoryStore struct {
	mu      sync.RWMutex
	series  map[string]*btree.BTreeG[PriceTick] // asset address → ticks
	nextSeq uint64
	count   int
}

// NewHistoryStore creates an empty HistoryStore.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		series: make(map[string]*btree.BTreeG[PriceTick]),
	}
}

// Record appends a price tick to the asset's series.
func (s *HistoryStore) Record(assetAddress string, price int64, source string, at int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tree, ok := s.series[assetAddress]
	if !ok {
		const degree = 32
		tree = btree.NewG[PriceTick](degree, tickLess)
		s.series[assetAddress] = tree
	}

	tree.ReplaceOrInsert(PriceTick{
		AssetAddress: assetAddress,
		Price:        price,
		Source:       source,
		At:           at,
		seq:          s.nextSeq,
	})
	s.nextSeq++
	s.count++
}

// Window returns the asset's ticks with from ≤ At < to, oldest first.
func (s *HistoryStore) Window(assetAddress string, from, to int64) []PriceTick {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tree, ok := s.series[assetAddress]
	if !ok {
		return []PriceTick{}
	}

	ticks := make([]PriceTick, 0)
	tree.AscendRange(PriceTick{At: from}, PriceTick{At: to}, func(t PriceTick) bool {
		ticks = append(ticks, t)
		return true
	})
	return ticks
}

// Latest returns the most recent tick for the asset, or false if the asset
// has no recorded prices.
func (s *HistoryStore) Latest(assetAddress string) (PriceTick, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tree, ok := s.series[assetAddress]
	if !ok {
		return PriceTick{}, false
	}
	return tree.Max()
}

// Count returns the total number of ticks recorded across all assets.
func (s *HistoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}
