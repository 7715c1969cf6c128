// Package store holds the in-memory record arenas: one fixed-schema record
// per asset, order, trade, and price tick, keyed by identity-derived
// addresses. Stores guard record placement and lookup; record semantics
// live in the services and the trade executor.
package store

import (
	"sync"

	"github.com/vwa-labs/vaultledger/internal/domain"
)

// AssetStore is a thread-safe arena of asset records keyed by their derived
// address, with a per-owner sequence counter feeding the address derivation.
type AssetStore struct {
	mu     sync.RWMutex
	assets map[string]*domain.Asset
	seqs   map[string]uint64 // owner → next asset sequence
}

// NewAssetStore creates an empty AssetStore.
func NewAssetStore() *AssetStore {
	return &AssetStore{
		assets: make(map[string]*domain.Asset),
		seqs:   make(map[string]uint64),
	}
}

// NextSequence returns the owner's next asset sequence number and advances
// the counter.
func (s *AssetStore) NextSequence(owner string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.seqs[owner]
	s.seqs[owner] = seq + 1
	return seq
}

// Create places an asset record at its address. It returns
// domain.ErrDuplicateAsset if a record already exists there.
func (s *AssetStore) Create(a *domain.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.assets[a.Address]; exists {
		return domain.ErrDuplicateAsset
	}
	s.assets[a.Address] = a
	return nil
}

// Get retrieves an asset by address. It returns domain.ErrAssetNotFound if
// no record exists there.
func (s *AssetStore) Get(address string) (*domain.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.assets[address]
	if !ok {
		return nil, domain.ErrAssetNotFound
	}
	return a, nil
}

// AssetFilter narrows a List call. Nil fields match everything.
type AssetFilter struct {
	AssetType *domain.AssetType
	OwnerID   *string
	IsActive  *bool
}

// List returns assets matching the filter in creation order (oldest first).
// Pagination is 1-based. The second return is the total match count before
// pagination.
func (s *AssetStore) List(f AssetFilter, page, limit int) ([]*domain.Asset, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]*domain.Asset, 0)
	for _, a := range s.assets {
		if f.AssetType != nil && a.AssetType != *f.AssetType {
			continue
		}
		if f.OwnerID != nil && a.OwnerID != *f.OwnerID {
			continue
		}
		if f.IsActive != nil && a.IsActive != *f.IsActive {
			continue
		}
		filtered = append(filtered, a)
	}
	sortAssets(filtered)

	return paginate(filtered, page, limit)
}

// All returns a copy of every asset record, unordered.
func (s *AssetStore) All() []*domain.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*domain.Asset, 0, len(s.assets))
	for _, a := range s.assets {
		all = append(all, a)
	}
	return all
}

// Count returns the number of active assets and the sum of
// currentPrice × weight over them.
func (s *AssetStore) Count() (active int, totalValue int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.assets {
		if !a.IsActive {
			continue
		}
		active++
		totalValue += a.CurrentPrice * a.Weight
	}
	return active, totalValue
}
