package store

import (
	"sync"

	"github.com/vwa-labs/vaultledger/internal/domain"
)

// TradeStore is a thread-safe append-only log of executed trades, in
// execution order.
type TradeStore struct {
	mu     sync.RWMutex
	trades []*domain.Trade
}

// NewTradeStore creates an empty TradeStore.
func NewTradeStore() *TradeStore {
	return &TradeStore{}
}

// Append adds an executed trade to the log.
func (s *TradeStore) Append(t *domain.Trade) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trades = append(s.trades, t)
}

// List returns trades in execution order, optionally filtered by asset
// address. Pagination is 1-based. The second return is the total match
// count before pagination.
func (s *TradeStore) List(assetAddress *string, page, limit int) ([]*domain.Trade, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]*domain.Trade, 0, len(s.trades))
	for _, t := range s.trades {
		if assetAddress != nil && t.AssetAddress != *assetAddress {
			continue
		}
		filtered = append(filtered, t)
	}

	return paginate(filtered, page, limit)
}
