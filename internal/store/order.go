package store

import (
	"sync"

	"github.com/vwa-labs/vaultledger/internal/domain"
)

// OrderStore is a thread-safe arena of trade order records keyed by their
// derived address, with a per-owner sequence counter feeding the address
// derivation.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]*domain.TradeOrder
	seqs   map[string]uint64 // owner → next order sequence
}

// NewOrderStore creates an empty OrderStore.
func NewOrderStore() *OrderStore {
	return &OrderStore{
		orders: make(map[string]*domain.TradeOrder),
		seqs:   make(map[string]uint64),
	}
}

// NextSequence returns the owner's next order sequence number and advances
// the counter.
func (s *OrderStore) NextSequence(owner string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.seqs[owner]
	s.seqs[owner] = seq + 1
	return seq
}

// Create places an order record at its address. It returns
// domain.ErrDuplicateOrder if a record already exists there.
func (s *OrderStore) Create(o *domain.TradeOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.orders[o.Address]; exists {
		return domain.ErrDuplicateOrder
	}
	s.orders[o.Address] = o
	return nil
}

// Get retrieves an order by address. It returns domain.ErrOrderNotFound if
// no record exists there.
func (s *OrderStore) Get(address string) (*domain.TradeOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[address]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return o, nil
}

// OrderFilter narrows a List call. Nil fields match everything.
type OrderFilter struct {
	AssetAddress *string
	OwnerID      *string
	OrderType    *domain.OrderType
	IsActive     *bool
}

// List returns orders matching the filter in creation order (oldest first).
// Pagination is 1-based. The second return is the total match count before
// pagination.
func (s *OrderStore) List(f OrderFilter, page, limit int) ([]*domain.TradeOrder, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]*domain.TradeOrder, 0)
	for _, o := range s.orders {
		if f.AssetAddress != nil && o.AssetAddress != *f.AssetAddress {
			continue
		}
		if f.OwnerID != nil && o.OwnerID != *f.OwnerID {
			continue
		}
		if f.OrderType != nil && o.OrderType != *f.OrderType {
			continue
		}
		if f.IsActive != nil && o.IsActive != *f.IsActive {
			continue
		}
		filtered = append(filtered, o)
	}
	sortOrders(filtered)

	return paginate(filtered, page, limit)
}

// CountActive returns the number of active orders.
func (s *OrderStore) CountActive() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, o := range s.orders {
		if o.IsActive {
			n++
		}
	}
	return n
}
