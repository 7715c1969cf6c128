package service

import (
	"github.com/vwa-labs/vaultledger/internal/domain"
	"github.com/vwa-labs/vaultledger/internal/ledger"
	"github.com/vwa-labs/vaultledger/internal/store"
)

// CreateOrderRequest represents the input for order creation.
type CreateOrderRequest struct {
	AssetAddress string
	Owner        string
	OrderType    domain.OrderType
	Quantity     int64
	PricePerUnit int64
}

// OrderService is the order book: it owns the lifecycle of trade order
// records. Consumption is the one mutation it does not perform itself;
// that primitive belongs to the trade executor.
type OrderService struct {
	orders *store.OrderStore
	seq    *ledger.Sequencer
	clock  ledger.Clock
}

// NewOrderService creates a new OrderService with the given dependencies.
func NewOrderService(orders *store.OrderStore, seq *ledger.Sequencer, clock ledger.Clock) *OrderService {
	return &OrderService{
		orders: orders,
		seq:    seq,
		clock:  clock,
	}
}

// CreateOrder registers a standing trade order against an asset reference.
// Deliberately absent checks, matching the registry's public contract: the
// referenced asset need not exist or be active, the owner need not hold any
// relation to it, and quantity may be any value — a non-positive quantity
// only surfaces at execution time.
func (s *OrderService) CreateOrder(req CreateOrderRequest) (*domain.TradeOrder, error) {
	if !identityRegex.MatchString(req.Owner) {
		return nil, &domain.ValidationError{
			Message: "owner must match ^[a-zA-Z0-9_-]{1,64}$",
		}
	}
	if req.AssetAddress == "" {
		return nil, &domain.ValidationError{
			Message: "asset_address is required",
		}
	}
	if !req.OrderType.Valid() {
		return nil, &domain.ValidationError{
			Message: "order_type must be 'buy' or 'sell'",
		}
	}

	var order *domain.TradeOrder
	err := s.seq.Do(func() error {
		now := s.clock.Now()
		seqNum := s.orders.NextSequence(req.Owner)

		order = &domain.TradeOrder{
			Address:      domain.OrderAddress(req.Owner, now, seqNum),
			AssetAddress: req.AssetAddress,
			OwnerID:      req.Owner,
			OrderType:    req.OrderType,
			Quantity:     req.Quantity,
			PricePerUnit: req.PricePerUnit,
			CreatedAt:    now,
			IsActive:     true,
		}
		return s.orders.Create(order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder retrieves an order record by address.
func (s *OrderService) GetOrder(address string) (*domain.TradeOrder, error) {
	return s.orders.Get(address)
}

// ListOrders returns a paginated, filtered listing of order records.
func (s *OrderService) ListOrders(filter store.OrderFilter, page, limit int) ([]*domain.TradeOrder, int, error) {
	if err := validatePagination(page, limit); err != nil {
		return nil, 0, err
	}
	orders, total := s.orders.List(filter, page, limit)
	return orders, total, nil
}
