package domain

import "fmt"

// OrderType indicates whether a trade order is a buy or a sell.
type OrderType string

const (
	OrderTypeBuy  OrderType = "buy"
	OrderTypeSell OrderType = "sell"
)

// Valid reports whether t is "buy" or "sell".
func (t OrderType) Valid() bool {
	return t == OrderTypeBuy || t == OrderTypeSell
}

// ParseOrderType converts a string to an OrderType.
func ParseOrderType(s string) (OrderType, error) {
	t := OrderType(s)
	if !t.Valid() {
		return "", &ValidationError{
			Message: fmt.Sprintf("unknown order_type: %q. Must be one of: buy, sell", s),
		}
	}
	return t, nil
}

// TradeOrder is a standing intent to buy or sell a quantity of one asset at
// a fixed unit price. Its lifecycle is a two-state machine: active at
// creation, consumed (inactive, quantity zero) at execution. There is no
// cancel, expire, or partial-fill transition.
type TradeOrder struct {
	Address      string
	AssetAddress string
	OwnerID      string
	OrderType    OrderType
	Quantity     int64
	PricePerUnit int64 // smallest settlement denomination
	CreatedAt    int64 // unix seconds
	IsActive     bool
}

// Consume irrevocably fills the order: quantity drops to zero and the order
// goes inactive. Invoked only by the trade executor inside its serialized
// execution step. A consumed order fails the executor's active-order
// precondition, so the active→consumed transition happens at most once.
func (o *TradeOrder) Consume() {
	o.Quantity = 0
	o.IsActive = false
}
