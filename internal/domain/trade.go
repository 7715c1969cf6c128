package domain

// Trade is the immutable record of one executed trade order. TotalAmount is
// Quantity × PricePerUnit as agreed on the order; the settlement transfer
// itself moves Quantity units of the settlement token, so the two figures
// are recorded independently.
type Trade struct {
	TradeID      string
	AssetAddress string
	OrderAddress string
	SellerID     string // the order's owner at execution time
	BuyerID      string
	Quantity     int64
	PricePerUnit int64
	TotalAmount  int64
	ExecutedAt   int64 // unix seconds
}
