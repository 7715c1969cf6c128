// Package engine implements the trade execution engine: the one place
// where an asset record and an order record change together.
package engine

import (
	"github.com/google/uuid"

	"github.com/vwa-labs/vaultledger/internal/domain"
	"github.com/vwa-labs/vaultledger/internal/ledger"
	"github.com/vwa-labs/vaultledger/internal/store"
)

// ExecuteTradeRequest carries one execution instruction: the two records,
// the two parties, the settlement accounts, and the identities asserted as
// co-signers of the instruction.
type ExecuteTradeRequest struct {
	OrderAddress          string
	AssetAddress          string
	OrderOwner            string
	Buyer                 string
	SettlementSource      string
	SettlementDestination string
	Signers               ledger.Signers
}

// Executor coordinates trade execution. It owns neither record type; it is
// granted write access to both only inside the serialized execution step,
// and holds no reference to either afterward.
type Executor struct {
	assets     *store.AssetStore
	orders     *store.OrderStore
	trades     *store.TradeStore
	settlement ledger.SettlementTransfer
	seq        *ledger.Sequencer
	clock      ledger.Clock
}

// NewExecutor creates a new Executor with the given dependencies.
func NewExecutor(
	assets *store.AssetStore,
	orders *store.OrderStore,
	trades *store.TradeStore,
	settlement ledger.SettlementTransfer,
	seq *ledger.Sequencer,
	clock ledger.Clock,
) *Executor {
	return &Executor{
		assets:     assets,
		orders:     orders,
		trades:     trades,
		settlement: settlement,
		seq:        seq,
		clock:      clock,
	}
}

// ExecuteTrade runs one trade as a single serialized instruction.
//
// Preconditions, checked in order, first failure aborting with no effect on
// any record:
//
//  1. the order is active, else domain.ErrOrderInactive
//  2. the order quantity is positive, else domain.ErrInvalidQuantity
//  3. the order owner matches and both the order owner and the buyer are
//     among the instruction's co-signers, else domain.ErrUnauthorized
//
// On success, as one atomic step: the settlement collaborator moves exactly
// the order's quantity in settlement tokens from source to destination
// under the order owner's authority (the recorded price per unit never
// drives the transfer amount), the order is consumed (quantity zero,
// inactive), asset ownership moves to the buyer, and an immutable trade
// record is appended. A settlement failure aborts before any record is
// touched. The engine does not verify that the buyer funded the settlement
// source account; co-signing the instruction is the buyer's assent.
func (e *Executor) ExecuteTrade(req ExecuteTradeRequest) (*domain.Trade, error) {
	var trade *domain.Trade
	err := e.seq.Do(func() error {
		order, err := e.orders.Get(req.OrderAddress)
		if err != nil {
			return err
		}
		asset, err := e.assets.Get(req.AssetAddress)
		if err != nil {
			return err
		}

		if !order.IsActive {
			return domain.ErrOrderInactive
		}
		if order.Quantity <= 0 {
			return domain.ErrInvalidQuantity
		}
		if order.OwnerID != req.OrderOwner {
			return domain.ErrUnauthorized
		}
		if !req.Signers.Authorizes(req.OrderOwner) || !req.Signers.Authorizes(req.Buyer) {
			return domain.ErrUnauthorized
		}

		quantity := order.Quantity
		if err := e.settlement.Transfer(req.SettlementSource, req.SettlementDestination, quantity, req.OrderOwner); err != nil {
			return err
		}

		// Settlement landed; everything from here on is infallible.
		order.Consume()
		asset.TransferTo(req.Buyer)

		trade = &domain.Trade{
			TradeID:      uuid.New().String(),
			AssetAddress: asset.Address,
			OrderAddress: order.Address,
			SellerID:     req.OrderOwner,
			BuyerID:      req.Buyer,
			Quantity:     quantity,
			PricePerUnit: order.PricePerUnit,
			TotalAmount:  quantity * order.PricePerUnit,
			ExecutedAt:   e.clock.Now(),
		}
		e.trades.Append(trade)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return trade, nil
}
