package handler

import (
	"net/http"

	"github.com/vwa-labs/vaultledger/internal/domain"
	"github.com/vwa-labs/vaultledger/internal/engine"
	"github.com/vwa-labs/vaultledger/internal/ledger"
	"github.com/vwa-labs/vaultledger/internal/store"
)

// TradeHandler handles HTTP requests for trade execution and the trade log.
type TradeHandler struct {
	executor *engine.Executor
	trades   *store.TradeStore
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(executor *engine.Executor, trades *store.TradeStore) *TradeHandler {
	return &TradeHandler{executor: executor, trades: trades}
}

// executeTradeRequest is the JSON request body for POST /trades/execute.
type executeTradeRequest struct {
	OrderAddress          string `json:"order_address"`
	AssetAddress          string `json:"asset_address"`
	OrderOwner            string `json:"order_owner"`
	Buyer                 string `json:"buyer"`
	SettlementSource      string `json:"settlement_source"`
	SettlementDestination string `json:"settlement_destination"`
}

// tradeResponse is the JSON shape of one executed trade record.
type tradeResponse struct {
	TradeID      string `json:"trade_id"`
	AssetAddress string `json:"asset_address"`
	OrderAddress string `json:"order_address"`
	Seller       string `json:"seller"`
	Buyer        string `json:"buyer"`
	Quantity     int64  `json:"quantity"`
	PricePerUnit int64  `json:"price_per_unit"`
	TotalAmount  int64  `json:"total_amount"`
	ExecutedAt   int64  `json:"executed_at"`
}

func buildTradeResponse(t *domain.Trade) tradeResponse {
	return tradeResponse{
		TradeID:      t.TradeID,
		AssetAddress: t.AssetAddress,
		OrderAddress: t.OrderAddress,
		Seller:       t.SellerID,
		Buyer:        t.BuyerID,
		Quantity:     t.Quantity,
		PricePerUnit: t.PricePerUnit,
		TotalAmount:  t.TotalAmount,
		ExecutedAt:   t.ExecutedAt,
	}
}

// listTradesResponse is the JSON response for GET /trades.
type listTradesResponse struct {
	Trades []tradeResponse `json:"trades"`
	Total  int             `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

// ExecuteTrade handles POST /trades/execute. The bearer identity and the
// X-Co-Signer header together form the instruction's co-signer set; the
// executor requires both the order owner and the buyer to be in it.
func (h *TradeHandler) ExecuteTrade(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var req executeTradeRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	trade, err := h.executor.ExecuteTrade(engine.ExecuteTradeRequest{
		OrderAddress:          req.OrderAddress,
		AssetAddress:          req.AssetAddress,
		OrderOwner:            req.OrderOwner,
		Buyer:                 req.Buyer,
		SettlementSource:      req.SettlementSource,
		SettlementDestination: req.SettlementDestination,
		Signers:               ledger.NewSigners(caller, r.Header.Get("X-Co-Signer")),
	})
	if err != nil {
		mapDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, buildTradeResponse(trade))
}

// ListTrades handles GET /trades with an optional asset filter.
func (h *TradeHandler) ListTrades(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	if page < 1 || limit < 1 || limit > 100 {
		WriteError(w, http.StatusBadRequest, "validation_error", "page must be >= 1 and limit between 1 and 100")
		return
	}

	var assetFilter *string
	if v := r.URL.Query().Get("asset"); v != "" {
		assetFilter = &v
	}

	trades, total := h.trades.List(assetFilter, page, limit)

	resp := listTradesResponse{
		Trades: make([]tradeResponse, len(trades)),
		Total:  total,
		Page:   page,
		Limit:  limit,
	}
	for i, t := range trades {
		resp.Trades[i] = buildTradeResponse(t)
	}
	WriteJSON(w, http.StatusOK, resp)
}
