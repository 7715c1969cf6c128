package handler

import (
	"net/http"

	"github.com/vwa-labs/vaultledger/internal/service"
)

// PricingHandler handles HTTP requests for market data endpoints.
type PricingHandler struct {
	pricingSvc *service.PricingService
}

// NewPricingHandler creates a new PricingHandler.
func NewPricingHandler(pricingSvc *service.PricingService) *PricingHandler {
	return &PricingHandler{pricingSvc: pricingSvc}
}

// marketPriceResponse is one per-type aggregate in GET /market/prices.
type marketPriceResponse struct {
	AssetType    string   `json:"asset_type"`
	ActiveAssets int      `json:"active_assets"`
	AveragePrice *int64   `json:"average_price"`
	ChangePct    *float64 `json:"change_pct"`
}

// MarketPrices handles GET /market/prices.
func (h *PricingHandler) MarketPrices(w http.ResponseWriter, r *http.Request) {
	prices := h.pricingSvc.MarketPrices()

	resp := make([]marketPriceResponse, len(prices))
	for i, p := range prices {
		resp[i] = marketPriceResponse{
			AssetType:    string(p.AssetType),
			ActiveAssets: p.ActiveAssets,
			AveragePrice: p.AveragePrice,
			ChangePct:    p.ChangePct,
		}
	}
	WriteJSON(w, http.StatusOK, resp)
}

// marketSummaryResponse is the JSON response for GET /market/summary.
type marketSummaryResponse struct {
	ActiveAssets int   `json:"active_assets"`
	TotalValue   int64 `json:"total_value"`
	ActiveOrders int   `json:"active_orders"`
	PriceUpdates int   `json:"price_updates"`
	AsOf         int64 `json:"as_of"`
}

// MarketSummary handles GET /market/summary.
func (h *PricingHandler) MarketSummary(w http.ResponseWriter, r *http.Request) {
	s := h.pricingSvc.Summary()
	WriteJSON(w, http.StatusOK, marketSummaryResponse{
		ActiveAssets: s.ActiveAssets,
		TotalValue:   s.TotalValue,
		ActiveOrders: s.ActiveOrders,
		PriceUpdates: s.PriceUpdates,
		AsOf:         s.AsOf,
	})
}
