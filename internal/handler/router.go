package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vwa-labs/vaultledger/internal/engine"
	"github.com/vwa-labs/vaultledger/internal/service"
	"github.com/vwa-labs/vaultledger/internal/store"
)

// NewRouter creates a chi router with all routes registered, request logging,
// and Content-Type validation middleware.
func NewRouter(
	accountSvc *service.AccountService,
	assetSvc *service.AssetService,
	orderSvc *service.OrderService,
	pricingSvc *service.PricingService,
	executor *engine.Executor,
	trades *store.TradeStore,
	logger *slog.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(requestLogging(logger))
	r.Use(contentTypeJSON)

	// Create handlers.
	accountH := NewAccountHandler(accountSvc)
	assetH := NewAssetHandler(assetSvc, pricingSvc)
	orderH := NewOrderHandler(orderSvc)
	pricingH := NewPricingHandler(pricingSvc)
	tradeH := NewTradeHandler(executor, trades)

	// Health check.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Account routes.
	r.Post("/accounts", accountH.CreateAccount)
	r.Get("/accounts/{account_id}/balance", accountH.GetBalance)

	// Asset routes.
	r.Post("/assets", assetH.CreateAsset)
	r.Get("/assets", assetH.ListAssets)
	r.Get("/assets/{asset_id}", assetH.GetAsset)
	r.Put("/assets/{asset_id}/price", assetH.UpdatePrice)
	r.Delete("/assets/{asset_id}", assetH.DeactivateAsset)
	r.Get("/assets/{asset_id}/history", assetH.History)

	// Order routes.
	r.Post("/orders", orderH.CreateOrder)
	r.Get("/orders", orderH.ListOrders)
	r.Get("/orders/{order_id}", orderH.GetOrder)

	// Trade routes.
	r.Post("/trades/execute", tradeH.ExecuteTrade)
	r.Get("/trades", tradeH.ListTrades)

	// Market data routes.
	r.Get("/market/prices", pricingH.MarketPrices)
	r.Get("/market/summary", pricingH.MarketSummary)

	return r
}

// requestLogging returns middleware that logs each request's method, path,
// status code, and duration using slog.
func requestLogging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.Info("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

// contentTypeJSON is middleware that validates Content-Type for POST, PUT, and
// PATCH requests. If the Content-Type header doesn't start with
// "application/json", it returns 400 Bad Request before the handler runs.
func contentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			ct := r.Header.Get("Content-Type")
			if ct == "" || !strings.HasPrefix(ct, "application/json") {
				WriteError(w, http.StatusBadRequest, "invalid_request",
					"Content-Type must be application/json")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
