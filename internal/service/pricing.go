package service

import (
	"time"

	"github.com/vwa-labs/vaultledger/internal/domain"
	"github.com/vwa-labs/vaultledger/internal/ledger"
	"github.com/vwa-labs/vaultledger/internal/store"
)

// HistoryPoint is one price observation in an asset's history response.
type HistoryPoint struct {
	Price  int64
	Source string
	At     int64
}

// MarketPrice aggregates the market view of one asset type.
type MarketPrice struct {
	AssetType    domain.AssetType
	ActiveAssets int
	AveragePrice *int64   // nil when no active assets of the type exist
	ChangePct    *float64 // window price change, nil without in-window ticks
}

// MarketSummary is the registry-wide snapshot.
type MarketSummary struct {
	ActiveAssets int
	TotalValue   int64 // Σ currentPrice × weight over active assets
	ActiveOrders int
	PriceUpdates int // ticks recorded, initial prices included
	AsOf         int64
}

// PricingService answers price history and market data queries. It never
// computes prices: every figure it reports was externally decided and
// recorded through the registry.
type PricingService struct {
	assets  *store.AssetStore
	orders  *store.OrderStore
	history *store.HistoryStore
	window  time.Duration
	clock   ledger.Clock
}

// NewPricingService creates a new PricingService with the given dependencies.
func NewPricingService(
	assets *store.AssetStore,
	orders *store.OrderStore,
	history *store.HistoryStore,
	window time.Duration,
	clock ledger.Clock,
) *PricingService {
	return &PricingService{
		assets:  assets,
		orders:  orders,
		history: history,
		window:  window,
		clock:   clock,
	}
}

// History returns the asset's price ticks within the window ending now,
// oldest first. A zero window falls back to the configured default.
func (s *PricingService) History(assetAddress string, window time.Duration) ([]HistoryPoint, error) {
	if _, err := s.assets.Get(assetAddress); err != nil {
		return nil, err
	}
	if window <= 0 {
		window = s.window
	}

	now := s.clock.Now()
	ticks := s.history.Window(assetAddress, now-int64(window.Seconds()), now+1)

	points := make([]HistoryPoint, len(ticks))
	for i, t := range ticks {
		points[i] = HistoryPoint{Price: t.Price, Source: t.Source, At: t.At}
	}
	return points, nil
}

// MarketPrices returns one aggregate per asset type, covering every type in
// the closed set whether or not assets of it exist.
func (s *PricingService) MarketPrices() []MarketPrice {
	now := s.clock.Now()
	from := now - int64(s.window.Seconds())

	byType := make(map[domain.AssetType][]*domain.Asset)
	for _, a := range s.assets.All() {
		if a.IsActive {
			byType[a.AssetType] = append(byType[a.AssetType], a)
		}
	}

	prices := make([]MarketPrice, 0, len(domain.AssetTypes))
	for _, at := range domain.AssetTypes {
		mp := MarketPrice{AssetType: at}
		assets := byType[at]
		mp.ActiveAssets = len(assets)

		if len(assets) > 0 {
			var sum int64
			for _, a := range assets {
				sum += a.CurrentPrice
			}
			avg := sum / int64(len(assets))
			mp.AveragePrice = &avg
		}

		// Window change: compare each asset's earliest in-window tick with
		// its latest tick, summed across the type.
		var base, current int64
		for _, a := range assets {
			ticks := s.history.Window(a.Address, from, now+1)
			if len(ticks) == 0 {
				continue
			}
			latest, ok := s.history.Latest(a.Address)
			if !ok {
				continue
			}
			base += ticks[0].Price
			current += latest.Price
		}
		if base > 0 {
			change := float64(current-base) / float64(base) * 100
			mp.ChangePct = &change
		}

		prices = append(prices, mp)
	}
	return prices
}

// Summary returns the registry-wide market snapshot.
func (s *PricingService) Summary() MarketSummary {
	activeAssets, totalValue := s.assets.Count()
	return MarketSummary{
		ActiveAssets: activeAssets,
		TotalValue:   totalValue,
		ActiveOrders: s.orders.CountActive(),
		PriceUpdates: s.history.Count(),
		AsOf:         s.clock.Now(),
	}
}
