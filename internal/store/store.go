package store

import (
	"sort"

	"github.com/vwa-labs/vaultledger/internal/domain"
)

// paginate slices a filtered result set with 1-based pagination and returns
// the page plus the total count before pagination.
func paginate[T any](all []T, page, limit int) ([]T, int) {
	total := len(all)

	start := (page - 1) * limit
	if start >= total {
		return []T{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return all[start:end], total
}

// sortAssets orders assets oldest first, with the address as tie-break so
// listings are stable within one clock second.
func sortAssets(assets []*domain.Asset) {
	sort.Slice(assets, func(i, j int) bool {
		if assets[i].CreatedAt != assets[j].CreatedAt {
			return assets[i].CreatedAt < assets[j].CreatedAt
		}
		return assets[i].Address < assets[j].Address
	})
}

// sortOrders orders trade orders oldest first with address tie-break.
func sortOrders(orders []*domain.TradeOrder) {
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt != orders[j].CreatedAt {
			return orders[i].CreatedAt < orders[j].CreatedAt
		}
		return orders[i].Address < orders[j].Address
	})
}
