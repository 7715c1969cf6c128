// Package service implements the asset registry, the order book, settlement
// account onboarding, and market data queries. Services validate requests,
// run mutations through the instruction sequencer, and surface domain
// errors unchanged.
package service

import (
	"regexp"

	"github.com/vwa-labs/vaultledger/internal/domain"
	"github.com/vwa-labs/vaultledger/internal/ledger"
	"github.com/vwa-labs/vaultledger/internal/store"
)

var identityRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// CreateAssetRequest represents the input for asset registration.
type CreateAssetRequest struct {
	Owner         string
	AssetType     domain.AssetType
	Weight        int64
	Purity        int64
	Certification string
	InitialPrice  int64
}

// AssetService is the asset registry: it owns the lifecycle of asset
// records. Ownership transfer is the one mutation it does not perform
// itself; that primitive belongs to the trade executor.
type AssetService struct {
	assets  *store.AssetStore
	history *store.HistoryStore
	seq     *ledger.Sequencer
	clock   ledger.Clock
}

// NewAssetService creates a new AssetService with the given dependencies.
func NewAssetService(assets *store.AssetStore, history *store.HistoryStore, seq *ledger.Sequencer, clock ledger.Clock) *AssetService {
	return &AssetService{
		assets:  assets,
		history: history,
		seq:     seq,
		clock:   clock,
	}
}

// CreateAsset registers a new asset record at its derived address and
// records the initial price tick. Weight, purity, and certification are
// stored as supplied: the registry performs no range enforcement on them.
// LastPriceUpdate stays zero until the first price update.
func (s *AssetService) CreateAsset(req CreateAssetRequest) (*domain.Asset, error) {
	if !identityRegex.MatchString(req.Owner) {
		return nil, &domain.ValidationError{
			Message: "owner must match ^[a-zA-Z0-9_-]{1,64}$",
		}
	}
	if !req.AssetType.Valid() {
		return nil, &domain.ValidationError{
			Message: "asset_type must be one of: gold, silver, platinum, palladium, diamond, ruby, emerald, sapphire",
		}
	}

	var asset *domain.Asset
	err := s.seq.Do(func() error {
		now := s.clock.Now()
		seqNum := s.assets.NextSequence(req.Owner)

		asset = &domain.Asset{
			Address:       domain.AssetAddress(req.Owner, req.AssetType, seqNum),
			OwnerID:       req.Owner,
			AssetType:     req.AssetType,
			Weight:        req.Weight,
			Purity:        req.Purity,
			Certification: req.Certification,
			CurrentPrice:  req.InitialPrice,
			CreatedAt:     now,
			IsActive:      true,
		}
		if err := s.assets.Create(asset); err != nil {
			return err
		}
		s.history.Record(asset.Address, req.InitialPrice, "initial", now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return asset, nil
}

// UpdatePrice sets a new current price on the asset. Only the record's
// owner may call it; anyone else gets domain.ErrUnauthorized and the record
// stays untouched. No floor, ceiling, or change limit applies.
func (s *AssetService) UpdatePrice(address, caller string, newPrice int64) (*domain.Asset, error) {
	var asset *domain.Asset
	err := s.seq.Do(func() error {
		a, err := s.assets.Get(address)
		if err != nil {
			return err
		}
		if a.OwnerID != caller {
			return domain.ErrUnauthorized
		}

		now := s.clock.Now()
		a.CurrentPrice = newPrice
		a.LastPriceUpdate = now
		s.history.Record(address, newPrice, "update", now)

		asset = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return asset, nil
}

// Deactivate soft-deletes the asset record. Owner only.
func (s *AssetService) Deactivate(address, caller string) error {
	return s.seq.Do(func() error {
		a, err := s.assets.Get(address)
		if err != nil {
			return err
		}
		if a.OwnerID != caller {
			return domain.ErrUnauthorized
		}
		a.IsActive = false
		return nil
	})
}

// GetAsset retrieves an asset record by address.
func (s *AssetService) GetAsset(address string) (*domain.Asset, error) {
	return s.assets.Get(address)
}

// ListAssets returns a paginated, filtered listing of asset records.
func (s *AssetService) ListAssets(filter store.AssetFilter, page, limit int) ([]*domain.Asset, int, error) {
	if err := validatePagination(page, limit); err != nil {
		return nil, 0, err
	}
	assets, total := s.assets.List(filter, page, limit)
	return assets, total, nil
}

// validatePagination enforces the shared page/limit bounds.
func validatePagination(page, limit int) error {
	if page < 1 {
		return &domain.ValidationError{Message: "page must be >= 1"}
	}
	if limit < 1 || limit > 100 {
		return &domain.ValidationError{Message: "limit must be between 1 and 100"}
	}
	return nil
}
