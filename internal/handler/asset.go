package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vwa-labs/vaultledger/internal/domain"
	"github.com/vwa-labs/vaultledger/internal/service"
	"github.com/vwa-labs/vaultledger/internal/store"
)

// AssetHandler handles HTTP requests for asset registry endpoints.
type AssetHandler struct {
	assetSvc   *service.AssetService
	pricingSvc *service.PricingService
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetSvc *service.AssetService, pricingSvc *service.PricingService) *AssetHandler {
	return &AssetHandler{assetSvc: assetSvc, pricingSvc: pricingSvc}
}

// createAssetRequest is the JSON request body for POST /assets.
type createAssetRequest struct {
	AssetType     string `json:"asset_type"`
	Weight        int64  `json:"weight"`
	Purity        int64  `json:"purity"`
	Certification string `json:"certification"`
	InitialPrice  int64  `json:"initial_price"`
}

// assetResponse is the JSON shape of one asset record.
// last_price_update is null until the first price update.
type assetResponse struct {
	Address         string `json:"address"`
	Owner           string `json:"owner"`
	AssetType       string `json:"asset_type"`
	Weight          int64  `json:"weight"`
	Purity          int64  `json:"purity"`
	Certification   string `json:"certification"`
	CurrentPrice    int64  `json:"current_price"`
	CreatedAt       int64  `json:"created_at"`
	LastPriceUpdate *int64 `json:"last_price_update"`
	IsActive        bool   `json:"is_active"`
}

func buildAssetResponse(a *domain.Asset) assetResponse {
	resp := assetResponse{
		Address:       a.Address,
		Owner:         a.OwnerID,
		AssetType:     string(a.AssetType),
		Weight:        a.Weight,
		Purity:        a.Purity,
		Certification: a.Certification,
		CurrentPrice:  a.CurrentPrice,
		CreatedAt:     a.CreatedAt,
		IsActive:      a.IsActive,
	}
	if a.LastPriceUpdate != 0 {
		v := a.LastPriceUpdate
		resp.LastPriceUpdate = &v
	}
	return resp
}

// listAssetsResponse is the JSON response for GET /assets.
type listAssetsResponse struct {
	Assets []assetResponse `json:"assets"`
	Total  int             `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

// CreateAsset handles POST /assets. The bearer identity becomes the owner.
func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var req createAssetRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	asset, err := h.assetSvc.CreateAsset(service.CreateAssetRequest{
		Owner:         owner,
		AssetType:     domain.AssetType(req.AssetType),
		Weight:        req.Weight,
		Purity:        req.Purity,
		Certification: req.Certification,
		InitialPrice:  req.InitialPrice,
	})
	if err != nil {
		mapDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, buildAssetResponse(asset))
}

// ListAssets handles GET /assets with asset_type, owner, and active filters.
func (h *AssetHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	var filter store.AssetFilter
	q := r.URL.Query()
	if v := q.Get("asset_type"); v != "" {
		at, err := domain.ParseAssetType(v)
		if err != nil {
			mapDomainError(w, err)
			return
		}
		filter.AssetType = &at
	}
	if v := q.Get("owner"); v != "" {
		filter.OwnerID = &v
	}
	if v := q.Get("active"); v != "" {
		active := v == "true"
		filter.IsActive = &active
	}

	assets, total, err := h.assetSvc.ListAssets(filter, page, limit)
	if err != nil {
		mapDomainError(w, err)
		return
	}

	resp := listAssetsResponse{
		Assets: make([]assetResponse, len(assets)),
		Total:  total,
		Page:   page,
		Limit:  limit,
	}
	for i, a := range assets {
		resp.Assets[i] = buildAssetResponse(a)
	}
	WriteJSON(w, http.StatusOK, resp)
}

// GetAsset handles GET /assets/{asset_id}.
func (h *AssetHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	asset, err := h.assetSvc.GetAsset(chi.URLParam(r, "asset_id"))
	if err != nil {
		mapDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, buildAssetResponse(asset))
}

// updatePriceRequest is the JSON request body for PUT /assets/{asset_id}/price.
type updatePriceRequest struct {
	NewPrice int64 `json:"new_price"`
}

// UpdatePrice handles PUT /assets/{asset_id}/price. Owner only.
func (h *AssetHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var req updatePriceRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	asset, err := h.assetSvc.UpdatePrice(chi.URLParam(r, "asset_id"), caller, req.NewPrice)
	if err != nil {
		mapDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, buildAssetResponse(asset))
}

// DeactivateAsset handles DELETE /assets/{asset_id}. Owner only, soft.
func (h *AssetHandler) DeactivateAsset(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	if err := h.assetSvc.Deactivate(chi.URLParam(r, "asset_id"), caller); err != nil {
		mapDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "deactivated"})
}

// historyResponse is the JSON response for GET /assets/{asset_id}/history.
type historyResponse struct {
	Asset  string         `json:"asset"`
	Window string         `json:"window"`
	Points []historyPoint `json:"points"`
}

type historyPoint struct {
	Price  int64  `json:"price"`
	Source string `json:"source"`
	At     int64  `json:"at"`
}

// History handles GET /assets/{asset_id}/history. The optional window query
// parameter takes a Go duration string, e.g. "24h".
func (h *AssetHandler) History(w http.ResponseWriter, r *http.Request) {
	var window time.Duration
	windowLabel := "default"
	if v := r.URL.Query().Get("window"); v != "" {
		var err error
		window, err = time.ParseDuration(v)
		if err != nil || window <= 0 {
			WriteError(w, http.StatusBadRequest, "validation_error", "window must be a positive duration such as 24h")
			return
		}
		windowLabel = window.String()
	}

	address := chi.URLParam(r, "asset_id")
	points, err := h.pricingSvc.History(address, window)
	if err != nil {
		mapDomainError(w, err)
		return
	}

	resp := historyResponse{
		Asset:  address,
		Window: windowLabel,
		Points: make([]historyPoint, len(points)),
	}
	for i, p := range points {
		resp.Points[i] = historyPoint{Price: p.Price, Source: p.Source, At: p.At}
	}
	WriteJSON(w, http.StatusOK, resp)
}
