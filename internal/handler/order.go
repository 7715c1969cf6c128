package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vwa-labs/vaultledger/internal/domain"
	"github.com/vwa-labs/vaultledger/internal/service"
	"github.com/vwa-labs/vaultledger/internal/store"
)

// OrderHandler handles HTTP requests for order book endpoints.
type OrderHandler struct {
	orderSvc *service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderSvc *service.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

// createOrderRequest is the JSON request body for POST /orders.
type createOrderRequest struct {
	AssetAddress string `json:"asset_address"`
	OrderType    string `json:"order_type"`
	Quantity     int64  `json:"quantity"`
	PricePerUnit int64  `json:"price_per_unit"`
}

// orderResponse is the JSON shape of one trade order record.
type orderResponse struct {
	Address      string `json:"address"`
	AssetAddress string `json:"asset_address"`
	Owner        string `json:"owner"`
	OrderType    string `json:"order_type"`
	Quantity     int64  `json:"quantity"`
	PricePerUnit int64  `json:"price_per_unit"`
	CreatedAt    int64  `json:"created_at"`
	IsActive     bool   `json:"is_active"`
}

func buildOrderResponse(o *domain.TradeOrder) orderResponse {
	return orderResponse{
		Address:      o.Address,
		AssetAddress: o.AssetAddress,
		Owner:        o.OwnerID,
		OrderType:    string(o.OrderType),
		Quantity:     o.Quantity,
		PricePerUnit: o.PricePerUnit,
		CreatedAt:    o.CreatedAt,
		IsActive:     o.IsActive,
	}
}

// listOrdersResponse is the JSON response for GET /orders.
type listOrdersResponse struct {
	Orders []orderResponse `json:"orders"`
	Total  int             `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

// CreateOrder handles POST /orders. The bearer identity becomes the order
// owner.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var req createOrderRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	order, err := h.orderSvc.CreateOrder(service.CreateOrderRequest{
		AssetAddress: req.AssetAddress,
		Owner:        owner,
		OrderType:    domain.OrderType(req.OrderType),
		Quantity:     req.Quantity,
		PricePerUnit: req.PricePerUnit,
	})
	if err != nil {
		mapDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, buildOrderResponse(order))
}

// ListOrders handles GET /orders with asset, owner, order_type, and active
// filters.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	var filter store.OrderFilter
	q := r.URL.Query()
	if v := q.Get("asset"); v != "" {
		filter.AssetAddress = &v
	}
	if v := q.Get("owner"); v != "" {
		filter.OwnerID = &v
	}
	if v := q.Get("order_type"); v != "" {
		ot, err := domain.ParseOrderType(v)
		if err != nil {
			mapDomainError(w, err)
			return
		}
		filter.OrderType = &ot
	}
	if v := q.Get("active"); v != "" {
		active := v == "true"
		filter.IsActive = &active
	}

	orders, total, err := h.orderSvc.ListOrders(filter, page, limit)
	if err != nil {
		mapDomainError(w, err)
		return
	}

	resp := listOrdersResponse{
		Orders: make([]orderResponse, len(orders)),
		Total:  total,
		Page:   page,
		Limit:  limit,
	}
	for i, o := range orders {
		resp.Orders[i] = buildOrderResponse(o)
	}
	WriteJSON(w, http.StatusOK, resp)
}

// GetOrder handles GET /orders/{order_id}.
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderSvc.GetOrder(chi.URLParam(r, "order_id"))
	if err != nil {
		mapDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, buildOrderResponse(order))
}
