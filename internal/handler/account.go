package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vwa-labs/vaultledger/internal/ledger"
	"github.com/vwa-labs/vaultledger/internal/service"
)

// AccountHandler handles HTTP requests for settlement account endpoints.
type AccountHandler struct {
	accountSvc *service.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountSvc *service.AccountService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

// createAccountRequest is the JSON request body for POST /accounts.
type createAccountRequest struct {
	AccountID      string `json:"account_id"`
	Owner          string `json:"owner"`
	InitialBalance int64  `json:"initial_balance"`
}

// accountResponse is the JSON shape of one settlement account.
type accountResponse struct {
	AccountID string `json:"account_id"`
	Owner     string `json:"owner"`
	Balance   int64  `json:"balance"`
	CreatedAt int64  `json:"created_at"`
}

func buildAccountResponse(a *ledger.Account) accountResponse {
	return accountResponse{
		AccountID: a.Address,
		Owner:     a.OwnerID,
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
	}
}

// CreateAccount handles POST /accounts.
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	acct, err := h.accountSvc.CreateAccount(service.CreateAccountRequest{
		AccountID:      req.AccountID,
		Owner:          req.Owner,
		InitialBalance: req.InitialBalance,
	})
	if err != nil {
		mapDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, buildAccountResponse(acct))
}

// GetBalance handles GET /accounts/{account_id}/balance.
func (h *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	acct, err := h.accountSvc.GetAccount(chi.URLParam(r, "account_id"))
	if err != nil {
		mapDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"account_id": acct.Address,
		"balance":    acct.Balance,
	})
}
