package domain

import "errors"

// Sentinel errors for domain-level error handling.
// The handler layer maps these to HTTP status codes.
var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrOrderInactive        = errors.New("order_inactive")
	ErrInvalidQuantity      = errors.New("invalid_quantity")
	ErrDuplicateAsset       = errors.New("duplicate_asset")
	ErrDuplicateOrder       = errors.New("duplicate_order")
	ErrAssetNotFound        = errors.New("asset_not_found")
	ErrOrderNotFound        = errors.New("order_not_found")
	ErrAccountNotFound      = errors.New("account_not_found")
	ErrAccountAlreadyExists = errors.New("account_already_exists")
	ErrInsufficientFunds    = errors.New("insufficient_funds")
)

// ValidationError represents a request validation failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
