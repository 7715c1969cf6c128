package ledger

import (
	"sync"

	"github.com/vwa-labs/vaultledger/internal/domain"
)

// SettlementTransfer is the port through which the trade executor moves
// settlement tokens. The executor talks only to this interface, never to
// the custody implementation behind it.
type SettlementTransfer interface {
	// Transfer moves amount units from the source account to the
	// destination account, authorized by authority. It returns
	// domain.ErrAccountNotFound, domain.ErrUnauthorized, or
	// domain.ErrInsufficientFunds without moving anything on failure.
	Transfer(source, destination string, amount int64, authority string) error
}

// Account is one settlement token account: an address holding a balance,
// controlled by an owner identity.
type Account struct {
	Address   string
	OwnerID   string
	Balance   int64
	CreatedAt int64
}

// TokenLedger is the in-process settlement custody subsystem: thread-safe
// token accounts keyed by address. It implements SettlementTransfer.
type TokenLedger struct {
	mu       sync.RWMutex
	accounts map[string]*Account
}

// NewTokenLedger creates an empty TokenLedger.
func NewTokenLedger() *TokenLedger {
	return &TokenLedger{
		accounts: make(map[string]*Account),
	}
}

// CreateAccount registers a settlement account with an initial balance. It
// returns domain.ErrAccountAlreadyExists if the address is taken.
func (l *TokenLedger) CreateAccount(address, owner string, initialBalance, createdAt int64) (*Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.accounts[address]; exists {
		return nil, domain.ErrAccountAlreadyExists
	}
	acct := &Account{
		Address:   address,
		OwnerID:   owner,
		Balance:   initialBalance,
		CreatedAt: createdAt,
	}
	l.accounts[address] = acct
	return acct, nil
}

// Get retrieves an account by address. It returns domain.ErrAccountNotFound
// if the account does not exist.
func (l *TokenLedger) Get(address string) (*Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	acct, ok := l.accounts[address]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return acct, nil
}

// Balance returns the balance of an account by address.
func (l *TokenLedger) Balance(address string) (int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	acct, ok := l.accounts[address]
	if !ok {
		return 0, domain.ErrAccountNotFound
	}
	return acct.Balance, nil
}

// Transfer moves amount units from source to destination, authorized by
// authority. Both accounts must exist, authority must be the source
// account's owner, and the source must hold at least amount. All checks
// pass before either balance moves, so a failed transfer has no effect.
func (l *TokenLedger) Transfer(source, destination string, amount int64, authority string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount <= 0 {
		return domain.ErrInvalidQuantity
	}
	src, ok := l.accounts[source]
	if !ok {
		return domain.ErrAccountNotFound
	}
	dst, ok := l.accounts[destination]
	if !ok {
		return domain.ErrAccountNotFound
	}
	if src.OwnerID != authority {
		return domain.ErrUnauthorized
	}
	if src.Balance < amount {
		return domain.ErrInsufficientFunds
	}

	src.Balance -= amount
	dst.Balance += amount
	return nil
}
