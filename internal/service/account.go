package service

import (
	"github.com/vwa-labs/vaultledger/internal/domain"
	"github.com/vwa-labs/vaultledger/internal/ledger"
)

// CreateAccountRequest represents the input for settlement account
// registration.
type CreateAccountRequest struct {
	AccountID      string
	Owner          string
	InitialBalance int64
}

// AccountService onboards settlement token accounts and answers balance
// queries. Custody itself lives in the token ledger collaborator.
type AccountService struct {
	tokens *ledger.TokenLedger
	seq    *ledger.Sequencer
	clock  ledger.Clock
}

// NewAccountService creates a new AccountService with the given dependencies.
func NewAccountService(tokens *ledger.TokenLedger, seq *ledger.Sequencer, clock ledger.Clock) *AccountService {
	return &AccountService{
		tokens: tokens,
		seq:    seq,
		clock:  clock,
	}
}

// CreateAccount registers a settlement account with an initial balance.
func (s *AccountService) CreateAccount(req CreateAccountRequest) (*ledger.Account, error) {
	if !identityRegex.MatchString(req.AccountID) {
		return nil, &domain.ValidationError{
			Message: "account_id must match ^[a-zA-Z0-9_-]{1,64}$",
		}
	}
	if !identityRegex.MatchString(req.Owner) {
		return nil, &domain.ValidationError{
			Message: "owner must match ^[a-zA-Z0-9_-]{1,64}$",
		}
	}
	if req.InitialBalance < 0 {
		return nil, &domain.ValidationError{
			Message: "initial_balance must be >= 0",
		}
	}

	var acct *ledger.Account
	err := s.seq.Do(func() error {
		var err error
		acct, err = s.tokens.CreateAccount(req.AccountID, req.Owner, req.InitialBalance, s.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return acct, nil
}

// GetAccount retrieves a settlement account by address.
func (s *AccountService) GetAccount(address string) (*ledger.Account, error) {
	return s.tokens.Get(address)
}
