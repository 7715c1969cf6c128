package service

import (
	"errors"
	"testing"

	"github.com/vwa-labs/vaultledger/internal/domain"
	"github.com/vwa-labs/vaultledger/internal/ledger"
)

func newAccountService(clock *ledger.FixedClock) (*AccountService, *ledger.TokenLedger) {
	tokens := ledger.NewTokenLedger()
	return NewAccountService(tokens, ledger.NewSequencer(), clock), tokens
}

func TestAccountService_CreateAccount(t *testing.T) {
	clock := &ledger.FixedClock{Unix: 1_700_000_000}
	svc, tokens := newAccountService(clock)

	acct, err := svc.CreateAccount(CreateAccountRequest{AccountID: "acct-a", Owner: "alice", InitialBalance: 500})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if acct.OwnerID != "alice" || acct.Balance != 500 || acct.CreatedAt != clock.Unix {
		t.Fatalf("account fields wrong: %+v", acct)
	}

	if bal, err := tokens.Balance("acct-a"); err != nil || bal != 500 {
		t.Fatalf("balance = %d, %v", bal, err)
	}
}

func TestAccountService_CreateAccount_Duplicate(t *testing.T) {
	clock := &ledger.FixedClock{Unix: 1_700_000_000}
	svc, _ := newAccountService(clock)

	if _, err := svc.CreateAccount(CreateAccountRequest{AccountID: "acct-a", Owner: "alice"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.CreateAccount(CreateAccountRequest{AccountID: "acct-a", Owner: "bob"})
	if err != domain.ErrAccountAlreadyExists {
		t.Fatalf("expected ErrAccountAlreadyExists, got %v", err)
	}
}

func TestAccountService_CreateAccount_Validation(t *testing.T) {
	clock := &ledger.FixedClock{Unix: 1_700_000_000}
	svc, _ := newAccountService(clock)

	var vErr *domain.ValidationError
	if _, err := svc.CreateAccount(CreateAccountRequest{AccountID: "", Owner: "alice"}); !errors.As(err, &vErr) {
		t.Fatalf("empty account_id: expected ValidationError, got %v", err)
	}
	if _, err := svc.CreateAccount(CreateAccountRequest{AccountID: "acct-a", Owner: "alice", InitialBalance: -1}); !errors.As(err, &vErr) {
		t.Fatalf("negative balance: expected ValidationError, got %v", err)
	}
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	clock := &ledger.FixedClock{Unix: 1_700_000_000}
	svc, _ := newAccountService(clock)

	if _, err := svc.GetAccount("nope"); err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
