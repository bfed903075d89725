package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/simonstancovich/banking-ledger/internal/models"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// Transferer handles money movement between two accounts
type Transferer interface {
	Transfer(ctx context.Context, actor models.Actor, idempotencyKey string, params TransferParams) (*TransferResult, models.IdempotencyStatus, error)
	GetTransfer(ctx context.Context, actor models.Actor, transferID uuid.UUID) ([]*models.Transaction, error)
}

// Depositor handles deposits into an account
type Depositor interface {
	Deposit(ctx context.Context, actor models.Actor, idempotencyKey string, params DepositParams) (*DepositResult, models.IdempotencyStatus, error)
}

// Withdrawer handles withdrawals from an account
type Withdrawer interface {
	Withdraw(ctx context.Context, actor models.Actor, idempotencyKey string, params WithdrawalParams) (*WithdrawalResult, models.IdempotencyStatus, error)
}

// AccountReader handles account and transaction history reads
type AccountReader interface {
	GetAccount(ctx context.Context, actor models.Actor, accountID uuid.UUID) (*models.Account, error)
	ListAccounts(ctx context.Context, actor models.Actor) ([]*models.Account, error)
	ListTransactions(ctx context.Context, actor models.Actor, accountID uuid.UUID) ([]*models.Transaction, error)
}

// AccountUpdater handles non-financial account updates
type AccountUpdater interface {
	UpdateDetails(ctx context.Context, actor models.Actor, accountID uuid.UUID, name string, accountType models.AccountType) (*models.Account, error)
}

// Ensure concrete types implement interfaces
var (
	_ Transferer     = (*TransferService)(nil)
	_ Depositor      = (*DepositService)(nil)
	_ Withdrawer     = (*WithdrawalService)(nil)
	_ AccountReader  = (*AccountService)(nil)
	_ AccountUpdater = (*AccountService)(nil)
)
