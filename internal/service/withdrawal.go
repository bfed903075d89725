package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/simonstancovich/banking-ledger/internal/db"
	"github.com/simonstancovich/banking-ledger/internal/models"
	"github.com/simonstancovich/banking-ledger/internal/repository"
)

// WithdrawalParams describes a requested withdrawal from an account
type WithdrawalParams struct {
	Note        string
	AccountID   uuid.UUID
	AmountCents int64
}

// WithdrawalResult is the durable outcome of a withdrawal operation
type WithdrawalResult struct {
	TransferID  uuid.UUID           `json:"transfer_id"`
	Transaction *models.Transaction `json:"transaction"`
}

// WithdrawalService debits money out of an account
type WithdrawalService struct {
	db          *db.DB
	coordinator *IdempotencyCoordinator
}

// NewWithdrawalService creates a new WithdrawalService
func NewWithdrawalService(database *db.DB, coordinator *IdempotencyCoordinator) *WithdrawalService {
	return &WithdrawalService{
		db:          database,
		coordinator: coordinator,
	}
}

// Withdraw debits the account, exactly once per (actor, idempotency key)
func (s *WithdrawalService) Withdraw(ctx context.Context, actor models.Actor, idempotencyKey string, params WithdrawalParams) (*WithdrawalResult, models.IdempotencyStatus, error) {
	if err := validateMovementParams(params.AccountID, params.AmountCents, params.Note); err != nil {
		return nil, "", err
	}

	execution, err := s.coordinator.Execute(ctx, actor, idempotencyKey, func(ctx context.Context, q db.Querier) (any, error) {
		return s.performWithdraw(ctx, repository.NewAccountRepository(q), repository.NewTransactionRepository(q), actor, params)
	})
	if err != nil {
		return nil, "", err
	}

	var result WithdrawalResult
	if err := json.Unmarshal(execution.Payload, &result); err != nil {
		return nil, "", &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to decode stored withdrawal result: %v", err),
		}
	}

	return &result, execution.Status, nil
}

// performWithdraw contains the core withdrawal business logic
func (s *WithdrawalService) performWithdraw(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	transactionRepo repository.TransactionRepository,
	actor models.Actor,
	params WithdrawalParams,
) (*WithdrawalResult, error) {
	account, err := lockAccount(ctx, accountRepo, params.AccountID)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin() && account.OwnerID != actor.ID {
		return nil, &ServiceError{
			Code:    ErrCodeAccountNotFound,
			Message: "account not found",
		}
	}

	if account.BalanceCents < params.AmountCents {
		return nil, &ServiceError{
			Code:    ErrCodeInsufficientBalance,
			Message: "insufficient balance to cover the withdrawal",
		}
	}

	txn := &models.Transaction{
		ID:              uuid.New(),
		AccountID:       account.ID,
		AmountCents:     -params.AmountCents,
		TransferID:      uuid.New(),
		TransactionDate: time.Now(),
		Note:            params.Note,
		Status:          models.TransactionStatusCompleted,
		Type:            models.TransactionTypeWithdrawal,
	}

	if err := transactionRepo.Create(ctx, txn); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to record withdrawal: %v", err),
		}
	}

	if err := accountRepo.AdjustBalance(ctx, account.ID, -params.AmountCents); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to debit account: %v", err),
		}
	}

	return &WithdrawalResult{
		TransferID:  txn.TransferID,
		Transaction: txn,
	}, nil
}
