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

// DepositParams describes a requested deposit into an account
type DepositParams struct {
	Note        string
	AccountID   uuid.UUID
	AmountCents int64
}

// DepositResult is the durable outcome of a deposit operation
type DepositResult struct {
	TransferID  uuid.UUID           `json:"transfer_id"`
	Transaction *models.Transaction `json:"transaction"`
}

// DepositService credits external money into an account
type DepositService struct {
	db          *db.DB
	coordinator *IdempotencyCoordinator
}

// NewDepositService creates a new DepositService
func NewDepositService(database *db.DB, coordinator *IdempotencyCoordinator) *DepositService {
	return &DepositService{
		db:          database,
		coordinator: coordinator,
	}
}

// Deposit credits the account, exactly once per (actor, idempotency key)
func (s *DepositService) Deposit(ctx context.Context, actor models.Actor, idempotencyKey string, params DepositParams) (*DepositResult, models.IdempotencyStatus, error) {
	if err := validateMovementParams(params.AccountID, params.AmountCents, params.Note); err != nil {
		return nil, "", err
	}

	execution, err := s.coordinator.Execute(ctx, actor, idempotencyKey, func(ctx context.Context, q db.Querier) (any, error) {
		return s.performDeposit(ctx, repository.NewAccountRepository(q), repository.NewTransactionRepository(q), actor, params)
	})
	if err != nil {
		return nil, "", err
	}

	var result DepositResult
	if err := json.Unmarshal(execution.Payload, &result); err != nil {
		return nil, "", &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to decode stored deposit result: %v", err),
		}
	}

	return &result, execution.Status, nil
}

// performDeposit contains the core deposit business logic
func (s *DepositService) performDeposit(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	transactionRepo repository.TransactionRepository,
	actor models.Actor,
	params DepositParams,
) (*DepositResult, error) {
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

	txn := &models.Transaction{
		ID:              uuid.New(),
		AccountID:       account.ID,
		AmountCents:     params.AmountCents,
		TransferID:      uuid.New(),
		TransactionDate: time.Now(),
		Note:            params.Note,
		Status:          models.TransactionStatusCompleted,
		Type:            models.TransactionTypeDeposit,
	}

	if err := transactionRepo.Create(ctx, txn); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to record deposit: %v", err),
		}
	}

	if err := accountRepo.AdjustBalance(ctx, account.ID, params.AmountCents); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to credit account: %v", err),
		}
	}

	return &DepositResult{
		TransferID:  txn.TransferID,
		Transaction: txn,
	}, nil
}

// validateMovementParams checks a single-account movement request before any
// storage access.
func validateMovementParams(accountID uuid.UUID, amountCents int64, note string) error {
	if accountID == uuid.Nil {
		return &ServiceError{
			Code:    ErrCodeInvalidRequest,
			Message: "account id is required",
		}
	}
	if err := ValidateAmount(amountCents); err != nil {
		return &ServiceError{
			Code:    ErrCodeInvalidRequest,
			Message: err.Error(),
		}
	}
	if err := ValidateNote(note); err != nil {
		return &ServiceError{
			Code:    ErrCodeInvalidRequest,
			Message: err.Error(),
		}
	}

	return nil
}
