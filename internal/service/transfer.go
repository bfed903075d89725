package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/simonstancovich/banking-ledger/internal/db"
	"github.com/simonstancovich/banking-ledger/internal/models"
	"github.com/simonstancovich/banking-ledger/internal/repository"
)

// TransferParams describes a requested transfer between two accounts
type TransferParams struct {
	Note          string
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	AmountCents   int64
}

// TransferResult is the durable outcome of a transfer: the correlation id and
// both ledger legs. It is stored on the idempotency record and replayed to
// repeat submissions of the same key.
type TransferResult struct {
	TransferID uuid.UUID           `json:"transfer_id"`
	Debit      *models.Transaction `json:"debit"`
	Credit     *models.Transaction `json:"credit"`
}

// TransferService moves money between two accounts
type TransferService struct {
	db          *db.DB
	coordinator *IdempotencyCoordinator
}

// NewTransferService creates a new TransferService
func NewTransferService(database *db.DB, coordinator *IdempotencyCoordinator) *TransferService {
	return &TransferService{
		db:          database,
		coordinator: coordinator,
	}
}

// Transfer debits the source account and credits the destination account
// atomically, exactly once per (actor, idempotency key).
func (s *TransferService) Transfer(ctx context.Context, actor models.Actor, idempotencyKey string, params TransferParams) (*TransferResult, models.IdempotencyStatus, error) {
	if err := validateTransferParams(params); err != nil {
		return nil, "", err
	}

	execution, err := s.coordinator.Execute(ctx, actor, idempotencyKey, func(ctx context.Context, q db.Querier) (any, error) {
		return s.performTransfer(ctx, repository.NewAccountRepository(q), repository.NewTransactionRepository(q), actor, params)
	})
	if err != nil {
		return nil, "", err
	}

	var result TransferResult
	if err := json.Unmarshal(execution.Payload, &result); err != nil {
		return nil, "", &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to decode stored transfer result: %v", err),
		}
	}

	return &result, execution.Status, nil
}

// performTransfer contains the core transfer business logic
func (s *TransferService) performTransfer(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	transactionRepo repository.TransactionRepository,
	actor models.Actor,
	params TransferParams,
) (*TransferResult, error) {
	// Lock both rows in ascending id order. Every transfer acquires locks in
	// the same order regardless of direction, so two opposing transfers
	// cannot deadlock.
	first, second := params.FromAccountID, params.ToAccountID
	if bytes.Compare(second[:], first[:]) < 0 {
		first, second = second, first
	}

	locked := make(map[uuid.UUID]*models.Account, 2)
	for _, id := range []uuid.UUID{first, second} {
		account, err := lockAccount(ctx, accountRepo, id)
		if err != nil {
			return nil, err
		}
		locked[id] = account
	}

	from := locked[params.FromAccountID]
	to := locked[params.ToAccountID]

	if !actor.IsAdmin() && from.OwnerID != actor.ID {
		return nil, &ServiceError{
			Code:    ErrCodeAccountNotFound,
			Message: "account not found",
		}
	}

	if from.BalanceCents < params.AmountCents {
		return nil, &ServiceError{
			Code:    ErrCodeInsufficientBalance,
			Message: "insufficient balance to cover the transfer",
		}
	}

	transferID := uuid.New()
	transferDate := time.Now()

	debit := &models.Transaction{
		ID:              uuid.New(),
		AccountID:       from.ID,
		AmountCents:     -params.AmountCents,
		TransferID:      transferID,
		TransactionDate: transferDate,
		Note:            params.Note,
		Status:          models.TransactionStatusCompleted,
		Type:            models.TransactionTypeTransfer,
	}
	credit := &models.Transaction{
		ID:              uuid.New(),
		AccountID:       to.ID,
		AmountCents:     params.AmountCents,
		TransferID:      transferID,
		TransactionDate: transferDate,
		Note:            params.Note,
		Status:          models.TransactionStatusCompleted,
		Type:            models.TransactionTypeTransfer,
	}

	if err := transactionRepo.Create(ctx, debit); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to record debit leg: %v", err),
		}
	}
	if err := transactionRepo.Create(ctx, credit); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to record credit leg: %v", err),
		}
	}

	if err := accountRepo.AdjustBalance(ctx, from.ID, -params.AmountCents); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to debit source account: %v", err),
		}
	}
	if err := accountRepo.AdjustBalance(ctx, to.ID, params.AmountCents); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to credit destination account: %v", err),
		}
	}

	return &TransferResult{
		TransferID: transferID,
		Debit:      debit,
		Credit:     credit,
	}, nil
}

// GetTransfer retrieves the legs of a transfer by its correlation id. Non-admin
// actors only see legs on accounts they own; a transfer with no visible legs
// is reported as not found.
func (s *TransferService) GetTransfer(ctx context.Context, actor models.Actor, transferID uuid.UUID) ([]*models.Transaction, error) {
	transactionRepo := repository.NewTransactionRepository(s.db)

	legs, err := transactionRepo.ListByTransferID(ctx, transferID)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to load transfer: %v", err),
		}
	}

	if !actor.IsAdmin() {
		legs, err = filterOwnedLegs(ctx, repository.NewAccountRepository(s.db), actor, legs)
		if err != nil {
			return nil, err
		}
	}

	if len(legs) == 0 {
		return nil, &ServiceError{
			Code:    ErrCodeTransferNotFound,
			Message: "transfer not found",
		}
	}

	return legs, nil
}

// lockAccount acquires a row lock on the account, mapping a missing row to
// the account-not-found service error.
func lockAccount(ctx context.Context, accountRepo repository.AccountRepository, id uuid.UUID) (*models.Account, error) {
	account, err := accountRepo.FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			return nil, &ServiceError{
				Code:    ErrCodeAccountNotFound,
				Message: "account not found",
			}
		}
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to lock account: %v", err),
		}
	}

	return account, nil
}

// filterOwnedLegs keeps only legs whose account belongs to the actor.
func filterOwnedLegs(ctx context.Context, accountRepo repository.AccountRepository, actor models.Actor, legs []*models.Transaction) ([]*models.Transaction, error) {
	owned := make(map[uuid.UUID]bool)

	var visible []*models.Transaction
	for _, leg := range legs {
		isOwned, seen := owned[leg.AccountID]
		if !seen {
			account, err := accountRepo.FindByID(ctx, leg.AccountID)
			if err != nil {
				if errors.Is(err, models.ErrAccountNotFound) {
					owned[leg.AccountID] = false
					continue
				}
				return nil, &ServiceError{
					Code:    ErrCodeInternalError,
					Message: fmt.Sprintf("failed to resolve leg ownership: %v", err),
				}
			}
			isOwned = account.OwnerID == actor.ID
			owned[leg.AccountID] = isOwned
		}
		if isOwned {
			visible = append(visible, leg)
		}
	}

	return visible, nil
}

// validateTransferParams checks a transfer request before any storage access
func validateTransferParams(params TransferParams) error {
	if params.FromAccountID == uuid.Nil || params.ToAccountID == uuid.Nil {
		return &ServiceError{
			Code:    ErrCodeInvalidRequest,
			Message: "both source and destination accounts are required",
		}
	}
	if params.FromAccountID == params.ToAccountID {
		return &ServiceError{
			Code:    ErrCodeInvalidRequest,
			Message: "source and destination accounts must differ",
		}
	}
	if err := ValidateAmount(params.AmountCents); err != nil {
		return &ServiceError{
			Code:    ErrCodeInvalidRequest,
			Message: err.Error(),
		}
	}
	if err := ValidateNote(params.Note); err != nil {
		return &ServiceError{
			Code:    ErrCodeInvalidRequest,
			Message: err.Error(),
		}
	}

	return nil
}
