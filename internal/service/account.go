package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/simonstancovich/banking-ledger/internal/db"
	"github.com/simonstancovich/banking-ledger/internal/models"
	"github.com/simonstancovich/banking-ledger/internal/repository"
)

// AccountService handles account reads and non-financial updates
type AccountService struct {
	db *db.DB
}

// NewAccountService creates a new AccountService
func NewAccountService(database *db.DB) *AccountService {
	return &AccountService{
		db: database,
	}
}

// GetAccount retrieves an account by id. Accounts owned by other actors are
// reported as not found rather than forbidden.
func (s *AccountService) GetAccount(ctx context.Context, actor models.Actor, accountID uuid.UUID) (*models.Account, error) {
	repo := repository.NewAccountRepository(s.db)

	account, err := repo.FindByID(ctx, accountID)
	if err != nil {
		return nil, mapAccountLookupError(err)
	}

	if !actor.IsAdmin() && account.OwnerID != actor.ID {
		return nil, &ServiceError{
			Code:    ErrCodeAccountNotFound,
			Message: "account not found",
		}
	}

	return account, nil
}

// ListAccounts retrieves the accounts owned by the actor
func (s *AccountService) ListAccounts(ctx context.Context, actor models.Actor) ([]*models.Account, error) {
	repo := repository.NewAccountRepository(s.db)

	accounts, err := repo.ListByOwner(ctx, actor.ID)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to list accounts: %v", err),
		}
	}

	return accounts, nil
}

// ListTransactions retrieves the transaction history of an account, most
// recent first.
func (s *AccountService) ListTransactions(ctx context.Context, actor models.Actor, accountID uuid.UUID) ([]*models.Transaction, error) {
	if _, err := s.GetAccount(ctx, actor, accountID); err != nil {
		return nil, err
	}

	repo := repository.NewTransactionRepository(s.db)

	txns, err := repo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to list transactions: %v", err),
		}
	}

	return txns, nil
}

// UpdateDetails renames or retypes an account. Balances are only ever touched
// by the transaction engine, never here.
func (s *AccountService) UpdateDetails(ctx context.Context, actor models.Actor, accountID uuid.UUID, name string, accountType models.AccountType) (*models.Account, error) {
	if err := ValidateAccountName(name); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidRequest,
			Message: err.Error(),
		}
	}
	if err := ValidateAccountType(accountType); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidRequest,
			Message: err.Error(),
		}
	}

	repo := repository.NewAccountRepository(s.db)

	if _, err := s.GetAccount(ctx, actor, accountID); err != nil {
		return nil, err
	}

	if err := repo.UpdateDetails(ctx, accountID, name, accountType); err != nil {
		switch {
		case errors.Is(err, models.ErrDuplicateAccountName):
			return nil, &ServiceError{
				Code:    ErrCodeDuplicateAccountName,
				Message: "an account with this name already exists for the owner",
			}
		case errors.Is(err, models.ErrAccountNotFound):
			return nil, &ServiceError{
				Code:    ErrCodeAccountNotFound,
				Message: "account not found",
			}
		default:
			return nil, &ServiceError{
				Code:    ErrCodeInternalError,
				Message: fmt.Sprintf("failed to update account: %v", err),
			}
		}
	}

	account, err := repo.FindByID(ctx, accountID)
	if err != nil {
		return nil, mapAccountLookupError(err)
	}

	return account, nil
}

func mapAccountLookupError(err error) error {
	if errors.Is(err, models.ErrAccountNotFound) {
		return &ServiceError{
			Code:    ErrCodeAccountNotFound,
			Message: "account not found",
		}
	}
	return &ServiceError{
		Code:    ErrCodeInternalError,
		Message: fmt.Sprintf("failed to load account: %v", err),
	}
}
