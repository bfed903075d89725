// Package repository provides data access layer implementations for the
// ledger core. Repositories are constructed over a db.Querier so they can run
// against the pool for plain reads or inside an open transaction when the
// caller needs their writes to be part of one atomic unit of work.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/simonstancovich/banking-ledger/internal/db"
	"github.com/simonstancovich/banking-ledger/internal/models"
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Account, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Account, error)
	Create(ctx context.Context, account *models.Account) error
	AdjustBalance(ctx context.Context, accountID uuid.UUID, deltaCents int64) error
	UpdateDetails(ctx context.Context, accountID uuid.UUID, name string, accountType models.AccountType) error
}

// accountRepository implements AccountRepository
type accountRepository struct {
	q db.Querier
}

// NewAccountRepository creates a new AccountRepository over the given querier
func NewAccountRepository(q db.Querier) AccountRepository {
	return &accountRepository{q: q}
}

const selectAccountColumns = `id, owner_id, type, name, balance_cents, created_at, updated_at`

func scanAccount(row *sql.Row) (*models.Account, error) {
	var account models.Account
	var accountType string

	err := row.Scan(
		&account.ID,
		&account.OwnerID,
		&accountType,
		&account.Name,
		&account.BalanceCents,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}

	account.Type = models.AccountType(accountType)

	return &account, nil
}

// FindByID retrieves an account by its UUID
func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE id = $1`

	return scanAccount(r.q.QueryRowContext(ctx, query, id))
}

// FindByIDForUpdate retrieves an account by its UUID and acquires a row-level
// lock held until the surrounding transaction commits or rolls back. Callers
// not inside a transaction get no lasting lock; the engine always calls this
// on a transaction-scoped repository.
func (r *accountRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE id = $1 FOR UPDATE`

	return scanAccount(r.q.QueryRowContext(ctx, query, id))
}

// ListByOwner retrieves all accounts belonging to the given owner
func (r *accountRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE owner_id = $1 ORDER BY name`

	rows, err := r.q.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts by owner: %w", err)
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		var account models.Account
		var accountType string

		if err := rows.Scan(
			&account.ID,
			&account.OwnerID,
			&accountType,
			&account.Name,
			&account.BalanceCents,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}

		account.Type = models.AccountType(accountType)
		accounts = append(accounts, &account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}

// Create persists a new account. Used by seed tooling and tests; account
// creation is not exposed through the money-movement surface.
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}

	query := `
		INSERT INTO accounts (id, owner_id, type, name, balance_cents, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := r.q.QueryRowContext(ctx, query,
		account.ID,
		account.OwnerID,
		account.Type,
		account.Name,
		account.BalanceCents,
	).Scan(&account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "accounts_owner_id_name_key") {
			return models.ErrDuplicateAccountName
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// AdjustBalance atomically adjusts the account balance by the given delta
func (r *accountRepository) AdjustBalance(ctx context.Context, accountID uuid.UUID, deltaCents int64) error {
	query := `
		UPDATE accounts
		SET balance_cents = balance_cents + $2,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.q.ExecContext(ctx, query, accountID, deltaCents)
	if err != nil {
		return fmt.Errorf("failed to adjust account balance: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrAccountNotFound
	}

	return nil
}

// UpdateDetails updates the non-financial fields of an account
func (r *accountRepository) UpdateDetails(ctx context.Context, accountID uuid.UUID, name string, accountType models.AccountType) error {
	query := `
		UPDATE accounts
		SET name = $2,
		    type = $3,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.q.ExecContext(ctx, query, accountID, name, accountType)
	if err != nil {
		if isUniqueViolation(err, "accounts_owner_id_name_key") {
			return models.ErrDuplicateAccountName
		}
		return fmt.Errorf("failed to update account details: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrAccountNotFound
	}

	return nil
}

// isUniqueViolation reports whether err is a postgres unique-constraint
// violation on the named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505" && pqErr.Constraint == constraint
}
