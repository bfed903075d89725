package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/simonstancovich/banking-ledger/internal/db"
	"github.com/simonstancovich/banking-ledger/internal/models"
)

// TransactionRepository defines the interface for transaction data access
type TransactionRepository interface {
	Create(ctx context.Context, txn *models.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*models.Transaction, error)
	ListByTransferID(ctx context.Context, transferID uuid.UUID) ([]*models.Transaction, error)
}

// transactionRepository implements TransactionRepository
type transactionRepository struct {
	q db.Querier
}

// NewTransactionRepository creates a new TransactionRepository over the given querier
func NewTransactionRepository(q db.Querier) TransactionRepository {
	return &transactionRepository{q: q}
}

const selectTransactionColumns = `id, account_id, amount_cents, transfer_id, transaction_date, note, status, type, created_at`

// scanner abstracts *sql.Row and *sql.Rows so both single-row and list
// queries share one scan path.
type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(s scanner) (*models.Transaction, error) {
	var txn models.Transaction
	var status, txnType string

	err := s.Scan(
		&txn.ID,
		&txn.AccountID,
		&txn.AmountCents,
		&txn.TransferID,
		&txn.TransactionDate,
		&txn.Note,
		&status,
		&txnType,
		&txn.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	txn.Status = models.TransactionStatus(status)
	txn.Type = models.TransactionType(txnType)

	return &txn, nil
}

// Create persists a new transaction row. The caller is responsible for
// setting AccountID, AmountCents, TransferID, TransactionDate, Status and
// Type; a zero ID is assigned here.
func (r *transactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}

	query := `
		INSERT INTO transactions (id, account_id, amount_cents, transfer_id, transaction_date, note, status, type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING created_at
	`

	err := r.q.QueryRowContext(ctx, query,
		txn.ID,
		txn.AccountID,
		txn.AmountCents,
		txn.TransferID,
		txn.TransactionDate,
		txn.Note,
		txn.Status,
		txn.Type,
	).Scan(&txn.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// FindByID retrieves a transaction by its UUID
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions WHERE id = $1`

	txn, err := scanTransaction(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	return txn, nil
}

// ListByAccount retrieves all transactions for an account, most recent first
func (r *transactionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*models.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions WHERE account_id = $1 ORDER BY transaction_date DESC, created_at DESC`

	return r.list(ctx, query, accountID)
}

// ListByTransferID retrieves the rows sharing a transfer correlation id.
// Debit legs carry negative amounts so ordering by amount yields debit first.
func (r *transactionRepository) ListByTransferID(ctx context.Context, transferID uuid.UUID) ([]*models.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions WHERE transfer_id = $1 ORDER BY amount_cents`

	return r.list(ctx, query, transferID)
}

func (r *transactionRepository) list(ctx context.Context, query string, arg any) ([]*models.Transaction, error) {
	rows, err := r.q.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []*models.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return txns, nil
}
