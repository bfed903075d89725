package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the kind of money movement that produced a leg
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTypeTransfer   TransactionType = "TRANSFER"
)

// TransactionStatus represents the settlement state of a leg. Legs are only
// ever written inside a successful unit of work, so every persisted row is
// COMPLETED; failed operations leave no rows behind.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
)

// Transaction represents one immutable ledger leg.
//
// AmountCents is signed: negative for a debit leg, positive for a credit leg.
// A TRANSFER produces exactly two rows sharing one TransferID; DEPOSIT and
// WITHDRAWAL produce a single row each, also tagged with a fresh TransferID.
// Rows are never updated or deleted once created.
type Transaction struct {
	CreatedAt       time.Time         `db:"created_at" json:"created_at"`
	TransactionDate time.Time         `db:"transaction_date" json:"transaction_date"`
	Note            string            `db:"note" json:"note,omitempty"`
	Type            TransactionType   `db:"type" json:"type"`
	Status          TransactionStatus `db:"status" json:"status"`
	AmountCents     int64             `db:"amount_cents" json:"amount_cents"`
	ID              uuid.UUID         `db:"id" json:"id"`
	AccountID       uuid.UUID         `db:"account_id" json:"account_id"`
	TransferID      uuid.UUID         `db:"transfer_id" json:"transfer_id"`
}
