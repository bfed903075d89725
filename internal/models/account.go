package models

import (
	"time"

	"github.com/google/uuid"
)

// AccountType classifies an account for display and reporting
type AccountType string

const (
	AccountTypeChecking AccountType = "CHECKING"
	AccountTypeSavings  AccountType = "SAVINGS"
)

// Account represents an owner's account with a minor-unit balance.
//
// BalanceCents is never negative in committed state; the transaction engine
// checks sufficiency before any debit commits and the schema enforces the
// same invariant with a CHECK constraint.
type Account struct {
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time   `db:"updated_at" json:"updated_at"`
	Name         string      `db:"name" json:"name"`
	Type         AccountType `db:"type" json:"type"`
	BalanceCents int64       `db:"balance_cents" json:"balance_cents"`
	ID           uuid.UUID   `db:"id" json:"id"`
	OwnerID      uuid.UUID   `db:"owner_id" json:"owner_id"`
}
