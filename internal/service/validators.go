package service

import (
	"fmt"
	"strings"

	"github.com/simonstancovich/banking-ledger/internal/models"
)

const (
	maxIdempotencyKeyLength = 255
	maxNoteLength           = 255
	maxAccountNameLength    = 128
)

// ValidateAmount checks if amount is valid (positive)
func ValidateAmount(amountCents int64) error {
	if amountCents <= 0 {
		return fmt.Errorf("invalid amount: must be greater than 0")
	}

	return nil
}

// ValidateIdempotencyKey checks if an idempotency key is usable
func ValidateIdempotencyKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("invalid idempotency key: must not be empty")
	}

	if len(key) > maxIdempotencyKeyLength {
		return fmt.Errorf("invalid idempotency key: must be at most %d characters", maxIdempotencyKeyLength)
	}

	return nil
}

// ValidateNote checks if a transaction note is within bounds
func ValidateNote(note string) error {
	if len(note) > maxNoteLength {
		return fmt.Errorf("invalid note: must be at most %d characters", maxNoteLength)
	}

	return nil
}

// ValidateAccountName checks if an account display name is valid
func ValidateAccountName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("invalid account name: must not be empty")
	}

	if len(name) > maxAccountNameLength {
		return fmt.Errorf("invalid account name: must be at most %d characters", maxAccountNameLength)
	}

	return nil
}

// ValidateAccountType checks if an account type is one of the known kinds
func ValidateAccountType(accountType models.AccountType) error {
	switch accountType {
	case models.AccountTypeChecking, models.AccountTypeSavings:
		return nil
	default:
		return fmt.Errorf("invalid account type: %q", accountType)
	}
}
