package models

import "errors"

// Domain errors that can be returned by repositories
var (
	// ErrAccountNotFound indicates the requested account does not exist or is
	// not visible to the requesting actor
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionNotFound indicates the requested transaction was not found
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDuplicateIdempotencyKey indicates another attempt already reserved
	// the same (actor, idempotency key) pair
	ErrDuplicateIdempotencyKey = errors.New("duplicate idempotency key")

	// ErrDuplicateAccountName indicates the owner already has an account with
	// the same name
	ErrDuplicateAccountName = errors.New("duplicate account name")
)
