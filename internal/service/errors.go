package service

import "fmt"

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeInvalidRequest       = "invalid_request"
	ErrCodeAccountNotFound      = "account_not_found"
	ErrCodeTransferNotFound     = "transfer_not_found"
	ErrCodeInsufficientBalance  = "insufficient_balance"
	ErrCodeOperationInProgress  = "operation_in_progress"
	ErrCodeDuplicateAccountName = "duplicate_account_name"
	ErrCodeInternalError        = "internal_error"
)
