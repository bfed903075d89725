package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simonstancovich/banking-ledger/internal/models"
	"github.com/simonstancovich/banking-ledger/internal/service"
	"github.com/simonstancovich/banking-ledger/internal/service/mocks"
)

func TestCreateWithdrawal_Success(t *testing.T) {
	mockWithdraw := mocks.NewMockWithdrawer(t)
	handler := NewHandler(nil, nil, mockWithdraw, nil, nil, nil, testLogger())

	actor := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	accountID := uuid.New()
	transferID := uuid.New()
	result := &service.WithdrawalResult{
		TransferID: transferID,
		Transaction: &models.Transaction{
			ID:          uuid.New(),
			AccountID:   accountID,
			TransferID:  transferID,
			Type:        models.TransactionTypeWithdrawal,
			Status:      models.TransactionStatusCompleted,
			AmountCents: -1500,
		},
	}

	mockWithdraw.On("Withdraw", mock.Anything, actor, "wd-1", service.WithdrawalParams{
		AccountID:   accountID,
		AmountCents: 1500,
		Note:        "groceries",
	}).Return(result, models.IdempotencyStatusCreated, nil)

	req := newAuthenticatedRequest(t, http.MethodPost, "/api/v1/withdrawals", actor, map[string]any{
		"account_id":   accountID.String(),
		"amount_cents": 1500,
		"note":         "groceries",
	})
	req.Header.Set("Idempotency-Key", "wd-1")
	rec := httptest.NewRecorder()

	handler.CreateWithdrawal(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp service.WithdrawalResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(-1500), resp.Transaction.AmountCents)
}

func TestCreateWithdrawal_InsufficientBalance(t *testing.T) {
	mockWithdraw := mocks.NewMockWithdrawer(t)
	handler := NewHandler(nil, nil, mockWithdraw, nil, nil, nil, testLogger())

	actor := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	mockWithdraw.On("Withdraw", mock.Anything, actor, "wd-1", mock.Anything).
		Return(nil, models.IdempotencyStatus(""), &service.ServiceError{
			Code:    service.ErrCodeInsufficientBalance,
			Message: "insufficient balance",
		})

	req := newAuthenticatedRequest(t, http.MethodPost, "/api/v1/withdrawals", actor, map[string]any{
		"account_id":   uuid.New().String(),
		"amount_cents": 1000000,
	})
	req.Header.Set("Idempotency-Key", "wd-1")
	rec := httptest.NewRecorder()

	handler.CreateWithdrawal(rec, req)

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Contains(t, rec.Body.String(), "insufficient_balance")
}

func TestCreateWithdrawal_Replayed(t *testing.T) {
	mockWithdraw := mocks.NewMockWithdrawer(t)
	handler := NewHandler(nil, nil, mockWithdraw, nil, nil, nil, testLogger())

	actor := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	result := &service.WithdrawalResult{TransferID: uuid.New()}

	mockWithdraw.On("Withdraw", mock.Anything, actor, "wd-1", mock.Anything).
		Return(result, models.IdempotencyStatusReplayed, nil)

	req := newAuthenticatedRequest(t, http.MethodPost, "/api/v1/withdrawals", actor, map[string]any{
		"account_id":   uuid.New().String(),
		"amount_cents": 100,
	})
	req.Header.Set("Idempotency-Key", "wd-1")
	rec := httptest.NewRecorder()

	handler.CreateWithdrawal(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Header().Get("X-Idempotent-Replayed"))
}
