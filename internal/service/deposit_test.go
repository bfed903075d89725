package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/simonstancovich/banking-ledger/internal/models"
	"github.com/simonstancovich/banking-ledger/internal/repository/mocks"
)

func TestDepositService_PerformDeposit(t *testing.T) {
	t.Run("successful deposit", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		service := NewDepositService(nil, nil)
		ctx := context.Background()

		actor := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
		accountID := uuid.New()
		account := &models.Account{ID: accountID, OwnerID: actor.ID, BalanceCents: 2500}

		mockAccountRepo.On("FindByIDForUpdate", ctx, accountID).Return(account, nil)
		mockTxRepo.On("Create", ctx, mock.AnythingOfType("*models.Transaction")).Return(nil)
		mockAccountRepo.On("AdjustBalance", ctx, accountID, int64(10000)).Return(nil)

		result, err := service.performDeposit(ctx, mockAccountRepo, mockTxRepo, actor, DepositParams{
			AccountID:   accountID,
			AmountCents: 10000,
			Note:        "payday",
		})

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.NotEqual(t, uuid.Nil, result.TransferID)
		assert.Equal(t, result.TransferID, result.Transaction.TransferID)
		assert.Equal(t, accountID, result.Transaction.AccountID)
		assert.Equal(t, int64(10000), result.Transaction.AmountCents)
		assert.Equal(t, models.TransactionTypeDeposit, result.Transaction.Type)
		assert.Equal(t, models.TransactionStatusCompleted, result.Transaction.Status)
		assert.Equal(t, "payday", result.Transaction.Note)

		mockAccountRepo.AssertExpectations(t)
		mockTxRepo.AssertExpectations(t)
	})

	t.Run("account not found", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		service := NewDepositService(nil, nil)
		ctx := context.Background()

		actor := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
		accountID := uuid.New()

		mockAccountRepo.On("FindByIDForUpdate", ctx, accountID).Return(nil, models.ErrAccountNotFound)

		result, err := service.performDeposit(ctx, mockAccountRepo, mockTxRepo, actor, DepositParams{
			AccountID:   accountID,
			AmountCents: 10000,
		})

		assert.Error(t, err)
		assert.Nil(t, result)

		var svcErr *ServiceError
		if assert.ErrorAs(t, err, &svcErr) {
			assert.Equal(t, ErrCodeAccountNotFound, svcErr.Code)
		}

		mockTxRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("account owned by another actor", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		service := NewDepositService(nil, nil)
		ctx := context.Background()

		actor := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
		accountID := uuid.New()
		account := &models.Account{ID: accountID, OwnerID: uuid.New(), BalanceCents: 0}

		mockAccountRepo.On("FindByIDForUpdate", ctx, accountID).Return(account, nil)

		result, err := service.performDeposit(ctx, mockAccountRepo, mockTxRepo, actor, DepositParams{
			AccountID:   accountID,
			AmountCents: 10000,
		})

		assert.Error(t, err)
		assert.Nil(t, result)

		var svcErr *ServiceError
		if assert.ErrorAs(t, err, &svcErr) {
			assert.Equal(t, ErrCodeAccountNotFound, svcErr.Code)
		}

		mockTxRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("admin deposits into any account", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		service := NewDepositService(nil, nil)
		ctx := context.Background()

		admin := models.Actor{ID: uuid.New(), Role: models.RoleAdmin}
		accountID := uuid.New()
		account := &models.Account{ID: accountID, OwnerID: uuid.New(), BalanceCents: 0}

		mockAccountRepo.On("FindByIDForUpdate", ctx, accountID).Return(account, nil)
		mockTxRepo.On("Create", ctx, mock.AnythingOfType("*models.Transaction")).Return(nil)
		mockAccountRepo.On("AdjustBalance", ctx, accountID, int64(500)).Return(nil)

		result, err := service.performDeposit(ctx, mockAccountRepo, mockTxRepo, admin, DepositParams{
			AccountID:   accountID,
			AmountCents: 500,
		})

		assert.NoError(t, err)
		assert.NotNil(t, result)

		mockAccountRepo.AssertExpectations(t)
		mockTxRepo.AssertExpectations(t)
	})
}

func TestDepositService_Deposit_Validation(t *testing.T) {
	service := NewDepositService(nil, nil)
	ctx := context.Background()
	actor := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}

	tests := []struct {
		name   string
		params DepositParams
	}{
		{
			name: "missing account id",
			params: DepositParams{
				AmountCents: 1000,
			},
		},
		{
			name: "zero amount",
			params: DepositParams{
				AccountID:   uuid.New(),
				AmountCents: 0,
			},
		},
		{
			name: "negative amount",
			params: DepositParams{
				AccountID:   uuid.New(),
				AmountCents: -1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, status, err := service.Deposit(ctx, actor, "key-1", tt.params)

			assert.Nil(t, result)
			assert.Empty(t, status)

			var svcErr *ServiceError
			if assert.ErrorAs(t, err, &svcErr) {
				assert.Equal(t, ErrCodeInvalidRequest, svcErr.Code)
			}
		})
	}
}
