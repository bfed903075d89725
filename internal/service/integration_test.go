//go:build integration

package service

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonstancovich/banking-ledger/internal/db"
	"github.com/simonstancovich/banking-ledger/internal/models"
	"github.com/simonstancovich/banking-ledger/internal/repository"
)

// setupTestDB opens the database named by LEDGER_TEST_DSN, applies
// migrations and truncates all tables. Tests are skipped when the variable
// is not set.
func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("LEDGER_TEST_DSN"))
	if dsn == "" {
		t.Skip("LEDGER_TEST_DSN not set")
	}

	sqlDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, sqlDB.PingContext(context.Background()))

	database := db.NewTestDB(sqlDB)
	t.Cleanup(func() {
		if err := database.Close(); err != nil {
			t.Errorf("cleanup: close database: %v", err)
		}
	})

	require.NoError(t, database.Migrate("../db/migrations"))

	_, err = database.ExecContext(context.Background(),
		`TRUNCATE transactions, idempotency_records, accounts CASCADE`)
	require.NoError(t, err)

	return database
}

func newLedgerServices(database *db.DB) (*TransferService, *DepositService, *WithdrawalService, *IdempotencyCoordinator) {
	coordinator := NewIdempotencyCoordinator(database, testLogger())
	return NewTransferService(database, coordinator),
		NewDepositService(database, coordinator),
		NewWithdrawalService(database, coordinator),
		coordinator
}

func createTestAccount(t *testing.T, database *db.DB, ownerID uuid.UUID, name string, balanceCents int64) *models.Account {
	t.Helper()

	account := &models.Account{
		OwnerID:      ownerID,
		Type:         models.AccountTypeChecking,
		Name:         name,
		BalanceCents: balanceCents,
	}
	require.NoError(t, repository.NewAccountRepository(database).Create(context.Background(), account))

	return account
}

func fetchBalance(t *testing.T, database *db.DB, accountID uuid.UUID) int64 {
	t.Helper()

	account, err := repository.NewAccountRepository(database).FindByID(context.Background(), accountID)
	require.NoError(t, err)

	return account.BalanceCents
}

func countRows(t *testing.T, database *db.DB, table string) int {
	t.Helper()

	var n int
	require.NoError(t, database.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n))

	return n
}

func TestTransfer_MovesMoneyAtomically(t *testing.T) {
	database := setupTestDB(t)
	transferSvc, _, _, _ := newLedgerServices(database)
	ctx := context.Background()

	actor := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	from := createTestAccount(t, database, actor.ID, "checking", 50000)
	to := createTestAccount(t, database, uuid.New(), "savings", 1000)

	result, status, err := transferSvc.Transfer(ctx, actor, "tx-001", TransferParams{
		FromAccountID: from.ID,
		ToAccountID:   to.ID,
		AmountCents:   20000,
		Note:          "march rent",
	})

	require.NoError(t, err)
	assert.Equal(t, models.IdempotencyStatusCreated, status)
	assert.Equal(t, int64(-20000), result.Debit.AmountCents)
	assert.Equal(t, int64(20000), result.Credit.AmountCents)
	assert.Equal(t, result.TransferID, result.Debit.TransferID)
	assert.Equal(t, result.TransferID, result.Credit.TransferID)

	assert.Equal(t, int64(30000), fetchBalance(t, database, from.ID))
	assert.Equal(t, int64(21000), fetchBalance(t, database, to.ID))
	assert.Equal(t, 2, countRows(t, database, "transactions"))
	assert.Equal(t, 1, countRows(t, database, "idempotency_records"))
}

func TestTransfer_ReplaySameKeyReturnsStoredResult(t *testing.T) {
	database := setupTestDB(t)
	transferSvc, _, _, _ := newLedgerServices(database)
	ctx := context.Background()

	actor := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	from := createTestAccount(t, database, actor.ID, "checking", 50000)
	to := createTestAccount(t, database, uuid.New(), "savings", 0)

	params := TransferParams{
		FromAccountID: from.ID,
		ToAccountID:   to.ID,
		AmountCents:   10000,
	}

	first, firstStatus, err := transferSvc.Transfer(ctx, actor, "tx-replay", params)
	require.NoError(t, err)
	require.Equal(t, models.IdempotencyStatusCreated, firstStatus)

	for i := 0; i < 3; i++ {
		replay, replayStatus, err := transferSvc.Transfer(ctx, actor, "tx-replay", params)
		require.NoError(t, err)
		assert.Equal(t, models.IdempotencyStatusReplayed, replayStatus)
		assert.Equal(t, first.TransferID, replay.TransferID)
		assert.Equal(t, first.Debit.ID, replay.Debit.ID)
		assert.Equal(t, first.Credit.ID, replay.Credit.ID)
	}

	// Money moved exactly once.
	assert.Equal(t, int64(40000), fetchBalance(t, database, from.ID))
	assert.Equal(t, int64(10000), fetchBalance(t, database, to.ID))
	assert.Equal(t, 2, countRows(t, database, "transactions"))
	assert.Equal(t, 1, countRows(t, database, "idempotency_records"))
}

// flakyTransactionRepo fails the nth Create call to simulate a storage
// failure after partial writes inside a unit of work.
type flakyTransactionRepo struct {
	repository.TransactionRepository
	failOn int
	calls  int
}

func (f *flakyTransactionRepo) Create(ctx context.Context, txn *models.Transaction) error {
	f.calls++
	if f.calls == f.failOn {
		return fmt.Errorf("synthetic storage failure")
	}
	return f.TransactionRepository.Create(ctx, txn)
}

func TestTransfer_MidFlightFailureLeavesNoTrace(t *testing.T) {
	database := setupTestDB(t)
	transferSvc, _, _, coordinator := newLedgerServices(database)
	ctx := context.Background()

	actor := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	from := createTestAccount(t, database, actor.ID, "checking", 50000)
	to := createTestAccount(t, database, uuid.New(), "savings", 0)

	params := TransferParams{
		FromAccountID: from.ID,
		ToAccountID:   to.ID,
		AmountCents:   10000,
	}

	// Fail on the second leg insert, after the first leg already hit storage.
	_, err := coordinator.Execute(ctx, actor, "tx-flaky", func(ctx context.Context, q db.Querier) (any, error) {
		accountRepo := repository.NewAccountRepository(q)
		txRepo := &flakyTransactionRepo{
			TransactionRepository: repository.NewTransactionRepository(q),
			failOn:                2,
		}
		return transferSvc.performTransfer(ctx, accountRepo, txRepo, actor, params)
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "synthetic storage failure")

	// Nothing committed: no legs, no balance movement, no reservation.
	assert.Equal(t, 0, countRows(t, database, "transactions"))
	assert.Equal(t, 0, countRows(t, database, "idempotency_records"))
	assert.Equal(t, int64(50000), fetchBalance(t, database, from.ID))
	assert.Equal(t, int64(0), fetchBalance(t, database, to.ID))

	// The key was not consumed by the failed attempt.
	result, status, err := transferSvc.Transfer(ctx, actor, "tx-flaky", params)
	require.NoError(t, err)
	assert.Equal(t, models.IdempotencyStatusCreated, status)
	assert.NotNil(t, result)
	assert.Equal(t, int64(40000), fetchBalance(t, database, from.ID))
}

func TestTransfer_ConcurrentSameKeyExecutesOnce(t *testing.T) {
	database := setupTestDB(t)
	transferSvc, _, _, _ := newLedgerServices(database)
	ctx := context.Background()

	actor := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	from := createTestAccount(t, database, actor.ID, "checking", 50000)
	to := createTestAccount(t, database, uuid.New(), "savings", 0)

	params := TransferParams{
		FromAccountID: from.ID,
		ToAccountID:   to.ID,
		AmountCents:   10000,
	}

	const workers = 8

	type attempt struct {
		result *TransferResult
		status models.IdempotencyStatus
		err    error
	}

	attempts := make(chan attempt, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, status, err := transferSvc.Transfer(ctx, actor, "tx-race", params)
			attempts <- attempt{result: result, status: status, err: err}
		}()
	}
	wg.Wait()
	close(attempts)

	var created, replayed, conflicts int
	transferIDs := make(map[uuid.UUID]bool)
	for a := range attempts {
		switch {
		case a.err == nil && a.status == models.IdempotencyStatusCreated:
			created++
			transferIDs[a.result.TransferID] = true
		case a.err == nil && a.status == models.IdempotencyStatusReplayed:
			replayed++
			transferIDs[a.result.TransferID] = true
		default:
			var svcErr *ServiceError
			require.ErrorAs(t, a.err, &svcErr)
			assert.Equal(t, ErrCodeOperationInProgress, svcErr.Code)
			conflicts++
		}
	}

	assert.Equal(t, 1, created)
	assert.Equal(t, workers-1, replayed+conflicts)
	assert.Len(t, transferIDs, 1)

	// The transfer applied exactly once no matter how many submissions raced.
	assert.Equal(t, int64(40000), fetchBalance(t, database, from.ID))
	assert.Equal(t, int64(10000), fetchBalance(t, database, to.ID))
	assert.Equal(t, 2, countRows(t, database, "transactions"))
	assert.Equal(t, 1, countRows(t, database, "idempotency_records"))
}

func TestTransfer_OpposingDirectionsDoNotDeadlock(t *testing.T) {
	database := setupTestDB(t)
	transferSvc, _, _, _ := newLedgerServices(database)
	ctx := context.Background()

	alice := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	bob := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	accountA := createTestAccount(t, database, alice.ID, "alice-checking", 100000)
	accountB := createTestAccount(t, database, bob.ID, "bob-checking", 100000)

	const perDirection = 10

	var wg sync.WaitGroup
	errs := make(chan error, perDirection*2)
	for i := 0; i < perDirection; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, _, err := transferSvc.Transfer(ctx, alice, fmt.Sprintf("a-to-b-%d", i), TransferParams{
				FromAccountID: accountA.ID,
				ToAccountID:   accountB.ID,
				AmountCents:   1000,
			})
			errs <- err
		}(i)
		go func(i int) {
			defer wg.Done()
			_, _, err := transferSvc.Transfer(ctx, bob, fmt.Sprintf("b-to-a-%d", i), TransferParams{
				FromAccountID: accountB.ID,
				ToAccountID:   accountA.ID,
				AmountCents:   1000,
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	// Equal flows in both directions cancel out; total money is conserved.
	assert.Equal(t, int64(100000), fetchBalance(t, database, accountA.ID))
	assert.Equal(t, int64(100000), fetchBalance(t, database, accountB.ID))
	assert.Equal(t, perDirection*4, countRows(t, database, "transactions"))

	var legSum int64
	require.NoError(t, database.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount_cents), 0) FROM transactions`).Scan(&legSum))
	assert.Equal(t, int64(0), legSum)
}

func TestWithdraw_ConcurrentDrainNeverOvercommits(t *testing.T) {
	database := setupTestDB(t)
	_, _, withdrawalSvc, _ := newLedgerServices(database)
	ctx := context.Background()

	actor := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	account := createTestAccount(t, database, actor.ID, "checking", 10000)

	const workers = 20

	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, err := withdrawalSvc.Withdraw(ctx, actor, fmt.Sprintf("drain-%d", i), WithdrawalParams{
				AccountID:   account.ID,
				AmountCents: 1000,
			})
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	var succeeded, insufficient int
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeInsufficientBalance, svcErr.Code)
		insufficient++
	}

	assert.Equal(t, 10, succeeded)
	assert.Equal(t, 10, insufficient)
	assert.Equal(t, int64(0), fetchBalance(t, database, account.ID))
	assert.Equal(t, 10, countRows(t, database, "transactions"))
	// Failed attempts rolled their reservations back along with everything else.
	assert.Equal(t, 10, countRows(t, database, "idempotency_records"))
}

func TestWithdraw_BusinessFailureLeavesKeyRetryable(t *testing.T) {
	database := setupTestDB(t)
	_, _, withdrawalSvc, _ := newLedgerServices(database)
	ctx := context.Background()

	actor := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	account := createTestAccount(t, database, actor.ID, "checking", 10000)

	params := WithdrawalParams{AccountID: account.ID, AmountCents: 15000}

	// The failed attempt leaves nothing behind, so retrying the key is not a
	// replay: it fails the same way.
	for i := 0; i < 2; i++ {
		_, _, err := withdrawalSvc.Withdraw(ctx, actor, "wd-oversized", params)
		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeInsufficientBalance, svcErr.Code)
	}
	assert.Equal(t, 0, countRows(t, database, "transactions"))
	assert.Equal(t, 0, countRows(t, database, "idempotency_records"))
	assert.Equal(t, int64(10000), fetchBalance(t, database, account.ID))

	// A corrected amount under the same key succeeds as a first attempt.
	result, status, err := withdrawalSvc.Withdraw(ctx, actor, "wd-oversized", WithdrawalParams{
		AccountID:   account.ID,
		AmountCents: 4000,
	})
	require.NoError(t, err)
	assert.Equal(t, models.IdempotencyStatusCreated, status)
	assert.Equal(t, int64(-4000), result.Transaction.AmountCents)
	assert.Equal(t, int64(6000), fetchBalance(t, database, account.ID))
}

func TestTransfer_InvalidRequestDoesNotConsumeKey(t *testing.T) {
	database := setupTestDB(t)
	transferSvc, _, _, _ := newLedgerServices(database)
	ctx := context.Background()

	actor := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	from := createTestAccount(t, database, actor.ID, "checking", 50000)
	to := createTestAccount(t, database, uuid.New(), "savings", 0)

	_, _, err := transferSvc.Transfer(ctx, actor, "tx-bad-then-good", TransferParams{
		FromAccountID: from.ID,
		ToAccountID:   to.ID,
		AmountCents:   -5,
	})

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrCodeInvalidRequest, svcErr.Code)
	assert.Equal(t, 0, countRows(t, database, "idempotency_records"))

	// The rejected submission never reached storage, so the key is fresh.
	_, status, err := transferSvc.Transfer(ctx, actor, "tx-bad-then-good", TransferParams{
		FromAccountID: from.ID,
		ToAccountID:   to.ID,
		AmountCents:   5000,
	})
	require.NoError(t, err)
	assert.Equal(t, models.IdempotencyStatusCreated, status)
}

func TestTransfer_ProcessingRecordReportsConflict(t *testing.T) {
	database := setupTestDB(t)
	transferSvc, _, _, _ := newLedgerServices(database)
	ctx := context.Background()

	actor := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	from := createTestAccount(t, database, actor.ID, "checking", 50000)
	to := createTestAccount(t, database, uuid.New(), "savings", 0)

	// A durable PROCESSING row is what a crash between reserving and
	// completing leaves behind.
	record := &models.IdempotencyRecord{ActorID: actor.ID, IdempotencyKey: "tx-stuck"}
	require.NoError(t, repository.NewIdempotencyRepository(database).InsertProcessing(ctx, record))

	_, _, err := transferSvc.Transfer(ctx, actor, "tx-stuck", TransferParams{
		FromAccountID: from.ID,
		ToAccountID:   to.ID,
		AmountCents:   5000,
	})

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrCodeOperationInProgress, svcErr.Code)
	assert.Equal(t, int64(50000), fetchBalance(t, database, from.ID))
}

func TestCoordinator_PurgeStaleReopensKey(t *testing.T) {
	database := setupTestDB(t)
	transferSvc, _, _, coordinator := newLedgerServices(database)
	ctx := context.Background()

	actor := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	from := createTestAccount(t, database, actor.ID, "checking", 50000)
	to := createTestAccount(t, database, uuid.New(), "savings", 0)

	record := &models.IdempotencyRecord{ActorID: actor.ID, IdempotencyKey: "tx-orphaned"}
	require.NoError(t, repository.NewIdempotencyRepository(database).InsertProcessing(ctx, record))
	_, err := database.ExecContext(ctx,
		`UPDATE idempotency_records SET created_at = NOW() - INTERVAL '2 days' WHERE id = $1`, record.ID)
	require.NoError(t, err)

	purged, err := coordinator.PurgeStale(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	_, status, err := transferSvc.Transfer(ctx, actor, "tx-orphaned", TransferParams{
		FromAccountID: from.ID,
		ToAccountID:   to.ID,
		AmountCents:   5000,
	})
	require.NoError(t, err)
	assert.Equal(t, models.IdempotencyStatusCreated, status)
}

func TestIdempotencyKeys_ScopedPerActor(t *testing.T) {
	database := setupTestDB(t)
	_, depositSvc, _, _ := newLedgerServices(database)
	ctx := context.Background()

	alice := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	bob := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	aliceAccount := createTestAccount(t, database, alice.ID, "alice-checking", 0)
	bobAccount := createTestAccount(t, database, bob.ID, "bob-checking", 0)

	// The same key used by different actors names two independent operations.
	_, aliceStatus, err := depositSvc.Deposit(ctx, alice, "shared-key", DepositParams{
		AccountID:   aliceAccount.ID,
		AmountCents: 1000,
	})
	require.NoError(t, err)

	_, bobStatus, err := depositSvc.Deposit(ctx, bob, "shared-key", DepositParams{
		AccountID:   bobAccount.ID,
		AmountCents: 2000,
	})
	require.NoError(t, err)

	assert.Equal(t, models.IdempotencyStatusCreated, aliceStatus)
	assert.Equal(t, models.IdempotencyStatusCreated, bobStatus)
	assert.Equal(t, int64(1000), fetchBalance(t, database, aliceAccount.ID))
	assert.Equal(t, int64(2000), fetchBalance(t, database, bobAccount.ID))
}

func TestDepositAndWithdraw_Replay(t *testing.T) {
	database := setupTestDB(t)
	_, depositSvc, withdrawalSvc, _ := newLedgerServices(database)
	ctx := context.Background()

	actor := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	account := createTestAccount(t, database, actor.ID, "checking", 0)

	first, _, err := depositSvc.Deposit(ctx, actor, "dep-1", DepositParams{
		AccountID:   account.ID,
		AmountCents: 30000,
	})
	require.NoError(t, err)

	replay, status, err := depositSvc.Deposit(ctx, actor, "dep-1", DepositParams{
		AccountID:   account.ID,
		AmountCents: 30000,
	})
	require.NoError(t, err)
	assert.Equal(t, models.IdempotencyStatusReplayed, status)
	assert.Equal(t, first.Transaction.ID, replay.Transaction.ID)
	assert.Equal(t, int64(30000), fetchBalance(t, database, account.ID))

	firstW, _, err := withdrawalSvc.Withdraw(ctx, actor, "wd-1", WithdrawalParams{
		AccountID:   account.ID,
		AmountCents: 5000,
	})
	require.NoError(t, err)

	replayW, statusW, err := withdrawalSvc.Withdraw(ctx, actor, "wd-1", WithdrawalParams{
		AccountID:   account.ID,
		AmountCents: 5000,
	})
	require.NoError(t, err)
	assert.Equal(t, models.IdempotencyStatusReplayed, statusW)
	assert.Equal(t, firstW.Transaction.ID, replayW.Transaction.ID)
	assert.Equal(t, int64(25000), fetchBalance(t, database, account.ID))
}

func TestReplay_AcrossOperationKindsPerformsNoWork(t *testing.T) {
	database := setupTestDB(t)
	transferSvc, depositSvc, _, _ := newLedgerServices(database)
	ctx := context.Background()

	actor := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	account := createTestAccount(t, database, actor.ID, "checking", 0)
	other := createTestAccount(t, database, actor.ID, "savings", 10000)

	deposited, _, err := depositSvc.Deposit(ctx, actor, "mixed-key", DepositParams{
		AccountID:   account.ID,
		AmountCents: 7000,
	})
	require.NoError(t, err)

	// Reusing the key through a different operation replays the stored
	// result; no transfer happens.
	replayed, status, err := transferSvc.Transfer(ctx, actor, "mixed-key", TransferParams{
		FromAccountID: other.ID,
		ToAccountID:   account.ID,
		AmountCents:   9999,
	})
	require.NoError(t, err)
	assert.Equal(t, models.IdempotencyStatusReplayed, status)
	assert.Equal(t, deposited.TransferID, replayed.TransferID)

	assert.Equal(t, int64(7000), fetchBalance(t, database, account.ID))
	assert.Equal(t, int64(10000), fetchBalance(t, database, other.ID))
	assert.Equal(t, 1, countRows(t, database, "transactions"))
}

func TestAccountService_OwnershipVisibility(t *testing.T) {
	database := setupTestDB(t)
	accountSvc := NewAccountService(database)
	ctx := context.Background()

	owner := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	stranger := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	admin := models.Actor{ID: uuid.New(), Role: models.RoleAdmin}
	account := createTestAccount(t, database, owner.ID, "checking", 12345)

	got, err := accountSvc.GetAccount(ctx, owner, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(12345), got.BalanceCents)

	_, err = accountSvc.GetAccount(ctx, stranger, account.ID)
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrCodeAccountNotFound, svcErr.Code)

	_, err = accountSvc.GetAccount(ctx, admin, account.ID)
	assert.NoError(t, err)

	accounts, err := accountSvc.ListAccounts(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)

	accounts, err = accountSvc.ListAccounts(ctx, stranger)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestAccountService_ListTransactions(t *testing.T) {
	database := setupTestDB(t)
	transferSvc, depositSvc, _, _ := newLedgerServices(database)
	accountSvc := NewAccountService(database)
	ctx := context.Background()

	actor := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	account := createTestAccount(t, database, actor.ID, "checking", 0)
	other := createTestAccount(t, database, uuid.New(), "other", 0)

	_, _, err := depositSvc.Deposit(ctx, actor, "hist-1", DepositParams{AccountID: account.ID, AmountCents: 50000})
	require.NoError(t, err)
	_, _, err = transferSvc.Transfer(ctx, actor, "hist-2", TransferParams{
		FromAccountID: account.ID,
		ToAccountID:   other.ID,
		AmountCents:   20000,
	})
	require.NoError(t, err)

	txns, err := accountSvc.ListTransactions(ctx, actor, account.ID)
	require.NoError(t, err)
	require.Len(t, txns, 2)

	var sum int64
	for _, txn := range txns {
		assert.Equal(t, account.ID, txn.AccountID)
		sum += txn.AmountCents
	}
	assert.Equal(t, fetchBalance(t, database, account.ID), sum)
}

func TestTransferService_GetTransferVisibility(t *testing.T) {
	database := setupTestDB(t)
	transferSvc, _, _, _ := newLedgerServices(database)
	ctx := context.Background()

	sender := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	receiver := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	stranger := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	admin := models.Actor{ID: uuid.New(), Role: models.RoleAdmin}

	from := createTestAccount(t, database, sender.ID, "sender-checking", 50000)
	to := createTestAccount(t, database, receiver.ID, "receiver-checking", 0)

	result, _, err := transferSvc.Transfer(ctx, sender, "vis-1", TransferParams{
		FromAccountID: from.ID,
		ToAccountID:   to.ID,
		AmountCents:   10000,
	})
	require.NoError(t, err)

	legs, err := transferSvc.GetTransfer(ctx, admin, result.TransferID)
	require.NoError(t, err)
	assert.Len(t, legs, 2)

	legs, err = transferSvc.GetTransfer(ctx, sender, result.TransferID)
	require.NoError(t, err)
	require.Len(t, legs, 1)
	assert.Equal(t, from.ID, legs[0].AccountID)

	legs, err = transferSvc.GetTransfer(ctx, receiver, result.TransferID)
	require.NoError(t, err)
	require.Len(t, legs, 1)
	assert.Equal(t, to.ID, legs[0].AccountID)

	_, err = transferSvc.GetTransfer(ctx, stranger, result.TransferID)
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrCodeTransferNotFound, svcErr.Code)
}

func TestAccountService_UpdateDetails(t *testing.T) {
	database := setupTestDB(t)
	accountSvc := NewAccountService(database)
	ctx := context.Background()

	owner := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	account := createTestAccount(t, database, owner.ID, "checking", 500)
	createTestAccount(t, database, owner.ID, "savings", 0)

	updated, err := accountSvc.UpdateDetails(ctx, owner, account.ID, "emergency fund", models.AccountTypeSavings)
	require.NoError(t, err)
	assert.Equal(t, "emergency fund", updated.Name)
	assert.Equal(t, models.AccountTypeSavings, updated.Type)
	assert.Equal(t, int64(500), updated.BalanceCents)

	_, err = accountSvc.UpdateDetails(ctx, owner, account.ID, "savings", models.AccountTypeSavings)
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrCodeDuplicateAccountName, svcErr.Code)

	stranger := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
	_, err = accountSvc.UpdateDetails(ctx, stranger, account.ID, "hijacked", models.AccountTypeChecking)
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrCodeAccountNotFound, svcErr.Code)
}
