// Package service implements the ledger business logic: money movement
// operations executed exactly once per (actor, idempotency key), account
// reads, and account detail updates.
package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/simonstancovich/banking-ledger/internal/db"
	"github.com/simonstancovich/banking-ledger/internal/models"
	"github.com/simonstancovich/banking-ledger/internal/repository"
)

// OperationFunc is one unit of business work executed inside a single
// database transaction. The querier passed in is scoped to that transaction.
// The returned value must serialize to JSON: it becomes the stored result
// that later calls with the same idempotency key receive.
type OperationFunc func(ctx context.Context, q db.Querier) (any, error)

// ExecutionResult carries the serialized operation result and whether this
// call produced it or replayed a previously stored one.
type ExecutionResult struct {
	Payload json.RawMessage
	Status  models.IdempotencyStatus
}

// IdempotencyCoordinator executes keyed operations exactly once.
//
// The reservation row and the operation's business writes share one database
// transaction, so they commit or roll back together. The unique constraint
// on (actor_id, idempotency_key) arbitrates concurrent submissions: exactly
// one request inserts the PROCESSING reservation, every other concurrent
// request loses the insert and resolves against the winner's record. No
// in-process state is involved, so arbitration holds across replicas.
type IdempotencyCoordinator struct {
	db     *db.DB
	logger *slog.Logger
}

// NewIdempotencyCoordinator creates a new IdempotencyCoordinator
func NewIdempotencyCoordinator(database *db.DB, logger *slog.Logger) *IdempotencyCoordinator {
	return &IdempotencyCoordinator{
		db:     database,
		logger: logger,
	}
}

// Execute runs op exactly once for (actor, key).
//
// A key already COMPLETED returns the stored payload with StatusReplayed and
// does not run op. A key still PROCESSING returns ErrCodeOperationInProgress.
// A fresh key reserves, runs op, stores the serialized result and commits in
// one transaction; op failing rolls everything back, leaving the key
// retryable.
func (c *IdempotencyCoordinator) Execute(ctx context.Context, actor models.Actor, key string, op OperationFunc) (*ExecutionResult, error) {
	if err := ValidateIdempotencyKey(key); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidRequest,
			Message: err.Error(),
		}
	}

	idemRepo := repository.NewIdempotencyRepository(c.db)

	record, err := idemRepo.Find(ctx, actor.ID, key)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to look up idempotency record: %v", err),
		}
	}
	if record != nil {
		return c.resolveExisting(record)
	}

	result, err := c.executeFresh(ctx, actor, key, op)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateIdempotencyKey) {
			return c.resolveLostRace(ctx, idemRepo, actor, key)
		}
		return nil, err
	}

	return result, nil
}

// executeFresh reserves the key and runs the operation inside one transaction.
func (c *IdempotencyCoordinator) executeFresh(ctx context.Context, actor models.Actor, key string, op OperationFunc) (*ExecutionResult, error) {
	tx, err := c.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to start transaction: %v", err),
		}
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	txIdemRepo := repository.NewIdempotencyRepository(tx)

	record := &models.IdempotencyRecord{
		ActorID:        actor.ID,
		IdempotencyKey: key,
	}
	if err := txIdemRepo.InsertProcessing(ctx, record); err != nil {
		if errors.Is(err, models.ErrDuplicateIdempotencyKey) {
			return nil, err
		}
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to reserve idempotency key: %v", err),
		}
	}

	value, err := op(ctx, tx)
	if err != nil {
		// Rollback discards the PROCESSING reservation along with any
		// business writes, so the key stays retryable.
		return nil, err
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to serialize operation result: %v", err),
		}
	}

	if err := txIdemRepo.MarkCompleted(ctx, record.ID, payload); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to complete idempotency record: %v", err),
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to commit transaction: %v", err),
		}
	}

	return &ExecutionResult{
		Payload: payload,
		Status:  models.IdempotencyStatusCreated,
	}, nil
}

// resolveExisting maps a found record to a replay or a conflict.
func (c *IdempotencyCoordinator) resolveExisting(record *models.IdempotencyRecord) (*ExecutionResult, error) {
	switch record.Status {
	case models.IdempotencyRecordCompleted:
		c.logger.Debug("returning stored idempotent result",
			"actor_id", record.ActorID,
			"idempotency_key", record.IdempotencyKey,
		)
		return &ExecutionResult{
			Payload: record.ResultPayload,
			Status:  models.IdempotencyStatusReplayed,
		}, nil
	case models.IdempotencyRecordProcessing:
		return nil, &ServiceError{
			Code:    ErrCodeOperationInProgress,
			Message: "a request with this idempotency key is already being processed",
		}
	default:
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("idempotency record in unexpected state %q", record.Status),
		}
	}
}

// resolveLostRace re-reads the record after losing the reservation insert to
// a concurrent request with the same key.
func (c *IdempotencyCoordinator) resolveLostRace(ctx context.Context, idemRepo repository.IdempotencyRepository, actor models.Actor, key string) (*ExecutionResult, error) {
	c.logger.Debug("lost idempotency reservation race",
		"actor_id", actor.ID,
		"idempotency_key", key,
	)

	record, err := idemRepo.Find(ctx, actor.ID, key)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to re-read idempotency record: %v", err),
		}
	}
	if record == nil {
		// The winner rolled back between our failed insert and this read.
		// Report the key as busy; the caller can safely retry it.
		return nil, &ServiceError{
			Code:    ErrCodeOperationInProgress,
			Message: "a request with this idempotency key is already being processed",
		}
	}

	return c.resolveExisting(record)
}

// PurgeStale deletes PROCESSING records older than maxAge. A record can only
// remain PROCESSING without an active transaction if the process crashed
// mid-commit; purging it reopens the key for retries.
func (c *IdempotencyCoordinator) PurgeStale(ctx context.Context, maxAge time.Duration) (int64, error) {
	idemRepo := repository.NewIdempotencyRepository(c.db)

	purged, err := idemRepo.DeleteStale(ctx, time.Now().Add(-maxAge))
	if err != nil {
		return 0, fmt.Errorf("failed to purge stale idempotency records: %w", err)
	}

	if purged > 0 {
		c.logger.Info("purged stale idempotency records", "count", purged)
	}

	return purged, nil
}
