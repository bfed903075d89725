package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/simonstancovich/banking-ledger/internal/db"
	"github.com/simonstancovich/banking-ledger/internal/models"
)

// IdempotencyRepository defines the interface for idempotency record data
// access. The unique constraint on (actor_id, idempotency_key) is the sole
// arbiter between concurrent executions of the same key; InsertProcessing
// surfaces a loss of that race as models.ErrDuplicateIdempotencyKey.
type IdempotencyRepository interface {
	// Find returns the record for (actorID, key), or (nil, nil) when no
	// record exists.
	Find(ctx context.Context, actorID uuid.UUID, key string) (*models.IdempotencyRecord, error)
	// InsertProcessing reserves the key by inserting a PROCESSING record.
	// Returns models.ErrDuplicateIdempotencyKey when another record already
	// holds the key.
	InsertProcessing(ctx context.Context, record *models.IdempotencyRecord) error
	// MarkCompleted transitions a PROCESSING record to COMPLETED and attaches
	// the serialized operation result.
	MarkCompleted(ctx context.Context, id uuid.UUID, payload json.RawMessage) error
	// DeleteStale removes PROCESSING records created before the cutoff,
	// reopening keys orphaned by a crash between commit phases. Returns the
	// number of records removed.
	DeleteStale(ctx context.Context, cutoff time.Time) (int64, error)
}

// idempotencyRepository implements IdempotencyRepository
type idempotencyRepository struct {
	q db.Querier
}

// NewIdempotencyRepository creates a new IdempotencyRepository over the given querier
func NewIdempotencyRepository(q db.Querier) IdempotencyRepository {
	return &idempotencyRepository{q: q}
}

func (r *idempotencyRepository) Find(ctx context.Context, actorID uuid.UUID, key string) (*models.IdempotencyRecord, error) {
	query := `
		SELECT id, actor_id, idempotency_key, status, result_payload, created_at
		FROM idempotency_records
		WHERE actor_id = $1 AND idempotency_key = $2
	`

	var record models.IdempotencyRecord
	var status string
	var payload []byte

	err := r.q.QueryRowContext(ctx, query, actorID, key).Scan(
		&record.ID,
		&record.ActorID,
		&record.IdempotencyKey,
		&status,
		&payload,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find idempotency record: %w", err)
	}

	record.Status = models.IdempotencyRecordStatus(status)
	record.ResultPayload = payload

	return &record, nil
}

func (r *idempotencyRepository) InsertProcessing(ctx context.Context, record *models.IdempotencyRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	query := `
		INSERT INTO idempotency_records (id, actor_id, idempotency_key, status, result_payload, created_at)
		VALUES ($1, $2, $3, $4, NULL, NOW())
		RETURNING created_at
	`

	record.Status = models.IdempotencyRecordProcessing

	err := r.q.QueryRowContext(ctx, query,
		record.ID,
		record.ActorID,
		record.IdempotencyKey,
		record.Status,
	).Scan(&record.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "idempotency_records_actor_id_idempotency_key_key") {
			return models.ErrDuplicateIdempotencyKey
		}
		return fmt.Errorf("failed to insert idempotency record: %w", err)
	}

	return nil
}

func (r *idempotencyRepository) MarkCompleted(ctx context.Context, id uuid.UUID, payload json.RawMessage) error {
	query := `
		UPDATE idempotency_records
		SET status = $2,
		    result_payload = $3
		WHERE id = $1 AND status = $4
	`

	result, err := r.q.ExecContext(ctx, query, id, models.IdempotencyRecordCompleted, []byte(payload), models.IdempotencyRecordProcessing)
	if err != nil {
		return fmt.Errorf("failed to mark idempotency record completed: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("idempotency record %s is not in %s state", id, models.IdempotencyRecordProcessing)
	}

	return nil
}

func (r *idempotencyRepository) DeleteStale(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM idempotency_records
		WHERE status = $1 AND created_at < $2
	`

	result, err := r.q.ExecContext(ctx, query, models.IdempotencyRecordProcessing, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale idempotency records: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
