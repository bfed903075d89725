package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// IdempotencyRecordStatus tracks the lifecycle of a keyed operation attempt.
//
// Valid transitions: PROCESSING → COMPLETED. A record never moves backward
// and a failed attempt rolls its PROCESSING row back entirely, so the key
// becomes retryable as if never seen.
type IdempotencyRecordStatus string

const (
	IdempotencyRecordProcessing IdempotencyRecordStatus = "PROCESSING"
	IdempotencyRecordCompleted  IdempotencyRecordStatus = "COMPLETED"
)

// IdempotencyStatus tells a caller whether their result was freshly computed
// or served from a previously completed attempt with the same key.
type IdempotencyStatus string

const (
	IdempotencyStatusCreated  IdempotencyStatus = "CREATED"
	IdempotencyStatusReplayed IdempotencyStatus = "REPLAYED"
)

// IdempotencyRecord tracks one operation attempt per (actor, key) pair.
//
// The unique index on (ActorID, IdempotencyKey) is the arbiter for concurrent
// duplicate submissions: exactly one request wins the PROCESSING insert.
// ResultPayload holds the serialized operation result once COMPLETED and is
// returned verbatim on replay.
type IdempotencyRecord struct {
	CreatedAt      time.Time               `db:"created_at" json:"created_at"`
	IdempotencyKey string                  `db:"idempotency_key" json:"idempotency_key"`
	Status         IdempotencyRecordStatus `db:"status" json:"status"`
	ResultPayload  json.RawMessage         `db:"result_payload" json:"result_payload,omitempty"`
	ID             uuid.UUID               `db:"id" json:"id"`
	ActorID        uuid.UUID               `db:"actor_id" json:"actor_id"`
}
