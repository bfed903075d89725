// Package handlers implements HTTP handlers for the ledger API.
package handlers

import (
	"log/slog"

	"github.com/simonstancovich/banking-ledger/internal/service"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "X-Idempotent-Replayed"
)

// Handler serves all ledger endpoints.
type Handler struct {
	transferService   service.Transferer
	depositService    service.Depositor
	withdrawalService service.Withdrawer
	accountReader     service.AccountReader
	accountUpdater    service.AccountUpdater
	healthChecker     service.HealthChecker
	logger            *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	transferService service.Transferer,
	depositService service.Depositor,
	withdrawalService service.Withdrawer,
	accountReader service.AccountReader,
	accountUpdater service.AccountUpdater,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		transferService:   transferService,
		depositService:    depositService,
		withdrawalService: withdrawalService,
		accountReader:     accountReader,
		accountUpdater:    accountUpdater,
		healthChecker:     healthChecker,
		logger:            logger,
	}
}
