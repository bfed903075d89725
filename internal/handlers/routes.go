package handlers

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/simonstancovich/banking-ledger/internal/api"
	"github.com/simonstancovich/banking-ledger/internal/db"
	"github.com/simonstancovich/banking-ledger/internal/middleware"
	"github.com/simonstancovich/banking-ledger/internal/service"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	database *db.DB,
	logger *slog.Logger,
) http.Handler {
	coordinator := service.NewIdempotencyCoordinator(database, logger)
	transferService := service.NewTransferService(database, coordinator)
	depositService := service.NewDepositService(database, coordinator)
	withdrawalService := service.NewWithdrawalService(database, coordinator)
	accountService := service.NewAccountService(database)

	handler := NewHandler(
		transferService,
		depositService,
		withdrawalService,
		accountService,
		accountService,
		database,
		logger,
	)

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)

	mux.HandleFunc("GET /health", handler.GetHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /api/v1/transfers", handler.CreateTransfer)
	mux.HandleFunc("GET /api/v1/transfers/{transferId}", handler.GetTransfer)
	mux.HandleFunc("POST /api/v1/deposits", handler.CreateDeposit)
	mux.HandleFunc("POST /api/v1/withdrawals", handler.CreateWithdrawal)

	mux.HandleFunc("GET /api/v1/accounts", handler.ListAccounts)
	mux.HandleFunc("GET /api/v1/accounts/{accountId}", handler.GetAccount)
	mux.HandleFunc("GET /api/v1/accounts/{accountId}/transactions", handler.ListAccountTransactions)
	mux.HandleFunc("PATCH /api/v1/accounts/{accountId}", handler.UpdateAccount)

	var finalHandler http.Handler = mux

	finalHandler = middleware.Actor(logger)(finalHandler)
	finalHandler = middleware.Metrics()(finalHandler)
	finalHandler = middleware.RequestLogger(logger)(finalHandler)

	return finalHandler
}
