// Seeder creates a deterministic set of demo accounts with opening balances.
// It funds accounts through the deposit service with fixed idempotency keys,
// so running it repeatedly never moves money twice.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/simonstancovich/banking-ledger/internal/config"
	"github.com/simonstancovich/banking-ledger/internal/db"
	"github.com/simonstancovich/banking-ledger/internal/models"
	"github.com/simonstancovich/banking-ledger/internal/repository"
	"github.com/simonstancovich/banking-ledger/internal/service"
)

var (
	aliceID = uuid.MustParse("11111111-0000-0000-0000-000000000001")
	bobID   = uuid.MustParse("22222222-0000-0000-0000-000000000002")
)

type seedAccount struct {
	owner        uuid.UUID
	name         string
	accountType  models.AccountType
	openingCents int64
}

var seedAccounts = []seedAccount{
	{owner: aliceID, name: "everyday checking", accountType: models.AccountTypeChecking, openingCents: 50000},
	{owner: aliceID, name: "rainy day savings", accountType: models.AccountTypeSavings, openingCents: 250000},
	{owner: bobID, name: "everyday checking", accountType: models.AccountTypeChecking, openingCents: 75000},
	{owner: bobID, name: "vacation savings", accountType: models.AccountTypeSavings, openingCents: 120000},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()

	ctx := context.Background()
	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := database.Migrate(cfg.Database.MigrationsPath); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	if err := seed(ctx, database, logger); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	logger.Info("seeding complete",
		"accounts", len(seedAccounts),
		"alice_id", aliceID,
		"bob_id", bobID,
	)
}

func seed(ctx context.Context, database *db.DB, logger *slog.Logger) error {
	accountRepo := repository.NewAccountRepository(database)
	coordinator := service.NewIdempotencyCoordinator(database, logger)
	depositService := service.NewDepositService(database, coordinator)

	for _, sa := range seedAccounts {
		account, err := ensureAccount(ctx, accountRepo, sa)
		if err != nil {
			return fmt.Errorf("ensuring account %q for %s: %w", sa.name, sa.owner, err)
		}

		if sa.openingCents == 0 {
			continue
		}

		actor := models.Actor{ID: sa.owner, Role: models.RoleCustomer}
		key := fmt.Sprintf("seed:%s:%s", sa.owner, sa.name)

		_, status, err := depositService.Deposit(ctx, actor, key, service.DepositParams{
			AccountID:   account.ID,
			AmountCents: sa.openingCents,
			Note:        "opening balance",
		})
		if err != nil {
			return fmt.Errorf("funding account %q: %w", sa.name, err)
		}

		logger.Info("seeded account",
			"owner_id", sa.owner,
			"account_id", account.ID,
			"name", sa.name,
			"opening_cents", sa.openingCents,
			"deposit_status", status,
		)
	}

	return nil
}

// ensureAccount creates the account or returns the existing one with the
// same owner and name.
func ensureAccount(ctx context.Context, accountRepo repository.AccountRepository, sa seedAccount) (*models.Account, error) {
	account := &models.Account{
		OwnerID: sa.owner,
		Name:    sa.name,
		Type:    sa.accountType,
	}

	err := accountRepo.Create(ctx, account)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, models.ErrDuplicateAccountName) {
		return nil, err
	}

	existing, err := accountRepo.ListByOwner(ctx, sa.owner)
	if err != nil {
		return nil, err
	}
	for _, candidate := range existing {
		if candidate.Name == sa.name {
			return candidate, nil
		}
	}

	return nil, fmt.Errorf("account %q exists but was not found for owner %s", sa.name, sa.owner)
}
