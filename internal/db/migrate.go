package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"

	// File system migration source; imported for side effect so it can be
	// used as the source in migrate.NewWithDatabaseInstance
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrate applies all pending up migrations from the given directory.
// Running against an already-migrated database is a no-op.
func (db *DB) Migrate(migrationsPath string) error {
	driver, err := migratepg.WithInstance(db.DB, &migratepg.Config{
		DatabaseName: db.name,
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, db.name, driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	db.logger.Info("database migrations applied", "path", migrationsPath)

	return nil
}
