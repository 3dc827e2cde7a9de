// Package migration applies the embedded schema migrations.
package migration

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"

	auditdomain "github.com/mmdpc/courierd/internal/audit/domain"
	authdomain "github.com/mmdpc/courierd/internal/auth/domain"
	customerdomain "github.com/mmdpc/courierd/internal/customer/domain"
	deliverydomain "github.com/mmdpc/courierd/internal/delivery/domain"
	fixedpricedomain "github.com/mmdpc/courierd/internal/fixedprice/domain"
	tariffdomain "github.com/mmdpc/courierd/internal/tariff/domain"
)

//go:embed sql/*.sql
var embeddedMigrations embed.FS

const migrationsDir = "sql"

// Run applies all pending migrations. Postgres databases get the embedded
// SQL migrations under an advisory lock so concurrent migrators cannot
// interleave; any other dialect falls back to gorm AutoMigrate.
func Run(gdb *gorm.DB) error {
	if gdb == nil {
		return errors.New("migration database handle is required")
	}

	if gdb.Dialector.Name() != "postgres" {
		return AutoMigrate(gdb)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("unwrap sql.DB: %w", err)
	}
	return runPostgres(sqlDB)
}

func runPostgres(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	unlock, err := acquireAdvisoryLock(ctx, db)
	if err != nil {
		return err
	}
	defer func() {
		_ = unlock(context.Background())
	}()

	sub, err := fs.Sub(embeddedMigrations, migrationsDir)
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	source, err := iofs.New(sub, ".")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := ensureNotDirty(migrator); err != nil {
		return err
	}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return ensureNotDirty(migrator)
}

func ensureNotDirty(migrator *migrate.Migrate) error {
	version, dirty, err := migrator.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return nil
		}
		return fmt.Errorf("read migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database migrations are dirty at version %d", version)
	}
	return nil
}

// AutoMigrate creates the schema from the gorm models. Used for sqlite
// runs and tests; postgres goes through the SQL migrations instead.
func AutoMigrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&authdomain.Admin{},
		&customerdomain.Customer{},
		&fixedpricedomain.FixedPrice{},
		&tariffdomain.Interval{},
		&deliverydomain.Delivery{},
		&auditdomain.AuditLog{},
	)
}
