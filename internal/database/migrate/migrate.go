// Package migrate provides database migration management.
package migrate

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"

	appConfig "github.com/festy23/league_manager/internal/config"
)

//go:embed migrations
var migrationsFS embed.FS

// GetMigrationsPath returns the migrations directory override.
// An empty path means the migrations embedded in the binary are used.
func GetMigrationsPath() string {
	return appConfig.GetEnv("MIGRATIONS_PATH", "")
}

// Migrate applies pending migrations for the dialect of db using golang-migrate.
// Migrations come from MIGRATIONS_PATH/<dialect> when set, otherwise from the
// embedded migrations.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	dialect := db.Dialector.Name()

	src, err := openSource(dialect, GetMigrationsPath())
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	var driver database.Driver
	switch dialect {
	case "postgres":
		driver, err = postgres.WithInstance(sqlDB, &postgres.Config{})
	case "sqlite":
		driver, err = sqlite3.WithInstance(sqlDB, &sqlite3.Config{})
	default:
		return fmt.Errorf("unsupported database dialect: %s", dialect)
	}
	if err != nil {
		return fmt.Errorf("failed to create %s driver: %w", dialect, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, dialect, driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

// openSource returns the migration source for dialect, from dir when set.
func openSource(dialect, dir string) (source.Driver, error) {
	var fsys fs.FS = migrationsFS
	root := filepath.ToSlash(filepath.Join("migrations", dialect))

	if dir != "" {
		migrationsPath, err := filepath.Abs(filepath.Join(dir, dialect))
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
		}
		if _, statErr := os.Stat(migrationsPath); os.IsNotExist(statErr) {
			return nil, fmt.Errorf("migrations directory does not exist: %s", migrationsPath)
		}
		fsys = os.DirFS(migrationsPath)
		root = "."
	} else if _, err := fs.Stat(migrationsFS, root); err != nil {
		return nil, fmt.Errorf("no embedded migrations for dialect %s", dialect)
	}

	src, err := iofs.New(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("failed to open migrations source: %w", err)
	}
	return src, nil
}
