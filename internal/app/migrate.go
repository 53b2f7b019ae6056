package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/novaleague/vrfs-bot/internal/config"
	"github.com/novaleague/vrfs-bot/internal/platform/logging"
)

var defaultMigrationDirs = []string{"./db/migrations", "/app/db/migrations"}

// NewMigrator opens a migrate instance over the resolved migrations directory.
func NewMigrator(cfg config.Config) (*migrate.Migrate, string, error) {
	dir, err := ResolveMigrationsDir(cfg.MigrationsDir)
	if err != nil {
		return nil, "", err
	}

	sourceURL := "file://" + filepath.ToSlash(dir)
	m, err := migrate.New(sourceURL, NormalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary))
	if err != nil {
		return nil, "", fmt.Errorf("create migrator: %w", err)
	}
	return m, sourceURL, nil
}

// ResolveMigrationsDir returns the first existing directory among preferred
// and the defaults.
func ResolveMigrationsDir(preferred string) (string, error) {
	candidates := append([]string{strings.TrimSpace(preferred)}, defaultMigrationDirs...)
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			continue
		}
		return abs, nil
	}

	return "", fmt.Errorf("migration directory not found (checked MIGRATIONS_DIR, %s)", strings.Join(defaultMigrationDirs, ", "))
}

// CloseMigrator logs close failures; there is nothing else to do with them.
func CloseMigrator(m *migrate.Migrate, logger *logging.Logger) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Warn("close migration source", "error", srcErr)
	}
	if dbErr != nil {
		logger.Warn("close migration db", "error", dbErr)
	}
}

// RunMigrations applies pending migrations when DB_AUTO_MIGRATE is set.
func RunMigrations(cfg config.Config, logger *logging.Logger) error {
	if !cfg.DBAutoMigrate || cfg.StorageDriver != config.StorageDriverPostgres {
		return nil
	}

	m, sourceURL, err := NewMigrator(cfg)
	if err != nil {
		return err
	}
	defer CloseMigrator(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", err)
	}
	logger.Info("migrations applied", "source", sourceURL, "version", version, "dirty", dirty)
	return nil
}
