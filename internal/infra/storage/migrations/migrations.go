package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

var (
	// ErrMigrate ошибка применения миграций
	ErrMigrate = errors.New("migrations: failed to apply migrations")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Up применяет все миграции
func Up(db *sql.DB, log Logger) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%w: Up: %v", ErrMigrate, err)
	}
	logVersion(m, log)
	return nil
}

// Down откатывает steps миграций
func Down(db *sql.DB, steps int, log Logger) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%w: Down: %v", ErrMigrate, err)
	}
	logVersion(m, log)
	return nil
}

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("%w: open embedded source: %v", ErrMigrate, err)
	}
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("%w: init postgres driver: %v", ErrMigrate, err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("%w: init migrator: %v", ErrMigrate, err)
	}
	return m, nil
}

func logVersion(m *migrate.Migrate, log Logger) {
	version, dirty, err := m.Version()
	if err != nil {
		log.Info("Migrations: no version applied")
		return
	}
	log.Info("Migrations: schema version=%d dirty=%t", version, dirty)
}
