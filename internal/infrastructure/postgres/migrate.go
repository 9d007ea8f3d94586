package postgres

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// ErrNoChange no hay migraciones pendientes en la dirección pedida.
var ErrNoChange = migrate.ErrNoChange

// Migrate aplica las migraciones embebidas. direction: "up" o "down".
// Ya estar en la versión final no es un error.
func Migrate(dsn, direction string) error {
	if dsn == "" {
		return errors.New("migrate: DSN vacío")
	}
	if direction != "up" && direction != "down" {
		return fmt.Errorf("migrate: dirección inválida %q (up|down)", direction)
	}

	source, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("migrate source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", source, dsn)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate %s: %w", direction, err)
	}
	return nil
}
