package database

import (
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/pipsmade/platform/internal/apperrors"
	"github.com/pipsmade/platform/internal/utils"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type Migrations struct {
	migrations *migrate.Migrate
	logger     *zap.Logger
}

func NewMigrations(dsn string, logger *zap.Logger) (*Migrations, error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, apperrors.NewValueError("unable to load embedded migrations", utils.Caller(), err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, apperrors.NewValueError("unable to open database", utils.Caller(), err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, apperrors.NewValueError("unable to create migration driver", utils.Caller(), err)
	}

	migrations, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, apperrors.NewValueError("unable to create migrations", utils.Caller(), err)
	}

	return &Migrations{
		migrations: migrations,
		logger:     logger,
	}, nil
}

func (m *Migrations) MigrateUp() error {
	err := m.migrations.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return apperrors.NewValueError("unable to up migrations", utils.Caller(), err)
	}

	m.logger.Info("Migrations applied")
	return nil
}
