package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/pipsmade/platform/internal/apperrors"
	"github.com/pipsmade/platform/internal/utils"
)

type PostgresPool struct {
	DB     *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgresPool(dsn string, logger *zap.Logger) (*PostgresPool, error) {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, apperrors.NewValueError("unable to create connection pool", utils.Caller(), err)
	}

	if err = pool.Ping(context.Background()); err != nil {
		return nil, apperrors.NewValueError("unable to connect to database", utils.Caller(), err)
	}

	return &PostgresPool{
		DB:     pool,
		logger: logger,
	}, nil
}

func (p *PostgresPool) Close() {
	p.DB.Close()
}
