package repository

import (
	"context"
	_ "embed"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/pipsmade/platform/internal/apperrors"
	"github.com/pipsmade/platform/internal/asset/model"
	db "github.com/pipsmade/platform/internal/database"
	"github.com/pipsmade/platform/internal/utils"
)

//go:embed queries/select_active_assets.sql
var selectActiveAssets string

//go:embed queries/select_asset_by_code.sql
var selectAssetByCode string

//go:embed queries/upsert_asset.sql
var upsertAsset string

type PostgresAssetRepository struct {
	postgresPool *db.PostgresPool
	logger       *zap.Logger
}

func NewPostgresAssetRepository(postgresPool *db.PostgresPool, logger *zap.Logger) *PostgresAssetRepository {
	return &PostgresAssetRepository{
		postgresPool: postgresPool,
		logger:       logger,
	}
}

func (r *PostgresAssetRepository) SelectActive(ctx context.Context) ([]model.Asset, error) {
	queryRows, err := r.postgresPool.DB.Query(ctx, selectActiveAssets)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}
	defer queryRows.Close()

	assets, err := pgx.CollectRows(queryRows, pgx.RowToStructByPos[model.Asset])
	if err != nil {
		return nil, apperrors.NewValueError("unable to collect rows", utils.Caller(), err)
	}

	return assets, nil
}

func (r *PostgresAssetRepository) SelectByCode(ctx context.Context, code string) (*model.Asset, error) {
	var asset model.Asset
	err := r.postgresPool.DB.QueryRow(ctx, selectAssetByCode, code).
		Scan(&asset.ID, &asset.Code, &asset.Name, &asset.DepositAddress, &asset.Network, &asset.IsActive,
			&asset.MinimumDeposit, &asset.DepositFeePercentage, &asset.WithdrawalFeePercentage,
			&asset.CreatedAt, &asset.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = apperrors.ErrAssetNotFound
		} else {
			err = apperrors.NewValueError("query failed", utils.Caller(), err)
		}
		return nil, err
	}

	return &asset, nil
}

func (r *PostgresAssetRepository) Upsert(ctx context.Context, asset model.Asset) error {
	_, err := r.postgresPool.DB.Exec(ctx, upsertAsset,
		asset.ID, asset.Code, asset.Name, asset.DepositAddress, asset.Network, asset.IsActive,
		asset.MinimumDeposit, asset.DepositFeePercentage, asset.WithdrawalFeePercentage)
	if err != nil {
		return apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return nil
}
