package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pipsmade/platform/internal/asset/handler/dto"
	"github.com/pipsmade/platform/internal/asset/model"
	"github.com/pipsmade/platform/internal/utils"
)

type AssetRepository interface {
	SelectActive(ctx context.Context) ([]model.Asset, error)
	SelectByCode(ctx context.Context, code string) (*model.Asset, error)
	Upsert(ctx context.Context, asset model.Asset) error
}

type AssetUseCase struct {
	repository AssetRepository
	logger     *zap.Logger
}

func NewAssetService(repository AssetRepository, logger *zap.Logger) *AssetUseCase {
	return &AssetUseCase{
		repository: repository,
		logger:     logger,
	}
}

func (a *AssetUseCase) GetActive(ctx context.Context) ([]dto.AssetResponse, error) {
	assets, err := a.repository.SelectActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	assetResponses := make([]dto.AssetResponse, 0, len(assets))
	for _, v := range assets {
		assetResponses = append(assetResponses, dto.MapToAssetResponse(v))
	}

	return assetResponses, nil
}

func (a *AssetUseCase) Upsert(ctx context.Context, request dto.AssetUpsertRequest) error {
	asset := model.Asset{
		ID:                      uuid.New().String(),
		Code:                    request.Code,
		Name:                    request.Name,
		DepositAddress:          request.DepositAddress,
		Network:                 request.Network,
		IsActive:                request.IsActive,
		MinimumDeposit:          request.MinimumDeposit,
		DepositFeePercentage:    request.DepositFeePercentage,
		WithdrawalFeePercentage: request.WithdrawalFeePercentage,
	}

	if err := a.repository.Upsert(ctx, asset); err != nil {
		return fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return nil
}
