package dto

import (
	"github.com/shopspring/decimal"

	"github.com/pipsmade/platform/internal/asset/model"
)

type AssetResponse struct {
	Code                    string          `json:"code"`
	Name                    string          `json:"name"`
	DepositAddress          string          `json:"deposit_address"`
	Network                 string          `json:"network"`
	MinimumDeposit          decimal.Decimal `json:"minimum_deposit"`
	DepositFeePercentage    decimal.Decimal `json:"deposit_fee_percentage"`
	WithdrawalFeePercentage decimal.Decimal `json:"withdrawal_fee_percentage"`
}

func MapToAssetResponse(asset model.Asset) AssetResponse {
	return AssetResponse{
		Code:                    asset.Code,
		Name:                    asset.Name,
		DepositAddress:          asset.DepositAddress,
		Network:                 asset.Network,
		MinimumDeposit:          asset.MinimumDeposit,
		DepositFeePercentage:    asset.DepositFeePercentage,
		WithdrawalFeePercentage: asset.WithdrawalFeePercentage,
	}
}

type AssetUpsertRequest struct {
	Code                    string          `json:"code" validate:"required"`
	Name                    string          `json:"name" validate:"required"`
	DepositAddress          string          `json:"deposit_address" validate:"required"`
	Network                 string          `json:"network" validate:"required"`
	IsActive                bool            `json:"is_active"`
	MinimumDeposit          decimal.Decimal `json:"minimum_deposit"`
	DepositFeePercentage    decimal.Decimal `json:"deposit_fee_percentage"`
	WithdrawalFeePercentage decimal.Decimal `json:"withdrawal_fee_percentage"`
}
