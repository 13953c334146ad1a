package dto

import (
	"github.com/shopspring/decimal"

	"github.com/pipsmade/platform/internal/wallet/model"
)

type WalletResponse struct {
	AssetCode string          `json:"asset_code"`
	Balance   decimal.Decimal `json:"balance"`
}

func MapToWalletResponse(wallet model.Wallet) WalletResponse {
	return WalletResponse{
		AssetCode: wallet.AssetCode,
		Balance:   wallet.Balance,
	}
}
