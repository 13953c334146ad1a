package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pipsmade/platform/internal/utils"
	"github.com/pipsmade/platform/internal/wallet/handler/dto"
	"github.com/pipsmade/platform/internal/wallet/model"
)

type WalletRepository interface {
	SelectAllByUser(ctx context.Context, userLogin string) ([]model.Wallet, error)
}

type WalletUseCase struct {
	repository WalletRepository
	logger     *zap.Logger
}

func NewWalletService(repository WalletRepository, logger *zap.Logger) *WalletUseCase {
	return &WalletUseCase{
		repository: repository,
		logger:     logger,
	}
}

func (w *WalletUseCase) GetByUser(ctx context.Context, userLogin string) ([]dto.WalletResponse, error) {
	wallets, err := w.repository.SelectAllByUser(ctx, userLogin)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	walletResponses := make([]dto.WalletResponse, 0, len(wallets))
	for _, v := range wallets {
		walletResponses = append(walletResponses, dto.MapToWalletResponse(v))
	}

	return walletResponses, nil
}
