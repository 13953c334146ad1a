package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pipsmade/platform/internal/apperrors"
	assetmodel "github.com/pipsmade/platform/internal/asset/model"
	"github.com/pipsmade/platform/internal/transaction/handler/dto"
	"github.com/pipsmade/platform/internal/transaction/model"
	"github.com/pipsmade/platform/internal/utils"
	walletmodel "github.com/pipsmade/platform/internal/wallet/model"
)

// TransactionRepository mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_transaction_repository.go -package=mock github.com/pipsmade/platform/internal/transaction/service TransactionRepository
type TransactionRepository interface {
	InsertWithdrawal(ctx context.Context, transaction model.Transaction, request model.WithdrawalRequest) error
	InsertDeposit(ctx context.Context, transaction model.Transaction, request model.DepositRequest) error
	SelectByUser(ctx context.Context, userLogin string, kind string, status string) ([]model.Transaction, error)
}

// AssetProvider mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_asset_provider.go -package=mock github.com/pipsmade/platform/internal/transaction/service AssetProvider
type AssetProvider interface {
	SelectByCode(ctx context.Context, code string) (*assetmodel.Asset, error)
}

// BalanceProvider mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_balance_provider.go -package=mock github.com/pipsmade/platform/internal/transaction/service BalanceProvider
type BalanceProvider interface {
	SelectByUserAndAsset(ctx context.Context, userLogin string, assetCode string) (*walletmodel.Wallet, error)
}

// OperatorNotifier mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_operator_notifier.go -package=mock github.com/pipsmade/platform/internal/transaction/service OperatorNotifier
//
// Implementations are best-effort: they log failures internally and never
// block or fail the submission.
type OperatorNotifier interface {
	WithdrawalSubmitted(request model.WithdrawalRequest)
	DepositSubmitted(request model.DepositRequest)
}

type TransactionUseCase struct {
	repository TransactionRepository
	assets     AssetProvider
	wallets    BalanceProvider
	notifier   OperatorNotifier
	logger     *zap.Logger
}

func NewTransactionService(
	repository TransactionRepository,
	assets AssetProvider,
	wallets BalanceProvider,
	notifier OperatorNotifier,
	logger *zap.Logger,
) *TransactionUseCase {
	return &TransactionUseCase{
		repository: repository,
		assets:     assets,
		wallets:    wallets,
		notifier:   notifier,
		logger:     logger,
	}
}

// SubmitWithdrawal validates the balance, computes the platform fee from the
// asset's configured rate and creates the pending transaction with its
// request. The ledger is not touched until an operator approves.
func (t *TransactionUseCase) SubmitWithdrawal(ctx context.Context, userLogin string, request dto.WithdrawalSubmitRequest, ipAddress string, userAgent string) (*dto.TransactionResponse, error) {
	asset, err := t.assets.SelectByCode(ctx, request.AssetCode)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	if !asset.IsActive {
		return nil, apperrors.ErrAssetNotFound
	}

	wallet, err := t.wallets.SelectByUserAndAsset(ctx, userLogin, request.AssetCode)
	if errors.Is(err, apperrors.ErrWalletNotFound) {
		return nil, apperrors.ErrInsufficientBalance
	}

	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	if wallet.Balance.LessThan(request.Amount) {
		return nil, apperrors.ErrInsufficientBalance
	}

	platformFee := request.Amount.Mul(asset.WithdrawalFeePercentage).Div(decimal.NewFromInt(100))

	transaction := model.Transaction{
		ID:          uuid.New().String(),
		UserLogin:   userLogin,
		Kind:        model.KindWithdrawal,
		Status:      model.StatusPending,
		AssetCode:   request.AssetCode,
		Amount:      request.Amount,
		PlatformFee: platformFee,
		ToAddress:   request.DestinationAddress,
		UserNotes:   fmt.Sprintf("Withdrawal via %s", request.Network),
	}

	withdrawalRequest := model.WithdrawalRequest{
		ID:                 uuid.New().String(),
		TransactionID:      transaction.ID,
		UserLogin:          userLogin,
		AssetCode:          request.AssetCode,
		Amount:             request.Amount,
		DestinationAddress: request.DestinationAddress,
		Network:            request.Network,
		PlatformFee:        platformFee,
		IPAddress:          ipAddress,
		UserAgent:          userAgent,
	}

	if err = t.repository.InsertWithdrawal(ctx, transaction, withdrawalRequest); err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	t.notifier.WithdrawalSubmitted(withdrawalRequest)

	response := dto.MapToTransactionResponse(transaction)
	return &response, nil
}

// SubmitDeposit records the user's claim of an external payment. The ledger is
// credited only when an operator verifies the proof and approves.
func (t *TransactionUseCase) SubmitDeposit(ctx context.Context, userLogin string, request dto.DepositSubmitRequest) (*dto.TransactionResponse, error) {
	asset, err := t.assets.SelectByCode(ctx, request.AssetCode)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	if !asset.IsActive {
		return nil, apperrors.ErrAssetNotFound
	}

	if request.Amount.LessThan(asset.MinimumDeposit) {
		return nil, apperrors.ErrBelowMinimumDeposit
	}

	transaction := model.Transaction{
		ID:          uuid.New().String(),
		UserLogin:   userLogin,
		Kind:        model.KindDeposit,
		Status:      model.StatusPending,
		AssetCode:   request.AssetCode,
		Amount:      request.Amount,
		TxHash:      request.TxHash,
		FromAddress: request.SenderAddress,
		ToAddress:   asset.DepositAddress,
		UserNotes:   fmt.Sprintf("Deposit via %s", asset.Network),
	}

	depositRequest := model.DepositRequest{
		ID:            uuid.New().String(),
		TransactionID: transaction.ID,
		UserLogin:     userLogin,
		AssetCode:     request.AssetCode,
		Amount:        request.Amount,
		TxHash:        request.TxHash,
		SenderAddress: request.SenderAddress,
		ProofURL:      request.ProofURL,
	}

	if err = t.repository.InsertDeposit(ctx, transaction, depositRequest); err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	t.notifier.DepositSubmitted(depositRequest)

	response := dto.MapToTransactionResponse(transaction)
	return &response, nil
}

func (t *TransactionUseCase) GetByUser(ctx context.Context, userLogin string, kind string, status string) ([]dto.TransactionResponse, error) {
	transactions, err := t.repository.SelectByUser(ctx, userLogin, kind, status)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	transactionResponses := make([]dto.TransactionResponse, 0, len(transactions))
	for _, v := range transactions {
		transactionResponses = append(transactionResponses, dto.MapToTransactionResponse(v))
	}

	return transactionResponses, nil
}
