package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/pipsmade/platform/internal/transaction/model"
)

type WithdrawalSubmitRequest struct {
	AssetCode          string          `json:"asset_code" validate:"required"`
	Amount             decimal.Decimal `json:"amount" validate:"required,positive_amount"`
	DestinationAddress string          `json:"destination_address" validate:"required"`
	Network            string          `json:"network" validate:"required"`
}

type DepositSubmitRequest struct {
	AssetCode     string          `json:"asset_code" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"required,positive_amount"`
	TxHash        string          `json:"tx_hash" validate:"required"`
	SenderAddress string          `json:"sender_address" validate:"required"`
	ProofURL      string          `json:"proof_url"`
}

func PositiveAmount(fl validator.FieldLevel) bool {
	amount, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return amount.IsPositive()
}

type TransactionResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Status      string          `json:"status"`
	AssetCode   string          `json:"asset_code"`
	Amount      decimal.Decimal `json:"amount"`
	PlatformFee decimal.Decimal `json:"platform_fee"`
	NetworkFee  decimal.Decimal `json:"network_fee"`
	NetAmount   decimal.Decimal `json:"net_amount"`
	TxHash      string          `json:"tx_hash,omitempty"`
	CreatedAt   string          `json:"created_at"`
	CompletedAt string          `json:"completed_at,omitempty"`
}

func MapToTransactionResponse(transaction model.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:          transaction.ID,
		Kind:        transaction.Kind,
		Status:      transaction.Status,
		AssetCode:   transaction.AssetCode,
		Amount:      transaction.Amount,
		PlatformFee: transaction.PlatformFee,
		NetworkFee:  transaction.NetworkFee,
		NetAmount:   transaction.NetAmount(),
		TxHash:      transaction.TxHash,
		CreatedAt:   transaction.CreatedAt.Format(time.RFC3339),
	}

	if transaction.CompletedAt != nil {
		response.CompletedAt = transaction.CompletedAt.Format(time.RFC3339)
	}

	return response
}
