package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pipsmade/platform/internal/transaction/model"
)

const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

type DecisionRequest struct {
	Decision        string `json:"decision" validate:"required,oneof=approve reject"`
	Notes           string `json:"notes"`
	SentTxHash      string `json:"sent_tx_hash"`
	RejectionReason string `json:"rejection_reason"`
}

type PendingWithdrawalResponse struct {
	ID                 string          `json:"id"`
	TransactionID      string          `json:"transaction_id"`
	UserLogin          string          `json:"user_login"`
	AssetCode          string          `json:"asset_code"`
	Amount             decimal.Decimal `json:"amount"`
	DestinationAddress string          `json:"destination_address"`
	Network            string          `json:"network"`
	PlatformFee        decimal.Decimal `json:"platform_fee"`
	IPAddress          string          `json:"ip_address"`
	CreatedAt          time.Time       `json:"created_at"`
}

type PendingDepositResponse struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transaction_id"`
	UserLogin     string          `json:"user_login"`
	AssetCode     string          `json:"asset_code"`
	Amount        decimal.Decimal `json:"amount"`
	TxHash        string          `json:"tx_hash"`
	SenderAddress string          `json:"sender_address"`
	ProofURL      string          `json:"proof_url"`
	CreatedAt     time.Time       `json:"created_at"`
}

type PendingRequestsResponse struct {
	Withdrawals []PendingWithdrawalResponse `json:"withdrawals"`
	Deposits    []PendingDepositResponse    `json:"deposits"`
}

func MapToPendingWithdrawalResponse(request model.WithdrawalRequest) PendingWithdrawalResponse {
	return PendingWithdrawalResponse{
		ID:                 request.ID,
		TransactionID:      request.TransactionID,
		UserLogin:          request.UserLogin,
		AssetCode:          request.AssetCode,
		Amount:             request.Amount,
		DestinationAddress: request.DestinationAddress,
		Network:            request.Network,
		PlatformFee:        request.PlatformFee,
		IPAddress:          request.IPAddress,
		CreatedAt:          request.CreatedAt,
	}
}

func MapToPendingDepositResponse(request model.DepositRequest) PendingDepositResponse {
	return PendingDepositResponse{
		ID:            request.ID,
		TransactionID: request.TransactionID,
		UserLogin:     request.UserLogin,
		AssetCode:     request.AssetCode,
		Amount:        request.Amount,
		TxHash:        request.TxHash,
		SenderAddress: request.SenderAddress,
		ProofURL:      request.ProofURL,
		CreatedAt:     request.CreatedAt,
	}
}
