package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	KindDeposit    = "deposit"
	KindWithdrawal = "withdrawal"
	KindInvestment = "investment"
	KindProfit     = "profit"
	KindFee        = "fee"
	KindBonus      = "bonus"
	KindRefund     = "refund"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusRejected  = "rejected"
	StatusFailed    = "failed"
)

// Transaction is the ledger-of-record for any balance-affecting event. It is
// created pending and transitions exactly once to a terminal status.
type Transaction struct {
	ID              string          `db:"id"`
	UserLogin       string          `db:"user_login"`
	Kind            string          `db:"kind"`
	Status          string          `db:"status"`
	AssetCode       string          `db:"asset_code"`
	Amount          decimal.Decimal `db:"amount"`
	PlatformFee     decimal.Decimal `db:"platform_fee"`
	NetworkFee      decimal.Decimal `db:"network_fee"`
	TxHash          string          `db:"tx_hash"`
	FromAddress     string          `db:"from_address"`
	ToAddress       string          `db:"to_address"`
	UserNotes       string          `db:"user_notes"`
	AdminNotes      string          `db:"admin_notes"`
	RejectionReason string          `db:"rejection_reason"`
	ApprovedBy      string          `db:"approved_by"`
	ApprovedAt      *time.Time      `db:"approved_at"`
	CreatedAt       time.Time       `db:"created_at"`
	CompletedAt     *time.Time      `db:"completed_at"`
}

// WithdrawalRequest carries the user's intent plus submission metadata kept for
// audit. Always 1:1 with a withdrawal Transaction.
type WithdrawalRequest struct {
	ID                 string          `db:"id"`
	TransactionID      string          `db:"transaction_id"`
	UserLogin          string          `db:"user_login"`
	AssetCode          string          `db:"asset_code"`
	Amount             decimal.Decimal `db:"amount"`
	DestinationAddress string          `db:"destination_address"`
	Network            string          `db:"network"`
	PlatformFee        decimal.Decimal `db:"platform_fee"`
	IPAddress          string          `db:"ip_address"`
	UserAgent          string          `db:"user_agent"`
	ProcessedBy        string          `db:"processed_by"`
	ProcessedAt        *time.Time      `db:"processed_at"`
	ProcessingNotes    string          `db:"processing_notes"`
	SentTxHash         string          `db:"sent_tx_hash"`
	SentAt             *time.Time      `db:"sent_at"`
	CreatedAt          time.Time       `db:"created_at"`
}

// DepositRequest carries the user's claimed proof of payment. Always 1:1 with
// a deposit Transaction.
type DepositRequest struct {
	ID                string          `db:"id"`
	TransactionID     string          `db:"transaction_id"`
	UserLogin         string          `db:"user_login"`
	AssetCode         string          `db:"asset_code"`
	Amount            decimal.Decimal `db:"amount"`
	TxHash            string          `db:"tx_hash"`
	SenderAddress     string          `db:"sender_address"`
	ProofURL          string          `db:"proof_url"`
	VerifiedBy        string          `db:"verified_by"`
	VerifiedAt        *time.Time      `db:"verified_at"`
	VerificationNotes string          `db:"verification_notes"`
	CreatedAt         time.Time       `db:"created_at"`
}

func (t *Transaction) NetAmount() decimal.Decimal {
	return t.Amount.Sub(t.NetworkFee).Sub(t.PlatformFee)
}

func (t *Transaction) IsFinal() bool {
	return t.Status != StatusPending
}
