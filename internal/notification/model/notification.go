package model

import "time"

const (
	KindDepositConfirmed   = "deposit_confirmed"
	KindDepositRejected    = "deposit_rejected"
	KindWithdrawalApproved = "withdrawal_approved"
	KindWithdrawalRejected = "withdrawal_rejected"
	KindTransactionFailed  = "transaction_failed"
)

type Notification struct {
	ID            string    `db:"id"`
	UserLogin     string    `db:"user_login"`
	TransactionID string    `db:"transaction_id"`
	Title         string    `db:"title"`
	Message       string    `db:"message"`
	Kind          string    `db:"kind"`
	IsRead        bool      `db:"is_read"`
	CreatedAt     time.Time `db:"created_at"`
}
