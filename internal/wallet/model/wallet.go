package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is the ledger entry for one (user, asset) pair. The balance is only
// mutated by the deposit/withdrawal approval workflow.
type Wallet struct {
	ID        string          `db:"id"`
	UserLogin string          `db:"user_login"`
	AssetCode string          `db:"asset_code"`
	Balance   decimal.Decimal `db:"balance"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}
