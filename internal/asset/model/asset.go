package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset is an admin-curated crypto asset the platform accepts: the platform
// deposit address for it and the fee/minimum policy applied to requests.
type Asset struct {
	ID                      string          `db:"id"`
	Code                    string          `db:"code"`
	Name                    string          `db:"name"`
	DepositAddress          string          `db:"deposit_address"`
	Network                 string          `db:"network"`
	IsActive                bool            `db:"is_active"`
	MinimumDeposit          decimal.Decimal `db:"minimum_deposit"`
	DepositFeePercentage    decimal.Decimal `db:"deposit_fee_percentage"`
	WithdrawalFeePercentage decimal.Decimal `db:"withdrawal_fee_percentage"`
	CreatedAt               time.Time       `db:"created_at"`
	UpdatedAt               time.Time       `db:"updated_at"`
}
