package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PlanKindStandard = "standard"
	PlanKindCustom   = "custom"
)

const (
	InvestmentStatusPending   = "pending"
	InvestmentStatusActive    = "active"
	InvestmentStatusCompleted = "completed"
	InvestmentStatusCancelled = "cancelled"
)

// InvestmentPlan is a standard plan offered to every user. ROI is quoted as a
// range, the midpoint is what projections are built from.
type InvestmentPlan struct {
	ID               string              `db:"id"`
	Name             string              `db:"name"`
	PlanType         string              `db:"plan_type"`
	Description      string              `db:"description"`
	MinInvestment    decimal.Decimal     `db:"min_investment"`
	MaxInvestment    decimal.NullDecimal `db:"max_investment"`
	MinROIPercentage decimal.Decimal     `db:"min_roi_percentage"`
	MaxROIPercentage decimal.Decimal     `db:"max_roi_percentage"`
	DurationDays     int                 `db:"duration_days"`
	RiskLevel        string              `db:"risk_level"`
	IsActive         bool                `db:"is_active"`
	CreatedAt        time.Time           `db:"created_at"`
	UpdatedAt        time.Time           `db:"updated_at"`
}

func (p *InvestmentPlan) AverageROI() decimal.Decimal {
	return p.MinROIPercentage.Add(p.MaxROIPercentage).Div(decimal.NewFromInt(2))
}

func (p *InvestmentPlan) PotentialReturn(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(p.AverageROI()).Div(decimal.NewFromInt(100))
}

// CustomPlan is created by an operator for a specific arrangement and carries a
// fixed ROI instead of a range.
type CustomPlan struct {
	ID            string              `db:"id"`
	Name          string              `db:"name"`
	PlanType      string              `db:"plan_type"`
	Description   string              `db:"description"`
	MinInvestment decimal.Decimal     `db:"min_investment"`
	MaxInvestment decimal.NullDecimal `db:"max_investment"`
	ROIPercentage decimal.Decimal     `db:"roi_percentage"`
	DurationDays  int                 `db:"duration_days"`
	RiskLevel     string              `db:"risk_level"`
	SpecialTerms  string              `db:"special_terms"`
	CreatedBy     string              `db:"created_by"`
	IsActive      bool                `db:"is_active"`
	CreatedAt     time.Time           `db:"created_at"`
}

// PlanRef identifies the plan an investment was made against: exactly one of
// the two plan tables, never both.
type PlanRef struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

func StandardPlanRef(id string) PlanRef {
	return PlanRef{Kind: PlanKindStandard, ID: id}
}

func CustomPlanRef(id string) PlanRef {
	return PlanRef{Kind: PlanKindCustom, ID: id}
}

// Investment snapshots the plan's terms at creation: the ROI and the plan name
// stay as they were even if the plan changes later. The value fields are set by
// operators, nothing recomputes them.
type Investment struct {
	ID                string          `db:"id"`
	UserLogin         string          `db:"user_login"`
	PlanKind          string          `db:"plan_kind"`
	PlanID            string          `db:"plan_id"`
	PlanName          string          `db:"plan_name"`
	Amount            decimal.Decimal `db:"amount"`
	ROIPercentage     decimal.Decimal `db:"roi_percentage"`
	StartDate         time.Time       `db:"start_date"`
	EndDate           time.Time       `db:"end_date"`
	Status            string          `db:"status"`
	ExpectedReturn    decimal.Decimal `db:"expected_return"`
	CurrentValue      decimal.Decimal `db:"current_value"`
	TotalProfit       decimal.Decimal `db:"total_profit"`
	TotalWithdrawable decimal.Decimal `db:"total_withdrawable"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
}

func (i *Investment) Plan() PlanRef {
	return PlanRef{Kind: i.PlanKind, ID: i.PlanID}
}

// ProgressPercentage is derived from the dates for display, capped to [0, 100].
func (i *Investment) ProgressPercentage(now time.Time) decimal.Decimal {
	total := i.EndDate.Sub(i.StartDate)
	if total <= 0 {
		return decimal.NewFromInt(100)
	}

	elapsed := now.Sub(i.StartDate)
	if elapsed <= 0 {
		return decimal.Zero
	}
	if elapsed >= total {
		return decimal.NewFromInt(100)
	}

	return decimal.NewFromFloat(elapsed.Hours() / total.Hours() * 100).Round(2)
}

func (i *Investment) DaysRemaining(now time.Time) int {
	if now.After(i.EndDate) {
		return 0
	}
	return int(i.EndDate.Sub(now).Hours() / 24)
}

// Portfolio aggregates a user's investment position. Every metric is
// operator-set, the platform never recomputes them from investments.
type Portfolio struct {
	UserLogin            string          `db:"user_login"`
	TotalInvested        decimal.Decimal `db:"total_invested"`
	TotalCurrentValue    decimal.Decimal `db:"total_current_value"`
	TotalProfit          decimal.Decimal `db:"total_profit"`
	TotalROIPercentage   decimal.Decimal `db:"total_roi_percentage"`
	TotalWithdrawable    decimal.Decimal `db:"total_withdrawable"`
	ManualProfitTotal    decimal.Decimal `db:"manual_profit_total"`
	ActiveInvestments    int             `db:"active_investments"`
	CompletedInvestments int             `db:"completed_investments"`
	LastUpdated          time.Time       `db:"last_updated"`
}
