package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/pipsmade/platform/internal/plan/model"
)

type InvestRequest struct {
	PlanKind string          `json:"plan_kind" validate:"required,oneof=standard custom"`
	PlanID   string          `json:"plan_id" validate:"required,uuid"`
	Amount   decimal.Decimal `json:"amount" validate:"required,positive_amount"`
}

type PlanUpsertRequest struct {
	ID               string              `json:"id" validate:"omitempty,uuid"`
	Name             string              `json:"name" validate:"required"`
	PlanType         string              `json:"plan_type" validate:"required,oneof=crypto stocks forex bonds"`
	Description      string              `json:"description"`
	MinInvestment    decimal.Decimal     `json:"min_investment" validate:"required,positive_amount"`
	MaxInvestment    decimal.NullDecimal `json:"max_investment"`
	MinROIPercentage decimal.Decimal     `json:"min_roi_percentage" validate:"required"`
	MaxROIPercentage decimal.Decimal     `json:"max_roi_percentage" validate:"required"`
	DurationDays     int                 `json:"duration_days" validate:"required,min=1"`
	RiskLevel        string              `json:"risk_level" validate:"required,oneof=low medium high"`
	IsActive         bool                `json:"is_active"`
}

type CustomPlanCreateRequest struct {
	Name          string              `json:"name" validate:"required"`
	Description   string              `json:"description"`
	MinInvestment decimal.Decimal     `json:"min_investment" validate:"required,positive_amount"`
	MaxInvestment decimal.NullDecimal `json:"max_investment"`
	ROIPercentage decimal.Decimal     `json:"roi_percentage" validate:"required"`
	DurationDays  int                 `json:"duration_days" validate:"required,min=1"`
	RiskLevel     string              `json:"risk_level" validate:"required,oneof=low medium high"`
	SpecialTerms  string              `json:"special_terms"`
}

type InvestmentValuesRequest struct {
	Status            string          `json:"status" validate:"required,oneof=pending active completed cancelled"`
	CurrentValue      decimal.Decimal `json:"current_value"`
	TotalProfit       decimal.Decimal `json:"total_profit"`
	TotalWithdrawable decimal.Decimal `json:"total_withdrawable"`
}

type PortfolioUpdateRequest struct {
	TotalInvested        decimal.Decimal `json:"total_invested"`
	TotalCurrentValue    decimal.Decimal `json:"total_current_value"`
	TotalProfit          decimal.Decimal `json:"total_profit"`
	TotalROIPercentage   decimal.Decimal `json:"total_roi_percentage"`
	TotalWithdrawable    decimal.Decimal `json:"total_withdrawable"`
	ManualProfitTotal    decimal.Decimal `json:"manual_profit_total"`
	ActiveInvestments    int             `json:"active_investments"`
	CompletedInvestments int             `json:"completed_investments"`
}

func PositiveAmount(fl validator.FieldLevel) bool {
	amount, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return amount.IsPositive()
}

type PlanResponse struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	PlanType         string           `json:"plan_type"`
	Description      string           `json:"description"`
	MinInvestment    decimal.Decimal  `json:"min_investment"`
	MaxInvestment    *decimal.Decimal `json:"max_investment,omitempty"`
	MinROIPercentage decimal.Decimal  `json:"min_roi_percentage"`
	MaxROIPercentage decimal.Decimal  `json:"max_roi_percentage"`
	AverageROI       decimal.Decimal  `json:"average_roi"`
	DurationDays     int              `json:"duration_days"`
	RiskLevel        string           `json:"risk_level"`
}

type InvestmentResponse struct {
	ID                 string          `json:"id"`
	Plan               model.PlanRef   `json:"plan"`
	PlanName           string          `json:"plan_name"`
	Amount             decimal.Decimal `json:"amount"`
	ROIPercentage      decimal.Decimal `json:"roi_percentage"`
	StartDate          string          `json:"start_date"`
	EndDate            string          `json:"end_date"`
	Status             string          `json:"status"`
	ExpectedReturn     decimal.Decimal `json:"expected_return"`
	CurrentValue       decimal.Decimal `json:"current_value"`
	TotalProfit        decimal.Decimal `json:"total_profit"`
	TotalWithdrawable  decimal.Decimal `json:"total_withdrawable"`
	ProgressPercentage decimal.Decimal `json:"progress_percentage"`
	DaysRemaining      int             `json:"days_remaining"`
}

type PortfolioResponse struct {
	TotalInvested        decimal.Decimal `json:"total_invested"`
	TotalCurrentValue    decimal.Decimal `json:"total_current_value"`
	TotalProfit          decimal.Decimal `json:"total_profit"`
	TotalROIPercentage   decimal.Decimal `json:"total_roi_percentage"`
	TotalWithdrawable    decimal.Decimal `json:"total_withdrawable"`
	ManualProfitTotal    decimal.Decimal `json:"manual_profit_total"`
	ActiveInvestments    int             `json:"active_investments"`
	CompletedInvestments int             `json:"completed_investments"`
	LastUpdated          string          `json:"last_updated"`
}

func MapToPlanResponse(plan model.InvestmentPlan) PlanResponse {
	response := PlanResponse{
		ID:               plan.ID,
		Name:             plan.Name,
		PlanType:         plan.PlanType,
		Description:      plan.Description,
		MinInvestment:    plan.MinInvestment,
		MinROIPercentage: plan.MinROIPercentage,
		MaxROIPercentage: plan.MaxROIPercentage,
		AverageROI:       plan.AverageROI(),
		DurationDays:     plan.DurationDays,
		RiskLevel:        plan.RiskLevel,
	}

	if plan.MaxInvestment.Valid {
		response.MaxInvestment = &plan.MaxInvestment.Decimal
	}

	return response
}

func MapToInvestmentResponse(investment model.Investment, now time.Time) InvestmentResponse {
	return InvestmentResponse{
		ID:                 investment.ID,
		Plan:               investment.Plan(),
		PlanName:           investment.PlanName,
		Amount:             investment.Amount,
		ROIPercentage:      investment.ROIPercentage,
		StartDate:          investment.StartDate.Format(time.RFC3339),
		EndDate:            investment.EndDate.Format(time.RFC3339),
		Status:             investment.Status,
		ExpectedReturn:     investment.ExpectedReturn,
		CurrentValue:       investment.CurrentValue,
		TotalProfit:        investment.TotalProfit,
		TotalWithdrawable:  investment.TotalWithdrawable,
		ProgressPercentage: investment.ProgressPercentage(now),
		DaysRemaining:      investment.DaysRemaining(now),
	}
}

func MapToPortfolioResponse(portfolio model.Portfolio) PortfolioResponse {
	return PortfolioResponse{
		TotalInvested:        portfolio.TotalInvested,
		TotalCurrentValue:    portfolio.TotalCurrentValue,
		TotalProfit:          portfolio.TotalProfit,
		TotalROIPercentage:   portfolio.TotalROIPercentage,
		TotalWithdrawable:    portfolio.TotalWithdrawable,
		ManualProfitTotal:    portfolio.ManualProfitTotal,
		ActiveInvestments:    portfolio.ActiveInvestments,
		CompletedInvestments: portfolio.CompletedInvestments,
		LastUpdated:          portfolio.LastUpdated.Format(time.RFC3339),
	}
}
