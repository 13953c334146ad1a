package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pipsmade/platform/internal/apperrors"
	"github.com/pipsmade/platform/internal/plan/handler/dto"
	"github.com/pipsmade/platform/internal/plan/model"
	transactionmodel "github.com/pipsmade/platform/internal/transaction/model"
	"github.com/pipsmade/platform/internal/utils"
)

// Investments are denominated in the platform's accounting currency, not in a
// wallet asset.
const accountingCurrency = "USD"

// PlanRepository mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_plan_repository.go -package=mock github.com/pipsmade/platform/internal/plan/service PlanRepository
type PlanRepository interface {
	SelectActivePlans(ctx context.Context) ([]model.InvestmentPlan, error)
	SelectPlanByID(ctx context.Context, id string) (*model.InvestmentPlan, error)
	SelectCustomPlanByID(ctx context.Context, id string) (*model.CustomPlan, error)
	UpsertPlan(ctx context.Context, plan model.InvestmentPlan) error
	InsertCustomPlan(ctx context.Context, plan model.CustomPlan) error
	InsertInvestment(ctx context.Context, investment model.Investment) error
	SelectInvestmentsByUser(ctx context.Context, userLogin string) ([]model.Investment, error)
	UpdateInvestmentValues(ctx context.Context, investment model.Investment) error
	SelectPortfolio(ctx context.Context, userLogin string) (*model.Portfolio, error)
	UpsertPortfolio(ctx context.Context, portfolio model.Portfolio) error
}

// LedgerWriter mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_ledger_writer.go -package=mock github.com/pipsmade/platform/internal/plan/service LedgerWriter
type LedgerWriter interface {
	Insert(ctx context.Context, transaction transactionmodel.Transaction) error
}

type PlanUseCase struct {
	repository PlanRepository
	ledger     LedgerWriter
	trManager  trm.Manager
	logger     *zap.Logger
}

func NewPlanService(repository PlanRepository, ledger LedgerWriter, trManager trm.Manager, logger *zap.Logger) *PlanUseCase {
	return &PlanUseCase{
		repository: repository,
		ledger:     ledger,
		trManager:  trManager,
		logger:     logger,
	}
}

func (p *PlanUseCase) GetActivePlans(ctx context.Context) ([]dto.PlanResponse, error) {
	plans, err := p.repository.SelectActivePlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	planResponses := make([]dto.PlanResponse, 0, len(plans))
	for _, v := range plans {
		planResponses = append(planResponses, dto.MapToPlanResponse(v))
	}

	return planResponses, nil
}

// Invest snapshots the plan terms into a new investment and records it in the
// ledger in the same database transaction. The ROI is fixed at this point, for
// standard plans as the midpoint of the quoted range.
func (p *PlanUseCase) Invest(ctx context.Context, userLogin string, request dto.InvestRequest) (*dto.InvestmentResponse, error) {
	var (
		planName     string
		roi          decimal.Decimal
		durationDays int
	)

	switch request.PlanKind {
	case model.PlanKindStandard:
		plan, err := p.repository.SelectPlanByID(ctx, request.PlanID)
		if err != nil {
			return nil, fmt.Errorf("%s %w", utils.Caller(), err)
		}
		if !plan.IsActive {
			return nil, apperrors.ErrPlanNotFound
		}
		if outOfRange(request.Amount, plan.MinInvestment, plan.MaxInvestment) {
			return nil, apperrors.ErrInvestmentOutOfRange
		}
		planName = plan.Name
		roi = plan.AverageROI()
		durationDays = plan.DurationDays
	case model.PlanKindCustom:
		plan, err := p.repository.SelectCustomPlanByID(ctx, request.PlanID)
		if err != nil {
			return nil, fmt.Errorf("%s %w", utils.Caller(), err)
		}
		if !plan.IsActive {
			return nil, apperrors.ErrPlanNotFound
		}
		if outOfRange(request.Amount, plan.MinInvestment, plan.MaxInvestment) {
			return nil, apperrors.ErrInvestmentOutOfRange
		}
		planName = plan.Name
		roi = plan.ROIPercentage
		durationDays = plan.DurationDays
	default:
		return nil, apperrors.ErrPlanNotFound
	}

	now := time.Now()
	investment := model.Investment{
		ID:             uuid.New().String(),
		UserLogin:      userLogin,
		PlanKind:       request.PlanKind,
		PlanID:         request.PlanID,
		PlanName:       planName,
		Amount:         request.Amount,
		ROIPercentage:  roi,
		StartDate:      now,
		EndDate:        now.AddDate(0, 0, durationDays),
		Status:         model.InvestmentStatusActive,
		ExpectedReturn: request.Amount.Mul(roi).Div(decimal.NewFromInt(100)),
	}

	transaction := transactionmodel.Transaction{
		ID:        uuid.New().String(),
		UserLogin: userLogin,
		Kind:      transactionmodel.KindInvestment,
		Status:    transactionmodel.StatusCompleted,
		AssetCode: accountingCurrency,
		Amount:    request.Amount,
		UserNotes: fmt.Sprintf("Investment in %s", planName),
	}

	err := p.trManager.Do(ctx, func(ctx context.Context) error {
		if errInsert := p.repository.InsertInvestment(ctx, investment); errInsert != nil {
			return errInsert
		}
		return p.ledger.Insert(ctx, transaction)
	})
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	response := dto.MapToInvestmentResponse(investment, now)
	return &response, nil
}

func (p *PlanUseCase) GetInvestmentsByUser(ctx context.Context, userLogin string) ([]dto.InvestmentResponse, error) {
	investments, err := p.repository.SelectInvestmentsByUser(ctx, userLogin)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	now := time.Now()
	investmentResponses := make([]dto.InvestmentResponse, 0, len(investments))
	for _, v := range investments {
		investmentResponses = append(investmentResponses, dto.MapToInvestmentResponse(v, now))
	}

	return investmentResponses, nil
}

func (p *PlanUseCase) GetPortfolio(ctx context.Context, userLogin string) (*dto.PortfolioResponse, error) {
	portfolio, err := p.repository.SelectPortfolio(ctx, userLogin)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	response := dto.MapToPortfolioResponse(*portfolio)
	return &response, nil
}

func (p *PlanUseCase) UpsertPlan(ctx context.Context, request dto.PlanUpsertRequest) error {
	plan := model.InvestmentPlan{
		ID:               request.ID,
		Name:             request.Name,
		PlanType:         request.PlanType,
		Description:      request.Description,
		MinInvestment:    request.MinInvestment,
		MaxInvestment:    request.MaxInvestment,
		MinROIPercentage: request.MinROIPercentage,
		MaxROIPercentage: request.MaxROIPercentage,
		DurationDays:     request.DurationDays,
		RiskLevel:        request.RiskLevel,
		IsActive:         request.IsActive,
	}
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}

	if err := p.repository.UpsertPlan(ctx, plan); err != nil {
		return fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return nil
}

func (p *PlanUseCase) CreateCustomPlan(ctx context.Context, operator string, request dto.CustomPlanCreateRequest) error {
	plan := model.CustomPlan{
		ID:            uuid.New().String(),
		Name:          request.Name,
		PlanType:      "custom",
		Description:   request.Description,
		MinInvestment: request.MinInvestment,
		MaxInvestment: request.MaxInvestment,
		ROIPercentage: request.ROIPercentage,
		DurationDays:  request.DurationDays,
		RiskLevel:     request.RiskLevel,
		SpecialTerms:  request.SpecialTerms,
		CreatedBy:     operator,
		IsActive:      true,
	}

	if err := p.repository.InsertCustomPlan(ctx, plan); err != nil {
		return fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return nil
}

func (p *PlanUseCase) UpdateInvestmentValues(ctx context.Context, investmentID string, request dto.InvestmentValuesRequest) error {
	investment := model.Investment{
		ID:                investmentID,
		Status:            request.Status,
		CurrentValue:      request.CurrentValue,
		TotalProfit:       request.TotalProfit,
		TotalWithdrawable: request.TotalWithdrawable,
	}

	if err := p.repository.UpdateInvestmentValues(ctx, investment); err != nil {
		return fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return nil
}

func (p *PlanUseCase) UpdatePortfolio(ctx context.Context, userLogin string, request dto.PortfolioUpdateRequest) error {
	portfolio := model.Portfolio{
		UserLogin:            userLogin,
		TotalInvested:        request.TotalInvested,
		TotalCurrentValue:    request.TotalCurrentValue,
		TotalProfit:          request.TotalProfit,
		TotalROIPercentage:   request.TotalROIPercentage,
		TotalWithdrawable:    request.TotalWithdrawable,
		ManualProfitTotal:    request.ManualProfitTotal,
		ActiveInvestments:    request.ActiveInvestments,
		CompletedInvestments: request.CompletedInvestments,
	}

	if err := p.repository.UpsertPortfolio(ctx, portfolio); err != nil {
		return fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return nil
}

func outOfRange(amount decimal.Decimal, min decimal.Decimal, max decimal.NullDecimal) bool {
	if amount.LessThan(min) {
		return true
	}
	if max.Valid && amount.GreaterThan(max.Decimal) {
		return true
	}
	return false
}
