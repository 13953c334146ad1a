package repository

import (
	"context"
	_ "embed"
	"errors"

	trmpgx "github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/pipsmade/platform/internal/apperrors"
	db "github.com/pipsmade/platform/internal/database"
	"github.com/pipsmade/platform/internal/plan/model"
	"github.com/pipsmade/platform/internal/utils"
)

//go:embed queries/select_active_plans.sql
var selectActivePlans string

//go:embed queries/select_plan_by_id.sql
var selectPlanByID string

//go:embed queries/select_custom_plan_by_id.sql
var selectCustomPlanByID string

//go:embed queries/upsert_plan.sql
var upsertPlan string

//go:embed queries/insert_custom_plan.sql
var insertCustomPlan string

//go:embed queries/insert_investment.sql
var insertInvestment string

//go:embed queries/select_investments_by_user.sql
var selectInvestmentsByUser string

//go:embed queries/update_investment_values.sql
var updateInvestmentValues string

//go:embed queries/init_portfolio.sql
var initPortfolio string

//go:embed queries/select_portfolio.sql
var selectPortfolio string

//go:embed queries/upsert_portfolio.sql
var upsertPortfolio string

type PostgresPlanRepository struct {
	postgresPool *db.PostgresPool
	logger       *zap.Logger
	getter       *trmpgx.CtxGetter
}

func NewPostgresPlanRepository(postgresPool *db.PostgresPool, logger *zap.Logger) *PostgresPlanRepository {
	return &PostgresPlanRepository{
		postgresPool: postgresPool,
		logger:       logger,
		getter:       trmpgx.DefaultCtxGetter,
	}
}

func (r *PostgresPlanRepository) SelectActivePlans(ctx context.Context) ([]model.InvestmentPlan, error) {
	queryRows, err := r.postgresPool.DB.Query(ctx, selectActivePlans)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}
	defer queryRows.Close()

	plans, err := pgx.CollectRows(queryRows, pgx.RowToStructByPos[model.InvestmentPlan])
	if err != nil {
		return nil, apperrors.NewValueError("unable to collect rows", utils.Caller(), err)
	}

	return plans, nil
}

func (r *PostgresPlanRepository) SelectPlanByID(ctx context.Context, id string) (*model.InvestmentPlan, error) {
	var p model.InvestmentPlan
	err := r.postgresPool.DB.QueryRow(ctx, selectPlanByID, id).
		Scan(&p.ID, &p.Name, &p.PlanType, &p.Description, &p.MinInvestment, &p.MaxInvestment,
			&p.MinROIPercentage, &p.MaxROIPercentage, &p.DurationDays, &p.RiskLevel, &p.IsActive,
			&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = apperrors.ErrPlanNotFound
		} else {
			err = apperrors.NewValueError("query failed", utils.Caller(), err)
		}
		return nil, err
	}

	return &p, nil
}

func (r *PostgresPlanRepository) SelectCustomPlanByID(ctx context.Context, id string) (*model.CustomPlan, error) {
	var p model.CustomPlan
	err := r.postgresPool.DB.QueryRow(ctx, selectCustomPlanByID, id).
		Scan(&p.ID, &p.Name, &p.PlanType, &p.Description, &p.MinInvestment, &p.MaxInvestment,
			&p.ROIPercentage, &p.DurationDays, &p.RiskLevel, &p.SpecialTerms, &p.CreatedBy,
			&p.IsActive, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = apperrors.ErrPlanNotFound
		} else {
			err = apperrors.NewValueError("query failed", utils.Caller(), err)
		}
		return nil, err
	}

	return &p, nil
}

func (r *PostgresPlanRepository) UpsertPlan(ctx context.Context, plan model.InvestmentPlan) error {
	_, err := r.postgresPool.DB.Exec(ctx, upsertPlan,
		plan.ID, plan.Name, plan.PlanType, plan.Description, plan.MinInvestment, plan.MaxInvestment,
		plan.MinROIPercentage, plan.MaxROIPercentage, plan.DurationDays, plan.RiskLevel, plan.IsActive)
	if err != nil {
		return apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return nil
}

func (r *PostgresPlanRepository) InsertCustomPlan(ctx context.Context, plan model.CustomPlan) error {
	_, err := r.postgresPool.DB.Exec(ctx, insertCustomPlan,
		plan.ID, plan.Name, plan.PlanType, plan.Description, plan.MinInvestment, plan.MaxInvestment,
		plan.ROIPercentage, plan.DurationDays, plan.RiskLevel, plan.SpecialTerms, plan.CreatedBy, plan.IsActive)
	if err != nil {
		return apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return nil
}

func (r *PostgresPlanRepository) InsertInvestment(ctx context.Context, investment model.Investment) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	_, err := conn.Exec(ctx, insertInvestment,
		investment.ID, investment.UserLogin, investment.PlanKind, investment.PlanID, investment.PlanName,
		investment.Amount, investment.ROIPercentage, investment.StartDate, investment.EndDate,
		investment.Status, investment.ExpectedReturn)
	if err != nil {
		return apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return nil
}

func (r *PostgresPlanRepository) SelectInvestmentsByUser(ctx context.Context, userLogin string) ([]model.Investment, error) {
	queryRows, err := r.postgresPool.DB.Query(ctx, selectInvestmentsByUser, userLogin)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}
	defer queryRows.Close()

	investments, err := pgx.CollectRows(queryRows, pgx.RowToStructByPos[model.Investment])
	if err != nil {
		return nil, apperrors.NewValueError("unable to collect rows", utils.Caller(), err)
	}

	return investments, nil
}

func (r *PostgresPlanRepository) UpdateInvestmentValues(ctx context.Context, investment model.Investment) error {
	tag, err := r.postgresPool.DB.Exec(ctx, updateInvestmentValues,
		investment.ID, investment.Status, investment.CurrentValue,
		investment.TotalProfit, investment.TotalWithdrawable)
	if err != nil {
		return apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrInvestmentNotFound
	}

	return nil
}

// SelectPortfolio creates the empty portfolio row on first read, the lazy
// counterpart of operator updates.
func (r *PostgresPlanRepository) SelectPortfolio(ctx context.Context, userLogin string) (*model.Portfolio, error) {
	_, err := r.postgresPool.DB.Exec(ctx, initPortfolio, userLogin)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	var p model.Portfolio
	err = r.postgresPool.DB.QueryRow(ctx, selectPortfolio, userLogin).
		Scan(&p.UserLogin, &p.TotalInvested, &p.TotalCurrentValue, &p.TotalProfit, &p.TotalROIPercentage,
			&p.TotalWithdrawable, &p.ManualProfitTotal, &p.ActiveInvestments, &p.CompletedInvestments,
			&p.LastUpdated)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return &p, nil
}

func (r *PostgresPlanRepository) UpsertPortfolio(ctx context.Context, portfolio model.Portfolio) error {
	_, err := r.postgresPool.DB.Exec(ctx, upsertPortfolio,
		portfolio.UserLogin, portfolio.TotalInvested, portfolio.TotalCurrentValue, portfolio.TotalProfit,
		portfolio.TotalROIPercentage, portfolio.TotalWithdrawable, portfolio.ManualProfitTotal,
		portfolio.ActiveInvestments, portfolio.CompletedInvestments)
	if err != nil {
		return apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return nil
}
