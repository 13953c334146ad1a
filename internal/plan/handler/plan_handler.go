package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/pipsmade/platform/internal/apperrors"
	"github.com/pipsmade/platform/internal/middleware"
	"github.com/pipsmade/platform/internal/plan/handler/dto"
)

// PlanService mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_plan_service.go -package=mock github.com/pipsmade/platform/internal/plan/handler PlanService
type PlanService interface {
	GetActivePlans(ctx context.Context) ([]dto.PlanResponse, error)
	Invest(ctx context.Context, userLogin string, request dto.InvestRequest) (*dto.InvestmentResponse, error)
	GetInvestmentsByUser(ctx context.Context, userLogin string) ([]dto.InvestmentResponse, error)
	GetPortfolio(ctx context.Context, userLogin string) (*dto.PortfolioResponse, error)
	UpsertPlan(ctx context.Context, request dto.PlanUpsertRequest) error
	CreateCustomPlan(ctx context.Context, operator string, request dto.CustomPlanCreateRequest) error
	UpdateInvestmentValues(ctx context.Context, investmentID string, request dto.InvestmentValuesRequest) error
	UpdatePortfolio(ctx context.Context, userLogin string, request dto.PortfolioUpdateRequest) error
}

type PlanHandler struct {
	planService PlanService
	logger      *zap.Logger
}

func NewPlanHandler(e *echo.Echo, service PlanService, logger *zap.Logger,
	jwtAuth *middleware.JWTAuth, staffAuth *middleware.StaffAuth) *PlanHandler {
	handler := &PlanHandler{
		planService: service,
		logger:      logger,
	}

	e.GET("/api/plans", handler.GetPlans, jwtAuth.JWTAuth())

	protected := e.Group("/api/user", jwtAuth.JWTAuth())
	protected.POST("/investments", handler.Invest)
	protected.GET("/investments", handler.GetInvestments)
	protected.GET("/portfolio", handler.GetPortfolio)

	admin := e.Group("/api/admin", jwtAuth.JWTAuth(), staffAuth.StaffAuth())
	admin.POST("/plans", handler.UpsertPlan)
	admin.POST("/custom-plans", handler.CreateCustomPlan)
	admin.PUT("/investments/:id/values", handler.UpdateInvestmentValues)
	admin.PUT("/portfolios/:login", handler.UpdatePortfolio)

	return handler
}

// @Summary       List active plans
// @Description   Get the standard investment plans currently open for investment.
// @Tags          Plan API
// @Produce       json
// @Success       200    {array}    dto.PlanResponse
// @Failure       401
// @Failure       500
// @Security      JWT
// @Router        /api/plans [get]
func (h *PlanHandler) GetPlans(c echo.Context) error {
	plans, err := h.planService.GetActivePlans(c.Request().Context())
	if err != nil {
		h.logger.Error("Internal server error: unable to get plans", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, plans)
}

// @Summary       Create investment
// @Description   Invest into a standard or custom plan. The plan's terms are snapshotted at creation.
// @Tags          Plan API
// @Accept        json
// @Produce       json
// @Param         investment   body       dto.InvestRequest   true   "Plan reference and amount."
// @Success       201    {object}   dto.InvestmentResponse
// @Failure       400
// @Failure       401
// @Failure       404
// @Failure       415
// @Failure       422
// @Failure       500
// @Security      JWT
// @Router        /api/user/investments [post]
func (h *PlanHandler) Invest(c echo.Context) error {
	userLogin, ok := c.Get("userLogin").(string)
	if !ok {
		h.logger.Error("Internal server error", zap.Error(apperrors.ErrUnableToGetUserLoginFromContext))
		return c.NoContent(http.StatusInternalServerError)
	}

	header := c.Request().Header.Get("Content-Type")
	if header != "application/json" {
		msg := "Content-Type header is not application/json"
		h.logger.Error("StatusUnsupportedMediaType: " + msg)
		return c.String(http.StatusUnsupportedMediaType, msg)
	}

	request := new(dto.InvestRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	requestValidator := validator.New()
	errRegisterValidator := requestValidator.RegisterValidation("positive_amount", dto.PositiveAmount)
	if errRegisterValidator != nil {
		h.logger.Warn("Unable to register validator", zap.Error(errRegisterValidator))
	}

	if validateErr := requestValidator.Struct(request); validateErr != nil {
		h.logger.Warn("Bad Request: invalid request", zap.Error(validateErr))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	response, err := h.planService.Invest(c.Request().Context(), userLogin, *request)

	if errors.Is(err, apperrors.ErrPlanNotFound) {
		h.logger.Warn("Plan not found", zap.Error(err))
		return c.NoContent(http.StatusNotFound)
	}

	if errors.Is(err, apperrors.ErrInvestmentOutOfRange) {
		h.logger.Warn("Bad Request: amount outside plan limits", zap.Error(err))
		return c.NoContent(http.StatusUnprocessableEntity)
	}

	if err != nil {
		h.logger.Error("Internal server error", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, response)
}

// @Summary       Get user investments
// @Description   Get the user's investments with display progress derived from the dates.
// @Tags          Plan API
// @Produce       json
// @Success       200    {array}    dto.InvestmentResponse
// @Failure       401
// @Failure       500
// @Security      JWT
// @Router        /api/user/investments [get]
func (h *PlanHandler) GetInvestments(c echo.Context) error {
	userLogin, ok := c.Get("userLogin").(string)
	if !ok {
		h.logger.Error("Internal server error", zap.Error(apperrors.ErrUnableToGetUserLoginFromContext))
		return c.NoContent(http.StatusInternalServerError)
	}

	investments, err := h.planService.GetInvestmentsByUser(c.Request().Context(), userLogin)
	if err != nil {
		h.logger.Error("Internal server error: unable to get investments", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, investments)
}

// @Summary       Get portfolio
// @Description   Get the user's portfolio summary, created empty on first read.
// @Tags          Plan API
// @Produce       json
// @Success       200    {object}   dto.PortfolioResponse
// @Failure       401
// @Failure       500
// @Security      JWT
// @Router        /api/user/portfolio [get]
func (h *PlanHandler) GetPortfolio(c echo.Context) error {
	userLogin, ok := c.Get("userLogin").(string)
	if !ok {
		h.logger.Error("Internal server error", zap.Error(apperrors.ErrUnableToGetUserLoginFromContext))
		return c.NoContent(http.StatusInternalServerError)
	}

	portfolio, err := h.planService.GetPortfolio(c.Request().Context(), userLogin)
	if err != nil {
		h.logger.Error("Internal server error: unable to get portfolio", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, portfolio)
}

// @Summary       Upsert investment plan
// @Description   Create or update a standard plan.
// @Tags          Plan API
// @Accept        json
// @Success       200
// @Failure       400
// @Failure       401
// @Failure       403
// @Failure       415
// @Failure       500
// @Security      JWT
// @Router        /api/admin/plans [post]
func (h *PlanHandler) UpsertPlan(c echo.Context) error {
	header := c.Request().Header.Get("Content-Type")
	if header != "application/json" {
		msg := "Content-Type header is not application/json"
		h.logger.Error("StatusUnsupportedMediaType: " + msg)
		return c.String(http.StatusUnsupportedMediaType, msg)
	}

	request := new(dto.PlanUpsertRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	requestValidator := validator.New()
	errRegisterValidator := requestValidator.RegisterValidation("positive_amount", dto.PositiveAmount)
	if errRegisterValidator != nil {
		h.logger.Warn("Unable to register validator", zap.Error(errRegisterValidator))
	}

	if validateErr := requestValidator.Struct(request); validateErr != nil {
		h.logger.Warn("Bad Request: invalid request", zap.Error(validateErr))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	if err := h.planService.UpsertPlan(c.Request().Context(), *request); err != nil {
		h.logger.Error("Internal server error", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}

// @Summary       Create custom plan
// @Description   Create an operator-made plan with a fixed ROI.
// @Tags          Plan API
// @Accept        json
// @Success       201
// @Failure       400
// @Failure       401
// @Failure       403
// @Failure       415
// @Failure       500
// @Security      JWT
// @Router        /api/admin/custom-plans [post]
func (h *PlanHandler) CreateCustomPlan(c echo.Context) error {
	operator, ok := c.Get("userLogin").(string)
	if !ok {
		h.logger.Error("Internal server error", zap.Error(apperrors.ErrUnableToGetUserLoginFromContext))
		return c.NoContent(http.StatusInternalServerError)
	}

	header := c.Request().Header.Get("Content-Type")
	if header != "application/json" {
		msg := "Content-Type header is not application/json"
		h.logger.Error("StatusUnsupportedMediaType: " + msg)
		return c.String(http.StatusUnsupportedMediaType, msg)
	}

	request := new(dto.CustomPlanCreateRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	requestValidator := validator.New()
	errRegisterValidator := requestValidator.RegisterValidation("positive_amount", dto.PositiveAmount)
	if errRegisterValidator != nil {
		h.logger.Warn("Unable to register validator", zap.Error(errRegisterValidator))
	}

	if validateErr := requestValidator.Struct(request); validateErr != nil {
		h.logger.Warn("Bad Request: invalid request", zap.Error(validateErr))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	if err := h.planService.CreateCustomPlan(c.Request().Context(), operator, *request); err != nil {
		h.logger.Error("Internal server error", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusCreated)
}

// @Summary       Update investment values
// @Description   Set the operator-maintained value fields and status of an investment.
// @Tags          Plan API
// @Accept        json
// @Param         id   path   string   true   "Investment id."
// @Success       200
// @Failure       400
// @Failure       401
// @Failure       403
// @Failure       404
// @Failure       415
// @Failure       500
// @Security      JWT
// @Router        /api/admin/investments/{id}/values [put]
func (h *PlanHandler) UpdateInvestmentValues(c echo.Context) error {
	header := c.Request().Header.Get("Content-Type")
	if header != "application/json" {
		msg := "Content-Type header is not application/json"
		h.logger.Error("StatusUnsupportedMediaType: " + msg)
		return c.String(http.StatusUnsupportedMediaType, msg)
	}

	request := new(dto.InvestmentValuesRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	requestValidator := validator.New()
	if validateErr := requestValidator.Struct(request); validateErr != nil {
		h.logger.Warn("Bad Request: invalid request", zap.Error(validateErr))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	err := h.planService.UpdateInvestmentValues(c.Request().Context(), c.Param("id"), *request)

	if errors.Is(err, apperrors.ErrInvestmentNotFound) {
		h.logger.Warn("Investment not found", zap.Error(err))
		return c.NoContent(http.StatusNotFound)
	}

	if err != nil {
		h.logger.Error("Internal server error", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}

// @Summary       Update portfolio
// @Description   Set a user's portfolio metrics, creating the portfolio if it does not exist.
// @Tags          Plan API
// @Accept        json
// @Param         login   path   string   true   "User login."
// @Success       200
// @Failure       400
// @Failure       401
// @Failure       403
// @Failure       415
// @Failure       500
// @Security      JWT
// @Router        /api/admin/portfolios/{login} [put]
func (h *PlanHandler) UpdatePortfolio(c echo.Context) error {
	header := c.Request().Header.Get("Content-Type")
	if header != "application/json" {
		msg := "Content-Type header is not application/json"
		h.logger.Error("StatusUnsupportedMediaType: " + msg)
		return c.String(http.StatusUnsupportedMediaType, msg)
	}

	request := new(dto.PortfolioUpdateRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	if err := h.planService.UpdatePortfolio(c.Request().Context(), c.Param("login"), *request); err != nil {
		h.logger.Error("Internal server error", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}
