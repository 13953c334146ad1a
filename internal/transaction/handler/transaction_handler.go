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
	"github.com/pipsmade/platform/internal/transaction/handler/dto"
)

// TransactionService mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_transaction_service.go -package=mock github.com/pipsmade/platform/internal/transaction/handler TransactionService
type TransactionService interface {
	SubmitWithdrawal(ctx context.Context, userLogin string, request dto.WithdrawalSubmitRequest, ipAddress string, userAgent string) (*dto.TransactionResponse, error)
	SubmitDeposit(ctx context.Context, userLogin string, request dto.DepositSubmitRequest) (*dto.TransactionResponse, error)
	GetByUser(ctx context.Context, userLogin string, kind string, status string) ([]dto.TransactionResponse, error)
}

type TransactionHandler struct {
	transactionService TransactionService
	logger             *zap.Logger
}

func NewTransactionHandler(e *echo.Echo, service TransactionService, logger *zap.Logger, jwtAuth *middleware.JWTAuth) *TransactionHandler {
	handler := &TransactionHandler{
		transactionService: service,
		logger:             logger,
	}

	protected := e.Group("/api/user", jwtAuth.JWTAuth())
	protected.POST("/withdrawals", handler.SubmitWithdrawal)
	protected.POST("/deposits", handler.SubmitDeposit)
	protected.GET("/transactions", handler.GetTransactions)

	return handler
}

// @Summary       Submit withdrawal request
// @Description   Create a pending withdrawal request for operator review. The balance is not debited until approval.
// @Tags          Transaction API
// @Accept        json
// @Produce       json
// @Param         withdrawal   body       dto.WithdrawalSubmitRequest   true   "Asset, amount and destination."
// @Success       201    {object}   dto.TransactionResponse
// @Failure       400
// @Failure       401
// @Failure       402
// @Failure       404
// @Failure       415
// @Failure       500
// @Security      JWT
// @Router        /api/user/withdrawals [post]
func (h *TransactionHandler) SubmitWithdrawal(c echo.Context) error {
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

	request := new(dto.WithdrawalSubmitRequest)
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

	response, err := h.transactionService.SubmitWithdrawal(c.Request().Context(), userLogin, *request,
		c.RealIP(), c.Request().UserAgent())

	if errors.Is(err, apperrors.ErrInsufficientBalance) {
		h.logger.Warn("Bad Request: insufficient balance", zap.Error(err))
		return c.NoContent(http.StatusPaymentRequired)
	}

	if errors.Is(err, apperrors.ErrAssetNotFound) {
		h.logger.Warn("Asset not found", zap.Error(err))
		return c.NoContent(http.StatusNotFound)
	}

	if err != nil {
		h.logger.Error("Internal server error", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, response)
}

// @Summary       Submit deposit request
// @Description   Record a claimed external payment for operator verification. The balance is not credited until approval.
// @Tags          Transaction API
// @Accept        json
// @Produce       json
// @Param         deposit   body       dto.DepositSubmitRequest   true   "Asset, amount and proof of payment."
// @Success       201    {object}   dto.TransactionResponse
// @Failure       400
// @Failure       401
// @Failure       404
// @Failure       415
// @Failure       422
// @Failure       500
// @Security      JWT
// @Router        /api/user/deposits [post]
func (h *TransactionHandler) SubmitDeposit(c echo.Context) error {
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

	request := new(dto.DepositSubmitRequest)
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

	response, err := h.transactionService.SubmitDeposit(c.Request().Context(), userLogin, *request)

	if errors.Is(err, apperrors.ErrBelowMinimumDeposit) {
		h.logger.Warn("Bad Request: below minimum deposit", zap.Error(err))
		return c.NoContent(http.StatusUnprocessableEntity)
	}

	if errors.Is(err, apperrors.ErrAssetNotFound) {
		h.logger.Warn("Asset not found", zap.Error(err))
		return c.NoContent(http.StatusNotFound)
	}

	if err != nil {
		h.logger.Error("Internal server error", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, response)
}

// @Summary       Get transaction history
// @Description   Get the user's transactions, optionally filtered by kind and status.
// @Tags          Transaction API
// @Produce       json
// @Param         kind     query      string   false   "Transaction kind filter."
// @Param         status   query      string   false   "Transaction status filter."
// @Success       200    {array}    dto.TransactionResponse
// @Success       204
// @Failure       401
// @Failure       500
// @Security      JWT
// @Router        /api/user/transactions [get]
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	userLogin, ok := c.Get("userLogin").(string)
	if !ok {
		h.logger.Error("Internal server error", zap.Error(apperrors.ErrUnableToGetUserLoginFromContext))
		return c.NoContent(http.StatusInternalServerError)
	}

	transactions, err := h.transactionService.GetByUser(c.Request().Context(), userLogin,
		c.QueryParam("kind"), c.QueryParam("status"))
	if errors.Is(err, apperrors.ErrNoTransactions) {
		return c.NoContent(http.StatusNoContent)
	}

	if err != nil {
		h.logger.Error("Internal server error: unable to get transactions", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, transactions)
}
