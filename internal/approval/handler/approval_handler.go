package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/pipsmade/platform/internal/apperrors"
	"github.com/pipsmade/platform/internal/approval/handler/dto"
	"github.com/pipsmade/platform/internal/middleware"
)

// ApprovalService mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_approval_service.go -package=mock github.com/pipsmade/platform/internal/approval/handler ApprovalService
type ApprovalService interface {
	GetPendingRequests(ctx context.Context) (*dto.PendingRequestsResponse, error)
	DecideWithdrawal(ctx context.Context, requestID string, operator string, decision dto.DecisionRequest) error
	DecideDeposit(ctx context.Context, requestID string, operator string, decision dto.DecisionRequest) error
}

type ApprovalHandler struct {
	approvalService ApprovalService
	logger          *zap.Logger
}

func NewApprovalHandler(e *echo.Echo, service ApprovalService, logger *zap.Logger,
	jwtAuth *middleware.JWTAuth, staffAuth *middleware.StaffAuth) *ApprovalHandler {
	handler := &ApprovalHandler{
		approvalService: service,
		logger:          logger,
	}

	admin := e.Group("/api/admin", jwtAuth.JWTAuth(), staffAuth.StaffAuth())
	admin.GET("/requests/pending", handler.GetPendingRequests)
	admin.POST("/withdrawals/:id/decision", handler.DecideWithdrawal)
	admin.POST("/deposits/:id/decision", handler.DecideDeposit)

	return handler
}

// @Summary       List pending requests
// @Description   Get all withdrawal and deposit requests awaiting an operator decision.
// @Tags          Approval API
// @Produce       json
// @Success       200    {object}   dto.PendingRequestsResponse
// @Failure       401
// @Failure       403
// @Failure       500
// @Security      JWT
// @Router        /api/admin/requests/pending [get]
func (h *ApprovalHandler) GetPendingRequests(c echo.Context) error {
	response, err := h.approvalService.GetPendingRequests(c.Request().Context())
	if err != nil {
		h.logger.Error("Internal server error: unable to get pending requests", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, response)
}

// @Summary       Decide withdrawal request
// @Description   Approve or reject a pending withdrawal. Approval debits the user's wallet atomically with completing the transaction.
// @Tags          Approval API
// @Accept        json
// @Produce       json
// @Param         id         path       string                true   "Withdrawal request id."
// @Param         decision   body       dto.DecisionRequest   true   "Decision with optional notes."
// @Success       200
// @Failure       400
// @Failure       401
// @Failure       402
// @Failure       403
// @Failure       404
// @Failure       409
// @Failure       415
// @Failure       500
// @Security      JWT
// @Router        /api/admin/withdrawals/{id}/decision [post]
func (h *ApprovalHandler) DecideWithdrawal(c echo.Context) error {
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

	decision := new(dto.DecisionRequest)
	if bindErr := c.Bind(decision); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	requestValidator := validator.New()
	if validateErr := requestValidator.Struct(decision); validateErr != nil {
		h.logger.Warn("Bad Request: invalid decision", zap.Error(validateErr))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	err := h.approvalService.DecideWithdrawal(c.Request().Context(), c.Param("id"), operator, *decision)

	if errors.Is(err, apperrors.ErrRequestNotFound) {
		h.logger.Warn("Withdrawal request not found", zap.Error(err))
		return c.NoContent(http.StatusNotFound)
	}

	if errors.Is(err, apperrors.ErrAlreadyFinalized) {
		h.logger.Info("Conflict: request already finalized", zap.Error(err))
		return c.NoContent(http.StatusConflict)
	}

	if errors.Is(err, apperrors.ErrInsufficientBalance) {
		h.logger.Warn("Insufficient balance at approval time", zap.Error(err))
		return c.NoContent(http.StatusPaymentRequired)
	}

	if err != nil {
		h.logger.Error("Internal server error", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}

// @Summary       Decide deposit request
// @Description   Approve or reject a pending deposit. Approval credits the user's wallet atomically with completing the transaction.
// @Tags          Approval API
// @Accept        json
// @Produce       json
// @Param         id         path       string                true   "Deposit request id."
// @Param         decision   body       dto.DecisionRequest   true   "Decision with optional notes."
// @Success       200
// @Failure       400
// @Failure       401
// @Failure       403
// @Failure       404
// @Failure       409
// @Failure       415
// @Failure       500
// @Security      JWT
// @Router        /api/admin/deposits/{id}/decision [post]
func (h *ApprovalHandler) DecideDeposit(c echo.Context) error {
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

	decision := new(dto.DecisionRequest)
	if bindErr := c.Bind(decision); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	requestValidator := validator.New()
	if validateErr := requestValidator.Struct(decision); validateErr != nil {
		h.logger.Warn("Bad Request: invalid decision", zap.Error(validateErr))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	err := h.approvalService.DecideDeposit(c.Request().Context(), c.Param("id"), operator, *decision)

	if errors.Is(err, apperrors.ErrRequestNotFound) {
		h.logger.Warn("Deposit request not found", zap.Error(err))
		return c.NoContent(http.StatusNotFound)
	}

	if errors.Is(err, apperrors.ErrAlreadyFinalized) {
		h.logger.Info("Conflict: request already finalized", zap.Error(err))
		return c.NoContent(http.StatusConflict)
	}

	if err != nil {
		h.logger.Error("Internal server error", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}
