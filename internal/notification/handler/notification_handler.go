package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/pipsmade/platform/internal/apperrors"
	"github.com/pipsmade/platform/internal/middleware"
	"github.com/pipsmade/platform/internal/notification/handler/dto"
)

// NotificationService mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_notification_service.go -package=mock github.com/pipsmade/platform/internal/notification/handler NotificationService
type NotificationService interface {
	GetByUser(ctx context.Context, userLogin string) ([]dto.NotificationResponse, error)
	MarkRead(ctx context.Context, id string, userLogin string) error
	MarkAllRead(ctx context.Context, userLogin string) error
}

type NotificationHandler struct {
	notificationService NotificationService
	logger              *zap.Logger
}

func NewNotificationHandler(e *echo.Echo, service NotificationService, logger *zap.Logger, jwtAuth *middleware.JWTAuth) *NotificationHandler {
	handler := &NotificationHandler{
		notificationService: service,
		logger:              logger,
	}

	protected := e.Group("/api/user/notifications", jwtAuth.JWTAuth())
	protected.GET("", handler.GetNotifications)
	protected.PATCH("/:id/read", handler.MarkRead)
	protected.POST("/read-all", handler.MarkAllRead)

	return handler
}

// @Summary       Get notifications
// @Description   Get the user's transaction notifications, newest first.
// @Tags          Notification API
// @Produce       json
// @Success       200    {array}    dto.NotificationResponse
// @Failure       401
// @Failure       500
// @Security      JWT
// @Router        /api/user/notifications [get]
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	userLogin, ok := c.Get("userLogin").(string)
	if !ok {
		h.logger.Error("Internal server error", zap.Error(apperrors.ErrUnableToGetUserLoginFromContext))
		return c.NoContent(http.StatusInternalServerError)
	}

	notifications, err := h.notificationService.GetByUser(c.Request().Context(), userLogin)
	if err != nil {
		h.logger.Error("Internal server error: unable to get notifications", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, notifications)
}

// @Summary       Mark notification read
// @Description   Mark one of the user's notifications as read. Notifications of other users read as not found.
// @Tags          Notification API
// @Success       200
// @Failure       401
// @Failure       404
// @Failure       500
// @Security      JWT
// @Router        /api/user/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userLogin, ok := c.Get("userLogin").(string)
	if !ok {
		h.logger.Error("Internal server error", zap.Error(apperrors.ErrUnableToGetUserLoginFromContext))
		return c.NoContent(http.StatusInternalServerError)
	}

	err := h.notificationService.MarkRead(c.Request().Context(), c.Param("id"), userLogin)
	if errors.Is(err, apperrors.ErrNotificationNotFound) {
		h.logger.Info("Notification not found", zap.Error(err))
		return c.NoContent(http.StatusNotFound)
	}

	if err != nil {
		h.logger.Error("Internal server error: unable to mark notification read", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}

// @Summary       Mark all notifications read
// @Description   Mark all the user's unread notifications as read.
// @Tags          Notification API
// @Success       200
// @Failure       401
// @Failure       500
// @Security      JWT
// @Router        /api/user/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userLogin, ok := c.Get("userLogin").(string)
	if !ok {
		h.logger.Error("Internal server error", zap.Error(apperrors.ErrUnableToGetUserLoginFromContext))
		return c.NoContent(http.StatusInternalServerError)
	}

	if err := h.notificationService.MarkAllRead(c.Request().Context(), userLogin); err != nil {
		h.logger.Error("Internal server error: unable to mark notifications read", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}
