package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pipsmade/platform/internal/notification/handler/dto"
	"github.com/pipsmade/platform/internal/notification/model"
	"github.com/pipsmade/platform/internal/utils"
)

type NotificationRepository interface {
	SelectByUser(ctx context.Context, userLogin string) ([]model.Notification, error)
	MarkRead(ctx context.Context, id string, userLogin string) error
	MarkAllRead(ctx context.Context, userLogin string) error
}

type NotificationUseCase struct {
	repository NotificationRepository
	logger     *zap.Logger
}

func NewNotificationService(repository NotificationRepository, logger *zap.Logger) *NotificationUseCase {
	return &NotificationUseCase{
		repository: repository,
		logger:     logger,
	}
}

func (n *NotificationUseCase) GetByUser(ctx context.Context, userLogin string) ([]dto.NotificationResponse, error) {
	notifications, err := n.repository.SelectByUser(ctx, userLogin)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	notificationResponses := make([]dto.NotificationResponse, 0, len(notifications))
	for _, v := range notifications {
		notificationResponses = append(notificationResponses, dto.MapToNotificationResponse(v))
	}

	return notificationResponses, nil
}

func (n *NotificationUseCase) MarkRead(ctx context.Context, id string, userLogin string) error {
	if err := n.repository.MarkRead(ctx, id, userLogin); err != nil {
		return fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return nil
}

func (n *NotificationUseCase) MarkAllRead(ctx context.Context, userLogin string) error {
	if err := n.repository.MarkAllRead(ctx, userLogin); err != nil {
		return fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return nil
}
