package dto

import (
	"time"

	"github.com/pipsmade/platform/internal/notification/model"
)

type NotificationResponse struct {
	ID            string `json:"id"`
	TransactionID string `json:"transaction_id"`
	Title         string `json:"title"`
	Message       string `json:"message"`
	Kind          string `json:"kind"`
	IsRead        bool   `json:"is_read"`
	CreatedAt     string `json:"created_at"`
}

func MapToNotificationResponse(notification model.Notification) NotificationResponse {
	return NotificationResponse{
		ID:            notification.ID,
		TransactionID: notification.TransactionID,
		Title:         notification.Title,
		Message:       notification.Message,
		Kind:          notification.Kind,
		IsRead:        notification.IsRead,
		CreatedAt:     notification.CreatedAt.Format(time.RFC3339),
	}
}
