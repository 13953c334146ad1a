package repository

import (
	"context"
	_ "embed"

	trmpgx "github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/pipsmade/platform/internal/apperrors"
	db "github.com/pipsmade/platform/internal/database"
	"github.com/pipsmade/platform/internal/notification/model"
	"github.com/pipsmade/platform/internal/utils"
)

//go:embed queries/insert_notification.sql
var insertNotification string

//go:embed queries/select_notifications_by_user.sql
var selectNotificationsByUser string

//go:embed queries/mark_notification_read.sql
var markNotificationRead string

//go:embed queries/mark_all_notifications_read.sql
var markAllNotificationsRead string

type PostgresNotificationRepository struct {
	postgresPool *db.PostgresPool
	logger       *zap.Logger
	getter       *trmpgx.CtxGetter
}

func NewPostgresNotificationRepository(postgresPool *db.PostgresPool, logger *zap.Logger) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{
		postgresPool: postgresPool,
		logger:       logger,
		getter:       trmpgx.DefaultCtxGetter,
	}
}

func (r *PostgresNotificationRepository) Insert(ctx context.Context, notification model.Notification) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	_, err := conn.Exec(ctx, insertNotification,
		notification.ID, notification.UserLogin, notification.TransactionID,
		notification.Title, notification.Message, notification.Kind)
	if err != nil {
		return apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return nil
}

func (r *PostgresNotificationRepository) SelectByUser(ctx context.Context, userLogin string) ([]model.Notification, error) {
	queryRows, err := r.postgresPool.DB.Query(ctx, selectNotificationsByUser, userLogin)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}
	defer queryRows.Close()

	notifications, err := pgx.CollectRows(queryRows, pgx.RowToStructByPos[model.Notification])
	if err != nil {
		return nil, apperrors.NewValueError("unable to collect rows", utils.Caller(), err)
	}

	return notifications, nil
}

// MarkRead carries the ownership constraint in the WHERE clause: a foreign
// notification id affects zero rows and reads as not found, so existence is
// not leaked to other users.
func (r *PostgresNotificationRepository) MarkRead(ctx context.Context, id string, userLogin string) error {
	tag, err := r.postgresPool.DB.Exec(ctx, markNotificationRead, id, userLogin)
	if err != nil {
		return apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}

	return nil
}

func (r *PostgresNotificationRepository) MarkAllRead(ctx context.Context, userLogin string) error {
	_, err := r.postgresPool.DB.Exec(ctx, markAllNotificationsRead, userLogin)
	if err != nil {
		return apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return nil
}
