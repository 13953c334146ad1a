package service

import (
	"context"
	"fmt"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pipsmade/platform/internal/apperrors"
	"github.com/pipsmade/platform/internal/approval/handler/dto"
	notificationmodel "github.com/pipsmade/platform/internal/notification/model"
	"github.com/pipsmade/platform/internal/transaction/model"
	"github.com/pipsmade/platform/internal/utils"
)

// RequestRepository mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_request_repository.go -package=mock github.com/pipsmade/platform/internal/approval/service RequestRepository
type RequestRepository interface {
	SelectWithdrawalRequest(ctx context.Context, id string) (*model.WithdrawalRequest, error)
	SelectDepositRequest(ctx context.Context, id string) (*model.DepositRequest, error)
	SelectPendingWithdrawals(ctx context.Context) ([]model.WithdrawalRequest, error)
	SelectPendingDeposits(ctx context.Context) ([]model.DepositRequest, error)
	SelectByID(ctx context.Context, id string) (*model.Transaction, error)
	Finalize(ctx context.Context, id string, status string, approver string, notes string, rejectionReason string) error
	MarkWithdrawalProcessed(ctx context.Context, id string, operator string, notes string, sentTxHash string) error
	MarkDepositVerified(ctx context.Context, id string, operator string, notes string) error
}

// LedgerRepository mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_ledger_repository.go -package=mock github.com/pipsmade/platform/internal/approval/service LedgerRepository
type LedgerRepository interface {
	Credit(ctx context.Context, userLogin string, assetCode string, amount decimal.Decimal) error
	Debit(ctx context.Context, userLogin string, assetCode string, amount decimal.Decimal) error
}

// NotificationWriter mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_notification_writer.go -package=mock github.com/pipsmade/platform/internal/approval/service NotificationWriter
type NotificationWriter interface {
	Insert(ctx context.Context, notification notificationmodel.Notification) error
}

// DecisionNotifier mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_decision_notifier.go -package=mock github.com/pipsmade/platform/internal/approval/service DecisionNotifier
//
// Called only after the decision is committed. Implementations are best-effort
// and must not fail the workflow.
type DecisionNotifier interface {
	RequestDecided(notification notificationmodel.Notification)
}

type ApprovalUseCase struct {
	requests      RequestRepository
	ledger        LedgerRepository
	notifications NotificationWriter
	notifier      DecisionNotifier
	trManager     trm.Manager
	txSettings    trm.Settings
	logger        *zap.Logger
}

func NewApprovalService(
	requests RequestRepository,
	ledger LedgerRepository,
	notifications NotificationWriter,
	notifier DecisionNotifier,
	trManager trm.Manager,
	logger *zap.Logger,
) *ApprovalUseCase {
	return &ApprovalUseCase{
		requests:      requests,
		ledger:        ledger,
		notifications: notifications,
		notifier:      notifier,
		trManager:     trManager,
		txSettings: pgxv5.MustSettings(
			settings.Must(settings.WithCancelable(true)),
			pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: pgx.RepeatableRead}),
		),
		logger: logger,
	}
}

func (a *ApprovalUseCase) GetPendingRequests(ctx context.Context) (*dto.PendingRequestsResponse, error) {
	withdrawals, err := a.requests.SelectPendingWithdrawals(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	deposits, err := a.requests.SelectPendingDeposits(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	response := &dto.PendingRequestsResponse{
		Withdrawals: make([]dto.PendingWithdrawalResponse, 0, len(withdrawals)),
		Deposits:    make([]dto.PendingDepositResponse, 0, len(deposits)),
	}
	for _, v := range withdrawals {
		response.Withdrawals = append(response.Withdrawals, dto.MapToPendingWithdrawalResponse(v))
	}
	for _, v := range deposits {
		response.Deposits = append(response.Deposits, dto.MapToPendingDepositResponse(v))
	}

	return response, nil
}

// DecideWithdrawal finalizes a pending withdrawal. On approval the transaction
// is completed and the wallet debited in one database transaction, so the
// balance can never be spent twice. A replayed decision returns
// ErrAlreadyFinalized, a balance that shrank since submission returns
// ErrInsufficientBalance and leaves the request pending.
func (a *ApprovalUseCase) DecideWithdrawal(ctx context.Context, requestID string, operator string, decision dto.DecisionRequest) error {
	request, err := a.requests.SelectWithdrawalRequest(ctx, requestID)
	if err != nil {
		return fmt.Errorf("%s %w", utils.Caller(), err)
	}

	transaction, err := a.requests.SelectByID(ctx, request.TransactionID)
	if err != nil {
		return fmt.Errorf("%s %w", utils.Caller(), err)
	}

	if transaction.IsFinal() {
		return apperrors.ErrAlreadyFinalized
	}

	var notification notificationmodel.Notification
	err = a.trManager.DoWithSettings(ctx, a.txSettings, func(ctx context.Context) error {
		if decision.Decision == dto.DecisionApprove {
			if errFinalize := a.requests.Finalize(ctx, request.TransactionID, model.StatusCompleted,
				operator, decision.Notes, ""); errFinalize != nil {
				return errFinalize
			}

			if errDebit := a.ledger.Debit(ctx, request.UserLogin, request.AssetCode, request.Amount); errDebit != nil {
				return errDebit
			}

			if errMark := a.requests.MarkWithdrawalProcessed(ctx, requestID, operator,
				decision.Notes, decision.SentTxHash); errMark != nil {
				return errMark
			}

			notification = withdrawalApproved(*request)
		} else {
			if errFinalize := a.requests.Finalize(ctx, request.TransactionID, model.StatusRejected,
				operator, decision.Notes, decision.RejectionReason); errFinalize != nil {
				return errFinalize
			}

			if errMark := a.requests.MarkWithdrawalProcessed(ctx, requestID, operator,
				decision.Notes, ""); errMark != nil {
				return errMark
			}

			notification = withdrawalRejected(*request, decision.RejectionReason)
		}

		return a.notifications.Insert(ctx, notification)
	})
	if err != nil {
		return fmt.Errorf("%s %w", utils.Caller(), err)
	}

	a.notifier.RequestDecided(notification)

	return nil
}

// DecideDeposit finalizes a pending deposit. On approval the wallet is
// credited together with completing the transaction, creating the wallet
// lazily if the user has none for the asset. Rejection never touches a wallet.
func (a *ApprovalUseCase) DecideDeposit(ctx context.Context, requestID string, operator string, decision dto.DecisionRequest) error {
	request, err := a.requests.SelectDepositRequest(ctx, requestID)
	if err != nil {
		return fmt.Errorf("%s %w", utils.Caller(), err)
	}

	transaction, err := a.requests.SelectByID(ctx, request.TransactionID)
	if err != nil {
		return fmt.Errorf("%s %w", utils.Caller(), err)
	}

	if transaction.IsFinal() {
		return apperrors.ErrAlreadyFinalized
	}

	var notification notificationmodel.Notification
	err = a.trManager.DoWithSettings(ctx, a.txSettings, func(ctx context.Context) error {
		if decision.Decision == dto.DecisionApprove {
			if errFinalize := a.requests.Finalize(ctx, request.TransactionID, model.StatusCompleted,
				operator, decision.Notes, ""); errFinalize != nil {
				return errFinalize
			}

			if errCredit := a.ledger.Credit(ctx, request.UserLogin, request.AssetCode, request.Amount); errCredit != nil {
				return errCredit
			}

			if errMark := a.requests.MarkDepositVerified(ctx, requestID, operator, decision.Notes); errMark != nil {
				return errMark
			}

			notification = depositConfirmed(*request)
		} else {
			if errFinalize := a.requests.Finalize(ctx, request.TransactionID, model.StatusRejected,
				operator, decision.Notes, decision.RejectionReason); errFinalize != nil {
				return errFinalize
			}

			if errMark := a.requests.MarkDepositVerified(ctx, requestID, operator, decision.Notes); errMark != nil {
				return errMark
			}

			notification = depositRejected(*request, decision.RejectionReason)
		}

		return a.notifications.Insert(ctx, notification)
	})
	if err != nil {
		return fmt.Errorf("%s %w", utils.Caller(), err)
	}

	a.notifier.RequestDecided(notification)

	return nil
}

func withdrawalApproved(request model.WithdrawalRequest) notificationmodel.Notification {
	return notificationmodel.Notification{
		ID:            uuid.New().String(),
		UserLogin:     request.UserLogin,
		TransactionID: request.TransactionID,
		Title:         "Withdrawal approved",
		Message: fmt.Sprintf("Your withdrawal of %s %s to %s has been approved and sent.",
			request.Amount, request.AssetCode, request.DestinationAddress),
		Kind: notificationmodel.KindWithdrawalApproved,
	}
}

func withdrawalRejected(request model.WithdrawalRequest, reason string) notificationmodel.Notification {
	message := fmt.Sprintf("Your withdrawal of %s %s was rejected.", request.Amount, request.AssetCode)
	if reason != "" {
		message = fmt.Sprintf("%s Reason: %s", message, reason)
	}

	return notificationmodel.Notification{
		ID:            uuid.New().String(),
		UserLogin:     request.UserLogin,
		TransactionID: request.TransactionID,
		Title:         "Withdrawal rejected",
		Message:       message,
		Kind:          notificationmodel.KindWithdrawalRejected,
	}
}

func depositConfirmed(request model.DepositRequest) notificationmodel.Notification {
	return notificationmodel.Notification{
		ID:            uuid.New().String(),
		UserLogin:     request.UserLogin,
		TransactionID: request.TransactionID,
		Title:         "Deposit confirmed",
		Message: fmt.Sprintf("Your deposit of %s %s has been confirmed and credited to your wallet.",
			request.Amount, request.AssetCode),
		Kind: notificationmodel.KindDepositConfirmed,
	}
}

func depositRejected(request model.DepositRequest, reason string) notificationmodel.Notification {
	message := fmt.Sprintf("Your deposit of %s %s could not be verified.", request.Amount, request.AssetCode)
	if reason != "" {
		message = fmt.Sprintf("%s Reason: %s", message, reason)
	}

	return notificationmodel.Notification{
		ID:            uuid.New().String(),
		UserLogin:     request.UserLogin,
		TransactionID: request.TransactionID,
		Title:         "Deposit rejected",
		Message:       message,
		Kind:          notificationmodel.KindDepositRejected,
	}
}
