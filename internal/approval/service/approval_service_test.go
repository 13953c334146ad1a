package service

import (
	"context"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/pipsmade/platform/internal/apperrors"
	"github.com/pipsmade/platform/internal/approval/handler/dto"
	mock "github.com/pipsmade/platform/internal/mocks"
	notificationmodel "github.com/pipsmade/platform/internal/notification/model"
	"github.com/pipsmade/platform/internal/transaction/model"
)

// trManagerStub runs the closure without a real database transaction.
type trManagerStub struct{}

func (t trManagerStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (t trManagerStub) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type ApprovalServiceSuite struct {
	suite.Suite
	service       *ApprovalUseCase
	requests      *mock.MockRequestRepository
	ledger        *mock.MockLedgerRepository
	notifications *mock.MockNotificationWriter
	notifier      *mock.MockDecisionNotifier
	ctrl          *gomock.Controller
}

func TestApprovalServiceSuite(t *testing.T) {
	suite.Run(t, new(ApprovalServiceSuite))
}

func (a *ApprovalServiceSuite) SetupTest() {
	logger, _ := zap.NewProduction()
	a.ctrl = gomock.NewController(a.T())
	a.requests = mock.NewMockRequestRepository(a.ctrl)
	a.ledger = mock.NewMockLedgerRepository(a.ctrl)
	a.notifications = mock.NewMockNotificationWriter(a.ctrl)
	a.notifier = mock.NewMockDecisionNotifier(a.ctrl)
	a.service = NewApprovalService(a.requests, a.ledger, a.notifications, a.notifier, trManagerStub{}, logger)
}

func (a *ApprovalServiceSuite) pendingWithdrawal() (*model.WithdrawalRequest, *model.Transaction) {
	request := &model.WithdrawalRequest{
		ID:                 "3f0e8a1c-5b74-4a17-9a63-0f6a9c2d4e88",
		TransactionID:      "7c1d2b3a-9e54-4f06-8d12-aa34bc56de78",
		UserLogin:          "awesome_login",
		AssetCode:          "BTC",
		Amount:             decimal.RequireFromString("0.5"),
		DestinationAddress: "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
		Network:            "Bitcoin",
		PlatformFee:        decimal.RequireFromString("0.005"),
	}

	transaction := &model.Transaction{
		ID:        request.TransactionID,
		UserLogin: request.UserLogin,
		Kind:      model.KindWithdrawal,
		Status:    model.StatusPending,
		AssetCode: request.AssetCode,
		Amount:    request.Amount,
	}

	return request, transaction
}

func (a *ApprovalServiceSuite) pendingDeposit() (*model.DepositRequest, *model.Transaction) {
	request := &model.DepositRequest{
		ID:            "9a8b7c6d-5e4f-4321-8765-43210fedcba9",
		TransactionID: "1b2c3d4e-5f60-4718-9293-a4b5c6d7e8f9",
		UserLogin:     "awesome_login",
		AssetCode:     "USDT",
		Amount:        decimal.NewFromInt(1000),
		TxHash:        "0xdeadbeef",
	}

	transaction := &model.Transaction{
		ID:        request.TransactionID,
		UserLogin: request.UserLogin,
		Kind:      model.KindDeposit,
		Status:    model.StatusPending,
		AssetCode: request.AssetCode,
		Amount:    request.Amount,
	}

	return request, transaction
}

func (a *ApprovalServiceSuite) TestApproveWithdrawalDebitsOnce() {
	request, transaction := a.pendingWithdrawal()
	decision := dto.DecisionRequest{Decision: dto.DecisionApprove, Notes: "checked", SentTxHash: "0xabc"}

	var saved notificationmodel.Notification

	a.requests.EXPECT().SelectWithdrawalRequest(gomock.Any(), request.ID).Times(1).Return(request, nil)
	a.requests.EXPECT().SelectByID(gomock.Any(), request.TransactionID).Times(1).Return(transaction, nil)
	a.requests.EXPECT().Finalize(gomock.Any(), request.TransactionID, model.StatusCompleted, "operator", "checked", "").Times(1).Return(nil)
	a.ledger.EXPECT().Debit(gomock.Any(), request.UserLogin, request.AssetCode, request.Amount).Times(1).Return(nil)
	a.requests.EXPECT().MarkWithdrawalProcessed(gomock.Any(), request.ID, "operator", "checked", "0xabc").Times(1).Return(nil)
	a.notifications.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(1).
		DoAndReturn(func(_ context.Context, n notificationmodel.Notification) error {
			saved = n
			return nil
		})
	a.notifier.EXPECT().RequestDecided(gomock.Any()).Times(1)

	err := a.service.DecideWithdrawal(context.Background(), request.ID, "operator", decision)

	assert.NoError(a.T(), err)
	assert.Equal(a.T(), notificationmodel.KindWithdrawalApproved, saved.Kind)
	assert.Equal(a.T(), request.UserLogin, saved.UserLogin)
	assert.Equal(a.T(), request.TransactionID, saved.TransactionID)
}

func (a *ApprovalServiceSuite) TestApproveWithdrawalInsufficientBalance() {
	request, transaction := a.pendingWithdrawal()
	decision := dto.DecisionRequest{Decision: dto.DecisionApprove}

	a.requests.EXPECT().SelectWithdrawalRequest(gomock.Any(), request.ID).Times(1).Return(request, nil)
	a.requests.EXPECT().SelectByID(gomock.Any(), request.TransactionID).Times(1).Return(transaction, nil)
	a.requests.EXPECT().Finalize(gomock.Any(), request.TransactionID, model.StatusCompleted, "operator", "", "").Times(1).Return(nil)
	a.ledger.EXPECT().Debit(gomock.Any(), request.UserLogin, request.AssetCode, request.Amount).Times(1).Return(apperrors.ErrInsufficientBalance)
	a.requests.EXPECT().MarkWithdrawalProcessed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	a.notifications.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)
	a.notifier.EXPECT().RequestDecided(gomock.Any()).Times(0)

	err := a.service.DecideWithdrawal(context.Background(), request.ID, "operator", decision)

	assert.ErrorIs(a.T(), err, apperrors.ErrInsufficientBalance)
}

func (a *ApprovalServiceSuite) TestDecideWithdrawalAlreadyFinalized() {
	request, transaction := a.pendingWithdrawal()
	now := time.Now()
	transaction.Status = model.StatusCompleted
	transaction.CompletedAt = &now

	a.requests.EXPECT().SelectWithdrawalRequest(gomock.Any(), request.ID).Times(1).Return(request, nil)
	a.requests.EXPECT().SelectByID(gomock.Any(), request.TransactionID).Times(1).Return(transaction, nil)
	a.requests.EXPECT().Finalize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	a.ledger.EXPECT().Debit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := a.service.DecideWithdrawal(context.Background(), request.ID, "operator",
		dto.DecisionRequest{Decision: dto.DecisionApprove})

	assert.ErrorIs(a.T(), err, apperrors.ErrAlreadyFinalized)
}

func (a *ApprovalServiceSuite) TestDecideWithdrawalConcurrentReplay() {
	request, transaction := a.pendingWithdrawal()
	decision := dto.DecisionRequest{Decision: dto.DecisionApprove}

	// The transaction looks pending when read, another operator finalizes it
	// before our update lands. The guarded Finalize reports the conflict.
	a.requests.EXPECT().SelectWithdrawalRequest(gomock.Any(), request.ID).Times(1).Return(request, nil)
	a.requests.EXPECT().SelectByID(gomock.Any(), request.TransactionID).Times(1).Return(transaction, nil)
	a.requests.EXPECT().Finalize(gomock.Any(), request.TransactionID, model.StatusCompleted, "operator", "", "").Times(1).Return(apperrors.ErrAlreadyFinalized)
	a.ledger.EXPECT().Debit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	a.notifier.EXPECT().RequestDecided(gomock.Any()).Times(0)

	err := a.service.DecideWithdrawal(context.Background(), request.ID, "operator", decision)

	assert.ErrorIs(a.T(), err, apperrors.ErrAlreadyFinalized)
}

func (a *ApprovalServiceSuite) TestRejectWithdrawalLeavesBalanceUntouched() {
	request, transaction := a.pendingWithdrawal()
	decision := dto.DecisionRequest{Decision: dto.DecisionReject, RejectionReason: "suspicious destination"}

	var saved notificationmodel.Notification

	a.requests.EXPECT().SelectWithdrawalRequest(gomock.Any(), request.ID).Times(1).Return(request, nil)
	a.requests.EXPECT().SelectByID(gomock.Any(), request.TransactionID).Times(1).Return(transaction, nil)
	a.requests.EXPECT().Finalize(gomock.Any(), request.TransactionID, model.StatusRejected, "operator", "", "suspicious destination").Times(1).Return(nil)
	a.ledger.EXPECT().Debit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	a.requests.EXPECT().MarkWithdrawalProcessed(gomock.Any(), request.ID, "operator", "", "").Times(1).Return(nil)
	a.notifications.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(1).
		DoAndReturn(func(_ context.Context, n notificationmodel.Notification) error {
			saved = n
			return nil
		})
	a.notifier.EXPECT().RequestDecided(gomock.Any()).Times(1)

	err := a.service.DecideWithdrawal(context.Background(), request.ID, "operator", decision)

	assert.NoError(a.T(), err)
	assert.Equal(a.T(), notificationmodel.KindWithdrawalRejected, saved.Kind)
	assert.Contains(a.T(), saved.Message, "suspicious destination")
}

func (a *ApprovalServiceSuite) TestApproveDepositCreditsWallet() {
	request, transaction := a.pendingDeposit()
	decision := dto.DecisionRequest{Decision: dto.DecisionApprove, Notes: "hash verified"}

	var saved notificationmodel.Notification

	a.requests.EXPECT().SelectDepositRequest(gomock.Any(), request.ID).Times(1).Return(request, nil)
	a.requests.EXPECT().SelectByID(gomock.Any(), request.TransactionID).Times(1).Return(transaction, nil)
	a.requests.EXPECT().Finalize(gomock.Any(), request.TransactionID, model.StatusCompleted, "operator", "hash verified", "").Times(1).Return(nil)
	a.ledger.EXPECT().Credit(gomock.Any(), request.UserLogin, request.AssetCode, request.Amount).Times(1).Return(nil)
	a.requests.EXPECT().MarkDepositVerified(gomock.Any(), request.ID, "operator", "hash verified").Times(1).Return(nil)
	a.notifications.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(1).
		DoAndReturn(func(_ context.Context, n notificationmodel.Notification) error {
			saved = n
			return nil
		})
	a.notifier.EXPECT().RequestDecided(gomock.Any()).Times(1)

	err := a.service.DecideDeposit(context.Background(), request.ID, "operator", decision)

	assert.NoError(a.T(), err)
	assert.Equal(a.T(), notificationmodel.KindDepositConfirmed, saved.Kind)
}

func (a *ApprovalServiceSuite) TestRejectDepositLeavesBalanceUntouched() {
	request, transaction := a.pendingDeposit()
	decision := dto.DecisionRequest{Decision: dto.DecisionReject, RejectionReason: "hash not found on chain"}

	var saved notificationmodel.Notification

	a.requests.EXPECT().SelectDepositRequest(gomock.Any(), request.ID).Times(1).Return(request, nil)
	a.requests.EXPECT().SelectByID(gomock.Any(), request.TransactionID).Times(1).Return(transaction, nil)
	a.requests.EXPECT().Finalize(gomock.Any(), request.TransactionID, model.StatusRejected, "operator", "", "hash not found on chain").Times(1).Return(nil)
	a.ledger.EXPECT().Credit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	a.requests.EXPECT().MarkDepositVerified(gomock.Any(), request.ID, "operator", "").Times(1).Return(nil)
	a.notifications.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(1).
		DoAndReturn(func(_ context.Context, n notificationmodel.Notification) error {
			saved = n
			return nil
		})
	a.notifier.EXPECT().RequestDecided(gomock.Any()).Times(1)

	err := a.service.DecideDeposit(context.Background(), request.ID, "operator", decision)

	assert.NoError(a.T(), err)
	assert.Equal(a.T(), notificationmodel.KindDepositRejected, saved.Kind)
}

func (a *ApprovalServiceSuite) TestDecideWithdrawalRequestNotFound() {
	a.requests.EXPECT().SelectWithdrawalRequest(gomock.Any(), "missing").Times(1).Return(nil, apperrors.ErrRequestNotFound)

	err := a.service.DecideWithdrawal(context.Background(), "missing", "operator",
		dto.DecisionRequest{Decision: dto.DecisionApprove})

	assert.ErrorIs(a.T(), err, apperrors.ErrRequestNotFound)
}
