package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/pipsmade/platform/internal/apperrors"
	"github.com/pipsmade/platform/internal/config"
	"github.com/pipsmade/platform/internal/middleware"
	mock "github.com/pipsmade/platform/internal/mocks"
	"github.com/pipsmade/platform/internal/transaction/handler/dto"
	"github.com/pipsmade/platform/internal/utils"
)

var cfgMock = &config.Config{
	Address:     "localhost:7000",
	DatabaseURI: "user=postgres password=postgres host=localhost database=pipsmade sslmode=disable",
	Secret:      "supersecretkey",
	TokenName:   "token",
}

type TransactionHandlersSuite struct {
	suite.Suite
	h                  *TransactionHandler
	transactionService *mock.MockTransactionService
	echo               *echo.Echo
	ctrl               *gomock.Controller
	jwtManager         *utils.JWTManager
}

func TestTransactionHandlersSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlersSuite))
}

func (s *TransactionHandlersSuite) SetupTest() {
	logger, _ := zap.NewProduction()
	s.jwtManager = utils.InitJWTManager(cfgMock.TokenName, cfgMock.Secret, logger)
	jwtAuth := middleware.InitJWTAuth(s.jwtManager, logger)
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.transactionService = mock.NewMockTransactionService(s.ctrl)
	s.h = NewTransactionHandler(s.echo, s.transactionService, logger, jwtAuth)
}

func (s *TransactionHandlersSuite) createCookie(login string) *http.Cookie {
	token, err := s.jwtManager.BuildJWTString(login)
	require.NoError(s.T(), err)
	return &http.Cookie{Name: s.jwtManager.TokenName, Value: token}
}

func (s *TransactionHandlersSuite) TestSubmitWithdrawal() {
	withdrawalRequest := dto.WithdrawalSubmitRequest{
		AssetCode:          "BTC",
		Amount:             decimal.RequireFromString("0.5"),
		DestinationAddress: "bc1quserdestination",
		Network:            "Bitcoin",
	}

	withdrawalRequestJSON, err := json.Marshal(withdrawalRequest)
	require.NoError(s.T(), err)

	negativeRequest := withdrawalRequest
	negativeRequest.Amount = decimal.NewFromInt(-1)
	negativeRequestJSON, err := json.Marshal(negativeRequest)
	require.NoError(s.T(), err)

	response := dto.TransactionResponse{
		ID:        "2b6c0a48-13f7-44c5-9368-c1d172a2ff99",
		Kind:      "withdrawal",
		Status:    "pending",
		AssetCode: "BTC",
		Amount:    decimal.RequireFromString("0.5"),
	}

	testCases := []struct {
		name         string
		header       http.Header
		body         string
		prepare      func()
		expectedCode int
	}{
		{
			name:   "Created 201",
			header: map[string][]string{"Content-Type": {"application/json"}},
			body:   string(withdrawalRequestJSON),
			prepare: func() {
				s.transactionService.EXPECT().
					SubmitWithdrawal(gomock.Any(), "awesome_login", withdrawalRequest, gomock.Any(), gomock.Any()).
					Times(1).Return(&response, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:   "PaymentRequired 402 insufficient balance",
			header: map[string][]string{"Content-Type": {"application/json"}},
			body:   string(withdrawalRequestJSON),
			prepare: func() {
				s.transactionService.EXPECT().
					SubmitWithdrawal(gomock.Any(), "awesome_login", withdrawalRequest, gomock.Any(), gomock.Any()).
					Times(1).Return(nil, apperrors.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name:   "NotFound 404 unknown asset",
			header: map[string][]string{"Content-Type": {"application/json"}},
			body:   string(withdrawalRequestJSON),
			prepare: func() {
				s.transactionService.EXPECT().
					SubmitWithdrawal(gomock.Any(), "awesome_login", withdrawalRequest, gomock.Any(), gomock.Any()).
					Times(1).Return(nil, apperrors.ErrAssetNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "BadRequest 400 negative amount",
			header:       map[string][]string{"Content-Type": {"application/json"}},
			body:         string(negativeRequestJSON),
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "UnsupportedMediaType 415",
			header:       map[string][]string{"Content-Type": {"text/plain"}},
			body:         string(withdrawalRequestJSON),
			expectedCode: http.StatusUnsupportedMediaType,
		},
	}

	for _, test := range testCases {
		s.T().Run(test.name, func(t *testing.T) {
			if test.prepare != nil {
				test.prepare()
			}

			request := httptest.NewRequest(http.MethodPost, "/api/user/withdrawals", strings.NewReader(test.body))
			request.Header = test.header
			request.AddCookie(s.createCookie("awesome_login"))
			w := httptest.NewRecorder()
			s.echo.ServeHTTP(w, request)

			assert.Equal(t, test.expectedCode, w.Code)
		})
	}
}

func (s *TransactionHandlersSuite) TestSubmitWithdrawalUnauthorized() {
	request := httptest.NewRequest(http.MethodPost, "/api/user/withdrawals", strings.NewReader("{}"))
	request.Header = map[string][]string{"Content-Type": {"application/json"}}
	w := httptest.NewRecorder()
	s.echo.ServeHTTP(w, request)

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *TransactionHandlersSuite) TestSubmitDeposit() {
	depositRequest := dto.DepositSubmitRequest{
		AssetCode:     "USDT",
		Amount:        decimal.NewFromInt(500),
		TxHash:        "0xdeadbeef",
		SenderAddress: "0xsender",
	}

	depositRequestJSON, err := json.Marshal(depositRequest)
	require.NoError(s.T(), err)

	response := dto.TransactionResponse{
		ID:        "6f2a9c1e-7d40-4d0e-8fb4-2a0d6d5c21af",
		Kind:      "deposit",
		Status:    "pending",
		AssetCode: "USDT",
		Amount:    decimal.NewFromInt(500),
	}

	testCases := []struct {
		name         string
		header       http.Header
		body         string
		prepare      func()
		expectedCode int
	}{
		{
			name:   "Created 201",
			header: map[string][]string{"Content-Type": {"application/json"}},
			body:   string(depositRequestJSON),
			prepare: func() {
				s.transactionService.EXPECT().
					SubmitDeposit(gomock.Any(), "awesome_login", depositRequest).
					Times(1).Return(&response, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:   "UnprocessableEntity 422 below minimum",
			header: map[string][]string{"Content-Type": {"application/json"}},
			body:   string(depositRequestJSON),
			prepare: func() {
				s.transactionService.EXPECT().
					SubmitDeposit(gomock.Any(), "awesome_login", depositRequest).
					Times(1).Return(nil, apperrors.ErrBelowMinimumDeposit)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "BadRequest 400 missing tx hash",
			header:       map[string][]string{"Content-Type": {"application/json"}},
			body:         `{"asset_code": "USDT", "amount": 500, "sender_address": "0xsender"}`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, test := range testCases {
		s.T().Run(test.name, func(t *testing.T) {
			if test.prepare != nil {
				test.prepare()
			}

			request := httptest.NewRequest(http.MethodPost, "/api/user/deposits", strings.NewReader(test.body))
			request.Header = test.header
			request.AddCookie(s.createCookie("awesome_login"))
			w := httptest.NewRecorder()
			s.echo.ServeHTTP(w, request)

			assert.Equal(t, test.expectedCode, w.Code)
		})
	}
}

func (s *TransactionHandlersSuite) TestGetTransactions() {
	transactions := []dto.TransactionResponse{
		{
			ID:        "2b6c0a48-13f7-44c5-9368-c1d172a2ff99",
			Kind:      "withdrawal",
			Status:    "completed",
			AssetCode: "BTC",
			Amount:    decimal.RequireFromString("0.5"),
		},
	}

	testCases := []struct {
		name         string
		path         string
		prepare      func()
		expectedCode int
		checkBody    bool
	}{
		{
			name: "OK 200",
			path: "/api/user/transactions",
			prepare: func() {
				s.transactionService.EXPECT().
					GetByUser(gomock.Any(), "awesome_login", "", "").
					Times(1).Return(transactions, nil)
			},
			expectedCode: http.StatusOK,
			checkBody:    true,
		},
		{
			name: "OK 200 filtered",
			path: "/api/user/transactions?kind=withdrawal&status=completed",
			prepare: func() {
				s.transactionService.EXPECT().
					GetByUser(gomock.Any(), "awesome_login", "withdrawal", "completed").
					Times(1).Return(transactions, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "NoContent 204",
			path: "/api/user/transactions",
			prepare: func() {
				s.transactionService.EXPECT().
					GetByUser(gomock.Any(), "awesome_login", "", "").
					Times(1).Return(nil, apperrors.ErrNoTransactions)
			},
			expectedCode: http.StatusNoContent,
		},
	}

	for _, test := range testCases {
		s.T().Run(test.name, func(t *testing.T) {
			test.prepare()

			request := httptest.NewRequest(http.MethodGet, test.path, nil)
			request.AddCookie(s.createCookie("awesome_login"))
			w := httptest.NewRecorder()
			s.echo.ServeHTTP(w, request)

			assert.Equal(t, test.expectedCode, w.Code)
			if test.checkBody {
				body, readErr := io.ReadAll(w.Body)
				require.NoError(t, readErr)
				assert.Contains(t, string(body), "2b6c0a48-13f7-44c5-9368-c1d172a2ff99")
			}
		})
	}
}
