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
	"github.com/pipsmade/platform/internal/approval/handler/dto"
	"github.com/pipsmade/platform/internal/config"
	"github.com/pipsmade/platform/internal/middleware"
	mock "github.com/pipsmade/platform/internal/mocks"
	"github.com/pipsmade/platform/internal/utils"
)

var cfgMock = &config.Config{
	Address:     "localhost:7000",
	DatabaseURI: "user=postgres password=postgres host=localhost database=pipsmade sslmode=disable",
	Secret:      "supersecretkey",
	TokenName:   "token",
}

type ApprovalHandlersSuite struct {
	suite.Suite
	h               *ApprovalHandler
	approvalService *mock.MockApprovalService
	staffChecker    *mock.MockStaffChecker
	echo            *echo.Echo
	ctrl            *gomock.Controller
	jwtManager      *utils.JWTManager
}

func TestApprovalHandlersSuite(t *testing.T) {
	suite.Run(t, new(ApprovalHandlersSuite))
}

func (s *ApprovalHandlersSuite) SetupTest() {
	logger, _ := zap.NewProduction()
	s.jwtManager = utils.InitJWTManager(cfgMock.TokenName, cfgMock.Secret, logger)
	jwtAuth := middleware.InitJWTAuth(s.jwtManager, logger)
	s.ctrl = gomock.NewController(s.T())
	s.staffChecker = mock.NewMockStaffChecker(s.ctrl)
	staffAuth := middleware.InitStaffAuth(s.staffChecker, logger)
	s.echo = echo.New()
	s.approvalService = mock.NewMockApprovalService(s.ctrl)
	s.h = NewApprovalHandler(s.echo, s.approvalService, logger, jwtAuth, staffAuth)
}

func (s *ApprovalHandlersSuite) createCookie(login string) *http.Cookie {
	token, err := s.jwtManager.BuildJWTString(login)
	require.NoError(s.T(), err)
	return &http.Cookie{Name: s.jwtManager.TokenName, Value: token}
}

func (s *ApprovalHandlersSuite) TestGetPendingRequests() {
	response := &dto.PendingRequestsResponse{
		Withdrawals: []dto.PendingWithdrawalResponse{
			{
				ID:            "5e0fca32-9dc0-45a1-b0cd-8e62a35adf21",
				TransactionID: "2b6c0a48-13f7-44c5-9368-c1d172a2ff99",
				UserLogin:     "awesome_login",
				AssetCode:     "BTC",
				Amount:        decimal.RequireFromString("0.5"),
			},
		},
		Deposits: []dto.PendingDepositResponse{},
	}

	testCases := []struct {
		name         string
		login        string
		prepare      func()
		expectedCode int
		checkBody    bool
	}{
		{
			name:  "OK 200 staff user",
			login: "operator",
			prepare: func() {
				s.staffChecker.EXPECT().IsStaff(gomock.Any(), "operator").Times(1).Return(true, nil)
				s.approvalService.EXPECT().GetPendingRequests(gomock.Any()).Times(1).Return(response, nil)
			},
			expectedCode: http.StatusOK,
			checkBody:    true,
		},
		{
			name:  "Forbidden 403 regular user",
			login: "awesome_login",
			prepare: func() {
				s.staffChecker.EXPECT().IsStaff(gomock.Any(), "awesome_login").Times(1).Return(false, nil)
				s.approvalService.EXPECT().GetPendingRequests(gomock.Any()).Times(0)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, test := range testCases {
		s.T().Run(test.name, func(t *testing.T) {
			test.prepare()

			request := httptest.NewRequest(http.MethodGet, "/api/admin/requests/pending", nil)
			request.AddCookie(s.createCookie(test.login))
			w := httptest.NewRecorder()
			s.echo.ServeHTTP(w, request)

			assert.Equal(t, test.expectedCode, w.Code)
			if test.checkBody {
				body, readErr := io.ReadAll(w.Body)
				require.NoError(t, readErr)
				assert.Contains(t, string(body), "5e0fca32-9dc0-45a1-b0cd-8e62a35adf21")
			}
		})
	}
}

func (s *ApprovalHandlersSuite) TestGetPendingRequestsUnauthorized() {
	request := httptest.NewRequest(http.MethodGet, "/api/admin/requests/pending", nil)
	w := httptest.NewRecorder()
	s.echo.ServeHTTP(w, request)

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *ApprovalHandlersSuite) TestDecideWithdrawal() {
	requestID := "5e0fca32-9dc0-45a1-b0cd-8e62a35adf21"

	approve := dto.DecisionRequest{
		Decision:   dto.DecisionApprove,
		Notes:      "verified on chain",
		SentTxHash: "0xsenthash",
	}
	approveJSON, err := json.Marshal(approve)
	require.NoError(s.T(), err)

	testCases := []struct {
		name         string
		header       http.Header
		body         string
		prepare      func()
		expectedCode int
	}{
		{
			name:   "OK 200 approved",
			header: map[string][]string{"Content-Type": {"application/json"}},
			body:   string(approveJSON),
			prepare: func() {
				s.approvalService.EXPECT().
					DecideWithdrawal(gomock.Any(), requestID, "operator", approve).
					Times(1).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Conflict 409 already finalized",
			header: map[string][]string{"Content-Type": {"application/json"}},
			body:   string(approveJSON),
			prepare: func() {
				s.approvalService.EXPECT().
					DecideWithdrawal(gomock.Any(), requestID, "operator", approve).
					Times(1).Return(apperrors.ErrAlreadyFinalized)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "PaymentRequired 402 balance spent since submission",
			header: map[string][]string{"Content-Type": {"application/json"}},
			body:   string(approveJSON),
			prepare: func() {
				s.approvalService.EXPECT().
					DecideWithdrawal(gomock.Any(), requestID, "operator", approve).
					Times(1).Return(apperrors.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name:   "NotFound 404 unknown request",
			header: map[string][]string{"Content-Type": {"application/json"}},
			body:   string(approveJSON),
			prepare: func() {
				s.approvalService.EXPECT().
					DecideWithdrawal(gomock.Any(), requestID, "operator", approve).
					Times(1).Return(apperrors.ErrRequestNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "BadRequest 400 unknown decision",
			header:       map[string][]string{"Content-Type": {"application/json"}},
			body:         `{"decision": "maybe"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "UnsupportedMediaType 415",
			header:       map[string][]string{"Content-Type": {"text/plain"}},
			body:         string(approveJSON),
			expectedCode: http.StatusUnsupportedMediaType,
		},
	}

	for _, test := range testCases {
		s.T().Run(test.name, func(t *testing.T) {
			s.staffChecker.EXPECT().IsStaff(gomock.Any(), "operator").Times(1).Return(true, nil)
			if test.prepare != nil {
				test.prepare()
			}

			request := httptest.NewRequest(http.MethodPost,
				"/api/admin/withdrawals/"+requestID+"/decision", strings.NewReader(test.body))
			request.Header = test.header
			request.AddCookie(s.createCookie("operator"))
			w := httptest.NewRecorder()
			s.echo.ServeHTTP(w, request)

			assert.Equal(t, test.expectedCode, w.Code)
		})
	}
}

func (s *ApprovalHandlersSuite) TestDecideDeposit() {
	requestID := "9a1f4c7d-3c6b-4aee-8d10-55f0b1c2d3e4"

	reject := dto.DecisionRequest{
		Decision:        dto.DecisionReject,
		RejectionReason: "proof does not match any on-chain payment",
	}
	rejectJSON, err := json.Marshal(reject)
	require.NoError(s.T(), err)

	testCases := []struct {
		name         string
		body         string
		prepare      func()
		expectedCode int
	}{
		{
			name: "OK 200 rejected",
			body: string(rejectJSON),
			prepare: func() {
				s.approvalService.EXPECT().
					DecideDeposit(gomock.Any(), requestID, "operator", reject).
					Times(1).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Conflict 409 already finalized",
			body: string(rejectJSON),
			prepare: func() {
				s.approvalService.EXPECT().
					DecideDeposit(gomock.Any(), requestID, "operator", reject).
					Times(1).Return(apperrors.ErrAlreadyFinalized)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "NotFound 404 unknown request",
			body: string(rejectJSON),
			prepare: func() {
				s.approvalService.EXPECT().
					DecideDeposit(gomock.Any(), requestID, "operator", reject).
					Times(1).Return(apperrors.ErrRequestNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, test := range testCases {
		s.T().Run(test.name, func(t *testing.T) {
			s.staffChecker.EXPECT().IsStaff(gomock.Any(), "operator").Times(1).Return(true, nil)
			test.prepare()

			request := httptest.NewRequest(http.MethodPost,
				"/api/admin/deposits/"+requestID+"/decision", strings.NewReader(test.body))
			request.Header = map[string][]string{"Content-Type": {"application/json"}}
			request.AddCookie(s.createCookie("operator"))
			w := httptest.NewRecorder()
			s.echo.ServeHTTP(w, request)

			assert.Equal(t, test.expectedCode, w.Code)
		})
	}
}
