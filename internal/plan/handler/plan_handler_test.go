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
	"github.com/pipsmade/platform/internal/plan/handler/dto"
	"github.com/pipsmade/platform/internal/plan/model"
	"github.com/pipsmade/platform/internal/utils"
)

var cfgMock = &config.Config{
	Address:     "localhost:7000",
	DatabaseURI: "user=postgres password=postgres host=localhost database=pipsmade sslmode=disable",
	Secret:      "supersecretkey",
	TokenName:   "token",
}

type PlanHandlersSuite struct {
	suite.Suite
	h            *PlanHandler
	planService  *mock.MockPlanService
	staffChecker *mock.MockStaffChecker
	echo         *echo.Echo
	ctrl         *gomock.Controller
	jwtManager   *utils.JWTManager
}

func TestPlanHandlersSuite(t *testing.T) {
	suite.Run(t, new(PlanHandlersSuite))
}

func (s *PlanHandlersSuite) SetupTest() {
	logger, _ := zap.NewProduction()
	s.jwtManager = utils.InitJWTManager(cfgMock.TokenName, cfgMock.Secret, logger)
	jwtAuth := middleware.InitJWTAuth(s.jwtManager, logger)
	s.ctrl = gomock.NewController(s.T())
	s.staffChecker = mock.NewMockStaffChecker(s.ctrl)
	staffAuth := middleware.InitStaffAuth(s.staffChecker, logger)
	s.echo = echo.New()
	s.planService = mock.NewMockPlanService(s.ctrl)
	s.h = NewPlanHandler(s.echo, s.planService, logger, jwtAuth, staffAuth)
}

func (s *PlanHandlersSuite) createCookie(login string) *http.Cookie {
	token, err := s.jwtManager.BuildJWTString(login)
	require.NoError(s.T(), err)
	return &http.Cookie{Name: s.jwtManager.TokenName, Value: token}
}

func (s *PlanHandlersSuite) TestGetPlans() {
	plans := []dto.PlanResponse{
		{
			ID:            "c4a9e7d2-6b18-4f5c-a3d0-91e2b8f7c6a5",
			Name:          "Starter",
			PlanType:      "crypto",
			MinInvestment: decimal.NewFromInt(100),
			AverageROI:    decimal.NewFromInt(15),
			DurationDays:  30,
			RiskLevel:     "low",
		},
	}

	s.planService.EXPECT().GetActivePlans(gomock.Any()).Times(1).Return(plans, nil)

	request := httptest.NewRequest(http.MethodGet, "/api/plans", nil)
	request.AddCookie(s.createCookie("awesome_login"))
	w := httptest.NewRecorder()
	s.echo.ServeHTTP(w, request)

	assert.Equal(s.T(), http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(s.T(), err)
	assert.Contains(s.T(), string(body), "Starter")
}

func (s *PlanHandlersSuite) TestInvest() {
	investRequest := dto.InvestRequest{
		PlanKind: model.PlanKindStandard,
		PlanID:   "c4a9e7d2-6b18-4f5c-a3d0-91e2b8f7c6a5",
		Amount:   decimal.NewFromInt(1000),
	}
	investRequestJSON, err := json.Marshal(investRequest)
	require.NoError(s.T(), err)

	response := dto.InvestmentResponse{
		ID:       "e6c1a9f4-8d30-4b7e-95f2-13a4d0b9e8c7",
		Plan:     model.StandardPlanRef(investRequest.PlanID),
		PlanName: "Starter",
		Amount:   decimal.NewFromInt(1000),
		Status:   model.InvestmentStatusActive,
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
			body:   string(investRequestJSON),
			prepare: func() {
				s.planService.EXPECT().
					Invest(gomock.Any(), "awesome_login", investRequest).
					Times(1).Return(&response, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:   "NotFound 404 unknown plan",
			header: map[string][]string{"Content-Type": {"application/json"}},
			body:   string(investRequestJSON),
			prepare: func() {
				s.planService.EXPECT().
					Invest(gomock.Any(), "awesome_login", investRequest).
					Times(1).Return(nil, apperrors.ErrPlanNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "UnprocessableEntity 422 outside plan limits",
			header: map[string][]string{"Content-Type": {"application/json"}},
			body:   string(investRequestJSON),
			prepare: func() {
				s.planService.EXPECT().
					Invest(gomock.Any(), "awesome_login", investRequest).
					Times(1).Return(nil, apperrors.ErrInvestmentOutOfRange)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "BadRequest 400 unknown plan kind",
			header:       map[string][]string{"Content-Type": {"application/json"}},
			body:         `{"plan_kind": "vip", "plan_id": "c4a9e7d2-6b18-4f5c-a3d0-91e2b8f7c6a5", "amount": 1000}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "UnsupportedMediaType 415",
			header:       map[string][]string{"Content-Type": {"text/plain"}},
			body:         string(investRequestJSON),
			expectedCode: http.StatusUnsupportedMediaType,
		},
	}

	for _, test := range testCases {
		s.T().Run(test.name, func(t *testing.T) {
			if test.prepare != nil {
				test.prepare()
			}

			request := httptest.NewRequest(http.MethodPost, "/api/user/investments", strings.NewReader(test.body))
			request.Header = test.header
			request.AddCookie(s.createCookie("awesome_login"))
			w := httptest.NewRecorder()
			s.echo.ServeHTTP(w, request)

			assert.Equal(t, test.expectedCode, w.Code)
		})
	}
}

func (s *PlanHandlersSuite) TestUpsertPlanStaffOnly() {
	planRequest := dto.PlanUpsertRequest{
		Name:             "Starter",
		PlanType:         "crypto",
		MinInvestment:    decimal.NewFromInt(100),
		MinROIPercentage: decimal.NewFromInt(10),
		MaxROIPercentage: decimal.NewFromInt(20),
		DurationDays:     30,
		RiskLevel:        "low",
		IsActive:         true,
	}
	planRequestJSON, err := json.Marshal(planRequest)
	require.NoError(s.T(), err)

	testCases := []struct {
		name         string
		login        string
		prepare      func()
		expectedCode int
	}{
		{
			name:  "OK 200 staff user",
			login: "operator",
			prepare: func() {
				s.staffChecker.EXPECT().IsStaff(gomock.Any(), "operator").Times(1).Return(true, nil)
				s.planService.EXPECT().UpsertPlan(gomock.Any(), planRequest).Times(1).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "Forbidden 403 regular user",
			login: "awesome_login",
			prepare: func() {
				s.staffChecker.EXPECT().IsStaff(gomock.Any(), "awesome_login").Times(1).Return(false, nil)
				s.planService.EXPECT().UpsertPlan(gomock.Any(), gomock.Any()).Times(0)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, test := range testCases {
		s.T().Run(test.name, func(t *testing.T) {
			test.prepare()

			request := httptest.NewRequest(http.MethodPost, "/api/admin/plans", strings.NewReader(string(planRequestJSON)))
			request.Header = map[string][]string{"Content-Type": {"application/json"}}
			request.AddCookie(s.createCookie(test.login))
			w := httptest.NewRecorder()
			s.echo.ServeHTTP(w, request)

			assert.Equal(t, test.expectedCode, w.Code)
		})
	}
}

func (s *PlanHandlersSuite) TestUpdateInvestmentValuesNotFound() {
	valuesRequest := dto.InvestmentValuesRequest{
		Status:            model.InvestmentStatusActive,
		CurrentValue:      decimal.NewFromInt(1100),
		TotalProfit:       decimal.NewFromInt(100),
		TotalWithdrawable: decimal.NewFromInt(50),
	}
	valuesRequestJSON, err := json.Marshal(valuesRequest)
	require.NoError(s.T(), err)

	s.staffChecker.EXPECT().IsStaff(gomock.Any(), "operator").Times(1).Return(true, nil)
	s.planService.EXPECT().
		UpdateInvestmentValues(gomock.Any(), "e6c1a9f4-8d30-4b7e-95f2-13a4d0b9e8c7", valuesRequest).
		Times(1).Return(apperrors.ErrInvestmentNotFound)

	request := httptest.NewRequest(http.MethodPut,
		"/api/admin/investments/e6c1a9f4-8d30-4b7e-95f2-13a4d0b9e8c7/values", strings.NewReader(string(valuesRequestJSON)))
	request.Header = map[string][]string{"Content-Type": {"application/json"}}
	request.AddCookie(s.createCookie("operator"))
	w := httptest.NewRecorder()
	s.echo.ServeHTTP(w, request)

	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *PlanHandlersSuite) TestGetPortfolio() {
	portfolio := &dto.PortfolioResponse{
		TotalInvested:     decimal.NewFromInt(1000),
		TotalCurrentValue: decimal.NewFromInt(1100),
		TotalProfit:       decimal.NewFromInt(100),
		ActiveInvestments: 1,
	}

	s.planService.EXPECT().GetPortfolio(gomock.Any(), "awesome_login").Times(1).Return(portfolio, nil)

	request := httptest.NewRequest(http.MethodGet, "/api/user/portfolio", nil)
	request.AddCookie(s.createCookie("awesome_login"))
	w := httptest.NewRecorder()
	s.echo.ServeHTTP(w, request)

	assert.Equal(s.T(), http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(s.T(), err)
	assert.Contains(s.T(), string(body), "total_profit")
}
