package handler

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/pipsmade/platform/internal/config"
	"github.com/pipsmade/platform/internal/middleware"
	mock "github.com/pipsmade/platform/internal/mocks"
	"github.com/pipsmade/platform/internal/utils"
	"github.com/pipsmade/platform/internal/wallet/handler/dto"
)

var cfgMock = &config.Config{
	Address:     "localhost:7000",
	DatabaseURI: "user=postgres password=postgres host=localhost database=pipsmade sslmode=disable",
	Secret:      "supersecretkey",
	TokenName:   "token",
}

type WalletHandlersSuite struct {
	suite.Suite
	h             *WalletHandler
	walletService *mock.MockWalletService
	echo          *echo.Echo
	ctrl          *gomock.Controller
	jwtManager    *utils.JWTManager
}

func TestWalletHandlersSuite(t *testing.T) {
	suite.Run(t, new(WalletHandlersSuite))
}

func (s *WalletHandlersSuite) SetupTest() {
	logger, _ := zap.NewProduction()
	s.jwtManager = utils.InitJWTManager(cfgMock.TokenName, cfgMock.Secret, logger)
	jwtAuth := middleware.InitJWTAuth(s.jwtManager, logger)
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.walletService = mock.NewMockWalletService(s.ctrl)
	s.h = NewWalletHandler(s.echo, s.walletService, logger, jwtAuth)
}

func (s *WalletHandlersSuite) createCookie(login string) *http.Cookie {
	token, err := s.jwtManager.BuildJWTString(login)
	require.NoError(s.T(), err)
	return &http.Cookie{Name: s.jwtManager.TokenName, Value: token}
}

func (s *WalletHandlersSuite) TestGetWallets() {
	wallets := []dto.WalletResponse{
		{AssetCode: "BTC", Balance: decimal.RequireFromString("0.75")},
		{AssetCode: "USDT", Balance: decimal.NewFromInt(1500)},
	}

	testCases := []struct {
		name         string
		prepare      func()
		expectedCode int
		checkBody    bool
	}{
		{
			name: "OK 200",
			prepare: func() {
				s.walletService.EXPECT().GetByUser(gomock.Any(), "awesome_login").Times(1).
					Return(wallets, nil)
			},
			expectedCode: http.StatusOK,
			checkBody:    true,
		},
		{
			name: "InternalServerError 500",
			prepare: func() {
				s.walletService.EXPECT().GetByUser(gomock.Any(), "awesome_login").Times(1).
					Return(nil, errors.New("connection refused"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, test := range testCases {
		s.T().Run(test.name, func(t *testing.T) {
			test.prepare()

			request := httptest.NewRequest(http.MethodGet, "/api/user/wallets", nil)
			request.AddCookie(s.createCookie("awesome_login"))
			w := httptest.NewRecorder()
			s.echo.ServeHTTP(w, request)

			assert.Equal(t, test.expectedCode, w.Code)
			if test.checkBody {
				body, readErr := io.ReadAll(w.Body)
				require.NoError(t, readErr)
				assert.Contains(t, string(body), "USDT")
			}
		})
	}
}

func (s *WalletHandlersSuite) TestGetWalletsUnauthorized() {
	request := httptest.NewRequest(http.MethodGet, "/api/user/wallets", nil)
	w := httptest.NewRecorder()
	s.echo.ServeHTTP(w, request)

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}
