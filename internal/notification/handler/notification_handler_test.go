package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/pipsmade/platform/internal/apperrors"
	"github.com/pipsmade/platform/internal/config"
	"github.com/pipsmade/platform/internal/middleware"
	mock "github.com/pipsmade/platform/internal/mocks"
	"github.com/pipsmade/platform/internal/notification/handler/dto"
	"github.com/pipsmade/platform/internal/utils"
)

var cfgMock = &config.Config{
	Address:     "localhost:7000",
	DatabaseURI: "user=postgres password=postgres host=localhost database=pipsmade sslmode=disable",
	Secret:      "supersecretkey",
	TokenName:   "token",
}

type NotificationHandlersSuite struct {
	suite.Suite
	h                   *NotificationHandler
	notificationService *mock.MockNotificationService
	echo                *echo.Echo
	ctrl                *gomock.Controller
	jwtManager          *utils.JWTManager
}

func TestNotificationHandlersSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlersSuite))
}

func (s *NotificationHandlersSuite) SetupTest() {
	logger, _ := zap.NewProduction()
	s.jwtManager = utils.InitJWTManager(cfgMock.TokenName, cfgMock.Secret, logger)
	jwtAuth := middleware.InitJWTAuth(s.jwtManager, logger)
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.notificationService = mock.NewMockNotificationService(s.ctrl)
	s.h = NewNotificationHandler(s.echo, s.notificationService, logger, jwtAuth)
}

func (s *NotificationHandlersSuite) createCookie(login string) *http.Cookie {
	token, err := s.jwtManager.BuildJWTString(login)
	require.NoError(s.T(), err)
	return &http.Cookie{Name: s.jwtManager.TokenName, Value: token}
}

func (s *NotificationHandlersSuite) TestGetNotifications() {
	notifications := []dto.NotificationResponse{
		{
			ID:            "8c3d5a16-0f2e-4b7a-9c81-d4e5f6a7b8c9",
			TransactionID: "2b6c0a48-13f7-44c5-9368-c1d172a2ff99",
			Title:         "Withdrawal approved",
			Message:       "Your withdrawal of 0.5 BTC has been processed.",
			Kind:          "withdrawal_approved",
			IsRead:        false,
		},
	}

	s.notificationService.EXPECT().GetByUser(gomock.Any(), "awesome_login").Times(1).
		Return(notifications, nil)

	request := httptest.NewRequest(http.MethodGet, "/api/user/notifications", nil)
	request.AddCookie(s.createCookie("awesome_login"))
	w := httptest.NewRecorder()
	s.echo.ServeHTTP(w, request)

	assert.Equal(s.T(), http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(s.T(), err)
	assert.Contains(s.T(), string(body), "Withdrawal approved")
}

func (s *NotificationHandlersSuite) TestGetNotificationsUnauthorized() {
	request := httptest.NewRequest(http.MethodGet, "/api/user/notifications", nil)
	w := httptest.NewRecorder()
	s.echo.ServeHTTP(w, request)

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *NotificationHandlersSuite) TestMarkRead() {
	notificationID := "8c3d5a16-0f2e-4b7a-9c81-d4e5f6a7b8c9"

	testCases := []struct {
		name         string
		prepare      func()
		expectedCode int
	}{
		{
			name: "OK 200",
			prepare: func() {
				s.notificationService.EXPECT().
					MarkRead(gomock.Any(), notificationID, "awesome_login").
					Times(1).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "NotFound 404 someone else's notification",
			prepare: func() {
				s.notificationService.EXPECT().
					MarkRead(gomock.Any(), notificationID, "awesome_login").
					Times(1).Return(apperrors.ErrNotificationNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, test := range testCases {
		s.T().Run(test.name, func(t *testing.T) {
			test.prepare()

			request := httptest.NewRequest(http.MethodPatch,
				"/api/user/notifications/"+notificationID+"/read", nil)
			request.AddCookie(s.createCookie("awesome_login"))
			w := httptest.NewRecorder()
			s.echo.ServeHTTP(w, request)

			assert.Equal(t, test.expectedCode, w.Code)
		})
	}
}

func (s *NotificationHandlersSuite) TestMarkAllRead() {
	s.notificationService.EXPECT().MarkAllRead(gomock.Any(), "awesome_login").Times(1).Return(nil)

	request := httptest.NewRequest(http.MethodPost, "/api/user/notifications/read-all", nil)
	request.AddCookie(s.createCookie("awesome_login"))
	w := httptest.NewRecorder()
	s.echo.ServeHTTP(w, request)

	assert.Equal(s.T(), http.StatusOK, w.Code)
}
