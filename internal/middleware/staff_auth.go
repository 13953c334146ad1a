package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/pipsmade/platform/internal/apperrors"
)

// StaffChecker mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_staff_checker.go -package=mock github.com/pipsmade/platform/internal/middleware StaffChecker
type StaffChecker interface {
	IsStaff(ctx context.Context, login string) (bool, error)
}

// StaffAuth gates operator-only routes, must be registered after JWTAuth.
type StaffAuth struct {
	staffChecker StaffChecker
	logger       *zap.Logger
}

func InitStaffAuth(staffChecker StaffChecker, logger *zap.Logger) *StaffAuth {
	s := &StaffAuth{
		staffChecker: staffChecker,
		logger:       logger,
	}
	return s
}

func (s *StaffAuth) StaffAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userLogin, ok := c.Get("userLogin").(string)
			if !ok {
				s.logger.Error("Internal server error", zap.Error(apperrors.ErrUnableToGetUserLoginFromContext))
				return c.NoContent(http.StatusInternalServerError)
			}

			isStaff, err := s.staffChecker.IsStaff(c.Request().Context(), userLogin)
			if err != nil {
				s.logger.Error("Internal server error: unable to check staff flag", zap.Error(err))
				return c.NoContent(http.StatusInternalServerError)
			}

			if !isStaff {
				s.logger.Info("authorization failed: not a staff user", zap.String("userLogin", userLogin))
				return c.NoContent(http.StatusForbidden)
			}

			return next(c)
		}
	}
}
