package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/pipsmade/platform/internal/apperrors"
	"github.com/pipsmade/platform/internal/middleware"
	"github.com/pipsmade/platform/internal/wallet/handler/dto"
)

// WalletService mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_wallet_service.go -package=mock github.com/pipsmade/platform/internal/wallet/handler WalletService
type WalletService interface {
	GetByUser(ctx context.Context, userLogin string) ([]dto.WalletResponse, error)
}

type WalletHandler struct {
	walletService WalletService
	logger        *zap.Logger
}

func NewWalletHandler(e *echo.Echo, service WalletService, logger *zap.Logger, jwtAuth *middleware.JWTAuth) *WalletHandler {
	handler := &WalletHandler{
		walletService: service,
		logger:        logger,
	}

	protected := e.Group("/api/user", jwtAuth.JWTAuth())
	protected.GET("/wallets", handler.GetWallets)

	return handler
}

// @Summary       Get user wallets
// @Description   Get the user's per-asset ledger balances.
// @Tags          Wallet API
// @Produce       json
// @Success       200    {array}    dto.WalletResponse
// @Failure       401
// @Failure       500
// @Security      JWT
// @Router        /api/user/wallets [get]
func (h *WalletHandler) GetWallets(c echo.Context) error {
	userLogin, ok := c.Get("userLogin").(string)
	if !ok {
		h.logger.Error("Internal server error", zap.Error(apperrors.ErrUnableToGetUserLoginFromContext))
		return c.NoContent(http.StatusInternalServerError)
	}

	wallets, err := h.walletService.GetByUser(c.Request().Context(), userLogin)
	if err != nil {
		h.logger.Error("Internal server error: unable to get wallets", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, wallets)
}
