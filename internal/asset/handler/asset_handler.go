package handler

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/pipsmade/platform/internal/asset/handler/dto"
	"github.com/pipsmade/platform/internal/middleware"
)

// AssetService mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_asset_service.go -package=mock github.com/pipsmade/platform/internal/asset/handler AssetService
type AssetService interface {
	GetActive(ctx context.Context) ([]dto.AssetResponse, error)
	Upsert(ctx context.Context, request dto.AssetUpsertRequest) error
}

type AssetHandler struct {
	assetService AssetService
	logger       *zap.Logger
}

func NewAssetHandler(e *echo.Echo, service AssetService, logger *zap.Logger, jwtAuth *middleware.JWTAuth, staffAuth *middleware.StaffAuth) *AssetHandler {
	handler := &AssetHandler{
		assetService: service,
		logger:       logger,
	}

	protected := e.Group("/api/assets", jwtAuth.JWTAuth())
	protected.GET("", handler.GetAssets)

	admin := e.Group("/api/admin/assets", jwtAuth.JWTAuth(), staffAuth.StaffAuth())
	admin.POST("", handler.UpsertAsset)

	return handler
}

// @Summary       List active assets
// @Description   List assets the platform currently accepts with deposit addresses and fee policy.
// @Tags          Asset API
// @Produce       json
// @Success       200    {array}    dto.AssetResponse
// @Failure       401
// @Failure       500
// @Security      JWT
// @Router        /api/assets [get]
func (h *AssetHandler) GetAssets(c echo.Context) error {
	assets, err := h.assetService.GetActive(c.Request().Context())
	if err != nil {
		h.logger.Error("Internal server error: unable to get assets", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, assets)
}

// @Summary       Create or update an asset
// @Description   Operator-only upsert of an asset configuration.
// @Tags          Asset API
// @Accept        json
// @Param         asset   body       dto.AssetUpsertRequest   true   "Asset configuration."
// @Success       200
// @Failure       400
// @Failure       401
// @Failure       403
// @Failure       500
// @Security      JWT
// @Router        /api/admin/assets [post]
func (h *AssetHandler) UpsertAsset(c echo.Context) error {
	request := new(dto.AssetUpsertRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	requestValidator := validator.New()
	if validateErr := requestValidator.Struct(request); validateErr != nil {
		h.logger.Warn("Bad Request: invalid request", zap.Error(validateErr))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	if err := h.assetService.Upsert(c.Request().Context(), *request); err != nil {
		h.logger.Error("Internal server error: unable to upsert asset", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}
