package middleware

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func Compress() echo.MiddlewareFunc {
	return echomiddleware.Gzip()
}

func Decompress() echo.MiddlewareFunc {
	return echomiddleware.Decompress()
}
