package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CORSConfig はCORS設定を定義します
type CORSConfig struct {
	AllowOrigins []string
	MaxAge       int
}

// DefaultCORSConfig はデフォルトCORS設定を返します
// 読み取り専用APIのため、全オリジンからのGETを許可します
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins: []string{"*"},
		MaxAge:       86400, // 24時間
	}
}

// CORS は設定付きCORSミドルウェアを返します
func CORS(cfg CORSConfig) echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.AllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderContentType, HeaderRequestID},
		ExposeHeaders: []string{HeaderRequestID},
		MaxAge:        cfg.MaxAge,
	})
}
