package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// SecurityHeadersConfig はセキュリティヘッダー設定を定義します
type SecurityHeadersConfig struct {
	EnableHSTS    bool
	HSTSMaxAge    int
	CSPDirectives string
}

// DefaultSecurityHeadersConfig はJSON API向けのデフォルト設定を返します
func DefaultSecurityHeadersConfig() SecurityHeadersConfig {
	return SecurityHeadersConfig{
		EnableHSTS:    false,
		HSTSMaxAge:    31536000, // 1年
		CSPDirectives: "default-src 'none'; frame-ancestors 'none'",
	}
}

// SecurityHeaders は設定付きセキュリティヘッダーミドルウェアを返します
// 応答は呼び出し時刻に依存するため、キャッシュを禁止します
func SecurityHeaders(cfg SecurityHeadersConfig) echo.MiddlewareFunc {
	hsts := "max-age=" + strconv.Itoa(cfg.HSTSMaxAge) + "; includeSubDomains"

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()

			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Content-Security-Policy", cfg.CSPDirectives)
			h.Set("Referrer-Policy", "no-referrer")
			h.Set("Cache-Control", "no-store")

			// HTTPS強制（本番環境）
			if cfg.EnableHSTS {
				h.Set("Strict-Transport-Security", hsts)
			}

			return next(c)
		}
	}
}
