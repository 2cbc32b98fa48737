package di

import (
	"github.com/labstack/echo/v4"

	"github.com/Hiro-mackay/timeserver/internal/interface/middleware"
	"github.com/Hiro-mackay/timeserver/pkg/config"
)

// Middlewares はアプリケーション全体に適用するミドルウェアを保持します
type Middlewares struct {
	Security middleware.SecurityHeadersConfig
	CORS     middleware.CORSConfig
}

// NewMiddlewares は設定からミドルウェア設定を初期化します
func NewMiddlewares(cfg *config.Config) *Middlewares {
	security := middleware.DefaultSecurityHeadersConfig()
	security.EnableHSTS = cfg.Security.EnableHSTS

	cors := middleware.DefaultCORSConfig()
	if origins := cfg.Security.AllowOrigins(); len(origins) > 0 {
		cors.AllowOrigins = origins
	}

	return &Middlewares{
		Security: security,
		CORS:     cors,
	}
}

// Global は適用順に並べたグローバルミドルウェアを返します
// RequestID → Logger → Recover の順で、ログには常にリクエストIDが付与されます
func (m *Middlewares) Global() []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recover(),
		middleware.SecurityHeaders(m.Security),
		middleware.CORS(m.CORS),
	}
}
