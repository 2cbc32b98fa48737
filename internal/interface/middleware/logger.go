package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Hiro-mackay/timeserver/pkg/logger"
)

// Logger はリクエストロギングミドルウェアを返します
// ステータスが5xxならError、4xxならWarn、それ以外はInfoで出力します
func Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// ステータスを確定させるため、ここでエラーハンドラーを呼ぶ
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status

			logger.WithContext(req.Context()).Log(req.Context(), levelFor(status), "request",
				"method", req.Method,
				"uri", req.RequestURI,
				"route", c.Path(),
				"status", status,
				"latency_ms", time.Since(start).Milliseconds(),
				"ip", c.RealIP(),
				"user_agent", req.UserAgent(),
				"bytes_out", c.Response().Size,
			)

			return nil
		}
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
