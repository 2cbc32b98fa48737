package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Hiro-mackay/timeserver/pkg/logger"
)

const (
	HeaderRequestID     = "X-Request-ID"
	ContextKeyRequestID = "request_id"

	// maxRequestIDLength を超えるクライアント指定のIDは採用しません
	maxRequestIDLength = 128
)

// RequestID はリクエストIDを生成・設定するミドルウェアを返します
// IDはecho.Contextとリクエストのcontext.Contextの両方に設定されます
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(HeaderRequestID)
			if requestID == "" || len(requestID) > maxRequestIDLength {
				requestID = uuid.New().String()
			}

			c.Set(ContextKeyRequestID, requestID)
			c.Response().Header().Set(HeaderRequestID, requestID)

			req := c.Request()
			c.SetRequest(req.WithContext(logger.ContextWithRequestID(req.Context(), requestID)))

			return next(c)
		}
	}
}

// GetRequestID はコンテキストからリクエストIDを取得します
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(ContextKeyRequestID).(string); ok {
		return id
	}
	return ""
}
