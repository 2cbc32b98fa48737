package middleware

import (
	"fmt"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"

	"github.com/Hiro-mackay/timeserver/pkg/apperror"
	"github.com/Hiro-mackay/timeserver/pkg/logger"
)

// Recover はパニックをリカバーし、500エラーとして返すミドルウェアを返します
func Recover() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				buf := make([]byte, 4096)
				n := runtime.Stack(buf, false)

				logger.Error(c.Request().Context(), "panic recovered",
					"error", fmt.Sprintf("%v", r),
					"stack", string(buf[:n]),
				)

				err = apperror.NewInternalError(fmt.Errorf("panic: %v", r))
			}()

			return next(c)
		}
	}
}
