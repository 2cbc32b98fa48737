package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Hiro-mackay/timeserver/pkg/apperror"
	"github.com/Hiro-mackay/timeserver/pkg/logger"
)

// ErrorResponse はエラーレスポンス構造を定義します
type ErrorResponse struct {
	Error ErrorBody   `json:"error"`
	Meta  interface{} `json:"meta"`
}

// ErrorBody はエラー本体を定義します
type ErrorBody struct {
	Code    string                `json:"code"`
	Message string                `json:"message"`
	Details []apperror.FieldError `json:"details,omitempty"`
}

// CustomHTTPErrorHandler はカスタムエラーハンドラーです
// AppErrorのメッセージはそのままクライアントへ返却します
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	ctx := c.Request().Context()

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		// Echo HTTPError (ルート不在、メソッド不一致、バインド失敗など)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			appErr = fromHTTPError(he)
		}
	}

	if appErr != nil {
		switch {
		case appErr.HasCode(apperror.CodeInternalError):
			logger.Error(ctx, "internal error", "error", appErr.Error())
		case appErr.HTTPStatus >= 500:
			logger.Warn(ctx, "service error", "error", appErr.Error())
		}
		writeError(c, appErr.HTTPStatus, ErrorBody{
			Code:    string(appErr.Code),
			Message: appErr.Message,
			Details: appErr.Details,
		})
		return
	}

	// 未知のエラー
	logger.Error(ctx, "unknown error", "error", err.Error())
	writeError(c, http.StatusInternalServerError, ErrorBody{
		Code:    string(apperror.CodeInternalError),
		Message: "internal server error",
	})
}

func writeError(c echo.Context, status int, body ErrorBody) {
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, ErrorResponse{Error: body})
}

// fromHTTPError はEcho HTTPErrorをAppErrorに変換します
func fromHTTPError(he *echo.HTTPError) *apperror.AppError {
	message := fmt.Sprintf("%v", he.Message)
	switch he.Code {
	case http.StatusNotFound:
		return apperror.NewNotFoundError("route")
	case http.StatusServiceUnavailable:
		return apperror.NewServiceUnavailableError(message)
	}
	return &apperror.AppError{
		Code:       apperror.ErrorCode(httpErrorCode(he.Code)),
		Message:    message,
		HTTPStatus: he.Code,
		Err:        he.Internal,
	}
}

// httpErrorCode はHTTPステータスをエラーコードに変換します
func httpErrorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return string(apperror.CodeInvalidRequest)
	case http.StatusNotFound:
		return string(apperror.CodeNotFound)
	case http.StatusServiceUnavailable:
		return string(apperror.CodeServiceUnavailable)
	}
	if status >= 500 {
		return string(apperror.CodeInternalError)
	}
	return http.StatusText(status)
}
