package errors

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPResponse는 에러를 HTTP 상태 코드와 응답 메시지로 변환합니다.
// 내부 원인(DB 드라이버 메시지 등)은 응답에 포함하지 않습니다.
func HTTPResponse(err error) (int, string) {
	var appErr *AppError
	if As(err, &appErr) {
		return ToHTTPStatus(appErr.Code()), appErr.Message()
	}

	var echoErr *echo.HTTPError
	if As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return echoErr.Code, msg
		}
		return echoErr.Code, http.StatusText(echoErr.Code)
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// FromHTTPStatus는 HTTP 상태 코드를 내부 에러 코드로 변환합니다
func FromHTTPStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		return ErrInvalidArgument
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	case http.StatusServiceUnavailable:
		return ErrUnavailable
	default:
		return ErrInternal
	}
}
