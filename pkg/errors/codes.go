package errors

import "net/http"

// 공통 에러 코드 정의
const (
	ErrInternal        = "INTERNAL"
	ErrNotFound        = "NOT_FOUND"
	ErrInvalidArgument = "INVALID_ARGUMENT"
	ErrTooManyRequests = "TOO_MANY_REQUESTS"
	ErrUnavailable     = "UNAVAILABLE"
)

// 코드 → HTTP 상태 매핑 테이블
var statusMapping = map[string]int{
	ErrInternal:        http.StatusInternalServerError,
	ErrNotFound:        http.StatusNotFound,
	ErrInvalidArgument: http.StatusBadRequest,
	ErrTooManyRequests: http.StatusTooManyRequests,
	ErrUnavailable:     http.StatusServiceUnavailable,
}

// ToHTTPStatus는 에러 코드를 HTTP 상태 코드로 변환합니다.
// 등록되지 않은 코드는 500으로 처리합니다.
func ToHTTPStatus(code string) int {
	if status, ok := statusMapping[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
