package errors

import (
	"errors"
	"fmt"
)

// 표준 라이브러리 함수 재노출
var (
	New    = errors.New
	Unwrap = errors.Unwrap
	Is     = errors.Is
	As     = errors.As
)

// Error는 기본 에러 인터페이스를 확장합니다
type Error interface {
	error
	Code() string    // 에러 코드 반환
	Message() string // 클라이언트에 노출 가능한 메시지
	Unwrap() error   // 내부 에러 반환
}

// AppError는 기본 에러 구현체입니다
type AppError struct {
	code    string
	message string
	err     error
}

func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.message, e.err.Error())
	}
	return e.message
}

func (e *AppError) Code() string {
	return e.code
}

// Message는 내부 원인을 제외한 메시지만 반환합니다.
func (e *AppError) Message() string {
	return e.message
}

func (e *AppError) Unwrap() error {
	return e.err
}

// NewAppError는 새 애플리케이션 에러를 생성합니다
func NewAppError(code string, message string, err error) *AppError {
	return &AppError{
		code:    code,
		message: message,
		err:     err,
	}
}

// NotFound는 NOT_FOUND 코드의 에러를 생성합니다
func NotFound(message string) *AppError {
	return NewAppError(ErrNotFound, message, nil)
}

// InvalidArgument는 INVALID_ARGUMENT 코드의 에러를 생성합니다
func InvalidArgument(message string, err error) *AppError {
	return NewAppError(ErrInvalidArgument, message, err)
}

// Internal은 INTERNAL 코드로 내부 에러를 감쌉니다
func Internal(message string, err error) *AppError {
	return NewAppError(ErrInternal, message, err)
}

// CodeOf는 에러 체인에서 AppError 코드를 찾아 반환합니다. 없으면 INTERNAL.
func CodeOf(err error) string {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr.Code()
	}
	return ErrInternal
}
