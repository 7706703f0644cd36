package pkg

import (
	"errors"
	"fmt"
)

// 错误分级，handler 统一映射为 HTTP 状态码
var (
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrAlreadyRegistered = errors.New("already registered for this activity")
	ErrInvalidInput      = errors.New("invalid input")
)

// 登录失败的机器可读错误码
var (
	ErrUsernameNotFound = errors.New("username not found")
	ErrWrongPassword    = errors.New("wrong password")
)

func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}
