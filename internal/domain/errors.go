package domain

import "errors"

// 业务错误：transport 层统一映射成响应码
var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrAuthFailure       = errors.New("invalid credentials")
	ErrInsufficientStock = errors.New("insufficient stock")
)
