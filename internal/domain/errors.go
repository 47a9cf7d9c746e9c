package domain

import "errors"

// 定义通用业务错误
var (
	ErrNotFound        = errors.New("resource not found")
	ErrAlreadyExists   = errors.New("resource already exists")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrUpstreamFailure = errors.New("upstream failure")
)

// AppError 应用错误，包含错误码和消息
type AppError struct {
	Code    int    // HTTP 状态码
	Message string // 用户友好的错误消息
	Details string // 附加细节 (可选)，原样返回给客户端
	Err     error  // 原始错误
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails attaches client-visible details to the error.
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// 创建常见错误的便捷函数
func NewNotFoundError(msg string) *AppError {
	return &AppError{Code: 404, Message: msg, Err: ErrNotFound}
}

func NewBadRequestError(msg string) *AppError {
	return &AppError{Code: 400, Message: msg, Err: ErrInvalidInput}
}

// NewDuplicateError 重复资源 (如邮箱已注册)，客户端看到的是 400
func NewDuplicateError(msg string) *AppError {
	return &AppError{Code: 400, Message: msg, Err: ErrAlreadyExists}
}

func NewUnauthorizedError(msg string) *AppError {
	return &AppError{Code: 401, Message: msg, Err: ErrUnauthorized}
}

func NewForbiddenError(msg string) *AppError {
	return &AppError{Code: 403, Message: msg, Err: ErrForbidden}
}

// NewUpstreamError AI 网关等外部依赖失败
func NewUpstreamError(msg, details string) *AppError {
	return &AppError{Code: 500, Message: msg, Details: details, Err: ErrUpstreamFailure}
}

func NewInternalError(msg string, err error) *AppError {
	return &AppError{Code: 500, Message: msg, Err: err}
}
