// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("resource conflict") // slug / custom_domain の重複エラー用
)

// ErrorDetail はクライアントに返すエラーの詳細情報
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はエラーコード・メッセージを保持するカスタムエラー型です。
// Unwrap で根本原因 (ErrNotFound など) を返すため、errors.Is での判定が可能です。
type AppError struct {
	Detail ErrorDetail
	cause  error
}

func NewAppError(code, message, field string, cause error) *AppError {
	return &AppError{
		Detail: ErrorDetail{
			Code:    code,
			Message: message,
			Field:   field,
		},
		cause: cause,
	}
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return e.Detail.Message + ": " + e.cause.Error()
	}
	return e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}
