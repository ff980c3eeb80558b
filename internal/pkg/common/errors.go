package common

import (
	"errors"
	"net/http"
)

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Code    string `json:"code"`              // 錯誤代碼
	Message string `json:"message"`           // 錯誤信息
	Details string `json:"details,omitempty"` // 詳細信息（僅在開發模式顯示）
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 錯誤信息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap 返回原始錯誤
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Is 以錯誤代碼比對，讓 errors.Is 能匹配預定義錯誤
func (e *CustomError) Is(target error) bool {
	var t *CustomError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Wrap 以相同代碼包裝原始錯誤
func (e *CustomError) Wrap(err error) *CustomError {
	return NewError(e.Code, e.Message, e.Status, err)
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// ValidationError 表示驗證錯誤
type ValidationError struct {
	Code    string
	message string
}

// Error 實現 error 介面
func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError 創建新的驗證錯誤
func NewValidationError(message string) error {
	return &ValidationError{
		Code:    ErrCodeInvalidRequest,
		message: message,
	}
}

// NewValidationErrorWithCode 創建帶有業務代碼的驗證錯誤
func NewValidationErrorWithCode(code, message string) error {
	return &ValidationError{
		Code:    code,
		message: message,
	}
}

// IsValidationError 檢查是否為驗證錯誤
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// ToErrorResponse 將錯誤轉為 HTTP 狀態碼與響應
func ToErrorResponse(err error) (int, ErrorResponse) {
	var v *ValidationError
	if errors.As(err, &v) {
		return http.StatusBadRequest, ErrorResponse{Code: v.Code, Message: v.message}
	}
	var c *CustomError
	if errors.As(err, &c) {
		resp := ErrorResponse{Code: c.Code, Message: c.Message}
		if c.Err != nil {
			resp.Details = c.Err.Error()
		}
		return c.Status, resp
	}
	return http.StatusInternalServerError, ErrorResponse{
		Code:    ErrCodeInternalError,
		Message: ErrInternalError.Message,
	}
}

// 預定義錯誤代碼
const (
	// 客戶端錯誤 (4xx)
	ErrCodeInvalidRequest    = "INVALID_REQUEST"    // 400
	ErrCodeInvalidMultiplier = "INVALID_MULTIPLIER" // 400
	ErrCodePayloadTooLarge   = "PAYLOAD_TOO_LARGE"  // 413
	ErrCodeTooManyRequests   = "TOO_MANY_REQUESTS"  // 429

	// 服務器錯誤 (5xx)
	ErrCodeInternalError  = "INTERNAL_ERROR"  // 500
	ErrCodeGatewayTimeout = "GATEWAY_TIMEOUT" // 504
)

// 預定義錯誤
var (
	// 客戶端錯誤
	ErrInvalidRequest    = NewError(ErrCodeInvalidRequest, "無效的請求", http.StatusBadRequest, nil)
	ErrInvalidMultiplier = NewError(ErrCodeInvalidMultiplier, "倍率超出允許範圍", http.StatusBadRequest, nil)
	ErrPayloadTooLarge   = NewError(ErrCodePayloadTooLarge, "請求內容過大", http.StatusRequestEntityTooLarge, nil)
	ErrTooManyRequests   = NewError(ErrCodeTooManyRequests, "請求過於頻繁", http.StatusTooManyRequests, nil)

	// 服務器錯誤
	ErrInternalError  = NewError(ErrCodeInternalError, "服務器內部錯誤", http.StatusInternalServerError, nil)
	ErrGatewayTimeout = NewError(ErrCodeGatewayTimeout, "網關超時", http.StatusGatewayTimeout, nil)

	// 業務錯誤
	ErrAdvisorError = NewError("ADVISOR_ERROR", "建議服務錯誤", http.StatusServiceUnavailable, nil)
)
