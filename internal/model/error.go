package model

// ErrorCode - машиночитаемый код ошибки в теле ответа
type ErrorCode string

const (
	ErrorCodeInvalidCode          ErrorCode = "invalid_code"
	ErrorCodeInvalidShareMethod   ErrorCode = "invalid_share_method"
	ErrorCodeRateLimitExceeded    ErrorCode = "rate_limit_exceeded"
	ErrorCodeLinkGenerationFailed ErrorCode = "link_generation_failed"

	ErrorCodeUnauthorized     ErrorCode = "unauthorized"
	ErrorCodeNotFound         ErrorCode = "not_found"
	ErrorCodeMethodNotAllowed ErrorCode = "method_not_allowed"
	ErrorCodeInternal         ErrorCode = "internal_error"
)

func (c ErrorCode) String() string {
	return string(c)
}

// ErrorPayload - единый формат тела всех ответов с ошибкой
type ErrorPayload struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}
