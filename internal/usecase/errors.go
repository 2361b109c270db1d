package usecase

import (
	"errors"
	"fmt"

	"github.com/avc-dev/referral-service/internal/model"
)

var (
	ErrInvalidCode        = errors.New("referral code not found")
	ErrLinkGeneration     = errors.New("referral link generation failed")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// Сообщения для клиента в теле ошибки
const (
	MessageInvalidCode          = "The specified referral code was not found"
	MessageLinkGenerationFailed = "Failed to generate referral link"
)

// ReferralError - ожидаемый отказ операции, который обработчик отдает клиенту
// с машиночитаемым кодом. Проверяется через errors.As.
type ReferralError struct {
	Code    model.ErrorCode
	Message string
	Err     error
}

func (e ReferralError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
}

func (e ReferralError) Unwrap() error {
	return e.Err
}

// NewInvalidCodeError - код не найден или не прошел проверку формата
func NewInvalidCodeError(code string) error {
	return ReferralError{
		Code:    model.ErrorCodeInvalidCode,
		Message: MessageInvalidCode,
		Err:     fmt.Errorf("%w: %q", ErrInvalidCode, code),
	}
}

// NewLinkGenerationError - не удалось сформировать или сохранить ссылку
func NewLinkGenerationError(err error) error {
	return ReferralError{
		Code:    model.ErrorCodeLinkGenerationFailed,
		Message: MessageLinkGenerationFailed,
		Err:     fmt.Errorf("%w: %w", ErrLinkGeneration, err),
	}
}
