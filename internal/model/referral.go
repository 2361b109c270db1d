package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// OnboardingFlowReferred - сценарий онбординга для пользователя, пришедшего по реферальному коду
const OnboardingFlowReferred = "referred_user"

// Code - реферальный код пользователя
type Code string

func (c Code) String() string {
	return string(c)
}

// ShareMethod - способ, которым пользователь делится реферальной ссылкой
type ShareMethod string

const (
	ShareMethodText  ShareMethod = "text"
	ShareMethodEmail ShareMethod = "email"
	ShareMethodShare ShareMethod = "share"
)

// ShareMethods возвращает все поддерживаемые способы в порядке объявления
func ShareMethods() []ShareMethod {
	return []ShareMethod{ShareMethodText, ShareMethodEmail, ShareMethodShare}
}

// ParseShareMethod разбирает значение из пути запроса без учёта регистра
func ParseShareMethod(value string) (ShareMethod, bool) {
	method := ShareMethod(strings.ToLower(strings.TrimSpace(value)))
	if !method.Valid() {
		return "", false
	}
	return method, true
}

func (m ShareMethod) Valid() bool {
	switch m {
	case ShareMethodText, ShareMethodEmail, ShareMethodShare:
		return true
	}
	return false
}

func (m ShareMethod) String() string {
	return string(m)
}

// UnmarshalText не пропускает неизвестные значения при чтении из хранилища
func (m *ShareMethod) UnmarshalText(text []byte) error {
	method := ShareMethod(text)
	if !method.Valid() {
		return fmt.Errorf("unknown share method %q", string(text))
	}
	*m = method
	return nil
}

// ReferralStatus - статус реферала, отображаемый клиентом
type ReferralStatus string

const (
	ReferralStatusComplete ReferralStatus = "complete"
)

func (s ReferralStatus) Valid() bool {
	return s == ReferralStatusComplete
}

func (s *ReferralStatus) UnmarshalText(text []byte) error {
	status := ReferralStatus(text)
	if !status.Valid() {
		return fmt.Errorf("unknown referral status %q", string(text))
	}
	*s = status
	return nil
}

// ReferralCode - ответ с реферальным кодом пользователя
type ReferralCode struct {
	Code string `json:"code"`
}

// GeneratedLink - ответ со сгенерированной реферальной ссылкой
type GeneratedLink struct {
	ReferralLink string `json:"referralLink"`
}

var (
	ErrCompletedAtMissing = errors.New("completed referral has no completedAt")
	ErrCompletedAtBefore  = errors.New("completedAt is before createdAt")
)

// ReferralHistoryEntry - запись в истории рефералов пользователя
type ReferralHistoryEntry struct {
	ReferredUserName string         `json:"referredUserName"`
	Status           ReferralStatus `json:"status"`
	ShareMethod      ShareMethod    `json:"shareMethod"`
	CreatedAt        time.Time      `json:"createdAt"`
	CompletedAt      *time.Time     `json:"completedAt"`
	ReferrerSchool   *string        `json:"referrerSchool"`
}

// Validate проверяет инвариант завершённого реферала
func (e ReferralHistoryEntry) Validate() error {
	if e.Status != ReferralStatusComplete {
		return nil
	}
	if e.CompletedAt == nil {
		return ErrCompletedAtMissing
	}
	if e.CompletedAt.Before(e.CreatedAt) {
		return ErrCompletedAtBefore
	}
	return nil
}

// ReferralValidation - результат проверки реферального кода при онбординге
type ReferralValidation struct {
	IsValid        bool    `json:"isValid"`
	ReferrerSchool *string `json:"referrerSchool"`
	OnboardingFlow *string `json:"onboardingFlow"`
}

// Referrer связывает пользователя с его кодом и школой, которую он поддерживает
type Referrer struct {
	UserID string
	Code   Code
	School string
}

// LinkRecord - сгенерированная ссылка, сохраняемая для атрибуции по способу отправки
type LinkRecord struct {
	ID          string
	UserID      string
	Code        Code
	ShareMethod ShareMethod
	URL         string
	CreatedAt   time.Time
}

// StringPtr возвращает указатель на строку или nil для пустой строки
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
