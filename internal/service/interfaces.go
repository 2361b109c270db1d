package service

import (
	"context"

	"github.com/avc-dev/referral-service/internal/model"
)

//go:generate mockery --name CodeRepository

// CodeRepository определяет методы хранилища, нужные для выдачи кодов и ссылок
type CodeRepository interface {
	// Exists сообщает, занят ли код
	Exists(ctx context.Context, code model.Code) (bool, error)
	// CreateOrGetCode сохраняет код пользователя или возвращает уже выданный.
	// Возвращает store.ErrAlreadyExists, если код занят другим пользователем.
	CreateOrGetCode(ctx context.Context, referrer model.Referrer) (model.Referrer, bool, error)
	SaveLink(ctx context.Context, link model.LinkRecord) error
}

//go:generate mockery --name Generator

// Generator генерирует кандидатов в реферальные коды
type Generator interface {
	GenerateCode() model.Code
}
