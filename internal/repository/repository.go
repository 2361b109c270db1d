package repository

import (
	"context"

	"github.com/avc-dev/referral-service/internal/model"
)

// Store - хранилище, поверх которого работает репозиторий
type Store interface {
	CreateOrGetCode(ctx context.Context, referrer model.Referrer) (model.Referrer, bool, error)
	GetReferrerByUserID(ctx context.Context, userID string) (model.Referrer, error)
	GetReferrerByCode(ctx context.Context, code model.Code) (model.Referrer, error)
	SaveLink(ctx context.Context, link model.LinkRecord) error
	AddReferral(ctx context.Context, userID string, entry model.ReferralHistoryEntry) error
	ListReferrals(ctx context.Context, userID string) ([]model.ReferralHistoryEntry, error)
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}
