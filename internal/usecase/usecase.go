package usecase

import (
	"context"

	"github.com/avc-dev/referral-service/internal/model"
	"go.uber.org/zap"
)

//go:generate mockery --name ReferralRepository

// ReferralRepository определяет чтение реестра кодов и истории рефералов
type ReferralRepository interface {
	GetReferrerByUserID(ctx context.Context, userID string) (model.Referrer, error)
	GetReferrerByCode(ctx context.Context, code model.Code) (model.Referrer, error)
	ListReferrals(ctx context.Context, userID string) ([]model.ReferralHistoryEntry, error)
}

//go:generate mockery --name ReferralCodeService

// ReferralCodeService выдает коды и ссылки
type ReferralCodeService interface {
	IssueCode(ctx context.Context, userID string) (model.Referrer, bool, error)
	CreateLink(ctx context.Context, referrer model.Referrer, method model.ShareMethod) (model.LinkRecord, error)
}

// ReferralUsecase - реферальная программа поверх хранилища
type ReferralUsecase struct {
	repo    ReferralRepository
	service ReferralCodeService
	logger  *zap.Logger
}

// NewReferralUsecase создает новый экземпляр ReferralUsecase
func NewReferralUsecase(repo ReferralRepository, service ReferralCodeService, logger *zap.Logger) *ReferralUsecase {
	return &ReferralUsecase{
		repo:    repo,
		service: service,
		logger:  logger,
	}
}
