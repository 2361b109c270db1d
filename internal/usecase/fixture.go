package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/avc-dev/referral-service/internal/config"
	"github.com/avc-dev/referral-service/internal/model"
	"go.uber.org/zap"
)

// Данные демонстрационного режима
const (
	FixtureCode   model.Code = "XY7G4D"
	FixtureSchool            = "Lincoln Elementary"
	fixtureSlug              = "abfilefa90p"
)

const day = 24 * time.Hour

// FixtureUsecase отвечает фиксированными данными независимо от пользователя.
// Валидным считается только FixtureCode.
type FixtureUsecase struct {
	link   string
	logger *zap.Logger
	now    func() time.Time
}

// NewFixtureUsecase создает новый экземпляр FixtureUsecase
func NewFixtureUsecase(linkBase config.URLPrefix, logger *zap.Logger) *FixtureUsecase {
	return &FixtureUsecase{
		link:   fmt.Sprintf("%s%s?referral_code=%s", linkBase.String(), fixtureSlug, FixtureCode),
		logger: logger,
		now:    time.Now,
	}
}

func (u *FixtureUsecase) GetReferralCode(_ context.Context, userID string) (model.ReferralCode, error) {
	u.logger.Info("getting referral code", zap.String("user_id", userID))

	return model.ReferralCode{Code: FixtureCode.String()}, nil
}

func (u *FixtureUsecase) GenerateReferralLink(_ context.Context, userID string, method model.ShareMethod) (model.GeneratedLink, error) {
	u.logger.Info("generating referral link",
		zap.String("user_id", userID),
		zap.String("share_method", method.String()),
	)

	return model.GeneratedLink{ReferralLink: u.link}, nil
}

func (u *FixtureUsecase) GetReferralHistory(_ context.Context, userID string) ([]model.ReferralHistoryEntry, error) {
	u.logger.Info("getting referral history", zap.String("user_id", userID))

	return FixtureHistory(u.now().UTC()), nil
}

func (u *FixtureUsecase) ValidateReferralCode(_ context.Context, code string) (model.ReferralValidation, error) {
	u.logger.Info("validating referral code", zap.String("code", code))

	if model.Code(code) != FixtureCode {
		return model.ReferralValidation{}, NewInvalidCodeError(code)
	}

	return validReferral(FixtureSchool), nil
}

// FixtureHistory - три завершенных реферала относительно now, по возрастанию createdAt
func FixtureHistory(now time.Time) []model.ReferralHistoryEntry {
	entry := func(name string, method model.ShareMethod, createdAgo, completedAgo time.Duration, school string) model.ReferralHistoryEntry {
		completed := now.Add(-completedAgo)
		return model.ReferralHistoryEntry{
			ReferredUserName: name,
			Status:           model.ReferralStatusComplete,
			ShareMethod:      method,
			CreatedAt:        now.Add(-createdAgo),
			CompletedAt:      &completed,
			ReferrerSchool:   model.StringPtr(school),
		}
	}

	return []model.ReferralHistoryEntry{
		entry("Jenny S.", model.ShareMethodText, 5*day, 4*day, FixtureSchool),
		entry("Archer K.", model.ShareMethodEmail, 3*day, 2*day, "Washington Middle School"),
		entry("Helen Y.", model.ShareMethodShare, 1*day, 0, FixtureSchool),
	}
}
