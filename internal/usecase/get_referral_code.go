package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/referral-service/internal/model"
	"github.com/avc-dev/referral-service/internal/store"
	"go.uber.org/zap"
)

// GetReferralCode возвращает код пользователя, выдавая его при первом обращении
func (u *ReferralUsecase) GetReferralCode(ctx context.Context, userID string) (model.ReferralCode, error) {
	u.logger.Info("getting referral code", zap.String("user_id", userID))

	referrer, err := u.referrerFor(ctx, userID)
	if err != nil {
		return model.ReferralCode{}, err
	}

	return model.ReferralCode{Code: referrer.Code.String()}, nil
}

// referrerFor находит запись пользователя или выдает ему новый код
func (u *ReferralUsecase) referrerFor(ctx context.Context, userID string) (model.Referrer, error) {
	referrer, err := u.repo.GetReferrerByUserID(ctx, userID)
	if err == nil {
		return referrer, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		u.logger.Error("failed to get referrer",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return model.Referrer{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	referrer, created, err := u.service.IssueCode(ctx, userID)
	if err != nil {
		u.logger.Error("failed to issue referral code",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return model.Referrer{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	if created {
		u.logger.Info("issued referral code",
			zap.String("user_id", userID),
			zap.String("code", referrer.Code.String()),
		)
	}

	return referrer, nil
}
