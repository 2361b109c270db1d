package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/referral-service/internal/model"
	"github.com/avc-dev/referral-service/internal/store"
	"go.uber.org/zap"
)

// ValidateReferralCode ищет код в реестре по точному совпадению
func (u *ReferralUsecase) ValidateReferralCode(ctx context.Context, code string) (model.ReferralValidation, error) {
	u.logger.Info("validating referral code", zap.String("code", code))

	referrer, err := u.repo.GetReferrerByCode(ctx, model.Code(code))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.ReferralValidation{}, NewInvalidCodeError(code)
		}
		u.logger.Error("failed to look up referral code",
			zap.String("code", code),
			zap.Error(err),
		)
		return model.ReferralValidation{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return validReferral(referrer.School), nil
}

func validReferral(school string) model.ReferralValidation {
	flow := model.OnboardingFlowReferred
	return model.ReferralValidation{
		IsValid:        true,
		ReferrerSchool: model.StringPtr(school),
		OnboardingFlow: &flow,
	}
}
