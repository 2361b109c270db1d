package usecase

import (
	"context"

	"github.com/avc-dev/referral-service/internal/model"
	"go.uber.org/zap"
)

// GenerateReferralLink формирует ссылку для способа отправки и сохраняет её для атрибуции
func (u *ReferralUsecase) GenerateReferralLink(ctx context.Context, userID string, method model.ShareMethod) (model.GeneratedLink, error) {
	u.logger.Info("generating referral link",
		zap.String("user_id", userID),
		zap.String("share_method", method.String()),
	)

	referrer, err := u.referrerFor(ctx, userID)
	if err != nil {
		return model.GeneratedLink{}, err
	}

	link, err := u.service.CreateLink(ctx, referrer, method)
	if err != nil {
		u.logger.Error("failed to create referral link",
			zap.String("user_id", userID),
			zap.String("share_method", method.String()),
			zap.Error(err),
		)
		return model.GeneratedLink{}, NewLinkGenerationError(err)
	}

	return model.GeneratedLink{ReferralLink: link.URL}, nil
}
