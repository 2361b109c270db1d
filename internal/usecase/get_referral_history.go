package usecase

import (
	"context"
	"fmt"

	"github.com/avc-dev/referral-service/internal/model"
	"github.com/avc-dev/referral-service/internal/store"
	"go.uber.org/zap"
)

// GetReferralHistory возвращает рефералов пользователя по возрастанию createdAt.
// Пустая история - пустой срез, не nil.
func (u *ReferralUsecase) GetReferralHistory(ctx context.Context, userID string) ([]model.ReferralHistoryEntry, error) {
	u.logger.Info("getting referral history", zap.String("user_id", userID))

	entries, err := u.repo.ListReferrals(ctx, userID)
	if err != nil {
		u.logger.Error("failed to list referrals",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	if entries == nil {
		return []model.ReferralHistoryEntry{}, nil
	}

	store.SortHistory(entries)

	return entries, nil
}
