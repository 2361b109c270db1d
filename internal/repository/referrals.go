package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/referral-service/internal/model"
)

func (r *Repository) AddReferral(ctx context.Context, userID string, entry model.ReferralHistoryEntry) error {
	if err := r.underlying.AddReferral(ctx, userID, entry); err != nil {
		return fmt.Errorf("failed to add referral: %w", err)
	}
	return nil
}

func (r *Repository) ListReferrals(ctx context.Context, userID string) ([]model.ReferralHistoryEntry, error) {
	entries, err := r.underlying.ListReferrals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list referrals: %w", err)
	}
	return entries, nil
}
