package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/referral-service/internal/model"
)

func (r *Repository) SaveLink(ctx context.Context, link model.LinkRecord) error {
	if err := r.underlying.SaveLink(ctx, link); err != nil {
		return fmt.Errorf("failed to save referral link: %w", err)
	}
	return nil
}
