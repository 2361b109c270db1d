package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/referral-service/internal/model"
	"github.com/avc-dev/referral-service/internal/store"
)

func (r *Repository) CreateOrGetCode(ctx context.Context, referrer model.Referrer) (model.Referrer, bool, error) {
	result, created, err := r.underlying.CreateOrGetCode(ctx, referrer)
	if err != nil {
		return model.Referrer{}, false, fmt.Errorf("failed to create or get referral code: %w", err)
	}

	return result, created, nil
}

func (r *Repository) GetReferrerByUserID(ctx context.Context, userID string) (model.Referrer, error) {
	referrer, err := r.underlying.GetReferrerByUserID(ctx, userID)
	if err != nil {
		return model.Referrer{}, fmt.Errorf("failed to get referrer by user ID: %w", err)
	}

	return referrer, nil
}

func (r *Repository) GetReferrerByCode(ctx context.Context, code model.Code) (model.Referrer, error) {
	referrer, err := r.underlying.GetReferrerByCode(ctx, code)
	if err != nil {
		return model.Referrer{}, fmt.Errorf("failed to get referrer by code: %w", err)
	}

	return referrer, nil
}

// Exists проверяет, занят ли код.
// Ошибка возвращается только при проблемах с хранилищем, не при "not found".
func (r *Repository) Exists(ctx context.Context, code model.Code) (bool, error) {
	_, err := r.underlying.GetReferrerByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}

	return true, nil
}
