package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/avc-dev/referral-service/internal/model"
)

// Seeder - хранилище, в которое загружаются демонстрационные данные
type Seeder interface {
	CreateOrGetCode(ctx context.Context, referrer model.Referrer) (model.Referrer, bool, error)
	AddReferral(ctx context.Context, userID string, entry model.ReferralHistoryEntry) error
}

// Seed выдает пользователю FixtureCode и, если код создан впервые, добавляет
// ему историю демонстрационного режима. Повторный вызов ничего не меняет.
func Seed(ctx context.Context, seeder Seeder, userID string, now time.Time) error {
	_, created, err := seeder.CreateOrGetCode(ctx, model.Referrer{
		UserID: userID,
		Code:   FixtureCode,
		School: FixtureSchool,
	})
	if err != nil {
		return fmt.Errorf("failed to seed referral code: %w", err)
	}
	if !created {
		return nil
	}

	for _, entry := range FixtureHistory(now.UTC()) {
		if err := seeder.AddReferral(ctx, userID, entry); err != nil {
			return fmt.Errorf("failed to seed referral history: %w", err)
		}
	}

	return nil
}
