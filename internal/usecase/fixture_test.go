package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/avc-dev/referral-service/internal/config"
	"github.com/avc-dev/referral-service/internal/model"
	"github.com/avc-dev/referral-service/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFixtureUsecase(now time.Time) *FixtureUsecase {
	uc := NewFixtureUsecase(config.URLPrefix("https://cartoncaps.link/"), zap.NewNop())
	uc.now = func() time.Time { return now }
	return uc
}

func TestFixtureUsecase_GetReferralCode(t *testing.T) {
	uc := newFixtureUsecase(time.Now())

	for _, userID := range []string{"user-1", "user-2"} {
		got, err := uc.GetReferralCode(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, "XY7G4D", got.Code)
	}
}

func TestFixtureUsecase_GenerateReferralLink(t *testing.T) {
	uc := newFixtureUsecase(time.Now())

	for _, method := range model.ShareMethods() {
		t.Run(method.String(), func(t *testing.T) {
			got, err := uc.GenerateReferralLink(context.Background(), "user-1", method)

			require.NoError(t, err)
			assert.Equal(t, "https://cartoncaps.link/abfilefa90p?referral_code=XY7G4D", got.ReferralLink)
		})
	}
}

func TestFixtureUsecase_GetReferralHistory(t *testing.T) {
	// Arrange
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc := newFixtureUsecase(now)

	// Act
	got, err := uc.GetReferralHistory(context.Background(), "user-1")

	// Assert
	require.NoError(t, err)
	require.Len(t, got, 3)

	wantNames := []string{"Jenny S.", "Archer K.", "Helen Y."}
	wantMethods := []model.ShareMethod{model.ShareMethodText, model.ShareMethodEmail, model.ShareMethodShare}
	wantSchools := []string{"Lincoln Elementary", "Washington Middle School", "Lincoln Elementary"}
	for i, entry := range got {
		assert.Equal(t, wantNames[i], entry.ReferredUserName)
		assert.Equal(t, wantMethods[i], entry.ShareMethod)
		assert.Equal(t, model.ReferralStatusComplete, entry.Status)
		require.NotNil(t, entry.ReferrerSchool)
		assert.Equal(t, wantSchools[i], *entry.ReferrerSchool)
		assert.NoError(t, entry.Validate())
	}

	assert.Equal(t, now.Add(-5*day), got[0].CreatedAt)
	assert.Equal(t, now.Add(-4*day), *got[0].CompletedAt)
	assert.Equal(t, now, *got[2].CompletedAt)
	assert.True(t, got[0].CreatedAt.Before(got[1].CreatedAt))
	assert.True(t, got[1].CreatedAt.Before(got[2].CreatedAt))
}

func TestFixtureUsecase_ValidateReferralCode(t *testing.T) {
	uc := newFixtureUsecase(time.Now())

	t.Run("fixture code", func(t *testing.T) {
		got, err := uc.ValidateReferralCode(context.Background(), "XY7G4D")

		require.NoError(t, err)
		assert.True(t, got.IsValid)
		require.NotNil(t, got.ReferrerSchool)
		assert.Equal(t, "Lincoln Elementary", *got.ReferrerSchool)
		require.NotNil(t, got.OnboardingFlow)
		assert.Equal(t, "referred_user", *got.OnboardingFlow)
	})

	for _, code := range []string{"xy7g4d", "AB12CD", ""} {
		t.Run("invalid "+code, func(t *testing.T) {
			_, err := uc.ValidateReferralCode(context.Background(), code)

			assert.ErrorIs(t, err, ErrInvalidCode)
		})
	}
}

func TestSeed(t *testing.T) {
	// Arrange
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	memory := store.NewStore()

	// Act
	require.NoError(t, Seed(ctx, memory, "user-1", now))
	require.NoError(t, Seed(ctx, memory, "user-1", now.Add(time.Hour)))

	// Assert
	referrer, err := memory.GetReferrerByCode(ctx, FixtureCode)
	require.NoError(t, err)
	assert.Equal(t, "user-1", referrer.UserID)
	assert.Equal(t, FixtureSchool, referrer.School)

	history, err := memory.ListReferrals(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, FixtureHistory(now), history)
}

func TestSeed_CodeTakenByAnotherUser(t *testing.T) {
	ctx := context.Background()
	memory := store.NewStore()
	require.NoError(t, Seed(ctx, memory, "user-1", time.Now()))

	err := Seed(ctx, memory, "user-2", time.Now())

	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}
