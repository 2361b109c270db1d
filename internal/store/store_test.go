package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/avc-dev/referral-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedEntry(name string, created time.Time, method model.ShareMethod) model.ReferralHistoryEntry {
	completed := created.Add(24 * time.Hour)
	return model.ReferralHistoryEntry{
		ReferredUserName: name,
		Status:           model.ReferralStatusComplete,
		ShareMethod:      method,
		CreatedAt:        created,
		CompletedAt:      &completed,
		ReferrerSchool:   model.StringPtr("Lincoln Elementary"),
	}
}

func TestStore_CreateOrGetCode(t *testing.T) {
	ctx := context.Background()

	t.Run("creates new referrer", func(t *testing.T) {
		// Arrange
		store := NewStore()
		referrer := model.Referrer{UserID: "user-1", Code: "ABC123", School: "Lincoln Elementary"}

		// Act
		result, created, err := store.CreateOrGetCode(ctx, referrer)

		// Assert
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, referrer, result)
	})

	t.Run("returns existing code for same user", func(t *testing.T) {
		// Arrange
		store := NewStore()
		first := model.Referrer{UserID: "user-1", Code: "ABC123"}
		_, _, err := store.CreateOrGetCode(ctx, first)
		require.NoError(t, err)

		// Act
		result, created, err := store.CreateOrGetCode(ctx, model.Referrer{UserID: "user-1", Code: "ZZZ999"})

		// Assert
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, model.Code("ABC123"), result.Code)
	})

	t.Run("code owned by another user", func(t *testing.T) {
		// Arrange
		store := NewStore()
		_, _, err := store.CreateOrGetCode(ctx, model.Referrer{UserID: "user-1", Code: "ABC123"})
		require.NoError(t, err)

		// Act
		_, created, err := store.CreateOrGetCode(ctx, model.Referrer{UserID: "user-2", Code: "ABC123"})

		// Assert
		assert.ErrorIs(t, err, ErrAlreadyExists)
		assert.False(t, created)
	})
}

func TestStore_GetReferrer(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	referrer := model.Referrer{UserID: "test-user", Code: "XY7G4D", School: "Lincoln Elementary"}
	_, _, err := store.CreateOrGetCode(ctx, referrer)
	require.NoError(t, err)

	tests := []struct {
		name    string
		lookup  func() (model.Referrer, error)
		want    model.Referrer
		wantErr error
	}{
		{
			name:   "by user id",
			lookup: func() (model.Referrer, error) { return store.GetReferrerByUserID(ctx, "test-user") },
			want:   referrer,
		},
		{
			name:   "by code",
			lookup: func() (model.Referrer, error) { return store.GetReferrerByCode(ctx, "XY7G4D") },
			want:   referrer,
		},
		{
			name:    "unknown user",
			lookup:  func() (model.Referrer, error) { return store.GetReferrerByUserID(ctx, "nobody") },
			wantErr: ErrNotFound,
		},
		{
			name:    "code lookup is case sensitive",
			lookup:  func() (model.Referrer, error) { return store.GetReferrerByCode(ctx, "xy7g4d") },
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			got, err := tt.lookup()

			// Assert
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStore_Links(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store := NewStore()
	now := time.Now()
	require.NoError(t, store.SaveLink(ctx, model.LinkRecord{ID: "1", UserID: "user-1", ShareMethod: model.ShareMethodText, CreatedAt: now}))
	require.NoError(t, store.SaveLink(ctx, model.LinkRecord{ID: "2", UserID: "user-2", ShareMethod: model.ShareMethodEmail, CreatedAt: now}))
	require.NoError(t, store.SaveLink(ctx, model.LinkRecord{ID: "3", UserID: "user-1", ShareMethod: model.ShareMethodShare, CreatedAt: now}))

	// Act
	require.NoError(t, store.SaveLink(ctx, model.LinkRecord{ID: "4", UserID: "user-2", ShareMethod: model.ShareMethodText, CreatedAt: now}))

	// Assert
	require.Len(t, store.links, 4)
	ids := make([]string, 0, len(store.links))
	for _, link := range store.links {
		ids = append(ids, link.ID)
	}
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids)
}

func TestStore_ListReferrals(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty history is non-nil", func(t *testing.T) {
		store := NewStore()

		entries, err := store.ListReferrals(ctx, "user-1")

		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("sorted by createdAt with stable ties", func(t *testing.T) {
		// Arrange
		store := NewStore()
		require.NoError(t, store.AddReferral(ctx, "user-1", completedEntry("Helen Y.", base.Add(4*24*time.Hour), model.ShareMethodShare)))
		require.NoError(t, store.AddReferral(ctx, "user-1", completedEntry("Jenny S.", base, model.ShareMethodText)))
		require.NoError(t, store.AddReferral(ctx, "user-1", completedEntry("Archer K.", base.Add(2*24*time.Hour), model.ShareMethodEmail)))
		require.NoError(t, store.AddReferral(ctx, "user-1", completedEntry("Tie B.", base.Add(2*24*time.Hour), model.ShareMethodText)))
		require.NoError(t, store.AddReferral(ctx, "user-2", completedEntry("Other", base, model.ShareMethodText)))

		// Act
		entries, err := store.ListReferrals(ctx, "user-1")

		// Assert
		require.NoError(t, err)
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.ReferredUserName)
		}
		assert.Equal(t, []string{"Jenny S.", "Archer K.", "Tie B.", "Helen Y."}, names)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		store := NewStore()
		require.NoError(t, store.AddReferral(ctx, "user-1", completedEntry("Jenny S.", base, model.ShareMethodText)))

		entries, err := store.ListReferrals(ctx, "user-1")
		require.NoError(t, err)
		entries[0].ReferredUserName = "changed"

		again, err := store.ListReferrals(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "Jenny S.", again[0].ReferredUserName)
	})
}

func TestStore_AddReferral_InvalidEntry(t *testing.T) {
	store := NewStore()
	entry := model.ReferralHistoryEntry{
		ReferredUserName: "Jenny S.",
		Status:           model.ReferralStatusComplete,
		ShareMethod:      model.ShareMethodText,
		CreatedAt:        time.Now(),
	}

	err := store.AddReferral(context.Background(), "user-1", entry)

	assert.ErrorIs(t, err, ErrInvalidEntry)
	assert.ErrorIs(t, err, model.ErrCompletedAtMissing)
}

// TestStore_ConcurrentCreate проверяет, что при гонке каждый пользователь получает ровно один код
func TestStore_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			code := model.Code(fmt.Sprintf("C%05d", i))
			_, _, _ = store.CreateOrGetCode(ctx, model.Referrer{UserID: fmt.Sprintf("user-%d", i%5), Code: code})
		}(i)
	}
	wg.Wait()

	for i := range 5 {
		referrer, err := store.GetReferrerByUserID(ctx, fmt.Sprintf("user-%d", i))
		require.NoError(t, err)

		owner, err := store.GetReferrerByCode(ctx, referrer.Code)
		require.NoError(t, err)
		assert.Equal(t, referrer.UserID, owner.UserID)
	}
	assert.Len(t, store.byCode, 5)
}
