package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/referral-service/internal/config/db"
	"github.com/avc-dev/referral-service/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

// DatabaseStore реализует хранилище рефералов в PostgreSQL
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(database db.Database) *DatabaseStore {
	return &DatabaseStore{
		pool: database.Pool(),
	}
}

// CreateOrGetCode вставляет код пользователя или возвращает уже сохранённый.
// Конфликт по коду другого пользователя возвращает ErrAlreadyExists.
func (ds *DatabaseStore) CreateOrGetCode(ctx context.Context, referrer model.Referrer) (model.Referrer, bool, error) {
	query := `
		INSERT INTO referral_codes (user_id, code, school)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING
		RETURNING user_id, code, school
	`

	result, err := scanReferrer(ds.pool.QueryRow(ctx, query, referrer.UserID, referrer.Code.String(), referrer.School))
	if err == nil {
		return result, true, nil
	}

	if isUniqueViolation(err) {
		return model.Referrer{}, false, fmt.Errorf("code %s: %w", referrer.Code, ErrAlreadyExists)
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return model.Referrer{}, false, fmt.Errorf("failed to insert referral code: %w", err)
	}

	// Код уже есть у пользователя
	existing, err := ds.GetReferrerByUserID(ctx, referrer.UserID)
	if err != nil {
		return model.Referrer{}, false, err
	}

	return existing, false, nil
}

func (ds *DatabaseStore) GetReferrerByUserID(ctx context.Context, userID string) (model.Referrer, error) {
	query := `
		SELECT user_id, code, school
		FROM referral_codes
		WHERE user_id = $1
	`

	referrer, err := scanReferrer(ds.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Referrer{}, fmt.Errorf("user %s: %w", userID, ErrNotFound)
		}
		return model.Referrer{}, fmt.Errorf("failed to read referral code: %w", err)
	}

	return referrer, nil
}

func (ds *DatabaseStore) GetReferrerByCode(ctx context.Context, code model.Code) (model.Referrer, error) {
	query := `
		SELECT user_id, code, school
		FROM referral_codes
		WHERE code = $1
	`

	referrer, err := scanReferrer(ds.pool.QueryRow(ctx, query, code.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Referrer{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return model.Referrer{}, fmt.Errorf("failed to read referral code: %w", err)
	}

	return referrer, nil
}

func (ds *DatabaseStore) SaveLink(ctx context.Context, link model.LinkRecord) error {
	query := `
		INSERT INTO referral_links (id, user_id, code, share_method, url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := ds.pool.Exec(ctx, query,
		link.ID, link.UserID, link.Code.String(), link.ShareMethod.String(), link.URL, link.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert referral link: %w", err)
	}

	return nil
}

func (ds *DatabaseStore) AddReferral(ctx context.Context, userID string, entry model.ReferralHistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}

	query := `
		INSERT INTO referrals (referrer_user_id, referred_user_name, status, share_method, created_at, completed_at, referrer_school)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := ds.pool.Exec(ctx, query,
		userID,
		entry.ReferredUserName,
		string(entry.Status),
		entry.ShareMethod.String(),
		entry.CreatedAt,
		entry.CompletedAt,
		entry.ReferrerSchool,
	)
	if err != nil {
		return fmt.Errorf("failed to insert referral: %w", err)
	}

	return nil
}

// ListReferrals возвращает историю по возрастанию createdAt, равные упорядочены по id вставки
func (ds *DatabaseStore) ListReferrals(ctx context.Context, userID string) ([]model.ReferralHistoryEntry, error) {
	query := `
		SELECT referred_user_name, status, share_method, created_at, completed_at, referrer_school
		FROM referrals
		WHERE referrer_user_id = $1
		ORDER BY created_at, id
	`

	rows, err := ds.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query referrals: %w", err)
	}
	defer rows.Close()

	entries := []model.ReferralHistoryEntry{}
	for rows.Next() {
		var (
			entry  model.ReferralHistoryEntry
			status string
			method string
		)
		err := rows.Scan(&entry.ReferredUserName, &status, &method, &entry.CreatedAt, &entry.CompletedAt, &entry.ReferrerSchool)
		if err != nil {
			return nil, fmt.Errorf("failed to scan referral: %w", err)
		}
		entry.Status = model.ReferralStatus(status)
		entry.ShareMethod = model.ShareMethod(method)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating referrals: %w", err)
	}

	return entries, nil
}

func scanReferrer(row pgx.Row) (model.Referrer, error) {
	var (
		referrer model.Referrer
		code     string
	)
	if err := row.Scan(&referrer.UserID, &code, &referrer.School); err != nil {
		return model.Referrer{}, err
	}
	referrer.Code = model.Code(code)
	return referrer, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
