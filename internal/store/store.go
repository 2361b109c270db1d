package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/avc-dev/referral-service/internal/model"
)

var (
	ErrNotFound      = errors.New("key not found")
	ErrAlreadyExists = errors.New("key already exists")
	ErrInvalidEntry  = errors.New("invalid entry")
)

// Store - in-memory реестр реферальных кодов, ссылок и истории рефералов
type Store struct {
	mutex     sync.RWMutex
	byUser    map[string]model.Referrer
	byCode    map[model.Code]string
	links     []model.LinkRecord
	referrals map[string][]model.ReferralHistoryEntry
}

func NewStore() *Store {
	return &Store{
		byUser:    make(map[string]model.Referrer),
		byCode:    make(map[model.Code]string),
		referrals: make(map[string][]model.ReferralHistoryEntry),
	}
}

// CreateOrGetCode сохраняет код пользователя или возвращает уже существующий.
// Второе значение равно true, если запись была создана.
func (s *Store) CreateOrGetCode(_ context.Context, referrer model.Referrer) (model.Referrer, bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if existing, ok := s.byUser[referrer.UserID]; ok {
		return existing, false, nil
	}

	if owner, taken := s.byCode[referrer.Code]; taken {
		return model.Referrer{}, false, fmt.Errorf("code %s owned by %s: %w", referrer.Code, owner, ErrAlreadyExists)
	}

	s.byUser[referrer.UserID] = referrer
	s.byCode[referrer.Code] = referrer.UserID

	return referrer, true, nil
}

func (s *Store) GetReferrerByUserID(_ context.Context, userID string) (model.Referrer, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	referrer, ok := s.byUser[userID]
	if !ok {
		return model.Referrer{}, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	return referrer, nil
}

// GetReferrerByCode ищет владельца кода по точному совпадению
func (s *Store) GetReferrerByCode(_ context.Context, code model.Code) (model.Referrer, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	userID, ok := s.byCode[code]
	if !ok {
		return model.Referrer{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	return s.byUser[userID], nil
}

func (s *Store) SaveLink(_ context.Context, link model.LinkRecord) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.links = append(s.links, link)

	return nil
}

// AddReferral добавляет запись в историю пользователя
func (s *Store) AddReferral(_ context.Context, userID string, entry model.ReferralHistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.referrals[userID] = append(s.referrals[userID], entry)

	return nil
}

// ListReferrals возвращает копию истории, упорядоченную по createdAt.
// Записи с одинаковым временем остаются в порядке добавления.
func (s *Store) ListReferrals(_ context.Context, userID string) ([]model.ReferralHistoryEntry, error) {
	s.mutex.RLock()
	result := slices.Clone(s.referrals[userID])
	s.mutex.RUnlock()

	SortHistory(result)

	if result == nil {
		result = []model.ReferralHistoryEntry{}
	}

	return result, nil
}

// SortHistory сортирует историю по возрастанию createdAt, сохраняя порядок равных
func SortHistory(entries []model.ReferralHistoryEntry) {
	slices.SortStableFunc(entries, func(a, b model.ReferralHistoryEntry) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
}
