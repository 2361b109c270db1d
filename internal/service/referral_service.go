package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/referral-service/internal/config"
	"github.com/avc-dev/referral-service/internal/model"
	"github.com/avc-dev/referral-service/internal/store"
)

// ReferralService выдает реферальные коды и ссылки поверх хранилища
type ReferralService struct {
	repo          CodeRepository
	codeGenerator Generator
	links         *LinkBuilder
	cfg           *config.Config
	now           func() time.Time
}

// NewReferralService создает новый экземпляр ReferralService
func NewReferralService(repo CodeRepository, cfg *config.Config) *ReferralService {
	return &ReferralService{
		repo:          repo,
		codeGenerator: NewCodeGenerator(),
		links:         NewLinkBuilder(cfg.LinkBaseURL),
		cfg:           cfg,
		now:           time.Now,
	}
}

// IssueCode выдает пользователю код или возвращает уже выданный.
// Школа у нового кода не заполнена.
// Конкурентные вызовы для одного пользователя сходятся на одном коде.
func (s *ReferralService) IssueCode(ctx context.Context, userID string) (model.Referrer, bool, error) {
	for attempt := 0; attempt < s.cfg.Retry.MaxAttempts; attempt++ {
		code := s.codeGenerator.GenerateCode()

		exists, err := s.repo.Exists(ctx, code)
		if err != nil {
			return model.Referrer{}, false, fmt.Errorf("failed to check code: %w", err)
		}
		if exists {
			continue
		}

		referrer, created, err := s.repo.CreateOrGetCode(ctx, model.Referrer{
			UserID: userID,
			Code:   code,
		})
		if errors.Is(err, store.ErrAlreadyExists) {
			// Код заняли между проверкой и вставкой
			continue
		}
		if err != nil {
			return model.Referrer{}, false, fmt.Errorf("failed to create or get code: %w", err)
		}

		return referrer, created, nil
	}

	return model.Referrer{}, false, fmt.Errorf("failed to generate unique code after %d attempts: %w", s.cfg.Retry.MaxAttempts, ErrMaxRetriesExceeded)
}

// CreateLink формирует ссылку для способа отправки и сохраняет её для атрибуции
func (s *ReferralService) CreateLink(ctx context.Context, referrer model.Referrer, method model.ShareMethod) (model.LinkRecord, error) {
	link := s.links.Build(referrer, method, s.now().UTC())

	if err := s.repo.SaveLink(ctx, link); err != nil {
		return model.LinkRecord{}, fmt.Errorf("failed to save link: %w", err)
	}

	return link, nil
}
