package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/avc-dev/referral-service/internal/model"
	"github.com/google/uuid"
)

// FileStore декоратор над Store, который добавляет персистентность через файл
type FileStore struct {
	// mutex упорядочивает проверку, запись в файл и обновление памяти
	mutex       sync.Mutex
	store       *Store
	fileStorage *FileStorage
}

// NewFileStore создаёт FileStore и загружает данные из файла
func NewFileStore(filePath string) (*FileStore, error) {
	fs := &FileStore{
		store:       NewStore(),
		fileStorage: NewFileStorage(filePath),
	}

	// Загружаем данные из файла при инициализации
	if err := fs.loadFromFile(); err != nil {
		return nil, fmt.Errorf("failed to load data from file: %w", err)
	}

	return fs, nil
}

// CreateOrGetCode дописывает новую запись в файл и только после этого сохраняет её в памяти
func (fs *FileStore) CreateOrGetCode(ctx context.Context, referrer model.Referrer) (model.Referrer, bool, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	existing, err := fs.store.GetReferrerByUserID(ctx, referrer.UserID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return model.Referrer{}, false, err
	}

	if owner, err := fs.store.GetReferrerByCode(ctx, referrer.Code); err == nil {
		return model.Referrer{}, false, fmt.Errorf("code %s owned by %s: %w", referrer.Code, owner.UserID, ErrAlreadyExists)
	}

	record := fileRecord{
		UUID:   uuid.New().String(),
		Kind:   recordKindReferrer,
		UserID: referrer.UserID,
		Code:   referrer.Code.String(),
		School: referrer.School,
	}

	if err := fs.fileStorage.Append(record); err != nil {
		return model.Referrer{}, false, fmt.Errorf("failed to append to file: %w", err)
	}

	return fs.store.CreateOrGetCode(ctx, referrer)
}

func (fs *FileStore) GetReferrerByUserID(ctx context.Context, userID string) (model.Referrer, error) {
	return fs.store.GetReferrerByUserID(ctx, userID)
}

func (fs *FileStore) GetReferrerByCode(ctx context.Context, code model.Code) (model.Referrer, error) {
	return fs.store.GetReferrerByCode(ctx, code)
}

// SaveLink сохраняет ссылку в файл, а затем в память
func (fs *FileStore) SaveLink(ctx context.Context, link model.LinkRecord) error {
	record := fileRecord{
		UUID:        uuid.New().String(),
		Kind:        recordKindLink,
		UserID:      link.UserID,
		Code:        link.Code.String(),
		LinkID:      link.ID,
		ShareMethod: link.ShareMethod.String(),
		URL:         link.URL,
		CreatedAt:   link.CreatedAt,
	}

	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	if err := fs.fileStorage.Append(record); err != nil {
		return fmt.Errorf("failed to append to file: %w", err)
	}

	return fs.store.SaveLink(ctx, link)
}

// AddReferral дописывает запись истории в файл, а затем в память
func (fs *FileStore) AddReferral(ctx context.Context, userID string, entry model.ReferralHistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}

	record := fileRecord{
		UUID:     uuid.New().String(),
		Kind:     recordKindReferral,
		UserID:   userID,
		Referral: &entry,
	}

	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	if err := fs.fileStorage.Append(record); err != nil {
		return fmt.Errorf("failed to append to file: %w", err)
	}

	return fs.store.AddReferral(ctx, userID, entry)
}

func (fs *FileStore) ListReferrals(ctx context.Context, userID string) ([]model.ReferralHistoryEntry, error) {
	return fs.store.ListReferrals(ctx, userID)
}

// loadFromFile восстанавливает состояние in-memory store из файла
func (fs *FileStore) loadFromFile() error {
	records, err := fs.fileStorage.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()
	for _, record := range records {
		switch record.Kind {
		case recordKindReferrer:
			referrer := model.Referrer{
				UserID: record.UserID,
				Code:   model.Code(record.Code),
				School: record.School,
			}
			if _, _, err := fs.store.CreateOrGetCode(ctx, referrer); err != nil {
				return fmt.Errorf("record %s: %w", record.UUID, err)
			}
		case recordKindLink:
			method, ok := model.ParseShareMethod(record.ShareMethod)
			if !ok {
				return fmt.Errorf("record %s: unknown share method %q", record.UUID, record.ShareMethod)
			}
			link := model.LinkRecord{
				ID:          record.LinkID,
				UserID:      record.UserID,
				Code:        model.Code(record.Code),
				ShareMethod: method,
				URL:         record.URL,
				CreatedAt:   record.CreatedAt,
			}
			if err := fs.store.SaveLink(ctx, link); err != nil {
				return fmt.Errorf("record %s: %w", record.UUID, err)
			}
		case recordKindReferral:
			if record.Referral == nil {
				return fmt.Errorf("record %s: %w", record.UUID, ErrInvalidEntry)
			}
			if err := fs.store.AddReferral(ctx, record.UserID, *record.Referral); err != nil {
				return fmt.Errorf("record %s: %w", record.UUID, err)
			}
		default:
			return fmt.Errorf("record %s: unknown kind %q", record.UUID, record.Kind)
		}
	}

	return nil
}
