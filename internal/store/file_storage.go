package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/avc-dev/referral-service/internal/model"
)

// Виды записей в файле хранилища
const (
	recordKindReferrer = "referrer"
	recordKindLink     = "link"
	recordKindReferral = "referral"
)

// fileRecord - одна строка JSON-lines файла
type fileRecord struct {
	UUID   string `json:"uuid"`
	Kind   string `json:"kind"`
	UserID string `json:"user_id"`

	Code   string `json:"code,omitempty"`
	School string `json:"school,omitempty"`

	LinkID      string    `json:"link_id,omitempty"`
	ShareMethod string    `json:"share_method,omitempty"`
	URL         string    `json:"url,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`

	Referral *model.ReferralHistoryEntry `json:"referral,omitempty"`
}

// FileStorage управляет персистентным хранилищем в JSON-lines файле
type FileStorage struct {
	filePath string
	mutex    sync.Mutex
}

// NewFileStorage создаёт новый FileStorage
func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{
		filePath: filePath,
	}
}

// Load загружает все записи из файла
func (fs *FileStorage) Load() ([]fileRecord, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	file, err := os.Open(fs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return []fileRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	records := []fileRecord{}
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		data := scanner.Bytes()
		if len(data) == 0 {
			continue
		}

		var record fileRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal line %d: %w", line, err)
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return records, nil
}

// Append дописывает одну запись в конец файла
func (fs *FileStorage) Append(record fileRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	file, err := os.OpenFile(fs.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
