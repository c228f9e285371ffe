package mirror

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry one mirrored key-value row
type Entry struct {
	Key       string `gorm:"primaryKey;size:191"`
	Value     []byte `gorm:"type:blob"`
	UpdatedAt time.Time
}

// TableName gorm table name
func (Entry) TableName() string {
	return "mirror_entries"
}

type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a database-backed mirror and migrates its table
func NewGormStore(db *gorm.DB) (Store, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &gormStore{db: db}, nil
}

func (s *gormStore) Read(ctx context.Context, key string) ([]byte, error) {
	var entry Entry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return entry.Value, nil
}

func (s *gormStore) Write(ctx context.Context, key string, value []byte) error {
	entry := Entry{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (s *gormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Entry{}, "key = ?", key).Error
}
