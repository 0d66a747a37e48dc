package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store implements repository.KeyValueStore on the kv_records table.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

// NewStore wraps an open GORM connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Migrate creates or updates the kv_records table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&model.KVRecordModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate kv_records")
	}

	return nil
}

// Get reads the value stored under key.
func (s *Store) Get(ctx context.Context, key repository.Key) ([]byte, bool, error) {
	var record model.KVRecordModel
	err := s.db.WithContext(ctx).
		Where("namespace = ? AND record_id = ?", key.Namespace, key.ID).
		Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to get %s", key)
	}

	return record.Value, true, nil
}

// Set upserts the value stored under key.
func (s *Store) Set(ctx context.Context, key repository.Key, value []byte) error {
	record := model.KVRecordModel{
		Namespace: key.Namespace,
		RecordID:  key.ID,
		Value:     value,
		UpdatedAt: s.now().UTC(),
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "namespace"}, {Name: "record_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&record).Error
	if err != nil {
		return errors.Wrapf(err, "failed to set %s", key)
	}

	return nil
}

// SetIfAbsent inserts the row for key and reports false when it already exists.
func (s *Store) SetIfAbsent(ctx context.Context, key repository.Key, value []byte) (bool, error) {
	result := s.insertIfAbsent(s.db.WithContext(ctx), key, value)
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "failed to create %s", key)
	}

	return result.RowsAffected > 0, nil
}

func (s *Store) insertIfAbsent(tx *gorm.DB, key repository.Key, value []byte) *gorm.DB {
	record := model.KVRecordModel{
		Namespace: key.Namespace,
		RecordID:  key.ID,
		Value:     value,
		UpdatedAt: s.now().UTC(),
	}

	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&record)
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key repository.Key) error {
	err := s.db.WithContext(ctx).
		Where("namespace = ? AND record_id = ?", key.Namespace, key.ID).
		Delete(&model.KVRecordModel{}).Error
	if err != nil {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}
