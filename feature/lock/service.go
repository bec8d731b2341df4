package lock

import (
	"context"
	"errors"
	"fmt"

	"relic-manager/core/database"
	"relic-manager/feature/lock/models"
	relic "relic-manager/feature/relic/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a token has no stored lock.
var ErrNotFound = errors.New("lock not found")

const insertBatchSize = 500

// Service persists relic locks.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new lock service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// AutoMigrate creates or updates the lock table.
func (s *Service) AutoMigrate() error {
	if err := s.db.AutoMigrate(&models.LockRecord{}); err != nil {
		return fmt.Errorf("failed to migrate relic_locks: %w", err)
	}
	return nil
}

// lockColumns are the columns the lock table must carry.
var lockColumns = []string{"token", "save", "created_at", "updated_at"}

// CheckSchema reports columns missing from the lock table.
func (s *Service) CheckSchema() error {
	missing, err := database.MissingColumns(s.db, models.LockRecord{}.TableName(), lockColumns)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("relic_locks is missing columns %v", missing)
	}
	return nil
}

// List returns every stored lock ordered by token.
func (s *Service) List(ctx context.Context) ([]models.LockRecord, error) {
	var records []models.LockRecord
	if err := s.db.WithContext(ctx).Order("token").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list locks: %w", err)
	}
	return records, nil
}

// LoadAll returns every stored lock keyed by token.
func (s *Service) LoadAll(ctx context.Context) (map[string]relic.Lock, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	locks := make(map[string]relic.Lock, len(records))
	for _, r := range records {
		locks[r.Token] = r.ToLock()
	}
	return locks, nil
}

// Get returns the lock stored for token.
func (s *Service) Get(ctx context.Context, token string) (*models.LockRecord, error) {
	var record models.LockRecord
	err := s.db.WithContext(ctx).Where("token = ?", token).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lock %s: %w", token, err)
	}
	return &record, nil
}

// SetSave creates or updates the lock for token and returns the stored row.
func (s *Service) SetSave(ctx context.Context, token string, save bool) (*models.LockRecord, error) {
	record := models.LockRecord{Token: token, Save: save}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"save", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return nil, fmt.Errorf("failed to save lock %s: %w", token, err)
	}

	// An update keeps the original created_at, so read it back.
	stored, err := s.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Lock updated", zap.String("token", token), zap.Bool("save", save))
	return stored, nil
}

// RecordLocks inserts unsaved locks for tokens. Tokens that already have a
// lock keep their current save flag.
func (s *Service) RecordLocks(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	records := make([]models.LockRecord, 0, len(tokens))
	for _, token := range tokens {
		records = append(records, models.LockRecord{Token: token})
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&records, insertBatchSize).Error
	if err != nil {
		return fmt.Errorf("failed to record %d locks: %w", len(tokens), err)
	}
	return nil
}

// Delete removes the lock for token.
func (s *Service) Delete(ctx context.Context, token string) error {
	res := s.db.WithContext(ctx).Where("token = ?", token).Delete(&models.LockRecord{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete lock %s: %w", token, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteLocks removes the locks for tokens using an IN clause.
func (s *Service) DeleteLocks(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := s.db.WithContext(ctx).Where("token IN ?", tokens).Delete(&models.LockRecord{}).Error; err != nil {
		return fmt.Errorf("failed to delete %d locks: %w", len(tokens), err)
	}
	return nil
}
