package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/stresscast/internal/dto"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/models"
	"gorm.io/gorm"
)

var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrNotOwner      = errors.New("you do not own this entry")
)

type EntryService struct {
	db *gorm.DB
}

func NewEntryService(db *gorm.DB) *EntryService {
	return &EntryService{db: db}
}

// GetOwned loads entry id and checks that caller owns it.
// A missing entry is ErrEntryNotFound, someone else's entry is ErrNotOwner.
func (s *EntryService) GetOwned(ctx context.Context, caller *models.User, id uint) (*models.Entry, error) {
	var entry models.Entry
	if err := s.db.WithContext(ctx).Preload("Prediction").First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to load entry: %w", err)
	}

	if entry.UserID != caller.ID {
		return nil, ErrNotOwner
	}

	return &entry, nil
}

func (s *EntryService) List(ctx context.Context, caller *models.User) ([]models.Entry, error) {
	var entries []models.Entry
	err := s.db.WithContext(ctx).
		Preload("Prediction").
		Where("user_id = ?", caller.ID).
		Order("date ASC").
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

func (s *EntryService) Get(ctx context.Context, caller *models.User, id uint) (*models.Entry, error) {
	return s.GetOwned(ctx, caller, id)
}

// Update replaces the entry's fields. An existing prediction is left as it is.
func (s *EntryService) Update(ctx context.Context, caller *models.User, id uint, req *dto.EntryRequest) (*models.Entry, error) {
	entry, err := s.GetOwned(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	req.Apply(entry)

	err = s.db.WithContext(ctx).Model(entry).Select(
		"date", "sleep_hours", "workout_intensity", "supplement_intake", "screen_time", "stress_level",
	).Updates(entry).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}
	return entry, nil
}

// Delete removes the entry and its predictions in one transaction.
func (s *EntryService) Delete(ctx context.Context, caller *models.User, id uint) error {
	entry, err := s.GetOwned(ctx, caller, id)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("entry_id = ?", entry.ID).Delete(&models.Prediction{}).Error; err != nil {
			return fmt.Errorf("failed to delete predictions: %w", err)
		}
		if err := tx.Delete(&models.Entry{}, entry.ID).Error; err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}
		return nil
	})
}
