package repository

import (
	"context"
	"errors"

	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	domainRepo "github.com/nftpro1212/frons-pos/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new venue settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*entity.VenueSettings, error) {
	var settings entity.VenueSettings
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &settings, err
}

func (r *settingsRepository) Create(ctx context.Context, settings *entity.VenueSettings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}

func (r *settingsRepository) Update(ctx context.Context, settings *entity.VenueSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
