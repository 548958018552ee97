package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	domainRepo "github.com/nftpro1212/frons-pos/internal/domain/repository"
	"gorm.io/gorm"
)

type printerRepository struct {
	db *gorm.DB
}

// NewPrinterRepository creates a new printer profile repository
func NewPrinterRepository(db *gorm.DB) domainRepo.PrinterRepository {
	return &printerRepository{db: db}
}

func (r *printerRepository) Create(ctx context.Context, profile *entity.PrinterProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *printerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PrinterProfile, error) {
	var profile entity.PrinterProfile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &profile, err
}

func (r *printerRepository) Update(ctx context.Context, profile *entity.PrinterProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *printerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.PrinterProfile{}, "id = ?", id).Error
}

func (r *printerRepository) List(ctx context.Context) ([]entity.PrinterProfile, error) {
	var profiles []entity.PrinterProfile
	err := r.db.WithContext(ctx).Order("name ASC").Find(&profiles).Error
	return profiles, err
}

func (r *printerRepository) ListEnabled(ctx context.Context) ([]entity.PrinterProfile, error) {
	var profiles []entity.PrinterProfile
	err := r.db.WithContext(ctx).
		Where("enabled = ?", true).
		Order("name ASC").
		Find(&profiles).Error
	return profiles, err
}
