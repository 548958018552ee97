package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	domainRepo "github.com/nftpro1212/frons-pos/internal/domain/repository"
	"gorm.io/gorm"
)

type tableRepository struct {
	db *gorm.DB
}

// NewTableRepository creates a new dining table repository
func NewTableRepository(db *gorm.DB) domainRepo.TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) Create(ctx context.Context, table *entity.Table) error {
	return r.db.WithContext(ctx).Create(table).Error
}

func (r *tableRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Table, error) {
	var table entity.Table
	err := r.db.WithContext(ctx).First(&table, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &table, err
}

func (r *tableRepository) GetByName(ctx context.Context, name string) (*entity.Table, error) {
	var table entity.Table
	err := r.db.WithContext(ctx).First(&table, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &table, err
}

func (r *tableRepository) Update(ctx context.Context, table *entity.Table) error {
	return r.db.WithContext(ctx).Save(table).Error
}

func (r *tableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Table{}, "id = ?", id).Error
}

func (r *tableRepository) List(ctx context.Context, activeOnly bool) ([]entity.Table, error) {
	var tables []entity.Table
	query := r.db.WithContext(ctx).Model(&entity.Table{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Order("zone ASC, name ASC").Find(&tables).Error
	return tables, err
}
