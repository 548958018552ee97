package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	domainRepo "github.com/nftpro1212/frons-pos/internal/domain/repository"
	"gorm.io/gorm"
)

type menuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository creates a new menu item repository
func NewMenuItemRepository(db *gorm.DB) domainRepo.MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *menuItemRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *menuItemRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *menuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.MenuItem{}, "id = ?", id).Error
}

func (r *menuItemRepository) List(ctx context.Context, params *domainRepo.MenuItemFilterParams) ([]entity.MenuItem, int64, error) {
	var items []entity.MenuItem
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.MenuItem{})

	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}

	if params.AvailableOnly {
		query = query.Where("available = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Category").
		Order("name ASC").
		Find(&items).Error

	return items, total, err
}

type menuCategoryRepository struct {
	db *gorm.DB
}

// NewMenuCategoryRepository creates a new menu category repository
func NewMenuCategoryRepository(db *gorm.DB) domainRepo.MenuCategoryRepository {
	return &menuCategoryRepository{db: db}
}

func (r *menuCategoryRepository) Create(ctx context.Context, category *entity.MenuCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *menuCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuCategory, error) {
	var category entity.MenuCategory
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *menuCategoryRepository) GetByName(ctx context.Context, name string) (*entity.MenuCategory, error) {
	var category entity.MenuCategory
	err := r.db.WithContext(ctx).First(&category, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *menuCategoryRepository) Update(ctx context.Context, category *entity.MenuCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *menuCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.MenuCategory{}, "id = ?", id).Error
}

func (r *menuCategoryRepository) List(ctx context.Context) ([]entity.MenuCategory, error) {
	var categories []entity.MenuCategory
	err := r.db.WithContext(ctx).Order("sort_order ASC, name ASC").Find(&categories).Error
	return categories, err
}

func (r *menuCategoryRepository) HasItems(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.MenuItem{}).
		Where("category_id = ?", id).
		Count(&count).Error
	return count > 0, err
}
