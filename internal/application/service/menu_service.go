package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/application/reconcile"
	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	"github.com/nftpro1212/frons-pos/internal/domain/repository"
	"github.com/nftpro1212/frons-pos/pkg/apperror"
	"github.com/nftpro1212/frons-pos/pkg/pagination"
)

// MenuService handles menu category and item management
type MenuService struct {
	itemRepo     repository.MenuItemRepository
	categoryRepo repository.MenuCategoryRepository
}

// NewMenuService creates a new menu service
func NewMenuService(itemRepo repository.MenuItemRepository, categoryRepo repository.MenuCategoryRepository) *MenuService {
	return &MenuService{itemRepo: itemRepo, categoryRepo: categoryRepo}
}

// --- Categories ---

// CreateCategoryInput represents the create category input
type CreateCategoryInput struct {
	Name      string
	SortOrder int
}

// CreateCategory adds a menu category
func (s *MenuService) CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.MenuCategory, error) {
	existing, err := s.categoryRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A category with this name already exists")
	}

	category := &entity.MenuCategory{
		Name:      input.Name,
		SortOrder: input.SortOrder,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories lists all menu categories in display order
func (s *MenuService) ListCategories(ctx context.Context) ([]entity.MenuCategory, error) {
	return s.categoryRepo.List(ctx)
}

// UpdateCategory updates a menu category
func (s *MenuService) UpdateCategory(ctx context.Context, id uuid.UUID, input *CreateCategoryInput) (*entity.MenuCategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	category.Name = input.Name
	category.SortOrder = input.SortOrder

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category; categories with items cannot be removed
func (s *MenuService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}

	hasItems, err := s.categoryRepo.HasItems(ctx, id)
	if err != nil {
		return err
	}
	if hasItems {
		return apperror.NewConflictError("Category still has menu items")
	}

	return s.categoryRepo.Delete(ctx, id)
}

// --- Items ---

// MenuItemInput represents the create/update menu item input
type MenuItemInput struct {
	CategoryID  uuid.UUID
	Name        string
	Description string
	Price       float64 // major units
	Available   bool
	Image       *string
}

// CreateItem adds a menu item
func (s *MenuService) CreateItem(ctx context.Context, input *MenuItemInput) (*entity.MenuItem, error) {
	category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	item := &entity.MenuItem{
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		Price:       reconcile.ClampCurrency(input.Price * 100),
		Available:   input.Available,
		Image:       input.Image,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem retrieves a menu item by ID
func (s *MenuService) GetItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// ListItems lists menu items with filtering
func (s *MenuService) ListItems(ctx context.Context, params *repository.MenuItemFilterParams) (*pagination.PaginatedResult[entity.MenuItem], error) {
	items, total, err := s.itemRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// UpdateItem updates a menu item
func (s *MenuService) UpdateItem(ctx context.Context, id uuid.UUID, input *MenuItemInput) (*entity.MenuItem, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != item.CategoryID {
		category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	item.CategoryID = input.CategoryID
	item.Name = input.Name
	item.Description = input.Description
	item.Price = reconcile.ClampCurrency(input.Price * 100)
	item.Available = input.Available
	item.Image = input.Image

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes a menu item. Orders keep their snapshotted names
// and prices, so removal never rewrites history.
func (s *MenuService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return err
	}
	return s.itemRepo.Delete(ctx, item.ID)
}
