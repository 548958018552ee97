package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	"github.com/nftpro1212/frons-pos/pkg/pagination"
)

// MenuItemRepository defines the interface for menu item data operations
type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *MenuItemFilterParams) ([]entity.MenuItem, int64, error)
}

// MenuItemFilterParams contains filtering parameters for menu item queries
type MenuItemFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	CategoryID    *uuid.UUID
	AvailableOnly bool
}

// MenuCategoryRepository defines the interface for menu category data operations
type MenuCategoryRepository interface {
	Create(ctx context.Context, category *entity.MenuCategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuCategory, error)
	GetByName(ctx context.Context, name string) (*entity.MenuCategory, error)
	Update(ctx context.Context, category *entity.MenuCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.MenuCategory, error)
	HasItems(ctx context.Context, id uuid.UUID) (bool, error)
}
