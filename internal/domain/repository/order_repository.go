package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	"github.com/nftpro1212/frons-pos/internal/domain/enum"
	"github.com/nftpro1212/frons-pos/pkg/pagination"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetByOrderNo(ctx context.Context, orderNo string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	ListWithCursor(ctx context.Context, params *OrderCursorFilterParams) ([]entity.Order, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
	ListOpenByTable(ctx context.Context, tableID uuid.UUID) ([]entity.Order, error)
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.OrderStatus
	Channel    *enum.OrderChannel
	TableID    *uuid.UUID
	UserID     *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// OrderCursorFilterParams contains cursor-based filtering for order queries
type OrderCursorFilterParams struct {
	Cursor  *pagination.CursorParams
	Search  string
	Status  *enum.OrderStatus
	Channel *enum.OrderChannel
	TableID *uuid.UUID
}

// OrderItemRepository defines the interface for order line item operations
type OrderItemRepository interface {
	Create(ctx context.Context, item *entity.OrderItem) error
	CreateBatch(ctx context.Context, items []entity.OrderItem) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.OrderItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error
}
