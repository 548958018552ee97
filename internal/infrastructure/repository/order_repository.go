package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	"github.com/nftpro1212/frons-pos/internal/domain/enum"
	domainRepo "github.com/nftpro1212/frons-pos/internal/domain/repository"
	"github.com/nftpro1212/frons-pos/pkg/pagination"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Table").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetByOrderNo(ctx context.Context, orderNo string) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).First(&order, "order_no = ?", orderNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Order{}, "id = ?", id).Error
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{})

	if params.Search != "" {
		query = query.Where("order_no ILIKE ? OR table_name ILIKE ?", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.Channel != nil {
		query = query.Where("channel = ?", *params.Channel)
	}

	if params.TableID != nil {
		query = query.Where("table_id = ?", *params.TableID)
	}

	if params.UserID != nil {
		query = query.Where("user_id = ?", *params.UserID)
	}

	if params.StartDate != nil {
		query = query.Where("opened_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("opened_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder != "" && (params.SortOrder == "ASC" || params.SortOrder == "asc") {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Table").
		Preload("Items").
		Order(sortBy + " " + sortOrder).
		Find(&orders).Error

	return orders, total, err
}

// ListWithCursor returns orders using cursor-based pagination
func (r *orderRepository) ListWithCursor(ctx context.Context, params *domainRepo.OrderCursorFilterParams) ([]entity.Order, error) {
	var orders []entity.Order

	params.Cursor.Validate()
	query := r.db.WithContext(ctx).Model(&entity.Order{})

	if params.Search != "" {
		query = query.Where("order_no ILIKE ?", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.Channel != nil {
		query = query.Where("channel = ?", *params.Channel)
	}

	if params.TableID != nil {
		query = query.Where("table_id = ?", *params.TableID)
	}

	cursor, err := params.Cursor.DecodeCursor()
	if err != nil {
		return nil, err
	}

	if cursor != nil {
		if params.Cursor.Direction == pagination.CursorDirectionNext {
			query = query.Where("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID)
		} else {
			query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		}
	}

	err = query.Limit(params.Cursor.Limit + 1).
		Preload("Table").
		Order("created_at ASC, id ASC").
		Find(&orders).Error

	return orders, err
}

func (r *orderRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Table").
		Preload("User").
		Preload("Items").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *orderRepository) ListOpenByTable(ctx context.Context, tableID uuid.UUID) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Where("table_id = ? AND status = ?", tableID, enum.OrderStatusOpen).
		Order("opened_at ASC").
		Find(&orders).Error
	return orders, err
}

type orderItemRepository struct {
	db *gorm.DB
}

// NewOrderItemRepository creates a new order item repository
func NewOrderItemRepository(db *gorm.DB) domainRepo.OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) Create(ctx context.Context, item *entity.OrderItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *orderItemRepository) CreateBatch(ctx context.Context, items []entity.OrderItem) error {
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *orderItemRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *orderItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.OrderItem{}, "id = ?", id).Error
}

func (r *orderItemRepository) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.OrderItem{}, "order_id = ?", orderID).Error
}
