package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/application/reconcile"
	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	"github.com/nftpro1212/frons-pos/internal/domain/enum"
	"github.com/nftpro1212/frons-pos/internal/domain/repository"
	"github.com/nftpro1212/frons-pos/internal/infrastructure/events"
	"github.com/nftpro1212/frons-pos/pkg/apperror"
	"github.com/nftpro1212/frons-pos/pkg/pagination"
	"github.com/nftpro1212/frons-pos/pkg/utils"
)

// OrderService handles order lifecycle operations
type OrderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	menuItemRepo  repository.MenuItemRepository
	tableRepo     repository.TableRepository
	publisher     *events.OrderEventPublisher
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	menuItemRepo repository.MenuItemRepository,
	tableRepo repository.TableRepository,
	publisher *events.OrderEventPublisher,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		menuItemRepo:  menuItemRepo,
		tableRepo:     tableRepo,
		publisher:     publisher,
	}
}

// OrderItemInput represents one line of an order being created or updated
type OrderItemInput struct {
	MenuItemID *uuid.UUID
	Name       string
	Quantity   int
	UnitPrice  float64 // major units; converted to cents internally
	Notes      string
	Modifiers  json.RawMessage
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	UserID  uuid.UUID
	TableID *uuid.UUID
	Channel enum.OrderChannel
	Guests  int
	Note    string
	Tax     float64 // major units
	Items   []OrderItemInput
}

// CreateOrder opens a new order with its line items. Item names and
// prices are snapshotted so later menu edits never rewrite the order.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if !input.Channel.Valid() {
		input.Channel = enum.OrderChannelDineIn
	}

	tableName := ""
	if input.TableID != nil {
		table, err := s.tableRepo.GetByID(ctx, *input.TableID)
		if err != nil {
			return nil, err
		}
		if table == nil {
			return nil, apperror.NewNotFoundError("Table")
		}
		tableName = table.Name
	}

	items, err := s.buildItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		UserID:     input.UserID,
		TableID:    input.TableID,
		TableLabel: tableName,
		Channel:    input.Channel,
		OrderNo:    utils.GenerateOrderNo(),
		Status:     enum.OrderStatusOpen,
		Guests:     input.Guests,
		Tax:        reconcile.ClampCurrency(input.Tax * 100),
		Note:       input.Note,
		OpenedAt:   time.Now(),
	}

	for i := range items {
		order.SubTotal += items[i].LineTotal()
	}
	order.Total = order.SubTotal + order.Tax

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	for i := range items {
		items[i].OrderID = order.ID
	}
	if len(items) > 0 {
		if err := s.orderItemRepo.CreateBatch(ctx, items); err != nil {
			return nil, err
		}
	}

	created, err := s.orderRepo.GetWithItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.OrderCreated, created)
	return created, nil
}

// buildItems validates and snapshots order lines. Lines that reference a
// menu item inherit its current name and price unless overridden.
func (s *OrderService) buildItems(ctx context.Context, inputs []OrderItemInput) ([]entity.OrderItem, error) {
	var menuIDs []uuid.UUID
	for _, in := range inputs {
		if in.MenuItemID != nil {
			menuIDs = append(menuIDs, *in.MenuItemID)
		}
	}

	menuMap := make(map[uuid.UUID]*entity.MenuItem, len(menuIDs))
	if len(menuIDs) > 0 {
		menuItems, err := s.menuItemRepo.GetByIDs(ctx, menuIDs)
		if err != nil {
			return nil, err
		}
		for i := range menuItems {
			menuMap[menuItems[i].ID] = &menuItems[i]
		}
	}

	items := make([]entity.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		item := entity.OrderItem{
			MenuItemID: in.MenuItemID,
			Name:       in.Name,
			Quantity:   in.Quantity,
			UnitPrice:  reconcile.ClampCurrency(in.UnitPrice * 100),
			Notes:      in.Notes,
			Modifiers:  in.Modifiers,
		}

		if in.MenuItemID != nil {
			menuItem, exists := menuMap[*in.MenuItemID]
			if !exists {
				return nil, apperror.NewNotFoundError("Menu item")
			}
			if item.Name == "" {
				item.Name = menuItem.Name
			}
			if item.UnitPrice == 0 {
				item.UnitPrice = menuItem.Price
			}
		}

		if item.Name == "" {
			return nil, apperror.NewBadRequestError("Order item requires a name or menu item reference")
		}
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Order item quantity must be positive")
		}

		items = append(items, item)
	}

	return items, nil
}

// GetOrder retrieves an order with its items
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with filtering
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// ListOrdersWithCursor lists orders with cursor-based pagination
func (s *OrderService) ListOrdersWithCursor(ctx context.Context, params *repository.OrderCursorFilterParams) (*pagination.CursorPaginatedResult[entity.Order], error) {
	orders, err := s.orderRepo.ListWithCursor(ctx, params)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(orders, params.Cursor.Limit,
		func(o entity.Order) string { return o.ID.String() },
		func(o entity.Order) time.Time { return o.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// UpdateOrderInput represents updatable order fields; nil means unchanged
type UpdateOrderInput struct {
	TableID *uuid.UUID
	Guests  *int
	Note    *string
	Tax     *float64 // major units
	Items   []OrderItemInput
}

// UpdateOrder replaces an open order's mutable fields and, when items are
// provided, its entire line set. Settled and voided orders are immutable.
func (s *OrderService) UpdateOrder(ctx context.Context, id uuid.UUID, input *UpdateOrderInput) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.Status == enum.OrderStatusPaid {
		return nil, apperror.ErrOrderAlreadyPaid
	}
	if order.Status == enum.OrderStatusVoid {
		return nil, apperror.ErrOrderVoided
	}

	if input.TableID != nil {
		table, err := s.tableRepo.GetByID(ctx, *input.TableID)
		if err != nil {
			return nil, err
		}
		if table == nil {
			return nil, apperror.NewNotFoundError("Table")
		}
		order.TableID = input.TableID
		order.TableLabel = table.Name
	}
	if input.Guests != nil {
		order.Guests = *input.Guests
	}
	if input.Note != nil {
		order.Note = *input.Note
	}
	if input.Tax != nil {
		order.Tax = reconcile.ClampCurrency(*input.Tax * 100)
	}

	if input.Items != nil {
		items, err := s.buildItems(ctx, input.Items)
		if err != nil {
			return nil, err
		}
		if err := s.orderItemRepo.DeleteByOrderID(ctx, order.ID); err != nil {
			return nil, err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := s.orderItemRepo.CreateBatch(ctx, items); err != nil {
				return nil, err
			}
		}
		order.Items = items
	}

	order.SubTotal = 0
	for i := range order.Items {
		order.SubTotal += order.Items[i].LineTotal()
	}
	order.Total = order.SubTotal + order.Tax - order.Discount
	if order.Total < 0 {
		order.Total = 0
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	updated, err := s.orderRepo.GetWithItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.OrderUpdated, updated)
	return updated, nil
}

// VoidOrder voids an open order
func (s *OrderService) VoidOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	if order.Status == enum.OrderStatusPaid {
		return apperror.ErrOrderAlreadyPaid
	}
	if order.Status == enum.OrderStatusVoid {
		return apperror.ErrOrderVoided
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, enum.OrderStatusVoid); err != nil {
		return err
	}

	order.Status = enum.OrderStatusVoid
	s.publisher.Publish(ctx, events.OrderVoided, order)
	return nil
}

// CheckoutTotals derives the base checkout figures for an order
func (s *OrderService) CheckoutTotals(ctx context.Context, id uuid.UUID) (*reconcile.BaseTotals, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	totals := reconcile.ComputeBaseTotals(order)
	return &totals, nil
}

// CheckoutPreview reconciles a requested discount or amount against an
// order's base totals without settling anything. Amount wins when both
// are supplied, mirroring how the register derives the pair.
type CheckoutPreview struct {
	Totals    reconcile.BaseTotals `json:"totals"`
	Discount  int64                `json:"discount"`
	AmountDue int64                `json:"amount_due"`
	Presets   []int                `json:"presets"`
}

// PreviewCheckout runs the checkout reducers for a discount/amount pair
func (s *OrderService) PreviewCheckout(ctx context.Context, id uuid.UUID, discount, amount *float64) (*CheckoutPreview, error) {
	totals, err := s.CheckoutTotals(ctx, id)
	if err != nil {
		return nil, err
	}

	state := reconcile.NewState(*totals)
	if discount != nil {
		state.SetDiscount(*discount * 100)
	}
	if amount != nil {
		state.SetAmountDue(*amount * 100)
	}

	return &CheckoutPreview{
		Totals:    *totals,
		Discount:  state.Discount,
		AmountDue: state.AmountDue,
		Presets:   reconcile.DiscountPresets,
	}, nil
}
