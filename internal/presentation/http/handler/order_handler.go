package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/application/service"
	"github.com/nftpro1212/frons-pos/internal/domain/enum"
	"github.com/nftpro1212/frons-pos/internal/domain/repository"
	"github.com/nftpro1212/frons-pos/internal/presentation/http/dto/request"
	"github.com/nftpro1212/frons-pos/internal/presentation/http/dto/response"
	"github.com/nftpro1212/frons-pos/pkg/pagination"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List handles listing orders (supports both page-based and cursor-based pagination)
func (h *OrderHandler) List(c *gin.Context) {
	// Cursor-based pagination when requested
	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.listWithCursor(c)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		if statusInt, err := strconv.Atoi(statusStr); err == nil {
			status := enum.OrderStatus(statusInt)
			params.Status = &status
		}
	}

	if channelStr := c.Query("channel"); channelStr != "" {
		channel := enum.OrderChannel(channelStr)
		if channel.Valid() {
			params.Channel = &channel
		}
	}

	if tableIDStr := c.Query("table_id"); tableIDStr != "" {
		if tableID, err := uuid.Parse(tableIDStr); err == nil {
			params.TableID = &tableID
		}
	}

	if userIDStr := c.Query("user_id"); userIDStr != "" {
		if userID, err := uuid.Parse(userIDStr); err == nil {
			params.UserID = &userID
		}
	}

	if startDateStr := c.Query("start_date"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			params.StartDate = &startDate
		}
	}

	if endDateStr := c.Query("end_date"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			params.EndDate = &endDate
		}
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// listWithCursor handles listing orders with cursor-based pagination
func (h *OrderHandler) listWithCursor(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))
	direction := c.DefaultQuery("direction", "next")

	params := &repository.OrderCursorFilterParams{
		Cursor: &pagination.CursorParams{
			Cursor:    c.Query("cursor"),
			Direction: pagination.CursorDirection(direction),
			Limit:     limit,
		},
		Search: c.Query("search"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		if statusInt, err := strconv.Atoi(statusStr); err == nil {
			status := enum.OrderStatus(statusInt)
			params.Status = &status
		}
	}

	if channelStr := c.Query("channel"); channelStr != "" {
		channel := enum.OrderChannel(channelStr)
		if channel.Valid() {
			params.Channel = &channel
		}
	}

	if tableIDStr := c.Query("table_id"); tableIDStr != "" {
		if tableID, err := uuid.Parse(tableIDStr); err == nil {
			params.TableID = &tableID
		}
	}

	result, err := h.orderService.ListOrdersWithCursor(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithCursor(c, 200, "Orders retrieved successfully", result)
}

func itemInputs(items []request.OrderItemRequest) []service.OrderItemInput {
	inputs := make([]service.OrderItemInput, 0, len(items))
	for _, item := range items {
		input := service.OrderItemInput{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Notes:     item.Notes,
			Modifiers: item.Modifiers,
		}
		if item.MenuItemID != nil {
			if id, err := uuid.Parse(*item.MenuItemID); err == nil {
				input.MenuItemID = &id
			}
		}
		inputs = append(inputs, input)
	}
	return inputs
}

// Create handles opening an order
func (h *OrderHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateOrderInput{
		UserID:  *userID,
		Channel: enum.OrderChannel(req.Channel),
		Guests:  req.Guests,
		Note:    req.Note,
		Tax:     req.Tax,
		Items:   itemInputs(req.Items),
	}
	if req.TableID != nil {
		if tableID, err := uuid.Parse(*req.TableID); err == nil {
			input.TableID = &tableID
		}
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Get handles retrieving one order with its items
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// Update handles editing an open order
func (h *OrderHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateOrderInput{
		Guests: req.Guests,
		Note:   req.Note,
		Tax:    req.Tax,
	}
	if req.TableID != nil {
		if tableID, err := uuid.Parse(*req.TableID); err == nil {
			input.TableID = &tableID
		}
	}
	if req.Items != nil {
		input.Items = itemInputs(req.Items)
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order updated successfully", order)
}

// Void handles voiding an order
func (h *OrderHandler) Void(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.VoidOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order voided successfully", nil)
}

// CheckoutTotals returns the base totals the checkout panel reconciles against
func (h *OrderHandler) CheckoutTotals(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	totals, err := h.orderService.CheckoutTotals(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Checkout totals computed", totals)
}

// CheckoutPreview reconciles a discount/amount pair against an order's totals
func (h *OrderHandler) CheckoutPreview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.CheckoutPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	preview, err := h.orderService.PreviewCheckout(c.Request.Context(), id, req.Discount, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Checkout preview computed", preview)
}
