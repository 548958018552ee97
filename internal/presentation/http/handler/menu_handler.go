package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/application/service"
	"github.com/nftpro1212/frons-pos/internal/domain/repository"
	"github.com/nftpro1212/frons-pos/internal/presentation/http/dto/request"
	"github.com/nftpro1212/frons-pos/internal/presentation/http/dto/response"
	"github.com/nftpro1212/frons-pos/pkg/pagination"
)

// MenuHandler handles menu category and item HTTP requests
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// ListCategories handles listing menu categories
func (h *MenuHandler) ListCategories(c *gin.Context) {
	categories, err := h.menuService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Categories retrieved successfully", categories)
}

// CreateCategory handles adding a menu category
func (h *MenuHandler) CreateCategory(c *gin.Context) {
	var req request.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.menuService.CreateCategory(c.Request.Context(), &service.CreateCategoryInput{
		Name:      req.Name,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Category created successfully", category)
}

// UpdateCategory handles editing a menu category
func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	var req request.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.menuService.UpdateCategory(c.Request.Context(), id, &service.CreateCategoryInput{
		Name:      req.Name,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Category updated successfully", category)
}

// DeleteCategory handles removing a menu category
func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.menuService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Category removed successfully", nil)
}

func menuItemInput(req *request.MenuItemRequest) (*service.MenuItemInput, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, err
	}

	input := &service.MenuItemInput{
		CategoryID:  categoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Available:   true,
		Image:       req.Image,
	}
	if req.Available != nil {
		input.Available = *req.Available
	}
	return input, nil
}

// ListItems handles listing menu items
func (h *MenuHandler) ListItems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "50"))

	params := &repository.MenuItemFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search:        c.Query("search"),
		AvailableOnly: c.Query("available") == "true",
	}

	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		if categoryID, err := uuid.Parse(categoryIDStr); err == nil {
			params.CategoryID = &categoryID
		}
	}

	result, err := h.menuService.ListItems(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Menu items retrieved successfully", result)
}

// GetItem handles retrieving one menu item
func (h *MenuHandler) GetItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.menuService.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu item retrieved successfully", item)
}

// CreateItem handles adding a menu item
func (h *MenuHandler) CreateItem(c *gin.Context) {
	var req request.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, err := menuItemInput(&req)
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	item, err := h.menuService.CreateItem(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Menu item created successfully", item)
}

// UpdateItem handles editing a menu item
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, err := menuItemInput(&req)
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	item, err := h.menuService.UpdateItem(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu item updated successfully", item)
}

// DeleteItem handles removing a menu item
func (h *MenuHandler) DeleteItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.menuService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu item removed successfully", nil)
}
