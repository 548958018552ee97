package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/application/service"
	"github.com/nftpro1212/frons-pos/internal/presentation/http/dto/request"
	"github.com/nftpro1212/frons-pos/internal/presentation/http/dto/response"
)

// TableHandler handles dining table HTTP requests
type TableHandler struct {
	tableService *service.TableService
}

// NewTableHandler creates a new table handler
func NewTableHandler(tableService *service.TableService) *TableHandler {
	return &TableHandler{tableService: tableService}
}

func tableInput(req *request.TableRequest) *service.CreateTableInput {
	input := &service.CreateTableInput{
		Name:   req.Name,
		Zone:   req.Zone,
		Seats:  req.Seats,
		Active: true,
	}
	if input.Seats <= 0 {
		input.Seats = 4
	}
	if req.Active != nil {
		input.Active = *req.Active
	}
	return input
}

// List handles listing tables
func (h *TableHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	tables, err := h.tableService.ListTables(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Tables retrieved successfully", tables)
}

// Get handles retrieving one table
func (h *TableHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid table ID")
		return
	}

	table, err := h.tableService.GetTable(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Table retrieved successfully", table)
}

// Create handles adding a table
func (h *TableHandler) Create(c *gin.Context) {
	var req request.TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	table, err := h.tableService.CreateTable(c.Request.Context(), tableInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Table created successfully", table)
}

// Update handles editing a table
func (h *TableHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid table ID")
		return
	}

	var req request.TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	table, err := h.tableService.UpdateTable(c.Request.Context(), id, tableInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Table updated successfully", table)
}

// Delete handles removing a table
func (h *TableHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid table ID")
		return
	}

	if err := h.tableService.DeleteTable(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Table removed successfully", nil)
}
