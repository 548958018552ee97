package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/application/service"
	"github.com/nftpro1212/frons-pos/internal/presentation/http/dto/request"
	"github.com/nftpro1212/frons-pos/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer profile HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// List handles listing printer profiles
func (h *PrinterHandler) List(c *gin.Context) {
	printers, err := h.printerService.ListPrinters(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Printers retrieved successfully", printers)
}

// Get handles retrieving one printer profile
func (h *PrinterHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid printer ID")
		return
	}

	printer, err := h.printerService.GetPrinter(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Printer retrieved successfully", printer)
}

// Create handles registering a printer profile
func (h *PrinterHandler) Create(c *gin.Context) {
	var req request.CreatePrinterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	printer, err := h.printerService.CreatePrinter(c.Request.Context(), &service.PrinterProfileInput{
		Name:         req.Name,
		Type:         req.Type,
		DevicePath:   req.DevicePath,
		Address:      req.Address,
		AgentChannel: req.AgentChannel,
		PaperWidth:   req.PaperWidth,
		Enabled:      req.Enabled,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Printer registered successfully", printer)
}

// Update handles editing a printer profile
func (h *PrinterHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid printer ID")
		return
	}

	var req request.UpdatePrinterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	printer, err := h.printerService.UpdatePrinter(c.Request.Context(), id, &service.PrinterProfileInput{
		Name:         req.Name,
		Type:         req.Type,
		DevicePath:   req.DevicePath,
		Address:      req.Address,
		AgentChannel: req.AgentChannel,
		PaperWidth:   req.PaperWidth,
		Enabled:      req.Enabled,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Printer updated successfully", printer)
}

// Delete handles removing a printer profile
func (h *PrinterHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid printer ID")
		return
	}

	if err := h.printerService.DeletePrinter(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Printer removed successfully", nil)
}

// Status reports connection state for every configured printer
func (h *PrinterHandler) Status(c *gin.Context) {
	statuses, err := h.printerService.GetStatus(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Printer status retrieved successfully", statuses)
}

// TestPrint sends a test page to one printer
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid printer ID")
		return
	}

	if _, err := h.printerService.TestPrint(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Test page sent successfully", nil)
}
