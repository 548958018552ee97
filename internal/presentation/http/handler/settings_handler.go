package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/application/service"
	"github.com/nftpro1212/frons-pos/internal/presentation/http/dto/request"
	"github.com/nftpro1212/frons-pos/internal/presentation/http/dto/response"
)

// SettingsHandler handles venue settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles retrieving the venue settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settings retrieved successfully", settings)
}

// Update handles replacing the venue settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateSettingsInput{
		StoreName:    req.StoreName,
		StoreAddress: req.StoreAddress,
		StorePhone:   req.StorePhone,
		TaxID:        req.TaxID,
		Currency:     req.Currency,
		ShowLogo:     req.ShowLogo,
		ShowHeader:   req.ShowHeader,
		ShowFooter:   req.ShowFooter,
		HeaderText:   req.HeaderText,
		FooterText:   req.FooterText,
		PaperWidth:   req.PaperWidth,
		ShowTaxLine:  req.ShowTaxLine,
		DispatchMode: req.DispatchMode,
		AgentChannel: req.AgentChannel,
	}
	if req.DefaultPrinterID != nil {
		if printerID, err := uuid.Parse(*req.DefaultPrinterID); err == nil {
			input.DefaultPrinterID = &printerID
		}
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settings updated successfully", settings)
}
