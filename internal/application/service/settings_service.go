package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	"github.com/nftpro1212/frons-pos/internal/domain/repository"
	"github.com/nftpro1212/frons-pos/pkg/apperror"
)

// SettingsService handles venue settings business logic
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	printerRepo  repository.PrinterRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository, printerRepo repository.PrinterRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		printerRepo:  printerRepo,
	}
}

// GetSettings retrieves the venue settings, creating defaults on first use
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.VenueSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	// Defaults are applied once at creation, not re-applied on read
	if settings == nil {
		settings = &entity.VenueSettings{
			StoreName:    "Frons POS",
			Currency:     "USD",
			ShowLogo:     true,
			ShowHeader:   true,
			ShowFooter:   true,
			FooterText:   "Thank you, see you again!",
			PaperWidth:   32,
			ShowTaxLine:  true,
			DispatchMode: entity.DispatchDirect,
		}
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateSettingsInput represents the input for updating venue settings
type UpdateSettingsInput struct {
	StoreName    string
	StoreAddress string
	StorePhone   string
	TaxID        string
	Currency     string

	ShowLogo    bool
	ShowHeader  bool
	ShowFooter  bool
	HeaderText  string
	FooterText  string
	PaperWidth  int
	ShowTaxLine bool

	DispatchMode     string
	AgentChannel     string
	DefaultPrinterID *uuid.UUID
}

// UpdateSettings replaces the venue settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.VenueSettings, error) {
	if input.DispatchMode != "" &&
		input.DispatchMode != entity.DispatchDirect &&
		input.DispatchMode != entity.DispatchAgent {
		return nil, apperror.NewBadRequestError("Dispatch mode must be direct or agent")
	}

	if input.DefaultPrinterID != nil {
		profile, err := s.printerRepo.GetByID(ctx, *input.DefaultPrinterID)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			return nil, apperror.NewNotFoundError("Printer")
		}
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings.StoreName = input.StoreName
	settings.StoreAddress = input.StoreAddress
	settings.StorePhone = input.StorePhone
	settings.TaxID = input.TaxID
	settings.Currency = input.Currency
	settings.ShowLogo = input.ShowLogo
	settings.ShowHeader = input.ShowHeader
	settings.ShowFooter = input.ShowFooter
	settings.HeaderText = input.HeaderText
	settings.FooterText = input.FooterText
	settings.ShowTaxLine = input.ShowTaxLine
	settings.AgentChannel = input.AgentChannel
	settings.DefaultPrinterID = input.DefaultPrinterID

	if input.PaperWidth > 0 {
		settings.PaperWidth = input.PaperWidth
	}
	if input.DispatchMode != "" {
		settings.DispatchMode = input.DispatchMode
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
