package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/application/receipt"
	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	"github.com/nftpro1212/frons-pos/internal/domain/repository"
	"github.com/nftpro1212/frons-pos/internal/infrastructure/events"
	"github.com/nftpro1212/frons-pos/pkg/apperror"
	"github.com/nftpro1212/frons-pos/pkg/printer"
)

// PrinterService handles receipt formatting and dispatch to the venue's
// configured printers.
type PrinterService struct {
	printerRepo  repository.PrinterRepository
	settingsRepo repository.SettingsRepository
	publisher    events.Publisher

	// newPrinter builds a device handle from a profile; swapped in tests
	newPrinter func(profile *entity.PrinterProfile) (printer.Printer, error)
}

// NewPrinterService creates a new printer service
func NewPrinterService(
	printerRepo repository.PrinterRepository,
	settingsRepo repository.SettingsRepository,
	publisher events.Publisher,
) *PrinterService {
	s := &PrinterService{
		printerRepo:  printerRepo,
		settingsRepo: settingsRepo,
		publisher:    publisher,
	}
	s.newPrinter = s.printerFromProfile
	return s
}

// printerFromProfile maps a stored profile to a live printer handle.
// Agent profiles publish raw bytes to the profile's channel on the bus.
func (s *PrinterService) printerFromProfile(profile *entity.PrinterProfile) (printer.Printer, error) {
	publish := func(channel string, data []byte) error {
		if s.publisher == nil {
			return fmt.Errorf("message bus is not configured")
		}
		return s.publisher.Publish(context.Background(), channel, data)
	}
	return printer.NewPrinterFromConfig(profile.Type, profile.DevicePath, profile.Address, profile.AgentChannel, publish)
}

// PrinterProfileInput holds the editable fields of a printer profile
type PrinterProfileInput struct {
	Name         string
	Type         string
	DevicePath   string
	Address      string
	AgentChannel string
	PaperWidth   int
	Enabled      *bool
}

func validateProfileInput(input *PrinterProfileInput) error {
	switch input.Type {
	case "usb":
		if input.DevicePath == "" {
			return apperror.NewBadRequestError("USB printers require a device path")
		}
	case "network":
		if input.Address == "" {
			return apperror.NewBadRequestError("Network printers require an address")
		}
	case "agent":
		if input.AgentChannel == "" {
			return apperror.NewBadRequestError("Agent printers require a channel")
		}
	case "none":
	default:
		return apperror.NewBadRequestError("Printer type must be usb, network, agent or none")
	}
	return nil
}

// ListPrinters returns all configured printer profiles
func (s *PrinterService) ListPrinters(ctx context.Context) ([]entity.PrinterProfile, error) {
	return s.printerRepo.List(ctx)
}

// GetPrinter returns one printer profile
func (s *PrinterService) GetPrinter(ctx context.Context, id uuid.UUID) (*entity.PrinterProfile, error) {
	profile, err := s.printerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("Printer")
	}
	return profile, nil
}

// CreatePrinter registers a new printer profile
func (s *PrinterService) CreatePrinter(ctx context.Context, input *PrinterProfileInput) (*entity.PrinterProfile, error) {
	if err := validateProfileInput(input); err != nil {
		return nil, err
	}

	profile := &entity.PrinterProfile{
		Name:         input.Name,
		Type:         input.Type,
		DevicePath:   input.DevicePath,
		Address:      input.Address,
		AgentChannel: input.AgentChannel,
		PaperWidth:   input.PaperWidth,
		Enabled:      true,
	}
	if profile.PaperWidth <= 0 {
		profile.PaperWidth = 32
	}
	if input.Enabled != nil {
		profile.Enabled = *input.Enabled
	}

	if err := s.printerRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdatePrinter updates an existing printer profile
func (s *PrinterService) UpdatePrinter(ctx context.Context, id uuid.UUID, input *PrinterProfileInput) (*entity.PrinterProfile, error) {
	profile, err := s.GetPrinter(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		profile.Name = input.Name
	}
	if input.Type != "" {
		profile.Type = input.Type
	}
	if input.DevicePath != "" {
		profile.DevicePath = input.DevicePath
	}
	if input.Address != "" {
		profile.Address = input.Address
	}
	if input.AgentChannel != "" {
		profile.AgentChannel = input.AgentChannel
	}
	if input.PaperWidth > 0 {
		profile.PaperWidth = input.PaperWidth
	}
	if input.Enabled != nil {
		profile.Enabled = *input.Enabled
	}

	merged := &PrinterProfileInput{
		Type:         profile.Type,
		DevicePath:   profile.DevicePath,
		Address:      profile.Address,
		AgentChannel: profile.AgentChannel,
	}
	if err := validateProfileInput(merged); err != nil {
		return nil, err
	}

	if err := s.printerRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// DeletePrinter removes a printer profile
func (s *PrinterService) DeletePrinter(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetPrinter(ctx, id); err != nil {
		return err
	}
	return s.printerRepo.Delete(ctx, id)
}

// PrinterStatus reports one profile's connection state.
type PrinterStatus struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Enabled   bool      `json:"enabled"`
	Connected bool      `json:"connected"`
}

// GetStatus returns connection status for every configured printer
func (s *PrinterService) GetStatus(ctx context.Context) ([]PrinterStatus, error) {
	profiles, err := s.printerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]PrinterStatus, 0, len(profiles))
	for i := range profiles {
		status := PrinterStatus{
			ID:      profiles[i].ID,
			Name:    profiles[i].Name,
			Type:    profiles[i].Type,
			Enabled: profiles[i].Enabled,
		}
		if p, err := s.newPrinter(&profiles[i]); err == nil {
			status.Connected = p.IsConnected()
			_ = p.Close()
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// TestPrint sends a test page to one printer profile
func (s *PrinterService) TestPrint(ctx context.Context, profileID uuid.UUID) (*entity.Receipt, error) {
	profile, err := s.printerRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("Printer")
	}

	testReceipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: "PRINTER TEST",
		},
		OrderNo:   "TEST-001",
		TableName: profile.Name,
		Date:      time.Now().Format("2006-01-02 15:04"),
		Cashier:   "System",
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 1000, Total: 1000},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 500, Total: 1000},
		},
		SubTotal:   2000,
		Total:      2000,
		Tenders:    []entity.ReceiptTender{{Method: "cash", Amount: 2000}},
		PaperWidth: profile.PaperWidth,
	}

	p, err := s.newPrinter(profile)
	if err != nil {
		return testReceipt, fmt.Errorf("test print failed: %w", err)
	}
	defer p.Close()

	if err := p.Print(FormatReceipt(testReceipt)); err != nil {
		return testReceipt, fmt.Errorf("test print failed: %w", err)
	}

	return testReceipt, nil
}

// Dispatch sends the receipt to every enabled printer and reports the
// per-printer outcome. It never returns an error for printer failures;
// those are part of the report so the caller's payment stays settled.
func (s *PrinterService) Dispatch(ctx context.Context, rcpt *entity.Receipt) *entity.PrintReport {
	report := &entity.PrintReport{}

	profiles, err := s.printerRepo.ListEnabled(ctx)
	if err != nil {
		log.Printf("Warning: failed to load printer profiles: %v", err)
		return report
	}
	if len(profiles) == 0 {
		return report
	}

	data := FormatReceipt(rcpt)
	for i := range profiles {
		result := entity.PrintResult{
			PrinterID:   profiles[i].ID,
			PrinterName: profiles[i].Name,
		}

		p, err := s.newPrinter(&profiles[i])
		if err == nil {
			err = p.Print(data)
			_ = p.Close()
		}

		if err != nil {
			result.Error = err.Error()
			report.Summary.Failed++
			log.Printf("Printer error (%s): %v", profiles[i].Name, err)
		} else {
			result.Success = true
			report.Summary.Success++
		}

		report.Summary.Total++
		report.Printers = append(report.Printers, result)
	}

	return report
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt) []byte {
	width := r.PaperWidth
	if width <= 0 {
		width = 32 // 58mm paper
	}
	doc := printer.NewDocument(width)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.TaxID != "" {
		doc.TextF("Tax ID: %s", r.Header.TaxID)
	}
	if r.Header.HeaderText != "" {
		doc.Text(r.Header.HeaderText)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Order info
	doc.KeyValue("Order:", r.OrderNo).
		KeyValue("Table:", r.TableName).
		KeyValue("Date:", r.Date)

	if r.Cashier != "" {
		doc.KeyValue("Cashier:", r.Cashier)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, receipt.Money(item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %s each", receipt.Money(item.UnitPrice))
		}
		for _, mod := range item.Modifiers {
			doc.TextF("  + %s", mod)
		}
		if item.Notes != "" {
			doc.TextF("  * %s", item.Notes)
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", receipt.Money(r.SubTotal))
	if r.Tax > 0 {
		doc.KeyValue("Tax:", receipt.Money(r.Tax))
	}
	if r.Discount > 0 {
		doc.KeyValue("Discount:", "-"+receipt.Money(r.Discount))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", receipt.Money(r.Total)).
		SetBold(false)

	for _, tender := range r.Tenders {
		doc.KeyValue(tender.Method+":", receipt.Money(tender.Amount))
	}

	doc.Separator('-')

	// Footer
	if r.ShowFooter && r.FooterText != "" {
		doc.SetAlign(printer.AlignCenter).
			LineFeed().
			Text(r.FooterText).
			LineFeed().
			SetAlign(printer.AlignLeft)
	}

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
