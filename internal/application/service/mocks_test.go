package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	"github.com/nftpro1212/frons-pos/internal/domain/enum"
	"github.com/nftpro1212/frons-pos/internal/domain/repository"
	"github.com/nftpro1212/frons-pos/pkg/pagination"
	"github.com/nftpro1212/frons-pos/pkg/printer"
)

// Hand-rolled fakes with overridable function fields. Only the methods a
// test exercises need an implementation; the rest return zero values.

type mockOrderRepo struct {
	GetWithItemsFunc func(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	UpdateFunc       func(ctx context.Context, order *entity.Order) error
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*entity.Order, error)
}

func (m *mockOrderRepo) Create(ctx context.Context, order *entity.Order) error { return nil }
func (m *mockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}
func (m *mockOrderRepo) GetByOrderNo(ctx context.Context, orderNo string) (*entity.Order, error) {
	return nil, nil
}
func (m *mockOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, order)
	}
	return nil
}
func (m *mockOrderRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (m *mockOrderRepo) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	return nil, 0, nil
}
func (m *mockOrderRepo) ListWithCursor(ctx context.Context, params *repository.OrderCursorFilterParams) ([]entity.Order, error) {
	return nil, nil
}
func (m *mockOrderRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	if m.GetWithItemsFunc != nil {
		return m.GetWithItemsFunc(ctx, id)
	}
	return nil, nil
}
func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	return nil
}
func (m *mockOrderRepo) ListOpenByTable(ctx context.Context, tableID uuid.UUID) ([]entity.Order, error) {
	return nil, nil
}

type mockPaymentRepo struct {
	CreateFunc        func(ctx context.Context, payment *entity.Payment) error
	CreateSettledFunc func(ctx context.Context, payment *entity.Payment, order *entity.Order) error
	UpdateFunc        func(ctx context.Context, payment *entity.Payment) error
	GetWithPartsFunc  func(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, payment)
	}
	return nil
}
func (m *mockPaymentRepo) CreateSettled(ctx context.Context, payment *entity.Payment, order *entity.Order) error {
	if m.CreateSettledFunc != nil {
		return m.CreateSettledFunc(ctx, payment, order)
	}
	return nil
}
func (m *mockPaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	return nil, nil
}
func (m *mockPaymentRepo) GetWithParts(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	if m.GetWithPartsFunc != nil {
		return m.GetWithPartsFunc(ctx, id)
	}
	return nil, nil
}
func (m *mockPaymentRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.Payment, error) {
	return nil, nil
}
func (m *mockPaymentRepo) Update(ctx context.Context, payment *entity.Payment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, payment)
	}
	return nil
}
func (m *mockPaymentRepo) List(ctx context.Context, params *repository.PaymentFilterParams) ([]entity.Payment, int64, error) {
	return nil, 0, nil
}
func (m *mockPaymentRepo) SalesByMethod(ctx context.Context, from, to time.Time) ([]repository.MethodSalesResult, error) {
	return nil, nil
}

type mockUserRepo struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, nil
}
func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return nil, nil
}
func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (m *mockUserRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.User, int64, error) {
	return nil, 0, nil
}
func (m *mockUserRepo) GetWithRoles(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return nil, nil
}
func (m *mockUserRepo) AssignRole(ctx context.Context, userID uuid.UUID, roleID uint) error {
	return nil
}
func (m *mockUserRepo) RemoveRole(ctx context.Context, userID uuid.UUID, roleID uint) error {
	return nil
}

type mockSettingsRepo struct {
	GetFunc func(ctx context.Context) (*entity.VenueSettings, error)
}

func (m *mockSettingsRepo) Get(ctx context.Context) (*entity.VenueSettings, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return &entity.VenueSettings{
		StoreName:  "Test Venue",
		Currency:   "USD",
		ShowHeader: true,
		ShowFooter: true,
		FooterText: "Thank you",
		PaperWidth: 32,
	}, nil
}
func (m *mockSettingsRepo) Create(ctx context.Context, settings *entity.VenueSettings) error {
	return nil
}
func (m *mockSettingsRepo) Update(ctx context.Context, settings *entity.VenueSettings) error {
	return nil
}

type mockPrinterRepo struct {
	Profiles []entity.PrinterProfile
}

func (m *mockPrinterRepo) Create(ctx context.Context, profile *entity.PrinterProfile) error {
	return nil
}
func (m *mockPrinterRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.PrinterProfile, error) {
	for i := range m.Profiles {
		if m.Profiles[i].ID == id {
			return &m.Profiles[i], nil
		}
	}
	return nil, nil
}
func (m *mockPrinterRepo) Update(ctx context.Context, profile *entity.PrinterProfile) error {
	return nil
}
func (m *mockPrinterRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (m *mockPrinterRepo) List(ctx context.Context) ([]entity.PrinterProfile, error) {
	return m.Profiles, nil
}
func (m *mockPrinterRepo) ListEnabled(ctx context.Context) ([]entity.PrinterProfile, error) {
	var enabled []entity.PrinterProfile
	for _, p := range m.Profiles {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	return enabled, nil
}

// fakePrinter records what was printed and optionally fails.
type fakePrinter struct {
	PrintErr error
	Printed  [][]byte
}

func (p *fakePrinter) Print(data []byte) error {
	if p.PrintErr != nil {
		return p.PrintErr
	}
	p.Printed = append(p.Printed, data)
	return nil
}
func (p *fakePrinter) Close() error      { return nil }
func (p *fakePrinter) IsConnected() bool { return true }

var _ printer.Printer = (*fakePrinter)(nil)
