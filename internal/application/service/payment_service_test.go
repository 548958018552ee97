package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	"github.com/nftpro1212/frons-pos/internal/domain/enum"
	"github.com/nftpro1212/frons-pos/pkg/apperror"
	"github.com/nftpro1212/frons-pos/pkg/printer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openOrder() *entity.Order {
	return &entity.Order{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		OrderNo:  "ORD-AB12CD34",
		Status:   enum.OrderStatusOpen,
		OpenedAt: time.Now(),
		Items: []entity.OrderItem{
			{Name: "Burger", Quantity: 2, UnitPrice: 10000},
		},
	}
}

func enabledProfile(name string) entity.PrinterProfile {
	return entity.PrinterProfile{ID: uuid.New(), Name: name, Type: "network", Address: "127.0.0.1:9100", PaperWidth: 32, Enabled: true}
}

type paymentFixture struct {
	svc         *PaymentService
	printerSvc  *PrinterService
	orderRepo   *mockOrderRepo
	paymentRepo *mockPaymentRepo
	printerRepo *mockPrinterRepo
	printer     *fakePrinter
}

func newPaymentFixture(profiles ...entity.PrinterProfile) *paymentFixture {
	f := &paymentFixture{
		orderRepo:   &mockOrderRepo{},
		paymentRepo: &mockPaymentRepo{},
		printerRepo: &mockPrinterRepo{Profiles: profiles},
		printer:     &fakePrinter{},
	}

	settingsRepo := &mockSettingsRepo{}
	f.printerSvc = NewPrinterService(f.printerRepo, settingsRepo, nil)
	f.printerSvc.newPrinter = func(profile *entity.PrinterProfile) (printer.Printer, error) {
		return f.printer, nil
	}

	f.svc = NewPaymentService(f.paymentRepo, f.orderRepo, &mockUserRepo{}, settingsRepo, f.printerSvc, nil, nil)
	return f
}

func TestSubmitSettlesOrderAndPrints(t *testing.T) {
	order := openOrder()
	f := newPaymentFixture(enabledProfile("Front Desk"))
	f.orderRepo.GetWithItemsFunc = func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
		return order, nil
	}

	var savedOrder *entity.Order
	var createdPayment *entity.Payment
	f.paymentRepo.CreateSettledFunc = func(ctx context.Context, p *entity.Payment, o *entity.Order) error {
		createdPayment = p
		savedOrder = o
		return nil
	}

	result, err := f.svc.Submit(context.Background(), &SubmitPaymentInput{
		OrderID:  order.ID,
		UserID:   order.UserID,
		Method:   enum.PaymentMethodCash,
		Discount: 20, // $20 off a $200 order
	})
	require.NoError(t, err)

	require.NotNil(t, savedOrder)
	assert.Equal(t, enum.OrderStatusPaid, savedOrder.Status)
	assert.Equal(t, int64(2000), savedOrder.Discount)
	assert.Equal(t, int64(18000), savedOrder.Total)
	assert.NotNil(t, savedOrder.SettledAt)

	require.NotNil(t, createdPayment)
	assert.Equal(t, int64(18000), createdPayment.Amount)
	assert.Equal(t, enum.PaymentMethodCash, createdPayment.Method)

	assert.False(t, result.Warning)
	assert.Equal(t, "Payment completed and receipt printed", result.Message)
	require.NotNil(t, result.Payment.PrintReport)
	assert.Equal(t, 1, result.Payment.PrintReport.Summary.Success)
	assert.Len(t, f.printer.Printed, 1)
}

func TestSubmitAmountOverridesDiscount(t *testing.T) {
	order := openOrder()
	f := newPaymentFixture()
	f.orderRepo.GetWithItemsFunc = func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
		return order, nil
	}

	var savedOrder *entity.Order
	f.paymentRepo.CreateSettledFunc = func(ctx context.Context, p *entity.Payment, o *entity.Order) error {
		savedOrder = o
		return nil
	}

	_, err := f.svc.Submit(context.Background(), &SubmitPaymentInput{
		OrderID: order.ID,
		Method:  enum.PaymentMethodCard,
		Amount:  150, // the cashier typed the amount; discount derives from it
	})
	require.NoError(t, err)

	assert.Equal(t, int64(15000), savedOrder.Total)
	assert.Equal(t, int64(5000), savedOrder.Discount)
}

func TestSubmitWithoutPrintersWarnsButSettles(t *testing.T) {
	order := openOrder()
	f := newPaymentFixture() // no printer profiles
	f.orderRepo.GetWithItemsFunc = func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
		return order, nil
	}

	result, err := f.svc.Submit(context.Background(), &SubmitPaymentInput{
		OrderID: order.ID,
		Method:  enum.PaymentMethodCash,
	})
	require.NoError(t, err)

	assert.True(t, result.Warning)
	assert.Contains(t, result.Message, "not dispatched to any printer")
	assert.Equal(t, 0, result.Payment.PrintReport.Summary.Total)
}

func TestSubmitPrinterFailureKeepsPaymentSettled(t *testing.T) {
	order := openOrder()
	f := newPaymentFixture(enabledProfile("Front Desk"), enabledProfile("Kitchen"))
	f.orderRepo.GetWithItemsFunc = func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
		return order, nil
	}
	f.printer.PrintErr = errors.New("paper jam")

	var createdPayment *entity.Payment
	f.paymentRepo.CreateSettledFunc = func(ctx context.Context, p *entity.Payment, o *entity.Order) error {
		createdPayment = p
		return nil
	}

	result, err := f.svc.Submit(context.Background(), &SubmitPaymentInput{
		OrderID: order.ID,
		Method:  enum.PaymentMethodQR,
	})
	require.NoError(t, err)

	require.NotNil(t, createdPayment)
	assert.True(t, result.Warning)
	assert.Equal(t, "Payment completed, but 2 printer(s) failed", result.Message)
	assert.Equal(t, 2, result.Payment.PrintReport.Summary.Failed)
}

func TestSubmitRejectsSettledAndVoidedOrders(t *testing.T) {
	f := newPaymentFixture()

	paid := openOrder()
	paid.Status = enum.OrderStatusPaid
	f.orderRepo.GetWithItemsFunc = func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
		return paid, nil
	}
	_, err := f.svc.Submit(context.Background(), &SubmitPaymentInput{OrderID: paid.ID, Method: enum.PaymentMethodCash})
	assert.ErrorIs(t, err, apperror.ErrOrderAlreadyPaid)

	voided := openOrder()
	voided.Status = enum.OrderStatusVoid
	f.orderRepo.GetWithItemsFunc = func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
		return voided, nil
	}
	_, err = f.svc.Submit(context.Background(), &SubmitPaymentInput{OrderID: voided.ID, Method: enum.PaymentMethodCash})
	assert.ErrorIs(t, err, apperror.ErrOrderVoided)
}

func TestSubmitSplitPartsMustMatchAmountDue(t *testing.T) {
	order := openOrder()
	f := newPaymentFixture()
	f.orderRepo.GetWithItemsFunc = func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
		return order, nil
	}

	_, err := f.svc.Submit(context.Background(), &SubmitPaymentInput{
		OrderID: order.ID,
		Method:  enum.PaymentMethodSplit,
		Parts: []PaymentPartInput{
			{Method: enum.PaymentMethodCash, Amount: 100},
			{Method: enum.PaymentMethodCard, Amount: 50}, // 150 != 200 due
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match amount due")

	// Matching parts settle fine
	var createdPayment *entity.Payment
	f.paymentRepo.CreateSettledFunc = func(ctx context.Context, p *entity.Payment, o *entity.Order) error {
		createdPayment = p
		return nil
	}
	_, err = f.svc.Submit(context.Background(), &SubmitPaymentInput{
		OrderID: order.ID,
		Method:  enum.PaymentMethodSplit,
		Parts: []PaymentPartInput{
			{Method: enum.PaymentMethodCash, Amount: 100},
			{Method: enum.PaymentMethodCard, Amount: 100},
		},
	})
	require.NoError(t, err)
	require.Len(t, createdPayment.Parts, 2)
	assert.Equal(t, int64(10000), createdPayment.Parts[0].Amount)
}

func TestSubmitSplitRequiresParts(t *testing.T) {
	order := openOrder()
	f := newPaymentFixture()
	f.orderRepo.GetWithItemsFunc = func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
		return order, nil
	}

	_, err := f.svc.Submit(context.Background(), &SubmitPaymentInput{
		OrderID: order.ID,
		Method:  enum.PaymentMethodSplit,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one part")
}

func TestSubmitPaymentInsertFailureLeavesOrderOpen(t *testing.T) {
	stored := *openOrder()
	f := newPaymentFixture(enabledProfile("Front Desk"))
	f.orderRepo.GetWithItemsFunc = func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
		o := stored
		return &o, nil
	}

	insertErr := errors.New("connection reset")
	f.paymentRepo.CreateSettledFunc = func(ctx context.Context, p *entity.Payment, o *entity.Order) error {
		if insertErr != nil {
			return insertErr
		}
		stored = *o
		return nil
	}

	input := &SubmitPaymentInput{OrderID: stored.ID, Method: enum.PaymentMethodCash}
	_, err := f.svc.Submit(context.Background(), input)
	require.ErrorIs(t, err, insertErr)

	// The order never flipped to paid, so the register can retry
	assert.Equal(t, enum.OrderStatusOpen, stored.Status)
	assert.Nil(t, stored.SettledAt)

	insertErr = nil
	result, err := f.svc.Submit(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusPaid, stored.Status)
	assert.NotNil(t, result.Payment)
}

func TestPrintReceiptNoActivePrinter(t *testing.T) {
	order := openOrder()
	order.Status = enum.OrderStatusPaid
	payment := &entity.Payment{ID: uuid.New(), OrderID: order.ID, Amount: 20000, Method: enum.PaymentMethodCash, PaidAt: time.Now()}

	f := newPaymentFixture() // no profiles
	f.orderRepo.GetWithItemsFunc = func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
		return order, nil
	}
	f.paymentRepo.GetWithPartsFunc = func(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
		return payment, nil
	}

	_, err := f.svc.PrintReceipt(context.Background(), payment.ID, nil)
	assert.ErrorIs(t, err, apperror.ErrNoActivePrinter)
}

func TestPrintReceiptPartialFailure(t *testing.T) {
	order := openOrder()
	order.Status = enum.OrderStatusPaid
	payment := &entity.Payment{ID: uuid.New(), OrderID: order.ID, Amount: 20000, Method: enum.PaymentMethodCash, PaidAt: time.Now()}

	profile := enabledProfile("Front Desk")
	f := newPaymentFixture(profile)
	f.orderRepo.GetWithItemsFunc = func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
		return order, nil
	}
	f.paymentRepo.GetWithPartsFunc = func(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
		return payment, nil
	}
	f.printer.PrintErr = errors.New("offline")

	result, err := f.svc.PrintReceipt(context.Background(), payment.ID, &profile.ID)
	require.NoError(t, err)
	assert.True(t, result.Warning)
	assert.Equal(t, "1 of 1 printer(s) failed", result.Message)
}

func TestPrintReceiptRejectsDisabledPrinter(t *testing.T) {
	order := openOrder()
	order.Status = enum.OrderStatusPaid
	payment := &entity.Payment{ID: uuid.New(), OrderID: order.ID, Amount: 20000, Method: enum.PaymentMethodCash, PaidAt: time.Now()}

	profile := enabledProfile("Back Office")
	profile.Enabled = false
	f := newPaymentFixture(profile)
	f.orderRepo.GetWithItemsFunc = func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
		return order, nil
	}
	f.paymentRepo.GetWithPartsFunc = func(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
		return payment, nil
	}

	_, err := f.svc.PrintReceipt(context.Background(), payment.ID, &profile.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disabled")
	assert.Empty(t, f.printer.Printed)
}
