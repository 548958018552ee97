package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/application/receipt"
	"github.com/nftpro1212/frons-pos/internal/application/reconcile"
	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	"github.com/nftpro1212/frons-pos/internal/domain/enum"
	"github.com/nftpro1212/frons-pos/internal/domain/repository"
	"github.com/nftpro1212/frons-pos/internal/infrastructure/events"
	"github.com/nftpro1212/frons-pos/pkg/apperror"
	"github.com/nftpro1212/frons-pos/pkg/email"
	"github.com/nftpro1212/frons-pos/pkg/pagination"
)

// PaymentService settles orders: it normalizes checkout amounts, records
// the payment, and dispatches the receipt to the venue's printers.
type PaymentService struct {
	paymentRepo  repository.PaymentRepository
	orderRepo    repository.OrderRepository
	userRepo     repository.UserRepository
	settingsRepo repository.SettingsRepository
	printerSvc   *PrinterService
	emailSvc     *email.EmailService
	publisher    *events.OrderEventPublisher
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	settingsRepo repository.SettingsRepository,
	printerSvc *PrinterService,
	emailSvc *email.EmailService,
	publisher *events.OrderEventPublisher,
) *PaymentService {
	return &PaymentService{
		paymentRepo:  paymentRepo,
		orderRepo:    orderRepo,
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		printerSvc:   printerSvc,
		emailSvc:     emailSvc,
		publisher:    publisher,
	}
}

// PaymentPartInput is one slice of a split payment
type PaymentPartInput struct {
	Method enum.PaymentMethod
	Amount float64 // major units
}

// SubmitPaymentInput represents a payment submission
type SubmitPaymentInput struct {
	OrderID   uuid.UUID
	UserID    uuid.UUID
	Method    enum.PaymentMethod
	Discount  float64 // major units; applied through the checkout reducers
	Amount    float64 // major units; the amount actually tendered
	Reference string
	Parts     []PaymentPartInput
}

// SubmitPaymentResult is the outcome handed back to the register
type SubmitPaymentResult struct {
	Payment *entity.Payment `json:"payment"`
	Order   *entity.Order   `json:"order"`
	Message string          `json:"message"`
	Warning bool            `json:"warning"`
}

// Submit settles an order. The discount and amount run through the same
// reducers the checkout panel uses, so whatever the client sent is
// re-derived and clamped server side. Printer failures never roll back
// the payment; they surface as a warning in the result message.
func (s *PaymentService) Submit(ctx context.Context, input *SubmitPaymentInput) (*SubmitPaymentResult, error) {
	order, err := s.orderRepo.GetWithItems(ctx, input.OrderID)
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

	if !input.Method.Valid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}

	// Re-derive the linked discount/amount pair from the base totals
	totals := reconcile.ComputeBaseTotals(order)
	state := reconcile.NewState(totals)
	state.SetMethod(input.Method)
	state.SetDiscount(input.Discount * 100)
	if input.Amount > 0 {
		state.SetAmountDue(input.Amount * 100)
	}

	if input.Method == enum.PaymentMethodSplit && len(input.Parts) == 0 {
		return nil, apperror.NewBadRequestError("Split payment requires at least one part")
	}

	var parts []entity.PaymentPart
	if len(input.Parts) > 0 {
		var partsTotal int64
		for _, p := range input.Parts {
			if !p.Method.Valid() || p.Method == enum.PaymentMethodSplit || p.Method == enum.PaymentMethodMixed {
				return nil, apperror.NewBadRequestError("Invalid split part method")
			}
			amount := reconcile.ClampCurrency(p.Amount * 100)
			partsTotal += amount
			parts = append(parts, entity.PaymentPart{Method: p.Method, Amount: amount})
		}
		if partsTotal != state.AmountDue {
			return nil, apperror.NewBadRequestError(
				fmt.Sprintf("Split parts total %s does not match amount due %s",
					receipt.Money(partsTotal), receipt.Money(state.AmountDue)))
		}
	}

	// Settle atomically: the order flips to paid in the same transaction
	// that records the payment, so a failed insert leaves the order open
	// and the register can retry.
	now := time.Now()
	order.Discount = state.Discount
	order.Total = state.AmountDue
	order.Status = enum.OrderStatusPaid
	order.SettledAt = &now

	payment := &entity.Payment{
		OrderID:   order.ID,
		UserID:    input.UserID,
		Amount:    state.AmountDue,
		Method:    input.Method,
		Reference: input.Reference,
		PaidAt:    now,
		Parts:     parts,
	}
	if err := s.paymentRepo.CreateSettled(ctx, payment, order); err != nil {
		return nil, err
	}

	// Dispatch the receipt; the payment is already settled, so whatever
	// happens here only affects the report
	rcpt, err := s.buildReceipt(ctx, order, payment)
	if err != nil {
		return nil, err
	}
	report := s.printerSvc.Dispatch(ctx, rcpt)
	payment.PrintReport = report
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.OrderSettled, order)

	return &SubmitPaymentResult{
		Payment: payment,
		Order:   order,
		Message: report.StatusMessage(),
		Warning: !report.Ok(),
	}, nil
}

// buildReceipt composes the printable receipt for a payment, resolving
// the cashier name and current venue settings.
func (s *PaymentService) buildReceipt(ctx context.Context, order *entity.Order, payment *entity.Payment) (*entity.Receipt, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	rcpt := receipt.Build(order, payment, settings)

	if user, err := s.userRepo.GetByID(ctx, payment.UserID); err == nil && user != nil {
		rcpt.Cashier = user.FullName()
	}

	return rcpt, nil
}

// GetPayment retrieves a payment with its parts
func (s *PaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetWithParts(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}
	return payment, nil
}

// ListPayments lists payments with filtering
func (s *PaymentService) ListPayments(ctx context.Context, params *repository.PaymentFilterParams) (*pagination.PaginatedResult[entity.Payment], error) {
	payments, total, err := s.paymentRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(payments, pag), nil
}

// BuildReceipt composes the receipt document for an existing payment
func (s *PaymentService) BuildReceipt(ctx context.Context, paymentID uuid.UUID) (*entity.Receipt, error) {
	payment, err := s.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetWithItems(ctx, payment.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	return s.buildReceipt(ctx, order, payment)
}

// PrintReceipt re-dispatches a payment's receipt. With a printer ID the
// job goes to that profile only; otherwise to every enabled profile. The
// stored print report is replaced with the new outcome.
func (s *PaymentService) PrintReceipt(ctx context.Context, paymentID uuid.UUID, printerID *uuid.UUID) (*SubmitPaymentResult, error) {
	payment, err := s.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	rcpt, err := s.BuildReceipt(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	var report *entity.PrintReport
	if printerID != nil {
		report, err = s.dispatchToOne(ctx, rcpt, *printerID)
		if err != nil {
			return nil, err
		}
	} else {
		report = s.printerSvc.Dispatch(ctx, rcpt)
	}

	if report.Summary.Total == 0 {
		return nil, apperror.ErrNoActivePrinter
	}

	payment.PrintReport = report
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	message := "Receipt printed"
	warning := false
	if report.Summary.Failed > 0 {
		message = fmt.Sprintf("%d of %d printer(s) failed", report.Summary.Failed, report.Summary.Total)
		warning = true
	}

	return &SubmitPaymentResult{
		Payment: payment,
		Message: message,
		Warning: warning,
	}, nil
}

// dispatchToOne prints to a single named profile
func (s *PaymentService) dispatchToOne(ctx context.Context, rcpt *entity.Receipt, printerID uuid.UUID) (*entity.PrintReport, error) {
	profile, err := s.printerSvc.printerRepo.GetByID(ctx, printerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("Printer")
	}
	if !profile.Enabled {
		return nil, apperror.NewBadRequestError("Printer is disabled")
	}

	report := &entity.PrintReport{}
	result := entity.PrintResult{PrinterID: profile.ID, PrinterName: profile.Name}

	p, err := s.printerSvc.newPrinter(profile)
	if err == nil {
		err = p.Print(FormatReceipt(rcpt))
		_ = p.Close()
	}
	if err != nil {
		result.Error = err.Error()
		report.Summary.Failed++
	} else {
		result.Success = true
		report.Summary.Success++
	}
	report.Summary.Total++
	report.Printers = append(report.Printers, result)
	return report, nil
}

// EmailReceipt renders a payment's receipt and emails it
func (s *PaymentService) EmailReceipt(ctx context.Context, paymentID uuid.UUID, toEmail string) error {
	if s.emailSvc == nil {
		return apperror.NewBadRequestError("Email delivery is not configured")
	}

	rcpt, err := s.BuildReceipt(ctx, paymentID)
	if err != nil {
		return err
	}

	html, err := receipt.RenderHTML(rcpt)
	if err != nil {
		return err
	}

	return s.emailSvc.SendReceiptEmail(toEmail, rcpt.Header.StoreName, rcpt.OrderNo, html)
}
