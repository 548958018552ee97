package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	"github.com/nftpro1212/frons-pos/internal/domain/enum"
	"github.com/nftpro1212/frons-pos/pkg/pagination"
)

// PaymentRepository defines the interface for payment data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	CreateSettled(ctx context.Context, payment *entity.Payment, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	GetWithParts(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.Payment, error)
	Update(ctx context.Context, payment *entity.Payment) error
	List(ctx context.Context, params *PaymentFilterParams) ([]entity.Payment, int64, error)
	SalesByMethod(ctx context.Context, from, to time.Time) ([]MethodSalesResult, error)
}

// PaymentFilterParams contains filtering parameters for payment queries
type PaymentFilterParams struct {
	Pagination *pagination.PaginationParams
	Method     *enum.PaymentMethod
	OrderID    *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// MethodSalesResult aggregates settled amounts per payment method.
type MethodSalesResult struct {
	Method enum.PaymentMethod
	Amount int64 // cents
	Count  int
}
