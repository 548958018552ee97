package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	domainRepo "github.com/nftpro1212/frons-pos/internal/domain/repository"
	"gorm.io/gorm"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// CreateSettled inserts the payment and persists the settled order in one
// transaction, so an order is never marked paid without its payment row.
func (r *paymentRepository) CreateSettled(ctx context.Context, payment *entity.Payment, order *entity.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		return tx.Save(order).Error
	})
}

func (r *paymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &payment, err
}

func (r *paymentRepository) GetWithParts(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := r.db.WithContext(ctx).
		Preload("Parts").
		First(&payment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &payment, err
}

func (r *paymentRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Preload("Parts").
		Where("order_id = ?", orderID).
		Order("paid_at ASC").
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

func (r *paymentRepository) List(ctx context.Context, params *domainRepo.PaymentFilterParams) ([]entity.Payment, int64, error) {
	var payments []entity.Payment
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Payment{})

	if params.Method != nil {
		query = query.Where("method = ?", *params.Method)
	}

	if params.OrderID != nil {
		query = query.Where("order_id = ?", *params.OrderID)
	}

	if params.StartDate != nil {
		query = query.Where("paid_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("paid_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Parts").
		Order("paid_at DESC").
		Find(&payments).Error

	return payments, total, err
}

func (r *paymentRepository) SalesByMethod(ctx context.Context, from, to time.Time) ([]domainRepo.MethodSalesResult, error) {
	var results []domainRepo.MethodSalesResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			method,
			COALESCE(SUM(amount), 0) as amount,
			COUNT(id) as count
		FROM payments
		WHERE deleted_at IS NULL
		AND paid_at >= ? AND paid_at < ?
		GROUP BY method
		ORDER BY amount DESC
	`, from, to).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}
