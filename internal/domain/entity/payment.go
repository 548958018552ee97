package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/domain/enum"
	"gorm.io/gorm"
)

// Payment represents a settled payment against an order.
type Payment struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID          `gorm:"type:uuid;not null;index" json:"order_id"`
	UserID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount    int64              `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Method    enum.PaymentMethod `gorm:"size:20;not null" json:"method"`
	Reference string             `gorm:"size:100" json:"reference,omitempty"`
	PaidAt    time.Time          `gorm:"not null" json:"paid_at"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	DeletedAt gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Order Order         `gorm:"foreignKey:OrderID" json:"-"`
	User  User          `gorm:"foreignKey:UserID" json:"-"`
	Parts []PaymentPart `gorm:"foreignKey:PaymentID" json:"parts,omitempty"`

	// PrintReport describes the most recent receipt dispatch for this
	// payment. Stored as JSON; a failed dispatch never voids the payment.
	PrintReport *PrintReport `gorm:"type:jsonb;serializer:json" json:"print_report,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Payment) MarshalJSON() ([]byte, error) {
	type Alias Payment
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(p),
		Amount: float64(p.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

// PaymentPart is one slice of a split or mixed payment, e.g. half cash and
// half card.
type PaymentPart struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	PaymentID uuid.UUID          `gorm:"type:uuid;not null;index" json:"payment_id"`
	Method    enum.PaymentMethod `gorm:"size:20;not null" json:"method"`
	Amount    int64              `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt time.Time          `json:"created_at"`

	Payment Payment `gorm:"foreignKey:PaymentID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (pp PaymentPart) MarshalJSON() ([]byte, error) {
	type Alias PaymentPart
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(pp),
		Amount: float64(pp.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new payment part
func (pp *PaymentPart) BeforeCreate(tx *gorm.DB) error {
	if pp.ID == uuid.Nil {
		pp.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PaymentPart model
func (PaymentPart) TableName() string {
	return "payment_parts"
}

// PrintSummary counts printer dispatch attempts for one receipt.
type PrintSummary struct {
	Total   int `json:"total"`
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

// PrintReport is the per-printer delivery report attached to a payment
// after its receipt has been dispatched.
type PrintReport struct {
	Summary  PrintSummary  `json:"summary"`
	Printers []PrintResult `json:"printers,omitempty"`
}

// PrintResult records one printer's outcome within a dispatch.
type PrintResult struct {
	PrinterID   uuid.UUID `json:"printer_id"`
	PrinterName string    `json:"printer_name"`
	Success     bool      `json:"success"`
	Error       string    `json:"error,omitempty"`
}

// StatusMessage derives the user-facing submission status from the report.
// A missing or empty report means the payment went through but no printer
// was attempted; partial printer failure still leaves the payment valid.
func (r *PrintReport) StatusMessage() string {
	if r == nil || r.Summary.Total == 0 {
		return "Payment submitted; receipt was not dispatched to any printer"
	}
	if r.Summary.Failed > 0 {
		return fmt.Sprintf("Payment completed, but %d printer(s) failed", r.Summary.Failed)
	}
	return "Payment completed and receipt printed"
}

// Ok reports whether every attempted printer succeeded.
func (r *PrintReport) Ok() bool {
	return r != nil && r.Summary.Total > 0 && r.Summary.Failed == 0
}
