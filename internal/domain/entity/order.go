package entity

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/domain/enum"
	"gorm.io/gorm"
)

// Order represents a restaurant order (dine-in, takeaway or delivery).
type Order struct {
	ID         uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	TableID    *uuid.UUID        `gorm:"type:uuid;index" json:"table_id,omitempty"`
	TableLabel string            `gorm:"column:table_name;size:100" json:"table_name"`
	Channel    enum.OrderChannel `gorm:"size:20;default:'dine_in'" json:"channel"`
	OrderNo    string            `gorm:"size:100;unique;not null" json:"order_no"`
	Status     enum.OrderStatus  `gorm:"default:0" json:"status"`
	Guests     int               `gorm:"default:0" json:"guests"`
	SubTotal   int64             `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Tax        int64             `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Discount   int64             `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Total      int64             `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Note       string            `gorm:"type:text" json:"note,omitempty"`
	OpenedAt   time.Time         `gorm:"not null" json:"opened_at"`
	SettledAt  *time.Time        `json:"settled_at,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	DeletedAt  gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	User  User        `gorm:"foreignKey:UserID" json:"-"`
	Table *Table      `gorm:"foreignKey:TableID" json:"table,omitempty"`
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		SubTotal float64 `json:"sub_total"`
		Tax      float64 `json:"tax"`
		Discount float64 `json:"discount"`
		Total    float64 `json:"total"`
	}{
		Alias:    Alias(o),
		SubTotal: float64(o.SubTotal) / 100,
		Tax:      float64(o.Tax) / 100,
		Discount: float64(o.Discount) / 100,
		Total:    float64(o.Total) / 100,
	})
}

// UnmarshalJSON mirrors MarshalJSON, converting decimal amounts back to cents
func (o *Order) UnmarshalJSON(data []byte) error {
	type Alias Order
	aux := &struct {
		*Alias
		SubTotal float64 `json:"sub_total"`
		Tax      float64 `json:"tax"`
		Discount float64 `json:"discount"`
		Total    float64 `json:"total"`
	}{Alias: (*Alias)(o)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	o.SubTotal = int64(math.Round(aux.SubTotal * 100))
	o.Tax = int64(math.Round(aux.Tax * 100))
	o.Discount = int64(math.Round(aux.Discount * 100))
	o.Total = int64(math.Round(aux.Total * 100))
	return nil
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// ChannelLabel returns the name shown on tickets and receipts: the dining
// table's name, or the delivery label when the order has no table.
func (o *Order) ChannelLabel() string {
	if o.TableLabel != "" {
		return o.TableLabel
	}
	return "Delivery"
}

// OrderItem represents a line item in an order. Name and UnitPrice are
// snapshots taken at ordering time so menu edits never rewrite history.
type OrderItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	MenuItemID *uuid.UUID      `gorm:"type:uuid;index" json:"menu_item_id,omitempty"`
	Name       string          `gorm:"size:255;not null" json:"name"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  int64           `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Notes      string          `gorm:"type:text" json:"notes,omitempty"`
	Modifiers  json.RawMessage `gorm:"type:jsonb" json:"modifiers,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (oi OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		LineTotal float64 `json:"line_total"`
	}{
		Alias:     Alias(oi),
		UnitPrice: float64(oi.UnitPrice) / 100,
		LineTotal: float64(oi.LineTotal()) / 100,
	})
}

// UnmarshalJSON mirrors MarshalJSON, converting decimal amounts back to cents
func (oi *OrderItem) UnmarshalJSON(data []byte) error {
	type Alias OrderItem
	aux := &struct {
		*Alias
		UnitPrice float64 `json:"unit_price"`
		LineTotal float64 `json:"line_total"`
	}{Alias: (*Alias)(oi)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	oi.UnitPrice = int64(math.Round(aux.UnitPrice * 100))
	return nil
}

// LineTotal returns unit price times quantity in cents. Negative quantities
// and prices are treated as zero.
func (oi *OrderItem) LineTotal() int64 {
	if oi.Quantity <= 0 || oi.UnitPrice <= 0 {
		return 0
	}
	return oi.UnitPrice * int64(oi.Quantity)
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
