package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuCategory groups menu items (starters, mains, drinks, ...).
type MenuCategory struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null;uniqueIndex" json:"name"`
	SortOrder int            `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Items []MenuItem `gorm:"foreignKey:CategoryID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *MenuCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MenuCategory model
func (MenuCategory) TableName() string {
	return "menu_categories"
}

// MenuItem is a sellable dish or drink.
type MenuItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"category_id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Price       int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Available   bool           `gorm:"default:true" json:"available"`
	Image       *string        `gorm:"size:255" json:"image,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Category MenuCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (m MenuItem) MarshalJSON() ([]byte, error) {
	type Alias MenuItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(m),
		Price: float64(m.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new menu item
func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}
