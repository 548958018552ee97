package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Table represents a physical dining table on the floor map.
type Table struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Zone      string         `gorm:"size:100" json:"zone,omitempty"`
	Seats     int            `gorm:"default:4" json:"seats"`
	Active    bool           `gorm:"default:true" json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new table
func (t *Table) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Table model
func (Table) TableName() string {
	return "dining_tables"
}
