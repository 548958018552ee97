package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Printer dispatch modes.
const (
	DispatchDirect = "direct" // server writes to the printer itself (usb/network)
	DispatchAgent  = "agent"  // raw bytes are forwarded to a local printer agent
)

// PrinterProfile is one configured receipt printer. A venue may have
// several (cashier desk, kitchen, bar); disabled profiles are skipped
// during dispatch.
type PrinterProfile struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name         string         `gorm:"size:100;not null" json:"name"`
	Type         string         `gorm:"size:20;not null" json:"type"` // usb, network or agent
	DevicePath   string         `gorm:"size:255" json:"device_path,omitempty"`
	Address      string         `gorm:"size:255" json:"address,omitempty"`
	AgentChannel string         `gorm:"size:100" json:"agent_channel,omitempty"`
	PaperWidth   int            `gorm:"default:32" json:"paper_width"`
	Enabled      bool           `gorm:"default:true" json:"enabled"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new printer profile
func (p *PrinterProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PrinterProfile model
func (PrinterProfile) TableName() string {
	return "printer_profiles"
}
