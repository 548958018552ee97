package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VenueSettings is the single canonical settings record for the venue.
// Earlier revisions of the product kept several overlapping settings
// shapes; this one schema replaces them, with defaults applied once at
// load time.
type VenueSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Venue identity
	StoreName    string `gorm:"size:255;default:'Frons POS'" json:"store_name"`
	StoreAddress string `gorm:"type:text" json:"store_address,omitempty"`
	StorePhone   string `gorm:"size:50" json:"store_phone,omitempty"`
	TaxID        string `gorm:"size:100" json:"tax_id,omitempty"`
	Currency     string `gorm:"size:10;default:'USD'" json:"currency"`

	// Receipt layout
	ShowLogo    bool   `gorm:"default:true" json:"show_logo"`
	ShowHeader  bool   `gorm:"default:true" json:"show_header"`
	ShowFooter  bool   `gorm:"default:true" json:"show_footer"`
	HeaderText  string `gorm:"size:255" json:"header_text,omitempty"`
	FooterText  string `gorm:"size:255;default:'Thank you, see you again!'" json:"footer_text"`
	PaperWidth  int    `gorm:"default:32" json:"paper_width"`
	ShowTaxLine bool   `gorm:"default:true" json:"show_tax_line"`

	// Printer dispatch
	DispatchMode     string     `gorm:"size:20;default:'direct'" json:"dispatch_mode"` // direct or agent
	AgentChannel     string     `gorm:"size:100" json:"agent_channel,omitempty"`
	DefaultPrinterID *uuid.UUID `gorm:"type:uuid" json:"default_printer_id,omitempty"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *VenueSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the VenueSettings model
func (VenueSettings) TableName() string {
	return "venue_settings"
}
