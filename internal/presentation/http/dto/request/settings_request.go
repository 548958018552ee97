package request

// UpdateSettingsRequest replaces the venue settings
type UpdateSettingsRequest struct {
	StoreName    string `json:"store_name" binding:"required,min=1,max=255"`
	StoreAddress string `json:"store_address"`
	StorePhone   string `json:"store_phone" binding:"omitempty,max=50"`
	TaxID        string `json:"tax_id" binding:"omitempty,max=100"`
	Currency     string `json:"currency" binding:"required,min=1,max=10"`

	ShowLogo    bool   `json:"show_logo"`
	ShowHeader  bool   `json:"show_header"`
	ShowFooter  bool   `json:"show_footer"`
	HeaderText  string `json:"header_text" binding:"omitempty,max=255"`
	FooterText  string `json:"footer_text" binding:"omitempty,max=255"`
	PaperWidth  int    `json:"paper_width" binding:"omitempty,oneof=32 48"`
	ShowTaxLine bool   `json:"show_tax_line"`

	DispatchMode     string  `json:"dispatch_mode" binding:"omitempty,oneof=direct agent"`
	AgentChannel     string  `json:"agent_channel" binding:"omitempty,max=100"`
	DefaultPrinterID *string `json:"default_printer_id" binding:"omitempty,uuid"`
}
