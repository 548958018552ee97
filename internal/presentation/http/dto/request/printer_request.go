package request

// CreatePrinterRequest registers a printer profile
type CreatePrinterRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Type         string `json:"type" binding:"required,oneof=usb network agent none"`
	DevicePath   string `json:"device_path"`
	Address      string `json:"address"`
	AgentChannel string `json:"agent_channel"`
	PaperWidth   int    `json:"paper_width" binding:"omitempty,oneof=32 48"`
	Enabled      *bool  `json:"enabled"`
}

// UpdatePrinterRequest edits a printer profile; omitted fields are unchanged
type UpdatePrinterRequest struct {
	Name         string `json:"name" binding:"omitempty,min=2,max=100"`
	Type         string `json:"type" binding:"omitempty,oneof=usb network agent none"`
	DevicePath   string `json:"device_path"`
	Address      string `json:"address"`
	AgentChannel string `json:"agent_channel"`
	PaperWidth   int    `json:"paper_width" binding:"omitempty,oneof=32 48"`
	Enabled      *bool  `json:"enabled"`
}
