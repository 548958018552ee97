package entity

// ReceiptHeader holds the venue header printed at the top of a receipt.
type ReceiptHeader struct {
	ShowLogo   bool   `json:"show_logo"`
	StoreName  string `json:"store_name"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty"`
	TaxID      string `json:"tax_id,omitempty"`
	HeaderText string `json:"header_text,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string   `json:"name"`
	Quantity  int      `json:"quantity"`
	UnitPrice int64    `json:"unit_price"` // cents
	Total     int64    `json:"total"`      // cents
	Notes     string   `json:"notes,omitempty"`
	Modifiers []string `json:"modifiers,omitempty"`
}

// ReceiptTender is one payment-method line in the breakdown. Split
// payments produce one line per part; everything else a single line.
type ReceiptTender struct {
	Method string `json:"method"`
	Amount int64  `json:"amount"` // cents
}

// Receipt is a value object representing a printable receipt. It is not a
// database entity; it is composed from order/payment/settings data at
// print time, and both delivery paths (thermal ESC/POS and standalone
// HTML) render from the same Receipt so they can never diverge.
type Receipt struct {
	Header     ReceiptHeader   `json:"header"`
	OrderNo    string          `json:"order_no"`
	TableName  string          `json:"table_name"` // falls back to the delivery label
	Date       string          `json:"date"`
	Cashier    string          `json:"cashier,omitempty"`
	Items      []ReceiptItem   `json:"items"`
	SubTotal   int64           `json:"sub_total"` // cents
	Tax        int64           `json:"tax"`       // cents
	Discount   int64           `json:"discount"`  // cents
	Total      int64           `json:"total"`     // cents
	Tenders    []ReceiptTender `json:"tenders"`
	ShowFooter bool            `json:"show_footer"`
	FooterText string          `json:"footer_text,omitempty"`
	Currency   string          `json:"currency"`
	PaperWidth int             `json:"paper_width"`
}
