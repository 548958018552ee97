package request

// PaymentPartRequest is one slice of a split payment
type PaymentPartRequest struct {
	Method string  `json:"method" binding:"required,oneof=cash card qr"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// SubmitPaymentRequest settles an order
type SubmitPaymentRequest struct {
	OrderID   string               `json:"order_id" binding:"required,uuid"`
	Method    string               `json:"method" binding:"required,oneof=cash card qr mixed split"`
	Discount  float64              `json:"discount" binding:"omitempty,min=0"`
	Amount    float64              `json:"amount" binding:"omitempty,min=0"`
	Reference string               `json:"reference"`
	Parts     []PaymentPartRequest `json:"parts" binding:"omitempty,dive"`
}

// CheckoutPreviewRequest reconciles a discount/amount pair against an
// order's base totals without settling anything
type CheckoutPreviewRequest struct {
	Discount *float64 `json:"discount" binding:"omitempty,min=0"`
	Amount   *float64 `json:"amount" binding:"omitempty,min=0"`
}

// PrintReceiptRequest re-prints a payment's receipt
type PrintReceiptRequest struct {
	PrinterID *string `json:"printer_id" binding:"omitempty,uuid"`
}

// EmailReceiptRequest emails a payment's receipt
type EmailReceiptRequest struct {
	Email string `json:"email" binding:"required,email"`
}
