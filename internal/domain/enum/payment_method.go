package enum

// PaymentMethod is how an order was settled.
type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "cash"
	PaymentMethodCard  PaymentMethod = "card"
	PaymentMethodQR    PaymentMethod = "qr"
	PaymentMethodMixed PaymentMethod = "mixed"
	PaymentMethodSplit PaymentMethod = "split"
)

// Valid reports whether m is one of the supported methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodQR,
		PaymentMethodMixed, PaymentMethodSplit:
		return true
	}
	return false
}

// Label returns the display name used on receipts.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentMethodCash:
		return "Cash"
	case PaymentMethodCard:
		return "Card"
	case PaymentMethodQR:
		return "QR"
	case PaymentMethodMixed:
		return "Mixed"
	case PaymentMethodSplit:
		return "Split"
	}
	return string(m)
}
