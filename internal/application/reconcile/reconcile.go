// Package reconcile holds the order checkout arithmetic: base totals
// derived from an order, and the two-way linked discount/amount-due pair
// a cashier adjusts before submitting payment. Everything here is pure;
// persistence and transport live elsewhere.
package reconcile

import (
	"math"

	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	"github.com/nftpro1212/frons-pos/internal/domain/enum"
)

// DiscountPresets are the quick-discount percentages offered at checkout.
var DiscountPresets = []int{0, 5, 10, 15}

// presetTolerance is how close (in percentage points) the current
// discount ratio must be to a preset for it to count as active.
const presetTolerance = 2.0

// ClampCurrency rounds v to the nearest whole cent and floors at zero.
// NaN and infinities are coerced to zero; fractional minor units are
// never stored.
func ClampCurrency(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	n := int64(math.Round(v))
	if n < 0 {
		return 0
	}
	return n
}

// clampTo bounds v to [0, max].
func clampTo(v, max int64) int64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// BaseTotals are the amounts derived from an order before any checkout
// adjustment. All values are cents.
type BaseTotals struct {
	SubTotal            int64 `json:"sub_total"`
	Tax                 int64 `json:"tax"`
	TotalBeforeDiscount int64 `json:"total_before_discount"`
	BaseDiscount        int64 `json:"base_discount"`
	TotalDue            int64 `json:"total_due"`
	ItemCount           int   `json:"item_count"`
}

// ComputeBaseTotals derives the checkout base amounts from an order.
// The stored subtotal wins when present; otherwise it is the sum of the
// line totals, with missing quantities or prices treated as zero. Tax is
// taken from the order verbatim, never derived here. The stored discount
// is clamped so it can never exceed subtotal plus tax.
func ComputeBaseTotals(order *entity.Order) BaseTotals {
	t := BaseTotals{}
	if order == nil {
		return t
	}

	for _, item := range order.Items {
		t.SubTotal += item.LineTotal()
		if item.Quantity > 0 {
			t.ItemCount += item.Quantity
		}
	}
	if order.SubTotal > 0 {
		t.SubTotal = order.SubTotal
	}

	if order.Tax > 0 {
		t.Tax = order.Tax
	}
	t.TotalBeforeDiscount = t.SubTotal + t.Tax

	t.BaseDiscount = clampTo(order.Discount, t.TotalBeforeDiscount)
	t.TotalDue = t.TotalBeforeDiscount - t.BaseDiscount
	return t
}

// fromDiscount and fromAmount are the two reducers behind the linked
// discount/amount pair. Each takes one requested value and derives the
// other, so the pair can never drift apart.

func fromDiscount(base, discount int64) (int64, int64) {
	d := clampTo(discount, base)
	return d, base - d
}

func fromAmount(base, amount int64) (int64, int64) {
	a := clampTo(amount, base)
	return base - a, a
}

// State is the ephemeral checkout state for one selected order. It is
// recreated whenever the order identity or its base totals change, and
// discarded when the checkout panel closes.
type State struct {
	Method    enum.PaymentMethod `json:"method"`
	Discount  int64              `json:"discount"`   // cents
	AmountDue int64              `json:"amount_due"` // cents

	totals BaseTotals
}

// NewState builds the initial checkout state for an order's base totals:
// cash method, the order's own (clamped) discount, and the derived
// amount due.
func NewState(totals BaseTotals) *State {
	return &State{
		Method:    enum.PaymentMethodCash,
		Discount:  totals.BaseDiscount,
		AmountDue: totals.TotalDue,
		totals:    totals,
	}
}

// Totals returns the base totals this state was built from.
func (s *State) Totals() BaseTotals {
	return s.totals
}

// SetMethod selects the payment method; invalid input keeps the current one.
func (s *State) SetMethod(m enum.PaymentMethod) {
	if m.Valid() {
		s.Method = m
	}
}

// SetDiscount applies a requested discount: rounded, clamped to
// [0, totalBeforeDiscount], with the amount due derived from it.
func (s *State) SetDiscount(v float64) {
	s.Discount, s.AmountDue = fromDiscount(s.totals.TotalBeforeDiscount, ClampCurrency(v))
}

// SetAmountDue applies a requested amount due: rounded, clamped to
// [0, totalBeforeDiscount], with the discount derived from it. This is
// the exact inverse of SetDiscount.
func (s *State) SetAmountDue(v float64) {
	s.Discount, s.AmountDue = fromAmount(s.totals.TotalBeforeDiscount, ClampCurrency(v))
}

// ApplyPreset sets the discount to the given percentage of the base
// total. A zero base forces the discount to zero regardless of percent.
func (s *State) ApplyPreset(percent int) {
	if s.totals.TotalBeforeDiscount == 0 {
		s.SetDiscount(0)
		return
	}
	s.SetDiscount(float64(s.totals.TotalBeforeDiscount) * float64(percent) / 100)
}

// ActivePreset returns the preset whose percentage lies within two
// points of the current discount-to-base ratio, if any.
func (s *State) ActivePreset() (int, bool) {
	if s.totals.TotalBeforeDiscount == 0 {
		return 0, false
	}
	ratio := float64(s.Discount) / float64(s.totals.TotalBeforeDiscount) * 100
	for _, p := range DiscountPresets {
		if math.Abs(ratio-float64(p)) <= presetTolerance {
			return p, true
		}
	}
	return 0, false
}

// PresetsEnabled reports whether the discount controls should be usable;
// an empty order disables them all.
func (s *State) PresetsEnabled() bool {
	return s.totals.TotalBeforeDiscount > 0
}
