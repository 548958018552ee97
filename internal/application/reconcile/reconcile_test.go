package reconcile

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	"github.com/nftpro1212/frons-pos/internal/domain/enum"
)

func orderWithItems(items ...entity.OrderItem) *entity.Order {
	return &entity.Order{
		ID:    uuid.New(),
		Items: items,
	}
}

func TestClampCurrency(t *testing.T) {
	assert.Equal(t, int64(0), ClampCurrency(math.NaN()))
	assert.Equal(t, int64(0), ClampCurrency(math.Inf(1)))
	assert.Equal(t, int64(0), ClampCurrency(math.Inf(-1)))
	assert.Equal(t, int64(0), ClampCurrency(-125.0))
	assert.Equal(t, int64(0), ClampCurrency(-0.4))
	assert.Equal(t, int64(2), ClampCurrency(1.5))
	assert.Equal(t, int64(1), ClampCurrency(1.4))
	assert.Equal(t, int64(20000), ClampCurrency(20000))
}

func TestComputeBaseTotals_DerivedSubtotal(t *testing.T) {
	// Two items at 100.00 each.
	order := orderWithItems(
		entity.OrderItem{Name: "Nasi Goreng", Quantity: 2, UnitPrice: 10000},
	)

	got := ComputeBaseTotals(order)

	assert.Equal(t, int64(20000), got.SubTotal)
	assert.Equal(t, int64(0), got.Tax)
	assert.Equal(t, int64(20000), got.TotalBeforeDiscount)
	assert.Equal(t, int64(0), got.BaseDiscount)
	assert.Equal(t, int64(20000), got.TotalDue)
	assert.Equal(t, 2, got.ItemCount)
}

func TestComputeBaseTotals_StoredSubtotalWins(t *testing.T) {
	order := orderWithItems(
		entity.OrderItem{Name: "Soda", Quantity: 1, UnitPrice: 500},
	)
	order.SubTotal = 700
	order.Tax = 70

	got := ComputeBaseTotals(order)

	assert.Equal(t, int64(700), got.SubTotal)
	assert.Equal(t, int64(70), got.Tax)
	assert.Equal(t, int64(770), got.TotalBeforeDiscount)
}

func TestComputeBaseTotals_MalformedItemsTreatedAsZero(t *testing.T) {
	order := orderWithItems(
		entity.OrderItem{Name: "Ghost", Quantity: -3, UnitPrice: 10000},
		entity.OrderItem{Name: "Freebie", Quantity: 2, UnitPrice: 0},
		entity.OrderItem{Name: "Real", Quantity: 1, UnitPrice: 1500},
	)

	got := ComputeBaseTotals(order)

	assert.Equal(t, int64(1500), got.SubTotal)
	assert.Equal(t, 3, got.ItemCount) // only non-negative quantities counted
}

func TestComputeBaseTotals_DiscountClampedToBase(t *testing.T) {
	order := orderWithItems(
		entity.OrderItem{Name: "Tea", Quantity: 1, UnitPrice: 1000},
	)
	order.Discount = 99999

	got := ComputeBaseTotals(order)

	assert.Equal(t, int64(1000), got.BaseDiscount)
	assert.Equal(t, int64(0), got.TotalDue)
}

func TestComputeBaseTotals_EmptyOrder(t *testing.T) {
	got := ComputeBaseTotals(orderWithItems())

	assert.Equal(t, int64(0), got.SubTotal)
	assert.Equal(t, int64(0), got.TotalDue)
	assert.Equal(t, int64(0), got.BaseDiscount)
	assert.Equal(t, 0, got.ItemCount)

	st := NewState(got)
	assert.False(t, st.PresetsEnabled())
	assert.Equal(t, int64(0), st.Discount)
	assert.Equal(t, int64(0), st.AmountDue)
}

func TestComputeBaseTotals_NilOrder(t *testing.T) {
	assert.Equal(t, BaseTotals{}, ComputeBaseTotals(nil))
}

func TestNewState_Defaults(t *testing.T) {
	order := orderWithItems(
		entity.OrderItem{Name: "Burger", Quantity: 2, UnitPrice: 10000},
	)
	order.Discount = 3000

	st := NewState(ComputeBaseTotals(order))

	assert.Equal(t, enum.PaymentMethodCash, st.Method)
	assert.Equal(t, int64(3000), st.Discount)
	assert.Equal(t, int64(17000), st.AmountDue)
}

func TestSetDiscount_ClampsAndDerivesAmount(t *testing.T) {
	st := NewState(BaseTotals{SubTotal: 20000, TotalBeforeDiscount: 20000, TotalDue: 20000})

	st.SetDiscount(5000)
	assert.Equal(t, int64(5000), st.Discount)
	assert.Equal(t, int64(15000), st.AmountDue)

	st.SetDiscount(-200)
	assert.Equal(t, int64(0), st.Discount)
	assert.Equal(t, int64(20000), st.AmountDue)

	st.SetDiscount(999999)
	assert.Equal(t, int64(20000), st.Discount)
	assert.Equal(t, int64(0), st.AmountDue)

	st.SetDiscount(math.NaN())
	assert.Equal(t, int64(0), st.Discount)
	assert.Equal(t, int64(20000), st.AmountDue)
}

func TestSetAmountDue_IsSymmetricInverse(t *testing.T) {
	st := NewState(BaseTotals{SubTotal: 20000, TotalBeforeDiscount: 20000, TotalDue: 20000})

	st.SetAmountDue(15000)
	assert.Equal(t, int64(5000), st.Discount)
	assert.Equal(t, int64(15000), st.AmountDue)

	st.SetAmountDue(-1)
	assert.Equal(t, int64(20000), st.Discount)
	assert.Equal(t, int64(0), st.AmountDue)

	st.SetAmountDue(123456789)
	assert.Equal(t, int64(0), st.Discount)
	assert.Equal(t, int64(20000), st.AmountDue)
}

func TestLinkedInvariantHolds(t *testing.T) {
	st := NewState(BaseTotals{TotalBeforeDiscount: 12345, TotalDue: 12345})

	for _, v := range []float64{0, 1, 99.4, 12345, 20000, -50, math.NaN()} {
		st.SetDiscount(v)
		assert.Equal(t, st.totals.TotalBeforeDiscount, st.Discount+st.AmountDue)
		assert.GreaterOrEqual(t, st.AmountDue, int64(0))
		assert.GreaterOrEqual(t, st.Discount, int64(0))

		st.SetAmountDue(v)
		assert.Equal(t, st.totals.TotalBeforeDiscount, st.Discount+st.AmountDue)
		assert.GreaterOrEqual(t, st.AmountDue, int64(0))
		assert.GreaterOrEqual(t, st.Discount, int64(0))
	}
}

func TestSetDiscount_IdempotentOnOwnValue(t *testing.T) {
	st := NewState(BaseTotals{TotalBeforeDiscount: 20000, TotalDue: 20000})
	st.SetDiscount(7373)

	before := *st
	st.SetDiscount(float64(st.Discount))
	assert.Equal(t, before.Discount, st.Discount)
	assert.Equal(t, before.AmountDue, st.AmountDue)
}

func TestRoundTrip_Converges(t *testing.T) {
	// setDiscount(x), then setAmountDue(amountDue), then setDiscount(discount)
	// must reach a fixed point with no oscillation.
	st := NewState(BaseTotals{TotalBeforeDiscount: 20000, TotalDue: 20000})

	st.SetDiscount(4999)
	d1, a1 := st.Discount, st.AmountDue

	st.SetAmountDue(float64(a1))
	assert.Equal(t, d1, st.Discount)
	assert.Equal(t, a1, st.AmountDue)

	st.SetDiscount(float64(st.Discount))
	assert.Equal(t, d1, st.Discount)
	assert.Equal(t, a1, st.AmountDue)
}

func TestApplyPreset(t *testing.T) {
	st := NewState(BaseTotals{TotalBeforeDiscount: 20000, TotalDue: 20000})

	st.ApplyPreset(10)
	assert.Equal(t, int64(2000), st.Discount)
	assert.Equal(t, int64(18000), st.AmountDue)

	// Manual edit after preset: discount recomputed from amount due.
	st.SetAmountDue(15000)
	assert.Equal(t, int64(5000), st.Discount)
}

func TestApplyPreset_ZeroBaseForcesZero(t *testing.T) {
	st := NewState(BaseTotals{})

	for _, p := range DiscountPresets {
		st.ApplyPreset(p)
		assert.Equal(t, int64(0), st.Discount)
		assert.Equal(t, int64(0), st.AmountDue)
	}
	assert.False(t, st.PresetsEnabled())
}

func TestActivePreset(t *testing.T) {
	st := NewState(BaseTotals{TotalBeforeDiscount: 20000, TotalDue: 20000})

	st.ApplyPreset(10)
	p, ok := st.ActivePreset()
	require.True(t, ok)
	assert.Equal(t, 10, p)

	// 11.5% is within two points of 10.
	st.SetDiscount(2300)
	p, ok = st.ActivePreset()
	require.True(t, ok)
	assert.Equal(t, 10, p)

	// 25% matches nothing.
	st.SetDiscount(5000)
	_, ok = st.ActivePreset()
	assert.False(t, ok)

	// Zero base never reports an active preset.
	empty := NewState(BaseTotals{})
	_, ok = empty.ActivePreset()
	assert.False(t, ok)
}

func TestSetMethod(t *testing.T) {
	st := NewState(BaseTotals{TotalBeforeDiscount: 100, TotalDue: 100})

	st.SetMethod(enum.PaymentMethodCard)
	assert.Equal(t, enum.PaymentMethodCard, st.Method)

	st.SetMethod(enum.PaymentMethod("cheque"))
	assert.Equal(t, enum.PaymentMethodCard, st.Method)
}
