package receipt

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	"github.com/nftpro1212/frons-pos/internal/domain/enum"
)

func testSettings() *entity.VenueSettings {
	return &entity.VenueSettings{
		StoreName:  "Warung Frons",
		StorePhone: "+62 811 000 111",
		Currency:   "IDR",
		ShowLogo:   true,
		ShowHeader: true,
		ShowFooter: true,
		FooterText: "Thank you, see you again!",
		PaperWidth: 32,
	}
}

func testOrder() *entity.Order {
	return &entity.Order{
		ID:         uuid.New(),
		OrderNo:    "ORD-1204",
		TableLabel: "Bar 7",
		OpenedAt:   time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC),
		Tax:        1000,
		Items: []entity.OrderItem{
			{Name: "Mie Ayam", Quantity: 2, UnitPrice: 10000, Notes: "extra spicy"},
			{Name: "Es Teh", Quantity: 1, UnitPrice: 3000},
		},
	}
}

func TestBuild_Totals(t *testing.T) {
	r := Build(testOrder(), nil, testSettings())

	assert.Equal(t, int64(23000), r.SubTotal)
	assert.Equal(t, int64(1000), r.Tax)
	assert.Equal(t, int64(0), r.Discount)
	assert.Equal(t, int64(24000), r.Total)
	assert.Equal(t, "Bar 7", r.TableName)
	assert.Len(t, r.Items, 2)
}

func TestBuild_AuthoritativeTotalWins(t *testing.T) {
	order := testOrder()
	order.Total = 19999

	r := Build(order, nil, testSettings())
	assert.Equal(t, int64(19999), r.Total)
}

func TestBuild_DeliveryFallbackWhenNoTable(t *testing.T) {
	order := testOrder()
	order.TableLabel = ""

	r := Build(order, nil, testSettings())
	assert.Equal(t, "Delivery", r.TableName)
}

func TestBuild_SingleTenderFromPayment(t *testing.T) {
	payment := &entity.Payment{
		Amount: 24000,
		Method: enum.PaymentMethodCard,
		PaidAt: time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC),
	}

	r := Build(testOrder(), payment, testSettings())
	require.Len(t, r.Tenders, 1)
	assert.Equal(t, "Card", r.Tenders[0].Method)
	assert.Equal(t, int64(24000), r.Tenders[0].Amount)
	assert.Equal(t, "2026-03-14 20:00", r.Date)
}

func TestBuild_SplitTenderOneLinePerPart(t *testing.T) {
	payment := &entity.Payment{
		Amount: 24000,
		Method: enum.PaymentMethodSplit,
		PaidAt: time.Now(),
		Parts: []entity.PaymentPart{
			{Method: enum.PaymentMethodCash, Amount: 14000},
			{Method: enum.PaymentMethodQR, Amount: 10000},
		},
	}

	r := Build(testOrder(), payment, testSettings())
	require.Len(t, r.Tenders, 2)
	assert.Equal(t, "Cash", r.Tenders[0].Method)
	assert.Equal(t, "QR", r.Tenders[1].Method)
}

func TestBuild_HiddenHeaderOmitsVenueIdentity(t *testing.T) {
	settings := testSettings()
	settings.ShowHeader = false

	r := Build(testOrder(), nil, settings)
	assert.Empty(t, r.Header.StoreName)
	assert.Empty(t, r.Header.Phone)
}

func TestBuild_MissingSettingsUsesDefaultHeader(t *testing.T) {
	r := Build(testOrder(), nil, nil)
	assert.Equal(t, "Frons POS", r.Header.StoreName)
	assert.Equal(t, 32, r.PaperWidth)
	assert.True(t, r.ShowFooter)
}

func TestDisplayModifiers_MixedShapes(t *testing.T) {
	raw := json.RawMessage(`["extra cheese", {"name": "no onion"}, null, "", {"name": ""}, {"label": "ignored"}]`)

	got := DisplayModifiers(raw)
	assert.Equal(t, []string{"extra cheese", "no onion"}, got)
}

func TestDisplayModifiers_Invalid(t *testing.T) {
	assert.Nil(t, DisplayModifiers(nil))
	assert.Nil(t, DisplayModifiers(json.RawMessage(`"not an array"`)))
	assert.Nil(t, DisplayModifiers(json.RawMessage(`{}`)))
}

func TestRenderHTML(t *testing.T) {
	order := testOrder()
	order.Discount = 2000
	r := Build(order, &entity.Payment{
		Amount: 22000,
		Method: enum.PaymentMethodCash,
		PaidAt: time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC),
	}, testSettings())

	html, err := RenderHTML(r)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "Warung Frons")
	assert.Contains(t, html, "Mie Ayam")
	assert.Contains(t, html, "extra spicy")
	assert.Contains(t, html, "230.00") // subtotal
	assert.Contains(t, html, "Discount")
	assert.Contains(t, html, "-20.00")
	assert.Contains(t, html, "220.00") // grand total
	assert.Contains(t, html, "Cash")
	assert.Contains(t, html, "Thank you, see you again!")
	// Standalone document: no external resources.
	assert.NotContains(t, html, "http://")
	assert.NotContains(t, html, "https://")
}

func TestRenderHTML_DiscountHiddenWhenZero(t *testing.T) {
	r := Build(testOrder(), nil, testSettings())

	html, err := RenderHTML(r)
	require.NoError(t, err)
	assert.NotContains(t, html, "Discount")
}

func TestFilename_Deterministic(t *testing.T) {
	r := &entity.Receipt{TableName: "Bar 7"}
	at := time.Date(2026, 3, 14, 20, 0, 5, 0, time.UTC)

	assert.Equal(t, "receipt-bar-7-20260314-200005.html", Filename(r, at))
	assert.Equal(t, Filename(r, at), Filename(r, at))

	r.TableName = "Delivery"
	assert.Equal(t, "receipt-delivery-20260314-200005.html", Filename(r, at))
}
