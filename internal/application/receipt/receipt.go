// Package receipt composes printable receipts from settled orders. One
// Build step produces the value object both delivery paths consume: the
// thermal ESC/POS formatter and the standalone HTML document handed to a
// print dialog or saved to disk. Keeping a single source keeps "what
// prints" and "what downloads" byte-for-byte in agreement.
package receipt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"time"
	"unicode"

	"github.com/nftpro1212/frons-pos/internal/application/reconcile"
	"github.com/nftpro1212/frons-pos/internal/domain/entity"
)

// Build composes a Receipt from an order, an optional payment, and the
// venue settings. Totals follow the checkout derivation unless the order
// already carries an authoritative total.
func Build(order *entity.Order, payment *entity.Payment, settings *entity.VenueSettings) *entity.Receipt {
	if settings == nil {
		settings = &entity.VenueSettings{StoreName: "Frons POS", PaperWidth: 32, ShowHeader: true, ShowFooter: true}
	}

	totals := reconcile.ComputeBaseTotals(order)
	total := totals.TotalDue
	if order.Total > 0 {
		total = order.Total
	}

	r := &entity.Receipt{
		Header: entity.ReceiptHeader{
			ShowLogo:   settings.ShowLogo,
			HeaderText: settings.HeaderText,
			TaxID:      settings.TaxID,
		},
		OrderNo:    order.OrderNo,
		TableName:  order.ChannelLabel(),
		Date:       order.OpenedAt.Format("2006-01-02 15:04"),
		SubTotal:   totals.SubTotal,
		Tax:        totals.Tax,
		Discount:   totals.BaseDiscount,
		Total:      total,
		ShowFooter: settings.ShowFooter,
		FooterText: settings.FooterText,
		Currency:   settings.Currency,
		PaperWidth: settings.PaperWidth,
	}

	if settings.ShowHeader {
		r.Header.StoreName = settings.StoreName
		r.Header.Address = settings.StoreAddress
		r.Header.Phone = settings.StorePhone
	}

	for _, item := range order.Items {
		r.Items = append(r.Items, entity.ReceiptItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.LineTotal(),
			Notes:     item.Notes,
			Modifiers: DisplayModifiers(item.Modifiers),
		})
	}

	if payment != nil {
		r.Date = payment.PaidAt.Format("2006-01-02 15:04")
		if len(payment.Parts) > 0 {
			for _, part := range payment.Parts {
				r.Tenders = append(r.Tenders, entity.ReceiptTender{
					Method: part.Method.Label(),
					Amount: part.Amount,
				})
			}
		} else {
			r.Tenders = append(r.Tenders, entity.ReceiptTender{
				Method: payment.Method.Label(),
				Amount: payment.Amount,
			})
		}
	}

	return r
}

// DisplayModifiers resolves a stored modifier list into display names.
// Historic orders carry a mix of plain strings and {name: ...} objects;
// both resolve to their name, and empty or null entries are dropped.
func DisplayModifiers(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}

	var out []string
	for _, e := range entries {
		var s string
		if err := json.Unmarshal(e, &s); err == nil {
			if s != "" {
				out = append(out, s)
			}
			continue
		}
		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(e, &obj); err == nil && obj.Name != "" {
			out = append(out, obj.Name)
		}
	}
	return out
}

// Money formats cents as a decimal amount for display.
func Money(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}

// Filename builds the deterministic download name for a receipt: the
// table/channel slug plus a timestamp.
func Filename(r *entity.Receipt, t time.Time) string {
	return fmt.Sprintf("receipt-%s-%s.html", slug(r.TableName), t.Format("20060102-150405"))
}

func slug(s string) string {
	var b strings.Builder
	lastDash := true
	for _, c := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(c) || unicode.IsDigit(c):
			b.WriteRune(c)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

var htmlTmpl = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"money": Money,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Receipt {{.OrderNo}}</title>
<style>
body { font-family: "Courier New", monospace; font-size: 12px; width: 280px; margin: 0 auto; color: #000; }
.center { text-align: center; }
.row { display: flex; justify-content: space-between; }
.divider { border-top: 1px dashed #000; margin: 6px 0; }
.total { font-weight: bold; font-size: 14px; }
.muted { font-size: 10px; }
h1 { font-size: 16px; margin: 4px 0; }
</style>
</head>
<body>
{{- if .Header.ShowLogo}}
<div class="center">&#9670;</div>
{{- end}}
{{- if .Header.StoreName}}
<div class="center">
<h1>{{.Header.StoreName}}</h1>
{{- if .Header.Address}}<div>{{.Header.Address}}</div>{{end}}
{{- if .Header.Phone}}<div>{{.Header.Phone}}</div>{{end}}
{{- if .Header.TaxID}}<div class="muted">Tax ID: {{.Header.TaxID}}</div>{{end}}
</div>
{{- end}}
{{- if .Header.HeaderText}}
<div class="center">{{.Header.HeaderText}}</div>
{{- end}}
<div class="divider"></div>
<div class="row"><span>Order</span><span>{{.OrderNo}}</span></div>
<div class="row"><span>Table</span><span>{{.TableName}}</span></div>
{{- if .Cashier}}
<div class="row"><span>Cashier</span><span>{{.Cashier}}</span></div>
{{- end}}
<div class="divider"></div>
{{- range .Items}}
<div class="row"><span>{{.Quantity}} &times; {{.Name}}</span><span>{{money .Total}}</span></div>
{{- range .Modifiers}}
<div class="muted">&nbsp;&nbsp;+ {{.}}</div>
{{- end}}
{{- if .Notes}}
<div class="muted">&nbsp;&nbsp;{{.Notes}}</div>
{{- end}}
{{- end}}
<div class="divider"></div>
<div class="row"><span>Subtotal</span><span>{{money .SubTotal}}</span></div>
<div class="row"><span>Tax</span><span>{{money .Tax}}</span></div>
{{- if gt .Discount 0}}
<div class="row"><span>Discount</span><span>-{{money .Discount}}</span></div>
{{- end}}
<div class="row total"><span>TOTAL {{.Currency}}</span><span>{{money .Total}}</span></div>
{{- range .Tenders}}
<div class="row"><span>{{.Method}}</span><span>{{money .Amount}}</span></div>
{{- end}}
{{- if .ShowFooter}}
<div class="divider"></div>
{{- if .FooterText}}
<div class="center">{{.FooterText}}</div>
{{- end}}
<div class="center muted">{{.Date}}</div>
{{- end}}
</body>
</html>
`))

// RenderHTML renders the receipt as a self-contained HTML document with
// no external resources, suitable for a print dialog or a file download.
func RenderHTML(r *entity.Receipt) (string, error) {
	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, r); err != nil {
		return "", fmt.Errorf("receipt: render failed: %w", err)
	}
	return buf.String(), nil
}
