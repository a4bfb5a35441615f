package report

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/anfer-esquadrias/orcamentos/internal/brx"
	"github.com/anfer-esquadrias/orcamentos/internal/quotations"
	"github.com/anfer-esquadrias/orcamentos/internal/settings"
)

const categorySeparator = " - "

// Row is one line of the printed item table. Category is set only on the
// first item of a new group and renders as a band above the item.
type Row struct {
	Category string
	Title    string
	Desc     string
	Quantity float64
	Total    string
}

// GroupItems walks the items in order and inserts a category band whenever
// the leading "CATEGORIA - descrição" prefix changes. Items without the
// separator carry no category and never open a band.
func GroupItems(items []quotations.Item) []Row {
	rows := make([]Row, 0, len(items))
	current := ""
	for _, item := range items {
		category := ""
		if parts := strings.SplitN(item.Description, categorySeparator, 2); len(parts) > 1 {
			category = parts[0]
		}
		row := Row{
			Title:    item.Title,
			Desc:     item.Description,
			Quantity: item.Quantity,
			Total:    brx.FormatCurrency(item.Total),
		}
		if category != "" && category != current {
			current = category
			row.Category = category
		}
		rows = append(rows, row)
	}
	return rows
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Filename builds the download name for a quotation PDF, e.g.
// "Orcamento-0187-Maria-da-Silva.pdf".
func Filename(q *quotations.Quotation) string {
	name := whitespaceRe.ReplaceAllString(strings.TrimSpace(q.Customer.Name), "-")
	return fmt.Sprintf("Orcamento-%s-%s.pdf", q.Number, name)
}

type documentData struct {
	CompanyName string
	Address     string
	Contact     string
	Email       string
	Website     string

	CustomerName    string
	CustomerAddress string
	CustomerContact string
	CustomerEmail   string

	Number string
	Date   string

	Rows []Row

	PaymentName    string
	PaymentAgency  string
	PaymentAccount string
	PaymentPix     string

	Subtotal string
	TaxRate  float64
	Taxes    string
	Shipping string
	Total    string
}

// BuildHTML renders the quotation document as a standalone HTML page ready
// for Gotenberg.
func BuildHTML(q *quotations.Quotation, cfg settings.Settings) (string, error) {
	data := documentData{
		CompanyName:     cfg.CompanyName,
		Address:         cfg.Address,
		Contact:         brx.FormatPhone(cfg.Contact),
		Email:           cfg.Email,
		Website:         cfg.Website,
		CustomerName:    q.Customer.Name,
		CustomerAddress: q.Customer.Address,
		CustomerContact: brx.FormatPhone(q.Customer.Contact),
		CustomerEmail:   q.Customer.Email,
		Number:          q.Number,
		Date:            brx.FormatDate(q.Date),
		Rows:            GroupItems(q.Items),
		PaymentName:     q.PaymentInfo.Name,
		PaymentAgency:   q.PaymentInfo.Agency,
		PaymentAccount:  q.PaymentInfo.Account,
		PaymentPix:      q.PaymentInfo.Pix,
		Subtotal:        brx.FormatCurrency(q.Subtotal),
		TaxRate:         q.TaxRate,
		Taxes:           brx.FormatCurrency(q.Taxes),
		Shipping:        q.Shipping,
		Total:           brx.FormatCurrency(q.Total),
	}
	var buf bytes.Buffer
	if err := quotationTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render quotation document: %w", err)
	}
	return buf.String(), nil
}

var quotationTemplate = template.Must(template.New("quotation").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="UTF-8">
  <title>Orçamento {{.Number}}</title>
  <style>
    body { font-family: 'Poppins', 'Helvetica Neue', sans-serif; margin: 0; padding: 0; color: #333; }
    .header { background-color: #18181b; color: #fff; padding: 30px 40px; display: flex; justify-content: space-between; }
    .company-name { font-size: 22px; font-weight: bold; margin-top: 10px; }
    .company-name span { font-weight: normal; }
    .contact-info { font-size: 13px; }
    .contact-label { color: #f3c950; font-weight: 600; margin-top: 12px; }
    .client-section { display: flex; justify-content: space-between; padding: 30px 40px 10px; }
    .client-info h2 { margin: 3px 0; text-transform: uppercase; }
    .order-info { text-align: right; }
    .order-info h1 { font-size: 32px; margin-bottom: 25px; }
    .invoice-table { margin: 0 40px; border: 1px solid #e5e7eb; border-radius: 0 0 6px 6px; }
    .table-header { display: flex; width: 100%; color: #fff; font-weight: bold; text-transform: uppercase; }
    .desc-header { background-color: #b91c1c; padding: 14px 20px; width: 66.66%; border-top-left-radius: 6px; }
    .qty-header { background-color: #1a1a1a; padding: 14px 20px; width: 16.66%; text-align: center; }
    .total-header { background-color: #1a1a1a; padding: 14px 20px; width: 16.66%; text-align: right; border-top-right-radius: 6px; }
    .category-row { padding: 10px 20px; font-weight: bold; text-transform: uppercase; background-color: #f9fafb; border-bottom: 1px solid #e5e7eb; }
    .item-row { display: flex; width: 100%; border-bottom: 1px solid #e5e7eb; font-size: 13px; }
    .item-desc { padding: 14px 20px; width: 66.66%; }
    .item-title { font-weight: 600; }
    .item-qty { padding: 14px 20px; width: 16.66%; text-align: center; }
    .item-total { padding: 14px 20px; width: 16.66%; text-align: right; font-weight: 600; }
    .payment-section { display: flex; justify-content: space-between; margin-top: 30px; padding: 0 40px; }
    .payment-info { width: 50%; font-size: 12px; }
    .payment-info h3 { text-transform: uppercase; font-weight: 600; margin-bottom: 12px; }
    .summary-section { width: 45%; }
    .summary-row { display: flex; justify-content: space-between; padding: 4px 10px; }
    .grand-total { background-color: #b91c1c; color: #fff; padding: 16px 20px; margin-top: 12px; display: flex; justify-content: space-between; border-radius: 0 0 8px 8px; font-size: 18px; font-weight: bold; text-transform: uppercase; }
  </style>
</head>
<body>
  <div class="header">
    <div>
      <div class="company-name">{{.CompanyName}}</div>
    </div>
    <div class="contact-info">
      <div class="contact-label">Contato</div>
      <div>{{.Contact}}</div>
      <div class="contact-label">e-Mail</div>
      <div>{{.Email}}</div>
    </div>
    <div class="contact-info">
      <div class="contact-label">Endereço:</div>
      <div>{{.Address}}</div>
      <div class="contact-label">Web:</div>
      <div>{{.Website}}</div>
    </div>
  </div>

  <div class="client-section">
    <div class="client-info">
      <div>Para:</div>
      <h2>{{.CustomerName}}</h2>
      <div>{{.CustomerAddress}}</div>
      <div><strong>Contato:</strong> {{.CustomerContact}}</div>
      <div><strong>E-Mail:</strong> {{.CustomerEmail}}</div>
    </div>
    <div class="order-info">
      <h1>ORÇAMENTO</h1>
      <div><strong>Pedido nº:</strong> {{.Number}}</div>
      <div><strong>Data:</strong> {{.Date}}</div>
    </div>
  </div>

  <div class="invoice-table">
    <div class="table-header">
      <div class="desc-header">Descrição</div>
      <div class="qty-header">QTD</div>
      <div class="total-header">Total</div>
    </div>
    {{range .Rows}}{{if .Category}}<div class="category-row">{{.Category}}</div>
    {{end}}<div class="item-row">
      <div class="item-desc">
        <div class="item-title">{{.Title}}</div>
        <div>{{.Desc}}</div>
      </div>
      <div class="item-qty">{{.Quantity}}</div>
      <div class="item-total">{{.Total}}</div>
    </div>
    {{end}}
  </div>

  <div class="payment-section">
    <div class="payment-info">
      <h3>Dados para pagamento</h3>
      <div>{{.PaymentName}}</div>
      <div><strong>Agência:</strong> {{.PaymentAgency}}</div>
      <div><strong>CC:</strong> {{.PaymentAccount}}</div>
      <div><strong>PIX (CNPJ):</strong> {{.PaymentPix}}</div>
    </div>
    <div class="summary-section">
      <div class="summary-row"><span>Sub Total</span><strong>{{.Subtotal}}</strong></div>
      <div class="summary-row"><span>Taxas {{.TaxRate}}%</span><strong>{{.Taxes}}</strong></div>
      <div class="summary-row"><span>Frete</span><strong>{{.Shipping}}</strong></div>
      <div class="grand-total"><span>Total Geral</span><span>{{.Total}}</span></div>
    </div>
  </div>
</body>
</html>
`))
