package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anfer-esquadrias/orcamentos/internal/customers"
	"github.com/anfer-esquadrias/orcamentos/internal/quotations"
	"github.com/anfer-esquadrias/orcamentos/internal/settings"
)

func TestGroupItems(t *testing.T) {
	items := []quotations.Item{
		{Title: "Basculante", Description: "PORTÕES - chapa galvanizada", Quantity: 1, Total: 2500},
		{Title: "Deslizante", Description: "PORTÕES - trilho inferior", Quantity: 1, Total: 3200},
		{Title: "Controle", Description: "CONTROLES - 4 botões", Quantity: 2, Total: 150},
	}

	rows := GroupItems(items)
	require.Len(t, rows, 3)

	assert.Equal(t, "PORTÕES", rows[0].Category)
	assert.Empty(t, rows[1].Category, "same category must not open a new band")
	assert.Equal(t, "CONTROLES", rows[2].Category)
	assert.Equal(t, "PORTÕES - chapa galvanizada", rows[0].Desc)
	assert.Equal(t, "R$ 2.500,00", rows[0].Total)
}

func TestGroupItemsNoSeparator(t *testing.T) {
	rows := GroupItems([]quotations.Item{
		{Title: "Avulso", Description: "item sem categoria", Total: 10},
	})
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Category)
	assert.Equal(t, "item sem categoria", rows[0].Desc)
}

func TestGroupItemsCategoryReturns(t *testing.T) {
	rows := GroupItems([]quotations.Item{
		{Description: "PORTÕES - a"},
		{Description: "CONTROLES - b"},
		{Description: "PORTÕES - c"},
	})
	require.Len(t, rows, 3)
	// A category that comes back after a gap opens a fresh band.
	assert.Equal(t, "PORTÕES", rows[0].Category)
	assert.Equal(t, "CONTROLES", rows[1].Category)
	assert.Equal(t, "PORTÕES", rows[2].Category)
}

func TestFilename(t *testing.T) {
	q := &quotations.Quotation{
		Number:   "0187",
		Customer: customers.Customer{Name: "Maria  da Silva"},
	}
	assert.Equal(t, "Orcamento-0187-Maria-da-Silva.pdf", Filename(q))
}

func TestBuildHTML(t *testing.T) {
	q := &quotations.Quotation{
		Number: "0186",
		Date:   "2026-08-31",
		Customer: customers.Customer{
			Name:    "PANTERA LOG",
			Address: "Rua Heitor Bariani, 239 - Tatuapé",
			Contact: "32135687",
			Email:   "panteralog@panteralog.com.br",
		},
		Items: []quotations.Item{
			{Title: "Basculante", Description: "PORTÕES - chapa galvanizada", Quantity: 1, Total: 2500},
		},
		Subtotal: 2500,
		TaxRate:  10,
		Taxes:    250,
		Shipping: quotations.ShippingIncluded,
		Total:    2750,
		PaymentInfo: quotations.PaymentInfo{
			Name:    "Antonio Marcos da Silva Santos",
			Agency:  "0001",
			Account: "21227529-1",
			Pix:     "46.332.306/0001-46",
		},
	}
	cfg := settings.Defaults()

	html, err := BuildHTML(q, cfg)
	require.NoError(t, err)

	for _, want := range []string{
		"ORÇAMENTO",
		"0186",
		"31/08/2026",
		"PANTERA LOG",
		"ANFER ESQUADRIAS",
		"PORTÕES",
		"R$ 2.500,00",
		"R$ 2.750,00",
		"incluso",
		"Dados para pagamento",
		"46.332.306/0001-46",
	} {
		assert.True(t, strings.Contains(html, want), "document missing %q", want)
	}
}
