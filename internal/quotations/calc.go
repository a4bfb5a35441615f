package quotations

// Totals are the derived money fields of a quotation.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Taxes    float64 `json:"taxes"`
	Total    float64 `json:"total"`
}

// ItemTotal derives a line total from its two factors.
func ItemTotal(quantity, unitPrice float64) float64 {
	return quantity * unitPrice
}

// ComputeTotals folds over the full item list. Totals are always recomputed
// from scratch rather than adjusted incrementally so they cannot drift from
// the lines. The tax rate is applied as given; it is not clamped.
func ComputeTotals(items []Item, taxRate float64) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Total
	}
	taxes := subtotal * taxRate / 100
	return Totals{
		Subtotal: subtotal,
		Taxes:    taxes,
		Total:    subtotal + taxes,
	}
}

// Recalculate rewrites every derived field on the quotation: each line total
// and then the header totals.
func Recalculate(q *Quotation) {
	for i := range q.Items {
		q.Items[i].Total = ItemTotal(q.Items[i].Quantity, q.Items[i].UnitPrice)
	}
	totals := ComputeTotals(q.Items, q.TaxRate)
	q.Subtotal = totals.Subtotal
	q.Taxes = totals.Taxes
	q.Total = totals.Total
}
