package products

// Product is a catalog template for composing quotation items. Quotation
// items copy the fields they need; editing a product never rewrites
// quotations that already used it.
type Product struct {
	ID           string  `json:"id"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	DefaultPrice float64 `json:"defaultPrice"`
}
