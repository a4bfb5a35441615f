package quotations

import "github.com/anfer-esquadrias/orcamentos/internal/customers"

// Shipping values accepted on a quotation. Free text from the legacy data is
// preserved as-is; new writes are restricted to these.
const (
	ShippingIncluded   = "incluso"
	ShippingFree       = "gratis"
	ShippingNegotiable = "a combinar"
)

// Item is a priced line owned by exactly one quotation. Total is derived
// from Quantity and UnitPrice and rewritten on every change to either.
type Item struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// PaymentInfo is the bank/PIX block printed on the document. It is copied
// from settings when the quotation is created and frozen afterwards.
type PaymentInfo struct {
	Name    string `json:"name"`
	Agency  string `json:"agency"`
	Account string `json:"account"`
	Pix     string `json:"pix"`
}

// Quotation is a priced proposal. Customer and PaymentInfo are snapshots;
// deleting the source records leaves the quotation intact. Number is
// assigned once from the persisted counter and never changes.
type Quotation struct {
	ID          string             `json:"id"`
	Number      string             `json:"number"`
	Date        string             `json:"date"`
	Customer    customers.Customer `json:"customer"`
	Items       []Item             `json:"items"`
	Subtotal    float64            `json:"subtotal"`
	Taxes       float64            `json:"taxes"`
	TaxRate     float64            `json:"taxRate"`
	Shipping    string             `json:"shipping"`
	Total       float64            `json:"total"`
	PaymentInfo PaymentInfo        `json:"paymentInfo"`
	Notes       string             `json:"notes,omitempty"`
}
