package quotations

// ItemRequest carries one line of a quotation being created or updated.
// Totals are never accepted from the client; they are derived server side.
type ItemRequest struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description" validate:"max=1000"`
	Quantity    float64 `json:"quantity" validate:"gt=0"`
	UnitPrice   float64 `json:"unitPrice" validate:"gte=0"`
}

// SaveQuotationRequest carries quotation fields for create and update.
type SaveQuotationRequest struct {
	Date       string        `json:"date" validate:"required,datetime=2006-01-02"`
	CustomerID string        `json:"customerId" validate:"required"`
	Items      []ItemRequest `json:"items" validate:"dive"`
	TaxRate    float64       `json:"taxRate"`
	Shipping   string        `json:"shipping" validate:"omitempty,oneof=incluso gratis 'a combinar'"`
	Notes      string        `json:"notes,omitempty" validate:"max=2000"`
}

// ListQuotationsRequest filters the quotation listing.
type ListQuotationsRequest struct {
	Search string `json:"search,omitempty"`
}
