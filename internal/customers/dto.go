package customers

// SaveCustomerRequest carries customer fields for create and update.
type SaveCustomerRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Address string `json:"address" validate:"max=500"`
	Contact string `json:"contact" validate:"max=50"`
	Email   string `json:"email" validate:"omitempty,max=200"`
}

// ListCustomersRequest filters the customer listing.
type ListCustomersRequest struct {
	Search string `json:"search,omitempty"`
}
