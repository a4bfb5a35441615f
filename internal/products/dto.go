package products

// SaveProductRequest carries product fields for create and update.
type SaveProductRequest struct {
	Category     string  `json:"category" validate:"required,max=200"`
	Description  string  `json:"description" validate:"required,max=500"`
	DefaultPrice float64 `json:"defaultPrice" validate:"gte=0"`
}

// ListProductsRequest filters the product listing.
type ListProductsRequest struct {
	Search   string `json:"search,omitempty"`
	Category string `json:"category,omitempty"`
}
