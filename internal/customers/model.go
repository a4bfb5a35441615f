package customers

// Customer is an addressable client of the business. Quotations embed a
// snapshot of these fields, so deleting a customer never touches the
// quotations that referenced it.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}
