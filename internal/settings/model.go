package settings

import "github.com/anfer-esquadrias/orcamentos/internal/quotations"

// Settings is the process-wide singleton: company identity printed on every
// document plus the default payment block copied into new quotations.
type Settings struct {
	CompanyName string                 `json:"companyName"`
	Address     string                 `json:"address"`
	Contact     string                 `json:"contact"`
	Email       string                 `json:"email"`
	Website     string                 `json:"website"`
	PaymentInfo quotations.PaymentInfo `json:"paymentInfo"`
}

// Defaults returns the settings written on first read when no document
// exists yet.
func Defaults() Settings {
	return Settings{
		CompanyName: "ANFER ESQUADRIAS",
		Address:     "Rua Rio Meriti, 120 - São Miguel - pta. São Paulo",
		Contact:     "(11) 94009-3757",
		Email:       "anfer.esquadrias@gmail.com",
		Website:     "anfer-website.vercel.app",
		PaymentInfo: quotations.PaymentInfo{
			Name:    "Antonio Marcos da Silva Santos",
			Agency:  "0001",
			Account: "21227529-1",
			Pix:     "46.332.306/0001-46",
		},
	}
}
