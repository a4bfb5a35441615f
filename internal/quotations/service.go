package quotations

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/anfer-esquadrias/orcamentos/internal/customers"
)

// PaymentInfoProvider supplies the default payment block embedded into new
// quotations. Implemented by the settings service.
type PaymentInfoProvider interface {
	PaymentInfo(ctx context.Context) (PaymentInfo, error)
}

type Service struct {
	repo         Repository
	customerRepo customers.Repository
	payments     PaymentInfoProvider
	validate     *validator.Validate
}

func NewService(repo Repository, customerRepo customers.Repository, payments PaymentInfoProvider) *Service {
	return &Service{
		repo:         repo,
		customerRepo: customerRepo,
		payments:     payments,
		validate:     validator.New(),
	}
}

func (s *Service) List(ctx context.Context, req ListQuotationsRequest) ([]Quotation, error) {
	return s.repo.List(ctx, req)
}

func (s *Service) Get(ctx context.Context, id string) (*Quotation, error) {
	return s.repo.Get(ctx, id)
}

// Create builds and persists a new quotation. The customer is embedded as a
// snapshot, the payment block is copied from settings, the display number is
// allocated from the counter, and every derived total is computed here —
// client-provided totals are ignored.
func (s *Service) Create(ctx context.Context, req SaveQuotationRequest) (*Quotation, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.Get(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("verify customer: %w", err)
	}

	paymentInfo, err := s.payments.PaymentInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("load payment info: %w", err)
	}

	number, err := s.repo.NextNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocate number: %w", err)
	}

	quotation := Quotation{
		ID:          uuid.NewString(),
		Number:      number,
		Date:        req.Date,
		Customer:    *customer,
		Items:       buildItems(req.Items, nil),
		TaxRate:     req.TaxRate,
		Shipping:    req.Shipping,
		PaymentInfo: paymentInfo,
		Notes:       req.Notes,
	}
	Recalculate(&quotation)

	if err := s.repo.Save(ctx, quotation); err != nil {
		return nil, fmt.Errorf("save quotation: %w", err)
	}
	return &quotation, nil
}

// Update overwrites a stored quotation wholesale. The number and the frozen
// payment block are carried over from the stored copy; items and totals are
// rebuilt from the request.
func (s *Service) Update(ctx context.Context, id string, req SaveQuotationRequest) (*Quotation, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get quotation: %w", err)
	}

	customer := existing.Customer
	if req.CustomerID != existing.Customer.ID {
		fresh, err := s.customerRepo.Get(ctx, req.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("verify customer: %w", err)
		}
		customer = *fresh
	}

	quotation := Quotation{
		ID:          existing.ID,
		Number:      existing.Number,
		Date:        req.Date,
		Customer:    customer,
		Items:       buildItems(req.Items, existing.Items),
		TaxRate:     req.TaxRate,
		Shipping:    req.Shipping,
		PaymentInfo: existing.PaymentInfo,
		Notes:       req.Notes,
	}
	Recalculate(&quotation)

	if err := s.repo.Save(ctx, quotation); err != nil {
		return nil, fmt.Errorf("save quotation: %w", err)
	}
	return &quotation, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// buildItems converts line requests into items, keeping the identifier of a
// line that survives an edit and minting one for each new line. Order is
// insertion order; it matters for the document's category grouping.
func buildItems(reqs []ItemRequest, existing []Item) []Item {
	known := make(map[string]bool, len(existing))
	for _, item := range existing {
		known[item.ID] = true
	}

	items := make([]Item, 0, len(reqs))
	for _, req := range reqs {
		id := req.ID
		if id == "" || (existing != nil && !known[id]) {
			id = uuid.NewString()
		}
		items = append(items, Item{
			ID:          id,
			Title:       req.Title,
			Description: req.Description,
			Quantity:    req.Quantity,
			UnitPrice:   req.UnitPrice,
			Total:       ItemTotal(req.Quantity, req.UnitPrice),
		})
	}
	return items
}
