package dashboard

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/anfer-esquadrias/orcamentos/internal/customers"
	"github.com/anfer-esquadrias/orcamentos/internal/products"
	"github.com/anfer-esquadrias/orcamentos/internal/quotations"
)

// Summary aggregates the numbers the landing page shows.
type Summary struct {
	TotalQuotations     int                    `json:"totalQuotations"`
	QuotationsThisMonth int                    `json:"quotationsThisMonth"`
	TotalValue          float64                `json:"totalValue"`
	AverageValue        float64                `json:"averageValue"`
	TotalCustomers      int                    `json:"totalCustomers"`
	TotalProducts       int                    `json:"totalProducts"`
	ServiceProducts     int                    `json:"serviceProducts"`
	ManufacturedItems   int                    `json:"manufacturedItems"`
	RecentQuotations    []quotations.Quotation `json:"recentQuotations"`
}

// The listers are the slice of each domain service the dashboard reads.
type QuotationLister interface {
	List(ctx context.Context, req quotations.ListQuotationsRequest) ([]quotations.Quotation, error)
}

type CustomerLister interface {
	List(ctx context.Context, req customers.ListCustomersRequest) ([]customers.Customer, error)
}

type ProductLister interface {
	List(ctx context.Context, req products.ListProductsRequest) ([]products.Product, error)
}

type Service struct {
	quotations QuotationLister
	customers  CustomerLister
	products   ProductLister
	now        func() time.Time
}

func NewService(q QuotationLister, c CustomerLister, p ProductLister) *Service {
	return &Service{quotations: q, customers: c, products: p, now: time.Now}
}

// Summary fetches the three collections concurrently and folds them into the
// dashboard numbers.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	var (
		allQuotations []quotations.Quotation
		allCustomers  []customers.Customer
		allProducts   []products.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		allQuotations, err = s.quotations.List(gctx, quotations.ListQuotationsRequest{})
		return err
	})
	g.Go(func() error {
		var err error
		allCustomers, err = s.customers.List(gctx, customers.ListCustomersRequest{})
		return err
	})
	g.Go(func() error {
		var err error
		allProducts, err = s.products.List(gctx, products.ListProductsRequest{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalQuotations: len(allQuotations),
		TotalCustomers:  len(allCustomers),
		TotalProducts:   len(allProducts),
	}

	nowYear, nowMonth, _ := s.now().Date()
	for _, q := range allQuotations {
		summary.TotalValue += q.Total
		if date, err := time.Parse("2006-01-02", q.Date); err == nil {
			year, month, _ := date.Date()
			if year == nowYear && month == nowMonth {
				summary.QuotationsThisMonth++
			}
		}
	}
	if summary.TotalQuotations > 0 {
		summary.AverageValue = summary.TotalValue / float64(summary.TotalQuotations)
	}

	for _, p := range allProducts {
		switch products.Classify(p.Category, p.Description) {
		case products.KindService:
			summary.ServiceProducts++
		default:
			summary.ManufacturedItems++
		}
	}

	summary.RecentQuotations = recent(allQuotations, 5)
	return summary, nil
}

// recent returns the n newest quotations by date, falling back to number for
// same-day documents.
func recent(all []quotations.Quotation, n int) []quotations.Quotation {
	sorted := make([]quotations.Quotation, len(all))
	copy(sorted, all)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date > sorted[j].Date
		}
		return sorted[i].Number > sorted[j].Number
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
