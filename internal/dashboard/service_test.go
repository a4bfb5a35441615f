package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anfer-esquadrias/orcamentos/internal/customers"
	"github.com/anfer-esquadrias/orcamentos/internal/products"
	"github.com/anfer-esquadrias/orcamentos/internal/quotations"
)

type staticQuotations struct {
	list []quotations.Quotation
	err  error
}

func (s staticQuotations) List(ctx context.Context, req quotations.ListQuotationsRequest) ([]quotations.Quotation, error) {
	return s.list, s.err
}

type staticCustomers struct{ list []customers.Customer }

func (s staticCustomers) List(ctx context.Context, req customers.ListCustomersRequest) ([]customers.Customer, error) {
	return s.list, nil
}

type staticProducts struct{ list []products.Product }

func (s staticProducts) List(ctx context.Context, req products.ListProductsRequest) ([]products.Product, error) {
	return s.list, nil
}

func TestSummary(t *testing.T) {
	svc := NewService(
		staticQuotations{list: []quotations.Quotation{
			{ID: "q1", Number: "0186", Date: "2026-08-10", Total: 1000},
			{ID: "q2", Number: "0187", Date: "2026-08-20", Total: 3000},
			{ID: "q3", Number: "0185", Date: "2026-07-01", Total: 2000},
		}},
		staticCustomers{list: []customers.Customer{{ID: "c1"}, {ID: "c2"}}},
		staticProducts{list: []products.Product{
			{ID: "p1", Category: "PORTÕES", Description: "chapa"},
			{ID: "p2", Category: "SERVIÇOS", Description: "instalação"},
		}},
	)
	svc.now = func() time.Time {
		return time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	}

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalQuotations)
	assert.Equal(t, 2, summary.QuotationsThisMonth)
	assert.Equal(t, 6000.0, summary.TotalValue)
	assert.Equal(t, 2000.0, summary.AverageValue)
	assert.Equal(t, 2, summary.TotalCustomers)
	assert.Equal(t, 2, summary.TotalProducts)
	assert.Equal(t, 1, summary.ServiceProducts)
	assert.Equal(t, 1, summary.ManufacturedItems)

	require.Len(t, summary.RecentQuotations, 3)
	assert.Equal(t, "q2", summary.RecentQuotations[0].ID)
	assert.Equal(t, "q1", summary.RecentQuotations[1].ID)
	assert.Equal(t, "q3", summary.RecentQuotations[2].ID)
}

func TestSummaryEmpty(t *testing.T) {
	svc := NewService(staticQuotations{}, staticCustomers{}, staticProducts{})

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.TotalQuotations)
	assert.Zero(t, summary.TotalValue)
	assert.Zero(t, summary.AverageValue, "no division by zero")
	assert.Empty(t, summary.RecentQuotations)
}

func TestSummaryRecentCapsAtFive(t *testing.T) {
	list := make([]quotations.Quotation, 8)
	for i := range list {
		list[i] = quotations.Quotation{
			ID:   string(rune('a' + i)),
			Date: "2026-08-01",
		}
	}
	svc := NewService(staticQuotations{list: list}, staticCustomers{}, staticProducts{})

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Len(t, summary.RecentQuotations, 5)
}

func TestSummaryPropagatesError(t *testing.T) {
	svc := NewService(
		staticQuotations{err: errors.New("db down")},
		staticCustomers{},
		staticProducts{},
	)

	_, err := svc.Summary(context.Background())
	assert.Error(t, err)
}
