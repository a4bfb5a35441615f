package products

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	products map[string]Product
}

func newMockRepository() *mockRepository {
	return &mockRepository{products: make(map[string]Product)}
}

func (m *mockRepository) List(ctx context.Context, req ListProductsRequest) ([]Product, error) {
	out := make([]Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockRepository) Get(ctx context.Context, id string) (*Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *mockRepository) Save(ctx context.Context, p Product) error {
	m.products[p.ID] = p
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.products[id]; !ok {
		return ErrNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *mockRepository) Categories(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	for _, p := range m.products {
		if p.Category != "" {
			seen[p.Category] = true
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

func TestCreateProduct(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), SaveProductRequest{
		Category:     "PORTÕES",
		Description:  "Portão basculante de chapa",
		DefaultPrice: 2500,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 2500.0, created.DefaultPrice)
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewService(newMockRepository())

	_, err := svc.Create(context.Background(), SaveProductRequest{Category: "PORTÕES"})
	assert.Error(t, err, "description is required")

	_, err = svc.Create(context.Background(), SaveProductRequest{
		Category:     "PORTÕES",
		Description:  "x",
		DefaultPrice: -1,
	})
	assert.Error(t, err, "negative price is rejected")
}

func TestUpdateProduct(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), SaveProductRequest{
		Category:    "CONTROLES",
		Description: "Controle 4 botões",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, SaveProductRequest{
		Category:     "CONTROLES",
		Description:  "Controle 4 botões (clone)",
		DefaultPrice: 75,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 75.0, updated.DefaultPrice)
}

func TestUpdateMissingProduct(t *testing.T) {
	svc := NewService(newMockRepository())

	_, err := svc.Update(context.Background(), "missing", SaveProductRequest{
		Category:    "X",
		Description: "y",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategories(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	for _, req := range []SaveProductRequest{
		{Category: "PORTÕES", Description: "a"},
		{Category: "PORTÕES", Description: "b"},
		{Category: "CONTROLES", Description: "c"},
	} {
		_, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
	}

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"CONTROLES", "PORTÕES"}, categories)
}
