package customers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	customers map[string]Customer
}

func newMockRepository() *mockRepository {
	return &mockRepository{customers: make(map[string]Customer)}
}

func (m *mockRepository) List(ctx context.Context, req ListCustomersRequest) ([]Customer, error) {
	out := make([]Customer, 0, len(m.customers))
	for _, c := range m.customers {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockRepository) Get(ctx context.Context, id string) (*Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (m *mockRepository) Save(ctx context.Context, c Customer) error {
	m.customers[c.ID] = c
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.customers[id]; !ok {
		return ErrNotFound
	}
	delete(m.customers, id)
	return nil
}

func TestCreateCustomer(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), SaveCustomerRequest{
		Name:    "PANTERA LOG",
		Address: "Rua Heitor Bariani, 239 - Tatuapé",
		Contact: "32135687",
		Email:   "panteralog@panteralog.com.br",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	stored, err := repo.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "PANTERA LOG", stored.Name)
}

func TestCreateCustomerRequiresName(t *testing.T) {
	svc := NewService(newMockRepository())

	_, err := svc.Create(context.Background(), SaveCustomerRequest{})
	assert.Error(t, err)
}

func TestCreateCustomerBadEmail(t *testing.T) {
	svc := NewService(newMockRepository())

	_, err := svc.Create(context.Background(), SaveCustomerRequest{
		Name:  "Cliente",
		Email: "not-an-email",
	})
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestCreateCustomerBadPhone(t *testing.T) {
	svc := NewService(newMockRepository())

	_, err := svc.Create(context.Background(), SaveCustomerRequest{
		Name:    "Cliente",
		Contact: "123",
	})
	assert.ErrorIs(t, err, ErrInvalidPhone)
}

// Email and contact are optional; only malformed values are rejected.
func TestCreateCustomerOptionalFields(t *testing.T) {
	svc := NewService(newMockRepository())

	created, err := svc.Create(context.Background(), SaveCustomerRequest{Name: "Cliente"})
	require.NoError(t, err)
	assert.Empty(t, created.Email)
	assert.Empty(t, created.Contact)
}

func TestUpdateCustomer(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), SaveCustomerRequest{Name: "Antes"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, SaveCustomerRequest{Name: "Depois"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Depois", updated.Name)
}

func TestUpdateMissingCustomer(t *testing.T) {
	svc := NewService(newMockRepository())

	_, err := svc.Update(context.Background(), "missing", SaveCustomerRequest{Name: "X"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCustomer(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), SaveCustomerRequest{Name: "Cliente"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrNotFound)
}
