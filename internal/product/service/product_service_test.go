package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_shop/internal/product/domain"
	"github.com/fjod/go_shop/internal/product/repository"
)

type mockRepository struct {
	products map[string]*domain.Product
}

func newMockRepository() *mockRepository {
	return &mockRepository{products: map[string]*domain.Product{}}
}

func (m *mockRepository) CreateProduct(_ context.Context, p *domain.Product) error {
	m.products[p.ID] = p
	return nil
}

func (m *mockRepository) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return p, nil
}

func (m *mockRepository) GetAllProducts(context.Context) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockRepository) UpdateProduct(_ context.Context, p *domain.Product) error {
	if _, ok := m.products[p.ID]; !ok {
		return repository.ErrProductNotFound
	}
	m.products[p.ID] = p
	return nil
}

func (m *mockRepository) DeleteProduct(_ context.Context, id string) error {
	if _, ok := m.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func newSut() (*ProductServiceImpl, *mockRepository) {
	repo := newMockRepository()
	return NewProductService(repo, slog.New(slog.DiscardHandler)), repo
}

func TestCreateProduct_GeneratesID(t *testing.T) {
	sut, repo := newSut()

	product, err := sut.CreateProduct(context.Background(), &domain.Product{
		Name: "Laptop", Price: 1299.99, Stock: 5, Category: "electronics",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID)
	assert.Len(t, repo.products, 1)
}

func TestCreateProduct_Validation(t *testing.T) {
	sut, repo := newSut()

	cases := []struct {
		name    string
		product domain.Product
		want    error
	}{
		{"missing name", domain.Product{Price: 1}, ErrNameRequired},
		{"negative price", domain.Product{Name: "x", Price: -0.01}, ErrNegativePrice},
		{"negative stock", domain.Product{Name: "x", Price: 1, Stock: -1}, ErrNegativeStock},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sut.CreateProduct(context.Background(), &tc.product)
			require.ErrorIs(t, err, tc.want)
		})
	}
	assert.Empty(t, repo.products)
}

func TestCreateProduct_ZeroPriceAndStockAllowed(t *testing.T) {
	sut, _ := newSut()

	_, err := sut.CreateProduct(context.Background(), &domain.Product{Name: "freebie"})
	require.NoError(t, err)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	sut, _ := newSut()

	_, err := sut.UpdateProduct(context.Background(), &domain.Product{
		ID: "missing", Name: "x", Price: 1,
	})
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	sut, repo := newSut()

	product, err := sut.CreateProduct(context.Background(), &domain.Product{Name: "Laptop", Price: 10})
	require.NoError(t, err)

	require.NoError(t, sut.DeleteProduct(context.Background(), product.ID))
	assert.Empty(t, repo.products)

	err = sut.DeleteProduct(context.Background(), product.ID)
	require.ErrorIs(t, err, ErrProductNotFound)
}
