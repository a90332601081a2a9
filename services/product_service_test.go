package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopping-cart/models"
	"shopping-cart/repositories"
)

func setupProducts(t *testing.T) (*ProductService, *memStore) {
	t.Helper()
	store := newMemStore()
	return NewProductService(&memProducts{store: store}, nil, zerolog.Nop()), store
}

func price(v float64) *float64 { return &v }

func TestListPagination(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupProducts(t)

	for i := 1; i <= 25; i++ {
		_, err := svc.Create(ctx, models.ProductRequest{
			Name:  fmt.Sprintf("Product %02d", i),
			Price: price(float64(i)),
		})
		require.NoError(t, err)
	}

	resp, err := svc.List(ctx, repositories.ProductListParams{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 5)
	assert.Equal(t, 3, resp.CurrentPage)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 25, resp.TotalCount)
}

func TestListKeywordFilterIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupProducts(t)

	for _, name := range []string{"Mouse Óptico", "Teclado Mecânico", "Mousepad XL"} {
		_, err := svc.Create(ctx, models.ProductRequest{Name: name, Price: price(10)})
		require.NoError(t, err)
	}

	resp, err := svc.List(ctx, repositories.ProductListParams{Page: 1, Limit: 10, Keyword: "mouse"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalCount)
	for _, p := range resp.Items {
		assert.Contains(t, []string{"Mouse Óptico", "Mousepad XL"}, p.Name)
	}
}

func TestListSortByPrice(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupProducts(t)

	for _, v := range []float64{30, 10, 20} {
		_, err := svc.Create(ctx, models.ProductRequest{Name: fmt.Sprintf("P%v", v), Price: price(v)})
		require.NoError(t, err)
	}

	asc, err := svc.List(ctx, repositories.ProductListParams{Page: 1, Limit: 10, Sort: "price"})
	require.NoError(t, err)
	require.Len(t, asc.Items, 3)
	assert.Equal(t, 10.0, asc.Items[0].Price)
	assert.Equal(t, 30.0, asc.Items[2].Price)

	desc, err := svc.List(ctx, repositories.ProductListParams{Page: 1, Limit: 10, Sort: "price_desc"})
	require.NoError(t, err)
	assert.Equal(t, 30.0, desc.Items[0].Price)
}

func TestListDefaultsBadParams(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupProducts(t)

	resp, err := svc.List(ctx, repositories.ProductListParams{Page: -1, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.CurrentPage)
	assert.Equal(t, 0, resp.TotalPages)
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupProducts(t)

	_, err := svc.Create(ctx, models.ProductRequest{Name: "   ", Price: price(10)})
	assert.ErrorIs(t, err, ErrProductName)

	_, err = svc.Create(ctx, models.ProductRequest{Name: "Thing", Price: price(-1)})
	assert.ErrorIs(t, err, ErrProductPrice)

	p, err := svc.Create(ctx, models.ProductRequest{Name: "Free Thing", Price: price(0)})
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Price)
}

func TestUpdateMissingProduct(t *testing.T) {
	svc, _ := setupProducts(t)

	_, err := svc.Update(context.Background(), 99, models.ProductRequest{Name: "X", Price: price(1)})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupProducts(t)

	p, err := svc.Create(ctx, models.ProductRequest{Name: "Thing", Price: price(10)})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, p.ID))
	_, err = svc.Get(ctx, p.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, p.ID), repositories.ErrNotFound)
}
