package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopping-cart/models"
	"shopping-cart/repositories"
)

func setupCart(t *testing.T) (*CartService, *memStore) {
	t.Helper()
	store := newMemStore()
	carts := &memCarts{store: store}
	products := &memProducts{store: store}
	return NewCartService(carts, products), store
}

func addProduct(t *testing.T, store *memStore, name string, price float64) *models.Product {
	t.Helper()
	products := &memProducts{store: store}
	p := &models.Product{Name: name, Price: price, ImageURL: "/img/" + name + ".jpg"}
	require.NoError(t, products.Create(context.Background(), p))
	return p
}

func TestAddItemMergesQuantity(t *testing.T) {
	ctx := context.Background()
	svc, store := setupCart(t)
	p := addProduct(t, store, "Keyboard", 450.50)

	_, err := svc.AddItem(ctx, 1, p.ID, 2)
	require.NoError(t, err)

	cart, err := svc.AddItem(ctx, 1, p.ID, 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, p.ID, cart.Items[0].ProductID)
}

func TestAddItemSnapshotsProductFields(t *testing.T) {
	ctx := context.Background()
	svc, store := setupCart(t)
	p := addProduct(t, store, "Mouse", 149.99)

	cart, err := svc.AddItem(ctx, 1, p.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 149.99, cart.Items[0].Price)
	assert.Equal(t, "Mouse", cart.Items[0].Name)

	// a later price change must not reach into the cart
	products := &memProducts{store: store}
	p.Price = 999.99
	require.NoError(t, products.Update(ctx, p))

	cart, err = svc.GetCart(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 149.99, cart.Items[0].Price)
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc, _ := setupCart(t)

	_, err := svc.AddItem(context.Background(), 1, 42, 1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	svc, store := setupCart(t)
	p := addProduct(t, store, "Monitor", 2799.00)

	_, err := svc.AddItem(context.Background(), 1, p.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AddItem(context.Background(), 1, p.ID, -3)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestUpdateItemQuantity(t *testing.T) {
	ctx := context.Background()
	svc, store := setupCart(t)
	p := addProduct(t, store, "Headset", 399.90)

	_, err := svc.AddItem(ctx, 1, p.ID, 2)
	require.NoError(t, err)

	cart, err := svc.UpdateItemQuantity(ctx, 1, p.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, cart.Items[0].Quantity)
	assert.Equal(t, 399.90, cart.Items[0].Price)
}

func TestUpdateItemQuantityValidation(t *testing.T) {
	ctx := context.Background()
	svc, store := setupCart(t)
	p := addProduct(t, store, "Webcam", 120.00)

	_, err := svc.AddItem(ctx, 1, p.ID, 1)
	require.NoError(t, err)

	_, err = svc.UpdateItemQuantity(ctx, 1, p.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	// line item not in the cart
	_, err = svc.UpdateItemQuantity(ctx, 1, 999, 2)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// no cart at all
	_, err = svc.UpdateItemQuantity(ctx, 2, p.ID, 2)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestRemoveMissingItemIsNoop(t *testing.T) {
	ctx := context.Background()
	svc, store := setupCart(t)
	p := addProduct(t, store, "Speaker", 89.90)

	_, err := svc.AddItem(ctx, 1, p.ID, 2)
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, 1, 999)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestRemoveItemWithoutCart(t *testing.T) {
	svc, _ := setupCart(t)

	_, err := svc.RemoveItem(context.Background(), 1, 1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	svc, store := setupCart(t)
	p1 := addProduct(t, store, "Cable", 19.90)
	p2 := addProduct(t, store, "Hub", 59.90)

	_, err := svc.AddItem(ctx, 1, p1.ID, 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, 1, p2.ID, 1)
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, 1, p1.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, p2.ID, cart.Items[0].ProductID)
}

func TestGetCartSynthesizesEmptyCart(t *testing.T) {
	svc, _ := setupCart(t)

	cart, err := svc.GetCart(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, cart.UserID)
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
}
