package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopping-cart/models"
)

func setupOrder(t *testing.T) (*OrderService, *CartService, *memStore) {
	t.Helper()
	store := newMemStore()
	carts := &memCarts{store: store}
	products := &memProducts{store: store}
	users := &memUsers{store: store}
	orders := &memOrders{store: store}

	orderSvc := NewOrderService(orders, carts, users, nil, zerolog.Nop())
	cartSvc := NewCartService(carts, products)
	return orderSvc, cartSvc, store
}

func checkoutRequest() models.CreateOrderRequest {
	var req models.CreateOrderRequest
	req.ShippingAddress.Address = "Rua das Flores 123"
	req.ShippingAddress.City = "São Paulo"
	req.ShippingAddress.PostalCode = "01000-000"
	req.PaymentMethod = "credit_card"
	return req
}

func TestCreateOrderComputesTotalAndSnapshot(t *testing.T) {
	ctx := context.Background()
	orderSvc, cartSvc, store := setupOrder(t)

	p1 := addProduct(t, store, "Widget", 10)
	p2 := addProduct(t, store, "Gadget", 5)

	_, err := cartSvc.AddItem(ctx, 1, p1.ID, 2)
	require.NoError(t, err)
	_, err = cartSvc.AddItem(ctx, 1, p2.ID, 1)
	require.NoError(t, err)

	order, err := orderSvc.Create(ctx, 1, checkoutRequest())
	require.NoError(t, err)

	assert.Equal(t, 25.0, order.TotalPrice)
	require.Len(t, order.OrderItems, 2)
	assert.True(t, order.IsPaid)
	assert.False(t, order.PaidAt.IsZero())
	assert.Equal(t, "São Paulo", order.ShippingAddress.City)

	// later product edits must not change the stored order
	products := &memProducts{store: store}
	p1.Price = 1000
	require.NoError(t, products.Update(ctx, p1))

	mine, err := orderSvc.ListMyOrders(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, 25.0, mine[0].TotalPrice)
	assert.Equal(t, 10.0, mine[0].OrderItems[0].Price)
}

func TestCreateOrderClearsCart(t *testing.T) {
	ctx := context.Background()
	orderSvc, cartSvc, store := setupOrder(t)
	p := addProduct(t, store, "Widget", 10)

	_, err := cartSvc.AddItem(ctx, 1, p.ID, 2)
	require.NoError(t, err)

	_, err = orderSvc.Create(ctx, 1, checkoutRequest())
	require.NoError(t, err)

	cart, err := cartSvc.GetCart(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCreateOrderFailsOnMissingCart(t *testing.T) {
	orderSvc, _, _ := setupOrder(t)

	_, err := orderSvc.Create(context.Background(), 1, checkoutRequest())
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestCreateOrderFailsOnEmptyCart(t *testing.T) {
	ctx := context.Background()
	orderSvc, cartSvc, store := setupOrder(t)
	p := addProduct(t, store, "Widget", 10)

	_, err := cartSvc.AddItem(ctx, 1, p.ID, 1)
	require.NoError(t, err)
	_, err = cartSvc.RemoveItem(ctx, 1, p.ID)
	require.NoError(t, err)

	_, err = orderSvc.Create(ctx, 1, checkoutRequest())
	assert.ErrorIs(t, err, ErrCartEmpty)

	mine, err := orderSvc.ListMyOrders(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestListMyOrdersNewestFirst(t *testing.T) {
	ctx := context.Background()
	orderSvc, cartSvc, store := setupOrder(t)
	p := addProduct(t, store, "Widget", 10)

	for i := 0; i < 3; i++ {
		_, err := cartSvc.AddItem(ctx, 1, p.ID, 1)
		require.NoError(t, err)
		_, err = orderSvc.Create(ctx, 1, checkoutRequest())
		require.NoError(t, err)
	}

	mine, err := orderSvc.ListMyOrders(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Greater(t, mine[0].ID, mine[1].ID)
	assert.Greater(t, mine[1].ID, mine[2].ID)
}

func TestListAllOrdersJoinsUserIdentity(t *testing.T) {
	ctx := context.Background()
	orderSvc, cartSvc, store := setupOrder(t)

	users := &memUsers{store: store}
	buyer := &models.User{Name: "Alice", Email: "alice@example.com", Password: "x"}
	require.NoError(t, users.Create(ctx, buyer))

	p := addProduct(t, store, "Widget", 10)
	_, err := cartSvc.AddItem(ctx, buyer.ID, p.ID, 1)
	require.NoError(t, err)
	_, err = orderSvc.Create(ctx, buyer.ID, checkoutRequest())
	require.NoError(t, err)

	all, err := orderSvc.ListAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Alice", all[0].UserName)
	assert.Equal(t, "alice@example.com", all[0].UserEmail)
}
