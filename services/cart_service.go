package services

import (
	"context"
	"errors"

	"shopping-cart/models"
	"shopping-cart/repositories"
)

var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

type CartService struct {
	carts    repositories.CartRepository
	products repositories.ProductRepository
}

func NewCartService(carts repositories.CartRepository, products repositories.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

// AddItem snapshots name/price/imageUrl from the current product
// record on first add; adding the same product again only accumulates
// quantity. The find-or-create below is not serialized against
// concurrent requests for the same user (see DESIGN.md).
func (s *CartService) AddItem(ctx context.Context, userID, productID, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.FindByUserID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		cart, err = s.carts.Create(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	item := models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
		ImageURL:  product.ImageURL,
	}
	if err := s.carts.AddItem(ctx, cart.ID, item); err != nil {
		return nil, err
	}

	return s.carts.FindByUserID(ctx, userID)
}

func (s *CartService) UpdateItemQuantity(ctx context.Context, userID, productID, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.carts.UpdateItemQuantity(ctx, cart.ID, productID, quantity); err != nil {
		return nil, err
	}
	return s.carts.FindByUserID(ctx, userID)
}

// RemoveItem succeeds even when the product was never in the cart, but
// a missing cart itself is a not-found error.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID int) (*models.Cart, error) {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.carts.RemoveItem(ctx, cart.ID, productID); err != nil {
		return nil, err
	}
	return s.carts.FindByUserID(ctx, userID)
}

// GetCart synthesizes an empty cart instead of erroring when the user
// never added anything.
func (s *CartService) GetCart(ctx context.Context, userID int) (*models.Cart, error) {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}
