package repositories

import (
	"context"
	"errors"

	"shopping-cart/models"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("not found")

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
	FindAll(ctx context.Context, page, limit int) ([]models.User, int, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID int, hashedPassword string) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// ProductListParams carries the catalog listing options. Sort accepts
// "price", "price_desc" or empty for newest first.
type ProductListParams struct {
	Page    int
	Limit   int
	Keyword string
	Sort    string
}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id int) (*models.Product, error)
	FindAll(ctx context.Context, params ProductListParams) ([]models.Product, int, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
	TopByPrice(ctx context.Context, limit int) ([]models.ProductSummary, error)
}

type CartRepository interface {
	FindByUserID(ctx context.Context, userID int) (*models.Cart, error)
	Create(ctx context.Context, userID int) (*models.Cart, error)
	// AddItem appends the line or accumulates quantity when the cart
	// already holds the product. Snapshot fields are only written on
	// first insert.
	AddItem(ctx context.Context, cartID int, item models.CartItem) error
	UpdateItemQuantity(ctx context.Context, cartID, productID, quantity int) error
	RemoveItem(ctx context.Context, cartID, productID int) error
	DeleteByUserID(ctx context.Context, userID int) error
	CountActive(ctx context.Context) (int, error)
}

type OrderRepository interface {
	// Create persists the order with its items and removes the user's
	// cart in the same transaction.
	Create(ctx context.Context, order *models.Order) error
	FindByUserID(ctx context.Context, userID int) ([]models.Order, error)
	FindAll(ctx context.Context) ([]models.AdminOrder, error)
}
