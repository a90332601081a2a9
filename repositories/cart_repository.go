package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"shopping-cart/config"
	"shopping-cart/models"
)

type cartRepository struct{}

func NewCartRepository() CartRepository {
	return &cartRepository{}
}

func (r *cartRepository) FindByUserID(ctx context.Context, userID int) (*models.Cart, error) {
	query := `SELECT id, user_id, created_at, updated_at FROM carts WHERE user_id = $1`

	cart := &models.Cart{Items: []models.CartItem{}}
	err := config.DB.QueryRow(ctx, query, userID).Scan(
		&cart.ID, &cart.UserID, &cart.CreatedAt, &cart.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	itemsQuery := `
		SELECT product_id, name, price, quantity, image_url
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY id
	`
	rows, err := config.DB.Query(ctx, itemsQuery, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Price, &item.Quantity, &item.ImageURL); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, item)
	}
	return cart, rows.Err()
}

func (r *cartRepository) Create(ctx context.Context, userID int) (*models.Cart, error) {
	query := `
		INSERT INTO carts (user_id, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	cart := &models.Cart{UserID: userID, Items: []models.CartItem{}}
	err := config.DB.QueryRow(ctx, query, userID, now, now).Scan(&cart.ID, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem merges on (cart_id, product_id): an existing line only gets
// its quantity bumped, the stored snapshot is left untouched.
func (r *cartRepository) AddItem(ctx context.Context, cartID int, item models.CartItem) error {
	query := `
		INSERT INTO cart_items (cart_id, product_id, name, price, quantity, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
	`
	_, err := config.DB.Exec(ctx, query,
		cartID, item.ProductID, item.Name, item.Price, item.Quantity, item.ImageURL,
	)
	if err != nil {
		return err
	}

	_, err = config.DB.Exec(ctx, `UPDATE carts SET updated_at = $1 WHERE id = $2`, time.Now(), cartID)
	return err
}

func (r *cartRepository) UpdateItemQuantity(ctx context.Context, cartID, productID, quantity int) error {
	query := `UPDATE cart_items SET quantity = $1 WHERE cart_id = $2 AND product_id = $3`

	result, err := config.DB.Exec(ctx, query, quantity, cartID, productID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	_, err = config.DB.Exec(ctx, `UPDATE carts SET updated_at = $1 WHERE id = $2`, time.Now(), cartID)
	return err
}

// RemoveItem is a no-op when the line does not exist.
func (r *cartRepository) RemoveItem(ctx context.Context, cartID, productID int) error {
	_, err := config.DB.Exec(ctx,
		`DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2`, cartID, productID)
	return err
}

func (r *cartRepository) DeleteByUserID(ctx context.Context, userID int) error {
	_, err := config.DB.Exec(ctx, `DELETE FROM carts WHERE user_id = $1`, userID)
	return err
}

func (r *cartRepository) CountActive(ctx context.Context) (int, error) {
	query := `SELECT COUNT(DISTINCT cart_id) FROM cart_items`

	var count int
	err := config.DB.QueryRow(ctx, query).Scan(&count)
	return count, err
}
