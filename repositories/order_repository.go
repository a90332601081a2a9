package repositories

import (
	"context"
	"time"

	"shopping-cart/config"
	"shopping-cart/models"
)

type orderRepository struct{}

func NewOrderRepository() OrderRepository {
	return &orderRepository{}
}

// Create writes the order with its item snapshot and drops the user's
// cart in one transaction, so a failed insert never loses the cart.
func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO orders (user_id, address, city, postal_code, payment_method, total_price, is_paid, paid_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	now := time.Now()
	err = tx.QueryRow(ctx, query,
		order.UserID,
		order.ShippingAddress.Address,
		order.ShippingAddress.City,
		order.ShippingAddress.PostalCode,
		order.PaymentMethod,
		order.TotalPrice,
		order.IsPaid,
		order.PaidAt,
		now,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return err
	}

	for _, item := range order.OrderItems {
		_, err = tx.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id, name, price, quantity, image_url)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			order.ID, item.ProductID, item.Name, item.Price, item.Quantity, item.ImageURL,
		)
		if err != nil {
			return err
		}
	}

	if _, err = tx.Exec(ctx, `DELETE FROM carts WHERE user_id = $1`, order.UserID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) FindByUserID(ctx context.Context, userID int) ([]models.Order, error) {
	query := `
		SELECT id, user_id, address, city, postal_code, payment_method, total_price, is_paid, paid_at, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := config.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(
			&o.ID, &o.UserID,
			&o.ShippingAddress.Address, &o.ShippingAddress.City, &o.ShippingAddress.PostalCode,
			&o.PaymentMethod, &o.TotalPrice, &o.IsPaid, &o.PaidAt, &o.CreatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.findItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].OrderItems = items
	}
	return orders, nil
}

func (r *orderRepository) FindAll(ctx context.Context) ([]models.AdminOrder, error) {
	query := `
		SELECT o.id, o.user_id, o.address, o.city, o.postal_code, o.payment_method,
		       o.total_price, o.is_paid, o.paid_at, o.created_at,
		       COALESCE(u.name, ''), COALESCE(u.email, '')
		FROM orders o
		LEFT JOIN users u ON o.user_id = u.id
		ORDER BY o.created_at DESC
	`
	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.AdminOrder{}
	for rows.Next() {
		var o models.AdminOrder
		if err := rows.Scan(
			&o.ID, &o.UserID,
			&o.ShippingAddress.Address, &o.ShippingAddress.City, &o.ShippingAddress.PostalCode,
			&o.PaymentMethod, &o.TotalPrice, &o.IsPaid, &o.PaidAt, &o.CreatedAt,
			&o.UserName, &o.UserEmail,
		); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.findItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].OrderItems = items
	}
	return orders, nil
}

func (r *orderRepository) findItems(ctx context.Context, orderID int) ([]models.OrderItem, error) {
	query := `
		SELECT product_id, name, price, quantity, image_url
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`
	rows, err := config.DB.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Price, &item.Quantity, &item.ImageURL); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
