package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"shopping-cart/config"
	"shopping-cart/models"
)

type productRepository struct{}

func NewProductRepository() ProductRepository {
	return &productRepository{}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (name, price, description, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(ctx, query,
		product.Name, product.Price, product.Description, product.ImageURL, now, now,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) FindByID(ctx context.Context, id int) (*models.Product, error) {
	query := `SELECT id, name, price, description, image_url, created_at, updated_at FROM products WHERE id = $1`

	product := &models.Product{}
	err := config.DB.QueryRow(ctx, query, id).Scan(
		&product.ID, &product.Name, &product.Price, &product.Description,
		&product.ImageURL, &product.CreatedAt, &product.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepository) FindAll(ctx context.Context, params ProductListParams) ([]models.Product, int, error) {
	offset := (params.Page - 1) * params.Limit

	where := ""
	args := []interface{}{}
	if params.Keyword != "" {
		where = " WHERE name ILIKE $1"
		args = append(args, "%"+params.Keyword+"%")
	}

	var totalCount int
	if err := config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM products"+where, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	orderBy := "created_at DESC"
	switch params.Sort {
	case "price":
		orderBy = "price ASC"
	case "price_desc":
		orderBy = "price DESC"
	}

	query := fmt.Sprintf(
		`SELECT id, name, price, description, image_url, created_at, updated_at
		 FROM products%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		where, orderBy, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit, offset)

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Price, &p.Description, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, totalCount, rows.Err()
}

func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products SET name = $1, price = $2, description = $3, image_url = $4, updated_at = $5
		WHERE id = $6
	`
	result, err := config.DB.Exec(ctx, query,
		product.Name, product.Price, product.Description, product.ImageURL, time.Now(), product.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id int) error {
	result, err := config.DB.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}

func (r *productRepository) TopByPrice(ctx context.Context, limit int) ([]models.ProductSummary, error) {
	query := `SELECT name, price FROM products ORDER BY price DESC LIMIT $1`

	rows, err := config.DB.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	top := []models.ProductSummary{}
	for rows.Next() {
		var s models.ProductSummary
		if err := rows.Scan(&s.Name, &s.Price); err != nil {
			return nil, err
		}
		top = append(top, s)
	}
	return top, rows.Err()
}
