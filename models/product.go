package models

import "time"

type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductSummary is the trimmed shape used by the admin dashboard chart.
type ProductSummary struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
