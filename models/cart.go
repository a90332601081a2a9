package models

import "time"

// CartItem holds a snapshot of the product taken when the item was
// added. A later product edit does not change name, price or imageUrl.
type CartItem struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"imageUrl"`
}

type Cart struct {
	ID        int        `json:"id,omitempty"`
	UserID    int        `json:"userId"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt,omitempty"`
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
