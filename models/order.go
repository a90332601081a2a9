package models

import "time"

type OrderItem struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"imageUrl"`
}

type ShippingAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

// Order is written once at checkout and never mutated afterwards.
type Order struct {
	ID              int             `json:"id"`
	UserID          int             `json:"userId"`
	OrderItems      []OrderItem     `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	TotalPrice      float64         `json:"totalPrice"`
	IsPaid          bool            `json:"isPaid"`
	PaidAt          time.Time       `json:"paidAt"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// AdminOrder is an order joined with minimal user identity for the
// admin order listing.
type AdminOrder struct {
	Order
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}
