package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"shopping-cart/models"
	"shopping-cart/repositories"
)

var ErrCartEmpty = errors.New("cart is empty")

type OrderService struct {
	orders repositories.OrderRepository
	carts  repositories.CartRepository
	users  repositories.UserRepository
	mail   *EmailService
	logger zerolog.Logger
}

func NewOrderService(
	orders repositories.OrderRepository,
	carts repositories.CartRepository,
	users repositories.UserRepository,
	mail *EmailService,
	logger zerolog.Logger,
) *OrderService {
	return &OrderService{orders: orders, carts: carts, users: users, mail: mail, logger: logger}
}

// Create converts the caller's cart into an order. The total is
// computed once here and never recomputed; the items are copied
// verbatim so later product edits cannot reach into the order. Payment
// is simulated: every order is paid the moment it is created. The cart
// is deleted in the same transaction as the order insert.
func (s *OrderService) Create(ctx context.Context, userID int, req models.CreateOrderRequest) (*models.Order, error) {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrCartEmpty
	}
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrCartEmpty
	}

	var totalPrice float64
	orderItems := make([]models.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		totalPrice += item.Price * float64(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			ImageURL:  item.ImageURL,
		})
	}

	order := &models.Order{
		UserID:     userID,
		OrderItems: orderItems,
		ShippingAddress: models.ShippingAddress{
			Address:    req.ShippingAddress.Address,
			City:       req.ShippingAddress.City,
			PostalCode: req.ShippingAddress.PostalCode,
		},
		PaymentMethod: req.PaymentMethod,
		TotalPrice:    totalPrice,
		IsPaid:        true,
		PaidAt:        time.Now(),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.sendConfirmation(ctx, order)

	return order, nil
}

// sendConfirmation is best effort: a mail failure never fails the order.
func (s *OrderService) sendConfirmation(ctx context.Context, order *models.Order) {
	if s.mail == nil {
		return
	}
	user, err := s.users.FindByID(ctx, order.UserID)
	if err != nil {
		s.logger.Warn().Err(err).Int("user_id", order.UserID).Msg("order confirmation skipped")
		return
	}
	if err := s.mail.SendOrderConfirmation(user.Email, order); err != nil {
		s.logger.Warn().Err(err).Int("order_id", order.ID).Msg("order confirmation email failed")
	}
}

func (s *OrderService) ListMyOrders(ctx context.Context, userID int) ([]models.Order, error) {
	return s.orders.FindByUserID(ctx, userID)
}

func (s *OrderService) ListAllOrders(ctx context.Context) ([]models.AdminOrder, error) {
	return s.orders.FindAll(ctx)
}
