package services

import (
	"context"
	"errors"

	"shopping-cart/models"
	"shopping-cart/repositories"
)

var ErrSelfDelete = errors.New("admins cannot delete their own account")

type UserService struct {
	users    repositories.UserRepository
	products repositories.ProductRepository
	carts    repositories.CartRepository
}

func NewUserService(
	users repositories.UserRepository,
	products repositories.ProductRepository,
	carts repositories.CartRepository,
) *UserService {
	return &UserService{users: users, products: products, carts: carts}
}

func (s *UserService) List(ctx context.Context, page, limit int) (*models.UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	users, totalCount, err := s.users.FindAll(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := 0
	if totalCount > 0 {
		totalPages = (totalCount + limit - 1) / limit
	}

	return &models.UserListResponse{
		Items:       users,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
	}, nil
}

// Update only toggles the admin flag; everything else on the account
// belongs to the profile endpoints.
func (s *UserService) Update(ctx context.Context, id int, isAdmin bool) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.IsAdmin = isAdmin
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, callerID, id int) error {
	if callerID == id {
		return ErrSelfDelete
	}
	return s.users.Delete(ctx, id)
}

// Stats feeds the admin dashboard: headline counts plus the five most
// expensive products for the chart.
func (s *UserService) Stats(ctx context.Context) (*models.StatsResponse, error) {
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	productCount, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}

	activeCarts, err := s.carts.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	topProducts, err := s.products.TopByPrice(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &models.StatsResponse{
		UserCount:          userCount,
		ProductCount:       productCount,
		ActiveCartsCount:   activeCarts,
		TopProductsByPrice: topProducts,
	}, nil
}
