package services

import (
	"context"
	"errors"
	"os"
	"sort"
	"strings"
	"testing"
	"time"

	"shopping-cart/config"
	"shopping-cart/models"
	"shopping-cart/repositories"
)

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}
	os.Exit(m.Run())
}

// memStore backs the in-memory repository fakes the service tests run
// against.
type memStore struct {
	users    map[int]*models.User
	products map[int]*models.Product
	carts    map[int]*models.Cart
	orders   []models.Order
	nextID   int
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[int]*models.User{},
		products: map[int]*models.Product{},
		carts:    map[int]*models.Cart{},
	}
}

func (s *memStore) id() int {
	s.nextID++
	return s.nextID
}

type memUsers struct{ store *memStore }

func (r *memUsers) Create(_ context.Context, user *models.User) error {
	for _, u := range r.store.users {
		if u.Email == user.Email {
			return errors.New("duplicate email")
		}
	}
	user.ID = r.store.id()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.store.users[user.ID] = &clone
	return nil
}

func (r *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.store.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *memUsers) FindByID(_ context.Context, id int) (*models.User, error) {
	u, ok := r.store.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memUsers) FindAll(_ context.Context, page, limit int) ([]models.User, int, error) {
	all := []models.User{}
	for _, u := range r.store.users {
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	total := len(all)
	start := (page - 1) * limit
	if start >= total {
		return []models.User{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (r *memUsers) Update(_ context.Context, user *models.User) error {
	if _, ok := r.store.users[user.ID]; !ok {
		return repositories.ErrNotFound
	}
	clone := *user
	r.store.users[user.ID] = &clone
	return nil
}

func (r *memUsers) UpdatePassword(_ context.Context, userID int, hashedPassword string) error {
	u, ok := r.store.users[userID]
	if !ok {
		return repositories.ErrNotFound
	}
	u.Password = hashedPassword
	return nil
}

func (r *memUsers) Delete(_ context.Context, id int) error {
	if _, ok := r.store.users[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.store.users, id)
	delete(r.store.carts, id)
	return nil
}

func (r *memUsers) Count(_ context.Context) (int, error) {
	return len(r.store.users), nil
}

type memProducts struct{ store *memStore }

func (r *memProducts) Create(_ context.Context, product *models.Product) error {
	product.ID = r.store.id()
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	clone := *product
	r.store.products[product.ID] = &clone
	return nil
}

func (r *memProducts) FindByID(_ context.Context, id int) (*models.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *memProducts) FindAll(_ context.Context, params repositories.ProductListParams) ([]models.Product, int, error) {
	all := []models.Product{}
	keyword := strings.ToLower(params.Keyword)
	for _, p := range r.store.products {
		if keyword != "" && !strings.Contains(strings.ToLower(p.Name), keyword) {
			continue
		}
		all = append(all, *p)
	}

	switch params.Sort {
	case "price":
		sort.Slice(all, func(i, j int) bool { return all[i].Price < all[j].Price })
	case "price_desc":
		sort.Slice(all, func(i, j int) bool { return all[i].Price > all[j].Price })
	default:
		sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	}

	total := len(all)
	start := (params.Page - 1) * params.Limit
	if start >= total {
		return []models.Product{}, total, nil
	}
	end := start + params.Limit
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (r *memProducts) Update(_ context.Context, product *models.Product) error {
	if _, ok := r.store.products[product.ID]; !ok {
		return repositories.ErrNotFound
	}
	clone := *product
	r.store.products[product.ID] = &clone
	return nil
}

func (r *memProducts) Delete(_ context.Context, id int) error {
	if _, ok := r.store.products[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.store.products, id)
	return nil
}

func (r *memProducts) Count(_ context.Context) (int, error) {
	return len(r.store.products), nil
}

func (r *memProducts) TopByPrice(_ context.Context, limit int) ([]models.ProductSummary, error) {
	all := []models.Product{}
	for _, p := range r.store.products {
		all = append(all, *p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Price > all[j].Price })

	if len(all) > limit {
		all = all[:limit]
	}
	top := []models.ProductSummary{}
	for _, p := range all {
		top = append(top, models.ProductSummary{Name: p.Name, Price: p.Price})
	}
	return top, nil
}

type memCarts struct{ store *memStore }

func cloneCart(c *models.Cart) *models.Cart {
	clone := *c
	clone.Items = append([]models.CartItem{}, c.Items...)
	return &clone
}

func (r *memCarts) FindByUserID(_ context.Context, userID int) (*models.Cart, error) {
	c, ok := r.store.carts[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return cloneCart(c), nil
}

func (r *memCarts) Create(_ context.Context, userID int) (*models.Cart, error) {
	cart := &models.Cart{
		ID:        r.store.id(),
		UserID:    userID,
		Items:     []models.CartItem{},
		CreatedAt: time.Now(),
	}
	r.store.carts[userID] = cart
	return cloneCart(cart), nil
}

func (r *memCarts) findByCartID(cartID int) *models.Cart {
	for _, c := range r.store.carts {
		if c.ID == cartID {
			return c
		}
	}
	return nil
}

func (r *memCarts) AddItem(_ context.Context, cartID int, item models.CartItem) error {
	cart := r.findByCartID(cartID)
	if cart == nil {
		return repositories.ErrNotFound
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == item.ProductID {
			cart.Items[i].Quantity += item.Quantity
			return nil
		}
	}
	cart.Items = append(cart.Items, item)
	return nil
}

func (r *memCarts) UpdateItemQuantity(_ context.Context, cartID, productID, quantity int) error {
	cart := r.findByCartID(cartID)
	if cart == nil {
		return repositories.ErrNotFound
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *memCarts) RemoveItem(_ context.Context, cartID, productID int) error {
	cart := r.findByCartID(cartID)
	if cart == nil {
		return repositories.ErrNotFound
	}
	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	cart.Items = items
	return nil
}

func (r *memCarts) DeleteByUserID(_ context.Context, userID int) error {
	delete(r.store.carts, userID)
	return nil
}

func (r *memCarts) CountActive(_ context.Context) (int, error) {
	count := 0
	for _, c := range r.store.carts {
		if len(c.Items) > 0 {
			count++
		}
	}
	return count, nil
}

type memOrders struct{ store *memStore }

func (r *memOrders) Create(_ context.Context, order *models.Order) error {
	order.ID = r.store.id()
	order.CreatedAt = time.Now()
	clone := *order
	clone.OrderItems = append([]models.OrderItem{}, order.OrderItems...)
	r.store.orders = append(r.store.orders, clone)
	delete(r.store.carts, order.UserID)
	return nil
}

func (r *memOrders) FindByUserID(_ context.Context, userID int) ([]models.Order, error) {
	orders := []models.Order{}
	for _, o := range r.store.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID > orders[j].ID })
	return orders, nil
}

func (r *memOrders) FindAll(_ context.Context) ([]models.AdminOrder, error) {
	orders := []models.AdminOrder{}
	for _, o := range r.store.orders {
		admin := models.AdminOrder{Order: o}
		if u, ok := r.store.users[o.UserID]; ok {
			admin.UserName = u.Name
			admin.UserEmail = u.Email
		}
		orders = append(orders, admin)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID > orders[j].ID })
	return orders, nil
}
