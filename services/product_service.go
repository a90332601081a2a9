package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"shopping-cart/models"
	"shopping-cart/repositories"
)

var (
	ErrProductName  = errors.New("product name is required")
	ErrProductPrice = errors.New("product price must be zero or greater")
)

const (
	productCachePrefix = "products:list:"
	productCacheTTL    = 60 * time.Second
)

type ProductService struct {
	products repositories.ProductRepository
	cache    *redis.Client
	logger   zerolog.Logger
}

// NewProductService accepts a nil cache client; listing then always
// hits the database.
func NewProductService(products repositories.ProductRepository, cache *redis.Client, logger zerolog.Logger) *ProductService {
	return &ProductService{products: products, cache: cache, logger: logger}
}

func (s *ProductService) List(ctx context.Context, params repositories.ProductListParams) (*models.ProductListResponse, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}
	if params.Limit > 100 {
		params.Limit = 100
	}
	params.Keyword = strings.TrimSpace(params.Keyword)

	cacheKey := fmt.Sprintf("%s%d:%d:%s:%s", productCachePrefix, params.Page, params.Limit, params.Keyword, params.Sort)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var resp models.ProductListResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	items, totalCount, err := s.products.FindAll(ctx, params)
	if err != nil {
		return nil, err
	}

	totalPages := 0
	if totalCount > 0 {
		totalPages = (totalCount + params.Limit - 1) / params.Limit
	}

	resp := &models.ProductListResponse{
		Items:       items,
		CurrentPage: params.Page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, cacheKey, encoded, productCacheTTL).Err(); err != nil {
				s.logger.Debug().Err(err).Msg("product cache set failed")
			}
		}
	}
	return resp, nil
}

func (s *ProductService) Get(ctx context.Context, id int) (*models.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        strings.TrimSpace(req.Name),
		Price:       *req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id int, req models.ProductRequest) (*models.Product, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(req.Name)
	product.Price = *req.Price
	product.Description = req.Description
	product.ImageURL = req.ImageURL

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return product, nil
}

// Delete removes the catalog entry only. Cart and order lines keep
// their snapshots; nothing cascades.
func (s *ProductService) Delete(ctx context.Context, id int) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *ProductService) SetImage(ctx context.Context, id int, imageURL string) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.ImageURL = imageURL
	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return product, nil
}

func validateProduct(req models.ProductRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrProductName
	}
	if req.Price == nil || *req.Price < 0 {
		return ErrProductPrice
	}
	return nil
}

func (s *ProductService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	keys, err := s.cache.Keys(ctx, productCachePrefix+"*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := s.cache.Del(ctx, keys...).Err(); err != nil {
		s.logger.Debug().Err(err).Msg("product cache invalidation failed")
	}
}
