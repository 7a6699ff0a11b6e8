package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sneakers-store-be/internal/dto"
	"sneakers-store-be/internal/entity"
	"sneakers-store-be/internal/pkg/logger"
	"sneakers-store-be/internal/repository/contract"
	"sneakers-store-be/internal/repository/specification"

	"github.com/redis/go-redis/v9"
)

var ErrProductNotFound = errors.New("product not found")

const productCacheTTL = 5 * time.Minute

type IProductService interface {
	GetProducts(ctx context.Context, filter *dto.ProductFilter) ([]*dto.ProductResponse, error)
	GetProduct(ctx context.Context, productId uint) (*dto.ProductResponse, error)
}

type productService struct {
	productRepo contract.ProductRepository
	rdb         *redis.Client // nil when Redis is not configured
	log         logger.ILogger
}

func NewProductService(productRepo contract.ProductRepository, rdb *redis.Client, log logger.ILogger) IProductService {
	return &productService{
		productRepo: productRepo,
		rdb:         rdb,
		log:         log,
	}
}

// GetProducts returns the catalog, optionally filtered by brand and
// category. Filtered lists are cached in Redis; a cache failure degrades to
// a plain database read.
func (s *productService) GetProducts(ctx context.Context, filter *dto.ProductFilter) ([]*dto.ProductResponse, error) {
	cacheKey := productListCacheKey(filter)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var out []*dto.ProductResponse
			if json.Unmarshal([]byte(cached), &out) == nil {
				return out, nil
			}
		} else if err != redis.Nil {
			s.log.Warn("product", "cache read failed", map[string]interface{}{"error": err.Error()})
		}
	}

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if filter != nil && filter.Brand != "" {
		specs = append(specs, specification.ByBrand{Brand: filter.Brand})
	}
	if filter != nil && filter.Category != "" {
		specs = append(specs, specification.ByCategory{Category: filter.Category})
	}

	products, err := s.productRepo.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(out); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, payload, productCacheTTL).Err(); err != nil {
				s.log.Warn("product", "cache write failed", map[string]interface{}{"error": err.Error()})
			}
		}
	}

	return out, nil
}

func (s *productService) GetProduct(ctx context.Context, productId uint) (*dto.ProductResponse, error) {
	product, err := s.productRepo.FindById(ctx, productId)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return toProductResponse(product), nil
}

func productListCacheKey(filter *dto.ProductFilter) string {
	brand, category := "", ""
	if filter != nil {
		brand, category = filter.Brand, filter.Category
	}
	return fmt.Sprintf("products:%s:%s", brand, category)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		Id:        p.Id,
		Name:      p.Name,
		Brand:     p.Brand,
		Price:     p.Price,
		Image:     p.Image,
		Stock:     p.Stock,
		Category:  p.Category,
		Sizes:     p.Sizes,
		CreatedAt: p.CreatedAt,
	}
}
