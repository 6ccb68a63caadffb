package caching

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"shopmart/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	productListKey    = "shopmart:products:all"
	popularProductKey = "shopmart:products:popular"
)

// CacheService is a read cache for the catalog. It is never consulted inside
// the order transaction; the transactional core always reads Postgres.
type CacheService interface {
	GetProducts(ctx context.Context) ([]*models.Product, error)
	SetProducts(ctx context.Context, products []*models.Product, ttl time.Duration) error
	GetPopularProducts(ctx context.Context) ([]*models.Product, error)
	SetPopularProducts(ctx context.Context, products []*models.Product, ttl time.Duration) error
	InvalidateCatalog(ctx context.Context) error
	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	// Accept redis://host:port as well as a bare host:port.
	parsedAddr := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://")

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", pingErr, parsedAddr)
	}

	return &redisCacheService{client: client}
}

func (r *redisCacheService) getProductList(ctx context.Context, key string) ([]*models.Product, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var products []*models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *redisCacheService) setProductList(ctx context.Context, key string, products []*models.Product, ttl time.Duration) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *redisCacheService) GetProducts(ctx context.Context) ([]*models.Product, error) {
	return r.getProductList(ctx, productListKey)
}

func (r *redisCacheService) SetProducts(ctx context.Context, products []*models.Product, ttl time.Duration) error {
	return r.setProductList(ctx, productListKey, products, ttl)
}

func (r *redisCacheService) GetPopularProducts(ctx context.Context) ([]*models.Product, error) {
	return r.getProductList(ctx, popularProductKey)
}

func (r *redisCacheService) SetPopularProducts(ctx context.Context, products []*models.Product, ttl time.Duration) error {
	return r.setProductList(ctx, popularProductKey, products, ttl)
}

func (r *redisCacheService) InvalidateCatalog(ctx context.Context) error {
	return r.client.Del(ctx, productListKey, popularProductKey).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
