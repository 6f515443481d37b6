package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"gorm.io/gorm"

	"github.com/shoply/backend/internal/cache"
	"github.com/shoply/backend/internal/es"
	"github.com/shoply/backend/internal/events"
	"github.com/shoply/backend/internal/logging"
	"github.com/shoply/backend/internal/models"
	"github.com/shoply/backend/internal/repo"
)

const productCacheTTL = 5 * time.Minute

type CatalogService struct {
	Repo   *repo.GormRepo
	Cache  *cache.Cache
	ES     *elasticsearch.Client
	Events *events.Producer
}

// GetProduct reads through the redis cache; a stale or unavailable cache
// falls back to the store silently.
func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	l := logging.FromContext(ctx)
	key := s.Cache.Key("product", strconv.FormatUint(uint64(id), 10))

	if cached, err := s.Cache.Get(ctx, key); err != nil {
		l.Warn("product cache read failed", "error", err)
	} else if cached != "" {
		var product models.Product
		if err := json.Unmarshal([]byte(cached), &product); err == nil {
			return &product, nil
		}
	}

	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return nil, err
	}

	if data, err := json.Marshal(product); err == nil {
		if err := s.Cache.Set(ctx, key, data, productCacheTTL); err != nil {
			l.Warn("product cache write failed", "error", err)
		}
	}
	return product, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, category, search string, offset, limit int) (int64, []models.Product, error) {
	return s.Repo.ListProducts(ctx, category, search, offset, limit)
}

// SearchProducts runs a fuzzy full-text query against the product index.
func (s *CatalogService) SearchProducts(ctx context.Context, query string, from, size int) (int64, []models.Product, error) {
	if s.ES == nil {
		return 0, nil, fmt.Errorf("%w: search is not configured", ErrValidation)
	}
	return es.SearchProducts(ctx, s.ES, query, from, size)
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	if err := s.Repo.CreateProduct(ctx, product); err != nil {
		return err
	}

	s.indexProduct(ctx, product)
	s.publish(ctx, map[string]any{"type": "product_created", "productID": product.ID, "name": product.Name})
	return nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, updated models.Product) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return nil, err
	}

	updated.ID = product.ID
	if err := validateProduct(&updated); err != nil {
		return nil, err
	}
	if err := s.Repo.SaveProduct(ctx, &updated); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	s.indexProduct(ctx, &updated)
	s.publish(ctx, map[string]any{"type": "product_updated", "productID": updated.ID, "name": updated.Name})
	return &updated, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	deleted, err := s.Repo.DeleteProduct(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: product not found", ErrNotFound)
	}

	s.invalidate(ctx, id)
	if s.ES != nil {
		if err := es.DeleteProduct(ctx, s.ES, id); err != nil {
			logging.FromContext(ctx).Error("es delete error", "error", err, "product_id", id)
		}
	}
	s.publish(ctx, map[string]any{"type": "product_deleted", "productID": id})
	return nil
}

func validateProduct(product *models.Product) error {
	if product.Name == "" {
		return fmt.Errorf("%w: name required", ErrValidation)
	}
	if product.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context, id uint) {
	key := s.Cache.Key("product", strconv.FormatUint(uint64(id), 10))
	if err := s.Cache.Delete(ctx, key); err != nil {
		logging.FromContext(ctx).Warn("product cache invalidate failed", "error", err)
	}
}

func (s *CatalogService) indexProduct(ctx context.Context, product *models.Product) {
	if s.ES == nil {
		return
	}
	if err := es.IndexProduct(ctx, s.ES, product); err != nil {
		logging.FromContext(ctx).Error("es index error", "error", err, "product_id", product.ID)
	}
}

func (s *CatalogService) publish(ctx context.Context, event map[string]any) {
	if err := s.Events.PublishEvent(ctx, "product_events", fmt.Sprint(event["productID"]), event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "error", err)
	}
}
