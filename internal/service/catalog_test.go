package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoply/backend/internal/models"
)

func TestCatalogService_CRUD(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	product := models.Product{Name: "Shirt", Description: "Plain tee", Price: 10, Category: "apparel", Stock: 5}
	require.NoError(t, svc.CreateProduct(ctx, &product))
	require.NotZero(t, product.ID)

	got, err := svc.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shirt", got.Name)

	product.Price = 12
	updated, err := svc.UpdateProduct(ctx, product.ID, product)
	require.NoError(t, err)
	assert.Equal(t, 12.0, updated.Price)

	require.NoError(t, svc.DeleteProduct(ctx, product.ID))

	_, err = svc.GetProduct(ctx, product.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, svc.DeleteProduct(ctx, product.ID), ErrNotFound)
}

func TestCatalogService_Validation(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	err := svc.CreateProduct(ctx, &models.Product{Price: 10})
	require.ErrorIs(t, err, ErrValidation)

	err = svc.CreateProduct(ctx, &models.Product{Name: "Shirt", Price: -1})
	require.ErrorIs(t, err, ErrValidation)
}

func TestCatalogService_ListFilters(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	require.NoError(t, svc.CreateProduct(ctx, &models.Product{Name: "Blue Shirt", Description: "d", Price: 10, Category: "apparel"}))
	require.NoError(t, svc.CreateProduct(ctx, &models.Product{Name: "Red Shirt", Description: "d", Price: 12, Category: "apparel"}))
	require.NoError(t, svc.CreateProduct(ctx, &models.Product{Name: "Mug", Description: "d", Price: 8, Category: "kitchen"}))

	total, items, err := svc.ListProducts(ctx, "", "", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, items, 3)

	total, items, err = svc.ListProducts(ctx, "apparel", "", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 2)

	total, items, err = svc.ListProducts(ctx, "", "shirt", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 2)

	total, items, err = svc.ListProducts(ctx, "", "", 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, items, 2)
}

func TestCatalogService_SearchRequiresES(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}

	_, _, err := svc.SearchProducts(context.Background(), "shirt", 0, 10)
	require.ErrorIs(t, err, ErrValidation)
}
