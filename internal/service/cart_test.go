package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddAndTotal(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()

	shirt := seedProduct(t, r, "Shirt", 10)
	mug := seedProduct(t, r, "Mug", 20)

	view, err := svc.AddToCart(ctx, 1, shirt.ID, 2)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 20.0, view.Total)

	view, err = svc.AddToCart(ctx, 1, mug.ID, 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Equal(t, 40.0, view.Total)
}

func TestCartService_AddMergesQuantities(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()

	shirt := seedProduct(t, r, "Shirt", 10)

	_, err := svc.AddToCart(ctx, 1, shirt.ID, 2)
	require.NoError(t, err)
	view, err := svc.AddToCart(ctx, 1, shirt.ID, 3)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, uint(5), view.Items[0].Quantity)
	assert.Equal(t, 50.0, view.Total)
}

func TestCartService_AddDefaultsQuantityToOne(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}

	shirt := seedProduct(t, r, "Shirt", 10)

	view, err := svc.AddToCart(context.Background(), 1, shirt.ID, 0)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, uint(1), view.Items[0].Quantity)
}

func TestCartService_AddUnknownProduct(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}

	_, err := svc.AddToCart(context.Background(), 1, 999, 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCartService_TotalFollowsCurrentPrices(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()

	shirt := seedProduct(t, r, "Shirt", 10)
	_, err := svc.AddToCart(ctx, 1, shirt.ID, 2)
	require.NoError(t, err)

	shirt.Price = 15
	require.NoError(t, r.SaveProduct(ctx, &shirt))

	view, err := svc.GetCart(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 30.0, view.Total)
}

func TestCartService_RemoveAndClear(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()

	shirt := seedProduct(t, r, "Shirt", 10)
	mug := seedProduct(t, r, "Mug", 20)
	_, err := svc.AddToCart(ctx, 1, shirt.ID, 1)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, 1, mug.ID, 1)
	require.NoError(t, err)

	view, err := svc.RemoveFromCart(ctx, 1, shirt.ID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 20.0, view.Total)

	view, err = svc.ClearCart(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.Total)
}

func TestCartService_IsolatedPerUser(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()

	shirt := seedProduct(t, r, "Shirt", 10)
	_, err := svc.AddToCart(ctx, 1, shirt.ID, 1)
	require.NoError(t, err)

	view, err := svc.GetCart(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}
