package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistService_AddRemoveContains(t *testing.T) {
	r := newTestRepo(t)
	svc := &WishlistService{Repo: r}
	ctx := context.Background()

	shirt := seedProduct(t, r, "Shirt", 10)
	mug := seedProduct(t, r, "Mug", 20)

	list, err := svc.Add(ctx, 1, shirt.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = svc.Add(ctx, 1, mug.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	ok, err := svc.Contains(ctx, 1, shirt.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Contains(ctx, 2, shirt.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	list, err = svc.Remove(ctx, 1, shirt.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mug.ID, list[0].ID)
}

func TestWishlistService_Add_Duplicate(t *testing.T) {
	r := newTestRepo(t)
	svc := &WishlistService{Repo: r}
	ctx := context.Background()

	shirt := seedProduct(t, r, "Shirt", 10)

	_, err := svc.Add(ctx, 1, shirt.ID)
	require.NoError(t, err)

	_, err = svc.Add(ctx, 1, shirt.ID)
	require.ErrorIs(t, err, ErrValidation)
}

func TestWishlistService_Add_UnknownProduct(t *testing.T) {
	r := newTestRepo(t)
	svc := &WishlistService{Repo: r}

	_, err := svc.Add(context.Background(), 1, 404)
	require.ErrorIs(t, err, ErrNotFound)
}
