package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shoply/backend/internal/models"
	"github.com/shoply/backend/internal/repo"
)

type WishlistService struct {
	Repo *repo.GormRepo
}

func (s *WishlistService) GetWishlist(ctx context.Context, userID uint) ([]models.Product, error) {
	return s.Repo.GetWishlist(ctx, userID)
}

func (s *WishlistService) Add(ctx context.Context, userID, productID uint) ([]models.Product, error) {
	if _, err := s.Repo.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return nil, err
	}

	exists, err := s.Repo.InWishlist(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: product already in wishlist", ErrValidation)
	}

	if err := s.Repo.AddToWishlist(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.Repo.GetWishlist(ctx, userID)
}

func (s *WishlistService) Remove(ctx context.Context, userID, productID uint) ([]models.Product, error) {
	if err := s.Repo.RemoveFromWishlist(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.Repo.GetWishlist(ctx, userID)
}

func (s *WishlistService) Contains(ctx context.Context, userID, productID uint) (bool, error) {
	return s.Repo.InWishlist(ctx, userID, productID)
}
