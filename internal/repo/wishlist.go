package repo

import (
	"context"

	"github.com/shoply/backend/internal/models"
)

func (r *GormRepo) GetWishlist(ctx context.Context, userID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.DB.WithContext(ctx).Model(&models.Product{}).
		Joins("JOIN wishlist_items ON wishlist_items.product_id = products.id").
		Where("wishlist_items.user_id = ?", userID).
		Order("wishlist_items.id ASC").
		Find(&products).Error
	return products, err
}

func (r *GormRepo) InWishlist(ctx context.Context, userID, productID uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}

func (r *GormRepo) AddToWishlist(ctx context.Context, userID, productID uint) error {
	return r.DB.WithContext(ctx).Create(&models.WishlistItem{UserID: userID, ProductID: productID}).Error
}

func (r *GormRepo) RemoveFromWishlist(ctx context.Context, userID, productID uint) error {
	return r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{}).Error
}
