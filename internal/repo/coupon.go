package repo

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/shoply/backend/internal/models"
)

// FindActiveCoupon matches by upper-cased code, active flag and expiry in
// one query, mirroring the selectability rule: inactive or expired coupons
// are indistinguishable from missing ones.
func (r *GormRepo) FindActiveCoupon(ctx context.Context, code string, now time.Time) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.DB.WithContext(ctx).
		Where("code = ? AND is_active = ? AND expiry_date >= ?", strings.ToUpper(code), true, now).
		First(&coupon).Error
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *GormRepo) FindCouponByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.DB.WithContext(ctx).Where("code = ?", strings.ToUpper(code)).First(&coupon).Error
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

// IncrementCouponUsage is a conditional single-statement update so the
// used count can never pass the usage limit under concurrent applies.
func (r *GormRepo) IncrementCouponUsage(ctx context.Context, code string) (bool, error) {
	res := r.DB.WithContext(ctx).Model(&models.Coupon{}).
		Where("code = ? AND (usage_limit IS NULL OR used_count < usage_limit)", strings.ToUpper(code)).
		Update("used_count", gorm.Expr("used_count + 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormRepo) GetCoupon(ctx context.Context, id uint) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.DB.WithContext(ctx).First(&coupon, id).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *GormRepo) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	var coupons []models.Coupon
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&coupons).Error
	return coupons, err
}

func (r *GormRepo) CreateCoupon(ctx context.Context, coupon *models.Coupon) error {
	coupon.Code = strings.ToUpper(coupon.Code)
	return r.DB.WithContext(ctx).Create(coupon).Error
}

func (r *GormRepo) SaveCoupon(ctx context.Context, coupon *models.Coupon) error {
	coupon.Code = strings.ToUpper(coupon.Code)
	return r.DB.WithContext(ctx).Save(coupon).Error
}

func (r *GormRepo) DeleteCoupon(ctx context.Context, id uint) (bool, error) {
	res := r.DB.WithContext(ctx).Delete(&models.Coupon{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
