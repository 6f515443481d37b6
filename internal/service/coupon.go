package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shoply/backend/internal/logging"
	"github.com/shoply/backend/internal/models"
	"github.com/shoply/backend/internal/repo"
)

type CouponService struct {
	Repo *repo.GormRepo
	Now  func() time.Time
}

func (s *CouponService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// CouponQuote echoes the coupon terms together with the discount computed
// for a concrete order amount. Producing a quote never mutates the coupon.
type CouponQuote struct {
	Code          string  `json:"code"`
	DiscountType  string  `json:"discount_type"`
	DiscountValue float64 `json:"discount_value"`
	Discount      float64 `json:"discount"`
}

// ComputeDiscount applies the coupon's terms to an order amount.
// Percentage discounts are clamped to MaxDiscount when set; fixed
// discounts are the face value, deliberately not clamped to the amount.
func ComputeDiscount(coupon *models.Coupon, amount float64) float64 {
	if coupon.DiscountType == models.DiscountTypePercentage {
		discount := amount * coupon.DiscountValue / 100
		if coupon.MaxDiscount != nil && discount > *coupon.MaxDiscount {
			discount = *coupon.MaxDiscount
		}
		return discount
	}
	return coupon.DiscountValue
}

// Evaluate validates a coupon against an order amount and returns the
// discount it would grant. Missing, inactive and expired codes are all
// reported as not found.
func (s *CouponService) Evaluate(ctx context.Context, code string, orderAmount float64) (*CouponQuote, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: code required", ErrValidation)
	}

	coupon, err := s.Repo.FindActiveCoupon(ctx, code, s.now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid or expired coupon", ErrNotFound)
		}
		return nil, err
	}

	if coupon.UsageLimit != nil && coupon.UsedCount >= *coupon.UsageLimit {
		return nil, ErrCouponLimitReached
	}
	if orderAmount < coupon.MinOrderAmount {
		return nil, fmt.Errorf("%w: minimum order amount of $%g required", ErrCouponMinimumNotMet, coupon.MinOrderAmount)
	}

	return &CouponQuote{
		Code:          coupon.Code,
		DiscountType:  coupon.DiscountType,
		DiscountValue: coupon.DiscountValue,
		Discount:      ComputeDiscount(coupon, orderAmount),
	}, nil
}

// Apply increments the coupon's used count by one. The increment is a
// conditional update, so it can never pass the usage limit even under
// concurrent applies.
func (s *CouponService) Apply(ctx context.Context, code string) error {
	l := logging.FromContext(ctx).With("svc", "coupon.apply", "code", code)

	if code == "" {
		return fmt.Errorf("%w: code required", ErrValidation)
	}

	if _, err := s.Repo.FindCouponByCode(ctx, code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: coupon not found", ErrNotFound)
		}
		return err
	}

	applied, err := s.Repo.IncrementCouponUsage(ctx, code)
	if err != nil {
		return err
	}
	if !applied {
		l.Warn("coupon_apply_rejected", "reason", "usage limit reached")
		return ErrCouponLimitReached
	}

	l.Info("coupon_applied")
	return nil
}

func (s *CouponService) List(ctx context.Context) ([]models.Coupon, error) {
	return s.Repo.ListCoupons(ctx)
}

func (s *CouponService) Create(ctx context.Context, coupon *models.Coupon) error {
	if err := validateCoupon(coupon); err != nil {
		return err
	}
	return s.Repo.CreateCoupon(ctx, coupon)
}

func (s *CouponService) Update(ctx context.Context, id uint, updated models.Coupon) (*models.Coupon, error) {
	coupon, err := s.Repo.GetCoupon(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: coupon not found", ErrNotFound)
		}
		return nil, err
	}

	updated.ID = coupon.ID
	updated.UsedCount = coupon.UsedCount
	updated.CreatedAt = coupon.CreatedAt
	if err := validateCoupon(&updated); err != nil {
		return nil, err
	}
	if err := s.Repo.SaveCoupon(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *CouponService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.Repo.DeleteCoupon(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: coupon not found", ErrNotFound)
	}
	return nil
}

func validateCoupon(coupon *models.Coupon) error {
	if coupon.Code == "" {
		return fmt.Errorf("%w: code required", ErrValidation)
	}
	if coupon.DiscountType != models.DiscountTypePercentage && coupon.DiscountType != models.DiscountTypeFixed {
		return fmt.Errorf("%w: discount type must be percentage or fixed", ErrValidation)
	}
	if coupon.DiscountValue <= 0 {
		return fmt.Errorf("%w: discount value must be > 0", ErrValidation)
	}
	return nil
}
