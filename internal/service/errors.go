package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation") // 400
	ErrNotFound   = errors.New("not found")  // 404
	ErrForbidden  = errors.New("forbidden")  // 403

	// Coupon rejections are validation failures with distinct identities
	// so callers can tell them apart.
	ErrCouponLimitReached  = fmt.Errorf("%w: coupon usage limit reached", ErrValidation)
	ErrCouponMinimumNotMet = fmt.Errorf("%w: minimum order amount not met", ErrValidation)
)
