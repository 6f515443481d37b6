package models

import (
	"time"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name        string  `gorm:"not null;index"            json:"name"`
	Description string  `gorm:"not null"                  json:"description"`
	Price       float64 `gorm:"not null"                  json:"price"`
	Image       string  `json:"image"`
	Category    string  `gorm:"index"                     json:"category"`
	Stock       uint    `json:"stock"`
	Rating      float64 `json:"rating"`
	Reviews     uint    `json:"reviews"`
}

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null"                 json:"name"`
	Email        string    `gorm:"unique;not null"          json:"email"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	Role         string    `gorm:"not null"                 json:"role"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"created_at"`
}

type RefreshToken struct {
	ID        uint      `gorm:"primaryKey"          json:"id"`
	Token     string    `gorm:"unique;not null"     json:"token"`
	UserID    uint      `gorm:"index;not null"      json:"user_id"`
	ExpiresAt time.Time `gorm:"not null"            json:"expires_at"`
	Revoked   bool      `gorm:"default:false"       json:"revoked"`
}

type CartItem struct {
	ID        uint `gorm:"primaryKey"                  json:"id"`
	UserID    uint `gorm:"index;not null"              json:"user_id"`
	ProductID uint `gorm:"not null"                    json:"product_id"`
	Quantity  uint `gorm:"default:1;check:quantity>0"  json:"quantity"`
}

// Coupon codes are stored upper-cased; lookups normalize before querying.
// MaxDiscount applies to percentage coupons only, a nil UsageLimit means
// unlimited use.
type Coupon struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Code           string    `gorm:"unique;not null"          json:"code"`
	DiscountType   string    `gorm:"not null"                 json:"discount_type"`
	DiscountValue  float64   `gorm:"not null"                 json:"discount_value"`
	MinOrderAmount float64   `gorm:"default:0"                json:"min_order_amount"`
	MaxDiscount    *float64  `json:"max_discount,omitempty"`
	ExpiryDate     time.Time `gorm:"not null"                 json:"expiry_date"`
	UsageLimit     *uint     `json:"usage_limit,omitempty"`
	UsedCount      uint      `gorm:"default:0"                json:"used_count"`
	IsActive       bool      `gorm:"default:true"             json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

type PaymentDetails struct {
	Method        string     `json:"method"`
	TransactionID string     `json:"transaction_id"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

// Order is an immutable snapshot taken at checkout: item prices and the
// total breakdown never change after creation, only status fields do.
type Order struct {
	ID              uint               `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint               `gorm:"index;not null"           json:"user_id"`
	Items           []OrderItem        `gorm:"foreignKey:OrderID"       json:"items"`
	Subtotal        float64            `gorm:"not null"                 json:"subtotal"`
	Discount        float64            `gorm:"default:0"                json:"discount"`
	CouponCode      *string            `json:"coupon_code,omitempty"`
	ShippingFee     float64            `gorm:"default:5"                json:"shipping_fee"`
	Total           float64            `gorm:"not null"                 json:"total"`
	Status          string             `gorm:"not null"                 json:"status"`
	TrackingNumber  *string            `json:"tracking_number,omitempty"`
	StatusHistory   []OrderStatusEntry `gorm:"foreignKey:OrderID"       json:"status_history"`
	ShippingAddress string             `json:"shipping_address"`
	PaymentMethod   string             `json:"payment_method"`
	PaymentStatus   string             `gorm:"not null"                 json:"payment_status"`
	PaymentDetails  PaymentDetails     `gorm:"embedded;embeddedPrefix:payment_detail_" json:"payment_details"`
	CreatedAt       time.Time          `json:"created_at"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey"                  json:"id"`
	OrderID   uint    `gorm:"index;not null"              json:"order_id"`
	ProductID uint    `gorm:"not null"                    json:"product_id"`
	Quantity  uint    `gorm:"default:1;check:quantity>0"  json:"quantity"`
	Price     float64 `gorm:"not null"                    json:"price"`
}

// OrderStatusEntry rows are append-only, they are never updated or deleted.
type OrderStatusEntry struct {
	ID        uint      `gorm:"primaryKey"     json:"id"`
	OrderID   uint      `gorm:"index;not null" json:"order_id"`
	Status    string    `gorm:"not null"       json:"status"`
	Timestamp time.Time `gorm:"not null"       json:"timestamp"`
	Note      string    `json:"note"`
}

type WishlistItem struct {
	ID        uint `gorm:"primaryKey"                                      json:"id"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_wishlist_user_product"  json:"user_id"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_wishlist_user_product"  json:"product_id"`
}
