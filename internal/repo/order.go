package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/shoply/backend/internal/models"
)

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Create(order).Error
}

func (r *GormRepo) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).
		Preload("Items").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListOrdersByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Preload("Items").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *GormRepo) ListAllOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Preload("Items").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// UpdateOrderStatus changes the lifecycle status (and optionally the
// tracking number) and appends exactly one history entry, atomically.
// Totals are never touched here.
func (r *GormRepo) UpdateOrderStatus(ctx context.Context, orderID uint, status string, trackingNumber *string, entry models.OrderStatusEntry) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{"status": status}
		if trackingNumber != nil {
			updates["tracking_number"] = *trackingNumber
		}
		if err := tx.Model(&models.Order{}).Where("id = ?", orderID).Updates(updates).Error; err != nil {
			return err
		}
		entry.OrderID = orderID
		return tx.Create(&entry).Error
	})
}

// RecordPaymentSuccess flips payment fields, moves the order to processing
// and appends the corresponding history entry in one transaction.
func (r *GormRepo) RecordPaymentSuccess(ctx context.Context, orderID uint, paymentStatus string, details models.PaymentDetails, entry models.OrderStatusEntry) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"status":                        models.OrderStatusProcessing,
			"payment_status":                paymentStatus,
			"payment_detail_method":         details.Method,
			"payment_detail_transaction_id": details.TransactionID,
			"payment_detail_paid_at":        details.PaidAt,
		}
		if err := tx.Model(&models.Order{}).Where("id = ?", orderID).Updates(updates).Error; err != nil {
			return err
		}
		entry.OrderID = orderID
		return tx.Create(&entry).Error
	})
}

// RecordPaymentFailure only marks the payment as failed; lifecycle status
// and history stay untouched.
func (r *GormRepo) RecordPaymentFailure(ctx context.Context, orderID uint) error {
	return r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("payment_status", models.PaymentStatusFailed).Error
}

func (r *GormRepo) CountOrders(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&models.Order{}).Count(&total).Error
	return total, err
}

func (r *GormRepo) TotalRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.DB.WithContext(ctx).Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Where("status <> ?", models.OrderStatusCancelled).
		Scan(&revenue).Error
	return revenue, err
}

func (r *GormRepo) RecentOrders(ctx context.Context, limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}
