package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shoply/backend/internal/events"
	"github.com/shoply/backend/internal/logging"
	"github.com/shoply/backend/internal/models"
	"github.com/shoply/backend/internal/repo"
)

// ShippingFee is flat per order, independent of weight or destination.
const ShippingFee = 5.0

type OrderService struct {
	Repo     *repo.GormRepo
	Payments *PaymentSimulator
	Events   *events.Producer
	Now      func() time.Time
}

func (s *OrderService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

type CheckoutRequest struct {
	ShippingAddress string  `json:"shipping_address"`
	PaymentMethod   string  `json:"payment_method"`
	CouponCode      string  `json:"coupon_code"`
	Discount        float64 `json:"discount"`
}

// PriceItems computes the order subtotal and the final total for a given
// discount. Totals follow total = subtotal + shipping - discount and are
// never revisited after order creation.
func PriceItems(items []models.OrderItem, discount float64) (subtotal, total float64) {
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	return subtotal, subtotal + ShippingFee - discount
}

// Checkout snapshots the user's cart into an immutable order: unit prices
// are captured now, so later product price changes cannot affect it. The
// cart is cleared on success.
func (s *OrderService) Checkout(ctx context.Context, userID uint, req CheckoutRequest) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.checkout", "user_id", userID)

	cartItems, err := s.Repo.GetCartItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
	}

	ids := make([]uint, 0, len(cartItems))
	for _, item := range cartItems {
		ids = append(ids, item.ProductID)
	}
	products, err := s.Repo.ProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(cartItems))
	for _, item := range cartItems {
		product, ok := products[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: product %d no longer exists", ErrValidation, item.ProductID)
		}
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     product.Price,
		})
	}

	subtotal, total := PriceItems(items, req.Discount)

	var couponCode *string
	if req.CouponCode != "" {
		couponCode = &req.CouponCode
	}

	now := s.now()
	order := &models.Order{
		UserID:          userID,
		Items:           items,
		Subtotal:        subtotal,
		Discount:        req.Discount,
		CouponCode:      couponCode,
		ShippingFee:     ShippingFee,
		Total:           total,
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusPending,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		StatusHistory: []models.OrderStatusEntry{
			{Status: models.OrderStatusPending, Timestamp: now, Note: "Order placed"},
		},
		CreatedAt: now,
	}

	if err := s.Repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	if err := s.Repo.ClearCart(ctx, userID); err != nil {
		return nil, err
	}

	s.publish(ctx, map[string]any{"type": "order_created", "orderID": order.ID, "userID": userID, "total": order.Total})
	l.Info("order_created", "order_id", order.ID, "total", order.Total)
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.Repo.ListOrdersByUser(ctx, userID)
}

// GetOrderForUser enforces ownership: reading somebody else's order is
// forbidden rather than not found.
func (s *OrderService) GetOrderForUser(ctx context.Context, orderID, userID uint) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order not found", ErrNotFound)
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("%w: order belongs to a different user", ErrForbidden)
	}
	return order, nil
}

type TrackingInfo struct {
	OrderID        uint                      `json:"order_id"`
	Status         string                    `json:"status"`
	TrackingNumber *string                   `json:"tracking_number,omitempty"`
	StatusHistory  []models.OrderStatusEntry `json:"status_history"`
}

func (s *OrderService) Track(ctx context.Context, orderID, userID uint) (*TrackingInfo, error) {
	order, err := s.GetOrderForUser(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	return &TrackingInfo{
		OrderID:        order.ID,
		Status:         order.Status,
		TrackingNumber: order.TrackingNumber,
		StatusHistory:  order.StatusHistory,
	}, nil
}

var statusRank = map[string]int{
	models.OrderStatusPending:    0,
	models.OrderStatusProcessing: 1,
	models.OrderStatusShipped:    2,
	models.OrderStatusDelivered:  3,
}

func isTerminalStatus(status string) bool {
	return status == models.OrderStatusDelivered || status == models.OrderStatusCancelled
}

// CanTransition enforces the forward-only lifecycle: each status may only
// advance to its successor, and cancellation is the single out-of-order
// edge, reachable from any non-terminal state.
func CanTransition(from, to string) bool {
	if isTerminalStatus(from) {
		return false
	}
	if to == models.OrderStatusCancelled {
		return true
	}
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank == fromRank+1
}

// UpdateStatus moves the order through its lifecycle, appending exactly
// one history entry per applied transition. Totals are never touched.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, status, note string, trackingNumber *string) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.update_status", "order_id", orderID, "status", status)

	order, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order not found", ErrNotFound)
		}
		return nil, err
	}

	if !CanTransition(order.Status, status) {
		return nil, fmt.Errorf("%w: cannot transition from %s to %s", ErrValidation, order.Status, status)
	}

	if note == "" {
		note = fmt.Sprintf("Order status updated to %s", status)
	}
	entry := models.OrderStatusEntry{
		Status:    status,
		Timestamp: s.now(),
		Note:      note,
	}
	if err := s.Repo.UpdateOrderStatus(ctx, orderID, status, trackingNumber, entry); err != nil {
		return nil, err
	}

	s.publish(ctx, map[string]any{"type": "order_status_updated", "orderID": orderID, "status": status})
	l.Info("order_status_updated")
	return s.Repo.GetOrder(ctx, orderID)
}

// ProcessPayment runs the simulator against an order the caller owns. A
// successful payment marks the order paid (pending for cash on delivery)
// and moves it to processing with one history entry; a failed payment only
// flips the payment status and is reported back, not raised as an error.
func (s *OrderService) ProcessPayment(ctx context.Context, userID, orderID uint, method string, input PaymentInput) (*models.Order, PaymentResult, error) {
	l := logging.FromContext(ctx).With("svc", "order.process_payment", "order_id", orderID, "method", method)

	order, err := s.GetOrderForUser(ctx, orderID, userID)
	if err != nil {
		return nil, PaymentResult{}, err
	}

	result, err := s.Payments.Process(ctx, method, input)
	if err != nil {
		return nil, PaymentResult{}, err
	}

	if !result.Success {
		if err := s.Repo.RecordPaymentFailure(ctx, order.ID); err != nil {
			return nil, PaymentResult{}, err
		}
		l.Warn("payment_failed", "reason", result.Reason)
		return nil, result, nil
	}

	paymentStatus := models.PaymentStatusPaid
	note := "Payment received"
	if method == MethodCashOnDelivery {
		paymentStatus = models.PaymentStatusPending
		note = "Payment method confirmed"
	}

	now := s.now()
	details := models.PaymentDetails{
		Method:        method,
		TransactionID: result.TransactionID,
		PaidAt:        &now,
	}
	entry := models.OrderStatusEntry{
		Status:    models.OrderStatusProcessing,
		Timestamp: now,
		Note:      note,
	}
	if err := s.Repo.RecordPaymentSuccess(ctx, order.ID, paymentStatus, details, entry); err != nil {
		return nil, PaymentResult{}, err
	}

	updated, err := s.Repo.GetOrder(ctx, order.ID)
	if err != nil {
		return nil, PaymentResult{}, err
	}

	s.publish(ctx, map[string]any{"type": "order_paid", "orderID": order.ID, "method": method, "transactionID": result.TransactionID})
	l.Info("payment_processed", "transaction_id", result.TransactionID)
	return updated, result, nil
}

func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.Repo.ListAllOrders(ctx)
}

func (s *OrderService) publish(ctx context.Context, event map[string]any) {
	if err := s.Events.PublishEvent(ctx, "order_events", fmt.Sprint(event["orderID"]), event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "error", err)
	}
}
