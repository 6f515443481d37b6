package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shoply/backend/internal/models"
	"github.com/shoply/backend/internal/repo"
)

type CartService struct {
	Repo *repo.GormRepo
}

type CartLine struct {
	ID        uint           `json:"id"`
	Product   models.Product `json:"product"`
	Quantity  uint           `json:"quantity"`
	LineTotal float64        `json:"line_total"`
}

// CartView carries the line items together with the total recomputed from
// current product prices on every read.
type CartView struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}

func (s *CartService) GetCart(ctx context.Context, userID uint) (*CartView, error) {
	items, err := s.Repo.GetCartItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &CartView{Items: make([]CartLine, 0, len(items))}
	if len(items) == 0 {
		return view, nil
	}

	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.Repo.ProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}
		lineTotal := product.Price * float64(item.Quantity)
		view.Items = append(view.Items, CartLine{
			ID:        item.ID,
			Product:   product,
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
		})
		view.Total += lineTotal
	}
	return view, nil
}

func (s *CartService) AddToCart(ctx context.Context, userID, productID, quantity uint) (*CartView, error) {
	if productID == 0 {
		return nil, fmt.Errorf("%w: product_id required", ErrValidation)
	}
	if quantity == 0 {
		quantity = 1
	}

	if _, err := s.Repo.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return nil, err
	}

	item := models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
	if err := s.Repo.AddToCart(ctx, &item); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

func (s *CartService) RemoveFromCart(ctx context.Context, userID, productID uint) (*CartView, error) {
	if err := s.Repo.RemoveFromCart(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

func (s *CartService) ClearCart(ctx context.Context, userID uint) (*CartView, error) {
	if err := s.Repo.ClearCart(ctx, userID); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}
