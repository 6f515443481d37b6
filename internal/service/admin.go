package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shoply/backend/internal/models"
	"github.com/shoply/backend/internal/repo"
)

const recentOrdersLimit = 5

type AdminService struct {
	Repo *repo.GormRepo
}

type DashboardStats struct {
	TotalProducts int64          `json:"total_products"`
	TotalOrders   int64          `json:"total_orders"`
	TotalUsers    int64          `json:"total_users"`
	TotalRevenue  float64        `json:"total_revenue"`
	RecentOrders  []models.Order `json:"recent_orders"`
}

// Stats aggregates the dashboard counters. Revenue excludes cancelled
// orders.
func (s *AdminService) Stats(ctx context.Context) (*DashboardStats, error) {
	products, err := s.Repo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.Repo.CountOrders(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.Repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.Repo.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.Repo.RecentOrders(ctx, recentOrdersLimit)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalProducts: products,
		TotalOrders:   orders,
		TotalUsers:    users,
		TotalRevenue:  revenue,
		RecentOrders:  recent,
	}, nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.ListUsers(ctx)
}

func (s *AdminService) SetAdmin(ctx context.Context, userID uint, isAdmin bool) (*models.User, error) {
	if _, err := s.Repo.GetUser(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}

	role := "user"
	if isAdmin {
		role = "admin"
	}
	return s.Repo.SetUserRole(ctx, userID, role)
}
