package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"shopzone/internal/model"
	"shopzone/internal/store"

	"github.com/rs/zerolog"
)

const (
	lowStockThreshold  = 10
	recentOrderCount   = 5
	topProductCount    = 5
	revenueMonthWindow = 6
)

// adminService implements AdminService.
type adminService struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(st *store.Store, logger zerolog.Logger) AdminService {
	return &adminService{
		store:  st,
		logger: logger.With().Str("service", "admin").Logger(),
	}
}

// DashboardStats aggregates storefront activity.
func (s *adminService) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	products, err := s.store.Products.All(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load products for stats")
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	orders, err := s.store.Orders.All(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load orders for stats")
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	userCount, err := s.store.Users.Count(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to count users for stats")
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	stats := &model.DashboardStats{
		TotalProducts:  int64(len(products)),
		TotalOrders:    int64(len(orders)),
		TotalUsers:     userCount,
		RecentOrders:   recentOrders(orders),
		TopProducts:    topProducts(products, orders),
		MonthlyRevenue: monthlyRevenue(orders, time.Now().UTC()),
	}

	for _, order := range orders {
		stats.TotalRevenue += order.TotalAmount
	}
	for _, product := range products {
		if product.StockQuantity < lowStockThreshold {
			stats.LowStockProducts++
		}
	}

	return stats, nil
}

// recentOrders returns the newest orders first, capped at
// recentOrderCount.
func recentOrders(orders []model.Order) []model.Order {
	sorted := make([]model.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if len(sorted) > recentOrderCount {
		sorted = sorted[:recentOrderCount]
	}
	return sorted
}

// topProducts ranks products by units sold across all order items.
// Products that have since been deleted are skipped.
func topProducts(products []model.Product, orders []model.Order) []model.ProductSales {
	sales := map[string]int{}
	for _, order := range orders {
		for _, item := range order.OrderItems {
			sales[item.ProductID] += item.Quantity
		}
	}

	ranked := []model.ProductSales{}
	for _, product := range products {
		if units, ok := sales[product.ID]; ok {
			ranked = append(ranked, model.ProductSales{Product: product, Sales: units})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Sales > ranked[j].Sales
	})

	if len(ranked) > topProductCount {
		ranked = ranked[:topProductCount]
	}
	return ranked
}

// monthlyRevenue sums order totals per calendar month over the
// trailing window, oldest month first.
func monthlyRevenue(orders []model.Order, ref time.Time) []model.MonthlyAmount {
	out := make([]model.MonthlyAmount, 0, revenueMonthWindow)

	for i := revenueMonthWindow - 1; i >= 0; i-- {
		month := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		next := month.AddDate(0, 1, 0)

		var revenue int64
		for _, order := range orders {
			created := order.CreatedAt
			if !created.Before(month) && created.Before(next) {
				revenue += order.TotalAmount
			}
		}

		out = append(out, model.MonthlyAmount{
			Month:   month.Format("Jan 2006"),
			Revenue: revenue,
		})
	}
	return out
}
