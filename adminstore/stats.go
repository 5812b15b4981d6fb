package adminstore

import (
	"context"
	"time"

	"github.com/bavien2005/AntaShop-Website/catalog"
	"github.com/bavien2005/AntaShop-Website/models"
)

// DashboardStats aggregates the headline numbers for the admin
// dashboard. Low stock uses the looser <20 admin threshold, not the
// storefront badge threshold.
func (s *Store) DashboardStats(ctx context.Context) models.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.DashboardStats{
		TotalProducts: len(s.products),
		TotalOrders:   len(s.orders),
	}

	customers := make(map[string]struct{})
	for _, o := range s.orders {
		stats.TotalRevenue += o.Total
		customers[o.Customer] = struct{}{}
		switch o.Status {
		case models.OrderStatusNeedsShipping:
			stats.NewOrders++
		case models.OrderStatusCompleted:
			stats.CompletedOrders++
		}
	}
	stats.TotalCustomers = len(customers)

	for _, m := range s.messages {
		if !m.Read {
			stats.UnreadMessages++
		}
	}
	for _, n := range s.notifications {
		if !n.Read {
			stats.UnreadNotifications++
		}
	}
	for _, p := range s.products {
		if p.Quantity < 20 {
			stats.LowStockProducts++
		}
	}
	return stats
}

// MonthlyRevenue returns a full 12-slot series for the year, zero-filled
// so the chart never has gaps.
func (s *Store) MonthlyRevenue(ctx context.Context, year int) []models.MonthlyRevenueData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	series := make([]models.MonthlyRevenueData, 12)
	for m := 1; m <= 12; m++ {
		series[m-1] = models.MonthlyRevenueData{
			Month:       time.Month(m).String()[:3],
			MonthNumber: m,
		}
	}
	for _, o := range s.orders {
		if o.Status == models.OrderStatusCancelled {
			continue
		}
		date, err := time.Parse("2006-01-02", o.Date)
		if err != nil || date.Year() != year {
			continue
		}
		series[int(date.Month())-1].Revenue += o.Total
	}
	return series
}

// DailyRevenue returns a zero-filled per-day series for one month.
func (s *Store) DailyRevenue(ctx context.Context, year int, month time.Month) []models.DailyRevenueData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	days := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	series := make([]models.DailyRevenueData, days)
	for d := 1; d <= days; d++ {
		series[d-1] = models.DailyRevenueData{Day: d}
	}
	for _, o := range s.orders {
		if o.Status == models.OrderStatusCancelled {
			continue
		}
		date, err := time.Parse("2006-01-02", o.Date)
		if err != nil || date.Year() != year || date.Month() != month {
			continue
		}
		series[date.Day()-1].Revenue += o.Total
	}
	return series
}

// CategoryRevenue splits order-line revenue by product category. Lines
// without a category fall back to the stored product's category, then
// to an explicit bucket.
func (s *Store) CategoryRevenue(ctx context.Context) []models.CategoryRevenueData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categoryByName := make(map[string]string, len(s.products))
	for _, p := range s.products {
		categoryByName[p.Name] = p.Category
	}

	totals := make(map[string]float64)
	var order []string
	for _, o := range s.orders {
		if o.Status == models.OrderStatusCancelled {
			continue
		}
		for _, line := range o.Products {
			category := line.Category
			if category == "" {
				category = categoryByName[line.Name]
			}
			if category == "" {
				category = "Khác"
			}
			if _, seen := totals[category]; !seen {
				order = append(order, category)
			}
			totals[category] += line.Price * float64(line.Quantity)
		}
	}

	series := make([]models.CategoryRevenueData, 0, len(order))
	for _, category := range order {
		series = append(series, models.CategoryRevenueData{
			Category: category,
			Revenue:  totals[category],
		})
	}
	return series
}

// LowStockProducts lists products at or below the storefront low-stock
// badge threshold, for the dashboard warning panel.
func (s *Store) LowStockProducts(ctx context.Context) []models.AdminProduct {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var low []models.AdminProduct
	for _, p := range s.products {
		if catalog.StockStatus(p.Quantity) != catalog.StockStatusActive {
			low = append(low, p)
		}
	}
	return low
}
