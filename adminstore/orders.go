package adminstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bavien2005/AntaShop-Website/models"
)

// GetOrders lists orders newest first, optionally narrowed by the
// search text (order number or customer) and a status.
func (s *Store) GetOrders(ctx context.Context, filters models.OrderFilters) []models.AdminOrder {
	s.mu.RLock()
	list := make([]models.AdminOrder, len(s.orders))
	copy(list, s.orders)
	s.mu.RUnlock()

	if q := strings.ToLower(strings.TrimSpace(filters.Search)); q != "" {
		filtered := list[:0]
		for _, o := range list {
			if strings.Contains(strings.ToLower(o.OrderNumber), q) ||
				strings.Contains(strings.ToLower(o.Customer), q) {
				filtered = append(filtered, o)
			}
		}
		list = filtered
	}
	if filters.Status != "" && filters.Status != "all" {
		filtered := list[:0]
		for _, o := range list {
			if o.Status == filters.Status {
				filtered = append(filtered, o)
			}
		}
		list = filtered
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date > list[j].Date
	})
	return list
}

func (s *Store) GetOrder(ctx context.Context, id int64) (models.AdminOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.AdminOrder{}, fmt.Errorf("order %d: %w", id, ErrNotFound)
}

// CreateOrder records a new order in needs-shipping state and raises an
// admin notification for it.
func (s *Store) CreateOrder(ctx context.Context, input models.CreateOrderInput) models.AdminOrder {
	s.mu.Lock()

	newID := int64(1)
	for _, o := range s.orders {
		if o.ID >= newID {
			newID = o.ID + 1
		}
	}

	order := models.AdminOrder{
		ID:          newID,
		Customer:    input.Customer,
		OrderNumber: input.OrderNumber,
		Date:        time.Now().Format("2006-01-02"),
		Total:       input.Total,
		Status:      models.OrderStatusNeedsShipping,
		Products:    input.Items,
	}
	if order.Customer == "" {
		order.Customer = "Khách hàng"
	}
	if order.OrderNumber == "" {
		order.OrderNumber = fmt.Sprintf("ANT%d", time.Now().UnixMilli()%100000000)
	}
	if order.Products == nil {
		order.Products = []models.OrderLine{}
	}

	// Newest first in the stored document.
	s.orders = append([]models.AdminOrder{order}, s.orders...)
	s.persist(ctx, KeyOrders, s.orders)
	s.mu.Unlock()

	s.AddNotification(ctx, "order", "📦", "Đơn hàng mới",
		fmt.Sprintf("Đơn hàng %s cần xử lý", order.OrderNumber))
	return order
}

// UpdateOrderStatus transitions an order and refreshes the display
// fields on its lines to match.
func (s *Store) UpdateOrderStatus(ctx context.Context, id int64, status string) (models.AdminOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		s.orders[i].Status = status
		for j := range s.orders[i].Products {
			line := &s.orders[i].Products[j]
			switch status {
			case models.OrderStatusCancelled:
				line.DueDate = "Đã hủy"
				line.ShippingService = "Đã hủy"
			case models.OrderStatusCompleted:
				line.DueDate = "Đã hoàn thành"
				line.ShippingService = "Đã giao"
			case models.OrderStatusSent:
				line.DueDate = "Đang giao hàng"
				if line.ShippingService == "" {
					line.ShippingService = "Đang giao"
				}
			}
		}
		s.persist(ctx, KeyOrders, s.orders)
		return s.orders[i], nil
	}
	return models.AdminOrder{}, fmt.Errorf("order %d: %w", id, ErrNotFound)
}

// ArrangeShipping attaches shipping details and moves the order to sent.
func (s *Store) ArrangeShipping(ctx context.Context, id int64, info models.ShippingInfo) (models.AdminOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		s.orders[i].Status = models.OrderStatusSent
		s.orders[i].ShippingInfo = &info
		service := info.Service
		if service == "" {
			service = "J&T Express"
		}
		for j := range s.orders[i].Products {
			s.orders[i].Products[j].DueDate = "Đang giao hàng"
			s.orders[i].Products[j].ShippingService = service
		}
		s.persist(ctx, KeyOrders, s.orders)
		return s.orders[i], nil
	}
	return models.AdminOrder{}, fmt.Errorf("order %d: %w", id, ErrNotFound)
}
