package models

// AdminOrder is the order document shape kept by the admin store.
type AdminOrder struct {
	ID           int64         `json:"id"`
	Customer     string        `json:"customer"`
	OrderNumber  string        `json:"orderNumber"`
	Date         string        `json:"date"` // YYYY-MM-DD
	Total        float64       `json:"total"`
	Status       string        `json:"status"`
	Products     []OrderLine   `json:"products"`
	ShippingInfo *ShippingInfo `json:"shippingInfo,omitempty"`
}

type OrderLine struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Image           string  `json:"image"`
	Price           float64 `json:"price"`
	Quantity        int     `json:"quantity"`
	Category        string  `json:"category,omitempty"`
	DueDate         string  `json:"dueDate,omitempty"`
	ShippingService string  `json:"shippingService,omitempty"`
}

type ShippingInfo struct {
	Service        string `json:"service"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
	Note           string `json:"note,omitempty"`
}

// Order statuses used by the admin dashboard.
const (
	OrderStatusNeedsShipping = "needs-shipping"
	OrderStatusSent          = "sent"
	OrderStatusCompleted     = "completed"
	OrderStatusCancelled     = "cancelled"
)

type CreateOrderInput struct {
	Customer    string      `json:"customer"`
	OrderNumber string      `json:"orderNumber"`
	Total       float64     `json:"total"`
	Items       []OrderLine `json:"items"`
}

type OrderFilters struct {
	Search string `form:"search"`
	Status string `form:"status"`
}

// ═══════════════════════════════════════════════════════════
// Dashboard / analytics shapes
// ═══════════════════════════════════════════════════════════

type DashboardStats struct {
	TotalProducts       int     `json:"totalProducts"`
	TotalOrders         int     `json:"totalOrders"`
	NewOrders           int     `json:"newOrders"`
	CompletedOrders     int     `json:"completedOrders"`
	TotalRevenue        float64 `json:"totalRevenue"`
	TotalCustomers      int     `json:"totalCustomers"`
	UnreadMessages      int     `json:"unreadMessages"`
	UnreadNotifications int     `json:"unreadNotifications"`
	LowStockProducts    int     `json:"lowStockProducts"`
}

type MonthlyRevenueData struct {
	Month       string  `json:"month"`
	MonthNumber int     `json:"month_number"`
	Revenue     float64 `json:"revenue"`
}

type DailyRevenueData struct {
	Day     int     `json:"day"`
	Revenue float64 `json:"revenue"`
}

type CategoryRevenueData struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
}
