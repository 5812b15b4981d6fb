package adminstore

import (
	"time"

	"github.com/bavien2005/AntaShop-Website/models"
)

// Seed data used whenever a collection has never been persisted or its
// document cannot be read. Product copy is the Vietnamese ANTA catalog
// the storefront ships with.

func defaultProducts() []models.AdminProduct {
	return []models.AdminProduct{
		{
			ID:          1,
			Name:        "Giày ANTA KT7 - Đen",
			Images:      []string{"https://images.pexels.com/photos/1598505/pexels-photo-1598505.jpeg?auto=compress&cs=tinysrgb&w=400"},
			Thumbnail:   "https://images.pexels.com/photos/1598505/pexels-photo-1598505.jpeg?auto=compress&cs=tinysrgb&w=400",
			Price:       2990000,
			Quantity:    45,
			Category:    "Giày Bóng Rổ",
			Rating:      5,
			Status:      "active",
			Sales:       128,
			Description: "Giày bóng rổ chuyên nghiệp ANTA KT7",
			Variants: []models.AdminVariant{
				{ID: "1-1", SKU: "KT7-BLK-42", Size: "42", Color: "Đen", Price: 2990000, Quantity: 10},
				{ID: "1-2", SKU: "KT7-BLK-43", Size: "43", Color: "Đen", Price: 2990000, Quantity: 35},
			},
			CreatedAt: "2024-01-15T00:00:00Z",
		},
		{
			ID:          2,
			Name:        "Áo thun ANTA Running - Trắng",
			Images:      []string{"https://images.pexels.com/photos/8532616/pexels-photo-8532616.jpeg?auto=compress&cs=tinysrgb&w=400"},
			Thumbnail:   "https://images.pexels.com/photos/8532616/pexels-photo-8532616.jpeg?auto=compress&cs=tinysrgb&w=400",
			Price:       599000,
			Quantity:    120,
			Category:    "Áo thun",
			Rating:      5,
			Status:      "active",
			Sales:       89,
			Description: "Áo thun chạy bộ thoáng mát",
			Variants: []models.AdminVariant{
				{ID: "2-1", SKU: "TSH-WHT-M", Size: "M", Color: "Trắng", Price: 599000, Quantity: 60},
				{ID: "2-2", SKU: "TSH-WHT-L", Size: "L", Color: "Trắng", Price: 599000, Quantity: 60},
			},
			CreatedAt: "2024-01-20T00:00:00Z",
		},
		{
			ID:          3,
			Name:        "Giày ANTA C202 GT - Xanh",
			Images:      []string{"https://images.pexels.com/photos/2529148/pexels-photo-2529148.jpeg?auto=compress&cs=tinysrgb&w=400"},
			Thumbnail:   "https://images.pexels.com/photos/2529148/pexels-photo-2529148.jpeg?auto=compress&cs=tinysrgb&w=400",
			Price:       1790000,
			Quantity:    28,
			Category:    "Giày Chạy Bộ",
			Rating:      4,
			Status:      "active",
			Sales:       56,
			Description: "Giày chạy bộ công nghệ GT",
			Variants: []models.AdminVariant{
				{ID: "3-1", SKU: "C202-GRN-40", Size: "40", Color: "Xanh", Price: 1790000, Quantity: 28},
			},
			CreatedAt: "2024-02-01T00:00:00Z",
		},
		{
			ID:          4,
			Name:        "Quần short ANTA Training",
			Images:      []string{"https://images.pexels.com/photos/7432926/pexels-photo-7432926.jpeg?auto=compress&cs=tinysrgb&w=400"},
			Thumbnail:   "https://images.pexels.com/photos/7432926/pexels-photo-7432926.jpeg?auto=compress&cs=tinysrgb&w=400",
			Price:       450000,
			Quantity:    85,
			Category:    "Quần short",
			Rating:      5,
			Status:      "active",
			Sales:       73,
			Description: "Quần short tập luyện",
			Variants: []models.AdminVariant{
				{ID: "4-1", SKU: "SHRT-M-1", Size: "M", Color: "Đen", Price: 450000, Quantity: 85},
			},
			CreatedAt: "2024-02-10T00:00:00Z",
		},
		{
			ID:          5,
			Name:        "Balo ANTA Sport - Đen",
			Images:      []string{"https://images.pexels.com/photos/2905238/pexels-photo-2905238.jpeg?auto=compress&cs=tinysrgb&w=400"},
			Thumbnail:   "https://images.pexels.com/photos/2905238/pexels-photo-2905238.jpeg?auto=compress&cs=tinysrgb&w=400",
			Price:       890000,
			Quantity:    12,
			Category:    "Phụ kiện",
			Rating:      4,
			Status:      "low-stock",
			Sales:       34,
			Description: "Balo thể thao đa năng",
			Variants: []models.AdminVariant{
				{ID: "5-1", SKU: "BALO-BLK", Color: "Đen", Price: 890000, Quantity: 12},
			},
			CreatedAt: "2024-02-15T00:00:00Z",
		},
	}
}

func defaultOrders() []models.AdminOrder {
	return []models.AdminOrder{
		{
			ID:          1,
			Customer:    "Nguyễn Văn A",
			OrderNumber: "2201223FJAOQ",
			Date:        "2024-12-25",
			Total:       1000000,
			Status:      models.OrderStatusNeedsShipping,
			Products: []models.OrderLine{
				{
					ID:              1,
					Name:            "Giày ANTA KT7 - Đen",
					Image:           "https://images.pexels.com/photos/1598505/pexels-photo-1598505.jpeg?auto=compress&cs=tinysrgb&w=80",
					Price:           600000,
					Quantity:        1,
					DueDate:         "Trước 28/12/2024",
					ShippingService: "J&T",
				},
			},
		},
	}
}

func defaultMessages() []models.AdminMessage {
	return []models.AdminMessage{
		{
			ID:       1,
			Customer: "Nguyễn Văn A",
			Avatar:   "👤",
			Subject:  "Hỏi về sản phẩm",
			Message:  "Size 42 còn không?",
			Date:     time.Now().Format(time.RFC3339),
			Read:     false,
			Replies:  []models.MessageReply{},
		},
	}
}

func defaultNotifications() []models.AdminNotification {
	return []models.AdminNotification{
		{
			ID:      1,
			Type:    "order",
			Icon:    "📦",
			Title:   "Đơn hàng mới",
			Message: "Bạn có 1 đơn hàng mới cần xử lý",
			Date:    time.Now().Format(time.RFC3339),
			Read:    false,
		},
	}
}

func defaultSettings() models.AdminSettings {
	return models.AdminSettings{
		StoreName: "ANTA Store",
		Email:     "admin@anta.com.vn",
		Phone:     "1900 xxxx",
		Address:   "Hà Nội, Việt Nam",
		Notifications: models.NotificationSettings{
			NewOrders:    true,
			Messages:     true,
			WeeklyReport: false,
		},
	}
}
