package models

type AdminMessage struct {
	ID       int64          `json:"id"`
	Customer string         `json:"customer"`
	Avatar   string         `json:"avatar"`
	Subject  string         `json:"subject"`
	Message  string         `json:"message"`
	Date     string         `json:"date"` // RFC 3339
	Read     bool           `json:"read"`
	Replies  []MessageReply `json:"replies"`
}

type MessageReply struct {
	ID      int64  `json:"id"`
	Sender  string `json:"sender"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

type AdminNotification struct {
	ID      int64  `json:"id"`
	Type    string `json:"type"`
	Icon    string `json:"icon"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Date    string `json:"date"` // RFC 3339
	Read    bool   `json:"read"`
}

type AdminSettings struct {
	StoreName     string               `json:"storeName"`
	Email         string               `json:"email"`
	Phone         string               `json:"phone"`
	Address       string               `json:"address"`
	Notifications NotificationSettings `json:"notifications"`
}

type NotificationSettings struct {
	NewOrders    bool `json:"newOrders"`
	Messages     bool `json:"messages"`
	WeeklyReport bool `json:"weeklyReport"`
}

// UpdateSettingsInput carries a shallow-merge settings update. Nil
// pointers leave the stored value untouched.
type UpdateSettingsInput struct {
	StoreName     *string               `json:"storeName"`
	Email         *string               `json:"email"`
	Phone         *string               `json:"phone"`
	Address       *string               `json:"address"`
	Notifications *NotificationSettings `json:"notifications"`
}
