package adminstore

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/bavien2005/AntaShop-Website/models"
)

type failingStorage struct{}

func (failingStorage) Read(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, errors.New("storage down")
}
func (failingStorage) Write(ctx context.Context, key string, doc []byte) error {
	return errors.New("storage down")
}
func (failingStorage) Delete(ctx context.Context, key string) error {
	return errors.New("storage down")
}

type failingRemote struct{}

func (failingRemote) GetProducts(ctx context.Context, params url.Values) ([]json.RawMessage, error) {
	return nil, errors.New("remote down")
}
func (failingRemote) GetProduct(ctx context.Context, id string) (json.RawMessage, error) {
	return nil, errors.New("remote down")
}
func (failingRemote) CreateProduct(ctx context.Context, payload any) (json.RawMessage, error) {
	return nil, errors.New("remote down")
}
func (failingRemote) UpdateProduct(ctx context.Context, id string, payload any) (json.RawMessage, error) {
	return nil, errors.New("remote down")
}
func (failingRemote) DeleteProduct(ctx context.Context, id string) error {
	return errors.New("remote down")
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(context.Background(), NewMemoryStorage(), nil)
}

func TestNewStoreSeedsDefaultsWhenStorageFails(t *testing.T) {
	store := NewStore(context.Background(), failingStorage{}, nil)

	products := store.GetProducts(context.Background(), models.ProductFilters{})
	if len(products) == 0 {
		t.Fatal("no seed products despite failing storage")
	}
	settings := store.GetSettings(context.Background())
	if settings.StoreName == "" {
		t.Error("settings not seeded")
	}
}

func TestGetProductsFallsBackWhenRemoteFails(t *testing.T) {
	store := NewStore(context.Background(), NewMemoryStorage(), failingRemote{})

	products := store.GetProducts(context.Background(), models.ProductFilters{})
	if len(products) == 0 {
		t.Fatal("remote failure must fall back to the local document")
	}
}

func TestCreateProductVariantRollups(t *testing.T) {
	store := newTestStore(t)

	price := 2990000.0
	product, err := store.CreateProduct(context.Background(), models.AdminProductInput{
		Name:  "Giày test",
		Price: &price,
		Variants: []models.AdminVariant{
			{Size: "42", Price: 2990000, Quantity: 6},
			{Size: "43", Price: 2790000, Quantity: 4},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if product.Quantity != 10 {
		t.Errorf("Quantity = %d, want the variant sum 10", product.Quantity)
	}
	if product.Price != 2790000 {
		t.Errorf("Price = %v, want the cheapest variant 2790000", product.Price)
	}
	if product.Status != "low-stock" {
		t.Errorf("Status = %q, want low-stock below the admin threshold", product.Status)
	}
	for _, v := range product.Variants {
		if v.ID == "" || v.SKU == "" {
			t.Errorf("variant missing generated identity: %+v", v)
		}
	}
}

func TestCreateProductIDsAreMaxPlusOne(t *testing.T) {
	store := newTestStore(t)

	first, err := store.CreateProduct(context.Background(), models.AdminProductInput{Name: "A"})
	if err != nil {
		t.Fatal(err)
	}
	if err := store.DeleteProduct(context.Background(), first.ID); err != nil {
		t.Fatal(err)
	}
	second, err := store.CreateProduct(context.Background(), models.AdminProductInput{Name: "B"})
	if err != nil {
		t.Fatal(err)
	}
	// IDs are max+1 over the live set, so a freed id is reused.
	if second.ID != first.ID {
		t.Errorf("second ID = %d, want %d", second.ID, first.ID)
	}
	if _, err := store.GetProduct(context.Background(), first.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted product still present, err = %v", err)
	}
}

func TestUpdateOrderStatusRewritesLineDisplay(t *testing.T) {
	store := newTestStore(t)
	order := store.CreateOrder(context.Background(), models.CreateOrderInput{
		Customer: "Nguyễn Thị B",
		Total:    500000,
		Items:    []models.OrderLine{{ID: 1, Name: "Áo", Price: 500000, Quantity: 1}},
	})

	updated, err := store.UpdateOrderStatus(context.Background(), order.ID, models.OrderStatusCancelled)
	if err != nil {
		t.Fatal(err)
	}
	if got := updated.Products[0].DueDate; got != "Đã hủy" {
		t.Errorf("DueDate = %q, want Đã hủy", got)
	}

	updated, err = store.UpdateOrderStatus(context.Background(), order.ID, models.OrderStatusCompleted)
	if err != nil {
		t.Fatal(err)
	}
	if got := updated.Products[0].ShippingService; got != "Đã giao" {
		t.Errorf("ShippingService = %q, want Đã giao", got)
	}
}

func TestCreateOrderAddsNotification(t *testing.T) {
	store := newTestStore(t)
	before := len(store.GetNotifications(context.Background(), false))

	store.CreateOrder(context.Background(), models.CreateOrderInput{Total: 100000})

	after := store.GetNotifications(context.Background(), false)
	if len(after) != before+1 {
		t.Fatalf("notifications = %d, want %d", len(after), before+1)
	}
	if after[0].Type != "order" {
		t.Errorf("newest notification type = %q, want order", after[0].Type)
	}
}

func TestNotificationSettingsSuppressOrderNotifications(t *testing.T) {
	store := newTestStore(t)
	store.UpdateSettings(context.Background(), models.UpdateSettingsInput{
		Notifications: &models.NotificationSettings{NewOrders: false, Messages: true},
	})
	before := len(store.GetNotifications(context.Background(), false))

	store.CreateOrder(context.Background(), models.CreateOrderInput{Total: 100000})

	if got := len(store.GetNotifications(context.Background(), false)); got != before {
		t.Errorf("notifications = %d, want unchanged %d", got, before)
	}
}

func TestMonthlyRevenueAlwaysHasTwelveSlots(t *testing.T) {
	store := newTestStore(t)

	series := store.MonthlyRevenue(context.Background(), 1999)
	if len(series) != 12 {
		t.Fatalf("series length = %d, want 12", len(series))
	}
	for i, slot := range series {
		if slot.MonthNumber != i+1 {
			t.Errorf("slot %d month number = %d", i, slot.MonthNumber)
		}
		if slot.Revenue != 0 {
			t.Errorf("slot %d revenue = %v, want 0 for an empty year", i, slot.Revenue)
		}
	}
}

func TestMonthlyRevenueSkipsCancelledOrders(t *testing.T) {
	store := newTestStore(t)
	order := store.CreateOrder(context.Background(), models.CreateOrderInput{Total: 1000000})
	year := orderYear(t, order.Date)

	withOrder := store.MonthlyRevenue(context.Background(), year)
	total := 0.0
	for _, slot := range withOrder {
		total += slot.Revenue
	}
	if total == 0 {
		t.Fatal("new order not reflected in monthly revenue")
	}

	if _, err := store.UpdateOrderStatus(context.Background(), order.ID, models.OrderStatusCancelled); err != nil {
		t.Fatal(err)
	}
	cancelled := store.MonthlyRevenue(context.Background(), year)
	cancelledTotal := 0.0
	for _, slot := range cancelled {
		cancelledTotal += slot.Revenue
	}
	if cancelledTotal != total-1000000 {
		t.Errorf("cancelled order still counted: %v -> %v", total, cancelledTotal)
	}
}

func TestPaymentResultIsOneShot(t *testing.T) {
	store := newTestStore(t)

	if err := store.SavePaymentResult(context.Background(), map[string]any{"orderId": "ANT1", "resultCode": "0"}); err != nil {
		t.Fatal(err)
	}

	result, found, err := store.TakePaymentResult(context.Background())
	if err != nil || !found {
		t.Fatalf("first take: found=%v err=%v", found, err)
	}
	if result["orderId"] != "ANT1" {
		t.Errorf("orderId = %v, want ANT1", result["orderId"])
	}

	if _, found, _ := store.TakePaymentResult(context.Background()); found {
		t.Error("second take found a result; it must be consumed by the first")
	}
}

func orderYear(t *testing.T, date string) int {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("bad order date %q: %v", date, err)
	}
	return parsed.Year()
}
