package services

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/PunitTak2005/restaurant-qr-menu/entity"
)

// seedOrder inserts an order with a forced creation time.
func seedOrder(t *testing.T, db *gorm.DB, f *fixture, createdAt time.Time, total int64, qty int) entity.Order {
	t.Helper()
	o := entity.Order{
		UserID:      f.user.ID,
		TableID:     f.table.ID,
		TableNumber: f.table.Number,
		TotalPrice:  total,
		Status:      entity.OrderPending,
		Items: []entity.OrderItem{
			{MenuItemID: f.espresso.ID, Qty: qty, UnitPrice: 100},
		},
	}
	o.CreatedAt = createdAt
	if err := db.Create(&o).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return o
}

func TestAnalyticsWindows(t *testing.T) {
	f := newFixture(t)

	// fixed clock: Wednesday 2026-01-14 15:00 local
	now := time.Date(2026, 1, 14, 15, 0, 0, 0, time.Local)
	svc := NewAnalyticsService(f.db)
	svc.Now = func() time.Time { return now }

	today := time.Date(2026, 1, 14, 10, 0, 0, 0, time.Local)
	thisWeek := time.Date(2026, 1, 12, 10, 0, 0, 0, time.Local)  // Monday, after Sunday the 11th
	thisMonth := time.Date(2026, 1, 2, 10, 0, 0, 0, time.Local)  // before this week
	lastMonth := time.Date(2025, 12, 20, 10, 0, 0, 0, time.Local)

	seedOrder(t, f.db, f, today, 200, 2)
	seedOrder(t, f.db, f, thisWeek, 300, 3)
	seedOrder(t, f.db, f, thisMonth, 100, 1)
	seedOrder(t, f.db, f, lastMonth, 500, 5)

	out, err := svc.Compute()
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if out.TodayOrders != 1 || out.WeekOrders != 2 || out.MonthOrders != 3 {
		t.Errorf("orders = %d/%d/%d, want 1/2/3", out.TodayOrders, out.WeekOrders, out.MonthOrders)
	}
	if out.TodayRevenue != 200 || out.WeekRevenue != 500 || out.MonthRevenue != 600 {
		t.Errorf("revenue = %d/%d/%d, want 200/500/600",
			out.TodayRevenue, out.WeekRevenue, out.MonthRevenue)
	}
}

func TestAnalyticsTopItemsAndTables(t *testing.T) {
	f := newFixture(t)

	now := time.Date(2026, 1, 14, 15, 0, 0, 0, time.Local)
	svc := NewAnalyticsService(f.db)
	svc.Now = func() time.Time { return now }

	inMonth := time.Date(2026, 1, 5, 10, 0, 0, 0, time.Local)
	outOfMonth := time.Date(2025, 12, 5, 10, 0, 0, 0, time.Local)

	// espresso ordered 2+3=5 times this month, cappuccino 1
	seedOrder(t, f.db, f, inMonth, 200, 2)
	seedOrder(t, f.db, f, inMonth, 300, 3)
	capp := entity.Order{
		UserID: f.user.ID, TableID: f.table.ID, TableNumber: f.table.Number,
		TotalPrice: 120, Status: entity.OrderPending,
		Items: []entity.OrderItem{{MenuItemID: f.capp.ID, Qty: 1, UnitPrice: 120}},
	}
	capp.CreatedAt = inMonth
	if err := f.db.Create(&capp).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	// last month's volume must not count
	seedOrder(t, f.db, f, outOfMonth, 900, 9)

	out, err := svc.Compute()
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if len(out.TopItems) != 2 {
		t.Fatalf("topItems = %d entries, want 2", len(out.TopItems))
	}
	if out.TopItems[0].MenuItemID != f.espresso.ID || out.TopItems[0].OrderCount != 5 {
		t.Errorf("top item = %+v, want espresso x5", out.TopItems[0])
	}
	if out.TopItems[0].Name != "Espresso" {
		t.Errorf("top item name = %q", out.TopItems[0].Name)
	}

	if len(out.TableUsage) != 1 {
		t.Fatalf("tableUsage = %d entries, want 1", len(out.TableUsage))
	}
	if out.TableUsage[0].TableNumber != f.table.Number || out.TableUsage[0].UsageCount != 3 {
		t.Errorf("table usage = %+v, want table %d x3", out.TableUsage[0], f.table.Number)
	}
}

func TestAnalyticsEmptyDB(t *testing.T) {
	f := newFixture(t)
	svc := NewAnalyticsService(f.db)

	out, err := svc.Compute()
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if out.TodayOrders != 0 || out.MonthRevenue != 0 {
		t.Errorf("expected zero metrics, got %+v", out)
	}
	if out.TopItems == nil || out.TableUsage == nil {
		t.Error("expected empty slices, not nil")
	}
}
