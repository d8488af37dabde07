package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/PunitTak2005/restaurant-qr-menu/entity"
)

// AnalyticsService is read-side aggregation only; windows are computed from
// wall-clock time at request time.
type AnalyticsService struct {
	DB *gorm.DB
	// Now is swappable for tests
	Now func() time.Time
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{DB: db, Now: time.Now}
}

type TopItem struct {
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	OrderCount int64  `json:"orderCount"`
}

type TableUsage struct {
	TableID     uint  `json:"tableId"`
	TableNumber int   `json:"tableNumber"`
	UsageCount  int64 `json:"usageCount"`
}

type Analytics struct {
	TodayOrders int64 `json:"todayOrders"`
	WeekOrders  int64 `json:"weekOrders"`
	MonthOrders int64 `json:"monthOrders"`

	TodayRevenue int64 `json:"todayRevenue"`
	WeekRevenue  int64 `json:"weekRevenue"`
	MonthRevenue int64 `json:"monthRevenue"`

	TopItems   []TopItem    `json:"topItems"`
	TableUsage []TableUsage `json:"tableUsage"`
}

// startOf returns the lower bound of a window: local midnight for "today",
// the most recent Sunday for "week", the first of the month for "month".
func (s *AnalyticsService) startOf(period string) time.Time {
	now := s.Now()
	switch period {
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "week":
		sunday := now.AddDate(0, 0, -int(now.Weekday()))
		return time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 0, 0, 0, 0, now.Location())
	case "month":
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
	return time.Time{}
}

func (s *AnalyticsService) ordersSince(from time.Time) (int64, error) {
	var count int64
	err := s.DB.Model(&entity.Order{}).Where("created_at >= ?", from).Count(&count).Error
	return count, err
}

func (s *AnalyticsService) revenueSince(from time.Time) (int64, error) {
	var sum int64
	err := s.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total_price), 0)").
		Where("created_at >= ?", from).
		Scan(&sum).Error
	return sum, err
}

// Compute gathers every metric in one pass.
func (s *AnalyticsService) Compute() (*Analytics, error) {
	out := &Analytics{
		TopItems:   []TopItem{},
		TableUsage: []TableUsage{},
	}

	today, week, month := s.startOf("today"), s.startOf("week"), s.startOf("month")

	var err error
	if out.TodayOrders, err = s.ordersSince(today); err != nil {
		return nil, err
	}
	if out.WeekOrders, err = s.ordersSince(week); err != nil {
		return nil, err
	}
	if out.MonthOrders, err = s.ordersSince(month); err != nil {
		return nil, err
	}
	if out.TodayRevenue, err = s.revenueSince(today); err != nil {
		return nil, err
	}
	if out.WeekRevenue, err = s.revenueSince(week); err != nil {
		return nil, err
	}
	if out.MonthRevenue, err = s.revenueSince(month); err != nil {
		return nil, err
	}

	// top 5 menu items by ordered quantity this month
	if err := s.DB.Model(&entity.OrderItem{}).
		Select("order_items.menu_item_id AS menu_item_id, menu_items.name AS name, SUM(order_items.qty) AS order_count").
		Joins("JOIN orders ON orders.id = order_items.order_id AND orders.deleted_at IS NULL").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Where("orders.created_at >= ?", month).
		Group("order_items.menu_item_id, menu_items.name").
		Order("order_count DESC").
		Limit(5).
		Scan(&out.TopItems).Error; err != nil {
		return nil, err
	}

	// top 5 tables by order count this month
	if err := s.DB.Model(&entity.Order{}).
		Select("table_id, table_number, COUNT(*) AS usage_count").
		Where("created_at >= ?", month).
		Group("table_id, table_number").
		Order("usage_count DESC").
		Limit(5).
		Scan(&out.TableUsage).Error; err != nil {
		return nil, err
	}

	return out, nil
}
