package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/PunitTak2005/restaurant-qr-menu/entity"
	"github.com/PunitTak2005/restaurant-qr-menu/repository"
)

// Notifier receives order mutations for real-time fan-out. Handlers depend
// on this capability, not on a concrete hub.
type Notifier interface {
	OrderCreated(o *entity.Order)
	OrderUpdated(o *entity.Order)
	OrderDeleted(orderID uint)
}

// NopNotifier is used where no socket hub is wired (tests, tooling).
type NopNotifier struct{}

func (NopNotifier) OrderCreated(*entity.Order) {}
func (NopNotifier) OrderUpdated(*entity.Order) {}
func (NopNotifier) OrderDeleted(uint)          {}

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	MenuRepo  *repository.MenuRepository
	TableRepo *repository.TableRepository
	Notify    Notifier
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	tableRepo *repository.TableRepository,
	notify Notifier,
) *OrderService {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, TableRepo: tableRepo, Notify: notify}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID uint   `json:"menuItemId" binding:"required"`
	Qty        int    `json:"qty" binding:"required,min=1"`
	Note       string `json:"note" binding:"max=200"`
}

type CreateOrderReq struct {
	TableID uint          `json:"tableId" binding:"required"`
	Items   []OrderItemIn `json:"items" binding:"required,min=1"`
	// redundant cross-check; 0 means not supplied
	TableNumber int `json:"tableNumber"`
}

// Create validates references, snapshots current menu prices into the line
// items, persists the order as pending and returns it fully populated.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	table, err := s.TableRepo.FindByID(req.TableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	if req.TableNumber != 0 && req.TableNumber != table.Number {
		return nil, ErrTableNumberMismatch
	}

	// price snapshot: totals come from the menu as it is right now
	var total int64
	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Qty < 1 {
			return nil, ErrInvalidQty
		}
		m, err := s.MenuRepo.ItemBasics(it.MenuItemID)
		if err != nil || !m.Active {
			return nil, ErrMenuItemNotFound
		}
		total += m.Price * int64(it.Qty)
		items = append(items, entity.OrderItem{
			MenuItemID: it.MenuItemID,
			Qty:        it.Qty,
			Note:       it.Note,
			UnitPrice:  m.Price,
		})
	}

	order := entity.Order{
		UserID:      userID,
		TableID:     table.ID,
		TableNumber: table.Number,
		Items:       items,
		TotalPrice:  total,
		Status:      entity.OrderPending,
	}
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, &order)
	}); err != nil {
		return nil, err
	}

	populated, err := s.Repo.GetPopulated(order.ID)
	if err != nil {
		return nil, err
	}

	s.Notify.OrderCreated(populated)
	return populated, nil
}

// UpdateStatus sets the order status. Any allowed status may replace any
// other; values outside the set are rejected without touching the row.
func (s *OrderService) UpdateStatus(orderID uint, status string) (*entity.Order, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	affected, err := s.Repo.UpdateStatus(orderID, status)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrOrderNotFound
	}

	populated, err := s.Repo.GetPopulated(orderID)
	if err != nil {
		return nil, err
	}

	s.Notify.OrderUpdated(populated)
	return populated, nil
}

func (s *OrderService) Delete(orderID uint) error {
	affected, err := s.Repo.Delete(orderID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	s.Notify.OrderDeleted(orderID)
	return nil
}

func (s *OrderService) Get(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetPopulated(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderService) ListAll() ([]entity.Order, error) {
	return s.Repo.ListAll()
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID)
}
