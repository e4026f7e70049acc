package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ujjwal-9/ordering-agent/agent"
	"github.com/ujjwal-9/ordering-agent/entity"
	"github.com/ujjwal-9/ordering-agent/repository"
)

// prepMinutesPerLine drives the pickup estimate: five minutes per
// distinct order line.
const prepMinutesPerLine = 5

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrBadStatus      = errors.New("unknown order status")
	ErrBadTransition  = errors.New("status transition not allowed")
	ErrStatusConflict = errors.New("order status changed concurrently")
)

// OrderService persists confirmed call orders and serves the admin
// order API. It implements agent.OrderStore.
type OrderService struct {
	db        *gorm.DB
	orders    *repository.OrderRepository
	customers *repository.CustomerRepository
}

func NewOrderService(db *gorm.DB, orders *repository.OrderRepository, customers *repository.CustomerRepository) *OrderService {
	return &OrderService{db: db, orders: orders, customers: customers}
}

// Create writes the order, its lines and add-on snapshots in one
// transaction, creating the customer row first if the phone is new.
func (s *OrderService) Create(draft agent.OrderDraft) (*entity.Order, error) {
	var order *entity.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		customer, err := s.customers.GetByPhoneTx(tx, draft.CustomerPhone)
		if err != nil {
			return err
		}
		if customer == nil {
			customer = &entity.Customer{Name: draft.CustomerName, Phone: draft.CustomerPhone}
			if err := s.customers.Create(tx, customer); err != nil {
				return err
			}
		}

		order = &entity.Order{
			CustomerID:           customer.ID,
			CustomerName:         draft.CustomerName,
			CustomerPhone:        draft.CustomerPhone,
			TotalAmount:          draft.Total,
			Status:               entity.StatusPending,
			EstimatedPrepMinutes: prepMinutesPerLine * len(draft.Lines),
			SpecialInstructions:  draft.SpecialInstructions,
		}
		if err := s.orders.CreateOrder(tx, order); err != nil {
			return err
		}
		if err := s.createLines(tx, order.ID, draft.Lines); err != nil {
			return err
		}
		return s.customers.BumpOrderStats(tx, customer.ID)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Update replaces the lines and totals of an order created earlier in
// the same call. Customer stats are not bumped again.
func (s *OrderService) Update(orderID uint, draft agent.OrderDraft) (*entity.Order, error) {
	var order *entity.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := s.orders.GetOrderTx(tx, orderID)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrOrderNotFound
		}

		if err := s.orders.DeleteOrderItems(tx, orderID); err != nil {
			return err
		}
		if err := s.createLines(tx, orderID, draft.Lines); err != nil {
			return err
		}
		if err := s.orders.UpdateOrder(tx, orderID, map[string]any{
			"total_amount":           draft.Total,
			"estimated_prep_minutes": prepMinutesPerLine * len(draft.Lines),
			"special_instructions":   draft.SpecialInstructions,
		}); err != nil {
			return err
		}

		existing.TotalAmount = draft.Total
		existing.EstimatedPrepMinutes = prepMinutesPerLine * len(draft.Lines)
		existing.SpecialInstructions = draft.SpecialInstructions
		order = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) createLines(tx *gorm.DB, orderID uint, lines []agent.OrderLine) error {
	for _, line := range lines {
		item := &entity.OrderItem{
			OrderID:             orderID,
			MenuItemID:          line.MenuItemID,
			MenuItemName:        line.MenuItemName,
			Quantity:            line.Quantity,
			BasePrice:           line.BasePrice,
			Total:               line.Total(),
			SpecialInstructions: line.SpecialInstructions,
		}
		if err := s.orders.CreateOrderItem(tx, item); err != nil {
			return err
		}
		for _, a := range line.AddOns {
			if err := s.orders.CreateOrderItemAddOn(tx, &entity.OrderItemAddOn{
				OrderItemID: item.ID,
				AddOnID:     a.ID,
				AddOnName:   a.Name,
				Price:       a.Price,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

// UpdateStatus moves an order along the lifecycle. The transition table
// is enforced first, then the write is guarded on the expected current
// status so concurrent admins cannot double-apply.
func (s *OrderService) UpdateStatus(orderID uint, to string, etaMinutes *int) (*entity.Order, error) {
	if !entity.ValidStatus(to) {
		return nil, ErrBadStatus
	}
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !entity.CanTransition(order.Status, to) {
		return nil, ErrBadTransition
	}

	changed, err := s.orders.UpdateStatusFromTo(s.db, orderID, order.Status, to, etaMinutes)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, ErrStatusConflict
	}
	return s.orders.GetOrder(orderID)
}

func (s *OrderService) List(status string, page, limit int) ([]repository.OrderSummary, int64, error) {
	return s.orders.ListOrders(status, page, limit)
}

type OrderDetail struct {
	Order *entity.Order      `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	items, err := s.orders.GetOrderItems(orderID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: order, Items: items}, nil
}
