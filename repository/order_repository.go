package repository

import (
	"time"

	"github.com/ujjwal-9/ordering-agent/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) CreateOrderItemAddOn(tx *gorm.DB, oa *entity.OrderItemAddOn) error {
	return tx.Create(oa).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	return r.GetOrderTx(r.DB, orderID)
}

// GetOrderTx reads an order inside a caller-supplied transaction.
func (r *OrderRepository) GetOrderTx(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.First(&o, orderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Preload("AddOns").Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

// DeleteOrderItems removes all lines of an order; used by the
// replace-lines update path.
func (r *OrderRepository) DeleteOrderItems(tx *gorm.DB, orderID uint) error {
	var itemIDs []uint
	if err := tx.Model(&entity.OrderItem{}).Where("order_id = ?", orderID).
		Pluck("id", &itemIDs).Error; err != nil {
		return err
	}
	if len(itemIDs) > 0 {
		if err := tx.Where("order_item_id IN ?", itemIDs).
			Delete(&entity.OrderItemAddOn{}).Error; err != nil {
			return err
		}
	}
	return tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error
}

func (r *OrderRepository) UpdateOrder(tx *gorm.DB, orderID uint, updates map[string]any) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(updates).Error
}

// UpdateStatusFromTo moves an order between statuses only if it is
// still in the expected one; reports whether a row changed.
func (r *OrderRepository) UpdateStatusFromTo(tx *gorm.DB, orderID uint, from, to string, etaMinutes *int) (bool, error) {
	updates := map[string]any{"status": to}
	if etaMinutes != nil {
		updates["estimated_prep_minutes"] = *etaMinutes
	}
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

type OrderSummary struct {
	ID           uint      `json:"id"`
	CustomerName string    `json:"customerName"`
	Total        float64   `json:"total"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrders(status string, page, limit int) ([]OrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	q := r.DB.Model(&entity.Order{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []OrderSummary
	err := q.Select("id, customer_name, total_amount AS total, status, created_at").
		Order("id DESC").Limit(limit).Offset(offset).
		Scan(&out).Error
	return out, total, err
}

func (r *OrderRepository) ListOrdersForCustomer(customerID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, customer_name, total_amount AS total, status, created_at").
		Where("customer_id = ?", customerID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}
