package repository

import (
	"time"

	"github.com/ujjwal-9/ordering-agent/entity"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

// GetByPhone looks a customer up by normalized phone. Phone is the only
// trusted identity key; names are not unique.
func (r *CustomerRepository) GetByPhone(phone string) (*entity.Customer, error) {
	return r.GetByPhoneTx(r.DB, phone)
}

// GetByPhoneTx is GetByPhone on a caller-supplied transaction, so a
// find-or-create stays atomic with the insert that follows it.
func (r *CustomerRepository) GetByPhoneTx(tx *gorm.DB, phone string) (*entity.Customer, error) {
	var customer entity.Customer
	if err := tx.Where("phone = ?", phone).First(&customer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) Create(tx *gorm.DB, customer *entity.Customer) error {
	return tx.Create(customer).Error
}

func (r *CustomerRepository) Update(phone string, updates map[string]any) (*entity.Customer, error) {
	if err := r.DB.Model(&entity.Customer{}).Where("phone = ?", phone).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByPhone(phone)
}

// BumpOrderStats increments the order counter and stamps the last order
// date; called inside the order-creation transaction.
func (r *CustomerRepository) BumpOrderStats(tx *gorm.DB, customerID uint) error {
	now := time.Now().UTC()
	return tx.Model(&entity.Customer{}).Where("id = ?", customerID).
		Updates(map[string]any{
			"total_orders":    gorm.Expr("total_orders + 1"),
			"last_order_date": now,
		}).Error
}

func (r *CustomerRepository) List(limit int) ([]entity.Customer, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var customers []entity.Customer
	err := r.DB.Order("id DESC").Limit(limit).Find(&customers).Error
	return customers, err
}
