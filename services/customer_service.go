package services

import (
	"gorm.io/gorm"

	"github.com/ujjwal-9/ordering-agent/entity"
	"github.com/ujjwal-9/ordering-agent/repository"
)

// CustomerService backs both the call agent's customer lookups and the
// admin customer list.
type CustomerService struct {
	db        *gorm.DB
	customers *repository.CustomerRepository
	orders    *repository.OrderRepository
}

func NewCustomerService(db *gorm.DB, customers *repository.CustomerRepository, orders *repository.OrderRepository) *CustomerService {
	return &CustomerService{db: db, customers: customers, orders: orders}
}

func (s *CustomerService) GetByPhone(phone string) (*entity.Customer, error) {
	return s.customers.GetByPhone(phone)
}

func (s *CustomerService) Create(name, phone string) (*entity.Customer, error) {
	customer := &entity.Customer{Name: name, Phone: phone}
	if err := s.customers.Create(s.db, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) List(limit int) ([]entity.Customer, error) {
	return s.customers.List(limit)
}

// OrderHistory returns a customer's recent orders, newest first.
func (s *CustomerService) OrderHistory(phone string, limit int) (*entity.Customer, []repository.OrderSummary, error) {
	customer, err := s.customers.GetByPhone(phone)
	if err != nil || customer == nil {
		return nil, nil, err
	}
	history, err := s.orders.ListOrdersForCustomer(customer.ID, limit)
	if err != nil {
		return nil, nil, err
	}
	return customer, history, nil
}
