package agent

import (
	"github.com/ujjwal-9/ordering-agent/entity"
)

// Catalog is the read-only menu lookup the agent consults. Backed by
// repository.CatalogCache in production; all getters return available
// rows only.
type Catalog interface {
	GetMenu(category string) ([]entity.MenuItem, error)
	GetAddOns(category string) ([]entity.AddOn, error)
	FindItem(name, category string) (*entity.MenuItem, error)
	GetRestaurant() (*entity.Restaurant, error)
}

// CustomerStore is the customer side of the order repository.
type CustomerStore interface {
	GetByPhone(phone string) (*entity.Customer, error)
	Create(name, phone string) (*entity.Customer, error)
}

// OrderDraft is everything the store needs to persist a confirmed order.
type OrderDraft struct {
	CustomerName        string
	CustomerPhone       string
	Lines               []OrderLine
	Total               float64
	SpecialInstructions string
}

// OrderStore persists confirmed orders. Update replaces the line list of
// an order already created in this call session.
type OrderStore interface {
	Create(draft OrderDraft) (*entity.Order, error)
	Update(orderID uint, draft OrderDraft) (*entity.Order, error)
}
