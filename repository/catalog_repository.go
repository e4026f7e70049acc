package repository

import (
	"strings"

	"github.com/ujjwal-9/ordering-agent/entity"

	"gorm.io/gorm"
)

// CatalogRepository is the read-only menu lookup used both by the call
// agent and the admin API. All getters return available rows only.
type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) GetMenu(category string) ([]entity.MenuItem, error) {
	q := r.DB.Where("is_available = ?", true)
	if category != "" {
		q = q.Where("LOWER(category) = ?", strings.ToLower(category))
	}
	var items []entity.MenuItem
	err := q.Order("id").Find(&items).Error
	return items, err
}

func (r *CatalogRepository) GetAddOns(category string) ([]entity.AddOn, error) {
	q := r.DB.Where("is_available = ?", true)
	if category != "" {
		q = q.Where("LOWER(category) = ?", strings.ToLower(category))
	}
	var addOns []entity.AddOn
	err := q.Order("id").Find(&addOns).Error
	return addOns, err
}

// FindItem does a case-insensitive exact name lookup. Fuzzy resolution
// happens in the agent on top of GetMenu.
func (r *CatalogRepository) FindItem(name, category string) (*entity.MenuItem, error) {
	q := r.DB.Where("is_available = ?", true).
		Where("LOWER(name) = ?", strings.ToLower(name))
	if category != "" {
		q = q.Where("LOWER(category) = ?", strings.ToLower(category))
	}
	var item entity.MenuItem
	if err := q.First(&item).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *CatalogRepository) GetRestaurant() (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	err := r.DB.Where("is_active = ?", true).First(&restaurant).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &restaurant, nil
}
