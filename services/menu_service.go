package services

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/ujjwal-9/ordering-agent/entity"
	"github.com/ujjwal-9/ordering-agent/repository"
)

var ErrMenuEntryNotFound = errors.New("menu entry not found")

// MenuService is the admin-facing write side of the catalog. Every
// mutation refreshes the shared catalog cache so in-flight calls see
// the change on their next lookup.
type MenuService struct {
	db    *gorm.DB
	cache *repository.CatalogCache
}

func NewMenuService(db *gorm.DB, cache *repository.CatalogCache) *MenuService {
	return &MenuService{db: db, cache: cache}
}

func (s *MenuService) refresh() {
	if err := s.cache.Refresh(); err != nil {
		log.Printf("catalog cache refresh failed: %v", err)
	}
}

// ListMenu returns all items including unavailable ones; the admin UI
// needs to see what is hidden from callers.
func (s *MenuService) ListMenu() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := s.db.Order("category, id").Find(&items).Error
	return items, err
}

func (s *MenuService) ListAddOns() ([]entity.AddOn, error) {
	var addOns []entity.AddOn
	err := s.db.Order("category, type, id").Find(&addOns).Error
	return addOns, err
}

type MenuItemInput struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	BasePrice   float64 `json:"basePrice"`
	Description string  `json:"description"`
	IsAvailable *bool   `json:"isAvailable"`
}

func (in MenuItemInput) available() bool {
	return in.IsAvailable == nil || *in.IsAvailable
}

func (s *MenuService) CreateItem(in MenuItemInput) (*entity.MenuItem, error) {
	item := &entity.MenuItem{
		Name:        in.Name,
		Category:    in.Category,
		BasePrice:   in.BasePrice,
		Description: in.Description,
		IsAvailable: in.available(),
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, err
	}
	s.refresh()
	return item, nil
}

func (s *MenuService) UpdateItem(id uint, in MenuItemInput) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuEntryNotFound
		}
		return nil, err
	}

	item.Name = in.Name
	item.Category = in.Category
	item.BasePrice = in.BasePrice
	item.Description = in.Description
	item.IsAvailable = in.available()
	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	s.refresh()
	return &item, nil
}

func (s *MenuService) DeleteItem(id uint) error {
	res := s.db.Delete(&entity.MenuItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMenuEntryNotFound
	}
	s.refresh()
	return nil
}

type AddOnInput struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price"`
	Category    string  `json:"category" binding:"required"`
	Type        string  `json:"type"`
	IsAvailable *bool   `json:"isAvailable"`
}

func (in AddOnInput) available() bool {
	return in.IsAvailable == nil || *in.IsAvailable
}

func (s *MenuService) CreateAddOn(in AddOnInput) (*entity.AddOn, error) {
	addOn := &entity.AddOn{
		Name:        in.Name,
		Price:       in.Price,
		Category:    in.Category,
		Type:        entity.NormalizeType(in.Type),
		IsAvailable: in.available(),
	}
	if err := s.db.Create(addOn).Error; err != nil {
		return nil, err
	}
	s.refresh()
	return addOn, nil
}

func (s *MenuService) UpdateAddOn(id uint, in AddOnInput) (*entity.AddOn, error) {
	var addOn entity.AddOn
	if err := s.db.First(&addOn, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuEntryNotFound
		}
		return nil, err
	}

	addOn.Name = in.Name
	addOn.Price = in.Price
	addOn.Category = in.Category
	addOn.Type = entity.NormalizeType(in.Type)
	addOn.IsAvailable = in.available()
	if err := s.db.Save(&addOn).Error; err != nil {
		return nil, err
	}
	s.refresh()
	return &addOn, nil
}

func (s *MenuService) DeleteAddOn(id uint) error {
	res := s.db.Delete(&entity.AddOn{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMenuEntryNotFound
	}
	s.refresh()
	return nil
}
