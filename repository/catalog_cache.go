package repository

import (
	"strings"
	"sync/atomic"

	"github.com/ujjwal-9/ordering-agent/entity"
)

// catalogSnapshot is an immutable view of the menu. Readers never see a
// half-updated catalog: Refresh builds a whole new snapshot and swaps
// the pointer.
type catalogSnapshot struct {
	menu       []entity.MenuItem
	addOns     []entity.AddOn
	restaurant *entity.Restaurant
}

// CatalogCache serves catalog reads for every concurrent call from one
// process-scoped snapshot, refreshed independently of any call.
type CatalogCache struct {
	repo *CatalogRepository
	snap atomic.Pointer[catalogSnapshot]
}

func NewCatalogCache(repo *CatalogRepository) *CatalogCache {
	c := &CatalogCache{repo: repo}
	c.snap.Store(&catalogSnapshot{})
	return c
}

// Refresh loads a fresh snapshot from the database and atomically
// replaces the current one.
func (c *CatalogCache) Refresh() error {
	menu, err := c.repo.GetMenu("")
	if err != nil {
		return err
	}
	addOns, err := c.repo.GetAddOns("")
	if err != nil {
		return err
	}
	restaurant, err := c.repo.GetRestaurant()
	if err != nil {
		return err
	}
	c.snap.Store(&catalogSnapshot{menu: menu, addOns: addOns, restaurant: restaurant})
	return nil
}

func (c *CatalogCache) GetMenu(category string) ([]entity.MenuItem, error) {
	snap := c.snap.Load()
	if category == "" {
		return snap.menu, nil
	}
	var out []entity.MenuItem
	for _, item := range snap.menu {
		if strings.EqualFold(item.Category, category) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (c *CatalogCache) GetAddOns(category string) ([]entity.AddOn, error) {
	snap := c.snap.Load()
	if category == "" {
		return snap.addOns, nil
	}
	var out []entity.AddOn
	for _, a := range snap.addOns {
		if strings.EqualFold(a.Category, category) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (c *CatalogCache) FindItem(name, category string) (*entity.MenuItem, error) {
	snap := c.snap.Load()
	for i := range snap.menu {
		item := &snap.menu[i]
		if category != "" && !strings.EqualFold(item.Category, category) {
			continue
		}
		if strings.EqualFold(item.Name, name) {
			return item, nil
		}
	}
	return nil, nil
}

func (c *CatalogCache) GetRestaurant() (*entity.Restaurant, error) {
	return c.snap.Load().restaurant, nil
}
