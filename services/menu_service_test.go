package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujjwal-9/ordering-agent/repository"
)

func newMenuService(t *testing.T) (*MenuService, *repository.CatalogCache) {
	db := testDB(t)
	cache := repository.NewCatalogCache(repository.NewCatalogRepository(db))
	require.NoError(t, cache.Refresh())
	return NewMenuService(db, cache), cache
}

func TestMenuServiceCreateRefreshesCache(t *testing.T) {
	svc, cache := newMenuService(t)

	item, err := svc.CreateItem(MenuItemInput{Name: "Classic Burger", Category: "burger", BasePrice: 8.99})
	require.NoError(t, err)
	require.NotZero(t, item.ID)

	menu, err := cache.GetMenu("")
	require.NoError(t, err)
	require.Len(t, menu, 1)
	assert.Equal(t, "Classic Burger", menu[0].Name)
}

func TestMenuServiceUnavailableHiddenFromCache(t *testing.T) {
	svc, cache := newMenuService(t)
	item, err := svc.CreateItem(MenuItemInput{Name: "Classic Burger", Category: "burger", BasePrice: 8.99})
	require.NoError(t, err)

	hidden := false
	_, err = svc.UpdateItem(item.ID, MenuItemInput{
		Name: "Classic Burger", Category: "burger", BasePrice: 8.99, IsAvailable: &hidden,
	})
	require.NoError(t, err)

	menu, err := cache.GetMenu("")
	require.NoError(t, err)
	assert.Empty(t, menu)

	// The admin list still shows it.
	all, err := svc.ListMenu()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMenuServiceAddOnTypeNormalized(t *testing.T) {
	svc, _ := newMenuService(t)
	addOn, err := svc.CreateAddOn(AddOnInput{Name: "Napkins", Category: "burger", Type: "misc"})
	require.NoError(t, err)
	assert.Equal(t, "other", addOn.Type)

	sized, err := svc.CreateAddOn(AddOnInput{Name: "Family", Price: 6, Category: "pizza", Type: "Size"})
	require.NoError(t, err)
	assert.Equal(t, "size", sized.Type)
}

func TestMenuServiceDeleteMissing(t *testing.T) {
	svc, _ := newMenuService(t)
	assert.ErrorIs(t, svc.DeleteItem(42), ErrMenuEntryNotFound)
	assert.ErrorIs(t, svc.DeleteAddOn(42), ErrMenuEntryNotFound)
}
