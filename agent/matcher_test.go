package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ujjwal-9/ordering-agent/entity"
)

func testMenu() []entity.MenuItem {
	return []entity.MenuItem{
		{Model: gorm.Model{ID: 1}, Name: "Classic Burger", Category: "burger", BasePrice: 8.99, IsAvailable: true},
		{Model: gorm.Model{ID: 2}, Name: "Margherita Pizza", Category: "pizza", BasePrice: 12.99, IsAvailable: true},
		{Model: gorm.Model{ID: 3}, Name: "Pepperoni Pizza", Category: "pizza", BasePrice: 14.99, IsAvailable: true},
	}
}

func TestMatchMenuItemExact(t *testing.T) {
	got := MatchMenuItem("margherita pizza", testMenu(), "")
	require.NotNil(t, got)
	assert.Equal(t, uint(2), got.ID)
}

func TestMatchMenuItemExactBeatsSubstring(t *testing.T) {
	menu := []entity.MenuItem{
		{Model: gorm.Model{ID: 1}, Name: "Burger Deluxe", Category: "burger", IsAvailable: true},
		{Model: gorm.Model{ID: 2}, Name: "Burger", Category: "burger", IsAvailable: true},
	}
	got := MatchMenuItem("burger", menu, "")
	require.NotNil(t, got)
	assert.Equal(t, uint(2), got.ID)
}

func TestMatchMenuItemSubstring(t *testing.T) {
	got := MatchMenuItem("margherita", testMenu(), "")
	require.NotNil(t, got)
	assert.Equal(t, "Margherita Pizza", got.Name)
}

func TestMatchMenuItemEditDistance(t *testing.T) {
	// One typo, well above the similarity threshold.
	got := MatchMenuItem("margarita pizza", testMenu(), "")
	require.NotNil(t, got)
	assert.Equal(t, "Margherita Pizza", got.Name)
}

func TestMatchMenuItemBelowThreshold(t *testing.T) {
	assert.Nil(t, MatchMenuItem("sushi platter", testMenu(), ""))
}

func TestMatchMenuItemCategoryRestricts(t *testing.T) {
	assert.Nil(t, MatchMenuItem("classic burger", testMenu(), "pizza"))
}

func TestMatchMenuItemEmptyInputs(t *testing.T) {
	assert.Nil(t, MatchMenuItem("", testMenu(), ""))
	assert.Nil(t, MatchMenuItem("   ", testMenu(), ""))
	assert.Nil(t, MatchMenuItem("burger", nil, ""))
}

func TestMatchAddOnNoEditDistanceTier(t *testing.T) {
	addOns := []entity.AddOn{
		{Model: gorm.Model{ID: 1}, Name: "Bacon", Category: "burger", Type: "topping", IsAvailable: true},
	}
	got := MatchAddOn("bacon", addOns)
	require.NotNil(t, got)
	assert.Equal(t, "Bacon", got.Name)

	// A typo must not resolve; add-on matching stops at substring.
	assert.Nil(t, MatchAddOn("bacn", addOns))
}

func TestSimilarItemsLimit(t *testing.T) {
	got := SimilarItems("pizza", testMenu(), "", 1)
	require.Len(t, got, 1)
	assert.Equal(t, "Margherita Pizza", got[0].Name)
}
