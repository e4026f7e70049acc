package agent

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeItemsQuantityMatchesAddOns(t *testing.T) {
	// "3 burgers, one with cheese, one with bacon, one with lettuce":
	// three add-on strings for quantity 3 means one per unit.
	items := NormalizeItems([]OrderItemInput{{
		ItemName: "Classic Burger",
		Quantity: 3,
		AddOns: []AddOnEntry{
			{Name: "cheese"}, {Name: "bacon"}, {Name: "lettuce"},
		},
	}})

	require.Len(t, items, 3)
	for i, want := range []string{"cheese", "bacon", "lettuce"} {
		assert.Equal(t, "Classic Burger", items[i].ItemName)
		assert.Equal(t, 1, items[i].Quantity)
		assert.Equal(t, []string{want}, items[i].AddOns)
	}
}

func TestNormalizeItemsBundleExplosion(t *testing.T) {
	var input OrderItemInput
	raw := `{"item_name":"Margherita Pizza","quantity":2,"add_ons":[["Large","Spicy Tomato"],"Small"]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &input))

	items := NormalizeItems([]OrderItemInput{input})

	require.Len(t, items, 2)
	assert.Equal(t, []string{"Large", "Spicy Tomato"}, items[0].AddOns)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, []string{"Small"}, items[1].AddOns)
}

func TestNormalizeItemsSharedAddOns(t *testing.T) {
	// Quantity 2 but a single add-on string: both units share it.
	items := NormalizeItems([]OrderItemInput{{
		ItemName: "Margherita Pizza",
		Quantity: 2,
		AddOns:   []AddOnEntry{{Name: "Large"}},
	}})

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, []string{"Large"}, items[0].AddOns)
}

func TestNormalizeItemsDefaultsAndSkips(t *testing.T) {
	items := NormalizeItems([]OrderItemInput{
		{ItemName: ""},
		{ItemName: "Classic Burger", Quantity: 0},
	})

	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}
