package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineTotalWithNegativeAddOn(t *testing.T) {
	line := OrderLine{
		Quantity:  2,
		BasePrice: 8.99,
		AddOns: []SelectedAddOn{
			{Name: "Bacon", Price: 1.50},
			{Name: "Small", Price: -2.00},
		},
	}
	assert.InDelta(t, 16.98, line.Total(), 0.001)
}

func TestOrderTotalSumsLines(t *testing.T) {
	lines := []OrderLine{
		{Quantity: 1, BasePrice: 8.99},
		{Quantity: 2, BasePrice: 12.99, AddOns: []SelectedAddOn{{Price: 4.00}}},
	}
	assert.InDelta(t, 42.97, OrderTotal(lines), 0.001)
}

func TestResolveLinesDropsUnknownItems(t *testing.T) {
	catalog := newFakeCatalog()
	lines, err := ResolveLines(catalog, []NormalizedItem{
		{ItemName: "Margherita Pizza", Quantity: 1, AddOns: []string{"Large"}},
		{ItemName: "Sushi Platter", Quantity: 1},
	})
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, "Margherita Pizza", lines[0].MenuItemName)
	require.Len(t, lines[0].AddOns, 1)
	assert.Equal(t, "Large", lines[0].AddOns[0].Name)
}

func TestResolveLinesFoldsModifierIntoInstructions(t *testing.T) {
	catalog := newFakeCatalog()
	lines, err := ResolveLines(catalog, []NormalizedItem{
		{ItemName: "Classic Burger", Quantity: 1, AddOns: []string{"extra bacon"}, SpecialInstructions: "well done"},
	})
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, "well done, extra Bacon", lines[0].SpecialInstructions)
	require.Len(t, lines[0].AddOns, 1)
	assert.Equal(t, "Bacon", lines[0].AddOns[0].Name)
}

func TestCombineInstructions(t *testing.T) {
	lines := []OrderLine{
		{MenuItemName: "Classic Burger", SpecialInstructions: "no onions"},
		{MenuItemName: "Margherita Pizza"},
	}
	assert.Equal(t, "ring the bell; Classic Burger: no onions", CombineInstructions("ring the bell", lines))
	assert.Equal(t, "Classic Burger: no onions", CombineInstructions("", lines))
}
