package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ujjwal-9/ordering-agent/entity"
)

func testAddOns() []entity.AddOn {
	return []entity.AddOn{
		{Model: gorm.Model{ID: 1}, Name: "Small", Price: -2.00, Category: "pizza", Type: "size", IsAvailable: true},
		{Model: gorm.Model{ID: 2}, Name: "Large", Price: 4.00, Category: "pizza", Type: "size", IsAvailable: true},
		{Model: gorm.Model{ID: 3}, Name: "Spicy Tomato", Price: 0.75, Category: "pizza", Type: "sauce", IsAvailable: true},
		{Model: gorm.Model{ID: 4}, Name: "Bacon", Price: 1.50, Category: "burger", Type: "topping", IsAvailable: true},
	}
}

func TestReconcilePartition(t *testing.T) {
	res := Reconcile([]string{"large", "truffle oil"}, testAddOns())

	require.Len(t, res.Selected, 1)
	assert.Equal(t, "Large", res.Selected[0].Name)
	assert.Equal(t, []string{"truffle oil"}, res.Invalid)
	assert.True(t, res.SelectedTypes["size"])
	assert.False(t, res.SelectedTypes["sauce"])
}

func TestReconcileNeverFabricates(t *testing.T) {
	res := Reconcile([]string{"anchovies", "gold leaf"}, testAddOns())
	assert.Empty(t, res.Selected)
	assert.Len(t, res.Invalid, 2)
}

func TestReconcileModifierExtraction(t *testing.T) {
	res := Reconcile([]string{"extra bacon"}, testAddOns())

	require.Len(t, res.Selected, 1)
	assert.Equal(t, "Bacon", res.Selected[0].Name)
	assert.Equal(t, []string{"extra Bacon"}, res.Instructions)
	assert.Empty(t, res.Invalid)
}

func TestReconcileStopsAtSubstringTier(t *testing.T) {
	// Add-on resolution shares MatchAddOn's policy: a typo must land in
	// Invalid, never resolve by edit distance.
	res := Reconcile([]string{"bacn"}, testAddOns())
	assert.Empty(t, res.Selected)
	assert.Equal(t, []string{"bacn"}, res.Invalid)
}

func TestReconcileExactMatchNoInstruction(t *testing.T) {
	res := Reconcile([]string{"Bacon"}, testAddOns())
	require.Len(t, res.Selected, 1)
	assert.Empty(t, res.Instructions)
}

func TestReconcileSkipsEmptyStrings(t *testing.T) {
	res := Reconcile([]string{"", "  ", "large"}, testAddOns())
	require.Len(t, res.Selected, 1)
	assert.Empty(t, res.Invalid)
}

func TestGroupByTypeNormalizes(t *testing.T) {
	addOns := testAddOns()
	addOns = append(addOns, entity.AddOn{Model: gorm.Model{ID: 5}, Name: "Napkins", Type: "misc"})
	byType := GroupByType(addOns)

	assert.Len(t, byType["size"], 2)
	assert.Len(t, byType["sauce"], 1)
	assert.Len(t, byType["other"], 1)
}

func TestRemainingTypesCanonicalOrder(t *testing.T) {
	byType := GroupByType(testAddOns())

	assert.Equal(t, []string{"size", "sauce", "topping"}, RemainingTypes(byType, nil))
	assert.Equal(t, []string{"sauce", "topping"}, RemainingTypes(byType, map[string]bool{"size": true}))
	assert.Empty(t, RemainingTypes(nil, nil))
}
