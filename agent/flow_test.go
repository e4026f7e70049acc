package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlowNilSafe(t *testing.T) {
	var f *AddOnFlow
	assert.Equal(t, "", f.Current())
	assert.True(t, f.Complete())
	assert.Equal(t, "no add-ons", f.Summary())
	f.Record("size", []string{"Large"}) // must not panic
	f.Advance()
}

func TestFlowWalksCanonicalOrder(t *testing.T) {
	f := NewAddOnFlow(GroupByType(testAddOns()), nil)

	assert.Equal(t, "size", f.Current())
	f.Record("size", []string{"Large"})
	f.Advance()
	assert.Equal(t, "sauce", f.Current())
	f.Record("sauce", []string{"Spicy Tomato"})
	f.Advance()
	assert.Equal(t, "topping", f.Current())
	f.Advance()
	assert.True(t, f.Complete())
	assert.Equal(t, "", f.Current())
}

func TestFlowSkipsPreselectedTypes(t *testing.T) {
	f := NewAddOnFlow(GroupByType(testAddOns()), map[string]bool{"size": true})
	assert.Equal(t, "sauce", f.Current())
}

func TestFlowCursorNeverRevisits(t *testing.T) {
	f := NewAddOnFlow(GroupByType(testAddOns()), nil)
	f.Advance()
	first := f.Current()
	// Recording for an earlier type must not move the cursor back.
	f.Record("size", []string{"Small"})
	assert.Equal(t, first, f.Current())
}

func TestFlowRecordMixedCaseType(t *testing.T) {
	f := NewAddOnFlow(GroupByType(testAddOns()), nil)
	f.Record("Size", []string{"Large"})
	assert.Equal(t, []string{"Large"}, f.Selections["size"])
}

func TestFlowRecordSplitsCommaLists(t *testing.T) {
	f := NewAddOnFlow(GroupByType(testAddOns()), nil)
	f.Record("topping", []string{"Bacon, Cheese", "", " "})
	assert.Equal(t, []string{"Bacon", "Cheese"}, f.Selections["topping"])
}

func TestFlowSummary(t *testing.T) {
	f := NewAddOnFlow(GroupByType(testAddOns()), nil)
	f.Record("topping", []string{"Bacon"})
	f.Record("size", []string{"Large"})
	assert.Equal(t, "Size: Large; Topping: Bacon", f.Summary())
}
