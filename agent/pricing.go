package agent

import (
	"log"
	"strings"
)

// OrderLine is a fully resolved, priced line ready for persistence.
type OrderLine struct {
	MenuItemID          uint
	MenuItemName        string
	Category            string
	Quantity            int
	BasePrice           float64
	AddOns              []SelectedAddOn
	SpecialInstructions string
}

// Total is quantity × (base price + sum of add-on prices). Add-on
// prices may be negative; no floor is applied.
func (l OrderLine) Total() float64 {
	addOns := 0.0
	for _, a := range l.AddOns {
		addOns += a.Price
	}
	return (l.BasePrice + addOns) * float64(l.Quantity)
}

// OrderTotal sums line totals over all resolved lines.
func OrderTotal(lines []OrderLine) float64 {
	total := 0.0
	for _, l := range lines {
		total += l.Total()
	}
	return total
}

// ResolveLines matches each normalized item against the menu (no
// category filter) and its add-ons against the category's add-on list.
// Lines whose item cannot be resolved are dropped with a warning; a bad
// line never aborts the rest of the order. Modifier fragments recovered
// during add-on reconciliation are folded into the line's special
// instructions.
func ResolveLines(catalog Catalog, items []NormalizedItem) ([]OrderLine, error) {
	menu, err := catalog.GetMenu("")
	if err != nil {
		return nil, err
	}

	var lines []OrderLine
	for _, in := range items {
		item := MatchMenuItem(in.ItemName, menu, "")
		if item == nil {
			log.Printf("order line dropped, unknown item: %q", in.ItemName)
			continue
		}
		if !item.IsAvailable {
			log.Printf("order line dropped, unavailable item: %q", item.Name)
			continue
		}

		available, err := catalog.GetAddOns(item.Category)
		if err != nil {
			return nil, err
		}
		rec := Reconcile(in.AddOns, available)
		if len(rec.Invalid) > 0 {
			log.Printf("ignoring unknown add-ons for %q: %v", item.Name, rec.Invalid)
		}

		instructions := in.SpecialInstructions
		if len(rec.Instructions) > 0 {
			joined := strings.Join(rec.Instructions, ", ")
			if instructions != "" {
				instructions += ", " + joined
			} else {
				instructions = joined
			}
		}

		lines = append(lines, OrderLine{
			MenuItemID:          item.ID,
			MenuItemName:        item.Name,
			Category:            item.Category,
			Quantity:            in.Quantity,
			BasePrice:           item.BasePrice,
			AddOns:              rec.Selected,
			SpecialInstructions: instructions,
		})
	}
	return lines, nil
}

// CombineInstructions merges the order-level instruction with per-line
// ones, prefixed by the item name, joined with "; ".
func CombineInstructions(orderLevel string, lines []OrderLine) string {
	combined := orderLevel
	for _, l := range lines {
		if l.SpecialInstructions == "" {
			continue
		}
		part := l.MenuItemName + ": " + l.SpecialInstructions
		if combined != "" {
			combined += "; " + part
		} else {
			combined = part
		}
	}
	return combined
}
