package agent

import (
	"encoding/json"
)

// OrderItemInput is one order line as the LLM stated it. Quantity and
// add-ons may be ambiguous; NormalizeItems resolves that.
type OrderItemInput struct {
	ItemName            string       `json:"item_name"`
	Quantity            int          `json:"quantity"`
	AddOns              []AddOnEntry `json:"add_ons"`
	SpecialInstructions string       `json:"special_instructions"`
}

// AddOnEntry accepts either a plain add-on name or a nested list (a
// per-unit bundle) in the add_ons array.
type AddOnEntry struct {
	Name   string
	Bundle []string
	IsList bool
}

func (e *AddOnEntry) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '[' {
		e.IsList = true
		return json.Unmarshal(b, &e.Bundle)
	}
	return json.Unmarshal(b, &e.Name)
}

// NormalizedItem is one canonical order line: flat add-on names, known
// quantity.
type NormalizedItem struct {
	ItemName            string
	Quantity            int
	AddOns              []string
	SpecialInstructions string
}

// NormalizeItems expands customer-stated order lines into canonical
// lines. Per-unit bundles explode into one line each; "3 burgers" with
// exactly 3 add-on strings is read as one add-on per unit and split
// the same way. Lines with no item name are skipped.
func NormalizeItems(items []OrderItemInput) []NormalizedItem {
	var out []NormalizedItem
	for _, item := range items {
		if item.ItemName == "" {
			continue
		}
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}

		hasBundle := false
		for _, e := range item.AddOns {
			if e.IsList {
				hasBundle = true
				break
			}
		}

		switch {
		case hasBundle:
			for _, e := range item.AddOns {
				addOns := e.Bundle
				if !e.IsList {
					addOns = []string{e.Name}
				}
				out = append(out, NormalizedItem{
					ItemName:            item.ItemName,
					Quantity:            1,
					AddOns:              addOns,
					SpecialInstructions: item.SpecialInstructions,
				})
			}
		case qty > 1 && len(item.AddOns) == qty:
			for _, e := range item.AddOns {
				out = append(out, NormalizedItem{
					ItemName:            item.ItemName,
					Quantity:            1,
					AddOns:              []string{e.Name},
					SpecialInstructions: item.SpecialInstructions,
				})
			}
		default:
			names := make([]string, 0, len(item.AddOns))
			for _, e := range item.AddOns {
				names = append(names, e.Name)
			}
			out = append(out, NormalizedItem{
				ItemName:            item.ItemName,
				Quantity:            qty,
				AddOns:              names,
				SpecialInstructions: item.SpecialInstructions,
			})
		}
	}
	return out
}
