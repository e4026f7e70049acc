package agent

import (
	"strings"

	"github.com/ujjwal-9/ordering-agent/entity"
)

// SelectedAddOn is a resolved add-on snapshot carried on an order line.
type SelectedAddOn struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Type  string  `json:"type"`
}

// ReconcileResult partitions the customer's requested add-on strings:
// every input lands in exactly one of Selected or Invalid, and Selected
// never contains an add-on outside the available list.
type ReconcileResult struct {
	Selected      []SelectedAddOn
	Invalid       []string
	SelectedTypes map[string]bool
	// Instructions holds "modifier + add-on" fragments like "extra
	// bacon" recovered from substring matches.
	Instructions []string
}

// Reconcile matches each requested add-on name against the available
// add-ons for the item's category. Exact match first; then substring in
// either direction, extracting the leftover words ("extra" in "extra
// bacon") as a special-instruction fragment. Unmatched strings are
// reported as invalid, never invented as new add-ons.
func Reconcile(requested []string, available []entity.AddOn) ReconcileResult {
	res := ReconcileResult{SelectedTypes: make(map[string]bool)}

	for _, raw := range requested {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		match := MatchAddOn(name, available)
		if match == nil {
			res.Invalid = append(res.Invalid, raw)
			continue
		}

		// A substring hit carries extra words ("extra" in "extra
		// bacon"); keep them as a special instruction.
		if !strings.EqualFold(match.Name, name) {
			lower := strings.ToLower(name)
			modifier := strings.TrimSpace(strings.ReplaceAll(lower, strings.ToLower(match.Name), ""))
			if modifier != "" {
				res.Instructions = append(res.Instructions, modifier+" "+match.Name)
			}
		}

		t := entity.NormalizeType(match.Type)
		res.Selected = append(res.Selected, SelectedAddOn{
			ID:    match.ID,
			Name:  match.Name,
			Price: match.Price,
			Type:  t,
		})
		res.SelectedTypes[t] = true
	}
	return res
}

// GroupByType buckets add-ons by normalized type, preserving input order
// within each bucket.
func GroupByType(addOns []entity.AddOn) map[string][]entity.AddOn {
	byType := make(map[string][]entity.AddOn)
	for _, a := range addOns {
		t := entity.NormalizeType(a.Type)
		byType[t] = append(byType[t], a)
	}
	return byType
}

// RemainingTypes lists, in canonical order, the add-on types that have
// options but were not covered by the selection. This seeds the
// sequential add-on flow.
func RemainingTypes(byType map[string][]entity.AddOn, selected map[string]bool) []string {
	var out []string
	for _, t := range entity.AddOnTypeOrder {
		if len(byType[t]) == 0 {
			continue
		}
		if selected[t] {
			continue
		}
		out = append(out, t)
	}
	return out
}
