package agent

import (
	"fmt"
	"strings"

	"github.com/ujjwal-9/ordering-agent/entity"
)

// AddOnFlow is the per-item cursor over add-on types still to be asked
// about. Tool calls can arrive in unexpected orders, so every method is
// a safe no-op on a nil flow: no flow means the flow is vacuously
// complete.
type AddOnFlow struct {
	Options    map[string][]entity.AddOn
	Types      []string
	Cursor     int
	Selections map[string][]string
}

// NewAddOnFlow builds the flow over the types that have at least one
// option, in canonical order, skipping types the customer already
// satisfied in the item-selection utterance.
func NewAddOnFlow(byType map[string][]entity.AddOn, alreadySelected map[string]bool) *AddOnFlow {
	return &AddOnFlow{
		Options:    byType,
		Types:      RemainingTypes(byType, alreadySelected),
		Selections: make(map[string][]string),
	}
}

// Current returns the add-on type to present next, or "" when the flow
// is complete or absent.
func (f *AddOnFlow) Current() string {
	if f == nil || f.Cursor >= len(f.Types) {
		return ""
	}
	return f.Types[f.Cursor]
}

// Record stores the customer's selections for a type. Each element may
// itself be a comma-joined list; empties are dropped.
func (f *AddOnFlow) Record(addonType string, selection []string) {
	if f == nil {
		return
	}
	var clean []string
	for _, s := range selection {
		for _, part := range strings.Split(s, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				clean = append(clean, part)
			}
		}
	}
	f.Selections[entity.NormalizeType(addonType)] = clean
}

// Advance moves the cursor past the current type. The cursor never
// moves backwards; a presented type is never presented again.
func (f *AddOnFlow) Advance() {
	if f == nil {
		return
	}
	f.Cursor++
}

// Complete reports whether every type has been presented.
func (f *AddOnFlow) Complete() bool {
	return f == nil || f.Cursor >= len(f.Types)
}

// Summary renders one line per selected type in canonical order, e.g.
// "Size: Large; Topping: Bacon, Cheese", or "no add-ons".
func (f *AddOnFlow) Summary() string {
	if f == nil {
		return "no add-ons"
	}
	var parts []string
	for _, t := range entity.AddOnTypeOrder {
		sels := f.Selections[t]
		if len(sels) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", titleCase(t), strings.Join(sels, ", ")))
	}
	if len(parts) == 0 {
		return "no add-ons"
	}
	return strings.Join(parts, "; ")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
