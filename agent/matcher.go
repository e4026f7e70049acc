package agent

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/ujjwal-9/ordering-agent/entity"
)

// similarityThreshold is the minimum normalized edit-distance score for
// the strict matching tier used on whole menu items.
const similarityThreshold = 0.6

// MatchMenuItem resolves a free-text item name against the menu.
// Priority: case-insensitive exact, bidirectional substring, then
// normalized edit distance above the threshold. A non-empty category
// restricts the candidates first.
func MatchMenuItem(query string, items []entity.MenuItem, category string) *entity.MenuItem {
	query = strings.TrimSpace(query)
	if query == "" || len(items) == 0 {
		return nil
	}
	q := strings.ToLower(query)

	candidates := make([]*entity.MenuItem, 0, len(items))
	for i := range items {
		if category != "" && !strings.EqualFold(items[i].Category, category) {
			continue
		}
		candidates = append(candidates, &items[i])
	}

	for _, item := range candidates {
		if strings.EqualFold(item.Name, query) {
			return item
		}
	}
	for _, item := range candidates {
		if containsEither(q, strings.ToLower(item.Name)) {
			return item
		}
	}

	// Edit-distance tier, ties broken by first-seen order.
	var best *entity.MenuItem
	bestScore := similarityThreshold
	for _, item := range candidates {
		score := similarity(q, strings.ToLower(item.Name))
		if score > bestScore {
			best = item
			bestScore = score
		}
	}
	return best
}

// MatchAddOn resolves a free-text add-on name within one category's
// add-on list. Add-on matching stops at the substring tier: a wrong
// edit-distance guess here would silently change the order.
func MatchAddOn(query string, addOns []entity.AddOn) *entity.AddOn {
	query = strings.TrimSpace(query)
	if query == "" || len(addOns) == 0 {
		return nil
	}
	q := strings.ToLower(query)

	for i := range addOns {
		if strings.EqualFold(addOns[i].Name, query) {
			return &addOns[i]
		}
	}
	for i := range addOns {
		if containsEither(q, strings.ToLower(addOns[i].Name)) {
			return &addOns[i]
		}
	}
	return nil
}

// SimilarItems lists up to limit menu items that substring-match the
// query, for the "did you mean" suggestion path.
func SimilarItems(query string, items []entity.MenuItem, category string, limit int) []entity.MenuItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []entity.MenuItem
	for _, item := range items {
		if category != "" && !strings.EqualFold(item.Category, category) {
			continue
		}
		if containsEither(q, strings.ToLower(item.Name)) || similarity(q, strings.ToLower(item.Name)) >= similarityThreshold {
			out = append(out, item)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func containsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}
