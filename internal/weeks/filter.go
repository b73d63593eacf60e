package weeks

import (
	"sort"
	"strings"

	"github.com/akyairhashvil/aulaplan/internal/models"
)

// SplitResources breaks a comma separated resource string into trimmed,
// non-empty tokens in their original order.
func SplitResources(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// DistinctUnits returns the non-empty curricular units, sorted.
func DistinctUnits(weeks []models.Week) []string {
	seen := make(map[string]bool)
	for _, w := range weeks {
		if w.CurricularUnit != "" {
			seen[w.CurricularUnit] = true
		}
	}
	return sortedKeys(seen)
}

// DistinctResources returns every resource token across weeks, compared
// case-sensitively and sorted lexicographically.
func DistinctResources(weeks []models.Week) []string {
	seen := make(map[string]bool)
	for _, w := range weeks {
		for _, r := range SplitResources(w.Resources) {
			seen[r] = true
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Matches reports whether w satisfies every active part of f.
//
// The resource filter is a plain substring test against the raw resources
// string, so "lab" also matches "laboratorio".
func Matches(w models.Week, f models.FilterState) bool {
	if f.SearchText != "" && !matchesSearch(w, f.SearchText) {
		return false
	}
	if f.UnitActive() && w.CurricularUnit != f.UnitFilter {
		return false
	}
	if f.ResourceActive() && !strings.Contains(w.Resources, f.ResourceFilter) {
		return false
	}
	return true
}

func matchesSearch(w models.Week, text string) bool {
	needle := strings.ToLower(text)
	fields := [...]string{
		w.Activities,
		w.CurricularUnit,
		w.Capabilities,
		w.Knowledge,
		w.Resources,
		w.Label(),
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Apply returns the weeks matching f in their original order. The result is
// never nil.
func Apply(weeks []models.Week, f models.FilterState) []models.Week {
	out := make([]models.Week, 0, len(weeks))
	for _, w := range weeks {
		if Matches(w, f) {
			out = append(out, w)
		}
	}
	return out
}
