package util

import (
	"regexp"
	"strings"

	"github.com/akyairhashvil/aulaplan/internal/models"
)

// SearchQuery represents the parsed components of a search string.
type SearchQuery struct {
	Units     []string
	Resources []string
	Text      string
}

var (
	unitRegex     = regexp.MustCompile(`\buc:(?:"([^"]*)"|(\S+))`)
	resourceRegex = regexp.MustCompile(`\brecurso:(?:"([^"]*)"|(\S+))`)
)

// ParseSearchQuery pulls `uc:` and `recurso:` qualifiers out of a raw query.
// Values may be quoted to include spaces. What remains is the free text,
// with runs of whitespace collapsed.
func ParseSearchQuery(query string) SearchQuery {
	sq := SearchQuery{}

	extract := func(re *regexp.Regexp) []string {
		matches := re.FindAllStringSubmatch(query, -1)
		if matches == nil {
			return nil
		}
		var values []string
		for _, match := range matches {
			if match[1] != "" {
				values = append(values, match[1])
			} else if match[2] != "" {
				values = append(values, match[2])
			}
		}
		query = re.ReplaceAllString(query, "")
		return values
	}

	sq.Units = extract(unitRegex)
	sq.Resources = extract(resourceRegex)
	sq.Text = strings.Join(strings.Fields(query), " ")

	return sq
}

// Filter overlays the query on base. The last qualifier of each kind wins;
// the free text always replaces the base search text.
func (q SearchQuery) Filter(base models.FilterState) models.FilterState {
	f := base
	f.SearchText = q.Text
	if n := len(q.Units); n > 0 {
		f.UnitFilter = q.Units[n-1]
	}
	if n := len(q.Resources); n > 0 {
		f.ResourceFilter = q.Resources[n-1]
	}
	return f
}
