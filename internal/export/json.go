package export

import (
	"encoding/json"
	"io"

	"github.com/akyairhashvil/aulaplan/internal/models"
)

// WriteJSON writes weeks as an indented array using the backend's field names.
func WriteJSON(out io.Writer, weeks []models.Week) error {
	if weeks == nil {
		weeks = []models.Week{}
	}
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(weeks)
}
