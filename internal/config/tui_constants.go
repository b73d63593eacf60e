package config

import "github.com/akyairhashvil/aulaplan/internal/models"

// Layout constants.
const (
	// SidebarWidth is the width of the week list column.
	SidebarWidth = 34

	// CompactModeThreshold hides the detail pane below this width.
	CompactModeThreshold = 70

	// MinDetailWidth is the narrowest the detail pane is rendered.
	MinDetailWidth = 30
)

// Display limits.
const (
	// MaxVisibleWeeks limits weeks shown in the list before scrolling.
	MaxVisibleWeeks = 20

	// MaxVisibleGroups limits rows in the group picker.
	MaxVisibleGroups = 12

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// MaxUnitLength is the maximum curricular unit length.
	MaxUnitLength = models.MaxUnitLength

	// MaxResourcesLength is the maximum resources string length.
	MaxResourcesLength = models.MaxResourcesLength

	// MaxTextLength bounds the long free-text fields.
	MaxTextLength = models.MaxTextLength
)
