package controller

import (
	"time"

	"github.com/akyairhashvil/aulaplan/internal/models"
)

// State is the controller's position in the load/mutate cycle.
type State int

const (
	StateIdle State = iota
	StateLoadingGroups
	StateAwaitingGroupSelection
	StateLoadingWeeks
	StateReady
	StateMutating
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoadingGroups:
		return "loading-groups"
	case StateAwaitingGroupSelection:
		return "awaiting-group-selection"
	case StateLoadingWeeks:
		return "loading-weeks"
	case StateReady:
		return "ready"
	case StateMutating:
		return "mutating"
	}
	return "unknown"
}

// Snapshot is a consistent copy of everything the view renders.
type Snapshot struct {
	State  State
	Groups []models.Group

	Group    models.Group
	HasGroup bool
	Week     models.Week
	HasWeek  bool

	Weeks     []models.Week
	Visible   []models.Week
	Filter    models.FilterState
	Units     []string
	Resources []string

	NextWeekNumber int
	LastSynced     time.Time
	Busy           bool
}

// Empty reports a selected group that has no weeks. This is not an error.
func (s Snapshot) Empty() bool {
	return s.State == StateReady && s.HasGroup && len(s.Weeks) == 0
}
