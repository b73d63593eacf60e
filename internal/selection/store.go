// Package selection tracks the active group and week and remembers the group
// across sessions.
package selection

import (
	"context"

	"github.com/akyairhashvil/aulaplan/internal/config"
	"github.com/akyairhashvil/aulaplan/internal/models"
)

// Remembered is the persisted key-value capability. database.Database,
// kv.Redis and kv.Memory satisfy it.
type Remembered interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Store holds the current group and week. It is owned by a single controller
// and is not safe for concurrent use.
type Store struct {
	kv    Remembered
	group *models.Group
	week  *models.Week
}

func NewStore(kv Remembered) *Store {
	return &Store{kv: kv}
}

// RememberedGroupID returns the persisted identifier, if any.
func (s *Store) RememberedGroupID(ctx context.Context) (models.ID, bool) {
	v, ok := s.kv.GetSetting(ctx, config.SettingSelectedGroup)
	if !ok || v == "" {
		return models.NoID, false
	}
	return models.ID(v), true
}

// ResolveInitialGroup returns the remembered group when it is among groups.
// Otherwise the caller must ask the user to choose.
func (s *Store) ResolveInitialGroup(ctx context.Context, groups []models.Group) (models.Group, bool) {
	id, ok := s.RememberedGroupID(ctx)
	if !ok {
		return models.Group{}, false
	}
	for _, g := range groups {
		if g.ID == id {
			return g, true
		}
	}
	return models.Group{}, false
}

// SetCurrentGroup makes g current, clears the current week, and persists g's
// identifier. The identifier is written without checking that g still exists
// on the backend. The in-memory switch happens even when persisting fails;
// the write error is returned for logging.
func (s *Store) SetCurrentGroup(ctx context.Context, g models.Group) error {
	s.group = &g
	s.week = nil
	return s.kv.SetSetting(ctx, config.SettingSelectedGroup, g.ID.String())
}

// ClearCurrentGroup drops both group and week. The remembered identifier is
// left as is.
func (s *Store) ClearCurrentGroup() {
	s.group = nil
	s.week = nil
}

func (s *Store) SetCurrentWeek(w models.Week) {
	s.week = &w
}

func (s *Store) ClearCurrentWeek() {
	s.week = nil
}

func (s *Store) CurrentGroup() (models.Group, bool) {
	if s.group == nil {
		return models.Group{}, false
	}
	return *s.group, true
}

func (s *Store) CurrentWeek() (models.Week, bool) {
	if s.week == nil {
		return models.Week{}, false
	}
	return *s.week, true
}
