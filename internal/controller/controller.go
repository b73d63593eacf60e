// Package controller keeps the selected group, its weeks and the current week
// consistent with the backend across loads and mutations.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/akyairhashvil/aulaplan/internal/models"
	"github.com/akyairhashvil/aulaplan/internal/selection"
	"github.com/akyairhashvil/aulaplan/internal/weeks"
	"go.uber.org/zap"
)

// Controller is safe for concurrent use. The lock is never held across a
// backend call; loads are tagged with a generation and results from
// superseded loads are dropped.
type Controller struct {
	mu sync.Mutex

	client DataClient
	store  *selection.Store
	weeks  *weeks.Collection
	log    *zap.Logger
	now    func() time.Time

	groups     []models.Group
	filter     models.FilterState
	state      State
	gen        uint64
	mutating   bool
	lastSynced time.Time
}

type Option func(*Controller)

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithClock overrides time.Now for sync timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func New(client DataClient, store *selection.Store, opts ...Option) *Controller {
	c := &Controller{
		client: client,
		store:  store,
		weeks:  weeks.NewCollection(nil),
		log:    zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start fetches groups, restores the remembered group if it still exists and
// loads its weeks. Without one the controller waits for SwitchGroup.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	c.setState(StateLoadingGroups)
	c.mu.Unlock()

	groups, err := c.client.ListGroups(ctx)

	c.mu.Lock()
	if err != nil {
		c.setState(StateIdle)
		c.mu.Unlock()
		return err
	}
	c.groups = groups
	if len(groups) == 0 {
		c.store.ClearCurrentGroup()
		c.weeks.Replace(nil)
		c.setState(StateAwaitingGroupSelection)
		c.mu.Unlock()
		return nil
	}
	g, ok := c.store.ResolveInitialGroup(ctx, groups)
	if !ok {
		c.setState(StateAwaitingGroupSelection)
		c.mu.Unlock()
		return nil
	}
	c.selectGroupLocked(ctx, g)
	c.mu.Unlock()

	return c.reload(ctx, g.ID, func() {})
}

// SwitchGroup makes the already-fetched group with id current and loads its
// weeks. An empty id clears the selection without any request.
func (c *Controller) SwitchGroup(ctx context.Context, id models.ID) error {
	c.mu.Lock()
	if id.IsZero() {
		c.gen++
		c.store.ClearCurrentGroup()
		c.weeks.Replace(nil)
		c.filter = models.FilterState{}
		c.setState(StateAwaitingGroupSelection)
		c.mu.Unlock()
		return nil
	}
	g, ok := c.findGroupLocked(id)
	if !ok {
		c.mu.Unlock()
		return &PreconditionError{Op: "switch group", Missing: fmt.Sprintf("group %s not loaded", id)}
	}
	c.selectGroupLocked(ctx, g)
	c.mu.Unlock()

	return c.reload(ctx, g.ID, func() {})
}

func (c *Controller) findGroupLocked(id models.ID) (models.Group, bool) {
	for _, g := range c.groups {
		if g.ID == id {
			return g, true
		}
	}
	return models.Group{}, false
}

func (c *Controller) selectGroupLocked(ctx context.Context, g models.Group) {
	if err := c.store.SetCurrentGroup(ctx, g); err != nil {
		c.log.Warn("remember selected group", zap.String("group", g.ID.String()), zap.Error(err))
	}
	c.weeks.Replace(nil)
	c.filter = models.FilterState{}
}

// Reload re-fetches the current group's weeks and keeps the current week if
// it still exists.
func (c *Controller) Reload(ctx context.Context) error {
	c.mu.Lock()
	g, ok := c.store.CurrentGroup()
	c.mu.Unlock()
	if !ok {
		return noGroup("reload")
	}
	return c.reload(ctx, g.ID, c.keepWeekByIDLocked)
}

// reload loads weeks for groupID and, under the lock, replaces the collection
// and calls resolve to re-establish the current week. It returns ErrStale
// without touching state if the group changed or a newer load started.
func (c *Controller) reload(ctx context.Context, groupID models.ID, resolve func()) error {
	c.mu.Lock()
	if g, ok := c.store.CurrentGroup(); !ok || g.ID != groupID {
		c.mu.Unlock()
		return ErrStale
	}
	c.gen++
	gen := c.gen
	if !c.mutating {
		c.setState(StateLoadingWeeks)
	}
	c.mu.Unlock()

	list, err := c.client.ListWeeks(ctx, groupID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		c.log.Debug("discarding stale weeks", zap.String("group", groupID.String()), zap.Uint64("gen", gen))
		return ErrStale
	}
	if err != nil {
		if !c.mutating {
			c.setState(StateReady)
		}
		return err
	}
	c.weeks.Replace(list)
	c.lastSynced = c.now()
	c.log.Debug("weeks loaded", zap.String("group", groupID.String()), zap.Int("count", c.weeks.Len()))
	resolve()
	if !c.mutating {
		c.setState(StateReady)
	}
	return nil
}

func (c *Controller) keepWeekByIDLocked() {
	cur, ok := c.store.CurrentWeek()
	if !ok {
		return
	}
	if w, found := c.weeks.FindByID(cur.ID); found {
		c.store.SetCurrentWeek(w)
		return
	}
	c.store.ClearCurrentWeek()
}

// CreateOrUpdateWeek saves p, reloads the whole list and re-resolves the
// current week by week number. Identifiers returned by the save are not
// trusted across the reload. When editing, the number of the current week is
// used because it cannot change.
func (c *Controller) CreateOrUpdateWeek(ctx context.Context, p models.WeekPayload, isEdit bool) error {
	op := "create week"
	if isEdit {
		op = "update week"
	}

	c.mu.Lock()
	g, ok := c.store.CurrentGroup()
	if !ok {
		c.mu.Unlock()
		return noGroup(op)
	}
	var editID models.ID
	if isEdit {
		cur, ok := c.store.CurrentWeek()
		if !ok {
			c.mu.Unlock()
			return noWeek(op)
		}
		editID = cur.ID
		p.WeekNumber = cur.WeekNumber
	}
	p.GroupID = g.ID
	if err := p.Validate(!isEdit); err != nil {
		c.mu.Unlock()
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := c.beginMutationLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	c.mu.Unlock()

	var err error
	if isEdit {
		_, err = c.client.UpdateWeek(ctx, editID, p)
	} else {
		_, err = c.client.CreateWeek(ctx, p)
	}
	if err != nil {
		c.endMutation(false)
		c.log.Warn(op, zap.Error(err))
		return err
	}

	number := p.WeekNumber
	err = c.reload(ctx, g.ID, func() {
		if w, found := c.weeks.FindByWeekNumber(number); found {
			c.store.SetCurrentWeek(w)
			return
		}
		c.keepWeekByIDLocked()
	})
	c.endMutation(true)
	return c.afterMutationReload(op, err)
}

// DeleteWeek deletes the current week, clears the selection and reloads. A
// week selected while the request was out stays selected.
func (c *Controller) DeleteWeek(ctx context.Context) error {
	const op = "delete week"

	c.mu.Lock()
	cur, ok := c.store.CurrentWeek()
	if !ok {
		c.mu.Unlock()
		return noWeek(op)
	}
	g, _ := c.store.CurrentGroup()
	if err := c.beginMutationLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	c.mu.Unlock()

	if err := c.client.DeleteWeek(ctx, cur.ID); err != nil {
		c.endMutation(false)
		c.log.Warn(op, zap.String("week", cur.ID.String()), zap.Error(err))
		return err
	}

	c.mu.Lock()
	if w, ok := c.store.CurrentWeek(); ok && w.ID == cur.ID {
		c.store.ClearCurrentWeek()
	}
	c.mu.Unlock()

	err := c.reload(ctx, g.ID, c.keepWeekByIDLocked)
	c.endMutation(true)
	return c.afterMutationReload(op, err)
}

// ToggleCompleted flips the completed flag of the current week.
func (c *Controller) ToggleCompleted(ctx context.Context) error {
	c.mu.Lock()
	cur, ok := c.store.CurrentWeek()
	c.mu.Unlock()
	if !ok {
		return noWeek("toggle completed")
	}
	p := cur.Payload()
	p.Completed = !cur.Completed
	return c.CreateOrUpdateWeek(ctx, p, true)
}

// afterMutationReload maps the reload outcome once the write itself succeeded.
// A stale reload means the user moved on; the write still counts.
func (c *Controller) afterMutationReload(op string, err error) error {
	if err == nil || errors.Is(err, ErrStale) {
		return nil
	}
	c.log.Warn(op+": reload after save", zap.Error(err))
	return &ReloadError{Op: op, Err: err}
}

func (c *Controller) beginMutationLocked() error {
	if c.mutating {
		return ErrBusy
	}
	c.mutating = true
	c.setState(StateMutating)
	return nil
}

// endMutation clears the in-flight flag. The state returns to Ready either
// way: a failed write leaves the previous data in place.
func (c *Controller) endMutation(succeeded bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mutating = false
	if c.state == StateMutating || c.state == StateLoadingWeeks {
		c.setState(StateReady)
	}
	if !succeeded {
		c.log.Debug("mutation failed; state unchanged")
	}
}

// SelectWeek makes the week with id current.
func (c *Controller) SelectWeek(id models.ID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	w, ok := c.weeks.FindByID(id)
	if !ok {
		return &PreconditionError{Op: "select week", Missing: fmt.Sprintf("week %s not loaded", id)}
	}
	c.store.SetCurrentWeek(w)
	return nil
}

func (c *Controller) ClearWeek() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.ClearCurrentWeek()
}

// SetFilter replaces the transient filter.
func (c *Controller) SetFilter(f models.FilterState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = f
}

// Snapshot returns a copy of the current state with derived views computed.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	all := c.weeks.All()
	s := Snapshot{
		State:          c.state,
		Groups:         append([]models.Group(nil), c.groups...),
		Weeks:          all,
		Visible:        weeks.Apply(all, c.filter),
		Filter:         c.filter,
		Units:          weeks.DistinctUnits(all),
		Resources:      weeks.DistinctResources(all),
		NextWeekNumber: c.weeks.NextWeekNumber(),
		LastSynced:     c.lastSynced,
		Busy:           c.mutating,
	}
	s.Group, s.HasGroup = c.store.CurrentGroup()
	s.Week, s.HasWeek = c.store.CurrentWeek()
	return s
}

func (c *Controller) setState(s State) {
	if c.state == s {
		return
	}
	c.log.Debug("state", zap.Stringer("from", c.state), zap.Stringer("to", s))
	c.state = s
}
