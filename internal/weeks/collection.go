// Package weeks holds the working set of weeks for the active group and the
// filtering rules the view applies on top of it.
package weeks

import "github.com/akyairhashvil/aulaplan/internal/models"

// Collection is the ordered set of weeks for one group, de-duplicated by ID.
// It is replaced wholesale on every load and is not safe for concurrent use;
// the controller serialises access.
type Collection struct {
	items []models.Week
	byID  map[models.ID]int
}

// NewCollection returns a collection holding weeks.
func NewCollection(weeks []models.Week) *Collection {
	c := &Collection{}
	c.Replace(weeks)
	return c
}

// Replace discards the current contents and keeps weeks in backend order.
// Later duplicates of an identifier are dropped.
func (c *Collection) Replace(weeks []models.Week) {
	c.items = make([]models.Week, 0, len(weeks))
	c.byID = make(map[models.ID]int, len(weeks))
	for _, w := range weeks {
		if !w.ID.IsZero() {
			if _, dup := c.byID[w.ID]; dup {
				continue
			}
			c.byID[w.ID] = len(c.items)
		}
		c.items = append(c.items, w)
	}
}

// All returns a copy of the weeks in order.
func (c *Collection) All() []models.Week {
	out := make([]models.Week, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection) Len() int { return len(c.items) }

func (c *Collection) FindByID(id models.ID) (models.Week, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return models.Week{}, false
	}
	return c.items[idx], true
}

// FindByWeekNumber returns the first week with number n in backend order.
func (c *Collection) FindByWeekNumber(n int) (models.Week, bool) {
	for _, w := range c.items {
		if w.WeekNumber == n {
			return w, true
		}
	}
	return models.Week{}, false
}

// MaxWeekNumber returns the highest week number, or 0 when empty.
func (c *Collection) MaxWeekNumber() int {
	max := 0
	for _, w := range c.items {
		if w.WeekNumber > max {
			max = w.WeekNumber
		}
	}
	return max
}

// NextWeekNumber suggests a number for a new week. Advisory only; the backend
// decides uniqueness.
func (c *Collection) NextWeekNumber() int {
	return c.MaxWeekNumber() + 1
}
