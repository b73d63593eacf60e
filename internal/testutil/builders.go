package testutil

import (
	"strconv"

	"github.com/akyairhashvil/aulaplan/internal/models"
)

// WeekBuilder provides fluent API for creating test weeks.
type WeekBuilder struct {
	week models.Week
}

func NewWeek() *WeekBuilder {
	return &WeekBuilder{
		week: models.Week{
			ID:         "1",
			GroupID:    "1",
			WeekNumber: 1,
			Activities: "Test activities",
		},
	}
}

func (b *WeekBuilder) WithID(id models.ID) *WeekBuilder {
	b.week.ID = id
	return b
}

func (b *WeekBuilder) WithGroup(id models.ID) *WeekBuilder {
	b.week.GroupID = id
	return b
}

// WithNumber sets the week number and, when the ID was never changed from the
// default, derives the ID from it.
func (b *WeekBuilder) WithNumber(n int) *WeekBuilder {
	if b.week.ID == "1" {
		b.week.ID = models.ID(strconv.Itoa(n))
	}
	b.week.WeekNumber = n
	return b
}

func (b *WeekBuilder) WithUnit(u string) *WeekBuilder {
	b.week.CurricularUnit = u
	return b
}

func (b *WeekBuilder) WithActivities(a string) *WeekBuilder {
	b.week.Activities = a
	return b
}

func (b *WeekBuilder) WithCapabilities(c string) *WeekBuilder {
	b.week.Capabilities = c
	return b
}

func (b *WeekBuilder) WithKnowledge(k string) *WeekBuilder {
	b.week.Knowledge = k
	return b
}

func (b *WeekBuilder) WithResources(r string) *WeekBuilder {
	b.week.Resources = r
	return b
}

func (b *WeekBuilder) Completed() *WeekBuilder {
	b.week.Completed = true
	return b
}

func (b *WeekBuilder) Build() models.Week {
	return b.week
}

// GroupBuilder provides fluent API for creating test groups.
type GroupBuilder struct {
	group models.Group
}

func NewGroup() *GroupBuilder {
	return &GroupBuilder{
		group: models.Group{
			ID:   "1",
			Name: "Turma A",
		},
	}
}

func (b *GroupBuilder) WithID(id models.ID) *GroupBuilder {
	b.group.ID = id
	return b
}

func (b *GroupBuilder) WithName(n string) *GroupBuilder {
	b.group.Name = n
	return b
}

func (b *GroupBuilder) Closed() *GroupBuilder {
	b.group.Closed = true
	return b
}

func (b *GroupBuilder) Build() models.Group {
	return b.group
}
