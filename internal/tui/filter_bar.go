package tui

import (
	"github.com/akyairhashvil/aulaplan/internal/models"
	"github.com/akyairhashvil/aulaplan/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func handleStartFilter(m Model, _ string) (Model, tea.Cmd, bool) {
	if !m.snap.HasGroup {
		return m, nil, true
	}
	m.filtering = true
	return m, m.filterInput.Focus(), true
}

// handleFilterKey edits the search box. The filter is applied on every
// keystroke; enter keeps it, esc clears it.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	case "esc":
		m.filtering = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

// applyFilter overlays the parsed search box on the unit/resource picked
// with the cycle keys and hands the result to the controller.
func (m *Model) applyFilter() {
	q := util.ParseSearchQuery(m.filterInput.Value())
	m.ctrl.SetFilter(q.Filter(m.picked))
	m.cursor, m.offset = 0, 0
	m.refresh()
}

func (m *Model) resetFilter() {
	m.picked = models.FilterState{}
	m.filterInput.SetValue("")
	m.ctrl.SetFilter(models.FilterState{})
}

// prunePicked drops picked options the current data no longer offers and
// reports whether anything changed. Typed qualifiers are left alone.
func (m *Model) prunePicked() bool {
	changed := false
	if m.picked.UnitFilter != "" && !containsString(m.snap.Units, m.picked.UnitFilter) {
		m.picked.UnitFilter = ""
		changed = true
	}
	if m.picked.ResourceFilter != "" && !containsString(m.snap.Resources, m.picked.ResourceFilter) {
		m.picked.ResourceFilter = ""
		changed = true
	}
	return changed
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func handleCycleUnit(m Model, _ string) (Model, tea.Cmd, bool) {
	m.picked.UnitFilter = nextOption(m.snap.Units, m.picked.UnitFilter)
	m.applyFilter()
	return m, nil, true
}

func handleCycleResource(m Model, _ string) (Model, tea.Cmd, bool) {
	m.picked.ResourceFilter = nextOption(m.snap.Resources, m.picked.ResourceFilter)
	m.applyFilter()
	return m, nil, true
}

// nextOption cycles "" -> options[0] -> ... -> options[n-1] -> "".
func nextOption(options []string, current string) string {
	if current == "" || current == models.AnyOption {
		if len(options) == 0 {
			return ""
		}
		return options[0]
	}
	for i, o := range options {
		if o == current && i+1 < len(options) {
			return options[i+1]
		}
	}
	return ""
}
