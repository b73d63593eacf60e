package tui

import (
	"github.com/akyairhashvil/aulaplan/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func handleOpenGroupPicker(m Model, _ string) (Model, tea.Cmd, bool) {
	if len(m.snap.Groups) == 0 {
		return m, m.showToast("Nenhuma turma disponível", true), true
	}
	return m, m.openGroupPicker(), true
}

func handleNewWeek(m Model, _ string) (Model, tea.Cmd, bool) {
	if !m.snap.HasGroup {
		return m, m.showToast("Selecione uma turma primeiro", true), true
	}
	form := newWeekForm(m.snap.NextWeekNumber)
	m.modal.Open(form)
	return m, form.focusField(), true
}

func handleEditWeek(m Model, _ string) (Model, tea.Cmd, bool) {
	if !m.snap.HasWeek {
		return m, m.showToast("Selecione uma semana primeiro", true), true
	}
	form := editWeekForm(m.snap.Week)
	m.modal.Open(form)
	return m, form.focusField(), true
}

func handleDeleteWeek(m Model, _ string) (Model, tea.Cmd, bool) {
	if !m.snap.HasWeek {
		return m, m.showToast("Selecione uma semana primeiro", true), true
	}
	m.modal.Open(&ConfirmDeleteState{week: m.snap.Week})
	return m, nil, true
}

func handleToggleCompleted(m Model, _ string) (Model, tea.Cmd, bool) {
	if !m.snap.HasWeek {
		return m, m.showToast("Selecione uma semana primeiro", true), true
	}
	if m.snap.Busy {
		return m, m.showToast("Aguarde a operação em andamento", true), true
	}
	return m, m.toggleCompletedCmd(!m.snap.Week.Completed), true
}

func handleReload(m Model, _ string) (Model, tea.Cmd, bool) {
	if !m.snap.HasGroup {
		return m, m.showToast("Selecione uma turma primeiro", true), true
	}
	return m, m.reloadCmd(), true
}

func handleOpenExport(m Model, _ string) (Model, tea.Cmd, bool) {
	if !m.snap.HasGroup {
		return m, m.showToast("Selecione uma turma primeiro", true), true
	}
	if m.exporter == nil {
		return m, m.showToast("Exportação indisponível", true), true
	}
	m.modal.Open(&ExportState{})
	return m, nil, true
}

func handleOpenTheme(m Model, _ string) (Model, tea.Cmd, bool) {
	state := &ThemeState{names: ThemeNames()}
	for i, name := range state.names {
		if Themes[name].Name == m.theme.Name {
			state.cursor = i
		}
	}
	m.modal.Open(state)
	return m, nil, true
}

func handleCursorUp(m Model, _ string) (Model, tea.Cmd, bool) {
	return m.moveCursor(-1), nil, true
}

func handleCursorDown(m Model, _ string) (Model, tea.Cmd, bool) {
	return m.moveCursor(1), nil, true
}

// moveCursor moves through the visible weeks; the week under the cursor
// becomes the current week.
func (m Model) moveCursor(delta int) Model {
	if len(m.snap.Visible) == 0 {
		return m
	}
	next := m.cursor + delta
	if !m.snap.HasWeek {
		next = m.cursor
	}
	if next < 0 || next >= len(m.snap.Visible) {
		return m
	}
	m.cursor = next
	m.selectAtCursor()
	return m
}

func (m *Model) selectAtCursor() {
	if m.cursor < 0 || m.cursor >= len(m.snap.Visible) {
		return
	}
	util.LogError(m.log, "select week", m.ctrl.SelectWeek(m.snap.Visible[m.cursor].ID))
	m.refresh()
}

func handleFocusDetail(m Model, _ string) (Model, tea.Cmd, bool) {
	if !m.snap.HasWeek {
		m.selectAtCursor()
	}
	if m.snap.HasWeek {
		m.focus = focusDetail
		m.resize()
	}
	return m, nil, true
}

func handleFocusList(m Model, _ string) (Model, tea.Cmd, bool) {
	m.focus = focusList
	m.resize()
	return m, nil, true
}

func handleToggleFocus(m Model, key string) (Model, tea.Cmd, bool) {
	if m.focus == focusDetail {
		return handleFocusList(m, key)
	}
	return handleFocusDetail(m, key)
}

// handleClearFilter resets an active filter; otherwise it defers to the
// next esc binding.
func handleClearFilter(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.snap.Filter.IsZero() {
		return m, nil, false
	}
	m.resetFilter()
	m.refresh()
	return m, nil, true
}

func handleClearWeek(m Model, _ string) (Model, tea.Cmd, bool) {
	if !m.snap.HasWeek {
		return m, nil, false
	}
	m.ctrl.ClearWeek()
	m.refresh()
	return m, nil, true
}
