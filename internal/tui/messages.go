package tui

import (
	"time"

	"github.com/akyairhashvil/aulaplan/internal/config"
	"github.com/akyairhashvil/aulaplan/internal/export"
	"github.com/akyairhashvil/aulaplan/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Results of controller operations. Each carries the operation's error only;
// the view re-reads the controller snapshot when it arrives.
type (
	startedMsg       struct{ err error }
	groupSwitchedMsg struct{ err error }
	reloadedMsg      struct{ err error }
	savedMsg         struct {
		isEdit bool
		err    error
	}
	deletedMsg struct{ err error }
	toggledMsg struct {
		completed bool
		err       error
	}
	exportedMsg struct {
		path string
		err  error
	}
	toastExpiredMsg struct{ id int }
	syncTickMsg     time.Time
)

func (m Model) startCmd() tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		return startedMsg{err: ctrl.Start(ctx)}
	}
}

func (m Model) switchGroupCmd(id models.ID) tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		return groupSwitchedMsg{err: ctrl.SwitchGroup(ctx, id)}
	}
}

func (m Model) reloadCmd() tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		return reloadedMsg{err: ctrl.Reload(ctx)}
	}
}

func (m Model) saveWeekCmd(p models.WeekPayload, isEdit bool) tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		return savedMsg{isEdit: isEdit, err: ctrl.CreateOrUpdateWeek(ctx, p, isEdit)}
	}
}

func (m Model) deleteWeekCmd() tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		return deletedMsg{err: ctrl.DeleteWeek(ctx)}
	}
}

func (m Model) toggleCompletedCmd(completed bool) tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		return toggledMsg{completed: completed, err: ctrl.ToggleCompleted(ctx)}
	}
}

func (m Model) exportCmd(f export.Format) tea.Cmd {
	exp, ctx := m.exporter, m.ctx
	group, weeks := m.snap.Group, m.snap.Weeks
	return func() tea.Msg {
		path, err := exp.WriteFile(ctx, f, group, weeks, "")
		return exportedMsg{path: path, err: err}
	}
}

func syncTickCmd() tea.Cmd {
	return tea.Tick(config.SyncAgeTick, func(t time.Time) tea.Msg { return syncTickMsg(t) })
}
