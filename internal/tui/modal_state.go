package tui

import tea "github.com/charmbracelet/bubbletea"

type ModalType int

const (
	ModalNone ModalType = iota
	ModalWeekForm
	ModalConfirmDelete
	ModalGroupPicker
	ModalTheme
	ModalExport
)

// ModalState is an open dialog. Update returns the next state, nil to close.
type ModalState interface {
	Type() ModalType
	Update(m Model, msg tea.KeyMsg) (Model, ModalState, tea.Cmd)
	View(m Model) string
}

// ModalManager tracks the single open dialog.
type ModalManager struct {
	current ModalState
}

func newModalManager() *ModalManager {
	return &ModalManager{}
}

func (m *ModalManager) Active() ModalType {
	if m.current == nil {
		return ModalNone
	}
	return m.current.Type()
}

func (m *ModalManager) IsOpen() bool {
	return m.current != nil
}

func (m *ModalManager) Current() ModalState {
	return m.current
}

func (m *ModalManager) Open(state ModalState) {
	m.current = state
}

func (m *ModalManager) Close() {
	m.current = nil
}

func (m *ModalManager) Is(t ModalType) bool {
	return m.current != nil && m.current.Type() == t
}

func (m *ModalManager) WeekForm() (*WeekFormState, bool) {
	state, ok := m.current.(*WeekFormState)
	return state, ok
}

func (m *ModalManager) GroupPicker() (*GroupPickerState, bool) {
	state, ok := m.current.(*GroupPickerState)
	return state, ok
}
