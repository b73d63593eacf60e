package tui

import (
	"fmt"

	"github.com/akyairhashvil/aulaplan/internal/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmDeleteState asks before deleting the current week.
type ConfirmDeleteState struct {
	week models.Week
}

func (s *ConfirmDeleteState) Type() ModalType { return ModalConfirmDelete }

func (s *ConfirmDeleteState) Update(m Model, msg tea.KeyMsg) (Model, ModalState, tea.Cmd) {
	switch msg.String() {
	case "y", "s", "enter":
		if m.snap.Busy {
			return m, s, m.showToast("Aguarde a operação em andamento", true)
		}
		return m, nil, m.deleteWeekCmd()
	case "n", "esc", "q":
		return m, nil, nil
	}
	return m, s, nil
}

func (s *ConfirmDeleteState) View(m Model) string {
	body := fmt.Sprintf("Excluir a semana %d?\n\n%s",
		s.week.WeekNumber,
		m.theme.Dim.Render("[s]im  [n]ão"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("9")).
		Padding(1, 3).
		Render(m.theme.Error.Render("Confirmar exclusão") + "\n\n" + body)
}
