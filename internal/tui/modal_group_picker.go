package tui

import (
	"strings"

	"github.com/akyairhashvil/aulaplan/internal/config"
	"github.com/akyairhashvil/aulaplan/internal/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// GroupPickerState selects the current group with a fuzzy query.
type GroupPickerState struct {
	query   textinput.Model
	groups  []models.Group
	matches []int
	cursor  int
}

func newGroupPicker(groups []models.Group) *GroupPickerState {
	q := textinput.New()
	q.Placeholder = "Filtrar turmas..."
	q.Prompt = "> "
	q.Width = 30
	s := &GroupPickerState{query: q, groups: groups}
	s.filter()
	return s
}

func (m *Model) openGroupPicker() tea.Cmd {
	picker := newGroupPicker(m.snap.Groups)
	if m.snap.HasGroup {
		for i, idx := range picker.matches {
			if picker.groups[idx].ID == m.snap.Group.ID {
				picker.cursor = i
			}
		}
	}
	m.modal.Open(picker)
	return picker.query.Focus()
}

func (s *GroupPickerState) Type() ModalType { return ModalGroupPicker }

// filter recomputes matches: all groups in backend order for an empty
// query, fuzzy ranked otherwise.
func (s *GroupPickerState) filter() {
	s.matches = s.matches[:0]
	q := strings.TrimSpace(s.query.Value())
	if q == "" {
		for i := range s.groups {
			s.matches = append(s.matches, i)
		}
	} else {
		names := make([]string, len(s.groups))
		for i, g := range s.groups {
			names[i] = g.Name
		}
		for _, match := range fuzzy.Find(q, names) {
			s.matches = append(s.matches, match.Index)
		}
	}
	if s.cursor >= len(s.matches) {
		s.cursor = max(len(s.matches)-1, 0)
	}
}

// Selected returns the group under the cursor.
func (s *GroupPickerState) Selected() (models.Group, bool) {
	if s.cursor < 0 || s.cursor >= len(s.matches) {
		return models.Group{}, false
	}
	return s.groups[s.matches[s.cursor]], true
}

func (s *GroupPickerState) Update(m Model, msg tea.KeyMsg) (Model, ModalState, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, nil, nil
	case "up", "ctrl+k":
		if s.cursor > 0 {
			s.cursor--
		}
		return m, s, nil
	case "down", "ctrl+j":
		if s.cursor < len(s.matches)-1 {
			s.cursor++
		}
		return m, s, nil
	case "enter":
		g, ok := s.Selected()
		if !ok {
			return m, s, nil
		}
		m.loading = true
		return m, nil, m.switchGroupCmd(g.ID)
	case "ctrl+x":
		m.loading = true
		return m, nil, m.switchGroupCmd(models.NoID)
	}

	var cmd tea.Cmd
	s.query, cmd = s.query.Update(msg)
	s.filter()
	return m, s, cmd
}

func (s *GroupPickerState) View(m Model) string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Selecionar Turma") + "\n\n")
	b.WriteString(s.query.View() + "\n\n")

	if len(s.matches) == 0 {
		b.WriteString(m.theme.Dim.Render("Nenhuma turma encontrada") + "\n")
	}
	start := 0
	if s.cursor >= config.MaxVisibleGroups {
		start = s.cursor - config.MaxVisibleGroups + 1
	}
	for i := start; i < len(s.matches) && i < start+config.MaxVisibleGroups; i++ {
		g := s.groups[s.matches[i]]
		line := g.Name
		if g.Closed {
			line += " (encerrada)"
		}
		if m.snap.HasGroup && g.ID == m.snap.Group.ID {
			line += " *"
		}
		switch {
		case i == s.cursor:
			line = m.theme.Selected.Render("> " + line)
		case g.Closed:
			line = m.theme.Dim.Render("  " + line)
		default:
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + m.theme.Dim.Render("[enter]selecionar [ctrl+x]nenhuma [esc]fechar"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2).
		Width(48).
		Render(b.String())
}
