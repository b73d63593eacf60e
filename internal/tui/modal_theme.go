package tui

import (
	"strings"

	"github.com/akyairhashvil/aulaplan/internal/config"
	"github.com/akyairhashvil/aulaplan/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type ThemeState struct {
	names  []string
	cursor int
}

func (s *ThemeState) Type() ModalType { return ModalTheme }

func (s *ThemeState) Update(m Model, msg tea.KeyMsg) (Model, ModalState, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.names)-1 {
			s.cursor++
		}
	case "enter":
		if s.cursor < len(s.names) {
			name := s.names[s.cursor]
			m.theme = ResolveTheme(name)
			m.markdown.reset()
			m.updateDetail()
			if m.settings != nil {
				util.LogError(m.log, "save theme", m.settings.SetSetting(m.ctx, config.SettingTheme, name))
			}
		}
		return m, nil, nil
	case "esc", "q":
		return m, nil, nil
	}
	return m, s, nil
}

func (s *ThemeState) View(m Model) string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Tema") + "\n\n")
	for i, name := range s.names {
		line := Themes[name].Name
		if i == s.cursor {
			line = m.theme.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2).
		Render(b.String())
}
