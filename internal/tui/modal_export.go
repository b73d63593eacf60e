package tui

import (
	"strings"

	"github.com/akyairhashvil/aulaplan/internal/export"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var exportLabels = map[export.Format]string{
	export.FormatPDF:        "PDF (local)",
	export.FormatXLSX:       "Planilha XLSX",
	export.FormatJSON:       "JSON (local)",
	export.FormatRemotePDF:  "PDF do servidor",
	export.FormatRemoteJSON: "JSON do servidor",
}

// ExportState picks an export format for the current group.
type ExportState struct {
	cursor int
}

func (s *ExportState) Type() ModalType { return ModalExport }

func (s *ExportState) Update(m Model, msg tea.KeyMsg) (Model, ModalState, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(export.Formats)-1 {
			s.cursor++
		}
	case "enter":
		return m, nil, m.exportCmd(export.Formats[s.cursor])
	case "esc", "q":
		return m, nil, nil
	}
	return m, s, nil
}

func (s *ExportState) View(m Model) string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Exportar "+m.snap.Group.Name) + "\n\n")
	for i, f := range export.Formats {
		line := exportLabels[f]
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
