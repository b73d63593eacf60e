package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/aulaplan/internal/config"
	"github.com/akyairhashvil/aulaplan/internal/controller"
	"github.com/akyairhashvil/aulaplan/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

// header, filter bar, footer and the body border
const chromeHeight = 5

func (m Model) compact() bool {
	return m.width > 0 && m.width < config.CompactModeThreshold
}

func (m Model) listHeight() int {
	if m.height == 0 {
		return config.MaxVisibleWeeks
	}
	return max(m.height-chromeHeight, 3)
}

func (m Model) detailWidth() int {
	if m.width == 0 {
		return 80
	}
	if m.compact() {
		return max(m.width-4, 10)
	}
	return max(m.width-config.SidebarWidth-6, config.MinDetailWidth)
}

// resize fits the detail viewport to the window.
func (m *Model) resize() {
	m.detail.Width = m.detailWidth()
	m.detail.Height = m.listHeight()
	m.detailFor = ""
	m.scrollToCursor()
	m.updateDetail()
}

// updateDetail re-renders the detail pane when the current week, theme or
// width changed.
func (m *Model) updateDetail() {
	var md string
	if m.snap.HasWeek {
		md = weekMarkdown(m.snap.Week)
	}
	key := fmt.Sprintf("%s\x00%s\x00%d", md, m.theme.Markdown, m.detail.Width)
	if key == m.detailFor {
		return
	}
	m.detailFor = key
	if md == "" {
		m.detail.SetContent(m.theme.Dim.Render("Selecione uma semana para ver o conteúdo."))
	} else {
		m.detail.SetContent(m.markdown.Render(md, m.theme.Markdown, m.detail.Width))
	}
	m.detail.GotoTop()
}

func (m Model) View() string {
	if state := m.modal.Current(); state != nil && m.width > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, state.View(m))
	} else if state != nil {
		return state.View(m)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderFilterBar(),
		m.renderBody(),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	group := "sem turma"
	if m.snap.HasGroup {
		group = m.snap.Group.Name
		if m.snap.Group.Closed {
			group += " (encerrada)"
		}
	}

	var status string
	switch {
	case m.snap.Busy || m.snap.State == controller.StateMutating:
		status = "salvando..."
	case m.loading || m.snap.State == controller.StateLoadingGroups || m.snap.State == controller.StateLoadingWeeks:
		status = "carregando..."
	default:
		status = FormatSyncAge(m.snap.LastSynced, m.now())
	}

	line := m.theme.Header.Render("Aula Planner "+AppVersion) + " · " + group + "  " + m.theme.Dim.Render(status)
	if m.width > 0 {
		line = ansi.Truncate(line, m.width, config.TruncationSuffix)
	}
	return line
}

func (m Model) renderFilterBar() string {
	unit := "Todas"
	if m.snap.Filter.UnitActive() {
		unit = m.snap.Filter.UnitFilter
	}
	resource := "Todos"
	if m.snap.Filter.ResourceActive() {
		resource = m.snap.Filter.ResourceFilter
	}

	search := m.filterInput.View()
	if !m.filtering && m.filterInput.Value() == "" {
		search = m.theme.Dim.Render("[/] buscar")
	}
	line := fmt.Sprintf("%s  UC: %s  Recurso: %s  %s",
		search,
		m.theme.Highlight.Render(unit),
		m.theme.Highlight.Render(resource),
		m.theme.Dim.Render(FormatWeekCount(len(m.snap.Visible), len(m.snap.Weeks))),
	)
	if m.width > 0 {
		line = ansi.Truncate(line, m.width, config.TruncationSuffix)
	}
	return line
}

func (m Model) renderBody() string {
	border := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	listStyle := border.BorderForeground(m.theme.Dim.GetForeground()).Width(config.SidebarWidth)
	detailStyle := border.BorderForeground(m.theme.Dim.GetForeground()).Width(m.detailWidth())
	if m.focus == focusList {
		listStyle = listStyle.BorderForeground(m.theme.Border)
	} else {
		detailStyle = detailStyle.BorderForeground(m.theme.Border)
	}

	list := listStyle.Render(m.renderList(config.SidebarWidth))
	detail := detailStyle.Render(m.detail.View())

	if m.compact() {
		if m.focus == focusDetail {
			return detail
		}
		return listStyle.Width(max(m.width-2, 10)).Render(m.renderList(max(m.width-2, 10)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, list, detail)
}

func (m Model) renderList(width int) string {
	h := m.listHeight()
	if !m.snap.HasGroup {
		if m.loading {
			return m.theme.Dim.Render("Carregando turmas...")
		}
		return m.theme.Dim.Render("Nenhuma turma selecionada.\nPressione g para escolher.")
	}
	if m.snap.Empty() {
		return m.theme.Dim.Render("Nenhuma semana cadastrada.\nPressione n para adicionar.")
	}
	if len(m.snap.Visible) == 0 {
		if len(m.snap.Weeks) == 0 {
			return m.theme.Dim.Render("Carregando semanas...")
		}
		return m.theme.Dim.Render("Nenhuma semana encontrada.")
	}

	var rows []string
	end := min(m.offset+h, len(m.snap.Visible))
	for i := m.offset; i < end; i++ {
		w := m.snap.Visible[i]
		rows = append(rows, m.renderWeekRow(w, m.snap.HasWeek && w.ID == m.snap.Week.ID, width))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderWeekRow(w models.Week, selected bool, width int) string {
	mark := "  "
	if w.Completed {
		mark = "✓ "
	}
	text := fmt.Sprintf("%sSemana %d", mark, w.WeekNumber)
	if w.CurricularUnit != "" {
		text += " · " + w.CurricularUnit
	}
	text = truncate.StringWithTail(text, uint(max(width-1, 1)), config.TruncationSuffix)

	switch {
	case selected:
		return m.theme.Selected.Render(text)
	case w.Completed:
		return m.theme.CompletedWeek.Render(text)
	}
	return m.theme.Week.Render(text)
}

func (m Model) renderFooter() string {
	if m.toast.text != "" {
		if m.toast.isErr {
			return m.theme.Error.Render(m.toast.text)
		}
		return m.theme.Success.Render(m.toast.text)
	}
	help := m.keys.HelpFor(m.focus)
	if m.width > 0 {
		help = ansi.Truncate(help, m.width, config.TruncationSuffix)
	}
	return m.theme.Dim.Render(help)
}
