package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/aulaplan/internal/models"
	"github.com/akyairhashvil/aulaplan/internal/weeks"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

// weekMarkdown is the detail document for w. Resources become inline-code
// chips.
func weekMarkdown(w models.Week) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Semana %d\n\n", w.WeekNumber)
	if w.CurricularUnit != "" {
		fmt.Fprintf(&b, "**Unidade Curricular:** %s\n\n", w.CurricularUnit)
	}
	if w.Completed {
		b.WriteString("_Concluída_\n\n")
	}
	section := func(title, body string) {
		fmt.Fprintf(&b, "## %s\n\n", title)
		if strings.TrimSpace(body) == "" {
			b.WriteString("-\n\n")
			return
		}
		b.WriteString(body + "\n\n")
	}
	section("Atividades", w.Activities)
	section("Capacidades", w.Capabilities)
	section("Conhecimentos", w.Knowledge)

	b.WriteString("## Recursos\n\n")
	chips := weeks.SplitResources(w.Resources)
	if len(chips) == 0 {
		b.WriteString("-\n")
	}
	for i, r := range chips {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "`%s`", r)
	}
	b.WriteString("\n")
	return b.String()
}

// markdownRenderer caches a glamour renderer per style and width.
type markdownRenderer struct {
	style string
	width int
	r     *glamour.TermRenderer
}

func (mr *markdownRenderer) reset() {
	mr.r = nil
}

// Render returns md styled for the terminal. If glamour fails the text is
// only word-wrapped.
func (mr *markdownRenderer) Render(md, style string, width int) string {
	if width < 10 {
		width = 10
	}
	if mr.r == nil || mr.style != style || mr.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return wordwrap.String(md, width)
		}
		mr.r, mr.style, mr.width = r, style, width
	}
	out, err := mr.r.Render(md)
	if err != nil {
		return wordwrap.String(md, width)
	}
	return strings.TrimRight(out, "\n")
}
