package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/akyairhashvil/aulaplan/internal/config"
	"github.com/akyairhashvil/aulaplan/internal/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldNumber = iota
	fieldUnit
	fieldActivities
	fieldCapabilities
	fieldKnowledge
	fieldResources
	fieldCompleted
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Semana",
	"Unidade Curricular",
	"Atividades",
	"Capacidades",
	"Conhecimentos",
	"Recursos (separados por vírgula)",
	"Concluída",
}

// WeekFormState is the create/edit dialog. On edit the week number is shown
// but cannot be changed.
type WeekFormState struct {
	isEdit     bool
	number     textinput.Model
	unit       textinput.Model
	resources  textinput.Model
	areas      [3]textarea.Model // activities, capabilities, knowledge
	completed  bool
	field      int
	submitting bool
	err        string
}

func newTextInput(limit int, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.CharLimit = limit
	ti.Placeholder = placeholder
	ti.Width = 50
	ti.Prompt = ""
	return ti
}

func newTextArea() textarea.Model {
	ta := textarea.New()
	ta.CharLimit = config.MaxTextLength
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(3)
	ta.Prompt = ""
	return ta
}

// newWeekForm opens a create form with the suggested next week number.
func newWeekForm(next int) *WeekFormState {
	f := &WeekFormState{
		number:    newTextInput(4, "1"),
		unit:      newTextInput(config.MaxUnitLength, "Ex.: Redes de Computadores"),
		resources: newTextInput(config.MaxResourcesLength, "Ex.: lab, projetor"),
		field:     fieldNumber,
	}
	for i := range f.areas {
		f.areas[i] = newTextArea()
	}
	f.number.SetValue(strconv.Itoa(next))
	return f
}

func editWeekForm(w models.Week) *WeekFormState {
	f := newWeekForm(w.WeekNumber)
	f.isEdit = true
	f.field = fieldUnit
	f.unit.SetValue(w.CurricularUnit)
	f.areas[0].SetValue(w.Activities)
	f.areas[1].SetValue(w.Capabilities)
	f.areas[2].SetValue(w.Knowledge)
	f.resources.SetValue(w.Resources)
	f.completed = w.Completed
	return f
}

func (f *WeekFormState) Type() ModalType { return ModalWeekForm }

// focusField focuses the active field and blurs the rest.
func (f *WeekFormState) focusField() tea.Cmd {
	f.number.Blur()
	f.unit.Blur()
	f.resources.Blur()
	for i := range f.areas {
		f.areas[i].Blur()
	}
	switch f.field {
	case fieldNumber:
		return f.number.Focus()
	case fieldUnit:
		return f.unit.Focus()
	case fieldResources:
		return f.resources.Focus()
	case fieldActivities, fieldCapabilities, fieldKnowledge:
		return f.areas[f.field-fieldActivities].Focus()
	}
	return nil
}

func (f *WeekFormState) move(delta int) tea.Cmd {
	for {
		f.field = (f.field + delta + fieldCount) % fieldCount
		if !(f.isEdit && f.field == fieldNumber) {
			break
		}
	}
	return f.focusField()
}

// Payload builds the request body from the form fields. Lengths are bounded
// by the inputs; the controller validates the payload before sending it.
func (f *WeekFormState) Payload() (models.WeekPayload, error) {
	p := models.WeekPayload{
		CurricularUnit: strings.TrimSpace(f.unit.Value()),
		Activities:     strings.TrimSpace(f.areas[0].Value()),
		Capabilities:   strings.TrimSpace(f.areas[1].Value()),
		Knowledge:      strings.TrimSpace(f.areas[2].Value()),
		Resources:      strings.TrimSpace(f.resources.Value()),
		Completed:      f.completed,
	}
	if !f.isEdit {
		n, err := strconv.Atoi(strings.TrimSpace(f.number.Value()))
		if err != nil || n <= 0 {
			return p, errors.New("Número da semana inválido")
		}
		p.WeekNumber = n
	}
	return p, nil
}

func (f *WeekFormState) Update(m Model, msg tea.KeyMsg) (Model, ModalState, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if f.submitting {
			return m, f, nil
		}
		return m, nil, nil
	case "tab":
		return m, f, f.move(1)
	case "shift+tab":
		return m, f, f.move(-1)
	case "ctrl+s":
		if f.submitting || m.snap.Busy {
			return m, f, nil
		}
		p, err := f.Payload()
		if err != nil {
			f.err = err.Error()
			return m, f, nil
		}
		f.err = ""
		f.submitting = true
		return m, f, m.saveWeekCmd(p, f.isEdit)
	}
	if f.submitting {
		return m, f, nil
	}

	var cmd tea.Cmd
	switch f.field {
	case fieldNumber:
		if !f.isEdit {
			f.number, cmd = f.number.Update(msg)
		}
	case fieldUnit:
		f.unit, cmd = f.unit.Update(msg)
	case fieldResources:
		f.resources, cmd = f.resources.Update(msg)
	case fieldActivities, fieldCapabilities, fieldKnowledge:
		i := f.field - fieldActivities
		f.areas[i], cmd = f.areas[i].Update(msg)
	case fieldCompleted:
		if msg.String() == " " || msg.String() == "enter" {
			f.completed = !f.completed
		}
	}
	return m, f, cmd
}

func (f *WeekFormState) View(m Model) string {
	title := "Nova Semana"
	if f.isEdit {
		title = "Editar Semana"
	}
	var b strings.Builder
	b.WriteString(m.theme.Header.Render(title) + "\n\n")

	for i := 0; i < fieldCount; i++ {
		label := fieldLabels[i]
		if i == f.field {
			label = m.theme.Focused.Render("> " + label)
		} else {
			label = m.theme.Dim.Render("  " + label)
		}
		b.WriteString(label + "\n")

		switch i {
		case fieldNumber:
			if f.isEdit {
				b.WriteString("  " + m.theme.Dim.Render(f.number.Value()+" (não editável)"))
			} else {
				b.WriteString("  " + f.number.View())
			}
		case fieldUnit:
			b.WriteString("  " + f.unit.View())
		case fieldResources:
			b.WriteString("  " + f.resources.View())
		case fieldActivities, fieldCapabilities, fieldKnowledge:
			b.WriteString(f.areas[i-fieldActivities].View())
		case fieldCompleted:
			box := "[ ]"
			if f.completed {
				box = "[x]"
			}
			b.WriteString("  " + box)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case f.submitting:
		b.WriteString(m.theme.Dim.Render("Salvando..."))
	case f.err != "":
		b.WriteString(m.theme.Error.Render(f.err))
	default:
		b.WriteString(m.theme.Dim.Render("[tab]campo [ctrl+s]salvar [esc]cancelar"))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2).
		Render(b.String())
}
