// Package tui is the terminal view of the lesson planner. It renders the
// controller snapshot and turns key presses into controller operations run as
// bubbletea commands.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/akyairhashvil/aulaplan/internal/client"
	"github.com/akyairhashvil/aulaplan/internal/config"
	"github.com/akyairhashvil/aulaplan/internal/controller"
	"github.com/akyairhashvil/aulaplan/internal/export"
	"github.com/akyairhashvil/aulaplan/internal/models"
	"github.com/akyairhashvil/aulaplan/internal/selection"
	"github.com/akyairhashvil/aulaplan/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type focusArea int

const (
	focusList focusArea = iota
	focusDetail
)

type toast struct {
	id    int
	text  string
	isErr bool
}

// Options wires the model to the rest of the application.
type Options struct {
	Controller *controller.Controller
	Exporter   *export.Exporter
	// Settings persists the chosen theme. Optional.
	Settings selection.Remembered
	Logger   *zap.Logger
	Theme    string
}

// Model is the root bubbletea model.
type Model struct {
	ctx      context.Context
	ctrl     *controller.Controller
	exporter *export.Exporter
	settings selection.Remembered
	log      *zap.Logger
	keys     *HandlerRegistry
	markdown *markdownRenderer

	snap    controller.Snapshot
	loading bool
	theme   Theme
	focus   focusArea
	cursor  int
	offset  int

	filterInput textinput.Model
	filtering   bool
	picked      models.FilterState
	detail      viewport.Model
	detailFor   string
	modal       *ModalManager
	toast       toast
	now         func() time.Time

	width, height int
}

func NewModel(ctx context.Context, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	fi := textinput.New()
	fi.Placeholder = "Buscar... (uc:Redes recurso:lab)"
	fi.Prompt = "/ "
	fi.CharLimit = config.MaxUnitLength
	fi.Width = 40

	m := Model{
		ctx:         ctx,
		ctrl:        opts.Controller,
		exporter:    opts.Exporter,
		settings:    opts.Settings,
		log:         log,
		keys:        defaultBindings(),
		markdown:    &markdownRenderer{},
		loading:     true,
		theme:       ResolveTheme(opts.Theme),
		filterInput: fi,
		detail:      viewport.New(config.MinDetailWidth, 10),
		modal:       newModalManager(),
		now:         time.Now,
	}
	if m.settings != nil {
		if name, ok := m.settings.GetSetting(ctx, config.SettingTheme); ok {
			if _, known := Themes[name]; known {
				m.theme = Themes[name]
			}
		}
	}
	m.snap = m.ctrl.Snapshot()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.startCmd(), syncTickCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case syncTickMsg:
		return m, syncTickCmd()

	case toastExpiredMsg:
		if msg.id == m.toast.id {
			m.toast = toast{}
		}
		return m, nil

	case startedMsg:
		m.loading = false
		m.refresh()
		if msg.err != nil {
			return m, m.showError(msg.err, "Erro ao carregar turmas")
		}
		if !m.snap.HasGroup && len(m.snap.Groups) > 0 {
			return m, m.openGroupPicker()
		}
		return m, nil

	case groupSwitchedMsg:
		m.loading = false
		m.picked = models.FilterState{}
		m.filterInput.SetValue("")
		m.cursor, m.offset = 0, 0
		m.refresh()
		if msg.err != nil && !errors.Is(msg.err, controller.ErrStale) {
			return m, m.showError(msg.err, "Erro ao carregar semanas")
		}
		return m, nil

	case reloadedMsg:
		m.refresh()
		if msg.err != nil && !errors.Is(msg.err, controller.ErrStale) {
			return m, m.showError(msg.err, "Erro ao carregar semanas")
		}
		return m, m.showToast("Semanas atualizadas", false)

	case savedMsg:
		m.refresh()
		written := msg.err == nil || controller.IsReloadAfterSave(msg.err)
		if form, ok := m.modal.WeekForm(); ok {
			form.submitting = false
			if written {
				m.modal.Close()
			} else {
				form.err = errorText(msg.err, "Erro ao salvar semana")
			}
		}
		if msg.err != nil {
			return m, m.showError(msg.err, "Erro ao salvar semana")
		}
		if msg.isEdit {
			return m, m.showToast("Semana atualizada com sucesso!", false)
		}
		return m, m.showToast("Semana adicionada com sucesso!", false)

	case deletedMsg:
		m.refresh()
		if controller.IsReloadAfterSave(msg.err) {
			util.LogError(m.log, "reload after delete", msg.err)
			return m, m.showToast("Semana excluída, mas falha ao recarregar", true)
		}
		if msg.err != nil {
			return m, m.showError(msg.err, "Erro ao excluir semana")
		}
		return m, m.showToast("Semana excluída com sucesso!", false)

	case toggledMsg:
		m.refresh()
		if msg.err != nil {
			return m, m.showError(msg.err, "Erro ao salvar semana")
		}
		if msg.completed {
			return m, m.showToast("Semana marcada como concluída", false)
		}
		return m, m.showToast("Semana reaberta", false)

	case exportedMsg:
		if msg.err != nil {
			return m, m.showError(msg.err, "Erro ao exportar")
		}
		return m, m.showToast("Exportado para "+msg.path, false)
	}

	if m.filtering {
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if state := m.modal.Current(); state != nil {
		next, nextState, cmd := state.Update(m, msg)
		if nextState == nil {
			next.modal.Close()
		} else {
			next.modal.Open(nextState)
		}
		return next, cmd
	}
	if m.filtering {
		return m.handleFilterKey(msg)
	}

	key := msg.String()
	if next, cmd, handled := m.keys.Handle(m, key); handled {
		return next, cmd
	}
	if m.focus == focusDetail {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	return m, nil
}

// refresh pulls a new snapshot and keeps the cursor on the current week.
func (m *Model) refresh() {
	m.snap = m.ctrl.Snapshot()
	if m.prunePicked() {
		m.ctrl.SetFilter(util.ParseSearchQuery(m.filterInput.Value()).Filter(m.picked))
		m.snap = m.ctrl.Snapshot()
	}
	if m.snap.HasWeek {
		for i, w := range m.snap.Visible {
			if w.ID == m.snap.Week.ID {
				m.cursor = i
				break
			}
		}
	}
	m.cursor = util.Clamp(m.cursor, 0, max(len(m.snap.Visible)-1, 0))
	m.scrollToCursor()
	m.updateDetail()
}

func (m *Model) scrollToCursor() {
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *Model) showToast(text string, isErr bool) tea.Cmd {
	m.toast = toast{id: m.toast.id + 1, text: text, isErr: isErr}
	id := m.toast.id
	return tea.Tick(config.ToastDuration, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
}

func (m *Model) showError(err error, fallback string) tea.Cmd {
	if !controller.IsPrecondition(err) {
		util.LogError(m.log, fallback, err)
	}
	return m.showToast(errorText(err, fallback), true)
}

// errorText is the user-facing text for err.
func errorText(err error, fallback string) string {
	var pe *controller.PreconditionError
	switch {
	case controller.IsReloadAfterSave(err):
		return "Semana salva, mas falha ao recarregar"
	case errors.Is(err, models.ErrInvalidWeek):
		return "Dados da semana inválidos"
	case errors.As(err, &pe) && pe.Missing == controller.MissingGroup:
		return "Selecione uma turma primeiro"
	case errors.As(err, &pe) && pe.Missing == controller.MissingWeek:
		return "Selecione uma semana primeiro"
	case errors.Is(err, controller.ErrBusy):
		return "Aguarde a operação em andamento"
	case client.IsNetwork(err):
		return fallback + " (sem conexão com o servidor)"
	}
	return client.UserMessage(err, fallback)
}
