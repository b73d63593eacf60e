package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler reacts to a key in the main view. handled=false lets lower
// priority bindings for the same key run.
type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Focus       []focusArea
	Priority    int
}

func (b KeyBinding) AppliesTo(f focusArea) bool {
	if len(b.Focus) == 0 {
		return true
	}
	for _, v := range b.Focus {
		if v == f {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(m.focus) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(f focusArea) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(f) {
			out = append(out, b)
		}
	}
	return out
}

// HelpFor renders the footer help line, first binding per key.
func (r *HandlerRegistry) HelpFor(f focusArea) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsFor(f) {
		if b.Description == "" || seen[b.Key] {
			continue
		}
		seen[b.Key] = true
		parts = append(parts, "["+b.Key+"]"+b.Description)
	}
	return strings.Join(parts, " ")
}

func defaultBindings() *HandlerRegistry {
	r := NewHandlerRegistry()
	list := []focusArea{focusList}
	detail := []focusArea{focusDetail}

	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Description: "sair"})
	r.Register(KeyBinding{Key: "g", Handler: handleOpenGroupPicker, Description: "turma"})
	r.Register(KeyBinding{Key: "n", Handler: handleNewWeek, Description: "nova"})
	r.Register(KeyBinding{Key: "e", Handler: handleEditWeek, Description: "editar"})
	r.Register(KeyBinding{Key: "d", Handler: handleDeleteWeek, Description: "excluir"})
	r.Register(KeyBinding{Key: "c", Handler: handleToggleCompleted, Description: "concluída"})
	r.Register(KeyBinding{Key: "/", Handler: handleStartFilter, Description: "buscar", Focus: list})
	r.Register(KeyBinding{Key: "u", Handler: handleCycleUnit, Description: "UC", Focus: list})
	r.Register(KeyBinding{Key: "r", Handler: handleCycleResource, Description: "recurso", Focus: list})
	r.Register(KeyBinding{Key: "ctrl+r", Handler: handleReload, Description: "atualizar"})
	r.Register(KeyBinding{Key: "x", Handler: handleOpenExport, Description: "exportar"})
	r.Register(KeyBinding{Key: "t", Handler: handleOpenTheme, Description: "tema"})

	r.Register(KeyBinding{Key: "up", Handler: handleCursorUp, Focus: list})
	r.Register(KeyBinding{Key: "k", Handler: handleCursorUp, Focus: list})
	r.Register(KeyBinding{Key: "down", Handler: handleCursorDown, Focus: list})
	r.Register(KeyBinding{Key: "j", Handler: handleCursorDown, Focus: list})
	r.Register(KeyBinding{Key: "enter", Handler: handleFocusDetail, Focus: list})
	r.Register(KeyBinding{Key: "esc", Handler: handleClearFilter, Focus: list, Priority: 1})
	r.Register(KeyBinding{Key: "esc", Handler: handleClearWeek, Focus: list})

	r.Register(KeyBinding{Key: "esc", Handler: handleFocusList, Description: "voltar", Focus: detail})
	r.Register(KeyBinding{Key: "tab", Handler: handleToggleFocus})
	return r
}
