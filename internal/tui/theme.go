package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name          string
	Base          lipgloss.Style
	Border        lipgloss.Color
	Header        lipgloss.Style
	Week          lipgloss.Style
	CompletedWeek lipgloss.Style
	Selected      lipgloss.Style
	Chip          lipgloss.Style
	Input         lipgloss.Style
	Focused       lipgloss.Style
	Dim           lipgloss.Style
	Highlight     lipgloss.Style
	Error         lipgloss.Style
	Success       lipgloss.Style
	// Markdown is the glamour standard style used for the detail pane.
	Markdown string
}

var Themes = map[string]Theme{
	"default": {
		Name:          "Default",
		Base:          lipgloss.NewStyle().Margin(0, 1),
		Border:        lipgloss.Color("63"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Week:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		CompletedWeek: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Selected:      lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63")).Bold(true),
		Chip:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Markdown:      "dark",
	},
	"dracula": {
		Name:          "Dracula",
		Base:          lipgloss.NewStyle().Margin(0, 1),
		Border:        lipgloss.Color("62"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Week:          lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		CompletedWeek: lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true),
		Selected:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")).Bold(true),
		Chip:          lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Markdown:      "dracula",
	},
	"light": {
		Name:          "Light",
		Base:          lipgloss.NewStyle().Margin(0, 1),
		Border:        lipgloss.Color("33"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
		Week:          lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		CompletedWeek: lipgloss.NewStyle().Foreground(lipgloss.Color("247")).Strikethrough(true),
		Selected:      lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("33")).Bold(true),
		Chip:          lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")).Padding(0, 1),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		Markdown:      "light",
	},
}

// ResolveTheme returns the named theme, falling back to default.
func ResolveTheme(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

// ThemeNames lists theme keys in a stable order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
