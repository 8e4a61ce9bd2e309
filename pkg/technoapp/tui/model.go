// Package tui is the terminal shell of TECHNO APP. It draws the same
// app.Controller as the SDL shell, with bubbletea and lipgloss.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BrandonKowalski/technoapp/pkg/technoapp/app"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/form"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/messages"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const pumpInterval = 50 * time.Millisecond

// Model adapts a Controller to bubbletea.
type Model struct {
	controller *app.Controller
	width      int
	height     int
	status     string // Gate reason or last failure
	quitting   bool

	accent   lipgloss.Color
	hint     lipgloss.AdaptiveColor
	errColor lipgloss.AdaptiveColor
}

// New creates a Model. accent is a "#RRGGBB" colour.
func New(c *app.Controller, accent string) *Model {
	return &Model{
		controller: c,
		width:      80,
		height:     24,
		accent:     lipgloss.Color(accent),
		hint:       lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
		errColor:   lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#F87171"},
	}
}

// Run starts a full screen program over c and blocks until it exits or
// ctx is done.
func Run(ctx context.Context, c *app.Controller, accent string) error {
	_, err := tea.NewProgram(New(c, accent), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

// Navigation posted from other goroutines is applied on these ticks.
type pumpMsg time.Time

func pump() tea.Cmd {
	return tea.Tick(pumpInterval, func(t time.Time) tea.Msg {
		return pumpMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return pump()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	c := m.controller

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case pumpMsg:
		if c.Pump() > 0 {
			m.status = ""
		}
		if c.Quit() {
			m.quitting = true
			return m, tea.Quit
		}
		return m, pump()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		m.handleKey(msg)
		if c.Quit() {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	c := m.controller
	_, hasField := c.Focused()

	var err error
	switch key := msg.String(); key {
	case "esc":
		err = c.Back()
	case "enter":
		err = c.Primary()
	case "ctrl+n":
		err = c.Secondary()
	case "tab", "down":
		if hasField {
			c.FocusNext(1)
		} else {
			c.Scroll(1)
		}
	case "shift+tab", "up":
		if hasField {
			c.FocusNext(-1)
		} else {
			c.Scroll(-1)
		}
	case "left", "right":
		step := 1
		if key == "left" {
			step = -1
		}
		if f, ok := c.Focused(); ok && f.Kind == form.KindChoice {
			c.CycleChoice(step)
		} else if c.Screen().ShowTabs {
			err = c.CycleTab(step)
		}
	case "pgup":
		err = m.cycleTab(-1)
	case "pgdown":
		err = m.cycleTab(1)
	case "f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9":
		tabs := c.Tabs()
		i := int(key[1] - '1')
		if c.Screen().ShowTabs && i < len(tabs) {
			err = c.SelectTab(tabs[i].Route)
		}
	case "backspace":
		c.Backspace()
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			c.TypeText(string(msg.Runes))
		}
	}

	switch {
	case err == nil:
		m.status = ""
	case errors.Is(err, app.ErrGateClosed):
		if f, ok := c.Focused(); ok {
			m.status = c.Form().Check(f.Name).Reason
		}
	case errors.Is(err, app.ErrNoAction), errors.Is(err, app.ErrQuit):
	default:
		m.status = err.Error()
	}
}

func (m *Model) cycleTab(step int) error {
	if !m.controller.Screen().ShowTabs {
		return nil
	}
	return m.controller.CycleTab(step)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	c := m.controller
	sc := c.Screen()

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(m.accent).
		Width(m.width).
		Align(lipgloss.Center).
		Render(c.Title())

	parts := []string{header}
	if sc.ShowBack {
		parts = append(parts, m.hintStyle().Render("esc  < "+messages.T(messages.ButtonBack, nil)))
	}

	parts = append(parts, m.content(sc.Top)...)
	body := m.content(sc.Body)
	if sc.Body != app.ContentForm {
		c.SetBodyRows(len(body))
		body = scrolled(body, c.ScrollOffset())
	}
	parts = append(parts, body...)
	parts = append(parts, m.actions(sc)...)

	if sc.ShowTabs {
		parts = append(parts, "", m.tabBar())
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func scrolled(lines []string, offset int) []string {
	if offset >= len(lines) {
		return nil
	}
	return lines[offset:]
}

func (m *Model) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(m.hint)
}

func (m *Model) headingStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(m.accent).MarginTop(1)
}

func (m *Model) content(content app.Content) []string {
	c := m.controller
	cat := c.Catalog()
	heading := func(id string) string {
		return m.headingStyle().Render(messages.T(id, nil))
	}

	var lines []string
	switch content {
	case app.ContentLogo:
		lines = append(lines, lipgloss.NewStyle().Foreground(m.accent).Bold(true).Width(m.width).Align(lipgloss.Center).Render("[ TECHNO ]"))

	case app.ContentForm:
		lines = append(lines, m.form()...)

	case app.ContentSearch:
		lines = append(lines, m.search()...)

	case app.ContentFeatured:
		lines = append(lines, heading(messages.FeaturedHeading))
		lines = append(lines, strings.Join(cat.Featured, "  "))
		lines = append(lines, m.content(app.ContentOffers)...)

	case app.ContentOffers:
		lines = append(lines, heading(messages.OffersHeading))
		for _, offer := range cat.Offers {
			lines = append(lines, lipgloss.NewStyle().Foreground(m.accent).Render("  * "+offer.Label))
		}

	case app.ContentCredits:
		lines = append(lines, heading(messages.CreditsHeading))
		for _, credit := range cat.Credits {
			lines = append(lines, "  "+credit.Name)
			lines = append(lines, m.hintStyle().Render(fmt.Sprintf("    %s  %s", credit.Role, credit.Email)))
		}
		lines = append(lines, m.hintStyle().Render(cat.Version))

	case app.ContentNews:
		lines = append(lines, heading(messages.NewsHeading))
		for _, item := range cat.News {
			lines = append(lines, lipgloss.NewStyle().Bold(true).Render(item.Title))
			lines = append(lines, lipgloss.NewStyle().Width(max(20, m.width-2)).Render(item.Body))
		}

	case app.ContentSummary:
		lines = append(lines, "", lipgloss.NewStyle().Bold(true).Render(messages.T(messages.FinishMessage, nil)))
	}
	return lines
}

func (m *Model) form() []string {
	c := m.controller
	f := c.Form()
	if f == nil {
		return nil
	}

	width := max(20, m.width-4)
	var lines []string
	for i, field := range f.Fields() {
		border := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Width(width).BorderForeground(m.hint)
		if i == c.Focus() {
			border = border.BorderForeground(m.accent)
		}

		text := f.Display(field.Name)
		switch {
		case text == "":
			text = m.hintStyle().Render(field.Label)
		case field.Kind == form.KindChoice:
			text = "< " + text + " >"
		}
		lines = append(lines, border.Render(text))

		if r := f.Inline(field.Name); !r.Valid {
			lines = append(lines, lipgloss.NewStyle().Foreground(m.errColor).Render("  "+r.Reason))
		}
	}
	return lines
}

func (m *Model) search() []string {
	c := m.controller

	query := c.SearchQuery()
	if query == "" {
		query = m.hintStyle().Render(messages.T(messages.SearchPlaceholder, nil))
	}
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(m.accent).Width(max(20, m.width-4))

	lines := []string{box.Render(query)}
	for _, name := range c.Results() {
		lines = append(lines, "  "+name)
	}
	for _, name := range c.Suggestions(1) {
		lines = append(lines, m.hintStyle().Render("  "+messages.T(messages.SearchSuggestion, map[string]any{"Name": name})))
	}
	return lines
}

func (m *Model) actions(sc app.ScreenConfig) []string {
	var lines []string

	if sc.Primary != nil {
		style := lipgloss.NewStyle().Bold(true).Padding(0, 2).Foreground(lipgloss.Color("#FFFFFF")).Background(m.accent)
		if !m.controller.CanSubmit() {
			style = style.Background(m.hint)
		}
		lines = append(lines, "", style.Render(sc.Primary.Label)+m.hintStyle().Render("  enter"))
	}
	if m.status != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(m.errColor).Render(m.status))
	}
	if sc.Secondary != nil {
		lines = append(lines, lipgloss.NewStyle().Foreground(m.accent).Underline(true).Render(sc.Secondary.Label)+m.hintStyle().Render("  ctrl+n"))
	}
	return lines
}

func (m *Model) tabBar() string {
	c := m.controller
	var tabs []string
	for i, tab := range c.Tabs() {
		label := fmt.Sprintf(" F%d %s ", i+1, tab.Title)
		style := lipgloss.NewStyle().Foreground(m.hint)
		if tab.Route == c.Route() {
			style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(m.accent)
		}
		tabs = append(tabs, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
