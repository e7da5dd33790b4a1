package prompt

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/rpc/internal/ui/styles"
)

// Option is a selectable entry. Description is shown dimmed after the label
// and is not used for filtering.
type Option struct {
	Label       string
	Description string
}

// Options builds options from plain labels.
func Options(labels ...string) []Option {
	opts := make([]Option, len(labels))
	for i, l := range labels {
		opts[i] = Option{Label: l}
	}
	return opts
}

// optionSource implements fuzzy.Source for options.
type optionSource []Option

func (s optionSource) String(i int) string { return s[i].Label }
func (s optionSource) Len() int            { return len(s) }

type selectKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Choose    key.Binding
	Cancel    key.Binding
	Interrupt key.Binding
}

func (k selectKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Cancel}
}

func (k selectKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var selectKeys = selectKeyMap{
	Up:        key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "ctrl+n", "tab"), key.WithHelp("↓", "down")),
	Choose:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
}

// maxVisible is the number of rows shown before the list scrolls.
const maxVisible = 10

type selectModel struct {
	title    string
	options  []Option
	filter   string
	filtered []fuzzy.Match
	cursor   int
	selected int
	state    outcome
	help     help.Model
}

func newSelectModel(title string, options []Option) selectModel {
	m := selectModel{
		title:    title,
		options:  options,
		selected: -1,
		help:     help.New(),
	}
	m.applyFilter()
	return m
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if size, ok := msg.(tea.WindowSizeMsg); ok {
			m.help.SetWidth(size.Width)
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, selectKeys.Interrupt):
		m.state = interrupted
		return m, tea.Quit
	case key.Matches(keyMsg, selectKeys.Cancel):
		m.state = cancelled
		return m, tea.Quit
	case keyMsg.String() == "q" && m.filter == "":
		// q only cancels while nothing is typed, so it can still be used to filter
		m.state = cancelled
		return m, tea.Quit
	case key.Matches(keyMsg, selectKeys.Choose):
		if m.cursor < len(m.filtered) {
			m.selected = m.filtered[m.cursor].Index
			m.state = accepted
			return m, tea.Quit
		}
	case key.Matches(keyMsg, selectKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, selectKeys.Down):
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case keyMsg.String() == "backspace":
		if m.filter != "" {
			r := []rune(m.filter)
			m.setFilter(string(r[:len(r)-1]))
		}
	default:
		if keyMsg.Text != "" {
			m.setFilter(m.filter + keyMsg.Text)
		}
	}
	return m, nil
}

func (m *selectModel) setFilter(filter string) {
	m.filter = filter
	m.applyFilter()
}

// applyFilter recomputes the visible options. An empty filter keeps the
// original order; otherwise options are ranked by fuzzy score.
func (m *selectModel) applyFilter() {
	if m.filter == "" {
		m.filtered = make([]fuzzy.Match, len(m.options))
		for i, opt := range m.options {
			m.filtered[i] = fuzzy.Match{Str: opt.Label, Index: i}
		}
	} else {
		m.filtered = fuzzy.FindFrom(m.filter, optionSource(m.options))
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(len(m.filtered)-1, 0)
	}
}

func (m selectModel) View() tea.View {
	return tea.NewView(m.render())
}

func (m selectModel) render() string {
	if m.state != pending {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.HeadingStyle.Render(m.title) + "\n")
	b.WriteString(styles.MutedStyle.Render("Filter: ") + m.filter + "\n\n")

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.filtered))

	if len(m.filtered) == 0 {
		b.WriteString(styles.MutedStyle.Render("  No matches") + "\n")
	}
	for i := start; i < end; i++ {
		opt := m.options[m.filtered[i].Index]
		line := "  " + styles.NormalStyle.Render(opt.Label)
		if i == m.cursor {
			line = styles.AccentStyle.Render("> " + opt.Label)
		}
		if opt.Description != "" {
			line += " " + styles.MutedStyle.Render(opt.Description)
		}
		b.WriteString(line + "\n")
	}
	if end < len(m.filtered) {
		b.WriteString(styles.MutedStyle.Render("  ↓ more below") + "\n")
	}

	b.WriteString("\n" + m.help.View(selectKeys))
	return b.String()
}

// Select shows a fuzzy-filterable list and returns the index of the chosen
// option. It returns ErrCancelled or ErrInterrupted when no choice was made.
func Select(ctx context.Context, title string, options []Option) (int, error) {
	if len(options) == 0 {
		return -1, ErrCancelled
	}

	final, err := run(ctx, newSelectModel(title, options))
	if err != nil {
		return -1, err
	}
	m := final.(selectModel)
	if err := m.state.err(); err != nil {
		return -1, err
	}
	if m.state != accepted || m.selected < 0 {
		return -1, ErrCancelled
	}
	return m.selected, nil
}
