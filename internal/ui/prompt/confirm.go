package prompt

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
)

type confirmModel struct {
	prompt    string
	confirmed bool
	state     outcome
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "y", "Y":
			m.confirmed = true
			m.state = accepted
			return m, tea.Quit
		case "n", "N", "enter":
			// enter defaults to no
			m.confirmed = false
			m.state = accepted
			return m, tea.Quit
		case "q", "esc":
			m.state = cancelled
			return m, tea.Quit
		case "ctrl+c":
			m.state = interrupted
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() tea.View {
	return tea.NewView(m.render())
}

func (m confirmModel) render() string {
	if m.state != pending {
		return ""
	}
	return fmt.Sprintf("%s [y/N] ", m.prompt)
}

// Confirm shows a yes/no prompt and returns the user's choice.
// The default answer is "no" if the user presses enter without input.
func Confirm(ctx context.Context, prompt string) (bool, error) {
	final, err := run(ctx, confirmModel{prompt: prompt})
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if err := m.state.err(); err != nil {
		return false, err
	}
	return m.confirmed, nil
}
