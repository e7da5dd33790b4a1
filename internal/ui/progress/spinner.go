// Package progress shows activity while rpc waits on external lookups.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/rpc/internal/ui/styles"
)

// messageUpdate is sent to update the spinner message
type messageUpdate string

// Spinner shows a single animated status line until stopped.
type Spinner struct {
	out       io.Writer
	program   *tea.Program
	msgChan   chan string
	done      chan struct{}
	mu        sync.Mutex
	isRunning bool
	lastMsg   string
}

type spinnerModel struct {
	spinner spinner.Model
	message string
	msgChan chan string
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForMessage())
}

func (m spinnerModel) waitForMessage() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-m.msgChan
		if !ok {
			return tea.Quit()
		}
		return messageUpdate(msg)
	}
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messageUpdate:
		m.message = string(msg)
		return m, m.waitForMessage()
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() tea.View {
	return tea.NewView(m.render())
}

func (m spinnerModel) render() string {
	if m.message == "" {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.message)
}

// New creates a spinner that renders to out.
func New(out io.Writer, message string) *Spinner {
	return &Spinner{
		out:     out,
		msgChan: make(chan string, 10),
		done:    make(chan struct{}),
		lastMsg: message,
	}
}

// Start begins the animation. It is a no-op if already running.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return
	}

	model := spinnerModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(styles.PrimaryStyle),
		),
		message: s.lastMsg,
		msgChan: s.msgChan,
	}

	s.program = tea.NewProgram(model,
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
		tea.WithOutput(s.out),
		tea.WithColorProfile(colorprofile.Detect(s.out, os.Environ())),
	)
	s.isRunning = true

	go func() {
		_, _ = s.program.Run()
		close(s.done)
	}()
}

// Update changes the spinner message.
func (s *Spinner) Update(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		s.lastMsg = message
		return
	}

	// Drop the update rather than block the caller when the buffer is full
	select {
	case s.msgChan <- message:
	default:
	}
}

// Stop ends the animation and clears the line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	close(s.msgChan)
	s.mu.Unlock()

	s.program.Quit()

	select {
	case <-s.done:
	case <-time.After(500 * time.Millisecond):
	}

	fmt.Fprint(s.out, "\r\033[K")
}
