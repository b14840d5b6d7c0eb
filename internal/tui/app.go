package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"budgetbook/internal/service"
)

// Model is the bubbletea root model. It owns the frame stack and the
// session and delegates key handling to the top frame.
type Model struct {
	svc      *service.Services
	sess     *service.Session
	now      func() time.Time
	currency string

	stack    []frame
	quitting bool
}

// Option customizes a Model.
type Option func(*Model)

// WithClock overrides the wall clock used by the welcome banner.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithCurrency sets the symbol prefixed to rendered amounts.
func WithCurrency(symbol string) Option {
	return func(m *Model) { m.currency = symbol }
}

// New builds the root model. The initial stack is the main menu with the
// user-setup menu on top, mirroring first-launch behavior: pick or create a
// user, then land on the main menu.
func New(svc *service.Services, sess *service.Session, opts ...Option) *Model {
	m := &Model{
		svc:      svc,
		sess:     sess,
		now:      time.Now,
		currency: "€",
	}
	for _, opt := range opts {
		opt(m)
	}
	m.stack = []frame{m.mainMenu()}
	m.push(m.userSetupMenu())
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Everything is key-driven; the only global
// binding is ctrl+c, which quits from anywhere.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.top().update(m, msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return "Good Bye!\n"
	}
	return m.banner() + "\n" + m.top().view(m)
}

func (m *Model) top() frame {
	return m.stack[len(m.stack)-1]
}

// depth returns the current stack depth; flows capture it before pushing
// their first frame and unwind to it when done.
func (m *Model) depth() int {
	return len(m.stack)
}

// push descends one navigation level.
func (m *Model) push(f frame) {
	m.stack = append(m.stack, f)
}

// pop returns exactly one level up. The bottom frame never pops; leaving
// the top level is only possible through the explicit exit item.
func (m *Model) pop() {
	if len(m.stack) > 1 {
		m.stack = m.stack[:len(m.stack)-1]
	}
}

// popTo unwinds to a recorded depth.
func (m *Model) popTo(depth int) {
	if depth < 1 {
		depth = 1
	}
	if len(m.stack) > depth {
		m.stack = m.stack[:depth]
	}
}

// quit terminates the program after the farewell renders.
func (m *Model) quit() tea.Cmd {
	m.quitting = true
	return tea.Quit
}
