// Package tui runs a menu inside a bubbletea program. The model draws each
// frame into a cell grid and styles it with lipgloss; key presses go to the
// menu session's dispatcher and a tick drives the scroll animation.
package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/gridmenu/pkg/cellgrid"
	"github.com/marcus/gridmenu/pkg/menu"
)

// DefaultFrameRate is how often the model redraws while idle. It is finer
// than the scroll interval so ticks land close to when they are due.
const DefaultFrameRate = menu.DefaultScrollInterval / 4

type tickMsg time.Time

// Model is a bubbletea model around one menu run.
type Model struct {
	cfg       *menu.Config
	session   *menu.Session
	grid      *cellgrid.Grid
	styles    Styles
	keys      KeyMap
	frameRate time.Duration

	index int
	err   error
	done  bool
}

// Option configures a Model.
type Option func(*Model)

func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

func WithKeyMap(km KeyMap) Option {
	return func(m *Model) { m.keys = km }
}

func WithFrameRate(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.frameRate = d
		}
	}
}

// New returns a model for cfg. The menu starts, and its layout is
// resolved, when the first window size arrives.
func New(cfg *menu.Config, opts ...Option) *Model {
	m := &Model{
		cfg:       cfg,
		grid:      cellgrid.New(0, 0),
		styles:    DefaultStyles(),
		keys:      DefaultKeyMap(),
		frameRate: DefaultFrameRate,
		index:     int(menu.StatusCancelled),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Result returns the outcome once the program has quit: the selected
// index, or a negative status and its error.
func (m *Model) Result() (int, error) {
	if !m.done {
		return int(menu.StatusCancelled), menu.ErrCancelled
	}
	return m.index, m.err
}

// Done reports whether the menu reached a terminal state.
func (m *Model) Done() bool { return m.done }

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.frameRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.grid.Resize(msg.Height, msg.Width)
		if m.session == nil {
			return m, m.start(msg.Height, msg.Width)
		}
		m.session.Frame()
		return m, nil

	case tea.KeyMsg:
		if m.session == nil {
			if m.keys.Translate(msg) == menu.KeyEscape {
				return m, m.finish(int(menu.StatusCancelled), menu.ErrCancelled)
			}
			return m, nil
		}
		index, done, err := m.session.Dispatch(m.keys.Translate(msg))
		if done {
			return m, m.finish(index, err)
		}
		m.session.Frame()
		return m, nil

	case tickMsg:
		if m.done {
			return m, nil
		}
		if m.session != nil {
			m.session.Frame()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) start(height, width int) tea.Cmd {
	m.cfg.ScreenHeight, m.cfg.ScreenWidth = height, width
	m.cfg.Drawer = m.grid
	s, err := menu.Start(m.cfg)
	if err != nil {
		return m.finish(int(menu.StatusOf(err)), err)
	}
	m.session = s
	s.Frame()
	return nil
}

func (m *Model) finish(index int, err error) tea.Cmd {
	m.index, m.err, m.done = index, err, true
	return tea.Quit
}

func (m *Model) View() string {
	if m.done {
		return ""
	}
	height, _ := m.grid.Size()
	lines := make([]string, height)
	for row := range lines {
		var b strings.Builder
		for _, span := range m.grid.Spans(row) {
			b.WriteString(m.styles.style(span.Slot).Render(span.Text))
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}
