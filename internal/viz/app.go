package viz

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/sortviz/internal/catalog"
	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/sorting"
)

const frameRate = 30

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model is the Bubble Tea model. Playback state lives in the session and
// the board; the model only holds UI state.
type Model struct {
	session  *session.Session
	board    *Board
	registry *catalog.Registry
	log      *slog.Logger

	theme    Theme
	styles   styles
	view     catalog.View
	editing  bool
	editBuf  string
	notice   string
	showHelp bool
	width    int
	height   int
}

type ModelOption func(*Model)

func WithTheme(name string) ModelOption {
	return func(m *Model) { m.setTheme(GetTheme(name)) }
}

func WithCodeView(v catalog.View) ModelOption {
	return func(m *Model) { m.view = v }
}

func WithLogger(l *slog.Logger) ModelOption {
	return func(m *Model) { m.log = l }
}

// NewModel wires a session whose player renders to board.
func NewModel(s *session.Session, board *Board, reg *catalog.Registry, opts ...ModelOption) Model {
	m := Model{
		session:  s,
		board:    board,
		registry: reg,
		log:      slog.Default(),
		view:     catalog.ViewPseudo,
		width:    80,
		height:   24,
	}
	m.setTheme(ThemeCyberpunk)
	for _, opt := range opts {
		opt(&m)
	}
	board.SetEntry(reg.For(s.Algorithm()))
	return m
}

func (m *Model) setTheme(t Theme) {
	m.theme = t
	m.styles = newStyles(t)
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.editKey(msg), nil
		}
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case TickMsg:
		return m, tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.session.Pause()
		return m, tea.Quit
	case " ", "space":
		m.session.Toggle()
	case "n", "right":
		m.session.Step()
	case "r":
		m.session.Reset()
	case "g":
		m.session.Generate(input.DefaultRandomLen)
		m.notice = ""
	case "e":
		m.editing = true
		m.editBuf = input.Format(m.session.Array())
	case "a":
		next := sorting.Next(m.session.Algorithm())
		m.board.SetEntry(m.registry.For(next))
		m.session.SetAlgorithm(next)
	case "c":
		m.view = catalog.NextView(m.view)
	case "+", "=":
		m.session.Faster()
	case "-", "_":
		m.session.Slower()
	case "t":
		m.setTheme(NextTheme(m.theme.Name))
		m.log.Debug("theme changed", "theme", m.theme.Name)
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m Model) editKey(msg tea.KeyMsg) Model {
	switch msg.Type {
	case tea.KeyEnter:
		notice, ok := m.session.LoadText(m.editBuf)
		switch {
		case !ok:
			m.notice = "no valid numbers entered; array unchanged"
		case !notice.Empty():
			m.notice = notice.String()
		default:
			m.notice = ""
		}
		m.editing, m.editBuf = false, ""
	case tea.KeyEsc:
		m.editing, m.editBuf = false, ""
	case tea.KeyBackspace:
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	case tea.KeySpace:
		m.editBuf += " "
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if (r >= '0' && r <= '9') || r == ',' || r == '-' || r == ' ' {
				m.editBuf += string(r)
			}
		}
	}
	return m
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	m.session.Pause()
	return err
}
