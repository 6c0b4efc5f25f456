package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/san-kum/bauhaus/internal/config"
	"github.com/san-kum/bauhaus/internal/flip"
	"github.com/san-kum/bauhaus/internal/sched"
	"github.com/san-kum/bauhaus/internal/tile"
)

// maxStep caps how much virtual time one frame may advance, so a stalled
// terminal does not replay a burst of flips at once.
const maxStep = 250 * time.Millisecond

type TickMsg time.Time

// Model holds the grid, its clock and UI state.
type Model struct {
	cfg      *config.Config
	log      *log.Logger
	src      tile.Source
	gen      *tile.Generator
	clock    *sched.Scheduler
	grid     *flip.Grid
	canvas   *Canvas
	theme    Theme
	width    int
	height   int
	last     time.Time
	running  bool
	showHelp bool
}

// NewModel prepares a model; the grid is mounted on the first window size
// message.
func NewModel(cfg *config.Config, logger *log.Logger, src tile.Source) Model {
	th, ok := GetTheme(cfg.Theme)
	if !ok {
		logger.Warn("unknown theme, using default", "theme", cfg.Theme, "default", th.Name)
	}
	return Model{
		cfg:     cfg,
		log:     logger,
		src:     src,
		gen:     tile.NewGenerator(src, th.Palette, cfg.TileSize),
		clock:   sched.New(),
		theme:   th,
		running: true,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.FrameInterval(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input, the one-time viewport measurement and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.grid != nil {
			m.log.Debug("resize ignored", "width", msg.Width, "height", msg.Height)
			return m, nil
		}
		m.mount(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.teardown()
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "f":
			m.flipRandom()
		case "F":
			m.flipAll()
		case "t", "T":
			m.theme = NextTheme(m.theme.Name)
			m.gen.SetPalette(m.theme.Palette)
			m.log.Debug("theme", "name", m.theme.Name)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		now := time.Time(msg)
		if m.running && !m.last.IsZero() {
			m.step(now.Sub(m.last))
		}
		m.last = now
		return m, m.tick()
	}
	return m, nil
}

// mount measures the viewport once and builds the grid.
func (m *Model) mount(cols, rows int) {
	m.width, m.height = cols, rows
	// last row is the status line
	m.canvas = NewCanvas(cols, rows-1)
	w, h := m.canvas.Units()
	if m.cfg.Viewport.Width > 0 {
		w = m.cfg.Viewport.Width
	}
	if m.cfg.Viewport.Height > 0 {
		h = m.cfg.Viewport.Height
	}
	logger := m.log
	m.grid = flip.NewGrid(flip.Size{W: w, H: h}, flip.Options{
		Gen:   m.gen,
		Rand:  m.src,
		Clock: m.clock,
		Timing: flip.Timing{
			MinDelay:     m.cfg.MinDelay(),
			MaxDelay:     m.cfg.MaxDelay(),
			FlipDuration: m.cfg.FlipDuration(),
		},
		OnFlip: func(c *flip.Cell) {
			row, col := c.Pos()
			next, _ := c.NextFlip()
			logger.Debug("flip", "row", row, "col", col, "axis", c.Axis(), "side", c.Showing(), "next", next)
		},
	})
	m.log.Info("grid mounted", "rows", m.grid.Rows(), "cols", m.grid.Cols(), "viewport", fmt.Sprintf("%dx%d", w, h))
}

func (m *Model) teardown() {
	if m.grid != nil {
		m.grid.Close()
	}
}

// step advances virtual time and drops finished animations.
func (m *Model) step(dt time.Duration) {
	if m.grid == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	if dt > maxStep {
		dt = maxStep
	}
	m.clock.Advance(dt)
	m.grid.Settle(m.clock.Now())
}

func (m *Model) flipRandom() {
	if m.grid == nil || m.grid.Len() == 0 {
		return
	}
	i := m.src.IntN(m.grid.Len())
	m.grid.Cell(i/m.grid.Cols(), i%m.grid.Cols()).Flip()
}

func (m *Model) flipAll() {
	if m.grid == nil {
		return
	}
	m.grid.Each(func(c *flip.Cell) { c.Flip() })
}

// Grid exposes the mounted grid; nil before the first window size.
func (m Model) Grid() *flip.Grid { return m.grid }

func (m Model) Clock() *sched.Scheduler { return m.clock }

func (m Model) Theme() Theme { return m.theme }

func (m Model) Running() bool { return m.running }

// View renders the canvas and the status line.
func (m Model) View() string {
	if m.grid == nil {
		return "measuring viewport…"
	}
	m.canvas.DrawGrid(m.grid, m.clock.Now(), m.theme)
	if m.showHelp {
		return m.canvas.Overlay(helpBoxStyle(m.theme).Render(helpText)) + m.status()
	}
	return m.canvas.String() + m.status()
}

const helpText = `KEYBOARD SHORTCUTS

Space   Pause/Resume
f       Flip a random tile
F       Flip every tile
T       Cycle themes
?       Toggle this help
Q       Quit`

func (m Model) status() string {
	state := "RUNNING"
	if !m.running {
		state = "PAUSED"
	}
	left := accentStyle(m.theme).Render(" "+state) +
		statusStyle(m.theme).Render(fmt.Sprintf("  %s  %d×%d  flips %d  t=%.1fs",
			m.theme.Name, m.grid.Cols(), m.grid.Rows(), m.grid.Flips(), m.clock.Now().Seconds()))
	hint := mutedStyle(m.theme).Render("?:help q:quit ")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(hint)
	if gap < 1 {
		gap = 1
	}
	return left + statusStyle(m.theme).Render(strings.Repeat(" ", gap)) + hint
}

// Run starts the interactive program on the alternate screen.
func Run(cfg *config.Config, logger *log.Logger, src tile.Source) error {
	m := NewModel(cfg, logger, src)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.teardown()
	}
	return err
}
