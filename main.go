package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"linkbox/connector"
	"linkbox/surface"
)

func main() {
	config, configErr := loadConfig()

	logger, closeLog, err := newLogger(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "linkbox:", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(logger)

	if configErr != nil {
		logger.Warn("using default config", "error", configErr)
	}

	p := tea.NewProgram(
		initialModel(config, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "error", err)
		closeLog()
		os.Exit(1)
	}
}

// newLogger logs to the configured file. The terminal belongs to the UI,
// so without a log file output is discarded.
func newLogger(config *Config) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: config.Level()}
	if config.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}, nil
	}
	f, err := tea.LogToFile(config.LogFile, "linkbox")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, opts)), func() { f.Close() }, nil
}

func initialModel(config *Config, logger *slog.Logger) model {
	grid := newGridContext(80, 23)
	m := model{
		surface:  surface.New(grid, config.surfaceOptions()...),
		grid:     grid,
		selected: surface.First,
		config:   config,
		log:      logger,
		copyText: clipboard.WriteAll,
	}
	m.redraw(m.surface.Render())
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.grid.Resize(msg.Width, m.canvasHeight())
		m.redraw(m.surface.Render())
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.KeyMsg:
		if m.help {
			switch msg.String() {
			case "esc", "q", "?":
				m.help = false
			}
			return m, nil
		}

		m.errorMessage = ""
		m.successMessage = ""

		key := msg.String()
		switch key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.help = true
		case "tab":
			if m.selected == surface.First {
				m.selected = surface.Second
			} else {
				m.selected = surface.First
			}
		case "h", "j", "k", "l", "left", "down", "up", "right",
			"H", "J", "K", "L", "shift+left", "shift+down", "shift+up", "shift+right":
			return m.handleNavigation(key, m.getMoveSpeed(key))
		case "r":
			m.redraw(m.surface.Reset())
			m.successMessage = "positions reset"
		case "y":
			m.copyPath()
		case "p":
			m.saveSnapshot(FileOpSavePNG)
		case "t":
			m.saveSnapshot(FileOpSaveVisualTXT)
		}
		return m, nil
	}
	return m, nil
}

// handleMouse feeds press, motion and release events to the surface drag
// state machine. Only a left-button press starts a drag; motion with the
// button held reports as motion, not as another press. Presses on the
// status line are ignored.
func (m model) handleMouse(msg tea.MouseMsg) model {
	pos := cell{X: msg.X, Y: msg.Y}
	x, y := m.grid.toSurface(pos)
	p := connector.Point{X: x, Y: y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || pos.Y >= m.grid.rows {
			return m
		}
		if h := m.surface.PointerDown(p); h != surface.None {
			m.selected = h
			m.log.Debug("drag start", "rect", h, "at", p)
		}
	case tea.MouseActionMotion:
		if m.surface.Dragging() != surface.None {
			m.redraw(m.surface.PointerMove(p))
		}
	case tea.MouseActionRelease:
		if h := m.surface.Dragging(); h != surface.None {
			m.log.Debug("drag end", "rect", h, "at", m.surface.Rect(h).Position)
		}
		m.surface.PointerUp()
	}
	return m
}

// redraw records the outcome of a render. An invalid connection skips the
// connector for this frame; it is logged and shown in the status line.
func (m *model) redraw(err error) {
	if err == nil {
		if m.renderErr != nil {
			m.log.Info("connector valid again")
		}
		m.renderErr = nil
		return
	}
	if m.renderErr == nil || m.renderErr.Error() != err.Error() {
		m.log.Warn("connector not drawn", "error", err)
	}
	m.renderErr = err
}

func (m model) canvasHeight() int {
	// Leave room for status line
	h := m.height - 1
	if h < 1 {
		h = 1
	}
	return h
}

func (m model) currentMode() Mode {
	if m.surface.Dragging() != surface.None {
		return ModeDragging
	}
	return ModeIdle
}

func (m model) modeString() string {
	if m.currentMode() == ModeDragging {
		return "DRAG " + m.surface.Dragging().String()
	}
	return "IDLE"
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	var result strings.Builder
	result.WriteString(m.grid.String())
	result.WriteString("\n")
	result.WriteString(m.statusLine())
	return result.String()
}

var (
	statusStyle  = lipgloss.NewStyle().Reverse(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	helpStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func (m model) statusLine() string {
	a, b := m.surface.Rect(surface.First), m.surface.Rect(surface.Second)
	status := fmt.Sprintf(" %s | A %s  B %s | sel %s | ? help ",
		m.modeString(), a.Position, b.Position, m.selected)

	var message string
	switch {
	case m.errorMessage != "":
		message = errorStyle.Render(m.errorMessage)
	case m.renderErr != nil:
		message = errorStyle.Render(m.renderErr.Error())
	case m.successMessage != "":
		message = successStyle.Render(m.successMessage)
	}
	return statusStyle.Render(status) + " " + message
}

func (m model) helpView() string {
	helpLines := []string{
		"linkbox help",
		"",
		"Mouse:",
		"  drag a rectangle   move it, its center follows the pointer",
		"",
		"Keys:",
		"  tab                select rectangle A or B",
		"  h/j/k/l, arrows    nudge the selected rectangle",
		"  Shift+direction    nudge twice as far",
		"  r                  reset positions",
		"  y                  copy connector path to the clipboard",
		"  p                  save PNG snapshot",
		"  t                  save text snapshot",
		"  ?                  toggle this help",
		"  q                  quit",
	}
	return helpStyle.Render(strings.Join(helpLines, "\n"))
}
