package tui

import (
	"bytes"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dla/internal/dla"
	"github.com/vovakirdan/tui-dla/internal/storage"
)

// generations-per-tick bounds for the speed keys
const (
	minGenPerTick = 1
	maxGenPerTick = 4096
)

var (
	hudLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hudValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	hudPausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	hudDoneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	hudStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// Options configures the interactive viewer.
type Options struct {
	// FPS is the render/advance rate.
	FPS int

	// GenPerTick is how many generations run per frame.
	GenPerTick int

	// Theme is the initial theme name.
	Theme string
}

// Model is the Bubble Tea model for watching a run grow.
type Model struct {
	ctrl  *dla.Controller
	store *storage.Store

	themes   []Theme
	themeIdx int
	keys     WatchKeyMap
	help     help.Model

	fps        int
	genPerTick int
	paused     bool
	quitting   bool
	runSaved   bool // whether the finished run was recorded
	status     string

	started time.Time
	width   int
	height  int
}

// NewModel creates a viewer model for the given controller. The store may
// be nil; run history and snapshots are then skipped.
func NewModel(ctrl *dla.Controller, store *storage.Store, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.GenPerTick <= 0 {
		opts.GenPerTick = 64
	}

	themes := Themes()
	idx := 0
	for i, t := range themes {
		if t.Name == opts.Theme {
			idx = i
			break
		}
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		ctrl:       ctrl,
		store:      store,
		themes:     themes,
		themeIdx:   idx,
		keys:       DefaultWatchKeyMap(),
		help:       h,
		fps:        opts.FPS,
		genPerTick: opts.GenPerTick,
		started:    time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keys.Restart):
		m.restart()

	case key.Matches(msg, m.keys.Faster):
		if m.genPerTick < maxGenPerTick {
			m.genPerTick *= 2
		}

	case key.Matches(msg, m.keys.Slower):
		if m.genPerTick > minGenPerTick {
			m.genPerTick /= 2
		}

	case key.Matches(msg, m.keys.Theme):
		m.themeIdx = (m.themeIdx + 1) % len(m.themes)

	case key.Matches(msg, m.keys.Snapshot):
		m.saveSnapshot()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// restart begins a fresh run with a new seed and the same parameters.
func (m *Model) restart() {
	p := m.ctrl.Params()
	p.Seed = time.Now().UnixNano()
	if err := m.ctrl.Reconfigure(p); err != nil {
		m.status = fmt.Sprintf("restart failed: %v", err)
		return
	}
	m.paused = false
	m.runSaved = false
	m.started = time.Now()
}

// handleTick advances the simulation and schedules the next frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused && !m.ctrl.Done() {
		m.ctrl.TickN(m.genPerTick)
		if m.ctrl.Done() {
			m.recordRun()
		}
	}
	return m, tickCmd(m.fps)
}

// recordRun writes the finished run to history (once).
func (m *Model) recordRun() {
	if m.runSaved || m.store == nil {
		return
	}
	m.runSaved = true

	p := m.ctrl.Params()
	s := m.ctrl.Stats()
	//nolint:errcheck // Best-effort save, the viewer keeps running regardless
	m.store.SaveRun(storage.RunRecord{
		Width:       p.Width,
		Height:      p.Height,
		Layout:      string(p.Layout),
		Adjacency:   int(p.Adjacency),
		SpawnPolicy: string(p.SpawnPolicy),
		Seed:        p.Seed,
		Target:      p.TargetParticles,
		Placed:      s.Placed,
		Generations: s.Generations,
		Timeouts:    s.Timeouts,
		WalkSteps:   int64(s.WalkSteps),
		DurationMs:  time.Since(m.started).Milliseconds(),
		Completed:   s.Placed >= s.Target,
	})
}

// saveSnapshot stores the current run under a timestamped name.
func (m *Model) saveSnapshot() {
	if m.store == nil {
		m.status = "no database open"
		return
	}

	var buf bytes.Buffer
	if err := m.ctrl.Save(&buf); err != nil {
		m.status = fmt.Sprintf("snapshot failed: %v", err)
		return
	}
	name := time.Now().Format("20060102_150405")
	if err := m.store.SaveSnapshot(name, buf.Bytes()); err != nil {
		m.status = fmt.Sprintf("snapshot failed: %v", err)
		return
	}
	m.status = "saved snapshot " + name
}

// View renders the cluster and the HUD.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Leave two rows for the HUD and help line.
	gridH := m.height - 2
	grid := RenderView(m.ctrl.Snapshot(), m.themes[m.themeIdx], m.ctrl.Stats().Placed, m.width, gridH)

	return grid + "\n" + m.hud() + "\n" + m.help.View(m.keys)
}

// hud renders the one-line status bar.
func (m Model) hud() string {
	s := m.ctrl.Stats()

	var state string
	switch {
	case s.Done:
		state = hudDoneStyle.Render("done")
	case m.paused:
		state = hudPausedStyle.Render("paused")
	default:
		state = hudValueStyle.Render("running")
	}

	line := fmt.Sprintf("%s %s  %s %s  %s %s  %s %s  %s %s",
		hudLabelStyle.Render("particles"),
		hudValueStyle.Render(fmt.Sprintf("%d/%d", s.Placed, s.Target)),
		hudLabelStyle.Render("timeouts"),
		hudValueStyle.Render(fmt.Sprintf("%d", s.Timeouts)),
		hudLabelStyle.Render("speed"),
		hudValueStyle.Render(fmt.Sprintf("%d gen/frame", m.genPerTick)),
		hudLabelStyle.Render("theme"),
		hudValueStyle.Render(m.themes[m.themeIdx].Name),
		hudLabelStyle.Render("state"),
		state,
	)
	if m.status != "" {
		line += "  " + hudStatusStyle.Render(m.status)
	}
	return line
}

// Run starts the Bubble Tea program with the given controller.
func Run(ctrl *dla.Controller, store *storage.Store, opts Options) error {
	p := tea.NewProgram(
		NewModel(ctrl, store, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
