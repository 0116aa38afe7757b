package ui

import (
	"fmt"
	"image"
	"log"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/milkyway/internal/audio"
	"github.com/olivier-w/milkyway/internal/config"
	"github.com/olivier-w/milkyway/internal/fourier"
	"github.com/olivier-w/milkyway/internal/session"
	"github.com/olivier-w/milkyway/internal/visualizer"
)

const (
	// canvasTop is the number of lines above the canvas.
	canvasTop = 1
	// chromeLines counts every non-canvas line: header, status, help.
	chromeLines = 3
	// importFill is the share of the canvas an imported curve spans.
	importFill = 0.8
	// exportSeconds is the length of an exported WAV file.
	exportSeconds = 2
)

// Model is the Bubbletea model for the milkyway TUI.
type Model struct {
	session  *session.Session
	cfg      config.Config
	modes    []visualizer.Visualizer
	vizIdx   int
	keys     keyMap
	help     help.Model
	pivot    pivotSpring
	browser  *BrowserModel
	scope    *audio.Scope
	spectrum bool

	width    int
	height   int
	sized    bool
	quitting bool
	scopeGen int // bumps on every oscilloscope path request

	title      string          // title of the imported curve
	pending    *curveLoadedMsg // imported curve waiting for a canvas size
	statusMsg  string          // transient status message
	statusTime time.Time       // when statusMsg was set
}

// New creates a new Model.
func New(cfg config.Config) Model {
	return Model{
		session: session.New(image.Point{}, session.Options{
			Capacity: cfg.Capacity,
			FPS:      cfg.FPS,
			Seed:     cfg.Seed,
		}),
		cfg:    cfg,
		modes:  visualizer.Modes(),
		vizIdx: visualizer.Index(cfg.Visualizer),
		keys:   newKeyMap(),
		help:   help.New(),
		pivot:  newPivotSpring(cfg.FPS),
		scope:  audio.NewScope(cfg.SampleRate),
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{frameCmd(m.cfg.FPS), tea.SetWindowTitle("milkyway")}
	if m.cfg.Import != "" {
		cmds = append(cmds, m.importCmd(m.cfg.Import))
	}
	return tea.Batch(cmds...)
}

// importCmd decodes and transforms a file off the update loop. The
// transform is taken on the unscaled curve; stretching it to the canvas
// later only scales the arms.
func (m Model) importCmd(path string) tea.Cmd {
	limit := m.cfg.Points
	return func() tea.Msg {
		curve, err := audio.LoadCurve(path, limit)
		if err != nil {
			return curveLoadedMsg{err: err}
		}
		curve.Samples = slices.Compact(curve.Samples)
		return curveLoadedMsg{curve: curve, components: fourier.Transform(curve.Samples)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.browser != nil {
		if next, cmd, ok := m.updateBrowser(msg); ok {
			return next, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		cmd := m.handleMouse(msg)
		return m, cmd

	case frameMsg:
		// A stroke is measured from the pivot it started at.
		if m.pivot.moving && !m.session.Drawing() {
			if p, settled := m.pivot.step(); settled {
				m.session.Recenter(p)
			} else {
				m.session.Glide(p)
			}
		}
		m.session.Frame()
		if m.statusMsg != "" && time.Since(m.statusTime) > 5*time.Second {
			m.statusMsg = ""
		}
		return m, frameCmd(m.cfg.FPS)

	case curveLoadedMsg:
		if msg.err != nil {
			log.Printf("import failed: %v", msg.err)
			m.setStatus(fmt.Sprintf("Import failed: %v", msg.err))
			return m, nil
		}
		m.title = msg.curve.Title
		m.pending = &msg
		if m.sized {
			cmd := m.applyPending()
			return m, cmd
		}
		return m, nil

	case scopePathMsg:
		if msg.gen == m.scopeGen {
			m.scope.SetPath(msg.path, msg.pivot)
		}
		return m, nil

	case fileExportedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Export failed: %v", msg.err))
		} else {
			m.setStatus(fmt.Sprintf("Saved to %s", msg.name))
		}
		return m, nil

	case tea.WindowSizeMsg:
		cmd := m.resize(msg.Width, msg.Height)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateBrowser(msg tea.Msg) (Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case BrowserSelectedMsg:
		m.browser = nil
		m.setStatus("Importing " + msg.Path + "...")
		return m, m.importCmd(msg.Path), true
	case BrowserCancelledMsg:
		m.browser = nil
		return m, nil, true
	case tea.KeyMsg, tea.MouseMsg:
		b, cmd := m.browser.Update(msg)
		m.browser = &b
		return m, cmd, true
	case tea.WindowSizeMsg:
		b, _ := m.browser.Update(tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 1})
		m.browser = &b
	}
	// Frames and results keep flowing to the model underneath.
	return m, nil, false
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.scope.Close()
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	case s.Drawing():
		// Arms are frozen while a stroke is in progress.
		return m, nil
	case key.Matches(msg, m.keys.AddArm):
		s.AddRandomArm()
		cmd := m.refreshScope()
		return m, cmd
	case key.Matches(msg, m.keys.RemoveArm):
		s.RemoveArm()
		cmd := m.refreshScope()
		return m, cmd
	case key.Matches(msg, m.keys.ClearArms):
		s.ClearArms()
		m.title = ""
		cmd := m.refreshScope()
		return m, cmd
	case key.Matches(msg, m.keys.ToggleTrail):
		s.ToggleTrail()
	case key.Matches(msg, m.keys.Recenter):
		m.recenter()
	case key.Matches(msg, m.keys.Visualizer):
		m.vizIdx = (m.vizIdx + 1) % len(m.modes)
		m.setStatus("Renderer: " + m.modes[m.vizIdx].Name())
	case key.Matches(msg, m.keys.Spectrum):
		m.spectrum = !m.spectrum
		if m.sized {
			cmd := m.resize(m.width, m.height)
			return m, cmd
		}
	case key.Matches(msg, m.keys.Import):
		b := NewBrowser()
		b.setSize(m.width, m.height-1)
		m.browser = &b
		return m, b.Init()
	case key.Matches(msg, m.keys.Export):
		return m, m.exportCmd()
	case key.Matches(msg, m.keys.Scope):
		cmd := m.toggleScope()
		return m, cmd
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		if m.sized {
			cmd := m.resize(m.width, m.height)
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.sized {
		return nil
	}
	s := m.session
	p := m.toDots(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		m.title = ""
		s.BeginStroke()
		s.Extend(p)
	case tea.MouseActionMotion:
		if s.Drawing() {
			s.Extend(p)
		}
	case tea.MouseActionRelease:
		if !s.Drawing() {
			return nil
		}
		s.Extend(p)
		if s.EndStroke() {
			return m.refreshScope()
		}
	}
	return nil
}

// toDots maps a terminal cell to the canvas dot under it.
func (m Model) toDots(x, y int) image.Point {
	return image.Pt(x*2, (y-canvasTop)*4)
}

func (m Model) canvasSize() (int, int) {
	cols := m.width
	if m.spectrum {
		cols -= spectrumWidth
	}
	rows := m.height - chromeLines
	if m.help.ShowAll {
		rows -= fullHelpHeight(m.keys) - 1
	}
	return max(cols, 1), max(rows, 1)
}

func fullHelpHeight(k keyMap) int {
	h := 1
	for _, col := range k.FullHelp() {
		h = max(h, len(col))
	}
	return h
}

func (m Model) canvasCenter() image.Point {
	cols, rows := m.canvasSize()
	w, h := visualizer.DotSize(cols, rows)
	return image.Pt(w/2, h/2)
}

func (m Model) importRadius() float64 {
	c := m.canvasCenter()
	return float64(min(c.X, c.Y)) * importFill
}

func (m *Model) resize(width, height int) tea.Cmd {
	m.width, m.height = width, height
	m.help.Width = width
	center := m.canvasCenter()
	if !m.sized {
		m.sized = true
		m.pivot.jump(center)
		m.session.Recenter(center)
		return m.applyPending()
	}
	m.session.ClearTrail()
	m.pivot.moveTo(m.session.Pivot(), center)
	return nil
}

func (m *Model) recenter() {
	m.session.ClearTrail()
	m.pivot.moveTo(m.session.Pivot(), m.canvasCenter())
}

func (m *Model) applyPending() tea.Cmd {
	if m.pending == nil {
		return nil
	}
	loaded := m.pending
	m.pending = nil

	r := m.importRadius()
	cs := make([]fourier.Component, len(loaded.components))
	for i, c := range loaded.components {
		cs[i] = c.Scaled(r)
	}
	if !m.session.LoadTransform(loaded.curve.Scaled(r), cs) {
		return nil
	}
	m.setStatus(fmt.Sprintf("Imported %s (%d samples)", loaded.curve.Title, m.session.SampleCount()))
	return m.refreshScope()
}

func (m Model) exportCmd() tea.Cmd {
	trace := m.session.PathFunc()
	pivot := m.session.Pivot()
	rate := m.cfg.SampleRate
	return func() tea.Msg {
		path := trace()
		if len(path) == 0 {
			return fileExportedMsg{err: audio.ErrNoPath}
		}
		name := fmt.Sprintf("milkyway-%s.wav", time.Now().Format("20060102-150405"))
		f, err := os.Create(name)
		if err != nil {
			return fileExportedMsg{err: err}
		}
		loops := max(1, rate*exportSeconds/len(path))
		if err := audio.ExportWAV(f, path, pivot, rate, loops); err != nil {
			f.Close()
			return fileExportedMsg{err: err}
		}
		if err := f.Close(); err != nil {
			return fileExportedMsg{err: err}
		}
		return fileExportedMsg{name: name}
	}
}

func (m *Model) toggleScope() tea.Cmd {
	playing, err := m.scope.Toggle()
	if err != nil {
		log.Printf("oscilloscope: %v", err)
		m.setStatus(fmt.Sprintf("Oscilloscope unavailable: %v", err))
		return nil
	}
	if !playing {
		m.setStatus("Oscilloscope off")
		return nil
	}
	m.setStatus("Oscilloscope on")
	return m.scopePathCmd()
}

// refreshScope retraces the oscilloscope path after the arms changed.
func (m *Model) refreshScope() tea.Cmd {
	if !m.scope.Playing() {
		return nil
	}
	return m.scopePathCmd()
}

func (m *Model) scopePathCmd() tea.Cmd {
	m.scopeGen++
	gen := m.scopeGen
	trace := m.session.PathFunc()
	pivot := m.session.Pivot()
	return func() tea.Msg {
		return scopePathMsg{gen: gen, path: trace(), pivot: pivot}
	}
}

func (m *Model) setStatus(s string) {
	m.statusMsg = s
	m.statusTime = time.Now()
}

func (m Model) frame() visualizer.Frame {
	s := m.session
	return visualizer.Frame{
		Links:        s.Chain().Links(),
		Trail:        s.Trail().Points(),
		Stroke:       s.Stroke(),
		TrailVisible: s.TrailVisible(),
		Drawing:      s.Drawing(),
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.browser != nil {
		return headerStyle.Render("milkyway") + "\n" + m.browser.View()
	}

	header := headerStyle.Render("milkyway") + "  " + titleStyle.Render(m.session.Mode().String())
	if m.title != "" {
		header += "  " + statusStyle.Render(m.title)
	}

	cols, rows := m.canvasSize()
	viz := m.modes[m.vizIdx]
	viz.Update(m.frame(), cols, rows)
	body := lipgloss.NewStyle().Width(cols).Height(rows).MaxHeight(rows).Render(viz.View())
	if m.spectrum {
		panel := panelStyle.Width(spectrumWidth - 1).Height(rows).MaxHeight(rows).
			Render(renderSpectrum(m.session.Chain(), rows))
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, panel)
	}

	status := renderStatus(m.session, m.width)
	if m.statusMsg != "" {
		status = helpStyle.Render(m.statusMsg)
	}

	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(body + "\n")
	b.WriteString(status + "\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
