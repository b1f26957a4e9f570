package ui

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	styles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fsnotify/fsnotify"

	"github.com/kyaoi/termbridge/internal/config"
	"github.com/kyaoi/termbridge/internal/page"
	"github.com/kyaoi/termbridge/internal/presentation"
	"github.com/kyaoi/termbridge/internal/window"
	"github.com/kyaoi/termbridge/internal/zoom"
)

const (
	footerHeight    = 1
	minContentWidth = 20
	scaleStep       = 0.25
)

var (
	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#a9b1d6")).
			Background(lipgloss.Color("#1f2335"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b"))
	helpBoxStyle = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Background(lipgloss.Color("#1f2335"))
	promptBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#c0caf5")).
			Background(lipgloss.Color("#283457"))
)

// Model implements the Bubble Tea host that drives the bridge.
type Model struct {
	contentVP viewport.Model
	renderer  *glamour.TermRenderer
	ready     bool
	width     int
	height    int
	showHelp  bool
	notice    string
	err       error

	coordinator *zoom.Coordinator
	store       *presentation.Store
	page        *page.Page
	pageSeq     int
	metrics     window.Metrics
	reload      func() (config.Config, error)

	zoomInput textinput.Model
	prompting bool

	watcher          *fsnotify.Watcher
	watchDir         string
	watchedFile      string
	watchChan        chan tea.Msg
	watchDone        chan struct{}
	initialWatchPath string
}

type fileEventMsg struct {
	path string
	op   fsnotify.Op
}

type fileWatchErrMsg struct {
	err error
}

// NewModel constructs the host model with the provided initial state.
func NewModel(state State) *Model {
	contentVP := viewport.New(0, 0)
	contentVP.Style = lipgloss.NewStyle().Padding(0, 1)

	coordinator := state.Coordinator
	if coordinator == nil {
		coordinator = zoom.NewCoordinator(presentation.NewStore())
	}

	m := &Model{
		contentVP:   contentVP,
		coordinator: coordinator,
		store:       coordinator.Store(),
		page:        state.Page,
		metrics:     state.Metrics,
		reload:      state.Reload,
	}
	if m.page == nil {
		m.page = m.newPage()
	}

	zoomInput := textinput.New()
	zoomInput.Prompt = "zoom %: "
	zoomInput.CharLimit = 8
	zoomInput.Placeholder = "100"
	zoomInput.Blur()
	m.zoomInput = zoomInput

	if state.ConfigFile != "" {
		if _, err := os.Stat(state.ConfigFile); err == nil {
			m.initialWatchPath = state.ConfigFile
		}
	}

	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.initialWatchPath != "" {
		path := m.initialWatchPath
		m.initialWatchPath = ""
		return m.startWatching(path)
	}
	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.showHelp {
		helpContent := strings.Join([]string{
			"Help (? / Esc to close)",
			"+ / -   : zoom in / out one level",
			"0       : reset zoom to 100%",
			"z       : type a zoom percentage",
			"] / [   : device scale factor +/- 0.25",
			"b       : toggle bitmap mode",
			"a       : attach / detach the page",
			"r       : bind a fresh page",
			"f       : commit / drop the main frame",
			"j / k   : scroll",
			"q       : quit",
		}, "\n")
		helpOverlay := helpBoxStyle.Render(helpContent)
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpOverlay)
		}
		return helpOverlay
	}

	body := m.contentVP.View()
	if m.err != nil {
		body = lipgloss.JoinVertical(lipgloss.Left, errorStyle.Render(m.err.Error()), body)
	}

	if m.prompting {
		return lipgloss.JoinVertical(lipgloss.Left, body, promptBarStyle.Render(m.zoomInput.View()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, statusBarStyle.Render(m.statusLine()))
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fileEventMsg:
		return m, m.handleFileEvent(msg)
	case fileWatchErrMsg:
		m.err = msg.err
		return m, m.waitForFileEvent()
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.prompting {
			switch msg.Type {
			case tea.KeyEnter:
				value := m.zoomInput.Value()
				m.exitPrompt()
				m.applyZoomInput(value)
				return m, nil
			case tea.KeyEsc, tea.KeyCtrlC:
				m.exitPrompt()
				return m, nil
			}
			var cmd tea.Cmd
			m.zoomInput, cmd = m.zoomInput.Update(msg)
			return m, cmd
		}

		key := msg.String()
		if m.showHelp {
			switch key {
			case "q", "?", "esc":
				m.showHelp = false
			}
			return m, nil
		}

		switch key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.showHelp = true
			return m, nil
		case "z":
			return m, m.enterPrompt()
		}

		if m.handleBridgeKey(key) {
			m.refresh()
			return m, nil
		}

		switch key {
		case "j":
			m.contentVP.LineDown(1)
			return m, nil
		case "k":
			m.contentVP.LineUp(1)
			return m, nil
		}

		var cmd tea.Cmd
		m.contentVP, cmd = m.contentVP.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.contentVP, cmd = m.contentVP.Update(msg)
	return m, cmd
}

func (m *Model) handleBridgeKey(key string) bool {
	switch key {
	case "+", "=":
		m.stepZoom(1)
	case "-", "_":
		m.stepZoom(-1)
	case "0":
		m.coordinator.SetDefaultZoom(1)
		m.notice = "zoom reset"
	case "]":
		m.coordinator.SetDeviceScaleFactor(m.store.DeviceScaleFactor() + scaleStep)
	case "[":
		m.coordinator.SetDeviceScaleFactor(m.store.DeviceScaleFactor() - scaleStep)
	case "b":
		m.store.SetBitmapMode(!m.store.BitmapMode())
	case "a":
		if m.coordinator.Bound() {
			m.coordinator.SetWebContents(nil)
			m.notice = "page detached"
		} else {
			m.coordinator.SetWebContents(m.page)
			m.notice = "page attached"
		}
	case "r":
		m.page = m.newPage()
		m.coordinator.SetWebContents(m.page)
		m.notice = "bound " + m.page.Title
	case "f":
		m.toggleMainFrame()
	default:
		return false
	}
	m.err = nil
	return true
}

// stepZoom moves the default zoom by whole engine levels.
func (m *Model) stepZoom(delta int) {
	level := math.Round(zoom.Level(float64(m.coordinator.DefaultZoomFactor())))
	m.coordinator.SetDefaultZoom(float32(zoom.Factor(level + float64(delta))))
	m.notice = ""
}

func (m *Model) toggleMainFrame() {
	if m.page.MainFrame() != nil {
		m.page.DetachMainFrame()
		m.notice = "main frame dropped"
		return
	}
	m.page.LoadMainFrame()
	m.page.AddSubframe("ads")
	// A freshly committed frame has no override yet; re-issue the default.
	if m.coordinator.Bound() {
		m.coordinator.SetDefaultZoom(m.coordinator.DefaultZoomFactor())
	}
	m.notice = "main frame committed"
}

func (m *Model) newPage() *page.Page {
	m.pageSeq++
	p := page.New(fmt.Sprintf("page-%d", m.pageSeq))
	p.AddSubframe("ads")
	return p
}

func (m *Model) enterPrompt() tea.Cmd {
	m.prompting = true
	m.zoomInput.SetValue("")
	return m.zoomInput.Focus()
}

func (m *Model) exitPrompt() {
	m.prompting = false
	m.zoomInput.Blur()
}

func (m *Model) applyZoomInput(value string) {
	value = strings.TrimSuffix(strings.TrimSpace(value), "%")
	if value == "" {
		return
	}
	percent, err := strconv.ParseFloat(value, 32)
	if err != nil {
		m.err = fmt.Errorf("invalid zoom %q", value)
		return
	}
	m.err = nil
	m.coordinator.SetDefaultZoom(float32(percent / 100))
	m.refresh()
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= footerHeight {
		return
	}

	m.width = width
	m.height = height
	m.ready = true

	contentWidth := max(width, minContentWidth)
	m.contentVP.Width = contentWidth
	m.contentVP.Height = max(height-footerHeight, 1)

	wrapWidth := max(contentWidth-m.contentVP.Style.GetHorizontalFrameSize(), 0)
	renderer, err := newRenderer(wrapWidth)
	if err != nil {
		m.err = err
		return
	}
	m.renderer = renderer
	m.refresh()
}

func (m *Model) refresh() {
	if m.renderer == nil {
		return
	}
	offset := m.contentVP.YOffset
	rendered, err := m.renderer.Render(m.statusDocument())
	if err != nil {
		m.err = err
		return
	}
	m.contentVP.SetContent(rendered)
	m.contentVP.SetYOffset(offset)
}

func (m *Model) statusLine() string {
	line := fmt.Sprintf("zoom %s · dsf %.2f · dpi %.2f · %s",
		formatPercent(m.coordinator.DefaultZoomFactor()),
		m.store.DeviceScaleFactor(),
		m.store.DPI(),
		m.coordinator.State())
	if m.notice != "" {
		line += " · " + m.notice
	}
	if m.width <= 0 {
		return line
	}
	return ansi.Truncate(line, max(m.width-statusBarStyle.GetHorizontalFrameSize(), 0), "…")
}

func newRenderer(width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.TokyoNightStyle),
		glamour.WithWordWrap(width),
	)
}

func (m *Model) applyConfig(cfg config.Config) {
	m.coordinator.SetDefaultZoom(cfg.Zoom)
	// A zero scale factor means "derive from the terminal"; keep the current one.
	if cfg.ScaleFactor > 0 {
		m.coordinator.SetDeviceScaleFactor(cfg.ScaleFactor)
	}
	m.store.SetBitmapMode(cfg.Bitmap)
	m.notice = "config reloaded from " + filepath.Base(m.watchedFile)
}
