// Package tui is the Bubble Tea control panel for the proxy scanner.
package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/time/rate"

	"github.com/joe/proxy-panel/internal/gateway"
	"github.com/joe/proxy-panel/internal/presenter"
	"github.com/joe/proxy-panel/internal/syncengine"
	"github.com/joe/proxy-panel/internal/tui/shared"
	"github.com/joe/proxy-panel/internal/tui/widgets"
)

// Engine is what the panel needs from syncengine.Engine.
type Engine interface {
	Initialize(ctx context.Context)
	Close()
	Snapshot() syncengine.State
	Start(ctx context.Context, payload gateway.StartPayload) bool
	Stop(ctx context.Context) bool
	RefreshStatus(ctx context.Context)
	RefreshLogs(ctx context.Context)
	RefreshResults(ctx context.Context)
	CopyProxy(proxy string)
	ExportResults(dest string) error
}

// Section identifies the part of the panel receiving keystrokes.
type Section int

const (
	SectionTargets Section = iota
	SectionMaxProxies
	SectionMaxPerTarget
	SectionFilter
	SectionResults
	SectionLogs
	sectionCount
)

// String returns the focus name
func (f Section) String() string {
	switch f {
	case SectionTargets:
		return "targets"
	case SectionMaxProxies:
		return "max-proxies"
	case SectionMaxPerTarget:
		return "max-per-target"
	case SectionFilter:
		return "filter"
	case SectionResults:
		return "results"
	case SectionLogs:
		return "logs"
	default:
		return "targets"
	}
}

func (f Section) next() Section {
	return (f + 1) % sectionCount
}

func (f Section) prev() Section {
	return (f + sectionCount - 1) % sectionCount
}

// Options seeds the panel from configuration.
type Options struct {
	Server       string
	Targets      []string // nil means presenter.DefaultTargets
	MaxProxies   int      // 0 leaves the field blank
	MaxPerTarget int
	Filter       string
	ExportDest   string
	Now          func() time.Time // defaults to time.Now
}

// ControlPanel is the single-screen model: start form, status, logs and results.
type ControlPanel struct {
	engine     Engine
	bridge     *shared.EventBridge
	ctx        context.Context
	server     string
	exportDest string
	now        func() time.Time

	targets      textarea.Model
	maxProxies   textinput.Model
	maxPerTarget textinput.Model
	filter       textinput.Model
	logs         viewport.Model
	results      table.Model
	spinner      spinner.Model
	help         help.Model
	keys         keyMap

	refreshLimiter *rate.Limiter

	focus           Section
	state           syncengine.State
	visible         []gateway.ResultRow
	messageErr      error // cause behind state.StatusMessage, from MessageChanged
	formError       string
	activity        []string
	lastStatus      string
	lastResultCount int
	failing         map[syncengine.Resource]bool
	width           int
	height          int
	quitting        bool
}

// NewControlPanel creates the panel. bridge may be nil, in which case the
// panel only refreshes after its own commands.
func NewControlPanel(ctx context.Context, engine Engine, bridge *shared.EventBridge, opts Options) *ControlPanel {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	targetList := opts.Targets
	if len(targetList) == 0 {
		targetList = presenter.DefaultTargets
	}

	targets := textarea.New()
	targets.Placeholder = "https://example.com (one per line or comma separated)"
	targets.ShowLineNumbers = false
	targets.SetHeight(targetsHeight)
	targets.SetValue(strings.Join(targetList, "\n"))

	maxProxies := newBoundInput("server default", opts.MaxProxies)
	maxPerTarget := newBoundInput("server default", opts.MaxPerTarget)

	filter := textinput.New()
	filter.Placeholder = "glob, e.g. socks5* or *:8080"
	filter.Prompt = "Filter: "
	filter.SetValue(opts.Filter)

	results := table.New(
		table.WithColumns(widgets.ResultColumns(shared.DefaultWidth)),
		table.WithHeight(shared.MinPanelHeight),
	)
	results.SetStyles(tableStyles())

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(shared.PrimaryColor())

	limiter := rate.NewLimiter(rate.Every(shared.RefreshIntervalMs*time.Millisecond), shared.RefreshBurst)

	panel := &ControlPanel{
		engine:         engine,
		bridge:         bridge,
		ctx:            ctx,
		server:         opts.Server,
		exportDest:     opts.ExportDest,
		now:            opts.Now,
		targets:        targets,
		maxProxies:     maxProxies,
		maxPerTarget:   maxPerTarget,
		filter:         filter,
		logs:           viewport.New(shared.DefaultWidth, shared.MinPanelHeight),
		results:        results,
		spinner:        spin,
		help:           help.New(),
		keys:           defaultKeyMap(),
		refreshLimiter: limiter,
		state:          engine.Snapshot(),
		failing:        make(map[syncengine.Resource]bool),
	}

	panel.setFocus(SectionTargets)
	panel.resize(shared.DefaultWidth, shared.DefaultHeight)
	panel.applyState()

	return panel
}

// Focus returns the focused section (for testing)
func (p *ControlPanel) Focus() Section {
	return p.focus
}

// Activity returns the activity feed, oldest first (for testing)
func (p *ControlPanel) Activity() []string {
	return append([]string(nil), p.activity...)
}

// VisibleResults returns the rows currently shown in the table (for testing)
func (p *ControlPanel) VisibleResults() []gateway.ResultRow {
	return append([]gateway.ResultRow(nil), p.visible...)
}

// Init implements tea.Model
func (p *ControlPanel) Init() tea.Cmd {
	return tea.Batch(
		p.initializeCmd(),
		p.listenCmd(),
		p.spinner.Tick,
		shared.TickCmd(),
		textarea.Blink,
	)
}

// addActivity appends a timestamped line to the activity feed.
func (p *ControlPanel) addActivity(line string) {
	p.activity = append(p.activity, p.now().Format(presenter.ClockLayout)+" "+line)
	if len(p.activity) > shared.MaxActivityEntries {
		p.activity = p.activity[len(p.activity)-shared.MaxActivityEntries:]
	}
}

// applyResults refilters results into the table, keeping the selected row
// selected when it is still visible.
func (p *ControlPanel) applyResults() {
	selectedKey := ""
	if row, ok := p.selectedResult(); ok {
		selectedKey = presenter.ListKey(row)
	}

	p.visible = presenter.FilterResults(p.state.Results, p.filter.Value())
	p.results.SetRows(widgets.ResultRows(p.visible))

	cursor := 0
	for i, row := range p.visible {
		if presenter.ListKey(row) == selectedKey {
			cursor = i
			break
		}
	}

	if len(p.visible) > 0 {
		p.results.SetCursor(cursor)
	}
}

// applyState pushes p.state into the log viewport and results table.
func (p *ControlPanel) applyState() {
	followTail := p.logs.AtBottom()

	p.logs.SetContent(shared.RenderActivityLog(p.state.Logs, 0, "No log output yet."))
	if followTail {
		p.logs.GotoBottom()
	}

	p.applyResults()
}

func (p *ControlPanel) resize(width, height int) {
	p.width = width
	p.height = height

	leftWidth := int(float64(width) * 0.6) //nolint:mnd // same split as RenderTwoColumnLayout

	p.targets.SetWidth(max(shared.InnerWidth(leftWidth)-targetsCursorWidth, minTargetsWidth))

	inner := shared.InnerWidth(width)
	p.help.Width = inner

	available := height - topSectionHeight - chromeHeight
	logHeight := max(available/2, shared.MinPanelHeight) //nolint:mnd // logs and results share the rest
	tableHeight := max(available-logHeight, shared.MinPanelHeight)

	p.logs.Width = inner
	p.logs.Height = logHeight

	p.results.SetColumns(widgets.ResultColumns(inner))
	p.results.SetWidth(inner)
	p.results.SetHeight(tableHeight)
}

func (p *ControlPanel) selectedResult() (gateway.ResultRow, bool) {
	cursor := p.results.Cursor()
	if cursor < 0 || cursor >= len(p.visible) {
		return gateway.ResultRow{}, false
	}

	return p.visible[cursor], true
}

// setFocus moves keyboard focus, blurring everything else.
func (p *ControlPanel) setFocus(focus Section) {
	p.focus = focus

	p.targets.Blur()
	p.maxProxies.Blur()
	p.maxPerTarget.Blur()
	p.filter.Blur()
	p.results.Blur()

	switch focus {
	case SectionTargets:
		p.targets.Focus()
	case SectionMaxProxies:
		p.maxProxies.Focus()
	case SectionMaxPerTarget:
		p.maxPerTarget.Focus()
	case SectionFilter:
		p.filter.Focus()
	case SectionResults:
		p.results.Focus()
	case SectionLogs, sectionCount:
	}
}

// syncState pulls a fresh snapshot from the engine.
func (p *ControlPanel) syncState() {
	p.state = p.engine.Snapshot()
	p.applyState()
}

// Layout constants.
const (
	targetsHeight      = 4
	targetsCursorWidth = 2
	minTargetsWidth    = 10
	topSectionHeight   = 16 // form and status sections, with borders
	chromeHeight       = 10 // title, result summary and filter, section borders, help
	boundInputWidth    = 8
	boundInputCharLim  = 7
)

func newBoundInput(placeholder string, value int) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = shared.PromptArrow
	input.Width = boundInputWidth
	input.CharLimit = boundInputCharLim

	if value > 0 {
		input.SetValue(strconv.Itoa(value))
	}

	return input
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(shared.AccentColor()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(shared.AccentColor()).
		Bold(false)

	return styles
}
