package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"

	"github.com/rshade/hpicker/internal/picker"
)

// Timing and motion constants for the terminal host.
const (
	animationInterval = 16 * time.Millisecond
	dragSettleDelay   = 150 * time.Millisecond
	flingInterval     = 16 * time.Millisecond

	// flingFriction is the fraction of velocity kept per fling frame.
	flingFriction = 0.8
	// flingMinVelocity is the wheel burst velocity, in columns per frame, that
	// keeps the strip moving after the burst ends.
	flingMinVelocity = 2.0
	// flingStopVelocity ends a fling.
	flingStopVelocity = 0.5
	// flingMaxVelocity caps accumulated wheel velocity.
	flingMaxVelocity = 40.0

	// DefaultCellHeight is the number of rows a cell occupies.
	DefaultCellHeight = 3

	paddingStep  = 0.1
	noSelection  = -1
	stripTopRow  = 1
	ellipsis     = "…"
	defaultTitle = "hpicker"
)

// deferredMsg runs the tasks queued through the engine's scheduler.
type deferredMsg struct{}

// animationTickMsg advances a programmatic scroll animation.
type animationTickMsg struct{}

// dragSettleMsg ends a keyboard or wheel drag once input has been idle.
type dragSettleMsg struct {
	gen int
}

// flingTickMsg advances momentum scrolling after a wheel burst.
type flingTickMsg struct {
	gen int
}

// ModelConfig configures a PickerModel.
type ModelConfig struct {
	// Title is shown above the strip.
	Title string
	// Options configures the selection engine.
	Options picker.Options
	// Attributes styles cell titles.
	Attributes TitleAttributes
	// CellHeight is the number of rows per cell. Zero uses DefaultCellHeight.
	CellHeight int
	// Selection is requested before the first reload. Negative means none.
	Selection int
	// Sink observes picker events in addition to the model's own status line.
	Sink picker.EventSink
	// Logger receives engine and host debug output.
	Logger zerolog.Logger
	// Demo enables the padding and layout controls and the demo status line.
	Demo bool
}

// DefaultModelConfig returns the configuration used by the pick command.
func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		Title:      defaultTitle,
		Options:    picker.DefaultOptions(),
		Attributes: DefaultTitleAttributes(),
		CellHeight: DefaultCellHeight,
		Selection:  noSelection,
		Logger:     zerolog.Nop(),
	}
}

// pointerState tracks a held left mouse button.
type pointerState struct {
	pressed  bool
	dragging bool
	lastX    int
}

// PickerModel is the Bubble Tea model hosting a selection engine over a Strip.
type PickerModel struct {
	engine *picker.Engine
	strip  *Strip
	source picker.ItemSource
	cfg    ModelConfig
	logger zerolog.Logger

	styles Styles
	keys   KeyMap
	help   help.Model

	// Work deferred by the engine, run on the next loop iteration
	deferred    []func()
	flushQueued bool

	// Demo status
	willSelect int
	didSelect  int

	// Outcome
	chosen    int
	done      bool
	cancelled bool

	// Motion
	dragGen       int
	animTicking   bool
	velocity      float64
	flinging      bool
	flingVelocity float64
	flingGen      int
	pointer       pointerState

	width int
}

// NewPickerModel creates a model over src. The strip has no width until the first
// tea.WindowSizeMsg, so an initial selection stays pending until then.
func NewPickerModel(src picker.ItemSource, cfg ModelConfig) *PickerModel {
	if cfg.CellHeight <= 0 {
		cfg.CellHeight = DefaultCellHeight
	}
	if cfg.Title == "" {
		cfg.Title = defaultTitle
	}

	m := &PickerModel{
		strip:      NewStrip(),
		source:     src,
		cfg:        cfg,
		logger:     cfg.Logger,
		styles:     NewStyles(cfg.Attributes),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		willSelect: noSelection,
		didSelect:  noSelection,
		chosen:     noSelection,
	}
	m.keys.setDemo(cfg.Demo)
	m.strip.SetViewport(0, cfg.CellHeight)

	m.engine = picker.NewEngine(m.strip, nil, cfg.Options)
	m.engine.SetLogger(cfg.Logger)
	m.engine.SetScheduler(picker.SchedulerFunc(m.deferTask))
	m.engine.SetEventSink(picker.MultiSink(picker.SinkFuncs{
		OnWillSelect: func(index int) { m.willSelect = index },
		OnDidSelect:  func(index int) { m.didSelect = index },
	}, cfg.Sink))

	if cfg.Selection >= 0 {
		m.engine.SelectItem(cfg.Selection, false)
	}
	m.engine.SetSource(src)
	return m
}

// Engine returns the model's selection engine.
func (m *PickerModel) Engine() *picker.Engine {
	return m.engine
}

// Strip returns the model's cell host.
func (m *PickerModel) Strip() *Strip {
	return m.strip
}

// Chosen returns the index confirmed with the choose key.
func (m *PickerModel) Chosen() (int, bool) {
	if !m.done {
		return 0, false
	}
	return m.chosen, true
}

// ChosenTitle returns the title of the confirmed item, or "" when nothing was chosen.
func (m *PickerModel) ChosenTitle() string {
	idx, ok := m.Chosen()
	if !ok {
		return ""
	}
	return picker.ContentAt(m.source, idx).Title
}

// Cancelled reports whether the user quit without choosing.
func (m *PickerModel) Cancelled() bool {
	return m.cancelled
}

// Init implements tea.Model.
func (m *PickerModel) Init() tea.Cmd {
	return m.followUp()
}

// Update implements tea.Model.
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg)
	case tea.KeyMsg:
		cmd = m.handleKeyMsg(msg)
	case tea.MouseMsg:
		cmd = m.handleMouseMsg(msg)
	case deferredMsg:
		m.flushDeferred()
	case animationTickMsg:
		m.animTicking = false
		m.strip.Step()
	case dragSettleMsg:
		cmd = m.handleDragSettle(msg)
	case flingTickMsg:
		cmd = m.handleFlingTick(msg)
	}

	return m, tea.Batch(cmd, m.followUp())
}

// followUp schedules the next deferred flush and animation frame when needed.
func (m *PickerModel) followUp() tea.Cmd {
	var cmds []tea.Cmd
	if len(m.deferred) > 0 && !m.flushQueued {
		m.flushQueued = true
		cmds = append(cmds, func() tea.Msg { return deferredMsg{} })
	}
	if m.strip.Animating() && !m.animTicking {
		m.animTicking = true
		cmds = append(cmds, tea.Tick(animationInterval, func(time.Time) tea.Msg {
			return animationTickMsg{}
		}))
	}
	return tea.Batch(cmds...)
}

// deferTask queues fn for the next loop iteration.
func (m *PickerModel) deferTask(fn func()) {
	m.deferred = append(m.deferred, fn)
}

// flushDeferred runs queued tasks. Tasks queued while flushing wait for the next hop.
func (m *PickerModel) flushDeferred() {
	m.flushQueued = false
	tasks := m.deferred
	m.deferred = nil
	for _, fn := range tasks {
		fn()
	}
}

func (m *PickerModel) handleResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.help.Width = msg.Width
	m.strip.SetViewport(msg.Width, m.cfg.CellHeight)
	m.logger.Debug().Int("width", msg.Width).Int("height", msg.Height).Msg("viewport resized")
	m.engine.ReloadData()
}

// handleKeyMsg processes keyboard input.
func (m *PickerModel) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	count := m.engine.ItemCount()
	current, hasCurrent := m.engine.Selected()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancelled = true
		return tea.Quit
	case key.Matches(msg, m.keys.Choose):
		if !hasCurrent {
			return nil
		}
		m.chosen = current
		m.done = true
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Prev):
		if count > 0 {
			m.selectItem(max(current-1, 0))
		}
	case key.Matches(msg, m.keys.Next):
		if count > 0 {
			next := 0
			if hasCurrent {
				next = min(current+1, count-1)
			}
			m.selectItem(next)
		}
	case key.Matches(msg, m.keys.First):
		if count > 0 {
			m.selectItem(0)
		}
	case key.Matches(msg, m.keys.Last):
		if count > 0 {
			m.selectItem(count - 1)
		}
	case key.Matches(msg, m.keys.DragLeft):
		return m.dragBy(-m.dragStep(), false)
	case key.Matches(msg, m.keys.DragRight):
		return m.dragBy(m.dragStep(), false)
	case key.Matches(msg, m.keys.PaddingUp):
		m.setPaddingScale(m.engine.Options().PaddingScale + paddingStep)
	case key.Matches(msg, m.keys.PaddingDown):
		m.setPaddingScale(m.engine.Options().PaddingScale - paddingStep)
	case key.Matches(msg, m.keys.ToggleShowAll):
		m.engine.SetShowAllItems(!m.engine.Options().ShowAllItems)
	case key.Matches(msg, m.keys.ToggleTracking):
		m.engine.SetScrollTracking(!m.engine.Options().AllowSelectionWhileScrolling)
	}
	return nil
}

func (m *PickerModel) selectItem(index int) {
	m.stopFling()
	m.cancelDrag()
	m.engine.SelectItem(index, true)
}

func (m *PickerModel) setPaddingScale(scale float64) {
	scale = math.Max(math.Round(scale*10)/10, 0)
	m.engine.SetPaddingScale(scale)
}

// handleMouseMsg turns wheel input into drags and left-button input into touches,
// drags and taps.
func (m *PickerModel) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelLeft, tea.MouseButtonWheelUp:
			return m.dragBy(-m.wheelStep(), true)
		case tea.MouseButtonWheelRight, tea.MouseButtonWheelDown:
			return m.dragBy(m.wheelStep(), true)
		case tea.MouseButtonLeft:
			m.stopFling()
			m.cancelDrag()
			m.pointer = pointerState{pressed: true, lastX: msg.X}
			m.engine.HandleTouchBegin([]picker.Touch{{X: msg.X, Y: msg.Y}})
		}
	case tea.MouseActionMotion:
		if !m.pointer.pressed {
			return nil
		}
		delta := m.pointer.lastX - msg.X
		m.pointer.lastX = msg.X
		if delta != 0 && m.scrollBy(float64(delta)) {
			m.pointer.dragging = true
		}
	case tea.MouseActionRelease:
		if !m.pointer.pressed {
			return nil
		}
		p := m.pointer
		m.pointer = pointerState{}
		m.engine.HandleTouchEnd([]picker.Touch{{X: msg.X, Y: msg.Y}})
		if p.dragging {
			m.cancelDrag()
			m.engine.HandleDragEnd(false)
			return nil
		}
		if m.inStrip(msg.Y) {
			if idx, ok := m.strip.PositionAt(msg.X); ok {
				m.selectItem(idx)
			}
		}
	}
	return nil
}

// inStrip reports whether screen row y falls on the strip.
func (m *PickerModel) inStrip(y int) bool {
	return y >= stripTopRow && y < stripTopRow+m.cfg.CellHeight
}

// scrollBy moves the strip as a user scroll and notifies the engine.
func (m *PickerModel) scrollBy(delta float64) bool {
	if !m.strip.DragBy(delta) {
		return false
	}
	m.engine.HandleScroll(picker.ScrollEvent{Offset: m.strip.ScrollOffset()})
	return true
}

// dragBy performs one step of a keyboard or wheel drag and arms the settle timer.
// Wheel steps accumulate velocity so a burst ends in a fling.
func (m *PickerModel) dragBy(delta float64, wheel bool) tea.Cmd {
	m.stopFling()
	if !m.scrollBy(delta) {
		return nil
	}

	if wheel {
		m.velocity = math.Max(math.Min(m.velocity+delta, flingMaxVelocity), -flingMaxVelocity)
	} else {
		m.velocity = 0
	}

	m.dragGen++
	gen := m.dragGen
	return tea.Tick(dragSettleDelay, func(time.Time) tea.Msg {
		return dragSettleMsg{gen: gen}
	})
}

func (m *PickerModel) handleDragSettle(msg dragSettleMsg) tea.Cmd {
	if msg.gen != m.dragGen {
		return nil
	}

	v := m.velocity
	m.velocity = 0
	if math.Abs(v) < flingMinVelocity {
		m.engine.HandleDragEnd(false)
		return nil
	}

	m.engine.HandleDragEnd(true)
	m.flinging = true
	m.flingVelocity = v / 2
	m.flingGen++
	return m.flingTick()
}

func (m *PickerModel) handleFlingTick(msg flingTickMsg) tea.Cmd {
	if !m.flinging || msg.gen != m.flingGen {
		return nil
	}

	moved := m.scrollBy(m.flingVelocity)
	m.flingVelocity *= flingFriction
	if !moved || math.Abs(m.flingVelocity) < flingStopVelocity {
		m.flinging = false
		m.engine.HandleDecelerationEnd()
		return nil
	}
	return m.flingTick()
}

func (m *PickerModel) flingTick() tea.Cmd {
	gen := m.flingGen
	return tea.Tick(flingInterval, func(time.Time) tea.Msg {
		return flingTickMsg{gen: gen}
	})
}

// stopFling abandons momentum scrolling when new input takes over the strip.
func (m *PickerModel) stopFling() {
	if m.flinging {
		m.flinging = false
		m.flingGen++
	}
}

// cancelDrag disarms a pending drag-settle timer so it cannot resolve the center
// after something else has taken over the strip.
func (m *PickerModel) cancelDrag() {
	m.dragGen++
	m.velocity = 0
}

func (m *PickerModel) dragStep() float64 {
	return math.Max(math.Round(m.strip.CellWidth()/3), 1)
}

func (m *PickerModel) wheelStep() float64 {
	return math.Max(math.Round(m.strip.CellWidth()/4), 1)
}

// View implements tea.Model.
func (m *PickerModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render(m.cfg.Title))
	sb.WriteString("\n")

	if m.width <= 0 {
		sb.WriteString(m.styles.Muted.Render("Loading..."))
		return sb.String()
	}

	if m.engine.ItemCount() == 0 {
		sb.WriteString(m.styles.Muted.Render("No items"))
		sb.WriteString("\n")
	} else {
		sb.WriteString(m.strip.View(m.renderCell))
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", m.strip.CenterColumn()))
		sb.WriteString(m.styles.Marker.Render(IconMarker))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Status.Render(m.statusLine()))
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// renderCell draws one cell. Custom views render themselves; titles are centered
// in the cell and truncated to fit.
func (m *PickerModel) renderCell(index, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	selected := false
	if cur, ok := m.engine.Selected(); ok {
		selected = cur == index
	}

	content := picker.ContentAt(m.source, index)
	if content.View != nil {
		return content.View.Render(width, height, selected)
	}

	style := m.styles.Deselected
	if selected {
		style = m.styles.Selected
	}
	style = style.
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)
	if content.Background != "" {
		style = style.Background(lipgloss.Color(content.Background))
	}

	return style.Render(runewidth.Truncate(content.Title, width, ellipsis))
}

// statusLine describes the selection below the strip.
func (m *PickerModel) statusLine() string {
	count := m.engine.ItemCount()

	if m.cfg.Demo {
		opts := m.engine.Options()
		tracking := "off"
		if opts.AllowSelectionWhileScrolling {
			tracking = "on"
		}
		return fmt.Sprintf("%s  %s  padding %.1f · %s · tracking %s",
			describeIndex("Will select item", m.willSelect),
			describeIndex("Selected item", m.didSelect),
			opts.PaddingScale, opts.Mode(), tracking)
	}

	if cur, ok := m.engine.Selected(); ok {
		return fmt.Sprintf("%d/%d", cur+1, count)
	}
	if count == 0 {
		return ""
	}
	return fmt.Sprintf("-/%d", count)
}

func describeIndex(label string, index int) string {
	if index < 0 {
		return label + ": -"
	}
	return fmt.Sprintf("%s: %d", label, index+1)
}
