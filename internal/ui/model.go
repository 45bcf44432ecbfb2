package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/flowpomo/internal/domain"
	"github.com/renato0307/flowpomo/internal/logging"
	"github.com/renato0307/flowpomo/internal/services"
	"github.com/renato0307/flowpomo/internal/theme"
)

const tipRotation = 15 * time.Second

// Model is the timer screen for one engine
type Model struct {
	categoryCursor int
	devMode        bool
	engine         *services.Engine
	err            error
	events         <-chan services.TimerEvent
	help           help.Model
	keys           KeyMap
	lastCommit     *domain.SessionRecord
	state          domain.TimerState
	userID         string
	width          int
}

// NewModel creates the timer screen. The model subscribes to the engine's
// timer; closing the engine ends the subscription.
func NewModel(engine *services.Engine, keys KeyMap, userID string, devMode bool) *Model {
	return &Model{
		devMode: devMode,
		engine:  engine,
		events:  engine.Timer().Subscribe(64),
		help:    help.New(),
		keys:    keys,
		state:   engine.State(),
		userID:  userID,
	}
}

func (m *Model) Init() tea.Cmd {
	return waitForTimerEvent(m.events)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case timerEventMsg:
		m.state = msg.State
		if msg.Type == services.EventCommitted && msg.Record != nil {
			m.lastCommit = msg.Record
		}
		return m, waitForTimerEvent(m.events)

	case timerClosedMsg:
		logging.Logger.Debug("Timer event stream closed")
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	timer := m.engine.Timer()

	switch {
	case key.Matches(msg, m.keys.Application.ForceQuit.Binding),
		key.Matches(msg, m.keys.Application.Quit.Binding):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Application.Help.Binding):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Timer.StartPause.Binding):
		if timer.State().Running {
			timer.Pause()
		} else if !timer.Start() {
			m.err = fmt.Errorf("the %s countdown is over, reset to start again", timer.State().Mode.Label())
		}

	case key.Matches(msg, m.keys.Timer.Reset.Binding):
		timer.Reset()

	case key.Matches(msg, m.keys.Timer.Focus.Binding):
		timer.SwitchMode(domain.ModeFocus)

	case key.Matches(msg, m.keys.Timer.ShortBreak.Binding):
		timer.SwitchMode(domain.ModeShortBreak)

	case key.Matches(msg, m.keys.Timer.LongBreak.Binding):
		timer.SwitchMode(domain.ModeLongBreak)

	case key.Matches(msg, m.keys.Categories.Up.Binding):
		if m.categoryCursor > 0 {
			m.categoryCursor--
		}

	case key.Matches(msg, m.keys.Categories.Down.Binding):
		if m.categoryCursor < len(m.engine.Selector().Categories())-1 {
			m.categoryCursor++
		}

	case key.Matches(msg, m.keys.Categories.Toggle.Binding):
		categories := m.engine.Selector().Categories()
		if len(categories) == 0 {
			m.err = fmt.Errorf("no categories yet, add one with 'flowpomo categories add'")
			break
		}
		m.categoryCursor = clamp(m.categoryCursor, 0, len(categories)-1)
		m.engine.Selector().Select(categories[m.categoryCursor])

	case key.Matches(msg, m.keys.Categories.Clear.Binding):
		m.engine.Selector().Clear()
	}

	m.state = m.engine.State()
	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(renderHeader(m.devMode, m.userID))
	b.WriteString("\n\n")
	b.WriteString(m.renderModeTabs())
	b.WriteString("\n")
	b.WriteString(m.renderClock())
	b.WriteString("\n")
	b.WriteString(theme.PhaseStyle.Render(m.phaseLine()))
	b.WriteString("\n")

	if tally := RenderTally(domain.Tally(m.state.Elapsed)); tally != "" {
		b.WriteString(tally)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderCategories())

	if m.lastCommit != nil {
		b.WriteString("\n")
		b.WriteString(theme.SubtleStyle.Render(fmt.Sprintf("logged %s of %s",
			domain.FormatDuration(m.lastCommit.Duration), m.lastCommit.Category)))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(theme.ErrorStyle.Render(formatErrorForDisplay(m.err, m.width)))
		b.WriteString("\n")
	}

	b.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)))

	if tips := m.keys.Tips(); len(tips) > 0 && !m.help.ShowAll {
		tip := tips[int(time.Now().Unix()/int64(tipRotation.Seconds()))%len(tips)]
		b.WriteString("\n")
		b.WriteString(RenderTip(tip))
	}

	return b.String()
}

func (m *Model) renderModeTabs() string {
	tabs := make([]string, 0, len(domain.Modes))
	for _, mode := range domain.Modes {
		if mode == m.state.Mode {
			style := theme.ModeTabActiveStyle.Foreground(theme.ModeColor(m.state))
			tabs = append(tabs, style.Render(mode.Label()))
			continue
		}
		tabs = append(tabs, theme.ModeTabStyle.Render(mode.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderClock() string {
	color := theme.ModeColor(m.state)
	clock := m.state.Clock()
	if m.state.Flowing {
		clock = "+" + clock
	}
	return theme.ClockStyle.Foreground(color).BorderForeground(color).Render(clock)
}

func (m *Model) phaseLine() string {
	switch m.state.Phase() {
	case domain.PhaseFlow:
		return "in flow, counting up until you stop"
	case domain.PhaseCountdown:
		return "running"
	default:
		if m.state.Flowing {
			return "paused in flow"
		}
		return "paused"
	}
}

func (m *Model) renderCategories() string {
	categories := m.engine.Selector().Categories()
	selected := m.state.SelectedCategory

	var b strings.Builder
	b.WriteString(theme.SubtleStyle.Render("Category: "))
	b.WriteString(theme.NormalStyle.Render(m.state.CategoryName()))
	b.WriteString("\n")

	if len(categories) == 0 {
		return b.String()
	}

	cursor := clamp(m.categoryCursor, 0, len(categories)-1)
	for i, c := range categories {
		prefix := "  "
		style := theme.CategoryStyle
		if i == cursor {
			prefix = "> "
			style = theme.CategoryCursorStyle
		}
		line := prefix + theme.Swatch(c.Color) + " " + style.Render(c.Name)
		if selected.Is(c.Name) {
			line += theme.SubtleStyle.Render(" ✓")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
