package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/soocke/focus-timer-go/domain/focus"
	"github.com/soocke/focus-timer-go/domain/presence"
	uimodel "github.com/soocke/focus-timer-go/ui/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	countdownStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA"))

	focusingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	graceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F7DC6F")).
			Bold(true)

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#FF6B6B")).
			Padding(0, 1)

	idleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080"))

	faintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

type keyMap struct {
	Toggle   key.Binding
	Warning  key.Binding
	Longer   key.Binding
	Shorter  key.Binding
	Presence key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Toggle:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start/stop")),
		Warning:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "warning mode")),
		Longer:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "longer session")),
		Shorter:  key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "shorter session")),
		Presence: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "toggle presence")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Warning, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Warning, k.Longer, k.Shorter},
		{k.Presence, k.Help, k.Quit},
	}
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// model renders the session engine in a terminal. It polls a snapshot on
// every tick; all mutations go through the engine's command methods.
type model struct {
	fsm   *focus.SessionFSM
	sim   *presence.Simulator // nil when capturing live frames
	meter *uimodel.MeterModel

	keys keyMap
	help help.Model

	snap     focus.Snapshot
	minutes  int
	warnMode bool
	width    int
	height   int
}

func newModel(fsm *focus.SessionFSM, sim *presence.Simulator, minutes int, warnMode bool) model {
	m := model{
		fsm:      fsm,
		sim:      sim,
		meter:    uimodel.NewMeterModel(),
		keys:     defaultKeys(),
		help:     help.New(),
		snap:     fsm.Snapshot(),
		minutes:  minutes,
		warnMode: warnMode,
	}
	if sim == nil {
		m.keys.Presence.SetEnabled(false)
	}
	return m
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		m.snap = m.fsm.Snapshot()
		focusing := m.snap.State == focus.StatePresent || m.snap.State == focus.StateAbsentGrace
		m.meter.OnTick(focusing, time.Time(msg))
		return m, tickCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "s":
			m.fsm.ToggleStartStop()
		case "w":
			m.warnMode = !m.warnMode
			m.fsm.SetWarningMode(m.warnMode)
		case "+", "=":
			m.adjustMinutes(5)
		case "-", "_":
			m.adjustMinutes(-5)
		case "p":
			if m.sim != nil {
				m.sim.SetDetected(!m.sim.Detected())
			}
		case "?":
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// adjustMinutes nudges the configured session length in five minute steps.
// The engine ignores duration changes while a session is active, so the
// display only moves when Inactive.
func (m *model) adjustMinutes(delta int) {
	if m.snap.State != focus.StateInactive {
		return
	}
	v := m.minutes + delta
	if v < 5 {
		v = 5
	}
	if v > 120 {
		v = 120
	}
	m.minutes = v
	m.fsm.SetCustomDuration(time.Duration(v) * time.Minute)
}

func (m model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Focus Timer"))
	b.WriteString("\n\n")
	b.WriteString(countdownStyle.Render(clock(m.snap.Remaining)))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	if m.snap.Warning {
		b.WriteString(warnStyle.Render("Come back to focus!"))
		b.WriteString("\n")
	}
	run, total := m.meter.Values()
	b.WriteString(faintStyle.Render(fmt.Sprintf("Focus: %s / %s", clock(run), clock(total))))
	b.WriteString("\n\n")
	b.WriteString(faintStyle.Render(m.statsLine()))
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(m.settingsLine()))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m model) statusLine() string {
	switch m.snap.State {
	case focus.StateCalibrating:
		return graceStyle.Render(fmt.Sprintf("Calibrating... %d", m.snap.Calibration))
	case focus.StatePresent:
		return focusingStyle.Render("Focusing")
	case focus.StateAbsentGrace:
		return graceStyle.Render("Are you there?")
	case focus.StateAutoPaused:
		if m.snap.Backgrounded {
			return pausedStyle.Render("Paused (app in background)")
		}
		return pausedStyle.Render("Paused")
	default:
		if m.snap.PermissionDenied {
			return pausedStyle.Render("Capture access denied")
		}
		return idleStyle.Render("Ready")
	}
}

func (m model) statsLine() string {
	st := m.snap.Stats
	if st.Sessions == 0 {
		return "No sessions today"
	}
	return fmt.Sprintf("Today: %d sessions, %s focused, score %d",
		st.Sessions, clock(st.TotalFocus), st.Score)
}

func (m model) settingsLine() string {
	mode := "off"
	if m.warnMode {
		mode = "on"
	}
	line := fmt.Sprintf("Session length: %d min  Warning mode: %s", m.minutes, mode)
	if m.sim != nil {
		state := "absent"
		if m.sim.Detected() {
			state = "detected"
		}
		line += "  Presence: simulated (" + state + ")"
	}
	return line
}

func clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int(d.Round(time.Second).Seconds())
	if s >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", s/3600, (s%3600)/60, s%60)
	}
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
