package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/ftahirops/ledstat/engine"
	"github.com/ftahirops/ledstat/model"
)

type tickMsg time.Time

type collectMsg struct {
	reading model.Reading
	err     error
}

// Model is the bubbletea model of the live preview. It runs the same
// pipeline as the daemon but draws the frame instead of sending it.
type Model struct {
	ticker   engine.Ticker
	channels engine.Channels
	interval time.Duration
	width    int

	reading model.Reading
	ticks   int
	paused  bool
	// pending is set while a tick or collect is outstanding. At most one
	// is in flight so the ticker is never called concurrently.
	pending bool
	err     error
}

// NewModel creates a preview model.
func NewModel(ticker engine.Ticker, channels engine.Channels, interval time.Duration) Model {
	return Model{
		ticker:   ticker,
		channels: channels,
		interval: interval,
		pending:  true, // Init collects
	}
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	return collectOnce(m.ticker)
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func collectOnce(ticker engine.Ticker) tea.Cmd {
	return func() tea.Msg {
		_, reading, err := ticker.Tick()
		return collectMsg{reading: reading, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
			if !m.paused && !m.pending {
				m.pending = true
				return m, collectOnce(m.ticker)
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		if m.paused {
			m.pending = false
			return m, nil
		}
		return m, collectOnce(m.ticker)

	case collectMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.reading = msg.reading
		m.ticks++
		// The next cycle starts one interval after this one finished,
		// like the daemon's default cadence.
		return m, tick(m.interval)
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return critStyle.Render("Error: "+m.err.Error()) + "\n"
	}

	var b strings.Builder
	status := fmt.Sprintf("tick %d · every %s", m.ticks, m.interval)
	if m.paused {
		status += " · paused"
	}
	b.WriteString(titleStyle.Render("ledstat preview") + "  " + helpStyle.Render(status) + "\n\n")

	f := m.reading.Frame
	if len(f) > 0 {
		// Two rows so each LED reads as a roughly square block.
		strip := Strip(f, m.swatchWidth(len(f)))
		b.WriteString(strip + "\n" + strip + "\n\n")
	}

	var rows []string
	for c, sub := range m.channels {
		if sub == "" {
			continue
		}
		ch := model.Channel(c)
		rows = append(rows, m.channelRow(ch, sub))
	}
	b.WriteString(panelStyle.Render(strings.Join(rows, "\n")) + "\n")
	b.WriteString(helpStyle.Render("space pause · q quit"))
	return b.String()
}

func (m Model) swatchWidth(n int) int {
	if m.width <= 0 || n == 0 {
		return 4
	}
	w := (m.width - 4) / n
	if w < 1 {
		return 1
	}
	if w > 8 {
		return 8
	}
	return w
}

func (m Model) channelRow(ch model.Channel, sub model.Subsystem) string {
	r := m.reading
	label := labelStyle.Render(fmt.Sprintf("%s %s", ch, sub))
	bar := lipgloss.NewStyle().Foreground(channelColor(ch))

	var parts []string
	switch sub {
	case model.SubsystemCPU:
		for _, v := range r.CPU {
			parts = append(parts, bar.Render(fmt.Sprintf("%3.0f%%", v*100)))
		}
	case model.SubsystemDisk:
		parts = append(parts,
			bar.Render(meter(r.Disk[0]))+valueStyle.Render(" read "+humanize.Bytes(r.DiskDelta.A)),
			bar.Render(meter(r.Disk[1]))+valueStyle.Render(" write "+humanize.Bytes(r.DiskDelta.B)))
	case model.SubsystemNetwork:
		parts = append(parts,
			bar.Render(meter(r.Net[0]))+valueStyle.Render(" recv "+humanize.Bytes(r.NetDelta.A)),
			bar.Render(meter(r.Net[1]))+valueStyle.Render(" sent "+humanize.Bytes(r.NetDelta.B)))
	}
	return label + " " + strings.Join(parts, "  ")
}

// meter draws a 10-cell bar for a value in [0,1].
func meter(v float64) string {
	n := int(engine.Clamp01(v)*10 + 0.5)
	return strings.Repeat("█", n) + strings.Repeat("░", 10-n)
}
