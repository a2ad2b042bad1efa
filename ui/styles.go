package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ftahirops/ledstat/model"
)

var (
	// Colors
	colorRed   = lipgloss.Color("#FF5555")
	colorGreen = lipgloss.Color("#50FA7B")
	colorBlue  = lipgloss.Color("#8BE9FD")
	colorWhite = lipgloss.Color("#F8F8F2")
	colorGray  = lipgloss.Color("#6272A4")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	labelStyle = lipgloss.NewStyle().Foreground(colorGray).Width(10)
	valueStyle = lipgloss.NewStyle().Foreground(colorWhite)
	critStyle  = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(colorGray)
)

// channelColor is the foreground used for a channel's bar.
func channelColor(c model.Channel) lipgloss.Color {
	switch c {
	case model.ChannelRed:
		return colorRed
	case model.ChannelGreen:
		return colorGreen
	default:
		return colorBlue
	}
}

// hexColor formats an LED colour for lipgloss.
func hexColor(c model.RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// Swatch renders one LED as a coloured block of the given width.
func Swatch(c model.RGB, width int) string {
	if width < 1 {
		width = 1
	}
	return lipgloss.NewStyle().
		Background(hexColor(c)).
		Render(strings.Repeat(" ", width))
}

// Strip renders a whole frame as adjacent swatches.
func Strip(f model.Frame, width int) string {
	cells := make([]string, len(f))
	for i, c := range f {
		cells[i] = Swatch(c, width)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
