package charttui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mtclinton/tui-examples/internal/chart"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	axisStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	seriesStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	boldStyle   = lipgloss.NewStyle().Bold(true)
)

// axisLabels returns the three tick labels for bounds: the minimum, the
// midpoint and the maximum. The outer labels are bold.
func axisLabels(bounds [2]float64) []chart.Label {
	mid := (bounds[0] + bounds[1]) / 2
	return []chart.Label{
		{Text: strconv.FormatFloat(bounds[0], 'f', -1, 64), Style: boldStyle},
		{Text: fmt.Sprintf("%.1f", mid)},
		{Text: fmt.Sprintf("%.1f", bounds[1]), Style: boldStyle},
	}
}

func newAxis(title string, bounds [2]float64) chart.Axis {
	return chart.Axis{
		Title:  title,
		Bounds: bounds,
		Labels: axisLabels(bounds),
		Style:  axisStyle,
	}
}
