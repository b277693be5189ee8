// Package chart renders a single-series Braille line chart inside a bordered,
// titled block.
package chart

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	// MinWidth and MinHeight are the smallest sizes that fit a plot.
	MinWidth  = 20
	MinHeight = 8

	tooSmallNotice = "terminal too small"
)

// Point is a data point in chart coordinates.
type Point struct {
	X float64
	Y float64
}

// Label is an axis tick label.
type Label struct {
	Text  string
	Style lipgloss.Style
}

// Axis describes one chart axis. Bounds are fixed; data outside them is
// clipped, never rescaled.
type Axis struct {
	Title  string
	Bounds [2]float64
	Labels []Label
	Style  lipgloss.Style
}

// Dataset is the plotted line series.
type Dataset struct {
	Name   string
	Points []Point
	Style  lipgloss.Style
}

// Chart is a line chart with one dataset.
type Chart struct {
	Title      string
	TitleStyle lipgloss.Style
	XAxis      Axis
	YAxis      Axis
	Dataset    Dataset
}

// Render draws the chart into a block of exactly width by height cells.
func (c Chart) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	innerWidth := width - 2
	innerHeight := height - 2
	graphWidth := innerWidth - c.yLabelWidth() - 1
	graphHeight := innerHeight - 4
	if width < MinWidth || height < MinHeight || graphWidth < 1 || graphHeight < 1 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, truncate(tooSmallNotice, width))
	}

	title := truncate(c.Title, innerWidth)
	top := "┌" + c.TitleStyle.Render(title)
	top += strings.Repeat("─", maxInt(0, innerWidth-lipgloss.Width(title))) + "┐"

	body := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, true, true).
		Render(strings.Join(c.plot(innerWidth, innerHeight), "\n"))

	return top + "\n" + body
}

func (c Chart) yLabelWidth() int {
	width := 0
	for _, label := range c.YAxis.Labels {
		width = maxInt(width, lipgloss.Width(label.Text))
	}
	return width
}

// plot lays out the area inside the block:
//
//	row 0          y-axis title, legend
//	rows 1..n      y labels, y axis, canvas
//	row n+1        x axis
//	row n+2        x labels
//	row n+3        x-axis title
//
// Render guarantees the graph area is at least one cell.
func (c Chart) plot(width, height int) []string {
	labelWidth := c.yLabelWidth()
	graphWidth := width - labelWidth - 1
	graphHeight := height - 4

	lines := make([]string, 0, height)
	lines = append(lines, c.headerLine(width))

	canvas := NewCanvas(graphWidth, graphHeight)
	c.draw(canvas)

	yLabels := make(map[int]Label, len(c.YAxis.Labels))
	for i, label := range c.YAxis.Labels {
		row := graphHeight - 1 - spread(i, len(c.YAxis.Labels), graphHeight)
		yLabels[row] = label
	}

	for row, cells := range canvas.Rows() {
		prefix := pad(labelWidth)
		if label, ok := yLabels[row]; ok {
			prefix = label.Style.Render(label.Text) + pad(labelWidth-lipgloss.Width(label.Text))
		}
		lines = append(lines, prefix+c.YAxis.Style.Render("│")+c.Dataset.Style.Render(cells))
	}

	lines = append(lines, pad(labelWidth)+c.XAxis.Style.Render("└"+strings.Repeat("─", graphWidth)))
	lines = append(lines, pad(labelWidth+1)+xLabelLine(c.XAxis.Labels, graphWidth))

	title := truncate(c.XAxis.Title, width)
	lines = append(lines, pad(width-lipgloss.Width(title))+c.XAxis.Style.Render(title))
	return lines
}

func (c Chart) headerLine(width int) string {
	yTitle := truncate(c.YAxis.Title, width)
	used := lipgloss.Width(yTitle)
	line := c.YAxis.Style.Render(yTitle)

	legend := c.Dataset.Name
	if legend != "" && used+1+lipgloss.Width(legend) <= width {
		gap := width - used - lipgloss.Width(legend)
		return line + pad(gap) + c.Dataset.Style.Render(legend)
	}
	return line + pad(width-used)
}

// draw projects the dataset into dot space and joins consecutive points.
// Segments are clipped to the canvas before they are rasterised, so points
// far outside the bounds cost no more than points inside them.
func (c Chart) draw(canvas *Canvas) {
	maxX := float64(canvas.DotWidth() - 1)
	maxY := float64(canvas.DotHeight() - 1)
	if maxX < 0 || maxY < 0 {
		return
	}

	var prevX, prevY float64
	havePrev := false
	for _, p := range c.Dataset.Points {
		x, y, ok := c.project(p, maxX, maxY)
		if !ok {
			havePrev = false
			continue
		}
		if havePrev {
			if x0, y0, x1, y1, visible := clipSegment(prevX, prevY, x, y, maxX, maxY); visible {
				canvas.Line(roundDot(x0), roundDot(y0), roundDot(x1), roundDot(y1))
			}
		} else if x >= 0 && x <= maxX && y >= 0 && y <= maxY {
			canvas.Set(roundDot(x), roundDot(y))
		}
		prevX, prevY, havePrev = x, y, true
	}
}

// project maps p to dot space, where the plot area spans [0, maxX] by
// [0, maxY] with y growing downwards. The result may lie outside that area.
func (c Chart) project(p Point, maxX, maxY float64) (float64, float64, bool) {
	xMin, xMax := c.XAxis.Bounds[0], c.XAxis.Bounds[1]
	yMin, yMax := c.YAxis.Bounds[0], c.YAxis.Bounds[1]
	if xMax <= xMin || yMax <= yMin {
		return 0, 0, false
	}
	x := (p.X - xMin) / (xMax - xMin) * maxX
	y := (yMax - p.Y) / (yMax - yMin) * maxY
	if !finite(x) || !finite(y) {
		return 0, 0, false
	}
	return x, y, true
}

// clipSegment clips a segment to the rectangle [0, maxX] by [0, maxY]
// using Liang-Barsky. It reports false when no part of the segment is
// inside.
func clipSegment(x0, y0, x1, y1, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	if !finite(dx) || !finite(dy) {
		return 0, 0, 0, 0, false
	}
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0},
		{dx, maxX - x0},
		{-dy, y0},
		{dy, maxY - y0},
	}
	for _, edge := range edges {
		p, q := edge[0], edge[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func roundDot(v float64) int {
	return int(math.Round(v))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// xLabelLine spreads labels across width: the first starts at the origin,
// the last ends at the right edge and the rest are centred on their tick.
// Labels that would overlap a previous one are skipped.
func xLabelLine(labels []Label, width int) string {
	var b strings.Builder
	cursor := 0
	for i, label := range labels {
		w := lipgloss.Width(label.Text)
		tick := spread(i, len(labels), width)
		start := tick - w/2
		switch {
		case i == 0:
			start = 0
		case i == len(labels)-1:
			start = width - w
		}
		if start < cursor || start+w > width {
			continue
		}
		b.WriteString(pad(start - cursor))
		b.WriteString(label.Style.Render(label.Text))
		cursor = start + w
	}
	b.WriteString(pad(width - cursor))
	return b.String()
}

// spread returns the position of the i-th of n evenly spaced ticks across
// size cells.
func spread(i, n, size int) int {
	if n <= 1 || size <= 1 {
		return 0
	}
	return int(math.Round(float64(i) * float64(size-1) / float64(n-1)))
}

// truncate cuts text to at most width display cells.
func truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "")
}

func pad(n int) string {
	return strings.Repeat(" ", maxInt(0, n))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
