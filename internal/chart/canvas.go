package chart

import "strings"

const brailleBase = 0x2800

// brailleBits maps a dot position inside a cell, indexed [dy][dx], to its
// bit in the U+2800 block.
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of Braille cells. Each cell holds 2x4 dots, so a canvas of
// w by h cells has a resolution of 2w by 4h dots. Dot (0, 0) is top-left.
type Canvas struct {
	width  int
	height int
	cells  []uint8
}

// NewCanvas returns an empty canvas of width by height cells.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		width:  width,
		height: height,
		cells:  make([]uint8, width*height),
	}
}

// DotWidth is the horizontal resolution in dots.
func (c *Canvas) DotWidth() int { return c.width * 2 }

// DotHeight is the vertical resolution in dots.
func (c *Canvas) DotHeight() int { return c.height * 4 }

// Set turns on a dot. Dots outside the canvas are dropped.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.DotWidth() || y >= c.DotHeight() {
		return
	}
	idx := (y/4)*c.width + x/2
	c.cells[idx] |= brailleBits[y%4][x%2]
}

// Line draws a straight line between two dots, clipping dots that fall
// outside the canvas.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Cell returns the glyph at a cell, or a space when no dot is set.
func (c *Canvas) Cell(col, row int) rune {
	if col < 0 || row < 0 || col >= c.width || row >= c.height {
		return ' '
	}
	bits := c.cells[row*c.width+col]
	if bits == 0 {
		return ' '
	}
	return rune(brailleBase + int(bits))
}

// Rows renders the canvas, one string per cell row.
func (c *Canvas) Rows() []string {
	rows := make([]string, c.height)
	var b strings.Builder
	for row := 0; row < c.height; row++ {
		b.Reset()
		for col := 0; col < c.width; col++ {
			b.WriteRune(c.Cell(col, row))
		}
		rows[row] = b.String()
	}
	return rows
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
