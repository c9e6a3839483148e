package main

import (
	"math"
	"strings"

	flow "github.com/grindlemire/go-flow"
	"github.com/mattn/go-runewidth"
)

// cellRect is a frame converted to inclusive terminal cell coordinates.
type cellRect struct {
	x0, y0, x1, y1 int
}

// toCells scales r down by the cell size. ok is false when the frame covers
// no whole cell.
func toCells(r flow.Rect, cellW, cellH float64) (cellRect, bool) {
	c := cellRect{
		x0: int(math.Round(r.X / cellW)),
		y0: int(math.Round(r.Y / cellH)),
		x1: int(math.Round(r.Right()/cellW)) - 1,
		y1: int(math.Round(r.Bottom()/cellH)) - 1,
	}
	return c, c.x1 >= c.x0 && c.y1 >= c.y0
}

// canvas is a grid of terminal cells that frame outlines are drawn onto.
// Each cell remembers which frame drew it last.
type canvas struct {
	width, height int
	cells         [][]rune
	owner         [][]int
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: max(width, 0), height: max(height, 0)}
	c.cells = make([][]rune, c.height)
	c.owner = make([][]int, c.height)
	for y := range c.cells {
		c.cells[y] = []rune(strings.Repeat(" ", c.width))
		c.owner[y] = make([]int, c.width)
		for x := range c.owner[y] {
			c.owner[y][x] = -1
		}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, owner int) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x] = r
	c.owner[y][x] = owner
}

// drawFrame outlines r and writes label into the top border, cut at the
// display width that fits.
// Frames one cell thick become lines; single cells become dots.
func (c *canvas) drawFrame(r cellRect, label string, owner int) {
	switch {
	case r.x0 == r.x1 && r.y0 == r.y1:
		c.set(r.x0, r.y0, '·', owner)
		return
	case r.y0 == r.y1:
		for x := r.x0; x <= r.x1; x++ {
			c.set(x, r.y0, '─', owner)
		}
		return
	case r.x0 == r.x1:
		for y := r.y0; y <= r.y1; y++ {
			c.set(r.x0, y, '│', owner)
		}
		return
	}

	for x := r.x0 + 1; x < r.x1; x++ {
		c.set(x, r.y0, '─', owner)
		c.set(x, r.y1, '─', owner)
	}
	for y := r.y0 + 1; y < r.y1; y++ {
		c.set(r.x0, y, '│', owner)
		c.set(r.x1, y, '│', owner)
	}
	c.set(r.x0, r.y0, '┌', owner)
	c.set(r.x1, r.y0, '┐', owner)
	c.set(r.x0, r.y1, '└', owner)
	c.set(r.x1, r.y1, '┘', owner)

	x := r.x0 + 1
	for _, ch := range label {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w-1 >= r.x1 {
			break
		}
		c.set(x, r.y0, ch, owner)
		// Wide runes own the following cell too.
		for i := 1; i < w; i++ {
			c.set(x+i, r.y0, 0, owner)
		}
		x += w
	}
}

// cellString joins a run of cells, dropping the placeholders behind wide
// runes.
func cellString(cells []rune) string {
	var b strings.Builder
	for _, r := range cells {
		if r != 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// lines returns the plain rows of the canvas.
func (c *canvas) lines() []string {
	out := make([]string, c.height)
	for y, row := range c.cells {
		out[y] = cellString(row)
	}
	return out
}

// render returns the canvas with the cells drawn by the selected frame
// highlighted and everything else dimmed.
func (c *canvas) render(selected int) string {
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && (c.owner[y][x] == selected) == (c.owner[y][start] == selected) {
				continue
			}
			run := cellString(row[start:x])
			if c.owner[y][start] == selected {
				b.WriteString(styleSelected.Render(run))
			} else {
				b.WriteString(styleBorder.Render(run))
			}
			start = x
		}
	}
	return b.String()
}
