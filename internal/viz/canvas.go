package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// UnitsPerPixel is the edge of one canvas pixel in logical units.
const UnitsPerPixel = 10

const halfBlock = "▀"

// Canvas is a grid of hex colors. Each character row holds two pixel rows:
// the upper one drawn as the foreground of "▀", the lower one as its
// background.
type Canvas struct {
	Width, Height int
	Pix           [][]string
	styles        map[[2]string]lipgloss.Style
}

// NewCanvas sizes a canvas for cols×rows character cells.
func NewCanvas(cols, rows int) *Canvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c := &Canvas{
		Width:  cols,
		Height: rows * 2,
		Pix:    make([][]string, rows*2),
		styles: make(map[[2]string]lipgloss.Style),
	}
	for i := range c.Pix {
		c.Pix[i] = make([]string, cols)
	}
	return c
}

// Rows returns the height in character cells.
func (c *Canvas) Rows() int { return c.Height / 2 }

// Units returns the canvas extent in logical units.
func (c *Canvas) Units() (w, h int) {
	return c.Width * UnitsPerPixel, c.Height * UnitsPerPixel
}

func (c *Canvas) Set(x, y int, color string) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.Pix[y][x] = color
}

func (c *Canvas) At(x, y int) string {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return ""
	}
	return c.Pix[y][x]
}

// Clear paints every pixel with color.
func (c *Canvas) Clear(color string) {
	for y := range c.Pix {
		for x := range c.Pix[y] {
			c.Pix[y][x] = color
		}
	}
}

func (c *Canvas) style(top, bottom string) lipgloss.Style {
	key := [2]string{top, bottom}
	if s, ok := c.styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(top)).Background(lipgloss.Color(bottom))
	c.styles[key] = s
	return s
}

// String renders the canvas, batching runs of identical cells into one
// styled span.
func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.Rows(); row++ {
		c.writeSpan(&b, row, 0, c.Width)
		b.WriteString("\n")
	}
	return b.String()
}

// Overlay renders the canvas with box centred on top of it. Rows and columns
// outside the box keep their pixels. A box larger than the canvas is
// returned on its own.
func (c *Canvas) Overlay(box string) string {
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	bw, bh := lipgloss.Width(box), len(lines)
	if bw > c.Width || bh > c.Rows() {
		return box + "\n"
	}
	x0, y0 := (c.Width-bw)/2, (c.Rows()-bh)/2
	var b strings.Builder
	for row := 0; row < c.Rows(); row++ {
		if row < y0 || row >= y0+bh {
			c.writeSpan(&b, row, 0, c.Width)
			b.WriteString("\n")
			continue
		}
		line := lines[row-y0]
		c.writeSpan(&b, row, 0, x0)
		b.WriteString(line)
		// pad ragged box lines so the right side stays aligned
		if pad := bw - lipgloss.Width(line); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		c.writeSpan(&b, row, x0+bw, c.Width)
		b.WriteString("\n")
	}
	return b.String()
}

func (c *Canvas) writeSpan(b *strings.Builder, row, from, to int) {
	top, bottom := c.Pix[2*row], c.Pix[2*row+1]
	for x := from; x < to; {
		end := x + 1
		for end < to && top[end] == top[x] && bottom[end] == bottom[x] {
			end++
		}
		b.WriteString(c.style(top[x], bottom[x]).Render(strings.Repeat(halfBlock, end-x)))
		x = end
	}
}
