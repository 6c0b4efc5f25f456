package flip

import "time"

// Size is a width and height in logical units.
type Size struct {
	W, H int
}

// Dimensions returns how many tiles fit in the viewport after leaving one
// tile of margin: floor((W-tile)/tile) columns and floor((H-tile)/tile)
// rows, never negative.
func Dimensions(viewport Size, tileSize int) (rows, cols int) {
	if tileSize <= 0 {
		return 0, 0
	}
	cols = (viewport.W - tileSize) / tileSize
	rows = (viewport.H - tileSize) / tileSize
	if cols < 0 || viewport.W < tileSize {
		cols = 0
	}
	if rows < 0 || viewport.H < tileSize {
		rows = 0
	}
	return rows, cols
}

// Grid is the fixed set of cells for one viewport measurement.
type Grid struct {
	viewport Size
	tile     int
	rows     int
	cols     int
	cells    [][]*Cell
	opts     Options
}

// NewGrid measures the viewport once and creates rows×cols cells in
// row-major order. Every row is its own slice.
func NewGrid(viewport Size, opts Options) *Grid {
	size := opts.Gen.Size()
	rows, cols := Dimensions(viewport, size)
	g := &Grid{
		viewport: viewport,
		tile:     size,
		rows:     rows,
		cols:     cols,
		cells:    make([][]*Cell, rows),
		opts:     opts,
	}
	for r := range g.cells {
		g.cells[r] = make([]*Cell, cols)
		for c := range g.cells[r] {
			g.cells[r][c] = NewCell(r, c, opts)
		}
	}
	return g
}

func (g *Grid) Rows() int           { return g.rows }
func (g *Grid) Cols() int           { return g.cols }
func (g *Grid) TileSize() int       { return g.tile }
func (g *Grid) Viewport() Size      { return g.viewport }
func (g *Grid) Cell(r, c int) *Cell { return g.cells[r][c] }

// Len returns the number of cells.
func (g *Grid) Len() int { return g.rows * g.cols }

// Each visits cells in row-major order.
func (g *Grid) Each(fn func(*Cell)) {
	for _, row := range g.cells {
		for _, c := range row {
			fn(c)
		}
	}
}

// Offset returns the top-left corner of the centred block of tiles.
func (g *Grid) Offset() (x, y int) {
	return (g.viewport.W - g.cols*g.tile) / 2, (g.viewport.H - g.rows*g.tile) / 2
}

// At returns the cell covering the logical point (x, y) and the point's
// normalized position inside that tile.
func (g *Grid) At(x, y float64) (c *Cell, u, v float64, ok bool) {
	ox, oy := g.Offset()
	fx := (x - float64(ox)) / float64(g.tile)
	fy := (y - float64(oy)) / float64(g.tile)
	if fx < 0 || fy < 0 {
		return nil, 0, 0, false
	}
	col, row := int(fx), int(fy)
	if col >= g.cols || row >= g.rows {
		return nil, 0, 0, false
	}
	return g.cells[row][col], fx - float64(col), fy - float64(row), true
}

// Settle drops finished transitions and returns how many cells are still
// animating.
func (g *Grid) Settle(now time.Duration) int {
	moving := 0
	g.Each(func(c *Cell) {
		if !c.Settle(now) {
			moving++
		}
	})
	return moving
}

// Flips returns the total number of flips across all cells.
func (g *Grid) Flips() int {
	n := 0
	g.Each(func(c *Cell) { n += c.Flips() })
	return n
}

// Close tears down every cell.
func (g *Grid) Close() {
	g.Each(func(c *Cell) { c.Close() })
}
