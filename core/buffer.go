package core

// Point represents a 2D coordinate
type Point struct {
	X, Y int
}

// Cell represents a single cell in the buffer
type Cell struct {
	Rune   rune
	Entity Entity // Entity occupying this position (0 if none)
}

// Buffer is a fixed-size 2D grid of cells with spatial indexing.
// It is the shared logical display surface systems write into each tick;
// the terminal layer regenerates the visible screen from it.
type Buffer struct {
	width   int
	height  int
	lines   [][]Cell
	spatial map[Point]Entity // Spatial index: position -> entity ID
}

// NewBuffer creates a new buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	lines := make([][]Cell, height)
	for y := 0; y < height; y++ {
		lines[y] = make([]Cell, width)
		for x := 0; x < width; x++ {
			lines[y][x] = Cell{Rune: ' '}
		}
	}

	return &Buffer{
		width:   width,
		height:  height,
		lines:   lines,
		spatial: make(map[Point]Entity),
	}
}

// Width returns the buffer width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *Buffer) Height() int {
	return b.height
}

// GetCell returns the cell at the given position
func (b *Buffer) GetCell(x, y int) (Cell, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}, false
	}
	return b.lines[y][x], true
}

// SetCell sets the cell at the given position.
// Out-of-bounds writes are ignored and reported as false.
func (b *Buffer) SetCell(x, y int, cell Cell) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}

	b.lines[y][x] = cell

	p := Point{X: x, Y: y}
	if cell.Entity != 0 {
		b.spatial[p] = cell.Entity
	} else {
		delete(b.spatial, p)
	}

	return true
}

// SetContent sets the rune and owning entity at the given position
func (b *Buffer) SetContent(x, y int, r rune, entity Entity) bool {
	return b.SetCell(x, y, Cell{Rune: r, Entity: entity})
}

// Clear resets every cell to a blank space and drops the spatial index
func (b *Buffer) Clear() {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.lines[y][x] = Cell{Rune: ' '}
		}
	}
	b.spatial = make(map[Point]Entity)
}

// GetEntityAt returns the entity ID at the given position (0 if none)
// This provides O(1) lookups via spatial indexing
func (b *Buffer) GetEntityAt(x, y int) Entity {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.spatial[Point{X: x, Y: y}]
}

// HasEntityAt returns true if there's an entity at the given position
func (b *Buffer) HasEntityAt(x, y int) bool {
	return b.GetEntityAt(x, y) != 0
}

// GetLine returns a copy of all cells in a given row
func (b *Buffer) GetLine(y int) []Cell {
	if y < 0 || y >= b.height {
		return nil
	}
	line := make([]Cell, b.width)
	copy(line, b.lines[y])
	return line
}

// Lines regenerates the full surface as exactly height strings of
// length width, in row order
func (b *Buffer) Lines() []string {
	out := make([]string, b.height)
	row := make([]rune, b.width)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			row[x] = b.lines[y][x].Rune
		}
		out[y] = string(row)
	}
	return out
}
