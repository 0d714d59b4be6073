package core

import "fmt"

// Field dimensions shared by both engines.
const (
	FieldWidth  = 10
	FieldHeight = 20
)

// Cell is the occupancy state of one field cell.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellMoving
	CellStatic
)

// Field is a fixed-size occupancy grid stored row-major in one slice.
// Coordinates are zero-based; out-of-bounds reads return CellEmpty and
// out-of-bounds writes are ignored.
type Field struct {
	width  int
	height int
	cells  []Cell
}

// NewField allocates an empty width x height field.
func NewField(width, height int) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("core: new field %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if width > int(^uint(0)>>1)/height {
		return nil, fmt.Errorf("core: new field %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return &Field{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.width }

// Height returns the number of rows.
func (f *Field) Height() int { return f.height }

// InBounds reports whether (x, y) lies inside the field.
func (f *Field) InBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

func (f *Field) index(x, y int) int {
	return y*f.width + x
}

// Get returns the cell at (x, y).
func (f *Field) Get(x, y int) Cell {
	if !f.InBounds(x, y) {
		return CellEmpty
	}
	return f.cells[f.index(x, y)]
}

// Set writes the cell at (x, y).
func (f *Field) Set(x, y int, c Cell) {
	if !f.InBounds(x, y) {
		return
	}
	f.cells[f.index(x, y)] = c
}

// Clear resets every cell to CellEmpty.
func (f *Field) Clear() {
	clear(f.cells)
}

// RowFull reports whether every cell of row y equals c.
func (f *Field) RowFull(y int, c Cell) bool {
	if y < 0 || y >= f.height {
		return false
	}
	for _, cell := range f.cells[f.index(0, y):f.index(0, y+1)] {
		if cell != c {
			return false
		}
	}
	return true
}

// RemoveRow deletes row y, shifts every row above it down by one and
// inserts an empty row at the top.
func (f *Field) RemoveRow(y int) {
	if y < 0 || y >= f.height {
		return
	}
	copy(f.cells[f.width:f.index(0, y+1)], f.cells[:f.index(0, y)])
	clear(f.cells[:f.width])
}

// Count returns how many cells equal c.
func (f *Field) Count(c Cell) int {
	n := 0
	for _, cell := range f.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the field.
func (f *Field) Clone() *Field {
	clone := &Field{
		width:  f.width,
		height: f.height,
		cells:  make([]Cell, len(f.cells)),
	}
	copy(clone.cells, f.cells)
	return clone
}
