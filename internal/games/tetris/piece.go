package tetris

import "github.com/vovakirdan/brick-arcade/internal/core"

// Shape identifies one of the seven tetromino templates.
type Shape int

const (
	ShapeI Shape = iota
	ShapeO
	ShapeZ
	ShapeS
	ShapeT
	ShapeL
	ShapeJ

	shapeCount = 7
)

func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeZ:
		return "Z"
	case ShapeS:
		return "S"
	case ShapeT:
		return "T"
	case ShapeL:
		return "L"
	case ShapeJ:
		return "J"
	default:
		return "?"
	}
}

const boxSize = core.PreviewSize

// Every template declares a 4x2 bounding box, which fixes the spawn column
// and the pivot used by rotation.
const (
	templateWidth  = 4
	templateHeight = 2
)

var templates = [shapeCount][templateHeight]string{
	ShapeI: {"####", "...."},
	ShapeO: {"##..", "##.."},
	ShapeZ: {"##..", ".##."},
	ShapeS: {".##.", "##.."},
	ShapeT: {".#..", "###."},
	ShapeL: {"#...", "###."},
	ShapeJ: {"..#.", "###."},
}

// Piece is a shape instance on the field. X and Y are the 1-based field
// coordinates of the bounding box's top-left cell.
type Piece struct {
	Shape  Shape
	X, Y   int
	Width  int
	Height int
	Cells  [boxSize][boxSize]bool // [row][col]
}

// NewPiece builds an unplaced piece from its template.
func NewPiece(s Shape) Piece {
	p := Piece{Shape: s, Width: templateWidth, Height: templateHeight}
	for row, line := range templates[s] {
		for col, ch := range line {
			p.Cells[row][col] = ch == '#'
		}
	}
	return p
}

// Rotated returns the piece turned 90° clockwise about its bounding box:
// cell (row, col) moves to (col, height-1-row) and width/height swap.
// The anchor is kept.
func (p Piece) Rotated() Piece {
	r := p
	r.Width, r.Height = p.Height, p.Width
	r.Cells = [boxSize][boxSize]bool{}
	for row := 0; row < p.Height; row++ {
		for col := 0; col < p.Width; col++ {
			r.Cells[col][p.Height-1-row] = p.Cells[row][col]
		}
	}
	return r
}

// Blocks returns the absolute field coordinates of every occupied cell.
func (p Piece) Blocks() [][2]int {
	blocks := make([][2]int, 0, 4)
	for row := 0; row < boxSize; row++ {
		for col := 0; col < boxSize; col++ {
			if p.Cells[row][col] {
				blocks = append(blocks, [2]int{p.X + col, p.Y + row})
			}
		}
	}
	return blocks
}
