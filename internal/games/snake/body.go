package snake

// Direction is the snake's heading.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Point is a body coordinate. X spans [1, 2*W] in steps of two so each
// logical cell covers two terminal columns; Y spans [1, H].
type Point struct {
	X, Y int
}

// Column returns the zero-based logical column of p.
func (p Point) Column() int {
	return (p.X - 1) / 2
}

// Body is the ordered snake, tail first and head last.
type Body struct {
	cells   []Point
	heading Direction // direction of the last step taken
	next    Direction // direction of the next step
}

// NewBody lays length cells from (x, y) towards dir, head last.
func NewBody(x, y, length int, dir Direction) *Body {
	b := &Body{heading: dir, next: dir}
	p := Point{X: x, Y: y}
	for i := 0; i < length; i++ {
		b.cells = append(b.cells, p)
		p = step(p, dir)
	}
	return b
}

func step(p Point, dir Direction) Point {
	switch dir {
	case DirUp:
		p.Y--
	case DirDown:
		p.Y++
	case DirLeft:
		p.X -= 2
	case DirRight:
		p.X += 2
	}
	return p
}

// SetDirection queues a turn. A reversal of the last step is rejected so
// the head cannot fold back into the neck.
func (b *Body) SetDirection(dir Direction) bool {
	if dir == b.heading.Opposite() {
		return false
	}
	b.next = dir
	return true
}

// Direction returns the direction the next step will take.
func (b *Body) Direction() Direction { return b.next }

// Head returns the head cell.
func (b *Body) Head() Point { return b.cells[len(b.cells)-1] }

// Tail returns the tail cell.
func (b *Body) Tail() Point { return b.cells[0] }

// Len returns the number of cells.
func (b *Body) Len() int { return len(b.cells) }

// NextHead returns where the head lands on the next step.
func (b *Body) NextHead() Point {
	return step(b.Head(), b.next)
}

// Grow appends the next head and keeps the tail.
func (b *Body) Grow() {
	b.cells = append(b.cells, b.NextHead())
	b.heading = b.next
}

// Move appends the next head and drops the tail.
func (b *Body) Move() {
	b.Grow()
	b.cells = b.cells[1:]
}

// Occupies reports whether any cell equals p.
func (b *Body) Occupies(p Point) bool {
	for _, c := range b.cells {
		if c == p {
			return true
		}
	}
	return false
}

// HitsSelf reports whether p overlaps a cell that is still there after
// the next move, i.e. any cell but the tail.
func (b *Body) HitsSelf(p Point) bool {
	for _, c := range b.cells[1:] {
		if c == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body, tail first.
func (b *Body) Cells() []Point {
	out := make([]Point, len(b.cells))
	copy(out, b.cells)
	return out
}
