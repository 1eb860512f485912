package util

import "fmt"

// Pos is an integral board coordinate. X grows rightward across files,
// Y grows downward across ranks, with (0, 0) the top-left square.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Offset returns the position shifted by (dx, dy).
func (p Pos) Offset(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Within reports whether the position lies inside a width-by-height grid
// anchored at the origin.
func (p Pos) Within(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// Less orders positions row-major: by Y, then by X.
func (p Pos) Less(q Pos) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// String returns the position as "(x, y)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
