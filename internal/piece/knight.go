package piece

import (
	"github.com/rfdiazpr/ChessPlusPlus/internal/board"
	"github.com/rfdiazpr/ChessPlusPlus/internal/config"
)

var knightOffsets = [][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// Knight leaps to the eight knight's-move squares, ignoring anything in
// between.
type Knight struct {
	texture string
}

// NewKnight returns the knight rule carrying its texture handle.
func NewKnight(texture string) *Knight {
	return &Knight{texture: texture}
}

func (n *Knight) Kind() config.PieceKind { return KindKnight }
func (n *Knight) Texture() string        { return n.texture }

func (n *Knight) CalcTrajectory(p *board.Piece) {
	for _, d := range knightOffsets {
		step(p, p.Pos().Offset(d[0], d[1]))
	}
}
