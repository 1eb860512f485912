package piece

import (
	"github.com/rfdiazpr/ChessPlusPlus/internal/board"
	"github.com/rfdiazpr/ChessPlusPlus/internal/config"
)

// Queen slides in all eight directions.
type Queen struct {
	texture string
}

// NewQueen returns the queen rule carrying its texture handle.
func NewQueen(texture string) *Queen {
	return &Queen{texture: texture}
}

func (q *Queen) Kind() config.PieceKind { return KindQueen }
func (q *Queen) Texture() string        { return q.texture }

func (q *Queen) CalcTrajectory(p *board.Piece) {
	slide(p, orthogonals)
	slide(p, diagonals)
}
