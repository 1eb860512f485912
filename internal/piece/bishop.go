package piece

import (
	"github.com/rfdiazpr/ChessPlusPlus/internal/board"
	"github.com/rfdiazpr/ChessPlusPlus/internal/config"
)

// Bishop slides along diagonals.
type Bishop struct {
	texture string
}

// NewBishop returns the bishop rule carrying its texture handle.
func NewBishop(texture string) *Bishop {
	return &Bishop{texture: texture}
}

func (bi *Bishop) Kind() config.PieceKind { return KindBishop }
func (bi *Bishop) Texture() string        { return bi.texture }

func (bi *Bishop) CalcTrajectory(p *board.Piece) {
	slide(p, diagonals)
}
