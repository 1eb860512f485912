package piece

import (
	"github.com/rfdiazpr/ChessPlusPlus/internal/board"
	"github.com/rfdiazpr/ChessPlusPlus/internal/config"
	"github.com/rfdiazpr/ChessPlusPlus/internal/util"
)

// Rook slides along ranks and files. It anchors castling: its first move
// forfeits the eligibility the king's rule checks.
type Rook struct {
	texture string
}

// NewRook returns the rook rule carrying its texture handle.
func NewRook(texture string) *Rook {
	return &Rook{texture: texture}
}

func (r *Rook) Kind() config.PieceKind { return KindRook }
func (r *Rook) Texture() string        { return r.texture }

func (r *Rook) CalcTrajectory(p *board.Piece) {
	slide(p, orthogonals)
}

// OnSelfMoved forfeits this rook's castling eligibility.
func (r *Rook) OnSelfMoved(p *board.Piece, from, to util.Pos) {
	board.CastlingOf(p.Board()).MarkMoved(p.ID())
}
