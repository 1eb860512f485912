package piece

import (
	"github.com/rfdiazpr/ChessPlusPlus/internal/board"
	"github.com/rfdiazpr/ChessPlusPlus/internal/config"
	"github.com/rfdiazpr/ChessPlusPlus/internal/util"
)

// Pawn advances along its suit's direction, one square at a time with a
// two-square option while unmoved, and captures diagonally forward. After
// its own double step it exposes the skipped square as an extra capture
// landing for exactly one reply.
type Pawn struct {
	texture string
	dir     int // -1 advances toward y=0, +1 toward y=height-1

	passer  bool     // last own move was a double step
	skipped util.Pos // the square that double step jumped over
}

// NewPawn returns a pawn rule advancing in the given y direction.
func NewPawn(texture string, dir int) *Pawn {
	return &Pawn{texture: texture, dir: dir}
}

func (pw *Pawn) Kind() config.PieceKind { return KindPawn }
func (pw *Pawn) Texture() string        { return pw.texture }

func (pw *Pawn) CalcTrajectory(p *board.Piece) {
	b := p.Board()
	one := p.Pos().Offset(0, pw.dir)
	if b.Valid(one) && b.At(one) == nil {
		p.AddTrajectory(one)
		two := one.Offset(0, pw.dir)
		if p.MoveCount() == 0 && b.Valid(two) && b.At(two) == nil {
			p.AddTrajectory(two)
		}
	}
	for _, dx := range []int{-1, 1} {
		d := p.Pos().Offset(dx, pw.dir)
		if !b.Valid(d) {
			continue
		}
		if occ := b.At(d); occ == nil || occ.Suit() != p.Suit() {
			p.AddCapturing(d)
		}
	}
	if pw.passer {
		p.AddCapturable(pw.skipped)
	}
}

// OnSelfMoved opens the en-passant window after a double step and closes
// it after any other own move.
func (pw *Pawn) OnSelfMoved(p *board.Piece, from, to util.Pos) {
	if from.X == to.X && to.Y-from.Y == 2*pw.dir {
		pw.passer = true
		pw.skipped = util.Pos{X: from.X, Y: from.Y + pw.dir}
		return
	}
	pw.passer = false
}

// OnAnyMove closes the en-passant window: the privilege lasts one reply.
func (pw *Pawn) OnAnyMove(p *board.Piece, moved util.Pos) {
	pw.passer = false
}

// Promotes reports whether the pawn stands on its final rank, where a
// frontend should replace it through the board's factory.
func (pw *Pawn) Promotes(p *board.Piece) bool {
	if pw.dir < 0 {
		return p.Pos().Y == 0
	}
	return p.Pos().Y == p.Board().Height()-1
}
