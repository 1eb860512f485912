package piece

import (
	"github.com/rfdiazpr/ChessPlusPlus/internal/board"
	"github.com/rfdiazpr/ChessPlusPlus/internal/config"
	"github.com/rfdiazpr/ChessPlusPlus/internal/util"
)

// King steps to each neighboring square and castles with unmoved rooks of
// its suit along its own row.
type King struct {
	texture string
}

// NewKing returns the king rule carrying its texture handle.
func NewKing(texture string) *King {
	return &King{texture: texture}
}

func (k *King) Kind() config.PieceKind { return KindKing }
func (k *King) Texture() string        { return k.texture }

func (k *King) CalcTrajectory(p *board.Piece) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			step(p, p.Pos().Offset(dx, dy))
		}
	}
	k.offerCastles(p)
}

// offerCastles registers a two-file move toward each unmoved same-suit
// rook on the king's row with a clear path, and records the rook's hop
// with the castling interaction. The rook must sit at least three files
// away so the king's destination stays clear of it.
func (k *King) offerCastles(p *board.Piece) {
	b := p.Board()
	cs := board.CastlingOf(b)
	cs.ClearOffers(p.ID())
	if cs.HasMoved(p.ID()) {
		return
	}
	row := p.Pos().Y
	for _, q := range b.Pieces() {
		if _, ok := q.Rule().(*Rook); !ok {
			continue
		}
		if q.Suit() != p.Suit() || q.Pos().Y != row || cs.HasMoved(q.ID()) {
			continue
		}
		dir := 1
		if q.Pos().X < p.Pos().X {
			dir = -1
		}
		if dist := (q.Pos().X - p.Pos().X) * dir; dist < 3 {
			continue
		}
		open := true
		for x := p.Pos().X + dir; x != q.Pos().X; x += dir {
			if b.At(util.Pos{X: x, Y: row}) != nil {
				open = false
				break
			}
		}
		if !open {
			continue
		}
		dest := util.Pos{X: p.Pos().X + 2*dir, Y: row}
		hop := util.Pos{X: p.Pos().X + dir, Y: row}
		p.AddTrajectory(dest)
		cs.Offer(p.ID(), dest, q.ID(), q.Pos(), hop)
	}
}

// OnSelfMoved completes a consumed castling offer, then forfeits the
// king's eligibility.
func (k *King) OnSelfMoved(p *board.Piece, from, to util.Pos) {
	cs := board.CastlingOf(p.Board())
	cs.Complete(p.ID(), to)
	cs.MarkMoved(p.ID())
}
