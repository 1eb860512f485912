// Package piece provides the standard piece rules and the factory that
// assembles them for a board config. Each rule computes candidate squares
// from the live board; the board itself stays the only mutator.
package piece

import (
	"github.com/rfdiazpr/ChessPlusPlus/internal/board"
	"github.com/rfdiazpr/ChessPlusPlus/internal/config"
	"github.com/rfdiazpr/ChessPlusPlus/internal/util"
)

// Kind names understood by NewFactory.
const (
	KindPawn   config.PieceKind = "Pawn"
	KindKnight config.PieceKind = "Knight"
	KindBishop config.PieceKind = "Bishop"
	KindRook   config.PieceKind = "Rook"
	KindQueen  config.PieceKind = "Queen"
	KindKing   config.PieceKind = "King"
)

var (
	orthogonals = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonals   = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// slide walks each direction from the piece, registering empty squares as
// destinations and stopping at the first occupant, which becomes a capture
// landing when hostile.
func slide(p *board.Piece, dirs [][2]int) {
	b := p.Board()
	for _, d := range dirs {
		for dest := p.Pos().Offset(d[0], d[1]); b.Valid(dest); dest = dest.Offset(d[0], d[1]) {
			occ := b.At(dest)
			if occ == nil {
				p.AddTrajectory(dest)
				continue
			}
			if occ.Suit() != p.Suit() {
				p.AddCapturing(dest)
			}
			break
		}
	}
}

// step registers a single candidate square: empty becomes a destination,
// hostile becomes a capture landing, friendly is skipped.
func step(p *board.Piece, dest util.Pos) {
	b := p.Board()
	if !b.Valid(dest) {
		return
	}
	occ := b.At(dest)
	if occ == nil {
		p.AddTrajectory(dest)
		return
	}
	if occ.Suit() != p.Suit() {
		p.AddCapturing(dest)
	}
}
