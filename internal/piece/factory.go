package piece

import (
	"github.com/rfdiazpr/ChessPlusPlus/internal/board"
	"github.com/rfdiazpr/ChessPlusPlus/internal/config"
	"github.com/rfdiazpr/ChessPlusPlus/internal/util"
)

// NewFactory assembles the constructor table for every suit the config
// declares, binding each rule to its configured texture handle. The
// config's first suit advances toward decreasing y (it is drawn at the
// bottom of the grid); every other suit advances toward increasing y.
func NewFactory(conf *config.BoardConfig) board.Factory {
	f := make(board.Factory)
	for i, suit := range conf.Suits {
		dir := 1
		if i == 0 {
			dir = -1
		}
		rules := map[config.PieceKind]func(texture string) board.Rule{
			KindPawn:   func(t string) board.Rule { return NewPawn(t, dir) },
			KindKnight: func(t string) board.Rule { return NewKnight(t) },
			KindBishop: func(t string) board.Rule { return NewBishop(t) },
			KindRook:   func(t string) board.Rule { return NewRook(t) },
			KindQueen:  func(t string) board.Rule { return NewQueen(t) },
			KindKing:   func(t string) board.Rule { return NewKing(t) },
		}
		for kind, mk := range rules {
			texture := conf.Texture(kind, suit)
			f.Register(kind, suit, func(b *board.Board, pos util.Pos) *board.Piece {
				return board.NewPiece(b, pos, suit, mk(texture))
			})
		}
	}
	return f
}
