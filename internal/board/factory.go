package board

import (
	"errors"

	"github.com/rfdiazpr/ChessPlusPlus/internal/config"
	"github.com/rfdiazpr/ChessPlusPlus/internal/util"
)

var (
	// ErrKindNotRegistered reports a factory lookup for a (kind, suit)
	// pair no constructor was registered for.
	ErrKindNotRegistered = errors.New("board: piece kind not registered for suit")

	// ErrEmptySquare reports an operation that needs an occupied square.
	ErrEmptySquare = errors.New("board: no piece at square")

	// ErrSquareOccupied reports an attempt to install a piece on an
	// occupied square.
	ErrSquareOccupied = errors.New("board: square already occupied")
)

// PieceKey identifies a factory entry: a piece kind for one suit.
type PieceKey struct {
	Kind config.PieceKind
	Suit Suit
}

// Constructor builds a piece bound to a board and square. The kind and
// suit are fixed by the factory entry the constructor was registered
// under.
type Constructor func(b *Board, pos util.Pos) *Piece

// Factory maps (kind, suit) to piece constructors. Boards consult it
// during construction and Replace, by exact key; a missing key is an
// error, never a fallback.
type Factory map[PieceKey]Constructor

// Register adds a constructor for a (kind, suit) pair, overwriting any
// previous entry.
func (f Factory) Register(kind config.PieceKind, suit Suit, ctor Constructor) {
	f[PieceKey{Kind: kind, Suit: suit}] = ctor
}
