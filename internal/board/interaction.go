package board

import "reflect"

// Interaction is rule state shared across pieces and owned by a board: one
// instance per concrete type, created on first request, kept for the
// board's lifetime. Implementations embed BaseInteraction, which supplies
// the board binding.
type Interaction interface {
	bind(b *Board)
}

// BaseInteraction anchors an interaction to its board.
type BaseInteraction struct {
	board *Board
}

func (bi *BaseInteraction) bind(b *Board) { bi.board = b }

// Board returns the board this interaction belongs to.
func (bi *BaseInteraction) Board() *Board { return bi.board }

// GetInteraction returns the board's instance of the interaction type T,
// creating and binding it on first use. Every call for the same type on the
// same board yields the same instance.
func GetInteraction[T any, PT interface {
	*T
	Interaction
}](b *Board) PT {
	key := reflect.TypeOf((*T)(nil))
	if in, ok := b.interactions[key]; ok {
		return in.(PT)
	}
	in := PT(new(T))
	in.bind(b)
	b.interactions[key] = in
	return in
}
