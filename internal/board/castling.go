package board

import (
	"github.com/rfdiazpr/ChessPlusPlus/internal/util"
)

// CastlingState is the interaction behind composite king-and-rook moves.
// It remembers which pieces have forfeited eligibility by moving and which
// composite destinations are currently offered, and it completes the
// rook's hop when a king consumes an offer.
type CastlingState struct {
	BaseInteraction
	moved  map[PieceID]bool
	offers map[castleKey]rookHop
}

type castleKey struct {
	king PieceID
	dest util.Pos
}

type rookHop struct {
	rook     PieceID
	from, to util.Pos
}

// CastlingOf returns the board's castling interaction, creating it on
// first use.
func CastlingOf(b *Board) *CastlingState {
	return GetInteraction[CastlingState](b)
}

// MarkMoved records that a piece has moved, forfeiting any future
// castling eligibility. Rules call it from their self-move hooks.
func (cs *CastlingState) MarkMoved(id PieceID) {
	if cs.moved == nil {
		cs.moved = make(map[PieceID]bool)
	}
	cs.moved[id] = true
}

// HasMoved reports whether the piece has ever been marked moved.
func (cs *CastlingState) HasMoved(id PieceID) bool {
	return cs.moved[id]
}

// ClearOffers drops every offer held for the given king. Rules call it
// before re-evaluating eligibility on a recalculation pass.
func (cs *CastlingState) ClearOffers(king PieceID) {
	for key := range cs.offers {
		if key.king == king {
			delete(cs.offers, key)
		}
	}
}

// Offer records a currently-offerable castle: when the king moves to dest,
// the rook hops from rookFrom to rookTo.
func (cs *CastlingState) Offer(king PieceID, dest util.Pos, rook PieceID, rookFrom, rookTo util.Pos) {
	if cs.offers == nil {
		cs.offers = make(map[castleKey]rookHop)
	}
	cs.offers[castleKey{king: king, dest: dest}] = rookHop{rook: rook, from: rookFrom, to: rookTo}
}

// Offered reports whether moving the given king to dest would complete a
// castle.
func (cs *CastlingState) Offered(king PieceID, dest util.Pos) bool {
	_, ok := cs.offers[castleKey{king: king, dest: dest}]
	return ok
}

// Complete executes the rook hop for an offer the king just consumed.
// Rules call it from the king's self-move hook; destinations without an
// offer are ignored. The hop happens inside the king's own mutation, so
// the board's closing recalculation covers it.
func (cs *CastlingState) Complete(king PieceID, dest util.Pos) {
	key := castleKey{king: king, dest: dest}
	hop, ok := cs.offers[key]
	if !ok {
		return
	}
	delete(cs.offers, key)
	b := cs.Board()
	if id, ok := b.byPos[hop.from]; !ok || id != hop.rook {
		return
	}
	if b.relocate(hop.from, hop.to) {
		cs.MarkMoved(hop.rook)
	}
}
