package board

import (
	"github.com/rfdiazpr/ChessPlusPlus/internal/util"
)

// Capture is one entry of the board-wide capture relation: Victim is the
// piece that can be taken and Landing the square its attacker occupies
// afterwards. Landing usually equals the victim's own square; it differs
// for indirect captures in the en passant family.
type Capture struct {
	Victim  PieceID
	Landing util.Pos
}

// captureRelation indexes capture entries by victim. Recalculation discards
// and rebuilds it in full; entries never survive a pass.
type captureRelation struct {
	byVictim map[PieceID]map[util.Pos]struct{}
}

func newCaptureRelation() *captureRelation {
	return &captureRelation{byVictim: make(map[PieceID]map[util.Pos]struct{})}
}

func (r *captureRelation) add(victim PieceID, landing util.Pos) {
	landings, ok := r.byVictim[victim]
	if !ok {
		landings = make(map[util.Pos]struct{})
		r.byVictim[victim] = landings
	}
	landings[landing] = struct{}{}
}

func (r *captureRelation) remove(victim PieceID, landing util.Pos) {
	landings, ok := r.byVictim[victim]
	if !ok {
		return
	}
	delete(landings, landing)
	if len(landings) == 0 {
		delete(r.byVictim, victim)
	}
}

func (r *captureRelation) dropVictim(victim PieceID) {
	delete(r.byVictim, victim)
}

func (r *captureRelation) contains(c Capture) bool {
	_, ok := r.byVictim[c.Victim][c.Landing]
	return ok
}

func (r *captureRelation) reset() {
	clear(r.byVictim)
}
