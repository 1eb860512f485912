// Package board implements the playing surface for configurable chess
// variants: an arena of pieces with stable identities, per-piece derived
// candidate sets, a board-wide capture relation, shared rule-state
// interactions, and factory-driven construction. The board is the sole
// mutator; piece rules register candidate squares but never move anything
// themselves.
package board

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/rfdiazpr/ChessPlusPlus/internal/config"
	"github.com/rfdiazpr/ChessPlusPlus/internal/util"
)

// Board owns the pieces of one game. All mutation goes through Move,
// Capture, and Replace; each either completes fully, with hooks run and
// derived state rebuilt, or leaves the board untouched.
type Board struct {
	conf         *config.BoardConfig
	factory      Factory
	pieces       map[PieceID]*Piece
	byPos        map[util.Pos]PieceID
	captures     *captureRelation
	interactions map[reflect.Type]Interaction
	nextID       PieceID
}

// New builds a board from its config and factory. Every layout placement
// is constructed through the factory; a kind the factory does not carry
// fails the whole construction. On success every piece has computed its
// derived state once.
func New(conf *config.BoardConfig, factory Factory) (*Board, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		conf:         conf,
		factory:      factory,
		pieces:       make(map[PieceID]*Piece),
		byPos:        make(map[util.Pos]PieceID),
		captures:     newCaptureRelation(),
		interactions: make(map[reflect.Type]Interaction),
	}
	for _, pl := range conf.Layout {
		if _, err := b.place(pl.Pos, pl.Kind, pl.Suit); err != nil {
			return nil, err
		}
	}
	b.recalcAll()
	return b, nil
}

// place constructs one piece through the factory and installs it.
func (b *Board) place(pos util.Pos, kind config.PieceKind, suit Suit) (*Piece, error) {
	ctor, ok := b.factory[PieceKey{Kind: kind, Suit: suit}]
	if !ok {
		return nil, fmt.Errorf("%w: %q for %q", ErrKindNotRegistered, kind, suit)
	}
	if _, occupied := b.byPos[pos]; occupied {
		return nil, fmt.Errorf("%w: %v", ErrSquareOccupied, pos)
	}
	p := ctor(b, pos)
	p.id = b.nextID
	b.nextID++
	b.pieces[p.id] = p
	b.byPos[pos] = p.id
	return p, nil
}

// Config returns the board's configuration.
func (b *Board) Config() *config.BoardConfig { return b.conf }

// Width returns the board width in squares.
func (b *Board) Width() int { return b.conf.Width }

// Height returns the board height in squares.
func (b *Board) Height() int { return b.conf.Height }

// Valid reports whether pos lies on the board.
func (b *Board) Valid(pos util.Pos) bool {
	return pos.Within(b.conf.Width, b.conf.Height)
}

// At returns the piece occupying pos, or nil for an empty or off-board
// square.
func (b *Board) At(pos util.Pos) *Piece {
	if id, ok := b.byPos[pos]; ok {
		return b.pieces[id]
	}
	return nil
}

// ByID returns the piece with the given identity, or nil once it has been
// captured or replaced.
func (b *Board) ByID(id PieceID) *Piece {
	return b.pieces[id]
}

// Pieces returns every piece on the board in row-major square order.
func (b *Board) Pieces() []*Piece {
	return b.orderedPieces()
}

// Captures returns a snapshot of the capture relation ordered by the
// victim's square, then by landing square. Entries are only as fresh as
// the last recalculation; Capture revalidates against the live relation.
func (b *Board) Captures() []Capture {
	var out []Capture
	for _, p := range b.orderedPieces() {
		landings, ok := b.captures.byVictim[p.id]
		if !ok {
			continue
		}
		ordered := make([]util.Pos, 0, len(landings))
		for landing := range landings {
			ordered = append(ordered, landing)
		}
		sortPositions(ordered)
		for _, landing := range ordered {
			out = append(out, Capture{Victim: p.id, Landing: landing})
		}
	}
	return out
}

// Move relocates the piece at source to target. It succeeds only when
// source is occupied, target is in the mover's trajectory, and target is
// free. On success the mover's rule sees OnSelfMoved, every other piece's
// rule sees OnAnyMove in row-major order, and all derived state is
// rebuilt. On failure the board is untouched.
func (b *Board) Move(source, target util.Pos) bool {
	id, ok := b.byPos[source]
	if !ok {
		return false
	}
	p := b.pieces[id]
	if _, inTrajectory := p.trajectory[target]; !inTrajectory {
		return false
	}
	if _, occupied := b.byPos[target]; occupied {
		return false
	}
	b.commitMove(p, source, target)
	return true
}

// Capture executes a capture entry with the piece at source as attacker.
// It succeeds only when source is occupied, the entry is present in the
// live relation, its landing square is in the attacker's capturing set,
// and the landing square holds nothing but (at most) the victim. The
// victim is removed from wherever it stands, then the attacker relocates
// to the landing square with the same notify-and-rebuild sequence as
// Move. On failure the board is untouched.
func (b *Board) Capture(source util.Pos, entry Capture) bool {
	id, ok := b.byPos[source]
	if !ok {
		return false
	}
	if entry.Victim == id {
		return false
	}
	p := b.pieces[id]
	if !b.captures.contains(entry) {
		return false
	}
	if _, can := p.capturing[entry.Landing]; !can {
		return false
	}
	if occ, occupied := b.byPos[entry.Landing]; occupied && occ != entry.Victim {
		return false
	}
	victim := b.pieces[entry.Victim]
	delete(b.byPos, victim.pos)
	delete(b.pieces, victim.id)
	b.captures.dropVictim(victim.id)
	b.commitMove(p, source, entry.Landing)
	return true
}

// Replace substitutes the piece at pos with a factory-built piece of the
// given kind and the same suit. The replacement is a new piece with a
// fresh identity and zero move count. Promotion-style events use this;
// ordinary moves and captures never do.
func (b *Board) Replace(pos util.Pos, kind config.PieceKind) error {
	id, ok := b.byPos[pos]
	if !ok {
		return fmt.Errorf("%w: %v", ErrEmptySquare, pos)
	}
	old := b.pieces[id]
	if _, ok := b.factory[PieceKey{Kind: kind, Suit: old.suit}]; !ok {
		return fmt.Errorf("%w: %q for %q", ErrKindNotRegistered, kind, old.suit)
	}
	delete(b.byPos, pos)
	delete(b.pieces, id)
	b.captures.dropVictim(id)
	if _, err := b.place(pos, kind, old.suit); err != nil {
		return err
	}
	b.recalcAll()
	return nil
}

// commitMove performs the shared relocate, notify, and rebuild tail of
// Move and Capture. The mover's own rule reacts first, with the move
// count still unincremented; every other piece reacts next in row-major
// order; one whole-board recalculation closes the mutation.
func (b *Board) commitMove(p *Piece, from, to util.Pos) {
	delete(b.byPos, from)
	b.byPos[to] = p.id
	p.pos = to
	if r, ok := p.rule.(SelfMoveReactor); ok {
		r.OnSelfMoved(p, from, to)
	}
	p.moveCount++
	for _, q := range b.orderedPieces() {
		if q.id == p.id {
			continue
		}
		if o, ok := q.rule.(MoveObserver); ok {
			o.OnAnyMove(q, to)
		}
	}
	b.recalcAll()
}

// relocate moves a piece between squares with no legality checks, hooks,
// or recalculation. Interactions use it to complete composite moves
// inside an enclosing mutation, whose closing recalculation then covers
// it. The hop still counts as a move for the hopped piece.
func (b *Board) relocate(from, to util.Pos) bool {
	id, ok := b.byPos[from]
	if !ok {
		return false
	}
	if _, occupied := b.byPos[to]; occupied {
		return false
	}
	p := b.pieces[id]
	delete(b.byPos, from)
	b.byPos[to] = id
	p.pos = to
	p.moveCount++
	return true
}

// recalcAll rebuilds all derived state from scratch: the capture relation
// is discarded, then every piece recomputes in row-major square order.
// Running it twice in a row yields identical state.
func (b *Board) recalcAll() {
	b.captures.reset()
	for _, p := range b.orderedPieces() {
		p.recompute()
	}
}

// orderedPieces returns the pieces sorted by square, row-major.
func (b *Board) orderedPieces() []*Piece {
	squares := make([]util.Pos, 0, len(b.byPos))
	for pos := range b.byPos {
		squares = append(squares, pos)
	}
	sortPositions(squares)
	out := make([]*Piece, len(squares))
	for i, pos := range squares {
		out[i] = b.pieces[b.byPos[pos]]
	}
	return out
}

// sortPositions orders squares row-major, in place.
func sortPositions(squares []util.Pos) {
	sort.Slice(squares, func(i, j int) bool {
		return squares[i].Less(squares[j])
	})
}
