package board

import (
	"fmt"

	"github.com/rfdiazpr/ChessPlusPlus/internal/config"
	"github.com/rfdiazpr/ChessPlusPlus/internal/util"
)

// Suit identifies a side. It is the config vocabulary; the board only ever
// compares suits for equality.
type Suit = config.Suit

// PieceID is a piece's stable identity, assigned at construction and never
// reused for the lifetime of a board. Identity survives relocation, which
// square-keyed references cannot.
type PieceID int

// Rule supplies a piece's variant behavior: its kind and texture handle,
// and the derived-state computation run on every recalculation pass. Rules
// read the board through queries and register candidate squares through the
// piece's registration methods; they never mutate the board.
type Rule interface {
	Kind() config.PieceKind
	Texture() string
	CalcTrajectory(p *Piece)
}

// SelfMoveReactor is implemented by rules that react to their own piece's
// completed displacement, before the board recalculates.
type SelfMoveReactor interface {
	OnSelfMoved(p *Piece, from, to util.Pos)
}

// MoveObserver is implemented by rules that react to any other piece's
// completed move or capture, before the board recalculates. The argument
// is the destination square of the piece that just moved.
type MoveObserver interface {
	OnAnyMove(p *Piece, moved util.Pos)
}

// Piece is one piece on a board: identity, location, suit, move count, and
// the derived candidate sets rebuilt on every recalculation pass. Variant
// behavior lives in the attached Rule.
type Piece struct {
	board     *Board
	id        PieceID
	pos       util.Pos
	suit      Suit
	rule      Rule
	moveCount int

	trajectory map[util.Pos]struct{}
	capturing  map[util.Pos]struct{}
}

// NewPiece binds a rule to a board square. Pieces are normally built
// through a Factory during board construction or Replace, not directly.
func NewPiece(b *Board, pos util.Pos, suit Suit, rule Rule) *Piece {
	return &Piece{
		board:      b,
		pos:        pos,
		suit:       suit,
		rule:       rule,
		trajectory: make(map[util.Pos]struct{}),
		capturing:  make(map[util.Pos]struct{}),
	}
}

// ID returns the piece's stable identity.
func (p *Piece) ID() PieceID { return p.id }

// Pos returns the square the piece currently occupies.
func (p *Piece) Pos() util.Pos { return p.pos }

// Suit returns the piece's side. Suits never change after construction.
func (p *Piece) Suit() Suit { return p.suit }

// Board returns the board the piece belongs to.
func (p *Piece) Board() *Board { return p.board }

// Rule returns the piece's variant behavior.
func (p *Piece) Rule() Rule { return p.rule }

// Kind returns the rule's piece kind.
func (p *Piece) Kind() config.PieceKind { return p.rule.Kind() }

// Texture returns the rule's opaque visual-resource handle.
func (p *Piece) Texture() string { return p.rule.Texture() }

// MoveCount returns the number of moves the piece has completed.
func (p *Piece) MoveCount() int { return p.moveCount }

// Trajectory returns the piece's non-capturing destinations in row-major
// order.
func (p *Piece) Trajectory() []util.Pos { return sortedSet(p.trajectory) }

// Capturing returns the piece's capture landing squares in row-major order.
func (p *Piece) Capturing() []util.Pos { return sortedSet(p.capturing) }

// HasTrajectory reports whether pos is a registered non-capturing
// destination.
func (p *Piece) HasTrajectory(pos util.Pos) bool {
	_, ok := p.trajectory[pos]
	return ok
}

// CanCaptureAt reports whether pos is one of the piece's capture landing
// squares.
func (p *Piece) CanCaptureAt(pos util.Pos) bool {
	_, ok := p.capturing[pos]
	return ok
}

// AddTrajectory registers pos as a non-capturing destination. Off-board
// positions are dropped silently.
func (p *Piece) AddTrajectory(pos util.Pos) {
	if p.board.Valid(pos) {
		p.trajectory[pos] = struct{}{}
	}
}

// RemoveTrajectory withdraws a previously registered destination.
func (p *Piece) RemoveTrajectory(pos util.Pos) {
	delete(p.trajectory, pos)
}

// AddCapturing registers pos as a landing square from which this piece can
// execute a capture. Off-board positions are dropped silently.
func (p *Piece) AddCapturing(pos util.Pos) {
	if p.board.Valid(pos) {
		p.capturing[pos] = struct{}{}
	}
}

// RemoveCapturing withdraws a previously registered capture landing square.
func (p *Piece) RemoveCapturing(pos util.Pos) {
	delete(p.capturing, pos)
}

// AddCapturable registers an entry of the board's capture relation with
// this piece as victim: an attacker landing on pos takes this piece.
// Off-board positions are dropped silently.
func (p *Piece) AddCapturable(pos util.Pos) {
	if p.board.Valid(pos) {
		p.board.captures.add(p.id, pos)
	}
}

// RemoveCapturable withdraws a capture-relation entry naming this piece as
// victim.
func (p *Piece) RemoveCapturable(pos util.Pos) {
	p.board.captures.remove(p.id, pos)
}

// recompute rebuilds the piece's derived state: both candidate sets are
// cleared, stale relation entries naming this piece are dropped, the
// piece's own square is re-registered as a capturable landing (the entry
// ordinary captures consume), and the rule recalculates.
func (p *Piece) recompute() {
	clear(p.trajectory)
	clear(p.capturing)
	p.board.captures.dropVictim(p.id)
	p.AddCapturable(p.pos)
	p.rule.CalcTrajectory(p)
}

// String renders the piece for logs and test failures.
func (p *Piece) String() string {
	return fmt.Sprintf("%s %s at %v", p.suit, p.Kind(), p.pos)
}

// sortedSet flattens a position set into a row-major slice.
func sortedSet(set map[util.Pos]struct{}) []util.Pos {
	out := make([]util.Pos, 0, len(set))
	for pos := range set {
		out = append(out, pos)
	}
	sortPositions(out)
	return out
}
