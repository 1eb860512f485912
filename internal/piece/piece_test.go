package piece

import (
	"testing"

	"github.com/rfdiazpr/ChessPlusPlus/internal/board"
	"github.com/rfdiazpr/ChessPlusPlus/internal/config"
	"github.com/rfdiazpr/ChessPlusPlus/internal/util"
)

func makeBoard(t *testing.T, width, height int, layout ...config.Placement) *board.Board {
	t.Helper()
	conf := &config.BoardConfig{
		Width:  width,
		Height: height,
		Suits:  []config.Suit{"White", "Black"},
		Layout: layout,
	}
	b, err := board.New(conf, NewFactory(conf))
	if err != nil {
		t.Fatalf("board setup: %v", err)
	}
	return b
}

func at(x, y int, kind config.PieceKind, suit config.Suit) config.Placement {
	return config.Placement{Pos: util.Pos{X: x, Y: y}, Kind: kind, Suit: suit}
}

func sq(x, y int) util.Pos {
	return util.Pos{X: x, Y: y}
}

func TestOpenBoardMobility(t *testing.T) {
	tests := []struct {
		kind config.PieceKind
		pos  util.Pos
		want int
	}{
		{KindKnight, sq(3, 3), 8},
		{KindKnight, sq(0, 0), 2},
		{KindBishop, sq(3, 3), 13},
		{KindRook, sq(3, 3), 14},
		{KindQueen, sq(3, 3), 27},
		{KindKing, sq(3, 3), 8},
		{KindKing, sq(0, 0), 3},
		{KindPawn, sq(3, 3), 2}, // unmoved: single and double advance
	}
	for _, tt := range tests {
		t.Run(string(tt.kind)+" "+tt.pos.String(), func(t *testing.T) {
			b := makeBoard(t, 8, 8, at(tt.pos.X, tt.pos.Y, tt.kind, "White"))
			p := b.At(tt.pos)
			if got := len(p.Trajectory()); got != tt.want {
				t.Errorf("%s at %v has %d destinations, want %d",
					tt.kind, tt.pos, got, tt.want)
			}
			if got := len(p.Capturing()); tt.kind != KindPawn && got != 0 {
				t.Errorf("%s alone has %d capture landings, want 0", tt.kind, got)
			}
		})
	}
}

func TestSlidingBlockedByFriend(t *testing.T) {
	b := makeBoard(t, 8, 8,
		at(2, 2, "Bishop", "White"),
		at(4, 4, "Pawn", "White"),
	)
	bishop := b.At(sq(2, 2))

	if !bishop.HasTrajectory(sq(3, 3)) {
		t.Error("open diagonal square missing")
	}
	for _, pos := range []util.Pos{sq(4, 4), sq(5, 5)} {
		if bishop.HasTrajectory(pos) {
			t.Errorf("square %v at or behind the friendly blocker offered", pos)
		}
	}
	if bishop.CanCaptureAt(sq(4, 4)) {
		t.Error("friendly blocker offered as a capture landing")
	}
}

func TestSlidingStopsAtFirstHostile(t *testing.T) {
	b := makeBoard(t, 8, 8,
		at(0, 0, "Rook", "White"),
		at(0, 4, "Pawn", "Black"),
		at(0, 6, "Pawn", "Black"),
	)
	rook := b.At(sq(0, 0))

	if !rook.CanCaptureAt(sq(0, 4)) {
		t.Error("first hostile blocker not a capture landing")
	}
	if rook.CanCaptureAt(sq(0, 6)) {
		t.Error("piece behind the blocker offered as a capture landing")
	}
	if rook.HasTrajectory(sq(0, 4)) || rook.HasTrajectory(sq(0, 5)) {
		t.Error("squares at or behind the blocker offered as destinations")
	}
}

func TestKnightJumpsBlockers(t *testing.T) {
	layout := []config.Placement{at(3, 3, "Knight", "White")}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			layout = append(layout, at(3+dx, 3+dy, "Pawn", "White"))
		}
	}
	b := makeBoard(t, 8, 8, layout...)
	knight := b.At(sq(3, 3))

	if got := len(knight.Trajectory()); got != 8 {
		t.Errorf("ringed knight has %d destinations, want 8", got)
	}
}

func TestKingStepsAndCaptures(t *testing.T) {
	b := makeBoard(t, 8, 8,
		at(4, 4, "King", "White"),
		at(4, 3, "Pawn", "White"),
		at(5, 5, "Pawn", "Black"),
	)
	king := b.At(sq(4, 4))

	if king.HasTrajectory(sq(4, 3)) {
		t.Error("friendly-occupied neighbor offered as a destination")
	}
	if king.HasTrajectory(sq(5, 5)) {
		t.Error("hostile-occupied neighbor offered as a plain destination")
	}
	if !king.CanCaptureAt(sq(5, 5)) {
		t.Error("hostile neighbor missing from capture landings")
	}

	victim := b.At(sq(5, 5))
	entry := board.Capture{Victim: victim.ID(), Landing: sq(5, 5)}
	if !b.Capture(sq(4, 4), entry) {
		t.Fatal("king capture failed")
	}
	if got := b.At(sq(5, 5)); got != king {
		t.Errorf("piece on landing square = %v, want the king", got)
	}
}

func TestRookExecutesRelationEntry(t *testing.T) {
	b := makeBoard(t, 8, 8,
		at(0, 0, "Rook", "White"),
		at(0, 3, "Knight", "Black"),
	)
	knight := b.At(sq(0, 3))

	var entry board.Capture
	found := false
	for _, c := range b.Captures() {
		if c.Victim == knight.ID() && c.Landing == sq(0, 3) {
			entry, found = c, true
		}
	}
	if !found {
		t.Fatal("knight's self entry missing from the relation")
	}
	if !b.Capture(sq(0, 0), entry) {
		t.Fatal("rook refused a valid entry")
	}
	if b.ByID(knight.ID()) != nil {
		t.Error("captured knight still resolvable")
	}
}
