package board

import (
	"testing"

	"github.com/rfdiazpr/ChessPlusPlus/internal/util"
)

// tallyState is a minimal interaction carrying mutable shared state.
type tallyState struct {
	BaseInteraction
	hits int
}

type flagState struct {
	BaseInteraction
	raised bool
}

func TestGetInteractionSingleInstance(t *testing.T) {
	b := mustBoard(t, testConfig(4, 4), testFactory())

	first := GetInteraction[tallyState](b)
	if first == nil {
		t.Fatal("GetInteraction returned nil")
	}
	if first.Board() != b {
		t.Error("interaction not bound to its board")
	}
	first.hits++

	second := GetInteraction[tallyState](b)
	if first != second {
		t.Error("second lookup produced a distinct instance")
	}
	if second.hits != 1 {
		t.Errorf("shared state lost: hits = %d, want 1", second.hits)
	}
}

func TestGetInteractionDistinctTypes(t *testing.T) {
	b := mustBoard(t, testConfig(4, 4), testFactory())

	tally := GetInteraction[tallyState](b)
	flag := GetInteraction[flagState](b)
	tally.hits = 7
	flag.raised = true

	if got := GetInteraction[tallyState](b).hits; got != 7 {
		t.Errorf("tally state = %d, want 7", got)
	}
	if !GetInteraction[flagState](b).raised {
		t.Error("flag state lost")
	}
}

func TestInteractionsScopedPerBoard(t *testing.T) {
	b1 := mustBoard(t, testConfig(4, 4), testFactory())
	b2 := mustBoard(t, testConfig(4, 4), testFactory())

	GetInteraction[tallyState](b1).hits = 3
	if got := GetInteraction[tallyState](b2).hits; got != 0 {
		t.Errorf("second board shares interaction state: hits = %d, want 0", got)
	}
}

func TestInteractionStateSurvivesMoves(t *testing.T) {
	b := mustBoard(t, testConfig(4, 4,
		at(0, 0, "Stepper", white),
		at(3, 3, "Stepper", black),
	), testFactory())

	GetInteraction[tallyState](b).hits = 5
	if !b.Move(util.Pos{X: 0, Y: 0}, util.Pos{X: 1, Y: 1}) {
		t.Fatal("first move failed")
	}
	if !b.Move(util.Pos{X: 3, Y: 3}, util.Pos{X: 2, Y: 2}) {
		t.Fatal("second move failed")
	}
	if got := GetInteraction[tallyState](b).hits; got != 5 {
		t.Errorf("interaction state after two moves = %d, want 5", got)
	}
}

func TestCastlingStateEligibility(t *testing.T) {
	b := mustBoard(t, testConfig(8, 8), testFactory())
	cs := CastlingOf(b)

	if cs.HasMoved(1) {
		t.Error("fresh state reports piece 1 as moved")
	}
	cs.MarkMoved(1)
	if !cs.HasMoved(1) {
		t.Error("MarkMoved not recorded")
	}
	if cs.HasMoved(2) {
		t.Error("marking one piece affected another")
	}

	if got := CastlingOf(b); got != cs {
		t.Error("CastlingOf is not the board's single instance")
	}
}

func TestCastlingStateComplete(t *testing.T) {
	b := mustBoard(t, testConfig(8, 8,
		at(4, 0, "Stepper", black),
		at(7, 0, "Slider", black),
	), testFactory())
	king := b.At(util.Pos{X: 4, Y: 0})
	rook := b.At(util.Pos{X: 7, Y: 0})
	cs := CastlingOf(b)

	dest := util.Pos{X: 6, Y: 0}
	cs.Offer(king.ID(), dest, rook.ID(), util.Pos{X: 7, Y: 0}, util.Pos{X: 5, Y: 0})
	if !cs.Offered(king.ID(), dest) {
		t.Fatal("offer not recorded")
	}

	cs.Complete(king.ID(), dest)
	if got := b.At(util.Pos{X: 5, Y: 0}); got != rook {
		t.Errorf("rook at %v after completion, want it on (5, 0)", rook.Pos())
	}
	if b.At(util.Pos{X: 7, Y: 0}) != nil {
		t.Error("rook's old square still occupied")
	}
	if rook.MoveCount() != 1 {
		t.Errorf("hopped rook move count = %d, want 1", rook.MoveCount())
	}
	if !cs.HasMoved(rook.ID()) {
		t.Error("hopped rook not marked moved")
	}
	if cs.Offered(king.ID(), dest) {
		t.Error("consumed offer still held")
	}
	checkInvariants(t, b)
}

func TestCastlingStateCompleteGuards(t *testing.T) {
	t.Run("no offer", func(t *testing.T) {
		b := mustBoard(t, testConfig(8, 8, at(7, 0, "Slider", black)), testFactory())
		cs := CastlingOf(b)
		cs.Complete(99, util.Pos{X: 6, Y: 0})
		if got := b.At(util.Pos{X: 7, Y: 0}); got == nil || got.MoveCount() != 0 {
			t.Error("completion without an offer touched the board")
		}
	})

	t.Run("rook displaced since the offer", func(t *testing.T) {
		b := mustBoard(t, testConfig(8, 8,
			at(4, 0, "Stepper", black),
			at(7, 0, "Slider", black),
		), testFactory())
		king := b.At(util.Pos{X: 4, Y: 0})
		rook := b.At(util.Pos{X: 7, Y: 0})
		cs := CastlingOf(b)
		cs.Offer(king.ID(), util.Pos{X: 6, Y: 0}, rook.ID(), util.Pos{X: 7, Y: 0}, util.Pos{X: 5, Y: 0})

		if !b.Move(util.Pos{X: 7, Y: 0}, util.Pos{X: 7, Y: 4}) {
			t.Fatal("setup move failed")
		}
		cs.Complete(king.ID(), util.Pos{X: 6, Y: 0})
		if got := b.At(util.Pos{X: 7, Y: 4}); got != rook {
			t.Error("displaced rook moved by a stale offer")
		}
		if b.At(util.Pos{X: 5, Y: 0}) != nil {
			t.Error("stale offer installed a piece on the hop square")
		}
	})

	t.Run("clear offers", func(t *testing.T) {
		b := mustBoard(t, testConfig(8, 8, at(4, 0, "Stepper", black)), testFactory())
		cs := CastlingOf(b)
		cs.Offer(5, util.Pos{X: 6, Y: 0}, 6, util.Pos{X: 7, Y: 0}, util.Pos{X: 5, Y: 0})
		cs.Offer(5, util.Pos{X: 2, Y: 0}, 7, util.Pos{X: 0, Y: 0}, util.Pos{X: 3, Y: 0})
		cs.Offer(9, util.Pos{X: 6, Y: 7}, 10, util.Pos{X: 7, Y: 7}, util.Pos{X: 5, Y: 7})

		cs.ClearOffers(5)
		if cs.Offered(5, util.Pos{X: 6, Y: 0}) || cs.Offered(5, util.Pos{X: 2, Y: 0}) {
			t.Error("offers for the cleared king survive")
		}
		if !cs.Offered(9, util.Pos{X: 6, Y: 7}) {
			t.Error("offer for another king was dropped")
		}
	})
}
