package piece

import (
	"testing"

	"github.com/rfdiazpr/ChessPlusPlus/internal/util"
)

func TestCastlingKingside(t *testing.T) {
	b := makeBoard(t, 8, 8,
		at(4, 7, "King", "White"),
		at(7, 7, "Rook", "White"),
	)
	king := b.At(sq(4, 7))
	rook := b.At(sq(7, 7))

	if !king.HasTrajectory(sq(6, 7)) {
		t.Fatal("castling destination not offered")
	}
	if !b.Move(sq(4, 7), sq(6, 7)) {
		t.Fatal("castling move failed")
	}
	if got := b.At(sq(6, 7)); got != king {
		t.Errorf("king not on its destination: %v", got)
	}
	if got := b.At(sq(5, 7)); got != rook {
		t.Errorf("rook not beside the king: %v", got)
	}
	if b.At(sq(7, 7)) != nil {
		t.Error("rook's old corner still occupied")
	}
	if king.MoveCount() != 1 || rook.MoveCount() != 1 {
		t.Errorf("move counts king=%d rook=%d, want 1 and 1",
			king.MoveCount(), rook.MoveCount())
	}
}

func TestCastlingQueenside(t *testing.T) {
	b := makeBoard(t, 8, 8,
		at(4, 0, "King", "Black"),
		at(0, 0, "Rook", "Black"),
	)
	king := b.At(sq(4, 0))
	rook := b.At(sq(0, 0))

	if !king.HasTrajectory(sq(2, 0)) {
		t.Fatal("queenside destination not offered")
	}
	if !b.Move(sq(4, 0), sq(2, 0)) {
		t.Fatal("castling move failed")
	}
	if got := b.At(sq(3, 0)); got != rook {
		t.Errorf("rook not beside the king: %v", got)
	}
}

func TestCastlingBothWingsOffered(t *testing.T) {
	b := makeBoard(t, 8, 8,
		at(4, 7, "King", "White"),
		at(0, 7, "Rook", "White"),
		at(7, 7, "Rook", "White"),
	)
	king := b.At(sq(4, 7))
	for _, dest := range []util.Pos{sq(2, 7), sq(6, 7)} {
		if !king.HasTrajectory(dest) {
			t.Errorf("destination %v not offered", dest)
		}
	}
}

func TestCastlingBlockedPath(t *testing.T) {
	b := makeBoard(t, 8, 8,
		at(4, 7, "King", "White"),
		at(0, 7, "Rook", "White"),
		at(7, 7, "Rook", "White"),
		at(5, 7, "Bishop", "White"),
	)
	king := b.At(sq(4, 7))

	if king.HasTrajectory(sq(6, 7)) {
		t.Error("kingside offered through a blocker")
	}
	if !king.HasTrajectory(sq(2, 7)) {
		t.Error("clear queenside withheld")
	}
}

func TestCastlingForfeits(t *testing.T) {
	t.Run("rook out and back", func(t *testing.T) {
		b := makeBoard(t, 8, 8,
			at(4, 7, "King", "White"),
			at(7, 7, "Rook", "White"),
		)
		if !b.Move(sq(7, 7), sq(7, 5)) || !b.Move(sq(7, 5), sq(7, 7)) {
			t.Fatal("rook round trip failed")
		}
		if b.At(sq(4, 7)).HasTrajectory(sq(6, 7)) {
			t.Error("castle offered with a rook that has moved")
		}
	})

	t.Run("king out and back", func(t *testing.T) {
		b := makeBoard(t, 8, 8,
			at(4, 7, "King", "White"),
			at(0, 7, "Rook", "White"),
			at(7, 7, "Rook", "White"),
		)
		if !b.Move(sq(4, 7), sq(4, 6)) || !b.Move(sq(4, 6), sq(4, 7)) {
			t.Fatal("king round trip failed")
		}
		king := b.At(sq(4, 7))
		if king.HasTrajectory(sq(2, 7)) || king.HasTrajectory(sq(6, 7)) {
			t.Error("castle offered with a king that has moved")
		}
	})
}

func TestCastlingIgnoresForeignRooks(t *testing.T) {
	t.Run("wrong suit", func(t *testing.T) {
		b := makeBoard(t, 8, 8,
			at(4, 7, "King", "White"),
			at(7, 7, "Rook", "Black"),
		)
		if b.At(sq(4, 7)).HasTrajectory(sq(6, 7)) {
			t.Error("castle offered with a hostile rook")
		}
	})

	t.Run("wrong row", func(t *testing.T) {
		b := makeBoard(t, 8, 8,
			at(4, 7, "King", "White"),
			at(7, 4, "Rook", "White"),
		)
		if b.At(sq(4, 7)).HasTrajectory(sq(6, 7)) {
			t.Error("castle offered with an off-row rook")
		}
	})

	t.Run("rook too close", func(t *testing.T) {
		b := makeBoard(t, 8, 8,
			at(4, 7, "King", "White"),
			at(6, 7, "Rook", "White"),
		)
		if b.At(sq(4, 7)).HasTrajectory(sq(6, 7)) {
			t.Error("castle offered onto an adjacent-wing rook")
		}
	})
}
