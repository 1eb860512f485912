package ui

import (
	"testing"

	"github.com/rfdiazpr/ChessPlusPlus/internal/config"
	"github.com/rfdiazpr/ChessPlusPlus/internal/res"
	"github.com/rfdiazpr/ChessPlusPlus/internal/util"
)

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	conf, err := config.Default()
	if err != nil {
		t.Fatalf("Default config failed: %v", err)
	}
	return NewRenderer(conf, res.NewManager())
}

func TestBoardPixels(t *testing.T) {
	r := testRenderer(t)
	w, h := r.BoardPixels()
	if w != 640 || h != 640 {
		t.Errorf("BoardPixels() = (%d, %d), want (640, 640)", w, h)
	}
}

func TestPosAt(t *testing.T) {
	r := testRenderer(t)

	tests := []struct {
		name string
		x, y int
		want util.Pos
		ok   bool
	}{
		{"origin", 0, 0, util.Pos{X: 0, Y: 0}, true},
		{"inside first cell", 79, 79, util.Pos{X: 0, Y: 0}, true},
		{"second cell", 80, 0, util.Pos{X: 1, Y: 0}, true},
		{"last cell", 639, 639, util.Pos{X: 7, Y: 7}, true},
		{"right of board", 640, 100, util.Pos{}, false},
		{"below board", 100, 640, util.Pos{}, false},
		{"status strip", 320, 660, util.Pos{}, false},
		{"negative", -1, 10, util.Pos{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.PosAt(tt.x, tt.y)
			if ok != tt.ok {
				t.Fatalf("PosAt(%d, %d) ok = %v, want %v", tt.x, tt.y, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("PosAt(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCellOriginRoundTrip(t *testing.T) {
	r := testRenderer(t)
	for _, pos := range []util.Pos{{X: 0, Y: 0}, {X: 3, Y: 5}, {X: 7, Y: 7}} {
		x, y := r.CellOrigin(pos)
		back, ok := r.PosAt(x, y)
		if !ok || back != pos {
			t.Errorf("PosAt(CellOrigin(%v)) = %v, %v; want %v, true", pos, back, ok, pos)
		}
	}
}

func TestPosAtHonorsCellSize(t *testing.T) {
	conf, err := config.Default()
	if err != nil {
		t.Fatalf("Default config failed: %v", err)
	}
	conf.CellWidth = 32
	conf.CellHeight = 48
	r := NewRenderer(conf, res.NewManager())

	w, h := r.BoardPixels()
	if w != 256 || h != 384 {
		t.Fatalf("BoardPixels() = (%d, %d), want (256, 384)", w, h)
	}
	got, ok := r.PosAt(33, 95)
	if !ok || got != (util.Pos{X: 1, Y: 1}) {
		t.Errorf("PosAt(33, 95) = %v, %v; want (1, 1), true", got, ok)
	}
}
