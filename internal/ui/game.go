package ui

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/rfdiazpr/ChessPlusPlus/internal/board"
	"github.com/rfdiazpr/ChessPlusPlus/internal/config"
	"github.com/rfdiazpr/ChessPlusPlus/internal/piece"
	"github.com/rfdiazpr/ChessPlusPlus/internal/storage"
	"github.com/rfdiazpr/ChessPlusPlus/internal/util"
)

// GameState runs a match: it owns the board, tracks whose turn it is,
// translates clicks into moves and captures, and settles promotions
// and the end of the match.
type GameState struct {
	app      *App
	b        *board.Board
	renderer *Renderer

	turn       int // index into the config's suit list
	selectedID board.PieceID
	hasSel     bool
	lastFrom   util.Pos
	lastTo     util.Pos
	hasLast    bool

	gameOver bool
	winner   config.Suit
	moves    int
	started  time.Time
	recorded bool
}

// NewGameState builds a fresh board from the app's configuration and
// starts a match with the first configured suit to move.
func NewGameState(app *App) (*GameState, error) {
	b, err := board.New(app.conf, piece.NewFactory(app.conf))
	if err != nil {
		return nil, err
	}
	return &GameState{
		app:      app,
		b:        b,
		renderer: NewRenderer(app.conf, app.textures),
		started:  time.Now(),
	}, nil
}

// CurrentSuit returns the suit to move.
func (g *GameState) CurrentSuit() config.Suit {
	return g.app.conf.Suits[g.turn]
}

// Board returns the board being played.
func (g *GameState) Board() *board.Board {
	return g.b
}

// Update handles one frame of match input.
func (g *GameState) Update() error {
	if KeyJustPressed(ebiten.KeyN) {
		g.newMatch()
		return nil
	}
	if KeyJustPressed(ebiten.KeyM) {
		g.recordResult("")
		g.app.SetState(NewStartMenu(g.app))
		return nil
	}
	if KeyJustPressed(ebiten.KeyS) {
		g.app.prefs.SoundEnabled = !g.app.prefs.SoundEnabled
		g.app.sounds.SetEnabled(g.app.prefs.SoundEnabled)
		g.app.SavePrefs()
	}
	if KeyJustPressed(ebiten.KeyT) {
		g.app.prefs.ShowThreats = !g.app.prefs.ShowThreats
		g.app.SavePrefs()
	}
	if KeyJustPressed(ebiten.KeyEscape) {
		g.clearSelection()
	}

	if g.gameOver {
		return nil
	}

	if g.app.input.LeftJustPressed() {
		mx, my := g.app.input.MousePosition()
		if pos, ok := g.renderer.PosAt(mx, my); ok {
			g.handleClick(pos)
		}
	}
	return nil
}

// handleClick selects a piece of the moving suit or plays the selected
// piece onto the clicked square.
func (g *GameState) handleClick(pos util.Pos) {
	if clicked := g.b.At(pos); clicked != nil && clicked.Suit() == g.CurrentSuit() {
		if g.hasSel && clicked.ID() == g.selectedID {
			g.clearSelection()
			return
		}
		g.selectedID = clicked.ID()
		g.hasSel = true
		return
	}

	if !g.hasSel {
		return
	}
	sel := g.b.ByID(g.selectedID)
	if sel == nil {
		g.clearSelection()
		return
	}
	from := sel.Pos()

	if entry, ok := g.captureAt(sel, pos); ok {
		victim := g.b.ByID(entry.Victim)
		wonBy := config.Suit("")
		if victim != nil && victim.Kind() == piece.KindKing {
			wonBy = sel.Suit()
		}
		if g.b.Capture(from, entry) {
			g.afterAction(from, pos, true, wonBy)
			return
		}
	} else if sel.HasTrajectory(pos) && g.b.At(pos) == nil {
		if g.b.Move(from, pos) {
			g.afterAction(from, pos, false, "")
			return
		}
	}

	g.app.sounds.Play(EffectInvalid)
	g.clearSelection()
}

// captureAt finds a relation entry the attacker can execute onto the
// given landing square. Entries whose victim stands on the landing
// square win over pass-by entries that merely share it.
func (g *GameState) captureAt(att *board.Piece, landing util.Pos) (board.Capture, bool) {
	if !att.CanCaptureAt(landing) {
		return board.Capture{}, false
	}

	var indirect board.Capture
	var haveIndirect bool
	for _, entry := range g.b.Captures() {
		if entry.Landing != landing {
			continue
		}
		victim := g.b.ByID(entry.Victim)
		if victim == nil || victim.ID() == att.ID() || victim.Suit() == att.Suit() {
			continue
		}
		if victim.Pos() == landing {
			return entry, true
		}
		if !haveIndirect {
			indirect = entry
			haveIndirect = true
		}
	}
	return indirect, haveIndirect
}

// afterAction settles the aftermath of a successful move or capture:
// sounds, promotion, victory, and the turn change.
func (g *GameState) afterAction(from, to util.Pos, captured bool, wonBy config.Suit) {
	g.moves++
	g.lastFrom, g.lastTo = from, to
	g.hasLast = true

	moved := g.b.At(to)
	switch {
	case moved != nil && moved.Kind() == piece.KindKing && abs(to.X-from.X) >= 2:
		g.app.sounds.Play(EffectCastle)
	case captured:
		g.app.sounds.Play(EffectCapture)
	default:
		g.app.sounds.Play(EffectMove)
	}

	if moved != nil {
		if pawn, ok := moved.Rule().(*piece.Pawn); ok && pawn.Promotes(moved) {
			if err := g.b.Replace(to, piece.KindQueen); err != nil {
				log.Printf("Warning: Failed to promote pawn at %v: %v", to, err)
			} else {
				g.app.sounds.Play(EffectPromote)
			}
		}
	}

	if wonBy != "" {
		g.gameOver = true
		g.winner = wonBy
		g.app.sounds.Play(EffectVictory)
		g.recordResult(string(wonBy))
	} else {
		g.turn = (g.turn + 1) % len(g.app.conf.Suits)
	}

	g.clearSelection()
}

// newMatch abandons any match in progress and starts over.
func (g *GameState) newMatch() {
	g.recordResult("")

	b, err := board.New(g.app.conf, piece.NewFactory(g.app.conf))
	if err != nil {
		log.Printf("Warning: Failed to rebuild board: %v", err)
		return
	}
	g.b = b
	g.turn = 0
	g.clearSelection()
	g.hasLast = false
	g.gameOver = false
	g.winner = ""
	g.moves = 0
	g.started = time.Now()
	g.recorded = false
}

// recordResult writes the match outcome to storage exactly once. An
// empty winner records an abandoned match; matches with no moves are
// not recorded at all.
func (g *GameState) recordResult(winner string) {
	if g.recorded || g.moves == 0 || g.app.store == nil {
		return
	}
	err := g.app.store.RecordMatch(storage.MatchResult{
		Winner:   winner,
		Moves:    g.moves,
		Duration: time.Since(g.started),
	})
	if err != nil {
		log.Printf("Warning: Failed to record match: %v", err)
	}
	g.recorded = true
}

func (g *GameState) clearSelection() {
	g.hasSel = false
	g.selectedID = 0
}

// Draw renders the board, highlights, pieces and the status strip.
func (g *GameState) Draw(screen *ebiten.Image) {
	theme := g.renderer.Theme()
	screen.Fill(theme.Background)
	g.renderer.DrawGrid(screen)

	if g.hasLast {
		g.renderer.FillCell(screen, g.lastFrom, theme.LastMove)
		g.renderer.FillCell(screen, g.lastTo, theme.LastMove)
	}

	if g.app.prefs.ShowThreats && !g.gameOver {
		for _, pos := range g.threatenedPositions() {
			g.renderer.FillCell(screen, pos, theme.ThreatTint)
		}
	}

	var sel *board.Piece
	if g.hasSel {
		sel = g.b.ByID(g.selectedID)
	}
	if sel != nil {
		g.renderer.FillCell(screen, sel.Pos(), theme.Selected)
		for _, t := range sel.Trajectory() {
			if g.b.At(t) == nil {
				g.renderer.DrawTrajectoryDot(screen, t)
			}
		}
		for _, landing := range sel.Capturing() {
			if _, ok := g.captureAt(sel, landing); ok {
				g.renderer.DrawCaptureRing(screen, landing)
			}
		}
	}

	for _, p := range g.b.Pieces() {
		g.renderer.DrawPiece(screen, p)
	}

	g.drawStatusBar(screen)
}

// threatenedPositions lists squares of the moving suit's pieces that
// some hostile piece can currently capture.
func (g *GameState) threatenedPositions() []util.Pos {
	current := g.CurrentSuit()
	entries := g.b.Captures()

	var out []util.Pos
	seen := make(map[util.Pos]bool)
	for _, entry := range entries {
		victim := g.b.ByID(entry.Victim)
		if victim == nil || victim.Suit() != current || seen[victim.Pos()] {
			continue
		}
		for _, att := range g.b.Pieces() {
			if att.Suit() == current || att.ID() == victim.ID() {
				continue
			}
			if att.CanCaptureAt(entry.Landing) {
				seen[victim.Pos()] = true
				out = append(out, victim.Pos())
				break
			}
		}
	}
	return out
}

// drawStatusBar renders the strip below the board: whose turn it is or
// who won, plus the keyboard shortcuts.
func (g *GameState) drawStatusBar(screen *ebiten.Image) {
	w, h := g.app.ScreenSize()
	barY := h - StatusBarHeight
	vector.DrawFilledRect(screen, 0, float32(barY),
		float32(w), float32(StatusBarHeight), g.renderer.Theme().StatusBar, false)

	face := labelFace
	if face == nil {
		return
	}

	status := string(g.CurrentSuit()) + " to move"
	if g.gameOver {
		status = string(g.winner) + " wins!"
	}
	_, th := measure(status, face)
	textY := float64(barY) + (float64(StatusBarHeight)-th)/2

	op := &text.DrawOptions{}
	op.GeoM.Translate(12, textY)
	op.ColorScale.ScaleWithColor(textPrimary)
	text.Draw(screen, status, face, op)

	hints := "N new  M menu  S sound  T threats"
	hw, _ := measure(hints, face)
	op = &text.DrawOptions{}
	op.GeoM.Translate(float64(w)-hw-12, textY)
	op.ColorScale.ScaleWithColor(textSecondary)
	text.Draw(screen, hints, face, op)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
