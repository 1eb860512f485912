package ui

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// StartMenuState is the title screen shown at launch and after a match
// returns to the menu.
type StartMenuState struct {
	app      *App
	startBtn *Button
	quitBtn  *Button
	quit     bool
}

// NewStartMenu creates the title screen.
func NewStartMenu(app *App) *StartMenuState {
	s := &StartMenuState{app: app}

	w, h := app.ScreenSize()
	btnW, btnH := 200, 48
	btnX := (w - btnW) / 2
	startY := h/2 + 10

	s.startBtn = NewButton(btnX, startY, btnW, btnH, "Start Game", true, s.startGame)
	s.quitBtn = NewButton(btnX, startY+btnH+16, btnW, btnH, "Quit", false, func() {
		s.quit = true
	})
	return s
}

// startGame marks first-launch setup done and enters the play state.
func (s *StartMenuState) startGame() {
	if s.app.store != nil {
		first, err := s.app.store.IsFirstLaunch()
		if err != nil {
			log.Printf("Warning: Failed to check first launch: %v", err)
		} else if first {
			if err := s.app.store.MarkFirstLaunchComplete(); err != nil {
				log.Printf("Warning: Failed to mark first launch complete: %v", err)
			}
		}
	}

	game, err := NewGameState(s.app)
	if err != nil {
		log.Printf("Warning: Failed to start game: %v", err)
		return
	}
	s.app.SetState(game)
}

// Update handles menu input.
func (s *StartMenuState) Update() error {
	if s.quit {
		return ebiten.Termination
	}

	if KeyJustPressed(ebiten.KeyEnter) {
		s.startGame()
		return nil
	}
	if KeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	s.startBtn.Update(s.app.input)
	s.quitBtn.Update(s.app.input)

	if s.startBtn.Hovered() || s.quitBtn.Hovered() {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
	return nil
}

// Draw renders the title screen.
func (s *StartMenuState) Draw(screen *ebiten.Image) {
	screen.Fill(DefaultTheme().Background)

	w, h := s.app.ScreenSize()

	if titleFace != nil {
		title := "ChessPlusPlus"
		tw, _ := measure(title, titleFace)
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(w)/2-tw/2, float64(h)/2-120)
		op.ColorScale.ScaleWithColor(textPrimary)
		text.Draw(screen, title, titleFace, op)
	}

	if labelFace != nil {
		greeting := "Welcome back, " + s.app.prefs.PlayerName
		gw, _ := measure(greeting, labelFace)
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(w)/2-gw/2, float64(h)/2-70)
		op.ColorScale.ScaleWithColor(textSecondary)
		text.Draw(screen, greeting, labelFace, op)
	}

	s.startBtn.Draw(screen)
	s.quitBtn.Draw(screen)
}
