// Package ui implements the game's windowed frontend using Ebitengine.
//
// An App owns a current State and forwards the Ebitengine game loop to
// it; states switch between each other through SetState.
package ui

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rfdiazpr/ChessPlusPlus/internal/config"
	"github.com/rfdiazpr/ChessPlusPlus/internal/res"
	"github.com/rfdiazpr/ChessPlusPlus/internal/storage"
)

// StatusBarHeight is the pixel height of the strip below the board.
const StatusBarHeight = 40

// State is one screen of the application. States receive the frame
// tick through Update and render themselves in Draw.
type State interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// App implements ebiten.Game and dispatches to the current state.
type App struct {
	conf     *config.BoardConfig
	store    *storage.Storage
	prefs    *storage.Preferences
	textures *res.Manager
	sounds   *Sounds
	input    *Input
	state    State
}

// NewApp wires the application together. store may be nil, in which
// case preferences fall back to defaults and are not persisted.
func NewApp(conf *config.BoardConfig, store *storage.Storage) *App {
	a := &App{
		conf:     conf,
		store:    store,
		textures: res.NewManager(),
		sounds:   NewSounds(),
		input:    NewInput(),
	}

	a.prefs = storage.DefaultPreferences()
	if store != nil {
		prefs, err := store.LoadPreferences()
		if err != nil {
			log.Printf("Warning: Failed to load preferences: %v", err)
		} else {
			a.prefs = prefs
		}
	}
	a.sounds.SetEnabled(a.prefs.SoundEnabled)

	return a
}

// SetState switches the active state.
func (a *App) SetState(s State) {
	a.state = s
}

// Config returns the board configuration the app was started with.
func (a *App) Config() *config.BoardConfig {
	return a.conf
}

// Update forwards the tick to the current state.
func (a *App) Update() error {
	a.input.Update()
	if a.state == nil {
		return nil
	}
	return a.state.Update()
}

// Draw renders the current state.
func (a *App) Draw(screen *ebiten.Image) {
	if a.state == nil {
		return
	}
	a.state.Draw(screen)
}

// Layout reports the logical screen size: the playing area plus the
// status strip.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.ScreenSize()
}

// ScreenSize returns the logical window size in pixels.
func (a *App) ScreenSize() (int, int) {
	return a.conf.Width * a.conf.CellWidth,
		a.conf.Height*a.conf.CellHeight + StatusBarHeight
}

// SavePrefs persists the current preferences if a store is open.
func (a *App) SavePrefs() {
	if a.store == nil {
		return
	}
	if err := a.store.SavePreferences(a.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// Close releases the app's resources.
func (a *App) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			log.Printf("Warning: Failed to close storage: %v", err)
		}
	}
}
