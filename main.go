// ChessPlusPlus - a configurable board game engine with an Ebitengine frontend
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rfdiazpr/ChessPlusPlus/internal/config"
	"github.com/rfdiazpr/ChessPlusPlus/internal/storage"
	"github.com/rfdiazpr/ChessPlusPlus/internal/ui"
)

var configPath = flag.String("config", "", "board configuration file (JSON); overrides the stored preference")

func main() {
	flag.Parse()

	store, err := storage.NewStorage()
	if err != nil {
		log.Printf("Warning: Failed to open storage: %v", err)
		store = nil
	}

	conf, err := loadConfig(store)
	if err != nil {
		log.Fatal(err)
	}

	app := ui.NewApp(conf, store)
	defer app.Close()
	app.SetState(ui.NewStartMenu(app))

	w, h := app.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("ChessPlusPlus")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}

// loadConfig resolves the board configuration: the -config flag wins,
// then the stored preference, then the embedded default layout.
func loadConfig(store *storage.Storage) (*config.BoardConfig, error) {
	path := *configPath
	if path == "" && store != nil {
		prefs, err := store.LoadPreferences()
		if err != nil {
			log.Printf("Warning: Failed to load preferences: %v", err)
		} else {
			path = prefs.BoardConfig
		}
	}

	if path != "" {
		conf, err := config.Load(path)
		if err != nil {
			log.Printf("Warning: Failed to load board config %s: %v (using the built-in layout)", path, err)
		} else {
			return conf, nil
		}
	}
	return config.Default()
}
