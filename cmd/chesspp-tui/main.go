// Command chesspp-tui plays the configured board game in the terminal.
// It drives the same board engine as the windowed frontend and works
// over plain terminals, which makes it handy for quick rule checks.
package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfdiazpr/ChessPlusPlus/internal/config"
)

var configPath = flag.String("config", "", "board configuration file (JSON); embedded default when empty")

func main() {
	flag.Parse()

	conf, err := config.Default()
	if err != nil {
		log.Fatalf("could not parse the built-in board config: %v", err)
	}
	if *configPath != "" {
		conf, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("could not load board config %s: %v", *configPath, err)
		}
	}

	m, err := newModel(conf)
	if err != nil {
		log.Fatalf("could not set up the board: %v", err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
