package main

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/saeidalz13/seabattle/console"
	"github.com/saeidalz13/seabattle/internal/config"
	mb "github.com/saeidalz13/seabattle/models/battleship"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalln(err)
	}

	firstFleet, secondFleet, err := cfg.Fleets()
	if err != nil {
		log.Fatalln(err)
	}

	matchManager := mb.NewBattleshipMatchManager()

	switch cfg.Mode {
	case config.ModeLine:
		match := matchManager.CreateMatch(mb.NewGrid(firstFleet), mb.NewGrid(secondFleet))
		defer matchManager.EndMatch(match.Uuid)

		if err := console.RunLines(os.Stdin, os.Stdout, match); err != nil {
			log.Fatalln(err)
		}

	case config.ModeTUI:
		// stdout belongs to the UI from here on
		if cfg.Stage == config.StageDev {
			logFile, err := tea.LogToFile(cfg.LogFile, "seabattle")
			if err != nil {
				log.Fatalln(err)
			}
			defer logFile.Close()
		} else {
			log.SetOutput(io.Discard)
		}

		match := matchManager.CreateMatch(mb.NewGrid(firstFleet), mb.NewGrid(secondFleet))
		defer matchManager.EndMatch(match.Uuid)

		opts := []tea.ProgramOption{}
		if cfg.AltScreen {
			opts = append(opts, tea.WithAltScreen())
		}

		if _, err := tea.NewProgram(console.NewModel(match), opts...).Run(); err != nil {
			log.Fatalln(err)
		}
	}
}
