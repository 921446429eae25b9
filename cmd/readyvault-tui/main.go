package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/readyvault/internal/calculation"
	"github.com/rgehrsitz/readyvault/internal/config"
	"github.com/rgehrsitz/readyvault/internal/logging"
	"github.com/rgehrsitz/readyvault/internal/tui"
)

func main() {
	profilePath := ""
	if len(os.Args) > 1 {
		profilePath = os.Args[1]
	} else {
		fmt.Println("Usage: readyvault-tui <profile-file>")
		os.Exit(1)
	}

	if _, err := os.Stat(profilePath); os.IsNotExist(err) {
		fmt.Printf("Error: Profile file not found: %s\n", profilePath)
		os.Exit(1)
	}

	engine := calculation.NewEngine()

	// The alternate screen owns stdout, so logs only go to a file when one is configured
	if settings, err := config.LoadSettings(); err == nil && settings.LogFile != "" {
		l, err := logging.New(logging.Config{Level: settings.LogLevel, File: settings.LogFile, Console: nopWriter{}})
		if err == nil {
			engine.SetLogger(logging.NewAdapter(l, "tui"))
		}
	}

	model := tui.NewModelWithEngine(profilePath, engine)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
