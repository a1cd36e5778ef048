package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"vidsense/client"
	"vidsense/config"
	"vidsense/poller"
	"vidsense/state"
	"vidsense/tui"
)

func main() {
	// Load environment
	_ = godotenv.Load()

	// Parse command-line flags
	apiURL := flag.String("url", "", "Analysis service URL (overrides ANALYSIS_API_URL)")
	video := flag.String("video", "", "Path to the video file to analyze")
	flag.Parse()

	if *video == "" {
		fmt.Println("Usage: vidsense -video <file.mp4> [-url http://localhost:8000]")
		os.Exit(1)
	}

	cfg := config.Load()
	if *apiURL != "" {
		cfg.BaseURL = *apiURL
	}

	// Wire the controller to the session state: the observer is the single
	// writer of the manager, and the channel feeds the TUI.
	manager := state.NewManager()
	updates := make(chan poller.Update, 32)
	observer := func(u poller.Update) {
		manager.Apply(u)
		updates <- u
	}

	api := client.NewAnalysisClient(cfg.BaseURL)
	controller := poller.NewController(api, cfg, observer)

	m := tui.NewModel(controller, manager, updates, *video)

	// Create the tea program
	program := tea.NewProgram(m)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		program.Quit()
	}()

	// Run the program
	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
