// Mythos client: a terminal client for a multiplayer Mythos text game.
// The server streams game events over a persistent connection; this client
// projects them into renderable state and draws it with Bubble Tea.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"mythosclient/internal/logging"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "review", "--review":
			runReviewMode()
			return
		}
	}

	model, cleanup, err := createApp()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
	}
}

func runReviewMode() {
	logger, err := logging.NewTranscriptLogger()
	if err != nil {
		fmt.Printf("Failed to open transcript database: %v\n", err)
		return
	}
	defer logger.Close()

	entries, err := logger.GetRecentEntries(25)
	if err != nil {
		fmt.Printf("Failed to get transcript entries: %v\n", err)
		return
	}

	if len(entries) == 0 {
		fmt.Println("No events recorded. Play first to generate a transcript!")
		return
	}

	fmt.Printf("Recent events (%d):\n\n", len(entries))

	for _, entry := range entries {
		fmt.Printf("[%d] %s | seq %d | %s | %d message(s)\n",
			entry.ID,
			entry.Timestamp.Format("15:04:05"),
			entry.Sequence,
			entry.EventType,
			entry.Emitted)
		fmt.Printf("Payload: %s\n", entry.Payload)
		fmt.Println(strings.Repeat("-", 50))
	}
}
