package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/vanzic/Project-Rivo/demo/tui"
	"github.com/vanzic/Project-Rivo/factory"
	"github.com/vanzic/Project-Rivo/store"
)

func main() {
	// Load environment
	_ = godotenv.Load()

	limit := flag.Int("limit", 3, "Number of trends to render")
	flag.Parse()

	trendStore, err := store.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to connect to trend store: %v", err)
	}
	defer trendStore.Close()

	// The TUI runs the factory headless; logs go to a file so they don't
	// fight the terminal renderer.
	logFile, err := os.OpenFile("demo.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
	}

	events := make(chan factory.Event, 64)
	f := factory.NewDefault(trendStore)
	f.Notify = func(ev factory.Event) { events <- ev }

	run := func(ctx context.Context) (int, error) {
		return f.Run(ctx, *limit)
	}

	m := tui.NewModel(run, events)
	program := tea.NewProgram(m)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
