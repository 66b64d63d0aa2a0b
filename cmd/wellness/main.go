package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/csheth/wellness/internal/api"
	"github.com/csheth/wellness/internal/i18n"
	"github.com/csheth/wellness/internal/tui"
)

func main() {
	envErr := godotenv.Load()

	apiURL := flag.String("api-url", "", "assistant API base URL (default $WELLNESS_API_URL or http://127.0.0.1:8000)")
	route := flag.String("route", "/", "screen to open, eg. /chatbot or a password reset link")
	timeout := flag.Duration("timeout", 0, "HTTP timeout (default $WELLNESS_TIMEOUT or 30s)")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	logFile := flag.String("log-file", os.Getenv("WELLNESS_LOG_FILE"), "append debug logs to this file")
	flag.Parse()

	if *logFile != "" {
		f, err := tea.LogToFile(*logFile, "wellness")
		if err != nil {
			fmt.Println("failed to open log file:", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		log.Printf("[config] .env ignored: %v", envErr)
	}

	labels, err := i18n.Load()
	if err != nil {
		fmt.Println("invalid locale tables:", err)
		os.Exit(1)
	}

	client, err := api.NewFromEnv(api.Config{
		BaseURL: *apiURL,
		Timeout: *timeout,
	})
	if err != nil {
		fmt.Println("invalid API configuration:", err)
		os.Exit(1)
	}
	log.Printf("[config] api=%s route=%s", client.BaseURL(), *route)

	opts := []tea.ProgramOption{}
	if !*noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Client:        client,
			Labels:        labels,
			StartRoute:    *route,
			RedirectDelay: time.Second,
		}),
		opts...,
	)

	if _, err := program.Run(); err != nil {
		fmt.Println("program error:", err)
		os.Exit(1)
	}
}
