package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Design-Arena-Gens/agentic-bd57676b/internal/form"
	"github.com/Design-Arena-Gens/agentic-bd57676b/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "generation server base url")
	imagePath := flag.String("image", "", "image file; with -prompt, submit once without the interactive form")
	prompt := flag.String("prompt", "", "text prompt")
	timeout := flag.Duration("timeout", 5*time.Minute, "request timeout")
	flag.Parse()

	client := form.NewClient(*server, *timeout)

	if *imagePath != "" || *prompt != "" {
		os.Exit(runOnce(client, *server, *imagePath, *prompt))
	}

	if _, err := tea.NewProgram(tui.NewModel(client)).Run(); err != nil {
		log.Fatal("terminal form failed", "err", err)
	}
}

func runOnce(client *form.Client, server, imagePath, prompt string) int {
	logger := log.With("component", "generate")

	session := form.NewSession(client, form.AlertFunc(func(message string) {
		logger.Error(message)
	}))

	if imagePath != "" {
		image, err := form.LoadImage(imagePath)
		if err != nil {
			logger.Error("failed to load image", "err", err)
			return 1
		}
		session.SelectFile(image)
	}
	session.ChangePrompt(prompt)

	logger.Info("generating video, please wait", "server", server)
	if err := session.Submit(context.Background()); err != nil {
		logger.Debug("submission failed", "err", err)
		return 1
	}

	fmt.Println(session.State().VideoUrl)
	return 0
}
