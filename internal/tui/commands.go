package tui

import (
	"context"
	"time"

	"github.com/Design-Arena-Gens/agentic-bd57676b/internal/form"

	tea "github.com/charmbracelet/bubbletea"
)

// HealthMsg reports whether the server answered /health.
type HealthMsg struct {
	Err error
}

// ResponseMsg carries the outcome of one generation request.
type ResponseMsg struct {
	VideoUrl string
	Err      error
}

type TickMsg struct {
	Time time.Time
}

func checkHealth(backend Backend) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_, err := backend.Health(ctx)
		return HealthMsg{Err: err}
	}
}

func sendSubmission(backend Backend, submission form.Submission) tea.Cmd {
	return func() tea.Msg {
		videoUrl, err := backend.GenerateVideo(context.Background(), submission)
		return ResponseMsg{VideoUrl: videoUrl, Err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}
