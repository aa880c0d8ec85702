package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/Design-Arena-Gens/agentic-bd57676b/internal/form"
	"github.com/Design-Arena-Gens/agentic-bd57676b/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Backend is the part of form.Client the terminal form needs.
type Backend interface {
	form.Requester
	Health(ctx context.Context) (types.HealthResponse, error)
}

type Field int

const (
	FieldImage Field = iota
	FieldPrompt
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Model is the bubbletea rendering of form.State. The image path is local
// input; it becomes a file selection only when enter is pressed on it.
type Model struct {
	backend Backend

	State     form.State
	Focus     Field
	ImagePath string
	Alert     string
	Connected bool
	frame     int
}

func NewModel(backend Backend) Model {
	return Model{backend: backend, Focus: FieldImage}
}

func (m Model) Init() tea.Cmd {
	return checkHealth(m.backend)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("AI Video Generator"))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("Create a unique video from an image and a text prompt."))
	b.WriteString("\n")
	if !m.Connected {
		b.WriteString(ErrorStyle.Render("not connected to the generation server"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("Image path\n")
	b.WriteString(m.fieldStyle(FieldImage).Render(m.ImagePath + m.cursor(FieldImage)))
	b.WriteString("\n")
	if m.State.Image != nil {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("Selected file: %s", m.State.Image.Name)))
		b.WriteString("\n")
	}

	b.WriteString("\nPrompt\n")
	b.WriteString(m.fieldStyle(FieldPrompt).Render(m.State.Prompt + m.cursor(FieldPrompt)))
	b.WriteString("\n\n")

	if m.State.Busy {
		b.WriteString(DisabledButtonStyle.Render("Generating..."))
		b.WriteString("\n\n")
		b.WriteString(StatusStyle.Render(spinnerFrames[m.frame%len(spinnerFrames)] + " Generating your video, please wait..."))
		b.WriteString("\n")
	} else {
		b.WriteString(ButtonStyle.Render("Generate Video"))
		b.WriteString("\n")
	}

	if m.Alert != "" {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(m.Alert))
		b.WriteString("\n")
	}

	if m.State.VideoUrl != "" {
		b.WriteString("\n")
		b.WriteString(TitleStyle.Render("Generated Video"))
		b.WriteString("\n")
		b.WriteString(m.State.VideoUrl)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("tab: switch field • enter: select file / generate • alt+enter: newline • ctrl+c: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) fieldStyle(f Field) lipgloss.Style {
	if m.Focus == f {
		return FocusedFieldStyle
	}
	return FieldStyle
}

func (m Model) cursor(f Field) string {
	if m.Focus == f && !m.State.Busy {
		return "█"
	}
	return ""
}
