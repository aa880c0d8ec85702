package tui

import (
	"github.com/Design-Arena-Gens/agentic-bd57676b/internal/form"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case HealthMsg:
		m.Connected = msg.Err == nil
		return m, nil
	case ResponseMsg:
		return m.handleResponse(msg)
	case TickMsg:
		if !m.State.Busy {
			return m, nil
		}
		m.frame++
		return m, tickCmd()
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyCtrlS:
		return m.submit()
	case tea.KeyTab, tea.KeyShiftTab:
		m.Focus = 1 - m.Focus
		return m, nil
	}

	if m.State.Busy {
		return m, nil
	}
	m.Alert = ""

	switch msg.Type {
	case tea.KeyEnter:
		if m.Focus == FieldImage {
			return m.selectFile()
		}
		if msg.Alt {
			m.State = m.State.ChangePrompt(m.State.Prompt + "\n")
			return m, nil
		}
		return m.submit()
	case tea.KeyBackspace:
		m.deleteRune()
	case tea.KeySpace:
		m.insert(" ")
	case tea.KeyRunes:
		m.insert(string(msg.Runes))
	}
	return m, nil
}

func (m Model) selectFile() (tea.Model, tea.Cmd) {
	image, err := form.LoadImage(m.ImagePath)
	if err != nil {
		m.Alert = err.Error()
		return m, nil
	}
	m.State = m.State.SelectFile(image)
	m.Focus = FieldPrompt
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	next, effect := m.State.Submit()
	m.State = next
	if effect.Alert != "" {
		m.Alert = effect.Alert
	}
	if effect.Send == nil {
		return m, nil
	}
	m.Alert = ""
	m.frame = 0
	return m, tea.Batch(sendSubmission(m.backend, *effect.Send), tickCmd())
}

func (m Model) handleResponse(msg ResponseMsg) (tea.Model, tea.Cmd) {
	next, effect := m.State.Receive(form.Response{VideoUrl: msg.VideoUrl, Err: msg.Err})
	m.State = next
	m.Alert = effect.Alert
	return m, nil
}

func (m *Model) insert(s string) {
	if m.Focus == FieldImage {
		m.ImagePath += s
		return
	}
	m.State = m.State.ChangePrompt(m.State.Prompt + s)
}

func (m *Model) deleteRune() {
	if m.Focus == FieldImage {
		m.ImagePath = dropLastRune(m.ImagePath)
		return
	}
	m.State = m.State.ChangePrompt(dropLastRune(m.State.Prompt))
}

func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
