package tui

import (
	"time"

	"TUI_video_downloader/internal/core/workflow"

	tea "github.com/charmbracelet/bubbletea"
)

const toastDuration = 4 * time.Second

type toastExpiredMsg struct{ id int }

// ToastModel shows one notification at a time. A newer notification
// replaces the current one and restarts the timer.
type ToastModel struct {
	current *workflow.Notification
	id      int
}

func NewToastModel() *ToastModel {
	return &ToastModel{}
}

func (m *ToastModel) Show(n workflow.Notification) tea.Cmd {
	m.id++
	m.current = &n

	id := m.id
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (m *ToastModel) Current() (workflow.Notification, bool) {
	if m.current == nil {
		return workflow.Notification{}, false
	}
	return *m.current, true
}

func (m *ToastModel) Update(msg tea.Msg) {
	if expired, ok := msg.(toastExpiredMsg); ok && expired.id == m.id {
		m.current = nil
	}
}

func (m *ToastModel) View() string {
	if m.current == nil {
		return ""
	}

	text := m.current.Title + ": " + m.current.Message
	if m.current.Severity == workflow.SeverityError {
		return errorMessageStyle.Render("✖ " + text)
	}
	return statusMessageStyle.Render("✔ " + text)
}
