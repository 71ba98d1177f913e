package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type WelcomeModel struct {
	parent *AppModel
}

func NewWelcomeModel(parent *AppModel) *WelcomeModel {
	return &WelcomeModel{parent: parent}
}

func (m *WelcomeModel) Init() tea.Cmd {
	// Não há inicialização assíncrona para a tela de boas-vindas
	return nil
}

func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			return m, m.parent.send(showDownloaderMsg{})
		}
	}
	return m, nil
}

func (m *WelcomeModel) View() string {
	var b strings.Builder

	title := welcomeTitleStyle.Render("🎬 YouTube Downloader 🎬")
	prompt := welcomePromptStyle.Render("Download your favorite YouTube videos in various formats. Press Enter to start!")

	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(prompt)
	b.WriteString("\n\n")
	b.WriteString(warningBoxStyle.Render(
		"Important: make sure your backend is running at " + urlStyle.Render(m.parent.backendURL) +
			".\nThis tool is for educational purposes only."))
	b.WriteString("\n\n")
	b.WriteString(welcomePromptStyle.Render("(Ctrl+C or Esc to quit)"))

	return docStyle.Render(b.String())
}
