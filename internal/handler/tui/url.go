package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	urlPlaceholder = "https://www.youtube.com/watch?v=..."
	urlCharLimit   = 2048
)

// URLModel é o formulário: campo da URL e o botão de envio
type URLModel struct {
	parent  *AppModel
	input   textinput.Model
	spinner spinner.Model
}

func NewURLModel(parent *AppModel) *URLModel {
	input := textinput.New()
	input.Placeholder = urlPlaceholder
	input.Prompt = "> "
	input.CharLimit = urlCharLimit
	input.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusMessageStyle

	return &URLModel{
		parent:  parent,
		input:   input,
		spinner: sp,
	}
}

func (m *URLModel) Init() tea.Cmd {
	return tea.Batch(m.input.Focus(), textinput.Blink)
}

func (m *URLModel) Focus() {
	m.input.Focus()
}

func (m *URLModel) Blur() {
	m.input.Blur()
}

func (m *URLModel) SetWidth(width int) {
	if width > 10 {
		m.input.Width = width - 10
	}
}

func (m *URLModel) Value() string {
	return m.input.Value()
}

func (m *URLModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case spinner.TickMsg:
		// o spinner só gira enquanto houver requisição em andamento
		if !m.parent.state.Submitting() {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		// Enquanto a requisição está em andamento o formulário fica desabilitado
		if m.parent.state.Submitting() {
			return m, nil
		}
		if msg.Type == tea.KeyEnter {
			return m, m.parent.submit(m.input.Value())
		}
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *URLModel) View() string {
	var b strings.Builder
	b.WriteString(listHeaderStyle.Render("Enter YouTube URL"))
	b.WriteString("\n")
	b.WriteString(welcomePromptStyle.Render("Paste the YouTube video URL below to get download options"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.parent.state.Submitting() {
		b.WriteString(disabledButtonStyle.Render(m.spinner.View() + " Loading..."))
	} else {
		b.WriteString(buttonStyle.Render("⬇ Get Download Options"))
	}
	b.WriteString("\n")
	return b.String()
}
