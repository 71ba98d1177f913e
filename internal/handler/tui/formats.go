package tui

import (
	"fmt"
	"strings"

	"TUI_video_downloader/internal/core/domain"

	tea "github.com/charmbracelet/bubbletea"
)

// FormatsModel lista os formatos do último resultado com sucesso
type FormatsModel struct {
	parent *AppModel
	cursor int
}

func NewFormatsModel(parent *AppModel) *FormatsModel {
	return &FormatsModel{parent: parent}
}

func (m *FormatsModel) Init() tea.Cmd {
	return nil
}

func (m *FormatsModel) Reset() {
	m.cursor = 0
}

// rows are the formats actually rendered, never more than
// domain.MaxVisibleFormats.
func (m *FormatsModel) rows() []domain.VideoFormat {
	info := m.parent.state.VideoInfo
	if info == nil {
		return nil
	}
	return info.VisibleFormats()
}

func (m *FormatsModel) HasRows() bool {
	return len(m.rows()) > 0
}

func (m *FormatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	rows := m.rows()
	if len(rows) == 0 {
		return m, nil
	}
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case tea.KeyDown:
			if m.cursor < len(rows)-1 {
				m.cursor++
			}
		case tea.KeyEnter:
			selected := rows[m.cursor]
			m.parent.logger.Info(fmt.Sprintf("Format selected: %s (%s)", selected.Label(), selected.FormatID))
			return m, m.parent.dispatchDownload(selected.FormatID)
		case tea.KeyRunes:
			switch string(msg.Runes) {
			case "k":
				if m.cursor > 0 {
					m.cursor--
				}
			case "j":
				if m.cursor < len(rows)-1 {
					m.cursor++
				}
			case "d":
				return m, m.parent.dispatchDownload(rows[m.cursor].FormatID)
			}
		}
	}
	return m, nil
}

func formatIcon(f domain.VideoFormat) string {
	if f.Category() == domain.CategoryVideo {
		return "🎬"
	}
	return "🎵"
}

func (m *FormatsModel) View() string {
	info := m.parent.state.VideoInfo
	if info == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(listHeaderStyle.Render("🎬 " + info.Title))
	b.WriteString("\n")
	b.WriteString(welcomePromptStyle.Render("Available download formats for this video"))
	b.WriteString("\n\n")

	focused := m.parent.focus == focusFormats
	for i, f := range info.VisibleFormats() {
		line := fmt.Sprintf("%s %s  %s", formatIcon(f), f.Label(), formatDetailStyle.Render(f.Detail()))
		if focused && m.cursor == i {
			b.WriteString(selectedListItemStyle.Render(line))
		} else {
			b.WriteString(listItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if focused {
		b.WriteString("\n")
		b.WriteString(welcomePromptStyle.Render("Use ↑/↓ or j/k to navigate, Enter or d to download."))
		b.WriteString("\n")
	}

	return b.String()
}
