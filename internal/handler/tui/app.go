package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"TUI_video_downloader/internal/core/domain"
	"TUI_video_downloader/internal/core/ports"
	"TUI_video_downloader/internal/core/usecases"
	"TUI_video_downloader/internal/core/workflow"

	tea "github.com/charmbracelet/bubbletea"
)

type currentView int

const (
	viewWelcome currentView = iota
	viewDownloader
)

type focusArea int

const (
	focusInput focusArea = iota
	focusFormats
)

type AppModel struct {
	// Dependências injetadas
	formatUseCase usecases.FormatUseCase
	logger        ports.LoggerPort
	backendURL    string

	welcomeModel *WelcomeModel
	urlModel     *URLModel
	formatsModel *FormatsModel
	toastModel   *ToastModel

	// estado único do fluxo (url, loading, videoInfo)
	state workflow.State

	currentView currentView
	focus       focusArea

	appContext context.Context
	cancelApp  context.CancelFunc

	width  int
	height int
}

func NewAppModel(formatUC usecases.FormatUseCase, log ports.LoggerPort, backendURL string) *AppModel {
	// Cria contexto principal que será cancelado no Quit
	appCtx, cancel := context.WithCancel(context.Background())

	m := &AppModel{
		formatUseCase: formatUC,
		logger:        log,
		backendURL:    backendURL,

		appContext: appCtx,
		cancelApp:  cancel,
	}

	m.welcomeModel = NewWelcomeModel(m)
	m.urlModel = NewURLModel(m)
	m.formatsModel = NewFormatsModel(m)
	m.toastModel = NewToastModel()

	m.currentView = viewWelcome
	return m
}

func (m *AppModel) Init() tea.Cmd {
	return m.welcomeModel.Init()
}

// Mensagem de navegação usada pela tela de boas-vindas
type showDownloaderMsg struct{}

// formatsResolvedMsg carries the outcome of one format request back into
// the update loop.
type formatsResolvedMsg struct {
	generation uint64
	info       domain.VideoInfo
	err        error
}

func (m *AppModel) send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// State returns a copy of the current workflow state.
func (m *AppModel) State() workflow.State {
	return m.state
}

// submit starts a format request for the raw input, or reports why it can't.
func (m *AppModel) submit(input string) tea.Cmd {
	next, ticket, err := m.state.Submit(input)
	if err != nil {
		if errors.Is(err, workflow.ErrSubmitInFlight) {
			m.logger.Warning("Submit ignored: a request is already in flight")
			return nil
		}
		m.logger.Warning(fmt.Sprintf("Submit rejected: %v", err))
		return m.toastModel.Show(workflow.FailureNotification(err))
	}

	m.state = next
	m.logger.Info(fmt.Sprintf("Submitting %s (generation %d)", ticket.URL, ticket.Generation))

	return tea.Batch(
		m.fetchFormatsCmd(ticket),
		m.urlModel.spinner.Tick,
	)
}

func (m *AppModel) fetchFormatsCmd(ticket workflow.Ticket) tea.Cmd {
	uc := m.formatUseCase
	ctx := m.appContext
	return func() tea.Msg {
		info, err := uc.GetFormats(ctx, ticket.URL)
		return formatsResolvedMsg{generation: ticket.Generation, info: info, err: err}
	}
}

func (m *AppModel) resolve(msg formatsResolvedMsg) tea.Cmd {
	next, applied := m.state.Resolve(msg.generation, msg.info, msg.err)
	if !applied {
		m.logger.Warning(fmt.Sprintf("Discarding stale response of generation %d", msg.generation))
		return nil
	}
	m.state = next

	if msg.err != nil {
		m.logger.Error("Format request failed", msg.err)
		return m.toastModel.Show(workflow.FailureNotification(msg.err))
	}

	m.formatsModel.Reset()
	return m.toastModel.Show(workflow.SuccessNotification())
}

// dispatchDownload opens the download for formatID without touching the
// workflow state. The returned command produces no message.
func (m *AppModel) dispatchDownload(formatID string) tea.Cmd {
	uc := m.formatUseCase
	videoURL := m.state.URL
	log := m.logger
	return func() tea.Msg {
		if _, err := uc.DispatchDownload(videoURL, formatID); err != nil {
			log.Error("Download dispatch rejected", err)
		}
		return nil
	}
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Tratamos keys globais (Ctrl+C, Esc)
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.logger.Info("Ctrl+C or Esc pressed, quitting.")
			m.cancelApp()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.urlModel.SetWidth(msg.Width)
		return m, nil

	case showDownloaderMsg:
		m.currentView = viewDownloader
		m.focus = focusInput
		return m, m.urlModel.Init()

	case formatsResolvedMsg:
		return m, m.resolve(msg)

	case toastExpiredMsg:
		m.toastModel.Update(msg)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case viewWelcome:
		_, cmd = m.welcomeModel.Update(msg)

	case viewDownloader:
		if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyTab {
			m.toggleFocus()
			return m, nil
		}

		if m.focus == focusFormats {
			if _, isKey := msg.(tea.KeyMsg); isKey {
				_, cmd = m.formatsModel.Update(msg)
				return m, cmd
			}
		}
		_, cmd = m.urlModel.Update(msg)
	}

	return m, cmd
}

func (m *AppModel) toggleFocus() {
	if m.focus == focusFormats {
		m.focus = focusInput
		m.urlModel.Focus()
		return
	}

	if !m.formatsModel.HasRows() {
		return
	}
	m.focus = focusFormats
	m.urlModel.Blur()
}

func (m *AppModel) View() string {
	switch m.currentView {
	case viewWelcome:
		return m.welcomeModel.View()
	case viewDownloader:
		var b strings.Builder
		b.WriteString(welcomeTitleStyle.Render("YouTube Downloader"))
		b.WriteString("\n")
		b.WriteString(m.urlModel.View())
		b.WriteString("\n")
		if formats := m.formatsModel.View(); formats != "" {
			b.WriteString(formats)
			b.WriteString("\n")
		}
		if toast := m.toastModel.View(); toast != "" {
			b.WriteString(toast)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(welcomePromptStyle.Render("Tab switches between the URL and the formats. Ctrl+C or Esc to quit."))
		return docStyle.Render(b.String())
	default:
		return "Unknown view…"
	}
}
