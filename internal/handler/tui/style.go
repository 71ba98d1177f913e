package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Estilo geral de contêiner de documento (margens, padding)
	docStyle = lipgloss.NewStyle().
			Margin(1, 2)

	// Estilos para a tela de boas-vindas
	welcomeTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62")). // Roxo
				Padding(1, 0)
	welcomePromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{
			Light: "#A49FA5",
			Dark:  "#777777",
		})
	warningBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("220")). // Amarelo
			Foreground(lipgloss.Color("220")).
			Padding(0, 1)

	// Estilos para listas (formatos disponíveis)
	listHeaderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("240")). // Cinza
			MarginBottom(1).
			PaddingBottom(1)
	listItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)
	selectedListItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(lipgloss.Color("62")). // Roxo
				SetString("> ")
	formatDetailStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))

	// Botão de envio do formulário
	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)
	disabledButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Background(lipgloss.Color("240")).
				Padding(0, 2)

	// Estilos para mensagens de status/erro
	statusMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{
			Light: "#04B575",
			Dark:  "#04B575",
		}) // Verde
	errorMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("9")) // Vermelho

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")). // Azul
			Underline(true)
)
