// main.go
package main

import (
	"TUI_video_downloader/infrastructure/browser"
	"TUI_video_downloader/infrastructure/config"
	"TUI_video_downloader/infrastructure/logger"
	"TUI_video_downloader/infrastructure/provider"
	"TUI_video_downloader/internal/core/usecases"
	"TUI_video_downloader/internal/handler/tui"
	"fmt"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	configPath string
	backendURL string
	rootCmd    = &cobra.Command{
		Use:   "video-downloader",
		Short: "Terminal client to list and download YouTube video formats",
		Long:  `Paste a video URL, pick one of the formats offered by the backend and open its download in the browser.`,
		RunE:  run,
	}
)

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.Flags().StringVar(&backendURL, "backend", "", "Backend base URL (overrides the config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if backendURL != "" {
		cfg.Backend.BaseURL = backendURL
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --backend: %w", err)
		}
	}

	// Initialize Logger
	appLogger, err := logger.NewFileLogger(cfg.Logging.Dir, cfg.Logging.Prefix, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer appLogger.Close()
	appLogger.Info("Application starting with backend " + cfg.Backend.BaseURL)

	// Initialize Services
	httpClient := &http.Client{Timeout: cfg.Backend.Timeout}
	formatsProvider := provider.NewFormatsProvider(cfg.Backend.BaseURL, httpClient, appLogger)
	formatUseCase := usecases.NewFormatUseCase(formatsProvider, browser.NewSystemBrowser(), appLogger)

	initialModel := tui.NewAppModel(formatUseCase, appLogger, cfg.Backend.BaseURL)

	// Start Bubble Tea program
	p := tea.NewProgram(initialModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		appLogger.Error("Error running TUI program", err)
		return fmt.Errorf("error running TUI program: %w", err)
	}
	appLogger.Info("Application finished.")
	return nil
}
