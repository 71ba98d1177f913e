package usecases

import (
	"TUI_video_downloader/internal/core/domain"
	"TUI_video_downloader/internal/core/ports"
	"context"
)

type formatUseCase struct {
	service ports.FormatsPort
	browser ports.BrowserPort
	log     ports.LoggerPort
}

type FormatUseCase interface {
	GetFormats(ctx context.Context, url string) (domain.VideoInfo, error)
	DispatchDownload(videoURL, formatID string) (string, error)
}

func NewFormatUseCase(service ports.FormatsPort, browser ports.BrowserPort, logger ports.LoggerPort) FormatUseCase {
	return &formatUseCase{
		service: service,
		browser: browser,
		log:     logger,
	}
}
