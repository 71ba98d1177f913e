package ports

import (
	"TUI_video_downloader/internal/core/domain"
	"context"
)

// FormatsPort is the remote backend that knows how to list and serve formats.
type FormatsPort interface {
	GetFormats(ctx context.Context, videoURL string) (domain.VideoInfo, error)
	DownloadURL(videoURL, formatID string) string
}
