package usecases

import (
	"TUI_video_downloader/internal/core/domain"
	"context"
	"fmt"
	"strings"
)

func (uc *formatUseCase) GetFormats(ctx context.Context, url string) (domain.VideoInfo, error) {
	uc.log.Info("Init Get Formats")

	// Validate the URL
	url = strings.TrimSpace(url)
	if url == "" {
		return domain.VideoInfo{}, &domain.ValidationError{Reason: "URL cannot be empty"}
	}

	info, err := uc.service.GetFormats(ctx, url)
	if err != nil {
		uc.log.Error(fmt.Sprintf("Failed to get formats for %s", url), err)
		return domain.VideoInfo{}, &domain.RetrievalError{URL: url, Err: err}
	}

	uc.log.Info(fmt.Sprintf("Get Formats Completed: %q with %d formats", info.Title, len(info.Formats)))

	return info, nil
}
