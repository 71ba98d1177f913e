package usecases

import (
	"TUI_video_downloader/internal/core/domain"
	"fmt"
)

// DispatchDownload opens the backend download link for the given format in
// the browser and returns that link. Failures to open the browser are only
// logged, the browser owns the download from here on.
func (uc *formatUseCase) DispatchDownload(videoURL, formatID string) (string, error) {
	if videoURL == "" {
		return "", &domain.ValidationError{Reason: "no URL was submitted"}
	}
	if formatID == "" {
		return "", &domain.ValidationError{Reason: "format id cannot be empty"}
	}

	link := uc.service.DownloadURL(videoURL, formatID)
	uc.log.Info(fmt.Sprintf("Dispatching download of format %s", formatID))

	if err := uc.browser.OpenURL(link); err != nil {
		uc.log.Error("Could not open the download in the browser", err)
	}

	return link, nil
}
