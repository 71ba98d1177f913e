package browser

import (
	"TUI_video_downloader/internal/core/ports"
	"fmt"
	"io"

	pkgbrowser "github.com/pkg/browser"
)

type systemBrowser struct{}

// NewSystemBrowser opens links with the default browser of the OS. The
// output of the helper process is discarded so it does not draw over the TUI.
func NewSystemBrowser() ports.BrowserPort {
	pkgbrowser.Stdout = io.Discard
	pkgbrowser.Stderr = io.Discard
	return &systemBrowser{}
}

func (b *systemBrowser) OpenURL(url string) error {
	if err := pkgbrowser.OpenURL(url); err != nil {
		return fmt.Errorf("error while opening browser: %w", err)
	}
	return nil
}
