package workflow

import (
	"TUI_video_downloader/internal/core/domain"
	"errors"
)

type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "info"
}

type Notification struct {
	Severity Severity
	Title    string
	Message  string
}

const (
	validationMessage = "Please enter a YouTube URL"
	successMessage    = "Video information loaded successfully!"
	retrievalMessage  = "Failed to fetch video information. Make sure the URL is valid and your backend is running."
)

// SuccessNotification is shown once a format list was loaded.
func SuccessNotification() Notification {
	return Notification{Severity: SeverityInfo, Title: "Success", Message: successMessage}
}

// FailureNotification maps a workflow error to the message shown to the
// user. The underlying cause is never part of the message.
func FailureNotification(err error) Notification {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return Notification{Severity: SeverityError, Title: "Error", Message: validationMessage}
	}
	return Notification{Severity: SeverityError, Title: "Error", Message: retrievalMessage}
}
