package workflow

import (
	"TUI_video_downloader/internal/core/domain"
	"errors"
	"strings"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSuccess
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseSubmitting:
		return "Submitting"
	case PhaseSuccess:
		return "Success"
	case PhaseFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// ErrSubmitInFlight is returned when a submission is attempted while another
// one has not resolved yet.
var ErrSubmitInFlight = errors.New("a format request is already in flight")

// State is the whole client state of the format workflow. It is a value:
// every transition returns a new State and leaves the receiver untouched.
type State struct {
	Phase Phase
	// URL é a última URL submetida (já sem espaços), usada também pelo download
	URL       string
	VideoInfo *domain.VideoInfo
	Err       error
	// Generation identifica a submissão mais recente
	Generation uint64
}

// Ticket describes the request that a successful Submit asks the caller to
// issue. Its Generation must be handed back to Resolve.
type Ticket struct {
	Generation uint64
	URL        string
}

func (s State) Submitting() bool {
	return s.Phase == PhaseSubmitting
}

// Submit validates the raw input and moves the state to Submitting. On a
// validation failure the state is returned unchanged together with a
// *domain.ValidationError and no request must be issued.
func (s State) Submit(input string) (State, Ticket, error) {
	if s.Submitting() {
		return s, Ticket{}, ErrSubmitInFlight
	}

	url := strings.TrimSpace(input)
	if url == "" {
		return s, Ticket{}, &domain.ValidationError{Reason: "URL cannot be empty"}
	}

	next := s
	next.Phase = PhaseSubmitting
	next.URL = url
	next.Err = nil
	next.Generation = s.Generation + 1

	return next, Ticket{Generation: next.Generation, URL: url}, nil
}

// Resolve applies the outcome of the request identified by generation. The
// boolean is false when the outcome belongs to an older submission and was
// discarded.
func (s State) Resolve(generation uint64, info domain.VideoInfo, err error) (State, bool) {
	if generation != s.Generation || !s.Submitting() {
		return s, false
	}

	next := s
	if err != nil {
		next.Phase = PhaseFailed
		next.Err = err
		return next, true
	}

	next.Phase = PhaseSuccess
	next.Err = nil
	next.VideoInfo = &info
	return next, true
}
