package form

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrBusy       = errors.New("a submission is already in flight")
	ErrIncomplete = errors.New("image and prompt are required")
)

type Requester interface {
	GenerateVideo(ctx context.Context, submission Submission) (string, error)
}

type Alerter interface {
	Alert(message string)
}

type AlertFunc func(message string)

func (f AlertFunc) Alert(message string) { f(message) }

// Session drives a State against a Requester. It is safe for concurrent use;
// at most one request is in flight at any time.
type Session struct {
	mu        sync.Mutex
	state     State
	requester Requester
	alerter   Alerter
}

func NewSession(requester Requester, alerter Alerter) *Session {
	if alerter == nil {
		alerter = AlertFunc(func(string) {})
	}
	return &Session{requester: requester, alerter: alerter}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) SelectFile(image Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.SelectFile(image)
}

func (s *Session) ChangePrompt(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.ChangePrompt(text)
}

// Submit sends the current image and prompt and blocks until the answer is
// applied. The busy flag is cleared on every path that sent a request.
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()
	wasBusy := s.state.Busy
	next, effect := s.state.Submit()
	s.state = next
	s.mu.Unlock()

	if effect.Alert != "" {
		s.alerter.Alert(effect.Alert)
	}
	if effect.Send == nil {
		if wasBusy {
			return ErrBusy
		}
		return ErrIncomplete
	}

	videoUrl, err := s.requester.GenerateVideo(ctx, *effect.Send)

	s.mu.Lock()
	next, effect = s.state.Receive(Response{VideoUrl: videoUrl, Err: err})
	s.state = next
	s.mu.Unlock()

	if effect.Alert != "" {
		s.alerter.Alert(effect.Alert)
	}
	if err == nil && videoUrl == "" {
		err = ErrNoVideoUrl
	}
	return err
}
