// Package form models the submission form as an explicit state record with a
// pure transition per user event. Renderers (terminal, tests) apply the
// transitions and execute the returned Effect.
package form

const (
	AlertIncomplete = "Please provide an image and a prompt."
	AlertFailed     = "Failed to generate video. Please try again."
)

type Image struct {
	Name        string
	ContentType string
	Data        []byte
}

type Submission struct {
	Image  Image
	Prompt string
}

type State struct {
	Image    *Image
	Prompt   string
	Busy     bool
	VideoUrl string
}

// Effect is what the caller must do after a transition. Both fields may be
// empty, which means nothing happens.
type Effect struct {
	Alert string
	Send  *Submission
}

type Response struct {
	VideoUrl string
	Err      error
}

func (s State) SelectFile(image Image) State {
	s.Image = &image
	return s
}

func (s State) ChangePrompt(text string) State {
	s.Prompt = text
	return s
}

// Ready reports whether both an image and a prompt are present.
func (s State) Ready() bool {
	return s.Image != nil && s.Prompt != ""
}

// Submit ignores presses while a request is in flight.
func (s State) Submit() (State, Effect) {
	if s.Busy {
		return s, Effect{}
	}
	if !s.Ready() {
		return s, Effect{Alert: AlertIncomplete}
	}

	s.Busy = true
	s.VideoUrl = ""
	return s, Effect{Send: &Submission{Image: *s.Image, Prompt: s.Prompt}}
}

func (s State) Receive(resp Response) (State, Effect) {
	s.Busy = false
	if resp.Err != nil || resp.VideoUrl == "" {
		s.VideoUrl = ""
		return s, Effect{Alert: AlertFailed}
	}
	s.VideoUrl = resp.VideoUrl
	return s, Effect{}
}
