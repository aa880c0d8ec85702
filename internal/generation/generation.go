package generation

import (
	"context"
	"errors"
	"time"

	"github.com/Design-Arena-Gens/agentic-bd57676b/config"

	"github.com/jonboulle/clockwork"
)

var ErrEmptyVideoUrl = errors.New("generator returned an empty video url")

type Submission struct {
	ImageName string
	ImageType string
	Image     []byte
	Prompt    string
}

type Result struct {
	VideoUrl string
}

type Generator interface {
	GenerateVideo(ctx context.Context, submission Submission) (Result, error)
}

// Placeholder stands in for a real video generator. It never looks at the
// image or the prompt: it waits a fixed latency and returns a constant url.
type Placeholder struct {
	latency  time.Duration
	videoUrl string
	clock    clockwork.Clock
}

func NewPlaceholder(config config.GenerationConfig, clock clockwork.Clock) *Placeholder {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Placeholder{
		latency:  config.SimulatedLatency(),
		videoUrl: config.VideoUrl,
		clock:    clock,
	}
}

func (p *Placeholder) GenerateVideo(ctx context.Context, _ Submission) (Result, error) {
	if err := sleep(ctx, p.clock, p.latency); err != nil {
		return Result{}, err
	}
	if p.videoUrl == "" {
		return Result{}, ErrEmptyVideoUrl
	}
	return Result{VideoUrl: p.videoUrl}, nil
}

// sleep blocks for d on clock, or until ctx is done.
func sleep(ctx context.Context, clock clockwork.Clock, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-clock.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
