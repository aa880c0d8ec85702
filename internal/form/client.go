package form

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Design-Arena-Gens/agentic-bd57676b/internal/clients/transport"
	"github.com/Design-Arena-Gens/agentic-bd57676b/types"
)

const generateVideoPath = "/api/generate-video"

var ErrNoVideoUrl = errors.New("response carried no video url")

// Client talks to the generation endpoint. It never retries.
type Client struct {
	baseUrl    string
	httpClient *http.Client
}

func NewClient(baseUrl string, timeout time.Duration) *Client {
	return &Client{
		baseUrl:    strings.TrimRight(baseUrl, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) GenerateVideo(ctx context.Context, submission Submission) (string, error) {
	parts := []transport.Part{
		{
			Field:       "image",
			FileName:    submission.Image.Name,
			ContentType: submission.Image.ContentType,
			Data:        submission.Image.Data,
		},
		{Field: "prompt", Data: []byte(submission.Prompt)},
	}

	resp, err := transport.PostMultipart[types.GenerateVideoResponse](c.httpClient, ctx, c.baseUrl+generateVideoPath, parts, nil)
	if err != nil {
		return "", fmt.Errorf("generate video: %w", err)
	}
	if resp.VideoUrl == "" {
		return "", ErrNoVideoUrl
	}
	return resp.VideoUrl, nil
}

func (c *Client) Health(ctx context.Context) (types.HealthResponse, error) {
	return transport.Get[types.HealthResponse](c.httpClient, ctx, c.baseUrl+"/health", nil)
}
