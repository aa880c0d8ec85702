package dependencies

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/Design-Arena-Gens/agentic-bd57676b/internal/generation"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
)

const GenerateVideoMethod = "/videogen.VideoService/GenerateVideo"

// Rpc forwards submissions to an external generation service. Payloads are
// structpb.Struct so no generated stubs are needed on either side.
type Rpc struct {
	conn    *grpc.ClientConn
	timeout time.Duration
}

func NewRpc(target string, timeout time.Duration, opts ...grpc.DialOption) (*Rpc, error) {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)

	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("error creating newrpc: %w", err)
	}

	return &Rpc{
		conn:    conn,
		timeout: timeout,
	}, nil
}

func (r *Rpc) GenerateVideo(ctx context.Context, submission generation.Submission) (generation.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := structpb.NewStruct(map[string]any{
		"prompt":    submission.Prompt,
		"imageName": submission.ImageName,
		"imageType": submission.ImageType,
		"image":     base64.StdEncoding.EncodeToString(submission.Image),
	})
	if err != nil {
		return generation.Result{}, fmt.Errorf("encode request: %w", err)
	}

	resp := &structpb.Struct{}
	if err := r.conn.Invoke(ctx, GenerateVideoMethod, req, resp); err != nil {
		return generation.Result{}, err
	}

	videoUrl := resp.GetFields()["videoUrl"].GetStringValue()
	if videoUrl == "" {
		return generation.Result{}, generation.ErrEmptyVideoUrl
	}

	return generation.Result{VideoUrl: videoUrl}, nil
}

func (r *Rpc) Close() {
	r.conn.Close()
}
