// Package ace provides an inference.Provider backed by an NVIDIA ACE
// Audio2Face-3D gRPC deployment. It speaks the a2f.v1.AnimationService
// contract defined in pkg/a2fpb.
package ace

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MrWong99/a2fbridge/pkg/a2fpb"
	"github.com/MrWong99/a2fbridge/pkg/blendshape"
	"github.com/MrWong99/a2fbridge/pkg/provider/inference"
)

// defaultTimeout bounds one ProcessAudio call. Matches the REST transport so
// both deployments behave the same under a hung upstream.
const defaultTimeout = 60 * time.Second

// Compile-time assertion that Provider implements inference.Provider.
var _ inference.Provider = (*Provider)(nil)

// Option is a functional option for configuring the ACE Provider.
type Option func(*Provider)

// WithTimeout sets the per-call upper bound. Values <= 0 are ignored.
func WithTimeout(d time.Duration) Option {
	return func(p *Provider) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithPlaintext disables TLS on the channel. Intended for local or
// in-cluster deployments; the hosted ACE endpoints require TLS.
func WithPlaintext() Option {
	return func(p *Provider) {
		p.plaintext = true
	}
}

// WithClient injects a pre-built stub, bypassing dialing entirely. Used by
// tests with an in-process server.
func WithClient(c a2fpb.AnimationServiceClient) Option {
	return func(p *Provider) {
		p.client = c
	}
}

// Provider implements inference.Provider over a gRPC channel.
type Provider struct {
	apiKey    string
	timeout   time.Duration
	plaintext bool

	conn   *grpc.ClientConn
	client a2fpb.AnimationServiceClient
}

// New creates a Provider connected to target (host:port). apiKey must be
// non-empty; it is attached to every call as a bearer credential. The
// underlying channel connects lazily, so New does not block on the network.
func New(target, apiKey string, opts ...Option) (*Provider, error) {
	if apiKey == "" {
		return nil, errors.New("ace: apiKey must not be empty")
	}
	p := &Provider{
		apiKey:  apiKey,
		timeout: defaultTimeout,
	}
	for _, o := range opts {
		o(p)
	}

	if p.client == nil {
		if target == "" {
			return nil, errors.New("ace: target must not be empty")
		}
		creds := credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
		if p.plaintext {
			creds = insecure.NewCredentials()
		}
		conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(creds))
		if err != nil {
			return nil, fmt.Errorf("ace: create channel: %w", err)
		}
		p.conn = conn
		p.client = a2fpb.NewAnimationServiceClient(conn)
	}
	return p, nil
}

// Close tears down the gRPC channel. Safe to call on a Provider built with
// WithClient (it is a no-op then).
func (p *Provider) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Close()
}

// Animate decodes the base64 audio payload, performs one unary ProcessAudio
// call bounded by the provider timeout, and converts the response into raw
// per-frame records. RPC failures are reported as *inference.UpstreamError
// carrying the gRPC status code and message.
func (p *Provider) Animate(ctx context.Context, req inference.Request) (*inference.Result, error) {
	audio, err := base64.StdEncoding.DecodeString(req.Audio)
	if err != nil {
		return nil, fmt.Errorf("ace: decode audio: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+p.apiKey)

	resp, err := p.client.ProcessAudio(ctx, &a2fpb.ProcessAudioRequest{
		Audio:      audio,
		Format:     req.Format,
		OutputFps:  int32(req.OutputFPS),
		FunctionId: req.FunctionID,
	})
	if err != nil {
		st, _ := status.FromError(err)
		return nil, &inference.UpstreamError{
			StatusCode: int(st.Code()),
			Detail:     st.Message(),
		}
	}

	frames := make([]blendshape.Raw, 0, len(resp.GetFrames()))
	for _, f := range resp.GetFrames() {
		values := make([]float64, len(f.GetValues()))
		for i, v := range f.GetValues() {
			values[i] = float64(v)
		}
		frames = append(frames, blendshape.Raw{Values: values})
	}

	return &inference.Result{
		Frames: frames,
		Names:  resp.GetBlendshapeNames(),
	}, nil
}
