// Package nvcf provides an inference.Provider backed by the NVIDIA Cloud
// Functions REST API (api.nvcf.nvidia.com). It submits the whole audio clip
// as a single JSON invocation and parses the returned blendshape list.
package nvcf

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MrWong99/a2fbridge/pkg/blendshape"
	"github.com/MrWong99/a2fbridge/pkg/provider/inference"
)

const (
	defaultBaseURL = "https://api.nvcf.nvidia.com/v2/nvcf"

	// defaultTimeout bounds one invocation end to end. Audio2Face inference on
	// a long clip can take tens of seconds, so this is deliberately generous.
	defaultTimeout = 60 * time.Second

	// maxErrorBody caps how much of an upstream error body is kept for the
	// error message.
	maxErrorBody = 4 << 10
)

// Compile-time assertion that Provider implements inference.Provider.
var _ inference.Provider = (*Provider)(nil)

// Option is a functional option for configuring the NVCF Provider.
type Option func(*Provider)

// WithBaseURL overrides the NVCF API root (no trailing slash). Useful for
// proxies and tests.
func WithBaseURL(baseURL string) Option {
	return func(p *Provider) {
		p.baseURL = baseURL
	}
}

// WithTimeout sets the per-invocation upper bound. Values <= 0 are ignored.
func WithTimeout(d time.Duration) Option {
	return func(p *Provider) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. The provider still
// applies its own per-call deadline via the request context.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Provider) {
		p.httpClient = c
	}
}

// Provider implements inference.Provider against the NVCF REST endpoint.
type Provider struct {
	apiKey     string
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// New creates a new NVCF Provider. apiKey must be non-empty.
func New(apiKey string, opts ...Option) (*Provider, error) {
	if apiKey == "" {
		return nil, errors.New("nvcf: apiKey must not be empty")
	}
	p := &Provider{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		timeout:    defaultTimeout,
		httpClient: &http.Client{},
	}
	for _, o := range opts {
		o(p)
	}
	return p, nil
}

// invokePayload is the JSON body sent to POST /functions/{id}/invoke.
type invokePayload struct {
	Audio     string `json:"audio"`
	Format    string `json:"format"`
	OutputFPS int    `json:"output_fps"`
}

// invokeResponse is the subset of the NVCF invocation response the bridge
// consumes. Each element of Blendshapes is either a name→weight object or a
// flat weight array; blendshape.Raw handles both.
type invokeResponse struct {
	Blendshapes []blendshape.Raw `json:"blendshapes"`
}

// Animate invokes the configured NVCF function with the audio clip and
// returns the raw per-frame records. The call is bounded by the provider
// timeout in addition to any deadline already on ctx.
func (p *Provider) Animate(ctx context.Context, req inference.Request) (*inference.Result, error) {
	if req.FunctionID == "" {
		return nil, errors.New("nvcf: request FunctionID must not be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	body, err := json.Marshal(invokePayload{
		Audio:     req.Audio,
		Format:    req.Format,
		OutputFPS: req.OutputFPS,
	})
	if err != nil {
		return nil, fmt.Errorf("nvcf: encode payload: %w", err)
	}

	url := fmt.Sprintf("%s/functions/%s/invoke", p.baseURL, req.FunctionID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("nvcf: create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, &inference.UpstreamError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &inference.UpstreamError{
			StatusCode: resp.StatusCode,
			Detail:     string(bytes.TrimSpace(detail)),
		}
	}

	var ir invokeResponse
	if err := json.NewDecoder(resp.Body).Decode(&ir); err != nil {
		return nil, fmt.Errorf("nvcf: parse response: %w", err)
	}

	return &inference.Result{Frames: ir.Blendshapes}, nil
}
