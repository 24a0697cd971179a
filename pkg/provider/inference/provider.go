// Package inference defines the Provider interface for facial-animation
// inference backends.
//
// An inference provider wraps a remote Audio2Face-style service that turns an
// audio clip into a sequence of per-frame blendshape coefficients. Two
// transports ship with the bridge: an HTTPS REST client (package nvcf) and a
// gRPC client (package ace). A deployment selects exactly one of them at
// configuration time; the HTTP layer only ever sees this interface.
//
// Implementations must be safe for concurrent use — the bridge issues one
// Animate call per in-flight HTTP request.
package inference

import (
	"context"
	"fmt"

	"github.com/MrWong99/a2fbridge/pkg/blendshape"
)

// Provider is the abstraction over any facial-animation inference backend.
type Provider interface {
	// Animate submits one audio clip for inference and blocks until the full
	// per-frame coefficient sequence is available or ctx is done.
	//
	// Implementations must bound the upstream call with an explicit timeout so
	// a hung provider cannot block the caller indefinitely, and must respect
	// cancellation of ctx (the bridge derives it from the inbound request, so
	// a client disconnect aborts the outbound call).
	//
	// Upstream rejections and transport failures are reported as
	// *UpstreamError so callers can surface the provider's own status and
	// detail text. No partial results are returned alongside an error.
	Animate(ctx context.Context, req Request) (*Result, error)
}

// Request carries one audio clip and its inference parameters.
type Request struct {
	// Audio is the base64-encoded audio payload exactly as received from the
	// client. Transports that need raw bytes decode it themselves.
	Audio string

	// Format names the audio container/codec (e.g. "webm", "wav").
	Format string

	// FunctionID identifies the upstream inference function (avatar) to run.
	FunctionID string

	// OutputFPS is the frame rate the upstream should sample coefficients at.
	OutputFPS int
}

// Result is the raw, untranslated outcome of one inference call.
type Result struct {
	// Frames holds one record per animation frame in playback order.
	Frames []blendshape.Raw

	// Names is the canonical coefficient name table for flat-valued frames,
	// when the upstream supplies one. Nil otherwise.
	Names []string
}

// UpstreamError reports a non-success answer or transport failure from the
// inference provider. Detail preserves the provider's own message verbatim so
// it can be handed back to the caller for diagnosis.
type UpstreamError struct {
	// StatusCode is the upstream HTTP status or gRPC code as an integer.
	// Zero when the failure happened before any status was received.
	StatusCode int

	// Detail is the provider-supplied error text.
	Detail string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream error [%d]: %s", e.StatusCode, e.Detail)
	}
	return "upstream error: " + e.Detail
}
