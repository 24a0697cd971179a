package bridge

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/MrWong99/a2fbridge/internal/observe"
	"github.com/MrWong99/a2fbridge/pkg/blendshape"
	"github.com/MrWong99/a2fbridge/pkg/provider/inference"
)

// defaultFormat is assumed when a request does not name its audio container.
const defaultFormat = "webm"

// AudioRequest is the body of POST /a2f/process.
type AudioRequest struct {
	// Audio is the base64-encoded audio payload.
	Audio string `json:"audio"`

	// Format names the audio container (e.g. "webm", "wav").
	Format string `json:"format"`

	// FunctionID optionally overrides the configured default function
	// (avatar) for this call.
	FunctionID string `json:"function_id"`
}

// AudioResponse is the success body of POST /a2f/process. Frames is always
// present, possibly empty; Duration is FrameCount/FPS and 0 for an empty
// sequence.
type AudioResponse struct {
	Success  bool               `json:"success"`
	Frames   []blendshape.Frame `json:"frames"`
	FPS      int                `json:"fps"`
	Duration float64            `json:"duration"`
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// handleProcess is POST /a2f/process: authenticate, forward the audio to the
// upstream provider, translate the result into timestamped blendshape frames.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := observe.Logger(ctx)

	if status, reason := s.authorize(r); status != 0 {
		log.Warn("request rejected", "status", status, "reason", reason)
		writeError(w, status, reason)
		return
	}

	var req AudioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("request body unreadable", "err", err)
		writeError(w, http.StatusInternalServerError, "invalid request body")
		return
	}

	if s.provider == nil {
		log.Error("inference call refused: no upstream credential configured")
		writeError(w, http.StatusInternalServerError, "NVIDIA_API_KEY not configured")
		return
	}

	functionID := s.cfg.Inference.FunctionID
	if req.FunctionID != "" {
		functionID = req.FunctionID
	}
	format := req.Format
	if format == "" {
		format = defaultFormat
	}
	fps := s.cfg.Inference.OutputFPS
	transport := string(s.cfg.Inference.Transport)

	start := time.Now()
	res, err := s.provider.Animate(ctx, inference.Request{
		Audio:      req.Audio,
		Format:     format,
		FunctionID: functionID,
		OutputFPS:  fps,
	})
	elapsed := time.Since(start)

	if err != nil {
		s.metrics.RecordUpstreamRequest(ctx, transport, "error", elapsed.Seconds())
		s.metrics.RecordUpstreamError(ctx, transport)
		log.Error("inference call failed",
			"function_id", functionID,
			"transport", transport,
			"err", err,
		)

		// Upstream detail is surfaced verbatim; anything else gets a
		// generic message.
		var ue *inference.UpstreamError
		if errors.As(err, &ue) {
			writeError(w, http.StatusInternalServerError, ue.Error())
		} else {
			writeError(w, http.StatusInternalServerError, "audio processing failed")
		}
		return
	}
	s.metrics.RecordUpstreamRequest(ctx, transport, "ok", elapsed.Seconds())

	names := res.Names
	if len(names) == 0 {
		names = s.cfg.Inference.BlendshapeNames
	}
	frames := blendshape.Translate(res.Frames, fps, names)
	s.metrics.RecordFrames(ctx, len(frames))

	log.Info("inference call succeeded",
		"function_id", functionID,
		"transport", transport,
		"frames", len(frames),
		"duration", elapsed,
	)

	writeJSON(w, http.StatusOK, AudioResponse{
		Success:  true,
		Frames:   frames,
		FPS:      fps,
		Duration: blendshape.Duration(len(frames), fps),
	})
}

// healthSnapshot is the body of GET /health. It reports whether a credential
// is configured but never the credential itself.
type healthSnapshot struct {
	Status              string `json:"status"`
	NvidiaAPIConfigured bool   `json:"nvidia_api_configured"`
	FunctionID          string `json:"function_id"`
	OutputFPS           int    `json:"output_fps"`
}

// handleHealth is GET /health: an unauthenticated configuration snapshot.
// No upstream call is made.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthSnapshot{
		Status:              "healthy",
		NvidiaAPIConfigured: s.cfg.Inference.APIKey != "",
		FunctionID:          s.cfg.Inference.FunctionID,
		OutputFPS:           s.cfg.Inference.OutputFPS,
	})
}

// authorize checks the static bridge token. It returns (0, "") when the
// request may proceed, otherwise the HTTP status and a reason:
// 401 for a missing or malformed Authorization header, 403 for a wrong token.
// When no token is configured the check always passes.
func (s *Server) authorize(r *http.Request) (int, string) {
	token := s.cfg.Auth.BridgeToken
	if token == "" {
		return 0, ""
	}

	h := r.Header.Get("Authorization")
	if h == "" {
		return http.StatusUnauthorized, "missing Authorization header"
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return http.StatusUnauthorized, "malformed Authorization header"
	}
	if subtle.ConstantTimeCompare([]byte(strings.TrimPrefix(h, prefix)), []byte(token)) != 1 {
		return http.StatusForbidden, "invalid bridge token"
	}
	return 0, ""
}

// writeError writes the standard error body with the given status.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Success: false, Error: msg})
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"success":false,"error":"encoding failure"}`, http.StatusInternalServerError)
	}
}
