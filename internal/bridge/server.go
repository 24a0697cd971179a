// Package bridge implements the HTTP surface of the Audio2Face bridge: the
// /a2f/process translation endpoint, the /health configuration snapshot, and
// the operational /healthz, /readyz and /metrics endpoints.
//
// The bridge is stateless. Every request performs at most one synchronous
// outbound inference call; configuration is read-only after startup and passed
// in explicitly at construction time.
package bridge

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/MrWong99/a2fbridge/internal/config"
	"github.com/MrWong99/a2fbridge/internal/health"
	"github.com/MrWong99/a2fbridge/internal/observe"
	"github.com/MrWong99/a2fbridge/pkg/provider/inference"
)

// shutdownTimeout bounds the drain of in-flight requests on shutdown.
const shutdownTimeout = 15 * time.Second

// Server is the bridge HTTP server. Construct it with [New]; it holds the
// immutable process configuration and the single upstream provider selected
// at startup.
type Server struct {
	cfg      *config.Config
	provider inference.Provider
	metrics  *observe.Metrics
}

// New creates a Server. provider may be nil when no upstream credential is
// configured; the process still serves traffic, and every /a2f/process call
// then fails with a configuration error.
func New(cfg *config.Config, provider inference.Provider, metrics *observe.Metrics) *Server {
	return &Server{
		cfg:      cfg,
		provider: provider,
		metrics:  metrics,
	}
}

// Handler builds the full request handling chain: CORS, then the
// observability middleware, then the route mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /a2f/process", s.handleProcess)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	probes := health.New(health.Checker{Name: "upstream", Check: s.checkUpstream})
	probes.Register(mux)

	var h http.Handler = mux
	h = observe.Middleware(s.metrics)(h)
	h = CORS(h)
	return h
}

// checkUpstream is the readiness check for the upstream provider. The bridge
// never probes the provider over the network; readiness means a credential is
// configured and a transport was constructed.
func (s *Server) checkUpstream(context.Context) error {
	if s.provider == nil {
		return errors.New("NVIDIA_API_KEY not configured")
	}
	return nil
}

// Run serves HTTP on the configured listen address until ctx is cancelled,
// then drains in-flight requests for up to [shutdownTimeout].
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:        s.cfg.Server.ListenAddr,
		Handler:     s.Handler(),
		ReadTimeout: 30 * time.Second,
		// Writes stay open for the full upstream call plus response encoding.
		WriteTimeout: s.cfg.Inference.RequestTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
