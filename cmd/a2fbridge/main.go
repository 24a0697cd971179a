// Command a2fbridge is the NVIDIA Audio2Face HTTP bridge server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MrWong99/a2fbridge/internal/bridge"
	"github.com/MrWong99/a2fbridge/internal/config"
	"github.com/MrWong99/a2fbridge/internal/observe"
	"github.com/MrWong99/a2fbridge/pkg/provider/inference"
	"github.com/MrWong99/a2fbridge/pkg/provider/inference/ace"
	"github.com/MrWong99/a2fbridge/pkg/provider/inference/nvcf"
)

// version is set via -ldflags at build time.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// ── CLI flags ──────────────────────────────────────────────────────────────
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	flag.Parse()

	// ── Load configuration ────────────────────────────────────────────────────
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "a2fbridge: %v\n", err)
		return 1
	}

	// ── Logger ────────────────────────────────────────────────────────────────
	logger := newLogger(cfg.Server.LogLevel)
	slog.SetDefault(logger)

	slog.Info("a2fbridge starting",
		"version", version,
		"config", *configPath,
		"listen_addr", cfg.Server.ListenAddr,
		"log_level", cfg.Server.LogLevel,
	)

	// ── Signal context ────────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Telemetry ─────────────────────────────────────────────────────────────
	otelShutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{
		ServiceName:    "a2fbridge",
		ServiceVersion: version,
	})
	if err != nil {
		slog.Error("failed to initialise telemetry", "err", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			slog.Warn("telemetry shutdown error", "err", err)
		}
	}()

	// ── Upstream transport ────────────────────────────────────────────────────
	provider, err := buildProvider(cfg)
	if err != nil {
		slog.Error("failed to build inference provider", "err", err)
		return 1
	}
	if closer, ok := provider.(interface{ Close() error }); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				slog.Warn("provider close error", "err", err)
			}
		}()
	}

	printStartupSummary(cfg, provider != nil)

	// ── Serve ─────────────────────────────────────────────────────────────────
	srv := bridge.New(cfg, provider, observe.DefaultMetrics())

	slog.Info("server ready — press Ctrl+C to shut down")
	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("run error", "err", err)
		return 1
	}
	slog.Info("goodbye")
	return 0
}

// buildProvider constructs the configured upstream transport. A missing
// credential is not fatal: the server starts and reports the configuration
// error per request, so it returns (nil, nil) then.
func buildProvider(cfg *config.Config) (inference.Provider, error) {
	inf := cfg.Inference
	if inf.APIKey == "" {
		slog.Warn("NVIDIA_API_KEY not configured — /a2f/process will fail until it is set")
		return nil, nil
	}

	switch inf.Transport {
	case config.TransportNVCF:
		var opts []nvcf.Option
		if inf.BaseURL != "" {
			opts = append(opts, nvcf.WithBaseURL(inf.BaseURL))
		}
		opts = append(opts, nvcf.WithTimeout(inf.RequestTimeout))
		p, err := nvcf.New(inf.APIKey, opts...)
		if err != nil {
			return nil, fmt.Errorf("create nvcf provider: %w", err)
		}
		slog.Info("provider created", "transport", "nvcf", "function_id", inf.FunctionID)
		return p, nil

	case config.TransportACE:
		opts := []ace.Option{ace.WithTimeout(inf.RequestTimeout)}
		if inf.Plaintext {
			opts = append(opts, ace.WithPlaintext())
		}
		p, err := ace.New(inf.Target, inf.APIKey, opts...)
		if err != nil {
			return nil, fmt.Errorf("create ace provider: %w", err)
		}
		slog.Info("provider created", "transport", "ace", "target", inf.Target)
		return p, nil
	}
	return nil, fmt.Errorf("unknown transport %q", inf.Transport)
}

// ── Startup summary ───────────────────────────────────────────────────────────

func printStartupSummary(cfg *config.Config, providerReady bool) {
	upstream := "(not configured)"
	if providerReady {
		switch cfg.Inference.Transport {
		case config.TransportACE:
			upstream = "ace / " + cfg.Inference.Target
		default:
			upstream = "nvcf"
		}
	}
	auth := "open"
	if cfg.Auth.BridgeToken != "" {
		auth = "bearer token"
	}
	slog.Info("startup summary",
		"upstream", upstream,
		"function_id", cfg.Inference.FunctionID,
		"output_fps", cfg.Inference.OutputFPS,
		"auth", auth,
		"listen_addr", cfg.Server.ListenAddr,
	)
}

// ── Logger ─────────────────────────────────────────────────────────────────────

func newLogger(level config.LogLevel) *slog.Logger {
	var lvl slog.Level
	switch level {
	case config.LogDebug:
		lvl = slog.LevelDebug
	case config.LogWarn:
		lvl = slog.LevelWarn
	case config.LogError:
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
