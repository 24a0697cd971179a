// Package config provides the configuration schema and loader for the
// Audio2Face bridge service.
//
// Configuration is read once at startup — a YAML file first, then a small set
// of environment overrides — and the resulting Config is treated as immutable
// for the lifetime of the process. Handlers receive it explicitly; nothing
// reads ambient global state.
package config

import "time"

// LogLevel controls log verbosity for the bridge server.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Transport selects which upstream protocol backs the bridge.
type Transport string

const (
	// TransportNVCF invokes the hosted NVIDIA Cloud Functions REST API.
	TransportNVCF Transport = "nvcf"

	// TransportACE calls an Audio2Face-3D gRPC deployment.
	TransportACE Transport = "ace"
)

// IsValid reports whether t is a recognised transport name.
func (t Transport) IsValid() bool {
	return t == TransportNVCF || t == TransportACE
}

// Config is the root configuration structure for the bridge.
// It is typically loaded from a YAML file using [Load] or [LoadFromReader];
// both apply the environment overrides documented on [InferenceConfig] and
// [AuthConfig].
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Auth      AuthConfig      `yaml:"auth"`
	Inference InferenceConfig `yaml:"inference"`
}

// ServerConfig holds network and logging settings for the bridge server.
type ServerConfig struct {
	// ListenAddr is the TCP address the server listens on (e.g., ":8080").
	ListenAddr string `yaml:"listen_addr"`

	// LogLevel controls verbosity.
	LogLevel LogLevel `yaml:"log_level"`
}

// AuthConfig configures authentication of inbound bridge requests.
type AuthConfig struct {
	// BridgeToken is a static bearer token clients must present on
	// POST /a2f/process. When empty, the endpoint is open.
	// Environment override: A2F_BRIDGE_TOKEN.
	BridgeToken string `yaml:"bridge_token"`
}

// InferenceConfig selects and configures the upstream inference transport.
type InferenceConfig struct {
	// Transport names the upstream protocol: "nvcf" (REST) or "ace" (gRPC).
	// Exactly one transport backs a deployment.
	Transport Transport `yaml:"transport"`

	// APIKey authenticates against the upstream provider. When empty the
	// process still starts; every /a2f/process call fails with a
	// configuration error until a key is supplied.
	// Environment override: NVIDIA_API_KEY.
	APIKey string `yaml:"api_key"`

	// BaseURL overrides the NVCF API root. Ignored by the ace transport.
	BaseURL string `yaml:"base_url"`

	// Target is the host:port of the gRPC deployment. Required by the ace
	// transport; ignored by nvcf.
	Target string `yaml:"target"`

	// Plaintext disables TLS on the gRPC channel (local deployments only).
	Plaintext bool `yaml:"plaintext"`

	// FunctionID is the default inference function (avatar). A request may
	// override it per call. Environment override: A2F_FUNCTION_ID.
	FunctionID string `yaml:"function_id"`

	// OutputFPS is the animation frame rate requested from the upstream.
	// Environment override: A2F_OUTPUT_FPS.
	OutputFPS int `yaml:"output_fps"`

	// RequestTimeout bounds one upstream call end to end.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// BlendshapeNames optionally maps flat-array response indices to
	// canonical coefficient names. When absent, placeholder names
	// ("blendshape_<index>") are synthesized.
	BlendshapeNames []string `yaml:"blendshape_names"`
}

// Defaults, applied by the loader when the corresponding value is unset.
const (
	// DefaultListenAddr is the bridge's listen address.
	DefaultListenAddr = ":8080"

	// DefaultFunctionID is the NVCF function id of the "Claire" avatar.
	DefaultFunctionID = "0961a6da-fb9e-4f2e-8491-247e5fd7bf8d"

	// DefaultOutputFPS is the animation frame rate.
	DefaultOutputFPS = 60

	// DefaultRequestTimeout bounds one upstream inference call.
	DefaultRequestTimeout = 60 * time.Second
)
