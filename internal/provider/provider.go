// Package provider implements the LLM backend clients and their shared
// retry and error-classification contract.
package provider

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Client is the capability contract every backend implements. Complete
// performs exactly one logical request/response cycle; retry lives in the
// middleware returned by WithRetry, not in the clients.
type Client interface {
	Name() string
	Model() string
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Configuration errors, raised at construction before any network call.
var (
	ErrMissingAPIKey  = errors.New("api key not configured")
	ErrMissingBaseURL = errors.New("base url not configured")
	ErrMissingModel   = errors.New("model not configured")
)

// ErrUnavailable marks retry exhaustion on transient failures.
var ErrUnavailable = errors.New("provider unavailable")

// PermanentError marks a failure that will not resolve with retries:
// auth errors, malformed requests, unusable response bodies.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

// Permanent wraps err so the retry middleware fails immediately.
func Permanent(err error) error {
	return &PermanentError{Err: err}
}

// RateLimitError is a transient failure carrying the server's Retry-After
// hint when one was given.
type RateLimitError struct {
	Provider   string
	RetryAfter time.Duration // zero when the server gave none
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s rate limited (retry after %s)", e.Provider, e.RetryAfter)
	}
	return fmt.Sprintf("%s rate limited", e.Provider)
}

// Config carries everything a client factory needs. API keys are resolved
// by the config layer before construction.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // custom provider endpoint
	Timeout time.Duration

	// OpenRouter attribution headers.
	Referer  string
	AppTitle string

	Retry RetryPolicy
}

const defaultTimeout = 30 * time.Second

func (c Config) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return defaultTimeout
}

// Info describes a registered provider without constructing a client.
type Info struct {
	Name    string
	Display string
	EnvVar  string
}

// Factory constructs a bare client (no retry wrapping) from a Config.
type Factory func(cfg Config) (Client, error)

// Registry maps provider names to factories.
type Registry struct {
	infos     map[string]Info
	factories map[string]Factory
}

// NewRegistry returns an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		infos:     make(map[string]Info),
		factories: make(map[string]Factory),
	}
}

// Register adds a provider factory under info.Name.
func (r *Registry) Register(info Info, factory Factory) error {
	if info.Name == "" {
		return fmt.Errorf("provider has no name")
	}
	if factory == nil {
		return fmt.Errorf("provider %q has no factory", info.Name)
	}
	if _, exists := r.factories[info.Name]; exists {
		return fmt.Errorf("provider %q already registered", info.Name)
	}
	r.infos[info.Name] = info
	r.factories[info.Name] = factory
	return nil
}

// Resolve constructs the named provider's client wrapped in the retry
// middleware. Unknown names are an error listing the registered providers.
func (r *Registry) Resolve(name string, cfg Config) (Client, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider %q (available: %s)", name, strings.Join(r.Names(), ", "))
	}
	client, err := factory(cfg)
	if err != nil {
		return nil, err
	}
	return WithRetry(client, cfg.Retry), nil
}

// Lookup returns the Info for a registered provider.
func (r *Registry) Lookup(name string) (Info, error) {
	info, ok := r.infos[name]
	if !ok {
		return Info{}, fmt.Errorf("unknown provider %q (available: %s)", name, strings.Join(r.Names(), ", "))
	}
	return info, nil
}

// Names returns the registered provider names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Infos returns the registered provider infos in name order.
func (r *Registry) Infos() []Info {
	var infos []Info
	for _, name := range r.Names() {
		infos = append(infos, r.infos[name])
	}
	return infos
}

// Builtin returns a registry with the five built-in providers.
func Builtin() *Registry {
	r := NewRegistry()
	builtins := []struct {
		info    Info
		factory Factory
	}{
		{Info{Name: "anthropic", Display: "Anthropic", EnvVar: "ANTHROPIC_API_KEY"}, newAnthropicClient},
		{Info{Name: "openrouter", Display: "OpenRouter", EnvVar: "OPENROUTER_API_KEY"}, newOpenRouterClient},
		{Info{Name: "openai", Display: "OpenAI", EnvVar: "OPENAI_API_KEY"}, newOpenAIClient},
		{Info{Name: "gemini", Display: "Gemini", EnvVar: "GEMINI_API_KEY"}, newGeminiClient},
		{Info{Name: "custom", Display: "Custom", EnvVar: "CUSTOM_API_KEY"}, newCustomClient},
	}
	for _, b := range builtins {
		if err := r.Register(b.info, b.factory); err != nil {
			// Built-in registration only fails on a programming error.
			panic(err)
		}
	}
	return r
}
