// Package config manages environment-provided configuration.
//
// It reads variables with the POIGW_ prefix (optionally from a `.env`
// file via godotenv autoload), maps them into structured Go types with
// koanf, and validates required values with go-playground/validator.
//
// Provider credentials are loaded lazily, at most once per process:
// both a successful load and a failed one are cached, so a process that
// starts without credentials keeps answering with the same configuration
// error instead of re-reading the environment on every request.
package config

import (
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process
	// environment before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"poi-gateway/internal/errs"
)

// envPrefix scopes which environment variables belong to this service.
const envPrefix = "POIGW_"

// Credentials holds the secrets for both search providers. All three are
// required; a gateway with a partial credential set cannot serve any
// request, so absence of any one is a configuration error.
type Credentials struct {
	NaverClientID     string `koanf:"naver_client_id" validate:"required"`
	NaverClientSecret string `koanf:"naver_client_secret" validate:"required"`
	KakaoRESTAPIKey   string `koanf:"kakao_rest_api_key" validate:"required"`
}

// ServerConfig groups HTTP server runtime settings. Unlike credentials,
// these all have defaults: the process must be able to boot and serve
// error responses even when provider credentials are absent.
type ServerConfig struct {
	Port         string `koanf:"port"`
	ReadTimeout  int    `koanf:"read_timeout"`
	WriteTimeout int    `koanf:"write_timeout"`
	IdleTimeout  int    `koanf:"idle_timeout"`
	Env          string `koanf:"env"`
}

var (
	credsOnce sync.Once
	creds     *Credentials
	credsErr  error
)

// LoadCredentials returns the provider credentials, loading them from the
// environment on the first call. The outcome, success or failure, is
// cached for the process lifetime; concurrent first callers are
// serialized by the sync.Once so the load happens exactly once.
func LoadCredentials() (*Credentials, error) {
	credsOnce.Do(func() {
		creds, credsErr = loadCredentials()
	})
	return creds, credsErr
}

func loadCredentials() (*Credentials, error) {
	k := koanf.New(".")

	// POIGW_NAVER_CLIENT_ID -> "naver_client_id". Keys stay flat; the
	// struct tags above address them directly.
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, errs.NewConfigurationError("could not read environment: " + err.Error())
	}

	c := &Credentials{}
	if err := k.Unmarshal("", c); err != nil {
		return nil, errs.NewConfigurationError("could not unmarshal credentials: " + err.Error())
	}

	if err := validator.New().Struct(c); err != nil {
		return nil, errs.NewConfigurationError("missing provider credentials: " + err.Error())
	}

	return c, nil
}

// Server loads the HTTP server settings. Missing values fall back to
// defaults, so this never fails.
func Server() ServerConfig {
	cfg := ServerConfig{
		Port:         "8080",
		ReadTimeout:  10,
		WriteTimeout: 10,
		IdleTimeout:  60,
		Env:          "production",
	}

	k := koanf.New(".")
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return cfg
	}
	// Unmarshal only overwrites keys that are present.
	_ = k.Unmarshal("", &cfg)

	return cfg
}

// LogLevel reads the desired zerolog level name, defaulting to "info".
func LogLevel() string {
	if lvl := os.Getenv(envPrefix + "LOG_LEVEL"); lvl != "" {
		return strings.ToLower(lvl)
	}
	return "info"
}
