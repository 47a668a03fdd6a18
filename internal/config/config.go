// Package config provides environment-driven configuration for the API
// server and CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration, sourced from the environment.
// The .env file (if present) is loaded by main before FromEnv runs.
type Config struct {
	Port        int      // PORT, default 8080
	DatabaseURL string   // DATABASE_URL, required for serve
	APIKey      string   // GEMINI_API_KEY, optional
	UseLLM      bool     // USE_LLM_MODE, default false
	CORSOrigins []string // CORS_ORIGINS comma list, default "*"
	LLMTimeout  time.Duration
}

// FromEnv reads configuration from environment variables, applying defaults.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:        8080,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		UseLLM:      envBool("USE_LLM_MODE"),
		CORSOrigins: []string{"*"},
		LLMTimeout:  20 * time.Second,
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 || p > 65535 {
			return nil, fmt.Errorf("invalid PORT %q", port)
		}
		cfg.Port = p
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = cfg.CORSOrigins[:0]
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
		if len(cfg.CORSOrigins) == 0 {
			return nil, fmt.Errorf("CORS_ORIGINS is set but contains no origins")
		}
	}

	if secs := os.Getenv("LLM_TIMEOUT_SECONDS"); secs != "" {
		n, err := strconv.Atoi(secs)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid LLM_TIMEOUT_SECONDS %q", secs)
		}
		cfg.LLMTimeout = time.Duration(n) * time.Second
	}

	return cfg, nil
}

// LLMEnabled reports whether LLM mode should be used: the feature flag must
// be set and a credential must be present.
func (c *Config) LLMEnabled() bool {
	return c.UseLLM && c.APIKey != ""
}

func envBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
