package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-cbeautify/internal/config"
)

// envConfig holds configuration from CBEAUTIFY_* environment variables.
type envConfig struct {
	ConfigPath string // CBEAUTIFY_CONFIG
	InputDir   string // CBEAUTIFY_INPUT_DIR
	OutputDir  string // CBEAUTIFY_OUTPUT_DIR
	CSSDir     string // CBEAUTIFY_CSS_DIR
	Style      string // CBEAUTIFY_STYLE
	AssetPath  string // CBEAUTIFY_ASSET_PATH
	Workers    int    // CBEAUTIFY_WORKERS
}

// knownEnvVars lists valid CBEAUTIFY_* environment variables.
var knownEnvVars = map[string]bool{
	"CBEAUTIFY_CONFIG":     true,
	"CBEAUTIFY_INPUT_DIR":  true,
	"CBEAUTIFY_OUTPUT_DIR": true,
	"CBEAUTIFY_CSS_DIR":    true,
	"CBEAUTIFY_STYLE":      true,
	"CBEAUTIFY_ASSET_PATH": true,
	"CBEAUTIFY_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparsable or non-positive worker counts are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("CBEAUTIFY_CONFIG"),
		InputDir:   os.Getenv("CBEAUTIFY_INPUT_DIR"),
		OutputDir:  os.Getenv("CBEAUTIFY_OUTPUT_DIR"),
		CSSDir:     os.Getenv("CBEAUTIFY_CSS_DIR"),
		Style:      os.Getenv("CBEAUTIFY_STYLE"),
		AssetPath:  os.Getenv("CBEAUTIFY_ASSET_PATH"),
	}

	if workers := os.Getenv("CBEAUTIFY_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for each unrecognized CBEAUTIFY_* variable.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "CBEAUTIFY_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overrides config values with the environment variables that
// are set. CLI flags are applied afterwards by mergeFlags, giving:
// flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" {
		cfg.Input.Dir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.CSSDir != "" {
		cfg.CSS.Dir = env.CSSDir
	}
	if env.Style != "" {
		cfg.Highlight.Style = env.Style
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
