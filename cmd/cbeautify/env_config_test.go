package main

// Notes:
// - loadEnvConfig: invalid and non-positive worker counts are ignored, not errors.
// - Tests use t.Setenv() which prevents t.Parallel().
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-cbeautify/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Run("all variables", func(t *testing.T) {
		t.Setenv("CBEAUTIFY_CONFIG", "site")
		t.Setenv("CBEAUTIFY_INPUT_DIR", "/in")
		t.Setenv("CBEAUTIFY_OUTPUT_DIR", "/out")
		t.Setenv("CBEAUTIFY_CSS_DIR", "/css")
		t.Setenv("CBEAUTIFY_STYLE", "monokai")
		t.Setenv("CBEAUTIFY_ASSET_PATH", "/assets")
		t.Setenv("CBEAUTIFY_WORKERS", "4")

		got := loadEnvConfig()
		want := &envConfig{
			ConfigPath: "site",
			InputDir:   "/in",
			OutputDir:  "/out",
			CSSDir:     "/css",
			Style:      "monokai",
			AssetPath:  "/assets",
			Workers:    4,
		}
		if *got != *want {
			t.Errorf("loadEnvConfig() = %+v, want %+v", got, want)
		}
	})

	for _, workers := range []string{"abc", "-2", "0"} {
		t.Run("workers "+workers+" ignored", func(t *testing.T) {
			t.Setenv("CBEAUTIFY_WORKERS", workers)

			if got := loadEnvConfig().Workers; got != 0 {
				t.Errorf("Workers = %d, want 0", got)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("CBEAUTIFY_STYL", "monokai")
	t.Setenv("CBEAUTIFY_STYLE", "monokai")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	if !strings.Contains(buf.String(), "CBEAUTIFY_STYL ") {
		t.Errorf("expected warning for CBEAUTIFY_STYL, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "CBEAUTIFY_STYLE") {
		t.Errorf("known variable should not warn, got %q", buf.String())
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig / TestLoadRunConfig - Precedence
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("env overrides config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(&envConfig{InputDir: "in", OutputDir: "out", CSSDir: "css2", Style: "monokai", AssetPath: "a", Workers: 2}, cfg)

		if cfg.Input.Dir != "in" || cfg.Output.Dir != "out" || cfg.CSS.Dir != "css2" {
			t.Errorf("paths = %q %q %q", cfg.Input.Dir, cfg.Output.Dir, cfg.CSS.Dir)
		}
		if cfg.Highlight.Style != "monokai" || cfg.Assets.BasePath != "a" || cfg.Workers != 2 {
			t.Errorf("style = %q, assets = %q, workers = %d", cfg.Highlight.Style, cfg.Assets.BasePath, cfg.Workers)
		}
	})

	t.Run("unset env keeps config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(&envConfig{}, cfg)
		if *cfg != *config.DefaultConfig() {
			t.Errorf("config changed: %+v", cfg)
		}
	})
}

func TestLoadRunConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := loadRunConfig("", &bytes.Buffer{})
		if err != nil {
			t.Fatalf("loadRunConfig() error = %v", err)
		}
		if cfg.Input.Dir != config.DefaultInputDir {
			t.Errorf("Input.Dir = %q, want %q", cfg.Input.Dir, config.DefaultInputDir)
		}
	})

	t.Run("env beats defaults", func(t *testing.T) {
		t.Setenv("CBEAUTIFY_OUTPUT_DIR", "public")

		cfg, err := loadRunConfig("", &bytes.Buffer{})
		if err != nil {
			t.Fatalf("loadRunConfig() error = %v", err)
		}
		if cfg.Output.Dir != "public" {
			t.Errorf("Output.Dir = %q, want public", cfg.Output.Dir)
		}
	})

	t.Run("config by env variable not found", func(t *testing.T) {
		t.Setenv("CBEAUTIFY_CONFIG", "./does-not-exist.yaml")

		_, err := loadRunConfig("", &bytes.Buffer{})
		if err == nil || !strings.Contains(err.Error(), "hint:") {
			t.Errorf("error = %v, want config not found with hint", err)
		}
	})
}
