package cbeautify_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cbeautify "github.com/alnah/go-cbeautify"
)

func TestNewAssetLoader(t *testing.T) {
	t.Parallel()

	t.Run("embedded only", func(t *testing.T) {
		t.Parallel()

		loader, err := cbeautify.NewAssetLoader("")
		if err != nil {
			t.Fatalf("NewAssetLoader() error = %v", err)
		}
		css, err := loader.LoadStyle(cbeautify.DefaultStylesheet)
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if !strings.Contains(css, "nav.navbar") {
			t.Error("embedded stylesheet missing navbar rules")
		}
	})

	t.Run("invalid path", func(t *testing.T) {
		t.Parallel()

		_, err := cbeautify.NewAssetLoader(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, cbeautify.ErrInvalidAssetPath) {
			t.Errorf("error = %v, want ErrInvalidAssetPath", err)
		}
	})
}

func TestAssetLoader_PublicErrors(t *testing.T) {
	t.Parallel()

	loader, err := cbeautify.NewAssetLoader("")
	if err != nil {
		t.Fatalf("NewAssetLoader() error = %v", err)
	}

	tests := []struct {
		name    string
		load    func(string) (string, error)
		arg     string
		wantErr error
	}{
		{"missing style", loader.LoadStyle, "nope", cbeautify.ErrStyleNotFound},
		{"missing template", loader.LoadTemplate, "nope", cbeautify.ErrTemplateNotFound},
		{"missing icon", loader.LoadIcon, "nope", cbeautify.ErrIconNotFound},
		{"invalid name", loader.LoadStyle, "../etc", cbeautify.ErrInvalidAssetPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.load(tt.arg)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), tt.arg) {
				t.Errorf("error %q should keep the original message", err.Error())
			}
		})
	}
}

// stubLoader serves fixed assets.
type stubLoader struct{}

func (stubLoader) LoadStyle(string) (string, error) { return "p{}", nil }
func (stubLoader) LoadTemplate(string) (string, error) {
	return `<nav class="navbar">stub</nav>`, nil
}
func (stubLoader) LoadIcon(string) (string, error) { return "<svg/>", nil }

func TestWithAssetLoader(t *testing.T) {
	t.Parallel()

	b := newBeautifier(t, cbeautify.WithAssetLoader(stubLoader{}))
	dir := t.TempDir()
	if _, err := b.BundleAssets(t.Context(), dir); err != nil {
		t.Fatalf("BundleAssets() error = %v", err)
	}
	got, _ := os.ReadFile(filepath.Join(dir, cbeautify.IconFile))
	if string(got) != "<svg/>" {
		t.Errorf("favicon.svg = %q, want stub icon", got)
	}
}
