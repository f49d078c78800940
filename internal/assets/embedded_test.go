package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedLoader(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name        string
		load        func(string) (string, error)
		assetName   string
		wantErr     error
		wantContain string
	}{
		{
			name:        "default style",
			load:        loader.LoadStyle,
			assetName:   DefaultStyleName,
			wantContain: "nav.navbar",
		},
		{
			name:        "default style imports highlights",
			load:        loader.LoadStyle,
			assetName:   DefaultStyleName,
			wantContain: `@import url("highlights.css")`,
		},
		{
			name:        "navbar template",
			load:        loader.LoadTemplate,
			assetName:   NavbarTemplateName,
			wantContain: `class="navbar-prev"`,
		},
		{
			name:        "favicon",
			load:        loader.LoadIcon,
			assetName:   DefaultIconName,
			wantContain: "<svg",
		},
		{
			name:      "missing style",
			load:      loader.LoadStyle,
			assetName: "nonexistent-style-xyz",
			wantErr:   ErrStyleNotFound,
		},
		{
			name:      "missing template",
			load:      loader.LoadTemplate,
			assetName: "footer",
			wantErr:   ErrTemplateNotFound,
		},
		{
			name:      "missing icon",
			load:      loader.LoadIcon,
			assetName: "logo",
			wantErr:   ErrIconNotFound,
		},
		{
			name:      "empty name",
			load:      loader.LoadStyle,
			assetName: "",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "path traversal",
			load:      loader.LoadTemplate,
			assetName: "../navbar",
			wantErr:   ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.load(tt.assetName)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("content does not contain %q", tt.wantContain)
			}
		})
	}
}

func TestEmbeddedLoader_ImplementsAssetLoader(t *testing.T) {
	t.Parallel()

	var _ AssetLoader = NewEmbeddedLoader()
}
