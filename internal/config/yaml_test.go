package config

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name string `yaml:"name"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "valid", input: "name: gnu-c\n", want: "gnu-c"},
		{name: "empty input", input: "", wantErr: ErrNilData},
		{name: "unknown field", input: "name: x\nextra: y\n"},
		{name: "type mismatch", input: "name: [a, b]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got sample
			err := unmarshalStrict([]byte(tt.input), &got)

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
			case tt.want == "":
				if err == nil {
					t.Error("expected error, got nil")
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got.Name != tt.want {
					t.Errorf("Name = %q, want %q", got.Name, tt.want)
				}
			}
		})
	}
}

// Note: This test modifies the global MaxInputSize variable, so it cannot
// run in parallel with other tests that load config files.

func TestInputSizeLimit(t *testing.T) {
	originalMax := MaxInputSize
	t.Cleanup(func() { MaxInputSize = originalMax })

	t.Run("input exceeding limit fails", func(t *testing.T) {
		MaxInputSize = 100
		data := make([]byte, 101)
		copy(data, "name: x")

		var s sample
		err := unmarshalStrict(data, &s)
		if !errors.Is(err, ErrInputTooLarge) {
			t.Fatalf("error = %v, want ErrInputTooLarge", err)
		}
		if !strings.Contains(err.Error(), "101 bytes") || !strings.Contains(err.Error(), "max 100") {
			t.Errorf("error should contain sizes, got: %s", err.Error())
		}
	})
}
