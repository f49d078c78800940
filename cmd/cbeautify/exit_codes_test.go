package main

// Notes:
// - exitCodeFor: we test the sentinels of this package, cbeautify and config,
//   plus wrapped errors to verify the errors.Is() chain.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	cbeautify "github.com/alnah/go-cbeautify"
	"github.com/alnah/go-cbeautify/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// Usage/config/validation errors (exit 2)
		{"no mode", ErrNoMode, ExitUsage},
		{"invalid flags", ErrInvalidFlags, ExitUsage},
		{"too many args", ErrTooManyArgs, ExitUsage},
		{"unsupported shell", ErrUnsupportedShell, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"config selector", config.ErrInvalidSelector, ExitUsage},
		{"config workers", config.ErrInvalidWorkers, ExitUsage},
		{"style not found", cbeautify.ErrStyleNotFound, ExitUsage},
		{"template not found", cbeautify.ErrTemplateNotFound, ExitUsage},
		{"icon not found", cbeautify.ErrIconNotFound, ExitUsage},
		{"asset path", cbeautify.ErrInvalidAssetPath, ExitUsage},
		{"selector", cbeautify.ErrInvalidSelector, ExitUsage},
		{"lexer", cbeautify.ErrLexerNotFound, ExitUsage},
		{"wrapped style", fmt.Errorf("init: %w", cbeautify.ErrStyleNotFound), ExitUsage},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"input missing", ErrInputMissing, ExitIO},
		{"no pages", ErrNoPages, ExitIO},
		{"output dir", ErrOutputDir, ExitIO},
		{"read page", ErrReadPage, ExitIO},
		{"write page", ErrWritePage, ExitIO},
		{"write asset", cbeautify.ErrWriteAsset, ExitIO},
		{"wrapped input missing", fmt.Errorf("run: %w", ErrInputMissing), ExitIO},

		// General errors (exit 1)
		{"pages failed", ErrPagesFailed, ExitGeneral},
		{"cancelled", context.Canceled, ExitGeneral},
		{"unknown", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes_Conventions(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Error("exit codes 0, 1, 2 must follow Unix conventions")
	}
	for _, code := range []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO} {
		if code >= 126 {
			t.Errorf("exit code %d collides with shell-reserved codes", code)
		}
	}
}
