package main

import (
	"errors"
	"os"

	cbeautify "github.com/alnah/go-cbeautify"
	"github.com/alnah/go-cbeautify/internal/config"
)

// Exit codes for the cbeautify CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All selected outputs written
	ExitGeneral = 1 // Some pages failed, or unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Missing input, unreadable or unwritable files
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoMode) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidSelector) ||
		errors.Is(err, config.ErrInvalidWorkers) ||
		errors.Is(err, cbeautify.ErrStyleNotFound) ||
		errors.Is(err, cbeautify.ErrTemplateNotFound) ||
		errors.Is(err, cbeautify.ErrIconNotFound) ||
		errors.Is(err, cbeautify.ErrInvalidAssetPath) ||
		errors.Is(err, cbeautify.ErrInvalidSelector) ||
		errors.Is(err, cbeautify.ErrLexerNotFound) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrInputMissing) ||
		errors.Is(err, ErrNoPages) ||
		errors.Is(err, ErrOutputDir) ||
		errors.Is(err, ErrReadPage) ||
		errors.Is(err, ErrWritePage) ||
		errors.Is(err, cbeautify.ErrWriteAsset) {
		return ExitIO
	}

	return ExitGeneral
}
